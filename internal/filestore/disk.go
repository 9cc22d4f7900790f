// internal/filestore/disk.go
package filestore

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/openorg/orgfeed/internal/domain"
)

// DiskStore keeps attachment payloads on local disk, one file per
// attachment ID, sharded by the first two hex characters of the ID so
// a single directory never accumulates every upload.
type DiskStore struct {
	root string
}

func NewDiskStore(root string) (*DiskStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("creating upload directory: %w", err)
	}
	return &DiskStore{root: root}, nil
}

// Save streams r to disk under the attachment ID and returns the
// number of bytes written. The filename argument is recorded by the
// caller, not by the store; on-disk names are IDs only so user input
// never reaches the filesystem.
func (s *DiskStore) Save(id uuid.UUID, filename string, r io.Reader) (int64, error) {
	path := s.path(id)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return 0, fmt.Errorf("creating shard directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("creating attachment file: %w", err)
	}

	written, err := io.Copy(f, r)
	if err != nil {
		f.Close()
		os.Remove(path)
		return 0, fmt.Errorf("writing attachment file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return 0, fmt.Errorf("closing attachment file: %w", err)
	}
	return written, nil
}

// Path returns the on-disk location of a stored attachment.
func (s *DiskStore) Path(id uuid.UUID) (string, error) {
	path := s.path(id)
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return "", domain.ErrAttachmentNotFound
		}
		return "", fmt.Errorf("stat attachment file: %w", err)
	}
	return path, nil
}

// Size reports the stored payload size in bytes, or zero when the
// payload is missing.
func (s *DiskStore) Size(id uuid.UUID) int64 {
	info, err := os.Stat(s.path(id))
	if err != nil {
		return 0
	}
	return info.Size()
}

// Remove deletes the stored payload. Removing a payload that is
// already gone is not an error.
func (s *DiskStore) Remove(id uuid.UUID) error {
	if err := os.Remove(s.path(id)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing attachment file: %w", err)
	}
	return nil
}

func (s *DiskStore) path(id uuid.UUID) string {
	name := id.String()
	return filepath.Join(s.root, name[:2], name)
}
