package service_test

import (
	"io"

	"github.com/google/uuid"
)

// memFileStore is an in-memory FileStore double. Sizes are preset per
// attachment ID; removals are recorded for assertions.
type memFileStore struct {
	sizes   map[uuid.UUID]int64
	removed []uuid.UUID
}

func newMemFileStore() *memFileStore {
	return &memFileStore{sizes: make(map[uuid.UUID]int64)}
}

func (f *memFileStore) Save(id uuid.UUID, filename string, r io.Reader) (int64, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return 0, err
	}
	f.sizes[id] = int64(len(data))
	return int64(len(data)), nil
}

func (f *memFileStore) Path(id uuid.UUID) (string, error) {
	return "/tmp/" + id.String(), nil
}

func (f *memFileStore) Size(id uuid.UUID) int64 {
	return f.sizes[id]
}

func (f *memFileStore) Remove(id uuid.UUID) error {
	f.removed = append(f.removed, id)
	delete(f.sizes, id)
	return nil
}
