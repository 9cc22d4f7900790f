// internal/service/attachment.go
package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/google/uuid"

	"github.com/openorg/orgfeed/internal/domain"
	"github.com/openorg/orgfeed/internal/model"
	"github.com/openorg/orgfeed/internal/repository"
)

// FileStore keeps attachment files on durable storage, addressed by the
// attachment ID. Byte sizes are never persisted as a column; they are
// read back from the store.
type FileStore interface {
	Save(id uuid.UUID, filename string, r io.Reader) (int64, error)
	Path(id uuid.UUID) (string, error)
	Size(id uuid.UUID) int64
	Remove(id uuid.UUID) error
}

// AttachmentPage is a page of attachments plus the total page count.
type AttachmentPage struct {
	Attachments []*model.Attachment `json:"attachments"`
	PagesCount  int                 `json:"pages_count"`
}

type AttachmentService struct {
	attachments repository.AttachmentRepositoryIface
	employees   repository.EmployeeRepositoryIface
	files       FileStore
}

func NewAttachmentService(
	attachments repository.AttachmentRepositoryIface,
	employees repository.EmployeeRepositoryIface,
	files FileStore,
) *AttachmentService {
	return &AttachmentService{
		attachments: attachments,
		employees:   employees,
		files:       files,
	}
}

// Upload stores the file and records an unattached attachment owned by
// the uploader. It is attached to a post later, by post creation or edit.
func (s *AttachmentService) Upload(ctx context.Context, authorID uuid.UUID, filename string, r io.Reader) (*model.Attachment, error) {
	attachment := &model.Attachment{
		ID:       uuid.New(),
		AuthorID: authorID,
		Filename: filename,
	}

	size, err := s.files.Save(attachment.ID, filename, r)
	if err != nil {
		return nil, err
	}

	if err := s.attachments.Create(ctx, attachment); err != nil {
		// A failed insert must not leave an orphaned file behind.
		_ = s.files.Remove(attachment.ID)
		return nil, err
	}

	attachment.Size = size
	return attachment, nil
}

// Get returns the attachment record with its computed size.
func (s *AttachmentService) Get(ctx context.Context, id uuid.UUID) (*model.Attachment, error) {
	attachment, err := s.attachments.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	attachment.Size = s.files.Size(attachment.ID)
	return attachment, nil
}

// FilePath resolves the stored file location for download handlers.
func (s *AttachmentService) FilePath(ctx context.Context, id uuid.UUID) (*model.Attachment, string, error) {
	attachment, err := s.attachments.FindByID(ctx, id)
	if err != nil {
		return nil, "", err
	}
	path, err := s.files.Path(id)
	if err != nil {
		return nil, "", domain.ErrAttachmentNotFound
	}
	return attachment, path, nil
}

// Delete removes the attachment record and its stored file. Only the
// uploader or an admin may delete.
func (s *AttachmentService) Delete(ctx context.Context, actorID, id uuid.UUID) error {
	attachment, err := s.attachments.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if attachment.AuthorID != actorID {
		actor, err := s.employees.FindByID(ctx, actorID)
		if err != nil {
			if errors.Is(err, domain.ErrEmployeeNotFound) {
				return domain.ErrForbidden
			}
			return err
		}
		if actor.Role != model.RoleAdmin {
			return domain.ErrForbidden
		}
	}

	if err := s.attachments.Delete(ctx, id); err != nil {
		return err
	}
	return s.files.Remove(id)
}

// ListByAuthor returns one page of an employee's uploads, newest first.
func (s *AttachmentService) ListByAuthor(ctx context.Context, employeeID uuid.UUID, page int) (*AttachmentPage, error) {
	if page < 1 {
		return nil, fmt.Errorf("%w: page must be >= 1", domain.ErrInvalidInput)
	}
	if _, err := s.employees.FindByID(ctx, employeeID); err != nil {
		return nil, err
	}

	attachments, total, err := s.attachments.FindByAuthor(ctx, employeeID, (page-1)*DefaultPageSize, DefaultPageSize)
	if err != nil {
		return nil, err
	}
	for _, attachment := range attachments {
		attachment.Size = s.files.Size(attachment.ID)
	}
	return &AttachmentPage{
		Attachments: attachments,
		PagesCount:  int(math.Ceil(float64(total) / float64(DefaultPageSize))),
	}, nil
}
