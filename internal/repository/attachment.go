// internal/repository/attachment.go
package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/openorg/orgfeed/internal/domain"
	"github.com/openorg/orgfeed/internal/model"
)

type AttachmentRepositoryIface interface {
	Create(ctx context.Context, attachment *model.Attachment) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Attachment, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*model.Attachment, error)
	FindByAuthor(ctx context.Context, authorID uuid.UUID, offset, limit int) ([]*model.Attachment, int64, error)
}

type AttachmentRepository struct {
	db *gorm.DB
}

func NewAttachmentRepository(db *gorm.DB) *AttachmentRepository {
	return &AttachmentRepository{db: db}
}

func (r *AttachmentRepository) Create(ctx context.Context, attachment *model.Attachment) error {
	result := r.db.WithContext(ctx).Omit("Author").Create(attachment)
	if result.Error != nil {
		return fmt.Errorf("failed to create attachment: %w", result.Error)
	}
	return nil
}

func (r *AttachmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.Attachment{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete attachment: %w", result.Error)
	}
	return nil
}

func (r *AttachmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Attachment, error) {
	var attachment model.Attachment
	result := r.db.WithContext(ctx).Preload("Author").First(&attachment, "id = ?", id)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, domain.ErrAttachmentNotFound
		}
		return nil, fmt.Errorf("failed to find attachment: %w", result.Error)
	}
	return &attachment, nil
}

// FindByIDs is a single set-membership query; callers check existence of a
// whole ID list by comparing lengths instead of issuing N lookups.
func (r *AttachmentRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*model.Attachment, error) {
	var attachments []*model.Attachment
	result := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&attachments)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find attachments: %w", result.Error)
	}
	return attachments, nil
}

func (r *AttachmentRepository) FindByAuthor(ctx context.Context, authorID uuid.UUID, offset, limit int) ([]*model.Attachment, int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Attachment{}).
		Where("author_id = ?", authorID).
		Count(&count).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count attachments: %w", err)
	}

	var attachments []*model.Attachment
	result := r.db.WithContext(ctx).
		Preload("Author").
		Where("author_id = ?", authorID).
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&attachments)
	if result.Error != nil {
		return nil, 0, fmt.Errorf("failed to find attachments by author: %w", result.Error)
	}
	return attachments, count, nil
}
