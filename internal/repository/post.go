// internal/repository/post.go
package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/openorg/orgfeed/internal/domain"
	"github.com/openorg/orgfeed/internal/model"
)

type PostRepositoryIface interface {
	Create(ctx context.Context, post *model.Post, attachmentIDs []uuid.UUID) error
	Update(ctx context.Context, post *model.Post, attachmentIDs *[]uuid.UUID) error
	Delete(ctx context.Context, postID uuid.UUID, withAttachments bool) ([]uuid.UUID, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Post, error)

	Feed(ctx context.Context, postType model.PostType, subunitID *uuid.UUID, offset, limit int) ([]*model.Post, int64, error)
	Archived(ctx context.Context, offset, limit int) ([]*model.Post, int64, error)
	FindPublishedOn(ctx context.Context, day time.Time, statuses []model.PostStatus) ([]*model.Post, error)
	FindPublishedBetween(ctx context.Context, start, end time.Time, statuses []model.PostStatus) ([]*model.Post, error)
	FindByAuthor(ctx context.Context, authorID uuid.UUID) ([]*model.Post, error)
	FindByStatuses(ctx context.Context, statuses []model.PostStatus, oldestFirst bool, offset, limit int) ([]*model.Post, int64, error)

	ArchiveExpired(ctx context.Context) (int64, error)
}

type PostRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) *PostRepository {
	return &PostRepository{db: db}
}

// Create inserts the post and re-parents the supplied attachments to it.
// Both writes happen in one transaction.
func (r *PostRepository) Create(ctx context.Context, post *model.Post, attachmentIDs []uuid.UUID) error {
	err := inTransaction(r.db.WithContext(ctx), func(tx *gorm.DB) error {
		if err := tx.Omit("Author", "Attachments").Create(post).Error; err != nil {
			return err
		}
		if len(attachmentIDs) > 0 {
			if err := tx.Model(&model.Attachment{}).
				Where("id IN ?", attachmentIDs).
				Update("post_id", post.ID).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}
	return nil
}

// Update saves the post and, when attachmentIDs is non-nil, replaces the
// full attachment set: everything currently attached is detached, then the
// supplied list is attached. A non-nil empty list therefore clears the set.
func (r *PostRepository) Update(ctx context.Context, post *model.Post, attachmentIDs *[]uuid.UUID) error {
	err := inTransaction(r.db.WithContext(ctx), func(tx *gorm.DB) error {
		if err := tx.Omit("Author", "Attachments").Save(post).Error; err != nil {
			return err
		}
		if attachmentIDs == nil {
			return nil
		}
		if err := tx.Model(&model.Attachment{}).
			Where("post_id = ?", post.ID).
			Update("post_id", nil).Error; err != nil {
			return err
		}
		if len(*attachmentIDs) > 0 {
			if err := tx.Model(&model.Attachment{}).
				Where("id IN ?", *attachmentIDs).
				Update("post_id", post.ID).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to update post: %w", err)
	}
	return nil
}

// Delete removes the post row. Attachments are either deleted with it or
// detached, depending on the flag; deleted attachment IDs are returned so
// the caller can remove the stored files after commit.
func (r *PostRepository) Delete(ctx context.Context, postID uuid.UUID, withAttachments bool) ([]uuid.UUID, error) {
	var removed []uuid.UUID
	err := inTransaction(r.db.WithContext(ctx), func(tx *gorm.DB) error {
		if withAttachments {
			if err := tx.Model(&model.Attachment{}).
				Where("post_id = ?", postID).
				Pluck("id", &removed).Error; err != nil {
				return err
			}
			if err := tx.Where("post_id = ?", postID).Delete(&model.Attachment{}).Error; err != nil {
				return err
			}
		} else {
			if err := tx.Model(&model.Attachment{}).
				Where("post_id = ?", postID).
				Update("post_id", nil).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&model.Post{}, "id = ?", postID).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to delete post: %w", err)
	}
	return removed, nil
}

func (r *PostRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Post, error) {
	var post model.Post
	result := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Attachments").
		First(&post, "id = ?", id)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, domain.ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to find post: %w", result.Error)
	}
	return &post, nil
}

// feedQuery builds the shared predicate for feed listings: only posted
// posts of the requested type, optionally narrowed to a subunit. There is
// no post->subunit column; membership flows through the author.
func (r *PostRepository) feedQuery(ctx context.Context, postType model.PostType, subunitID *uuid.UUID) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&model.Post{}).
		Where("posts.status = ?", model.StatusPosted).
		Where("posts.type = ?", postType)
	if subunitID != nil {
		q = q.Joins("JOIN employees ON employees.id = posts.author_id").
			Where("employees.subunit_id = ?", *subunitID)
	}
	return q
}

func (r *PostRepository) Feed(ctx context.Context, postType model.PostType, subunitID *uuid.UUID, offset, limit int) ([]*model.Post, int64, error) {
	var count int64
	if err := r.feedQuery(ctx, postType, subunitID).Count(&count).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count feed posts: %w", err)
	}

	var posts []*model.Post
	result := r.feedQuery(ctx, postType, subunitID).
		Preload("Author").
		Preload("Attachments").
		Order("posts.created_on DESC").
		Offset(offset).Limit(limit).
		Find(&posts)
	if result.Error != nil {
		return nil, 0, fmt.Errorf("failed to find feed posts: %w", result.Error)
	}
	return posts, count, nil
}

func (r *PostRepository) Archived(ctx context.Context, offset, limit int) ([]*model.Post, int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Post{}).
		Where("status = ?", model.StatusArchived).
		Count(&count).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count archived posts: %w", err)
	}

	var posts []*model.Post
	result := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Attachments").
		Where("status = ?", model.StatusArchived).
		Order("created_on DESC").
		Offset(offset).Limit(limit).
		Find(&posts)
	if result.Error != nil {
		return nil, 0, fmt.Errorf("failed to find archived posts: %w", result.Error)
	}
	return posts, count, nil
}

func (r *PostRepository) FindPublishedOn(ctx context.Context, day time.Time, statuses []model.PostStatus) ([]*model.Post, error) {
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.Add(24 * time.Hour)

	var posts []*model.Post
	result := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Attachments").
		Where("status IN ?", statuses).
		Where("published_on >= ? AND published_on < ?", dayStart, dayEnd).
		Find(&posts)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find posts by day: %w", result.Error)
	}
	return posts, nil
}

func (r *PostRepository) FindPublishedBetween(ctx context.Context, start, end time.Time, statuses []model.PostStatus) ([]*model.Post, error) {
	var posts []*model.Post
	result := r.db.WithContext(ctx).
		Where("status IN ?", statuses).
		Where("published_on >= ? AND published_on < ?", start, end).
		Find(&posts)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find posts by period: %w", result.Error)
	}
	return posts, nil
}

func (r *PostRepository) FindByAuthor(ctx context.Context, authorID uuid.UUID) ([]*model.Post, error) {
	var posts []*model.Post
	result := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Attachments").
		Where("author_id = ?", authorID).
		Order("created_on DESC").
		Find(&posts)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find posts by author: %w", result.Error)
	}
	return posts, nil
}

func (r *PostRepository) FindByStatuses(ctx context.Context, statuses []model.PostStatus, oldestFirst bool, offset, limit int) ([]*model.Post, int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Post{}).
		Where("status IN ?", statuses).
		Count(&count).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count posts by status: %w", err)
	}

	order := "created_on DESC"
	if oldestFirst {
		order = "created_on ASC"
	}

	var posts []*model.Post
	result := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Attachments").
		Where("status IN ?", statuses).
		Order(order).
		Offset(offset).Limit(limit).
		Find(&posts)
	if result.Error != nil {
		return nil, 0, fmt.Errorf("failed to find posts by status: %w", result.Error)
	}
	return posts, count, nil
}

// ArchiveExpired flips every post past its archive horizon to archived.
// The predicate and the write are one UPDATE statement so a concurrent
// un-archive cannot be overwritten by a stale read.
func (r *PostRepository) ArchiveExpired(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).Model(&model.Post{}).
		Where("status <> ?", model.StatusArchived).
		Where("archived_on < ?", time.Now().UTC()).
		Update("status", model.StatusArchived)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to archive expired posts: %w", result.Error)
	}
	return result.RowsAffected, nil
}
