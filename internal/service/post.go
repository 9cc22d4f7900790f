// internal/service/post.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/openorg/orgfeed/internal/audit"
	"github.com/openorg/orgfeed/internal/domain"
	"github.com/openorg/orgfeed/internal/model"
	"github.com/openorg/orgfeed/internal/repository"
)

// DecisionNotifier tells a post's author about a moderation decision.
// Delivery is best-effort; failures are logged, never propagated.
type DecisionNotifier interface {
	NotifyDecision(ctx context.Context, post *model.Post, author *model.Employee) error
}

type PostService struct {
	posts       repository.PostRepositoryIface
	employees   repository.EmployeeRepositoryIface
	attachments repository.AttachmentRepositoryIface
	files       FileStore
	notifier    DecisionNotifier
	auditLog    audit.Logger
	validate    *validator.Validate
}

func NewPostService(
	posts repository.PostRepositoryIface,
	employees repository.EmployeeRepositoryIface,
	attachments repository.AttachmentRepositoryIface,
	files FileStore,
	notifier DecisionNotifier,
	auditLog audit.Logger,
) *PostService {
	if auditLog == nil {
		auditLog = &audit.NoOpLogger{}
	}
	return &PostService{
		posts:       posts,
		employees:   employees,
		attachments: attachments,
		files:       files,
		notifier:    notifier,
		auditLog:    auditLog,
		validate:    validator.New(),
	}
}

type CreatePostInput struct {
	Title         string         `json:"title" validate:"required,min=3,max=512"`
	Body          string         `json:"body" validate:"max=81920"`
	Type          model.PostType `json:"post_type" validate:"required"`
	AttachmentIDs []uuid.UUID    `json:"attachments"`
}

// Create persists a new post. Moderators and admins publish immediately;
// everything else starts under consideration.
func (s *PostService) Create(ctx context.Context, creatorID uuid.UUID, input CreatePostInput) (*model.Post, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err)
	}
	if !input.Type.Valid() {
		return nil, fmt.Errorf("%w: unknown post type %q", domain.ErrInvalidInput, input.Type)
	}

	if len(input.AttachmentIDs) > 0 {
		if err := s.checkAttachmentsExist(ctx, input.AttachmentIDs); err != nil {
			return nil, err
		}
	}

	creator, err := s.employees.FindByID(ctx, creatorID)
	if err != nil && !errors.Is(err, domain.ErrEmployeeNotFound) {
		return nil, err
	}

	now := time.Now().UTC()
	post := &model.Post{
		ID:         uuid.New(),
		Type:       input.Type,
		Title:      input.Title,
		Body:       input.Body,
		AuthorID:   creatorID,
		Status:     model.StatusUnderConsideration,
		CreatedOn:  now,
		ArchivedOn: now.Add(model.ArchiveHorizon),
	}

	// An unknown creator or a plain user goes through moderation; a
	// moderator or admin publishes directly, approving their own post.
	// The millisecond offset orders the publication after the creation.
	if creator != nil && creator.Role.CanModerate() {
		publishedOn := now.Add(time.Millisecond)
		post.Status = model.StatusPosted
		post.PublishedOn = &publishedOn
		post.ApprovedByID = &creator.ID
	}

	if err := s.posts.Create(ctx, post, input.AttachmentIDs); err != nil {
		return nil, err
	}

	if err := s.auditLog.LogPostCreate(ctx, creatorID, post.ID, string(post.Status)); err != nil {
		slog.WarnContext(ctx, "failed to audit post creation", "error", err, "post_id", post.ID)
	}

	return s.Get(ctx, post.ID)
}

// EditPostInput uses pointer fields so that an omitted field (nil) keeps
// the stored value while a provided one overwrites it, even when empty.
type EditPostInput struct {
	Title         *string         `json:"title"`
	Body          *string         `json:"body"`
	Type          *model.PostType `json:"post_type"`
	AttachmentIDs *[]uuid.UUID    `json:"attachments"`
}

func (i EditPostInput) empty() bool {
	return i.Title == nil && i.Body == nil && i.Type == nil && i.AttachmentIDs == nil
}

// Edit applies a partial update. Only the post's author or an admin may
// edit; a provided attachment list replaces the attachment set entirely.
func (s *PostService) Edit(ctx context.Context, editorID, postID uuid.UUID, input EditPostInput) (*model.Post, error) {
	if input.empty() {
		return nil, domain.ErrNothingToEdit
	}

	post, err := s.posts.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	if post.AuthorID != editorID {
		editor, err := s.employees.FindByID(ctx, editorID)
		if err != nil {
			if errors.Is(err, domain.ErrEmployeeNotFound) {
				return nil, domain.ErrForbidden
			}
			return nil, err
		}
		if editor.Role != model.RoleAdmin {
			return nil, domain.ErrForbidden
		}
	}

	if input.Title != nil {
		post.Title = *input.Title
	}
	if input.Body != nil {
		post.Body = *input.Body
	}
	if input.Type != nil {
		if !input.Type.Valid() {
			return nil, fmt.Errorf("%w: unknown post type %q", domain.ErrInvalidInput, *input.Type)
		}
		post.Type = *input.Type
	}
	if input.AttachmentIDs != nil && len(*input.AttachmentIDs) > 0 {
		if err := s.checkAttachmentsExist(ctx, *input.AttachmentIDs); err != nil {
			return nil, err
		}
	}

	if err := s.posts.Update(ctx, post, input.AttachmentIDs); err != nil {
		return nil, err
	}

	return s.Get(ctx, post.ID)
}

// SetStatus drives the moderation state machine. Only moderators and
// admins may change status; authorship grants nothing here.
func (s *PostService) SetStatus(ctx context.Context, actorID, postID uuid.UUID, newStatus model.PostStatus) (*model.Post, error) {
	if !newStatus.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidStatus, newStatus)
	}

	actor, err := s.employees.FindByID(ctx, actorID)
	if err != nil {
		if errors.Is(err, domain.ErrEmployeeNotFound) {
			return nil, domain.ErrForbidden
		}
		return nil, err
	}
	if !actor.Role.CanModerate() {
		return nil, domain.ErrForbidden
	}

	post, err := s.posts.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	// Same status: nothing to mutate, nothing written.
	if post.Status == newStatus {
		return s.hydrate(post), nil
	}

	previous := post.Status
	now := time.Now().UTC()

	// Any transition out of the archive grants a fresh archive horizon.
	if previous == model.StatusArchived {
		post.ArchivedOn = now.Add(model.ArchiveHorizon)
	}

	switch newStatus {
	case model.StatusPosted:
		publishedOn := now
		post.PublishedOn = &publishedOn
		post.ApprovedByID = &actor.ID
	case model.StatusArchived:
		// Records the actual archive instant.
		post.ArchivedOn = now
	}
	post.Status = newStatus

	if err := s.posts.Update(ctx, post, nil); err != nil {
		return nil, err
	}

	if err := s.auditLog.LogStatusChange(ctx, actorID, post.ID, string(previous), string(newStatus)); err != nil {
		slog.WarnContext(ctx, "failed to audit status change", "error", err, "post_id", post.ID)
	}

	s.notifyDecision(ctx, post, newStatus)

	return s.Get(ctx, post.ID)
}

// notifyDecision emails the author about a moderation decision. The
// moderation flow never fails because of a notification problem.
func (s *PostService) notifyDecision(ctx context.Context, post *model.Post, status model.PostStatus) {
	if s.notifier == nil {
		return
	}
	switch status {
	case model.StatusPosted, model.StatusReturned, model.StatusRejected:
	default:
		return
	}
	author, err := s.employees.FindByID(ctx, post.AuthorID)
	if err != nil {
		slog.WarnContext(ctx, "failed to resolve author for notification", "error", err, "post_id", post.ID)
		return
	}
	if err := s.notifier.NotifyDecision(ctx, post, author); err != nil {
		slog.WarnContext(ctx, "failed to send decision notification", "error", err, "post_id", post.ID)
	}
}

// Delete removes a post. The author, a moderator or an admin may delete;
// withAttachments also removes the attachment records and stored files,
// otherwise the attachments are detached and stay re-attachable.
func (s *PostService) Delete(ctx context.Context, actorID, postID uuid.UUID, withAttachments bool) error {
	post, err := s.posts.FindByID(ctx, postID)
	if err != nil {
		return err
	}

	if post.AuthorID != actorID {
		actor, err := s.employees.FindByID(ctx, actorID)
		if err != nil {
			if errors.Is(err, domain.ErrEmployeeNotFound) {
				return domain.ErrForbidden
			}
			return err
		}
		if !actor.Role.CanModerate() {
			return domain.ErrForbidden
		}
	}

	removed, err := s.posts.Delete(ctx, postID, withAttachments)
	if err != nil {
		return err
	}
	for _, id := range removed {
		if err := s.files.Remove(id); err != nil {
			slog.WarnContext(ctx, "failed to remove attachment file", "error", err, "attachment_id", id)
		}
	}

	if err := s.auditLog.LogPostDelete(ctx, actorID, postID, withAttachments); err != nil {
		slog.WarnContext(ctx, "failed to audit post deletion", "error", err, "post_id", postID)
	}

	return nil
}

// Get returns a fully hydrated post: author, attachments, computed size.
func (s *PostService) Get(ctx context.Context, postID uuid.UUID) (*model.Post, error) {
	post, err := s.posts.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	return s.hydrate(post), nil
}

// ArchiveExpired archives every post past its horizon. Idempotent; the
// scheduler collaborator invokes it on a fixed interval.
func (s *PostService) ArchiveExpired(ctx context.Context) (int64, error) {
	archived, err := s.posts.ArchiveExpired(ctx)
	if err != nil {
		return 0, err
	}
	if archived > 0 {
		slog.InfoContext(ctx, "archived expired posts", "count", archived)
	}
	return archived, nil
}

// checkAttachmentsExist verifies the whole ID list with one query.
func (s *PostService) checkAttachmentsExist(ctx context.Context, ids []uuid.UUID) error {
	found, err := s.attachments.FindByIDs(ctx, ids)
	if err != nil {
		return err
	}
	if len(found) != len(ids) {
		return domain.ErrAttachmentNotFound
	}
	return nil
}

func (s *PostService) hydrate(post *model.Post) *model.Post {
	return hydratePost(s.files, post)
}

// hydratePost fills the derived size fields from the file store.
func hydratePost(files FileStore, post *model.Post) *model.Post {
	size := post.ContentSize()
	for i := range post.Attachments {
		post.Attachments[i].Size = files.Size(post.Attachments[i].ID)
		size += post.Attachments[i].Size
	}
	post.Size = size
	return post
}
