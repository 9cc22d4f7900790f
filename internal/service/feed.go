// internal/service/feed.go
package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/openorg/orgfeed/internal/domain"
	"github.com/openorg/orgfeed/internal/model"
	"github.com/openorg/orgfeed/internal/repository"
)

// DefaultPageSize is the fixed page size of every paginated listing.
// It is not client-configurable.
const DefaultPageSize = 16

// PostPage is a page of posts together with the total page count, so a
// client can render pagination without a second request.
type PostPage struct {
	Posts      []*model.Post `json:"posts"`
	PagesCount int           `json:"pages_count"`
}

type FeedService struct {
	posts     repository.PostRepositoryIface
	employees repository.EmployeeRepositoryIface
	files     FileStore
}

func NewFeedService(
	posts repository.PostRepositoryIface,
	employees repository.EmployeeRepositoryIface,
	files FileStore,
) *FeedService {
	return &FeedService{
		posts:     posts,
		employees: employees,
		files:     files,
	}
}

// GetFeed returns one page of posted posts of the given type, newest
// first. Subunit-scoped types require a subunit filter; organization
// types ignore it. A page past the end yields an empty list, not an
// error, alongside the true page count.
func (s *FeedService) GetFeed(ctx context.Context, postType model.PostType, page int, subunitID *uuid.UUID) (*PostPage, error) {
	if !postType.Valid() {
		return nil, fmt.Errorf("%w: unknown post type %q", domain.ErrInvalidInput, postType)
	}
	if page < 1 {
		return nil, fmt.Errorf("%w: page must be >= 1", domain.ErrInvalidInput)
	}

	if postType.SubunitScoped() {
		if subunitID == nil || *subunitID == uuid.Nil {
			return nil, domain.ErrSubunitRequired
		}
	} else {
		subunitID = nil
	}

	posts, total, err := s.posts.Feed(ctx, postType, subunitID, (page-1)*DefaultPageSize, DefaultPageSize)
	if err != nil {
		return nil, err
	}
	return s.page(posts, total), nil
}

// GetArchive returns one page of archived posts, newest first.
func (s *FeedService) GetArchive(ctx context.Context, page int) (*PostPage, error) {
	if page < 1 {
		return nil, fmt.Errorf("%w: page must be >= 1", domain.ErrInvalidInput)
	}

	posts, total, err := s.posts.Archived(ctx, (page-1)*DefaultPageSize, DefaultPageSize)
	if err != nil {
		return nil, err
	}
	return s.page(posts, total), nil
}

// GetBiggest returns the post with the largest computed size among those
// published on the given day. Ties go to the earliest publication, then
// to the smaller ID, so the result is deterministic.
func (s *FeedService) GetBiggest(ctx context.Context, day time.Time, includeArchived bool) (*model.Post, error) {
	statuses := []model.PostStatus{model.StatusPosted}
	if includeArchived {
		statuses = append(statuses, model.StatusArchived)
	}

	candidates, err := s.posts.FindPublishedOn(ctx, day, statuses)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, domain.ErrPostNotFound
	}

	var biggest *model.Post
	for _, candidate := range candidates {
		hydratePost(s.files, candidate)
		if biggest == nil || candidate.Size > biggest.Size {
			biggest = candidate
			continue
		}
		if candidate.Size == biggest.Size && earlier(candidate, biggest) {
			biggest = candidate
		}
	}
	return biggest, nil
}

func earlier(a, b *model.Post) bool {
	if a.PublishedOn != nil && b.PublishedOn != nil && !a.PublishedOn.Equal(*b.PublishedOn) {
		return a.PublishedOn.Before(*b.PublishedOn)
	}
	return a.ID.String() < b.ID.String()
}

// GetEmployeePosts returns every post by the employee regardless of
// status, unpaginated.
func (s *FeedService) GetEmployeePosts(ctx context.Context, employeeID uuid.UUID) ([]*model.Post, error) {
	if _, err := s.employees.FindByID(ctx, employeeID); err != nil {
		return nil, err
	}

	posts, err := s.posts.FindByAuthor(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	for _, post := range posts {
		hydratePost(s.files, post)
	}
	return posts, nil
}

// GetModerationQueue returns posts filtered by an arbitrary status set.
// Only moderators and admins may look at it.
func (s *FeedService) GetModerationQueue(ctx context.Context, actorID uuid.UUID, page int, statuses []model.PostStatus, oldestFirst bool) (*PostPage, error) {
	if page < 1 {
		return nil, fmt.Errorf("%w: page must be >= 1", domain.ErrInvalidInput)
	}
	if len(statuses) == 0 {
		return nil, fmt.Errorf("%w: at least one status is required", domain.ErrInvalidInput)
	}
	for _, status := range statuses {
		if !status.Valid() {
			return nil, fmt.Errorf("%w: %q", domain.ErrInvalidStatus, status)
		}
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

	posts, total, err := s.posts.FindByStatuses(ctx, statuses, oldestFirst, (page-1)*DefaultPageSize, DefaultPageSize)
	if err != nil {
		return nil, err
	}
	return s.page(posts, total), nil
}

func (s *FeedService) page(posts []*model.Post, total int64) *PostPage {
	for _, post := range posts {
		hydratePost(s.files, post)
	}
	return &PostPage{
		Posts:      posts,
		PagesCount: int(math.Ceil(float64(total) / float64(DefaultPageSize))),
	}
}
