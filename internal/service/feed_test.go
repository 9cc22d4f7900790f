package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/openorg/orgfeed/internal/domain"
	"github.com/openorg/orgfeed/internal/mocks"
	"github.com/openorg/orgfeed/internal/model"
	"github.com/openorg/orgfeed/internal/service"
)

func newFeedService(ctrl *gomock.Controller, files service.FileStore) (
	*service.FeedService,
	*mocks.MockPostRepositoryIface,
	*mocks.MockEmployeeRepositoryIface,
) {
	postRepo := mocks.NewMockPostRepositoryIface(ctrl)
	employeeRepo := mocks.NewMockEmployeeRepositoryIface(ctrl)
	return service.NewFeedService(postRepo, employeeRepo, files), postRepo, employeeRepo
}

func TestGetFeed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("first page with page count", func(t *testing.T) {
		svc, postRepo, _ := newFeedService(ctrl, newMemFileStore())

		posts := make([]*model.Post, 16)
		for i := range posts {
			posts[i] = &model.Post{ID: uuid.New(), Status: model.StatusPosted}
		}
		postRepo.EXPECT().
			Feed(gomock.Any(), model.TypeOrganizationNews, gomock.Nil(), 0, 16).
			Return(posts, int64(35), nil)

		page, err := svc.GetFeed(context.Background(), model.TypeOrganizationNews, 1, nil)
		require.NoError(t, err)
		assert.Len(t, page.Posts, 16)
		assert.Equal(t, 3, page.PagesCount) // ceil(35/16)
	})

	t.Run("page past the end is empty, not an error", func(t *testing.T) {
		svc, postRepo, _ := newFeedService(ctrl, newMemFileStore())

		postRepo.EXPECT().
			Feed(gomock.Any(), model.TypeOrganizationNews, gomock.Nil(), 144, 16).
			Return(nil, int64(35), nil)

		page, err := svc.GetFeed(context.Background(), model.TypeOrganizationNews, 10, nil)
		require.NoError(t, err)
		assert.Empty(t, page.Posts)
		assert.Equal(t, 3, page.PagesCount)
	})

	t.Run("subunit-scoped type requires a subunit", func(t *testing.T) {
		svc, _, _ := newFeedService(ctrl, newMemFileStore())

		_, err := svc.GetFeed(context.Background(), model.TypeSubunitNews, 1, nil)
		assert.ErrorIs(t, err, domain.ErrSubunitRequired)
	})

	t.Run("organization type ignores the subunit filter", func(t *testing.T) {
		svc, postRepo, _ := newFeedService(ctrl, newMemFileStore())

		subunitID := uuid.New()
		postRepo.EXPECT().
			Feed(gomock.Any(), model.TypeOrganizationAnnouncement, gomock.Nil(), 0, 16).
			Return(nil, int64(0), nil)

		_, err := svc.GetFeed(context.Background(), model.TypeOrganizationAnnouncement, 1, &subunitID)
		require.NoError(t, err)
	})

	t.Run("unknown type rejected", func(t *testing.T) {
		svc, _, _ := newFeedService(ctrl, newMemFileStore())

		_, err := svc.GetFeed(context.Background(), model.PostType("gossip"), 1, nil)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("zero page rejected", func(t *testing.T) {
		svc, _, _ := newFeedService(ctrl, newMemFileStore())

		_, err := svc.GetFeed(context.Background(), model.TypeOrganizationNews, 0, nil)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestGetBiggest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	day := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

	t.Run("attachment bytes count toward size", func(t *testing.T) {
		files := newMemFileStore()
		svc, postRepo, _ := newFeedService(ctrl, files)

		bigFile := uuid.New()
		files.sizes[bigFile] = 5000

		longText := &model.Post{ID: uuid.New(), Title: "t", Body: string(make([]byte, 400))}
		withFile := &model.Post{
			ID:          uuid.New(),
			Title:       "t",
			Attachments: []model.Attachment{{ID: bigFile}},
		}
		postRepo.EXPECT().
			FindPublishedOn(gomock.Any(), day, []model.PostStatus{model.StatusPosted}).
			Return([]*model.Post{longText, withFile}, nil)

		got, err := svc.GetBiggest(context.Background(), day, false)
		require.NoError(t, err)
		assert.Equal(t, withFile.ID, got.ID)
		assert.Equal(t, int64(5001), got.Size)
	})

	t.Run("tie goes to the earlier publication", func(t *testing.T) {
		svc, postRepo, _ := newFeedService(ctrl, newMemFileStore())

		morning := day.Add(9 * time.Hour)
		evening := day.Add(20 * time.Hour)
		late := &model.Post{ID: uuid.New(), Title: "same", PublishedOn: &evening}
		early := &model.Post{ID: uuid.New(), Title: "same", PublishedOn: &morning}

		postRepo.EXPECT().
			FindPublishedOn(gomock.Any(), day, []model.PostStatus{model.StatusPosted}).
			Return([]*model.Post{late, early}, nil)

		got, err := svc.GetBiggest(context.Background(), day, false)
		require.NoError(t, err)
		assert.Equal(t, early.ID, got.ID)
	})

	t.Run("include archived widens the status set", func(t *testing.T) {
		svc, postRepo, _ := newFeedService(ctrl, newMemFileStore())

		archived := &model.Post{ID: uuid.New(), Title: "archived but big", Status: model.StatusArchived}
		postRepo.EXPECT().
			FindPublishedOn(gomock.Any(), day, []model.PostStatus{model.StatusPosted, model.StatusArchived}).
			Return([]*model.Post{archived}, nil)

		got, err := svc.GetBiggest(context.Background(), day, true)
		require.NoError(t, err)
		assert.Equal(t, archived.ID, got.ID)
	})

	t.Run("no posts that day", func(t *testing.T) {
		svc, postRepo, _ := newFeedService(ctrl, newMemFileStore())

		postRepo.EXPECT().
			FindPublishedOn(gomock.Any(), day, []model.PostStatus{model.StatusPosted}).
			Return(nil, nil)

		_, err := svc.GetBiggest(context.Background(), day, false)
		assert.ErrorIs(t, err, domain.ErrPostNotFound)
	})
}

func TestGetModerationQueue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("moderator sees the queue oldest first", func(t *testing.T) {
		svc, postRepo, employeeRepo := newFeedService(ctrl, newMemFileStore())

		moderator := &model.Employee{ID: uuid.New(), Role: model.RoleModerator}
		employeeRepo.EXPECT().FindByID(gomock.Any(), moderator.ID).Return(moderator, nil)

		statuses := []model.PostStatus{model.StatusUnderConsideration}
		postRepo.EXPECT().
			FindByStatuses(gomock.Any(), statuses, true, 0, 16).
			Return([]*model.Post{{ID: uuid.New()}}, int64(1), nil)

		page, err := svc.GetModerationQueue(context.Background(), moderator.ID, 1, statuses, true)
		require.NoError(t, err)
		assert.Len(t, page.Posts, 1)
		assert.Equal(t, 1, page.PagesCount)
	})

	t.Run("plain user forbidden", func(t *testing.T) {
		svc, _, employeeRepo := newFeedService(ctrl, newMemFileStore())

		user := &model.Employee{ID: uuid.New(), Role: model.RoleUser}
		employeeRepo.EXPECT().FindByID(gomock.Any(), user.ID).Return(user, nil)

		_, err := svc.GetModerationQueue(context.Background(), user.ID, 1,
			[]model.PostStatus{model.StatusUnderConsideration}, true)
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("empty status set rejected", func(t *testing.T) {
		svc, _, _ := newFeedService(ctrl, newMemFileStore())

		_, err := svc.GetModerationQueue(context.Background(), uuid.New(), 1, nil, true)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestGetEmployeePosts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("unknown employee", func(t *testing.T) {
		svc, _, employeeRepo := newFeedService(ctrl, newMemFileStore())

		id := uuid.New()
		employeeRepo.EXPECT().FindByID(gomock.Any(), id).Return(nil, domain.ErrEmployeeNotFound)

		_, err := svc.GetEmployeePosts(context.Background(), id)
		assert.ErrorIs(t, err, domain.ErrEmployeeNotFound)
	})

	t.Run("all statuses returned", func(t *testing.T) {
		svc, postRepo, employeeRepo := newFeedService(ctrl, newMemFileStore())

		author := &model.Employee{ID: uuid.New()}
		employeeRepo.EXPECT().FindByID(gomock.Any(), author.ID).Return(author, nil)
		postRepo.EXPECT().FindByAuthor(gomock.Any(), author.ID).Return([]*model.Post{
			{ID: uuid.New(), Status: model.StatusRejected},
			{ID: uuid.New(), Status: model.StatusPosted},
		}, nil)

		posts, err := svc.GetEmployeePosts(context.Background(), author.ID)
		require.NoError(t, err)
		assert.Len(t, posts, 2)
	})
}
