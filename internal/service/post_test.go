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

func newPostService(ctrl *gomock.Controller, files service.FileStore) (
	*service.PostService,
	*mocks.MockPostRepositoryIface,
	*mocks.MockEmployeeRepositoryIface,
	*mocks.MockAttachmentRepositoryIface,
) {
	postRepo := mocks.NewMockPostRepositoryIface(ctrl)
	employeeRepo := mocks.NewMockEmployeeRepositoryIface(ctrl)
	attachmentRepo := mocks.NewMockAttachmentRepositoryIface(ctrl)
	svc := service.NewPostService(postRepo, employeeRepo, attachmentRepo, files, nil, nil)
	return svc, postRepo, employeeRepo, attachmentRepo
}

func TestCreatePost(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	subunitID := uuid.New()

	t.Run("plain user goes through moderation", func(t *testing.T) {
		svc, postRepo, employeeRepo, _ := newPostService(ctrl, newMemFileStore())

		author := &model.Employee{ID: uuid.New(), Role: model.RoleUser, SubunitID: subunitID}
		employeeRepo.EXPECT().FindByID(gomock.Any(), author.ID).Return(author, nil)

		var created *model.Post
		postRepo.EXPECT().
			Create(gomock.Any(), gomock.Any(), gomock.Nil()).
			DoAndReturn(func(_ context.Context, post *model.Post, _ []uuid.UUID) error {
				created = post
				return nil
			})
		postRepo.EXPECT().
			FindByID(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, id uuid.UUID) (*model.Post, error) {
				return created, nil
			})

		post, err := svc.Create(context.Background(), author.ID, service.CreatePostInput{
			Title: "Quarterly results",
			Body:  "Numbers are up.",
			Type:  model.TypeOrganizationNews,
		})

		require.NoError(t, err)
		assert.Equal(t, model.StatusUnderConsideration, post.Status)
		assert.Nil(t, post.PublishedOn)
		assert.Nil(t, post.ApprovedByID)
		assert.WithinDuration(t, post.CreatedOn.Add(model.ArchiveHorizon), post.ArchivedOn, time.Second)
	})

	t.Run("moderator publishes immediately", func(t *testing.T) {
		svc, postRepo, employeeRepo, _ := newPostService(ctrl, newMemFileStore())

		moderator := &model.Employee{ID: uuid.New(), Role: model.RoleModerator, SubunitID: subunitID}
		employeeRepo.EXPECT().FindByID(gomock.Any(), moderator.ID).Return(moderator, nil)

		var created *model.Post
		postRepo.EXPECT().
			Create(gomock.Any(), gomock.Any(), gomock.Nil()).
			DoAndReturn(func(_ context.Context, post *model.Post, _ []uuid.UUID) error {
				created = post
				return nil
			})
		postRepo.EXPECT().
			FindByID(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, id uuid.UUID) (*model.Post, error) {
				return created, nil
			})

		post, err := svc.Create(context.Background(), moderator.ID, service.CreatePostInput{
			Title: "Maintenance window",
			Body:  "Saturday night.",
			Type:  model.TypeOrganizationAnnouncement,
		})

		require.NoError(t, err)
		assert.Equal(t, model.StatusPosted, post.Status)
		require.NotNil(t, post.PublishedOn)
		require.NotNil(t, post.ApprovedByID)
		assert.Equal(t, moderator.ID, *post.ApprovedByID)
		// Publication is ordered strictly after creation.
		assert.True(t, post.PublishedOn.After(post.CreatedOn))
	})

	t.Run("missing attachment rejected", func(t *testing.T) {
		svc, _, _, attachmentRepo := newPostService(ctrl, newMemFileStore())

		ids := []uuid.UUID{uuid.New(), uuid.New()}
		attachmentRepo.EXPECT().
			FindByIDs(gomock.Any(), ids).
			Return([]*model.Attachment{{ID: ids[0]}}, nil)

		_, err := svc.Create(context.Background(), uuid.New(), service.CreatePostInput{
			Title:         "With files",
			Type:          model.TypeOrganizationNews,
			AttachmentIDs: ids,
		})

		assert.ErrorIs(t, err, domain.ErrAttachmentNotFound)
	})

	t.Run("title too short", func(t *testing.T) {
		svc, _, _, _ := newPostService(ctrl, newMemFileStore())

		_, err := svc.Create(context.Background(), uuid.New(), service.CreatePostInput{
			Title: "ab",
			Type:  model.TypeOrganizationNews,
		})

		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestSetStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	moderator := &model.Employee{ID: uuid.New(), Role: model.RoleModerator}

	t.Run("approval stamps publication and approver", func(t *testing.T) {
		svc, postRepo, employeeRepo, _ := newPostService(ctrl, newMemFileStore())

		post := &model.Post{
			ID:         uuid.New(),
			Status:     model.StatusUnderConsideration,
			AuthorID:   uuid.New(),
			CreatedOn:  time.Now().UTC().Add(-time.Hour),
			ArchivedOn: time.Now().UTC().Add(model.ArchiveHorizon),
		}

		employeeRepo.EXPECT().FindByID(gomock.Any(), moderator.ID).Return(moderator, nil)
		postRepo.EXPECT().FindByID(gomock.Any(), post.ID).Return(post, nil).Times(2)
		postRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Nil()).
			DoAndReturn(func(_ context.Context, updated *model.Post, _ *[]uuid.UUID) error {
				assert.Equal(t, model.StatusPosted, updated.Status)
				require.NotNil(t, updated.PublishedOn)
				require.NotNil(t, updated.ApprovedByID)
				assert.Equal(t, moderator.ID, *updated.ApprovedByID)
				return nil
			})

		_, err := svc.SetStatus(context.Background(), moderator.ID, post.ID, model.StatusPosted)
		require.NoError(t, err)
	})

	t.Run("same status writes nothing", func(t *testing.T) {
		svc, postRepo, employeeRepo, _ := newPostService(ctrl, newMemFileStore())

		post := &model.Post{ID: uuid.New(), Status: model.StatusRejected, AuthorID: uuid.New()}

		employeeRepo.EXPECT().FindByID(gomock.Any(), moderator.ID).Return(moderator, nil)
		postRepo.EXPECT().FindByID(gomock.Any(), post.ID).Return(post, nil)
		// No Update expectation: a write here fails the test.

		got, err := svc.SetStatus(context.Background(), moderator.ID, post.ID, model.StatusRejected)
		require.NoError(t, err)
		assert.Equal(t, model.StatusRejected, got.Status)
	})

	t.Run("leaving the archive grants a fresh horizon", func(t *testing.T) {
		svc, postRepo, employeeRepo, _ := newPostService(ctrl, newMemFileStore())

		published := time.Now().UTC().Add(-200 * 24 * time.Hour)
		post := &model.Post{
			ID:          uuid.New(),
			Status:      model.StatusArchived,
			AuthorID:    uuid.New(),
			PublishedOn: &published,
			ArchivedOn:  time.Now().UTC().Add(-time.Hour),
		}

		employeeRepo.EXPECT().FindByID(gomock.Any(), moderator.ID).Return(moderator, nil)
		postRepo.EXPECT().FindByID(gomock.Any(), post.ID).Return(post, nil).Times(2)
		postRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Nil()).
			DoAndReturn(func(_ context.Context, updated *model.Post, _ *[]uuid.UUID) error {
				assert.Equal(t, model.StatusPosted, updated.Status)
				assert.WithinDuration(t, time.Now().UTC().Add(model.ArchiveHorizon), updated.ArchivedOn, time.Minute)
				return nil
			})

		_, err := svc.SetStatus(context.Background(), moderator.ID, post.ID, model.StatusPosted)
		require.NoError(t, err)
	})

	t.Run("archiving records the archive instant", func(t *testing.T) {
		svc, postRepo, employeeRepo, _ := newPostService(ctrl, newMemFileStore())

		post := &model.Post{
			ID:         uuid.New(),
			Status:     model.StatusPosted,
			AuthorID:   uuid.New(),
			ArchivedOn: time.Now().UTC().Add(model.ArchiveHorizon),
		}

		employeeRepo.EXPECT().FindByID(gomock.Any(), moderator.ID).Return(moderator, nil)
		postRepo.EXPECT().FindByID(gomock.Any(), post.ID).Return(post, nil).Times(2)
		postRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Nil()).
			DoAndReturn(func(_ context.Context, updated *model.Post, _ *[]uuid.UUID) error {
				assert.WithinDuration(t, time.Now().UTC(), updated.ArchivedOn, time.Minute)
				return nil
			})

		_, err := svc.SetStatus(context.Background(), moderator.ID, post.ID, model.StatusArchived)
		require.NoError(t, err)
	})

	t.Run("plain user forbidden", func(t *testing.T) {
		svc, _, employeeRepo, _ := newPostService(ctrl, newMemFileStore())

		user := &model.Employee{ID: uuid.New(), Role: model.RoleUser}
		employeeRepo.EXPECT().FindByID(gomock.Any(), user.ID).Return(user, nil)

		_, err := svc.SetStatus(context.Background(), user.ID, uuid.New(), model.StatusPosted)
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		svc, _, _, _ := newPostService(ctrl, newMemFileStore())

		_, err := svc.SetStatus(context.Background(), moderator.ID, uuid.New(), model.PostStatus("published"))
		assert.ErrorIs(t, err, domain.ErrInvalidStatus)
	})
}

func TestEditPost(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("empty edit rejected", func(t *testing.T) {
		svc, _, _, _ := newPostService(ctrl, newMemFileStore())

		_, err := svc.Edit(context.Background(), uuid.New(), uuid.New(), service.EditPostInput{})
		assert.ErrorIs(t, err, domain.ErrNothingToEdit)
	})

	t.Run("author updates provided fields only", func(t *testing.T) {
		svc, postRepo, _, _ := newPostService(ctrl, newMemFileStore())

		authorID := uuid.New()
		post := &model.Post{
			ID:       uuid.New(),
			AuthorID: authorID,
			Title:    "Old title",
			Body:     "Old body",
			Type:     model.TypeOrganizationNews,
		}

		newTitle := "New title"
		postRepo.EXPECT().FindByID(gomock.Any(), post.ID).Return(post, nil).Times(2)
		postRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Nil()).
			DoAndReturn(func(_ context.Context, updated *model.Post, _ *[]uuid.UUID) error {
				assert.Equal(t, newTitle, updated.Title)
				assert.Equal(t, "Old body", updated.Body)
				return nil
			})

		_, err := svc.Edit(context.Background(), authorID, post.ID, service.EditPostInput{Title: &newTitle})
		require.NoError(t, err)
	})

	t.Run("non-author non-admin forbidden", func(t *testing.T) {
		svc, postRepo, employeeRepo, _ := newPostService(ctrl, newMemFileStore())

		stranger := &model.Employee{ID: uuid.New(), Role: model.RoleModerator}
		post := &model.Post{ID: uuid.New(), AuthorID: uuid.New()}

		title := "hijack"
		postRepo.EXPECT().FindByID(gomock.Any(), post.ID).Return(post, nil)
		employeeRepo.EXPECT().FindByID(gomock.Any(), stranger.ID).Return(stranger, nil)

		_, err := svc.Edit(context.Background(), stranger.ID, post.ID, service.EditPostInput{Title: &title})
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})
}

func TestDeletePost(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("author deletes with attachment files", func(t *testing.T) {
		files := newMemFileStore()
		svc, postRepo, _, _ := newPostService(ctrl, files)

		authorID := uuid.New()
		attachmentID := uuid.New()
		files.sizes[attachmentID] = 100

		post := &model.Post{ID: uuid.New(), AuthorID: authorID}
		postRepo.EXPECT().FindByID(gomock.Any(), post.ID).Return(post, nil)
		postRepo.EXPECT().Delete(gomock.Any(), post.ID, true).Return([]uuid.UUID{attachmentID}, nil)

		err := svc.Delete(context.Background(), authorID, post.ID, true)
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{attachmentID}, files.removed)
	})

	t.Run("detach keeps files", func(t *testing.T) {
		files := newMemFileStore()
		svc, postRepo, _, _ := newPostService(ctrl, files)

		authorID := uuid.New()
		post := &model.Post{ID: uuid.New(), AuthorID: authorID}
		postRepo.EXPECT().FindByID(gomock.Any(), post.ID).Return(post, nil)
		postRepo.EXPECT().Delete(gomock.Any(), post.ID, false).Return(nil, nil)

		err := svc.Delete(context.Background(), authorID, post.ID, false)
		require.NoError(t, err)
		assert.Empty(t, files.removed)
	})

	t.Run("plain non-author forbidden", func(t *testing.T) {
		svc, postRepo, employeeRepo, _ := newPostService(ctrl, newMemFileStore())

		user := &model.Employee{ID: uuid.New(), Role: model.RoleUser}
		post := &model.Post{ID: uuid.New(), AuthorID: uuid.New()}

		postRepo.EXPECT().FindByID(gomock.Any(), post.ID).Return(post, nil)
		employeeRepo.EXPECT().FindByID(gomock.Any(), user.ID).Return(user, nil)

		err := svc.Delete(context.Background(), user.ID, post.ID, false)
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})
}

func TestPostSize(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	files := newMemFileStore()
	svc, postRepo, _, _ := newPostService(ctrl, files)

	first, second := uuid.New(), uuid.New()
	files.sizes[first] = 1000
	files.sizes[second] = 24

	post := &model.Post{
		ID:    uuid.New(),
		Title: "12345",     // 5 bytes
		Body:  "1234567890", // 10 bytes
		Attachments: []model.Attachment{
			{ID: first},
			{ID: second},
		},
	}
	postRepo.EXPECT().FindByID(gomock.Any(), post.ID).Return(post, nil)

	got, err := svc.Get(context.Background(), post.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(5+10+1000+24), got.Size)
	assert.Equal(t, int64(1000), got.Attachments[0].Size)
}
