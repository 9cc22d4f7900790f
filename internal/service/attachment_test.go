package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/openorg/orgfeed/internal/domain"
	"github.com/openorg/orgfeed/internal/mocks"
	"github.com/openorg/orgfeed/internal/model"
	"github.com/openorg/orgfeed/internal/service"
)

func newAttachmentService(ctrl *gomock.Controller, files service.FileStore) (
	*service.AttachmentService,
	*mocks.MockAttachmentRepositoryIface,
	*mocks.MockEmployeeRepositoryIface,
) {
	attachmentRepo := mocks.NewMockAttachmentRepositoryIface(ctrl)
	employeeRepo := mocks.NewMockEmployeeRepositoryIface(ctrl)
	return service.NewAttachmentService(attachmentRepo, employeeRepo, files), attachmentRepo, employeeRepo
}

func TestUploadAttachment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("stores the file and records ownership", func(t *testing.T) {
		files := newMemFileStore()
		svc, attachmentRepo, _ := newAttachmentService(ctrl, files)

		authorID := uuid.New()
		attachmentRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		attachment, err := svc.Upload(context.Background(), authorID, "report.pdf", strings.NewReader("12345678"))
		require.NoError(t, err)
		assert.Equal(t, authorID, attachment.AuthorID)
		assert.Equal(t, "report.pdf", attachment.Filename)
		assert.Equal(t, int64(8), attachment.Size)
		assert.Nil(t, attachment.PostID)
	})

	t.Run("removes the file when the record fails", func(t *testing.T) {
		files := newMemFileStore()
		svc, attachmentRepo, _ := newAttachmentService(ctrl, files)

		attachmentRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("insert failed"))

		_, err := svc.Upload(context.Background(), uuid.New(), "report.pdf", strings.NewReader("12345678"))
		require.Error(t, err)
		assert.Len(t, files.removed, 1)
	})
}

func TestDeleteAttachment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("uploader deletes record and file", func(t *testing.T) {
		files := newMemFileStore()
		svc, attachmentRepo, _ := newAttachmentService(ctrl, files)

		authorID := uuid.New()
		attachment := &model.Attachment{ID: uuid.New(), AuthorID: authorID}
		files.sizes[attachment.ID] = 10

		attachmentRepo.EXPECT().FindByID(gomock.Any(), attachment.ID).Return(attachment, nil)
		attachmentRepo.EXPECT().Delete(gomock.Any(), attachment.ID).Return(nil)

		err := svc.Delete(context.Background(), authorID, attachment.ID)
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{attachment.ID}, files.removed)
	})

	t.Run("moderator without ownership forbidden", func(t *testing.T) {
		svc, attachmentRepo, employeeRepo := newAttachmentService(ctrl, newMemFileStore())

		moderator := &model.Employee{ID: uuid.New(), Role: model.RoleModerator}
		attachment := &model.Attachment{ID: uuid.New(), AuthorID: uuid.New()}

		attachmentRepo.EXPECT().FindByID(gomock.Any(), attachment.ID).Return(attachment, nil)
		employeeRepo.EXPECT().FindByID(gomock.Any(), moderator.ID).Return(moderator, nil)

		err := svc.Delete(context.Background(), moderator.ID, attachment.ID)
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})
}

func TestListAttachmentsByAuthor(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	files := newMemFileStore()
	svc, attachmentRepo, employeeRepo := newAttachmentService(ctrl, files)

	author := &model.Employee{ID: uuid.New()}
	first := &model.Attachment{ID: uuid.New(), AuthorID: author.ID}
	files.sizes[first.ID] = 42

	employeeRepo.EXPECT().FindByID(gomock.Any(), author.ID).Return(author, nil)
	attachmentRepo.EXPECT().
		FindByAuthor(gomock.Any(), author.ID, 0, 16).
		Return([]*model.Attachment{first}, int64(17), nil)

	page, err := svc.ListByAuthor(context.Background(), author.ID, 1)
	require.NoError(t, err)
	require.Len(t, page.Attachments, 1)
	assert.Equal(t, int64(42), page.Attachments[0].Size)
	assert.Equal(t, 2, page.PagesCount)
}
