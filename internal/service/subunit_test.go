package service_test

import (
	"context"
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

func newSubunitService(ctrl *gomock.Controller) (
	*service.SubunitService,
	*mocks.MockSubunitRepositoryIface,
	*mocks.MockEmployeeRepositoryIface,
) {
	subunitRepo := mocks.NewMockSubunitRepositoryIface(ctrl)
	employeeRepo := mocks.NewMockEmployeeRepositoryIface(ctrl)
	return service.NewSubunitService(subunitRepo, employeeRepo), subunitRepo, employeeRepo
}

func TestCreateSubunit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	admin := &model.Employee{ID: uuid.New(), Role: model.RoleAdmin}
	leader := &model.Employee{ID: uuid.New(), Role: model.RoleModerator}

	input := func() service.CreateSubunitInput {
		return service.CreateSubunitInput{
			Name:     "Engineering",
			LeaderID: leader.ID,
			Email:    "eng@example.com",
		}
	}

	t.Run("admin creates a subunit", func(t *testing.T) {
		svc, subunitRepo, employeeRepo := newSubunitService(ctrl)

		employeeRepo.EXPECT().FindByID(gomock.Any(), admin.ID).Return(admin, nil)
		employeeRepo.EXPECT().FindByID(gomock.Any(), leader.ID).Return(leader, nil)
		subunitRepo.EXPECT().FindByName(gomock.Any(), "Engineering").Return(nil, domain.ErrSubunitNotFound)
		subunitRepo.EXPECT().FindByEmail(gomock.Any(), "eng@example.com").Return(nil, domain.ErrSubunitNotFound)

		var createdID uuid.UUID
		subunitRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, subunit *model.Subunit) error {
				createdID = subunit.ID
				assert.Equal(t, leader.ID, subunit.LeaderID)
				return nil
			})
		subunitRepo.EXPECT().
			FindByID(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, id uuid.UUID) (*model.Subunit, error) {
				assert.Equal(t, createdID, id)
				return &model.Subunit{ID: id, Name: "Engineering"}, nil
			})

		subunit, err := svc.Create(context.Background(), admin.ID, input())
		require.NoError(t, err)
		assert.Equal(t, "Engineering", subunit.Name)
	})

	t.Run("unknown leader", func(t *testing.T) {
		svc, _, employeeRepo := newSubunitService(ctrl)

		employeeRepo.EXPECT().FindByID(gomock.Any(), admin.ID).Return(admin, nil)
		employeeRepo.EXPECT().FindByID(gomock.Any(), leader.ID).Return(nil, domain.ErrEmployeeNotFound)

		_, err := svc.Create(context.Background(), admin.ID, input())
		assert.ErrorIs(t, err, domain.ErrLeaderNotFound)
	})

	t.Run("name already taken", func(t *testing.T) {
		svc, subunitRepo, employeeRepo := newSubunitService(ctrl)

		employeeRepo.EXPECT().FindByID(gomock.Any(), admin.ID).Return(admin, nil)
		employeeRepo.EXPECT().FindByID(gomock.Any(), leader.ID).Return(leader, nil)
		subunitRepo.EXPECT().
			FindByName(gomock.Any(), "Engineering").
			Return(&model.Subunit{ID: uuid.New(), Name: "Engineering"}, nil)

		_, err := svc.Create(context.Background(), admin.ID, input())
		assert.ErrorIs(t, err, domain.ErrSubunitNameTaken)
	})

	t.Run("non-admin forbidden", func(t *testing.T) {
		svc, _, employeeRepo := newSubunitService(ctrl)

		moderator := &model.Employee{ID: uuid.New(), Role: model.RoleModerator}
		employeeRepo.EXPECT().FindByID(gomock.Any(), moderator.ID).Return(moderator, nil)

		_, err := svc.Create(context.Background(), moderator.ID, input())
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})
}

func TestEditSubunit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	admin := &model.Employee{ID: uuid.New(), Role: model.RoleAdmin}

	t.Run("empty edit rejected", func(t *testing.T) {
		svc, _, _ := newSubunitService(ctrl)

		_, err := svc.Edit(context.Background(), admin.ID, uuid.New(), service.EditSubunitInput{})
		assert.ErrorIs(t, err, domain.ErrNothingToEdit)
	})

	t.Run("email conflict with another subunit", func(t *testing.T) {
		svc, subunitRepo, employeeRepo := newSubunitService(ctrl)

		subunit := &model.Subunit{ID: uuid.New(), Name: "Engineering", Email: "eng@example.com"}
		email := "sales@example.com"

		employeeRepo.EXPECT().FindByID(gomock.Any(), admin.ID).Return(admin, nil)
		subunitRepo.EXPECT().FindByID(gomock.Any(), subunit.ID).Return(subunit, nil)
		subunitRepo.EXPECT().
			FindByEmail(gomock.Any(), email).
			Return(&model.Subunit{ID: uuid.New(), Email: email}, nil)

		_, err := svc.Edit(context.Background(), admin.ID, subunit.ID, service.EditSubunitInput{Email: &email})
		assert.ErrorIs(t, err, domain.ErrSubunitEmailTaken)
	})

	t.Run("partial update keeps other fields", func(t *testing.T) {
		svc, subunitRepo, employeeRepo := newSubunitService(ctrl)

		subunit := &model.Subunit{
			ID:      uuid.New(),
			Name:    "Engineering",
			Email:   "eng@example.com",
			Address: "Floor 3",
		}
		phone := "+1 555 0100"

		employeeRepo.EXPECT().FindByID(gomock.Any(), admin.ID).Return(admin, nil)
		subunitRepo.EXPECT().FindByID(gomock.Any(), subunit.ID).Return(subunit, nil).Times(2)
		subunitRepo.EXPECT().
			Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, updated *model.Subunit) error {
				assert.Equal(t, phone, updated.Phone)
				assert.Equal(t, "Floor 3", updated.Address)
				assert.Equal(t, "Engineering", updated.Name)
				return nil
			})

		_, err := svc.Edit(context.Background(), admin.ID, subunit.ID, service.EditSubunitInput{Phone: &phone})
		require.NoError(t, err)
	})
}
