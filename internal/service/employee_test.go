package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/openorg/orgfeed/internal/auth"
	"github.com/openorg/orgfeed/internal/domain"
	"github.com/openorg/orgfeed/internal/mocks"
	"github.com/openorg/orgfeed/internal/model"
	"github.com/openorg/orgfeed/internal/service"
)

func newEmployeeService(ctrl *gomock.Controller) (
	*service.EmployeeService,
	*mocks.MockEmployeeRepositoryIface,
	*mocks.MockSubunitRepositoryIface,
) {
	employeeRepo := mocks.NewMockEmployeeRepositoryIface(ctrl)
	subunitRepo := mocks.NewMockSubunitRepositoryIface(ctrl)
	svc := service.NewEmployeeService(
		employeeRepo,
		subunitRepo,
		auth.NewPasswordHasher(),
		auth.NewTokenManager("test_secret", time.Hour, 24*time.Hour),
	)
	return svc, employeeRepo, subunitRepo
}

func TestRegister(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	admin := &model.Employee{ID: uuid.New(), Role: model.RoleAdmin}
	subunit := &model.Subunit{ID: uuid.New(), Name: "Engineering"}

	validInput := func() service.RegisterInput {
		return service.RegisterInput{
			Email:     "new.hire@example.com",
			FullName:  "New Hire",
			SubunitID: subunit.ID,
			Role:      model.RoleUser,
			Password:  "Str0ng?pass",
		}
	}

	t.Run("admin registers a user", func(t *testing.T) {
		svc, employeeRepo, subunitRepo := newEmployeeService(ctrl)

		employeeRepo.EXPECT().FindByID(gomock.Any(), admin.ID).Return(admin, nil)
		employeeRepo.EXPECT().FindByEmail(gomock.Any(), "new.hire@example.com").Return(nil, domain.ErrEmployeeNotFound)
		subunitRepo.EXPECT().FindByID(gomock.Any(), subunit.ID).Return(subunit, nil)
		employeeRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		employee, err := svc.Register(context.Background(), admin.ID, validInput())
		require.NoError(t, err)
		assert.Equal(t, "New Hire", employee.FullName)
		assert.NotEmpty(t, employee.PasswordHash)
		assert.NotEqual(t, "Str0ng?pass", employee.PasswordHash)
	})

	t.Run("non-admin forbidden", func(t *testing.T) {
		svc, employeeRepo, _ := newEmployeeService(ctrl)

		moderator := &model.Employee{ID: uuid.New(), Role: model.RoleModerator}
		employeeRepo.EXPECT().FindByID(gomock.Any(), moderator.ID).Return(moderator, nil)

		_, err := svc.Register(context.Background(), moderator.ID, validInput())
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("duplicate email", func(t *testing.T) {
		svc, employeeRepo, _ := newEmployeeService(ctrl)

		employeeRepo.EXPECT().FindByID(gomock.Any(), admin.ID).Return(admin, nil)
		employeeRepo.EXPECT().
			FindByEmail(gomock.Any(), "new.hire@example.com").
			Return(&model.Employee{ID: uuid.New()}, nil)

		_, err := svc.Register(context.Background(), admin.ID, validInput())
		assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
	})

	t.Run("password policy", func(t *testing.T) {
		svc, _, _ := newEmployeeService(ctrl)

		cases := []struct {
			name     string
			password string
		}{
			{"no uppercase", "weakpass1?"},
			{"no digit", "Weakpass??"},
			{"no lowercase", "WEAKPASS1?"},
			{"forbidden character", "Str0ng pass"},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				input := validInput()
				input.Password = tc.password
				_, err := svc.Register(context.Background(), admin.ID, input)
				assert.ErrorIs(t, err, domain.ErrWeakPassword)
			})
		}
	})
}

func TestAuthenticate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	hasher := auth.NewPasswordHasher()
	hash, err := hasher.Hash("Corr3ct?pass")
	require.NoError(t, err)

	account := &model.Employee{
		ID:           uuid.New(),
		Email:        "alice@example.com",
		PasswordHash: hash,
	}

	t.Run("valid credentials issue a token pair", func(t *testing.T) {
		svc, employeeRepo, _ := newEmployeeService(ctrl)

		employeeRepo.EXPECT().FindByEmail(gomock.Any(), account.Email).Return(account, nil)

		output, err := svc.Authenticate(context.Background(), account.Email, "Corr3ct?pass")
		require.NoError(t, err)
		assert.Equal(t, account.ID, output.Employee.ID)
		assert.NotEmpty(t, output.Tokens.AccessToken)
		assert.NotEmpty(t, output.Tokens.RefreshToken)
	})

	t.Run("wrong password", func(t *testing.T) {
		svc, employeeRepo, _ := newEmployeeService(ctrl)

		employeeRepo.EXPECT().FindByEmail(gomock.Any(), account.Email).Return(account, nil)

		_, err := svc.Authenticate(context.Background(), account.Email, "Wr0ng?pass")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("unknown email reads as bad credentials", func(t *testing.T) {
		svc, employeeRepo, _ := newEmployeeService(ctrl)

		employeeRepo.EXPECT().
			FindByEmail(gomock.Any(), "ghost@example.com").
			Return(nil, domain.ErrEmployeeNotFound)

		_, err := svc.Authenticate(context.Background(), "ghost@example.com", "whatever")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})
}

func TestEditEmployee(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	admin := &model.Employee{ID: uuid.New(), Role: model.RoleAdmin}

	t.Run("empty edit rejected", func(t *testing.T) {
		svc, _, _ := newEmployeeService(ctrl)

		_, err := svc.Edit(context.Background(), admin.ID, uuid.New(), service.EditEmployeeInput{})
		assert.ErrorIs(t, err, domain.ErrNothingToEdit)
	})

	t.Run("admin fires an employee", func(t *testing.T) {
		svc, employeeRepo, _ := newEmployeeService(ctrl)

		target := &model.Employee{ID: uuid.New(), Role: model.RoleModerator, Fired: false}
		fired := true

		employeeRepo.EXPECT().FindByID(gomock.Any(), admin.ID).Return(admin, nil)
		employeeRepo.EXPECT().FindByID(gomock.Any(), target.ID).Return(target, nil)
		employeeRepo.EXPECT().
			Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, updated *model.Employee) error {
				assert.True(t, updated.Fired)
				assert.Equal(t, model.RoleModerator, updated.Role)
				return nil
			})

		got, err := svc.Edit(context.Background(), admin.ID, target.ID, service.EditEmployeeInput{Fired: &fired})
		require.NoError(t, err)
		assert.True(t, got.Fired)
	})

	t.Run("non-admin forbidden", func(t *testing.T) {
		svc, employeeRepo, _ := newEmployeeService(ctrl)

		user := &model.Employee{ID: uuid.New(), Role: model.RoleUser}
		name := "New Name"

		employeeRepo.EXPECT().FindByID(gomock.Any(), user.ID).Return(user, nil)

		_, err := svc.Edit(context.Background(), user.ID, uuid.New(), service.EditEmployeeInput{FullName: &name})
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})
}

func TestFiredModerators(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, employeeRepo, subunitRepo := newEmployeeService(ctrl)

	subunit := &model.Subunit{ID: uuid.New(), Name: "Engineering"}
	firedModerator := &model.Employee{ID: uuid.New(), Role: model.RoleModerator, Fired: true}

	subunitRepo.EXPECT().FindByID(gomock.Any(), subunit.ID).Return(subunit, nil)
	employeeRepo.EXPECT().
		FiredModeratorsOfSubunit(gomock.Any(), subunit.ID).
		Return([]*model.Employee{firedModerator}, nil)

	moderators, err := svc.FiredModerators(context.Background(), subunit.ID)
	require.NoError(t, err)
	require.Len(t, moderators, 1)
	assert.True(t, moderators[0].Fired)
}
