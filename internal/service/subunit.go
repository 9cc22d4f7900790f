// internal/service/subunit.go
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/openorg/orgfeed/internal/domain"
	"github.com/openorg/orgfeed/internal/model"
	"github.com/openorg/orgfeed/internal/repository"
)

type SubunitService struct {
	repo      repository.SubunitRepositoryIface
	employees repository.EmployeeRepositoryIface
	validate  *validator.Validate
}

func NewSubunitService(
	repo repository.SubunitRepositoryIface,
	employees repository.EmployeeRepositoryIface,
) *SubunitService {
	return &SubunitService{
		repo:      repo,
		employees: employees,
		validate:  validator.New(),
	}
}

type CreateSubunitInput struct {
	Name     string    `json:"name" validate:"required"`
	Address  string    `json:"address"`
	LeaderID uuid.UUID `json:"leader" validate:"required"`
	Phone    string    `json:"phone"`
	Email    string    `json:"email" validate:"required,email"`
}

// Create adds a subunit. Admin-only; the leader must already exist and
// name and email must be unique across subunits.
func (s *SubunitService) Create(ctx context.Context, creatorID uuid.UUID, input CreateSubunitInput) (*model.Subunit, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err)
	}
	if err := s.requireAdmin(ctx, creatorID); err != nil {
		return nil, err
	}

	if _, err := s.employees.FindByID(ctx, input.LeaderID); err != nil {
		if errors.Is(err, domain.ErrEmployeeNotFound) {
			return nil, domain.ErrLeaderNotFound
		}
		return nil, err
	}
	if err := s.checkUnique(ctx, input.Name, input.Email, uuid.Nil); err != nil {
		return nil, err
	}

	subunit := &model.Subunit{
		ID:       uuid.New(),
		Name:     input.Name,
		Address:  input.Address,
		LeaderID: input.LeaderID,
		Phone:    input.Phone,
		Email:    input.Email,
	}
	if err := s.repo.Create(ctx, subunit); err != nil {
		return nil, fmt.Errorf("creating subunit: %w", err)
	}

	// Re-read to include the roster.
	return s.repo.FindByID(ctx, subunit.ID)
}

type EditSubunitInput struct {
	Name     *string    `json:"name"`
	Address  *string    `json:"address"`
	LeaderID *uuid.UUID `json:"leader"`
	Phone    *string    `json:"phone"`
	Email    *string    `json:"email"`
}

func (i EditSubunitInput) empty() bool {
	return i.Name == nil && i.Address == nil && i.LeaderID == nil && i.Phone == nil && i.Email == nil
}

// Edit applies a partial update to a subunit. Admin-only.
func (s *SubunitService) Edit(ctx context.Context, editorID, subunitID uuid.UUID, input EditSubunitInput) (*model.Subunit, error) {
	if input.empty() {
		return nil, domain.ErrNothingToEdit
	}
	if err := s.requireAdmin(ctx, editorID); err != nil {
		return nil, err
	}

	subunit, err := s.repo.FindByID(ctx, subunitID)
	if err != nil {
		return nil, err
	}

	if input.LeaderID != nil {
		if _, err := s.employees.FindByID(ctx, *input.LeaderID); err != nil {
			if errors.Is(err, domain.ErrEmployeeNotFound) {
				return nil, domain.ErrLeaderNotFound
			}
			return nil, err
		}
		subunit.LeaderID = *input.LeaderID
	}
	if input.Name != nil && *input.Name != subunit.Name {
		if err := s.checkUnique(ctx, *input.Name, "", subunit.ID); err != nil {
			return nil, err
		}
		subunit.Name = *input.Name
	}
	if input.Email != nil && *input.Email != subunit.Email {
		if err := s.checkUnique(ctx, "", *input.Email, subunit.ID); err != nil {
			return nil, err
		}
		subunit.Email = *input.Email
	}
	if input.Address != nil {
		subunit.Address = *input.Address
	}
	if input.Phone != nil {
		subunit.Phone = *input.Phone
	}

	if err := s.repo.Update(ctx, subunit); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, subunit.ID)
}

// Get returns a subunit with its roster.
func (s *SubunitService) Get(ctx context.Context, id uuid.UUID) (*model.Subunit, error) {
	return s.repo.FindByID(ctx, id)
}

// ListAll returns all subunits, rosters included.
func (s *SubunitService) ListAll(ctx context.Context) ([]*model.Subunit, error) {
	return s.repo.FindAll(ctx)
}

func (s *SubunitService) requireAdmin(ctx context.Context, actorID uuid.UUID) error {
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
	return nil
}

// checkUnique rejects a name or email already used by another subunit.
// Empty arguments are skipped; self matches (same ID) are allowed.
func (s *SubunitService) checkUnique(ctx context.Context, name, email string, selfID uuid.UUID) error {
	if name != "" {
		existing, err := s.repo.FindByName(ctx, name)
		if err != nil && !errors.Is(err, domain.ErrSubunitNotFound) {
			return err
		}
		if existing != nil && existing.ID != selfID {
			return domain.ErrSubunitNameTaken
		}
	}
	if email != "" {
		existing, err := s.repo.FindByEmail(ctx, email)
		if err != nil && !errors.Is(err, domain.ErrSubunitNotFound) {
			return err
		}
		if existing != nil && existing.ID != selfID {
			return domain.ErrSubunitEmailTaken
		}
	}
	return nil
}
