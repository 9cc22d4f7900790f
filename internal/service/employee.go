// internal/service/employee.go
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/openorg/orgfeed/internal/auth"
	"github.com/openorg/orgfeed/internal/domain"
	"github.com/openorg/orgfeed/internal/model"
	"github.com/openorg/orgfeed/internal/repository"
)

// passwordSymbols is the set of non-alphanumeric characters a password
// may contain.
const passwordSymbols = `-.?!@=_^:;#$%&*()+\<>~` + "`" + `/"'`

type EmployeeService struct {
	repo     repository.EmployeeRepositoryIface
	subunits repository.SubunitRepositoryIface
	hasher   *auth.PasswordHasher
	tokens   *auth.TokenManager
	validate *validator.Validate
}

func NewEmployeeService(
	repo repository.EmployeeRepositoryIface,
	subunits repository.SubunitRepositoryIface,
	hasher *auth.PasswordHasher,
	tokens *auth.TokenManager,
) *EmployeeService {
	return &EmployeeService{
		repo:     repo,
		subunits: subunits,
		hasher:   hasher,
		tokens:   tokens,
		validate: validator.New(),
	}
}

type RegisterInput struct {
	Email     string     `json:"email" validate:"required,email"`
	FullName  string     `json:"full_name" validate:"required"`
	SubunitID uuid.UUID  `json:"subunit" validate:"required"`
	Role      model.Role `json:"role" validate:"required"`
	Password  string     `json:"password" validate:"required,min=8"`
}

// Register creates a new employee account. Admin-only.
func (s *EmployeeService) Register(ctx context.Context, registrarID uuid.UUID, input RegisterInput) (*model.Employee, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err)
	}
	if err := checkPassword(input.Password); err != nil {
		return nil, err
	}

	registrar, err := s.repo.FindByID(ctx, registrarID)
	if err != nil {
		if errors.Is(err, domain.ErrEmployeeNotFound) {
			return nil, domain.ErrForbidden
		}
		return nil, err
	}
	if registrar.Role != model.RoleAdmin {
		return nil, domain.ErrForbidden
	}

	existing, err := s.repo.FindByEmail(ctx, input.Email)
	if err != nil && !errors.Is(err, domain.ErrEmployeeNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	if _, err := s.subunits.FindByID(ctx, input.SubunitID); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	employee := &model.Employee{
		ID:           uuid.New(),
		Email:        input.Email,
		FullName:     input.FullName,
		SubunitID:    input.SubunitID,
		Role:         input.Role,
		PasswordHash: hash,
	}
	if err := s.repo.Create(ctx, employee); err != nil {
		return nil, fmt.Errorf("creating employee: %w", err)
	}

	return employee, nil
}

type LoginOutput struct {
	Employee *model.Employee `json:"employee"`
	Tokens   *auth.TokenPair `json:"tokens"`
}

// Authenticate verifies the credentials and issues a token pair.
func (s *EmployeeService) Authenticate(ctx context.Context, email, password string) (*LoginOutput, error) {
	employee, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrEmployeeNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	verified, err := s.hasher.Verify(password, employee.PasswordHash)
	if err != nil || !verified {
		return nil, domain.ErrInvalidCredentials
	}

	tokens, err := s.tokens.GeneratePair(employee.ID.String(), employee.Email)
	if err != nil {
		return nil, fmt.Errorf("generating tokens: %w", err)
	}

	return &LoginOutput{Employee: employee, Tokens: tokens}, nil
}

func (s *EmployeeService) Get(ctx context.Context, id uuid.UUID) (*model.Employee, error) {
	return s.repo.FindByID(ctx, id)
}

// GetMany resolves a batch of employee IDs with a single query.
func (s *EmployeeService) GetMany(ctx context.Context, ids []uuid.UUID) ([]*model.Employee, error) {
	return s.repo.FindByIDs(ctx, ids)
}

// EditEmployeeInput distinguishes omitted fields (nil) from provided
// ones, so an admin can clear or flip any field explicitly.
type EditEmployeeInput struct {
	Email     *string     `json:"email"`
	FullName  *string     `json:"full_name"`
	SubunitID *uuid.UUID  `json:"subunit"`
	Role      *model.Role `json:"role"`
	Fired     *bool       `json:"fired"`
}

func (i EditEmployeeInput) empty() bool {
	return i.Email == nil && i.FullName == nil && i.SubunitID == nil && i.Role == nil && i.Fired == nil
}

// Edit applies a partial update to an employee record. Admin-only.
func (s *EmployeeService) Edit(ctx context.Context, editorID, employeeID uuid.UUID, input EditEmployeeInput) (*model.Employee, error) {
	if input.empty() {
		return nil, domain.ErrNothingToEdit
	}

	editor, err := s.repo.FindByID(ctx, editorID)
	if err != nil {
		if errors.Is(err, domain.ErrEmployeeNotFound) {
			return nil, domain.ErrForbidden
		}
		return nil, err
	}
	if editor.Role != model.RoleAdmin {
		return nil, domain.ErrForbidden
	}

	employee, err := s.repo.FindByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	if input.SubunitID != nil {
		if _, err := s.subunits.FindByID(ctx, *input.SubunitID); err != nil {
			return nil, err
		}
		employee.SubunitID = *input.SubunitID
	}
	if input.Email != nil && *input.Email != employee.Email {
		taken, err := s.repo.FindByEmail(ctx, *input.Email)
		if err != nil && !errors.Is(err, domain.ErrEmployeeNotFound) {
			return nil, err
		}
		if taken != nil {
			return nil, domain.ErrEmailAlreadyExists
		}
		employee.Email = *input.Email
	}
	if input.FullName != nil {
		employee.FullName = *input.FullName
	}
	if input.Role != nil {
		employee.Role = *input.Role
	}
	if input.Fired != nil {
		employee.Fired = *input.Fired
	}

	if err := s.repo.Update(ctx, employee); err != nil {
		return nil, err
	}
	return employee, nil
}

// FiredModerators lists the fired moderators of a subunit, so their
// moderation duties can be reassigned.
func (s *EmployeeService) FiredModerators(ctx context.Context, subunitID uuid.UUID) ([]*model.Employee, error) {
	if _, err := s.subunits.FindByID(ctx, subunitID); err != nil {
		return nil, err
	}
	return s.repo.FiredModeratorsOfSubunit(ctx, subunitID)
}

// checkPassword enforces the password policy: at least one lowercase
// letter, one uppercase letter and one digit, with only known symbols.
func checkPassword(password string) error {
	var lower, upper, digit bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r) && r <= unicode.MaxASCII:
			lower = true
		case unicode.IsUpper(r) && r <= unicode.MaxASCII:
			upper = true
		case unicode.IsDigit(r):
			digit = true
		case strings.ContainsRune(passwordSymbols, r):
		default:
			return fmt.Errorf("%w: character %q is not allowed", domain.ErrWeakPassword, r)
		}
	}
	if !lower || !upper || !digit {
		return fmt.Errorf("%w: need a lowercase letter, an uppercase letter and a digit", domain.ErrWeakPassword)
	}
	return nil
}
