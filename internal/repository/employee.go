// internal/repository/employee.go
package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/openorg/orgfeed/internal/domain"
	"github.com/openorg/orgfeed/internal/model"
)

type EmployeeRepositoryIface interface {
	Create(ctx context.Context, employee *model.Employee) error
	Update(ctx context.Context, employee *model.Employee) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Employee, error)
	FindByEmail(ctx context.Context, email string) (*model.Employee, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*model.Employee, error)
	FiredModeratorsOfSubunit(ctx context.Context, subunitID uuid.UUID) ([]*model.Employee, error)
}

type EmployeeRepository struct {
	db *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

func (r *EmployeeRepository) Create(ctx context.Context, employee *model.Employee) error {
	result := r.db.WithContext(ctx).Omit("Subunit").Create(employee)
	if result.Error != nil {
		return fmt.Errorf("failed to create employee: %w", result.Error)
	}
	return nil
}

func (r *EmployeeRepository) Update(ctx context.Context, employee *model.Employee) error {
	result := r.db.WithContext(ctx).Omit("Subunit").Save(employee)
	if result.Error != nil {
		return fmt.Errorf("failed to update employee: %w", result.Error)
	}
	return nil
}

func (r *EmployeeRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Employee, error) {
	var employee model.Employee
	result := r.db.WithContext(ctx).First(&employee, "id = ?", id)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, domain.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to find employee: %w", result.Error)
	}
	return &employee, nil
}

func (r *EmployeeRepository) FindByEmail(ctx context.Context, email string) (*model.Employee, error) {
	var employee model.Employee
	result := r.db.WithContext(ctx).Where("email = ?", email).First(&employee)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, domain.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to find employee: %w", result.Error)
	}
	return &employee, nil
}

func (r *EmployeeRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*model.Employee, error) {
	var employees []*model.Employee
	result := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&employees)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find employees: %w", result.Error)
	}
	return employees, nil
}

func (r *EmployeeRepository) FiredModeratorsOfSubunit(ctx context.Context, subunitID uuid.UUID) ([]*model.Employee, error) {
	var employees []*model.Employee
	result := r.db.WithContext(ctx).
		Where("subunit_id = ?", subunitID).
		Where("fired = ?", true).
		Where("role = ?", model.RoleModerator).
		Find(&employees)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find fired moderators: %w", result.Error)
	}
	return employees, nil
}
