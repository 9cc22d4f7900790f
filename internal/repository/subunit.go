// internal/repository/subunit.go
package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/openorg/orgfeed/internal/domain"
	"github.com/openorg/orgfeed/internal/model"
)

type SubunitRepositoryIface interface {
	Create(ctx context.Context, subunit *model.Subunit) error
	Update(ctx context.Context, subunit *model.Subunit) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Subunit, error)
	FindByName(ctx context.Context, name string) (*model.Subunit, error)
	FindByEmail(ctx context.Context, email string) (*model.Subunit, error)
	FindAll(ctx context.Context) ([]*model.Subunit, error)
}

type SubunitRepository struct {
	db *gorm.DB
}

func NewSubunitRepository(db *gorm.DB) *SubunitRepository {
	return &SubunitRepository{db: db}
}

func (r *SubunitRepository) Create(ctx context.Context, subunit *model.Subunit) error {
	result := r.db.WithContext(ctx).Omit("Employees").Create(subunit)
	if result.Error != nil {
		return fmt.Errorf("failed to create subunit: %w", result.Error)
	}
	return nil
}

func (r *SubunitRepository) Update(ctx context.Context, subunit *model.Subunit) error {
	result := r.db.WithContext(ctx).Omit("Employees").Save(subunit)
	if result.Error != nil {
		return fmt.Errorf("failed to update subunit: %w", result.Error)
	}
	return nil
}

func (r *SubunitRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Subunit, error) {
	var subunit model.Subunit
	result := r.db.WithContext(ctx).Preload("Employees").First(&subunit, "id = ?", id)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, domain.ErrSubunitNotFound
		}
		return nil, fmt.Errorf("failed to find subunit: %w", result.Error)
	}
	return &subunit, nil
}

func (r *SubunitRepository) FindByName(ctx context.Context, name string) (*model.Subunit, error) {
	var subunit model.Subunit
	result := r.db.WithContext(ctx).Where("name = ?", name).First(&subunit)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, domain.ErrSubunitNotFound
		}
		return nil, fmt.Errorf("failed to find subunit by name: %w", result.Error)
	}
	return &subunit, nil
}

func (r *SubunitRepository) FindByEmail(ctx context.Context, email string) (*model.Subunit, error) {
	var subunit model.Subunit
	result := r.db.WithContext(ctx).Where("email = ?", email).First(&subunit)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, domain.ErrSubunitNotFound
		}
		return nil, fmt.Errorf("failed to find subunit by email: %w", result.Error)
	}
	return &subunit, nil
}

// FindAll returns every subunit with its roster preloaded. The statistics
// aggregator seeds its dense matrix from this listing.
func (r *SubunitRepository) FindAll(ctx context.Context) ([]*model.Subunit, error) {
	var subunits []*model.Subunit
	result := r.db.WithContext(ctx).Preload("Employees").Order("name ASC").Find(&subunits)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find all subunits: %w", result.Error)
	}
	return subunits, nil
}
