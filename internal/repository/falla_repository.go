package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fallapp-api/internal/domain"
)

// FallaRepository defines the interface for falla data access
type FallaRepository interface {
	Create(ctx context.Context, falla *domain.Falla) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Falla, error)
	FindAll(ctx context.Context, offset, limit int) ([]*domain.Falla, int64, error)
	CountByCategory(ctx context.Context, category domain.FallaCategory) (int64, error)
	CountGroupedBySection(ctx context.Context) ([]SectionCount, error)
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, falla *domain.Falla) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// SectionCount is one row of a fallas-by-section aggregation
type SectionCount struct {
	Section string `gorm:"column:section"`
	Count   int64  `gorm:"column:count"`
}

// fallaRepositoryImpl is the GORM implementation of FallaRepository
type fallaRepositoryImpl struct {
	db *gorm.DB
}

// NewFallaRepository creates a new instance of FallaRepository
func NewFallaRepository(db *gorm.DB) FallaRepository {
	return &fallaRepositoryImpl{db: db}
}

// Create creates a new falla
func (r *fallaRepositoryImpl) Create(ctx context.Context, falla *domain.Falla) error {
	if err := r.db.WithContext(ctx).Create(falla).Error; err != nil {
		return err
	}
	return nil
}

// FindByID finds a falla by its ID
func (r *fallaRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Falla, error) {
	var falla domain.Falla
	if err := r.db.WithContext(ctx).First(&falla, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &falla, nil
}

// FindAll returns a page of fallas ordered by name, plus the total count
func (r *fallaRepositoryImpl) FindAll(ctx context.Context, offset, limit int) ([]*domain.Falla, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&domain.Falla{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var fallas []*domain.Falla
	if err := r.db.WithContext(ctx).
		Order("name ASC").
		Offset(offset).
		Limit(limit).
		Find(&fallas).Error; err != nil {
		return nil, 0, err
	}
	return fallas, total, nil
}

// CountByCategory counts fallas in the given category
func (r *fallaRepositoryImpl) CountByCategory(ctx context.Context, category domain.FallaCategory) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&domain.Falla{}).
		Where("category = ?", category).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountGroupedBySection counts fallas per section. Fallas without a
// section are grouped under the empty string.
func (r *fallaRepositoryImpl) CountGroupedBySection(ctx context.Context) ([]SectionCount, error) {
	var counts []SectionCount
	if err := r.db.WithContext(ctx).
		Model(&domain.Falla{}).
		Select("section, COUNT(*) as count").
		Group("section").
		Find(&counts).Error; err != nil {
		return nil, err
	}
	return counts, nil
}

// Count counts all fallas
func (r *fallaRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.Falla{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Update saves changes to an existing falla
func (r *fallaRepositoryImpl) Update(ctx context.Context, falla *domain.Falla) error {
	if err := r.db.WithContext(ctx).Save(falla).Error; err != nil {
		return err
	}
	return nil
}

// Delete deletes a falla by ID
func (r *fallaRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.db.WithContext(ctx).Delete(&domain.Falla{}, "id = ?", id).Error; err != nil {
		return err
	}
	return nil
}
