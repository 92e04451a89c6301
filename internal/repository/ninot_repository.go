package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fallapp-api/internal/domain"
)

// NinotRepository defines the interface for ninot data access
type NinotRepository interface {
	Create(ctx context.Context, ninot *domain.Ninot) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Ninot, error)
	FindByFallaID(ctx context.Context, fallaID uuid.UUID) ([]*domain.Ninot, error)
	Count(ctx context.Context) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ninotRepositoryImpl is the GORM implementation of NinotRepository
type ninotRepositoryImpl struct {
	db *gorm.DB
}

// NewNinotRepository creates a new instance of NinotRepository
func NewNinotRepository(db *gorm.DB) NinotRepository {
	return &ninotRepositoryImpl{db: db}
}

func (r *ninotRepositoryImpl) Create(ctx context.Context, ninot *domain.Ninot) error {
	if err := r.db.WithContext(ctx).Create(ninot).Error; err != nil {
		return err
	}
	return nil
}

func (r *ninotRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Ninot, error) {
	var ninot domain.Ninot
	if err := r.db.WithContext(ctx).First(&ninot, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &ninot, nil
}

func (r *ninotRepositoryImpl) FindByFallaID(ctx context.Context, fallaID uuid.UUID) ([]*domain.Ninot, error) {
	var ninots []*domain.Ninot
	if err := r.db.WithContext(ctx).
		Where("falla_id = ?", fallaID).
		Order("created_at DESC").
		Find(&ninots).Error; err != nil {
		return nil, err
	}
	return ninots, nil
}

func (r *ninotRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.Ninot{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *ninotRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.db.WithContext(ctx).Delete(&domain.Ninot{}, "id = ?", id).Error; err != nil {
		return err
	}
	return nil
}
