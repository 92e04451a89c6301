package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fallapp-api/internal/domain"
)

// VoteRepository defines the interface for vote data access
type VoteRepository interface {
	Create(ctx context.Context, vote *domain.Vote) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Vote, error)
	FindByUserFallaKind(ctx context.Context, userID, fallaID uuid.UUID, kind domain.VoteKind) (*domain.Vote, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.Vote, error)
	FindByFallaID(ctx context.Context, fallaID uuid.UUID) ([]*domain.Vote, error)
	CountByFalla(ctx context.Context, fallaID uuid.UUID) (int64, error)
	CountByFallaGroupedByKind(ctx context.Context, fallaID uuid.UUID) ([]KindCount, error)
	Count(ctx context.Context) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// KindCount is one row of a votes-by-kind aggregation
type KindCount struct {
	Kind  string `gorm:"column:kind"`
	Count int64  `gorm:"column:count"`
}

// voteRepositoryImpl is the GORM implementation of VoteRepository
type voteRepositoryImpl struct {
	db *gorm.DB
}

// NewVoteRepository creates a new instance of VoteRepository
func NewVoteRepository(db *gorm.DB) VoteRepository {
	return &voteRepositoryImpl{db: db}
}

// Create inserts a new vote. The composite unique index on
// (user_id, falla_id, kind) makes the insert fail for a duplicate
// triple; the raw constraint error is returned to the caller.
func (r *voteRepositoryImpl) Create(ctx context.Context, vote *domain.Vote) error {
	if err := r.db.WithContext(ctx).Create(vote).Error; err != nil {
		return err
	}
	return nil
}

// FindByID finds a vote by its ID
func (r *voteRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Vote, error) {
	var vote domain.Vote
	if err := r.db.WithContext(ctx).First(&vote, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &vote, nil
}

// FindByUserFallaKind finds the vote for a (user, falla, kind) triple
func (r *voteRepositoryImpl) FindByUserFallaKind(ctx context.Context, userID, fallaID uuid.UUID, kind domain.VoteKind) (*domain.Vote, error) {
	var vote domain.Vote
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND falla_id = ? AND kind = ?", userID, fallaID, kind).
		First(&vote).Error; err != nil {
		return nil, err
	}
	return &vote, nil
}

// FindByUserID finds all votes cast by a user, newest first
func (r *voteRepositoryImpl) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.Vote, error) {
	var votes []*domain.Vote
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&votes).Error; err != nil {
		return nil, err
	}
	return votes, nil
}

// FindByFallaID finds all votes for a falla, newest first
func (r *voteRepositoryImpl) FindByFallaID(ctx context.Context, fallaID uuid.UUID) ([]*domain.Vote, error) {
	var votes []*domain.Vote
	if err := r.db.WithContext(ctx).
		Where("falla_id = ?", fallaID).
		Order("created_at DESC").
		Find(&votes).Error; err != nil {
		return nil, err
	}
	return votes, nil
}

// CountByFalla counts votes for a falla
func (r *voteRepositoryImpl) CountByFalla(ctx context.Context, fallaID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&domain.Vote{}).
		Where("falla_id = ?", fallaID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountByFallaGroupedByKind counts a falla's votes per vote kind
func (r *voteRepositoryImpl) CountByFallaGroupedByKind(ctx context.Context, fallaID uuid.UUID) ([]KindCount, error) {
	var counts []KindCount
	if err := r.db.WithContext(ctx).
		Model(&domain.Vote{}).
		Select("kind, COUNT(*) as count").
		Where("falla_id = ?", fallaID).
		Group("kind").
		Find(&counts).Error; err != nil {
		return nil, err
	}
	return counts, nil
}

// Count counts all votes
func (r *voteRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.Vote{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Delete deletes a vote by ID
func (r *voteRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.db.WithContext(ctx).Delete(&domain.Vote{}, "id = ?", id).Error; err != nil {
		return err
	}
	return nil
}
