package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fallapp-api/internal/domain"
)

// SentimentCount is one row of the grouped sentiment aggregation
type SentimentCount struct {
	Sentiment string
	Count     int64
}

// CommentRepository defines the interface for comment data access
type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error)
	FindByFallaID(ctx context.Context, fallaID uuid.UUID) ([]*domain.Comment, error)
	FindByNinotID(ctx context.Context, ninotID uuid.UUID) ([]*domain.Comment, error)
	FindWithoutSentiment(ctx context.Context) ([]*domain.Comment, error)
	CountByFalla(ctx context.Context, fallaID uuid.UUID) (int64, error)
	Count(ctx context.Context) (int64, error)
	CountByFallaGroupedBySentiment(ctx context.Context, fallaID uuid.UUID) ([]SentimentCount, error)
	UpdateSentiment(ctx context.Context, id uuid.UUID, sentiment string) error
	UpdateContent(ctx context.Context, id uuid.UUID, content string) error
	Update(ctx context.Context, comment *domain.Comment) error
	Delete(ctx context.Context, id uuid.UUID) error
	Transaction(ctx context.Context, fn func(txRepo CommentRepository) error) error
}

// commentRepositoryImpl is the GORM implementation of CommentRepository
type commentRepositoryImpl struct {
	db *gorm.DB
}

// NewCommentRepository creates a new instance of CommentRepository
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepositoryImpl{db: db}
}

// Create creates a new comment
func (r *commentRepositoryImpl) Create(ctx context.Context, comment *domain.Comment) error {
	if err := r.db.WithContext(ctx).Create(comment).Error; err != nil {
		return err
	}
	return nil
}

// FindByID finds a comment by its ID
func (r *commentRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error) {
	var comment domain.Comment
	if err := r.db.WithContext(ctx).First(&comment, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// FindByFallaID finds all comments for a falla, newest first
func (r *commentRepositoryImpl) FindByFallaID(ctx context.Context, fallaID uuid.UUID) ([]*domain.Comment, error) {
	var comments []*domain.Comment
	if err := r.db.WithContext(ctx).
		Where("falla_id = ?", fallaID).
		Order("created_at DESC").
		Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

// FindByNinotID finds all comments for a ninot, newest first
func (r *commentRepositoryImpl) FindByNinotID(ctx context.Context, ninotID uuid.UUID) ([]*domain.Comment, error) {
	var comments []*domain.Comment
	if err := r.db.WithContext(ctx).
		Where("ninot_id = ?", ninotID).
		Order("created_at DESC").
		Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

// FindWithoutSentiment finds all comments that still lack a sentiment
// label and have non-blank content. Used by the backlog sweep.
func (r *commentRepositoryImpl) FindWithoutSentiment(ctx context.Context) ([]*domain.Comment, error) {
	var comments []*domain.Comment
	if err := r.db.WithContext(ctx).
		Where("sentiment IS NULL AND trim(content) <> ''").
		Order("created_at ASC").
		Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

// CountByFalla counts all comments for a falla
func (r *commentRepositoryImpl) CountByFalla(ctx context.Context, fallaID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&domain.Comment{}).
		Where("falla_id = ?", fallaID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Count counts all comments
func (r *commentRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.Comment{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountByFallaGroupedBySentiment returns per-label comment counts for a
// falla. Comments without a label are excluded; labels absent from the
// result simply have no row.
func (r *commentRepositoryImpl) CountByFallaGroupedBySentiment(ctx context.Context, fallaID uuid.UUID) ([]SentimentCount, error) {
	var counts []SentimentCount
	if err := r.db.WithContext(ctx).
		Model(&domain.Comment{}).
		Select("sentiment, count(*) as count").
		Where("falla_id = ? AND sentiment IS NOT NULL", fallaID).
		Group("sentiment").
		Scan(&counts).Error; err != nil {
		return nil, err
	}
	return counts, nil
}

// UpdateSentiment writes the sentiment label for a comment by id. Only
// the sentiment column is touched so a concurrent body edit is never
// overwritten.
func (r *commentRepositoryImpl) UpdateSentiment(ctx context.Context, id uuid.UUID, sentiment string) error {
	if err := r.db.WithContext(ctx).
		Model(&domain.Comment{}).
		Where("id = ?", id).
		Update("sentiment", sentiment).Error; err != nil {
		return err
	}
	return nil
}

// UpdateContent rewrites the comment body by id. Only the content
// column is touched so a concurrent sentiment write is never lost.
func (r *commentRepositoryImpl) UpdateContent(ctx context.Context, id uuid.UUID, content string) error {
	if err := r.db.WithContext(ctx).
		Model(&domain.Comment{}).
		Where("id = ?", id).
		Update("content", content).Error; err != nil {
		return err
	}
	return nil
}

// Update saves changes to an existing comment
func (r *commentRepositoryImpl) Update(ctx context.Context, comment *domain.Comment) error {
	if err := r.db.WithContext(ctx).Save(comment).Error; err != nil {
		return err
	}
	return nil
}

// Delete deletes a comment by ID
func (r *commentRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.db.WithContext(ctx).Delete(&domain.Comment{}, "id = ?", id).Error; err != nil {
		return err
	}
	return nil
}

// Transaction runs fn inside a database transaction, passing a
// repository bound to the transaction connection.
func (r *commentRepositoryImpl) Transaction(ctx context.Context, fn func(txRepo CommentRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&commentRepositoryImpl{db: tx})
	})
}
