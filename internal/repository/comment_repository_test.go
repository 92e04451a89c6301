package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"fallapp-api/internal/domain"
)

func setupCommentTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}

	// Create comments table for SQLite compatibility
	db.Exec(`CREATE TABLE comments (
		id TEXT PRIMARY KEY,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL,
		deleted_at DATETIME,
		user_id TEXT NOT NULL,
		falla_id TEXT,
		ninot_id TEXT,
		content TEXT NOT NULL,
		sentiment TEXT
	)`)

	return db
}

func newComment(fallaID uuid.UUID, content string, sentiment *string) *domain.Comment {
	return &domain.Comment{
		BaseModel: domain.BaseModel{ID: uuid.New()},
		UserID:    uuid.New(),
		FallaID:   &fallaID,
		Content:   content,
		Sentiment: sentiment,
	}
}

func strPtr(s string) *string { return &s }

func TestCommentRepository_FindWithoutSentiment(t *testing.T) {
	db := setupCommentTestDB(t)
	repo := NewCommentRepository(db)
	ctx := context.Background()

	fallaID := uuid.New()
	pending := newComment(fallaID, "Una falla espectacular", nil)
	blank := newComment(fallaID, "   ", nil)
	classified := newComment(fallaID, "Me ha encantado", strPtr(domain.SentimentPositive))

	for _, c := range []*domain.Comment{pending, blank, classified} {
		if err := repo.Create(ctx, c); err != nil {
			t.Fatalf("failed to create comment: %v", err)
		}
	}

	found, err := repo.FindWithoutSentiment(ctx)
	if err != nil {
		t.Fatalf("failed to find pending comments: %v", err)
	}
	if len(found) != 1 {
		t.Fatalf("expected 1 pending comment, got %d", len(found))
	}
	if found[0].ID != pending.ID {
		t.Errorf("expected pending comment %s, got %s", pending.ID, found[0].ID)
	}
}

func TestCommentRepository_CountByFallaGroupedBySentiment(t *testing.T) {
	db := setupCommentTestDB(t)
	repo := NewCommentRepository(db)
	ctx := context.Background()

	fallaID := uuid.New()
	otherFalla := uuid.New()

	for i := 0; i < 3; i++ {
		if err := repo.Create(ctx, newComment(fallaID, "genial", strPtr(domain.SentimentPositive))); err != nil {
			t.Fatalf("failed to create comment: %v", err)
		}
	}
	if err := repo.Create(ctx, newComment(fallaID, "horrible", strPtr(domain.SentimentNegative))); err != nil {
		t.Fatalf("failed to create comment: %v", err)
	}
	if err := repo.Create(ctx, newComment(fallaID, "sin clasificar", nil)); err != nil {
		t.Fatalf("failed to create comment: %v", err)
	}
	if err := repo.Create(ctx, newComment(otherFalla, "otra falla", strPtr(domain.SentimentPositive))); err != nil {
		t.Fatalf("failed to create comment: %v", err)
	}

	counts, err := repo.CountByFallaGroupedBySentiment(ctx, fallaID)
	if err != nil {
		t.Fatalf("failed to count comments: %v", err)
	}

	byLabel := make(map[string]int64)
	for _, c := range counts {
		byLabel[c.Sentiment] = c.Count
	}
	if byLabel[domain.SentimentPositive] != 3 {
		t.Errorf("expected 3 positive, got %d", byLabel[domain.SentimentPositive])
	}
	if byLabel[domain.SentimentNegative] != 1 {
		t.Errorf("expected 1 negative, got %d", byLabel[domain.SentimentNegative])
	}
	// Unclassified comments have no row in the aggregation
	if len(byLabel) != 2 {
		t.Errorf("expected 2 labels, got %d", len(byLabel))
	}

	total, err := repo.CountByFalla(ctx, fallaID)
	if err != nil {
		t.Fatalf("failed to count: %v", err)
	}
	if total != 5 {
		t.Errorf("expected 5 comments for falla, got %d", total)
	}
}

// A body edit and a sentiment write touch disjoint columns, so neither
// update can erase the other's value.
func TestCommentRepository_ColumnScopedUpdates(t *testing.T) {
	db := setupCommentTestDB(t)
	repo := NewCommentRepository(db)
	ctx := context.Background()

	comment := newComment(uuid.New(), "texto original", strPtr(domain.SentimentPositive))
	if err := repo.Create(ctx, comment); err != nil {
		t.Fatalf("failed to create comment: %v", err)
	}

	if err := repo.UpdateContent(ctx, comment.ID, "texto corregido"); err != nil {
		t.Fatalf("failed to update content: %v", err)
	}

	found, err := repo.FindByID(ctx, comment.ID)
	if err != nil {
		t.Fatalf("failed to reload comment: %v", err)
	}
	if found.Content != "texto corregido" {
		t.Errorf("expected updated content, got %q", found.Content)
	}
	if found.Sentiment == nil || *found.Sentiment != domain.SentimentPositive {
		t.Errorf("content update must not clear sentiment, got %v", found.Sentiment)
	}

	if err := repo.UpdateSentiment(ctx, comment.ID, domain.SentimentNegative); err != nil {
		t.Fatalf("failed to update sentiment: %v", err)
	}

	found, err = repo.FindByID(ctx, comment.ID)
	if err != nil {
		t.Fatalf("failed to reload comment: %v", err)
	}
	if found.Sentiment == nil || *found.Sentiment != domain.SentimentNegative {
		t.Errorf("expected negative sentiment, got %v", found.Sentiment)
	}
	if found.Content != "texto corregido" {
		t.Errorf("sentiment update must not touch content, got %q", found.Content)
	}
}

func TestCommentRepository_TransactionRollback(t *testing.T) {
	db := setupCommentTestDB(t)
	repo := NewCommentRepository(db)
	ctx := context.Background()

	comment := newComment(uuid.New(), "no debe persistir", nil)
	wantErr := errors.New("boom")

	err := repo.Transaction(ctx, func(txRepo CommentRepository) error {
		if err := txRepo.Create(ctx, comment); err != nil {
			t.Fatalf("failed to create inside transaction: %v", err)
		}
		return wantErr
	})
	if err != wantErr {
		t.Fatalf("expected transaction error to propagate, got %v", err)
	}

	if _, err := repo.FindByID(ctx, comment.ID); err != gorm.ErrRecordNotFound {
		t.Errorf("expected rollback to discard comment, got %v", err)
	}
}
