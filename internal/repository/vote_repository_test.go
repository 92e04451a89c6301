package repository

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"fallapp-api/internal/domain"
)

func setupVoteTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}

	// Create votes table with the composite unique constraint for
	// SQLite compatibility
	db.Exec(`CREATE TABLE votes (
		id TEXT PRIMARY KEY,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL,
		deleted_at DATETIME,
		user_id TEXT NOT NULL,
		falla_id TEXT NOT NULL,
		kind TEXT NOT NULL,
		CONSTRAINT uq_votes_user_falla_kind UNIQUE (user_id, falla_id, kind)
	)`)

	return db
}

func newVote(userID, fallaID uuid.UUID, kind domain.VoteKind) *domain.Vote {
	return &domain.Vote{
		BaseModel: domain.BaseModel{ID: uuid.New()},
		UserID:    userID,
		FallaID:   fallaID,
		Kind:      kind,
	}
}

func TestVoteRepository_DuplicateTripleRejected(t *testing.T) {
	db := setupVoteTestDB(t)
	repo := NewVoteRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	fallaID := uuid.New()

	if err := repo.Create(ctx, newVote(userID, fallaID, domain.VoteKindFavorito)); err != nil {
		t.Fatalf("first vote should succeed: %v", err)
	}

	err := repo.Create(ctx, newVote(userID, fallaID, domain.VoteKindFavorito))
	if err == nil {
		t.Fatal("expected constraint violation for duplicate (user, falla, kind)")
	}
	if !strings.Contains(strings.ToLower(err.Error()), "unique") {
		t.Errorf("expected unique constraint error, got: %v", err)
	}

	// Same user and falla with a different kind is a different triple
	if err := repo.Create(ctx, newVote(userID, fallaID, domain.VoteKindIngenioso)); err != nil {
		t.Errorf("different kind should succeed: %v", err)
	}

	// Same kind by a different user is also allowed
	if err := repo.Create(ctx, newVote(uuid.New(), fallaID, domain.VoteKindFavorito)); err != nil {
		t.Errorf("different user should succeed: %v", err)
	}
}

func TestVoteRepository_FindByUserFallaKind(t *testing.T) {
	db := setupVoteTestDB(t)
	repo := NewVoteRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	fallaID := uuid.New()
	vote := newVote(userID, fallaID, domain.VoteKindCritico)
	if err := repo.Create(ctx, vote); err != nil {
		t.Fatalf("failed to create vote: %v", err)
	}

	found, err := repo.FindByUserFallaKind(ctx, userID, fallaID, domain.VoteKindCritico)
	if err != nil {
		t.Fatalf("expected to find vote: %v", err)
	}
	if found.ID != vote.ID {
		t.Errorf("expected vote %s, got %s", vote.ID, found.ID)
	}

	_, err = repo.FindByUserFallaKind(ctx, userID, fallaID, domain.VoteKindArtistico)
	if err != gorm.ErrRecordNotFound {
		t.Errorf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestVoteRepository_CountByFallaGroupedByKind(t *testing.T) {
	db := setupVoteTestDB(t)
	repo := NewVoteRepository(db)
	ctx := context.Background()

	fallaID := uuid.New()
	otherFalla := uuid.New()

	for i := 0; i < 3; i++ {
		if err := repo.Create(ctx, newVote(uuid.New(), fallaID, domain.VoteKindFavorito)); err != nil {
			t.Fatalf("failed to create vote: %v", err)
		}
	}
	if err := repo.Create(ctx, newVote(uuid.New(), fallaID, domain.VoteKindRating)); err != nil {
		t.Fatalf("failed to create vote: %v", err)
	}
	if err := repo.Create(ctx, newVote(uuid.New(), otherFalla, domain.VoteKindFavorito)); err != nil {
		t.Fatalf("failed to create vote: %v", err)
	}

	counts, err := repo.CountByFallaGroupedByKind(ctx, fallaID)
	if err != nil {
		t.Fatalf("failed to count votes: %v", err)
	}

	byKind := make(map[string]int64)
	for _, c := range counts {
		byKind[c.Kind] = c.Count
	}
	if byKind["favorito"] != 3 {
		t.Errorf("expected 3 favorito votes, got %d", byKind["favorito"])
	}
	if byKind["rating"] != 1 {
		t.Errorf("expected 1 rating vote, got %d", byKind["rating"])
	}
	if len(byKind) != 2 {
		t.Errorf("expected 2 kinds, got %d", len(byKind))
	}

	total, err := repo.CountByFalla(ctx, fallaID)
	if err != nil {
		t.Fatalf("failed to count: %v", err)
	}
	if total != 4 {
		t.Errorf("expected 4 votes for falla, got %d", total)
	}
}

func TestVoteRepository_Delete(t *testing.T) {
	db := setupVoteTestDB(t)
	repo := NewVoteRepository(db)
	ctx := context.Background()

	vote := newVote(uuid.New(), uuid.New(), domain.VoteKindFavorito)
	if err := repo.Create(ctx, vote); err != nil {
		t.Fatalf("failed to create vote: %v", err)
	}

	if err := repo.Delete(ctx, vote.ID); err != nil {
		t.Fatalf("failed to delete vote: %v", err)
	}

	if _, err := repo.FindByID(ctx, vote.ID); err != gorm.ErrRecordNotFound {
		t.Errorf("expected ErrRecordNotFound after delete, got %v", err)
	}
}
