package service

import (
	"context"

	"github.com/google/uuid"

	"fallapp-api/internal/domain"
	"fallapp-api/internal/repository"
)

// MockCommentRepository is a mock implementation of CommentRepository
type MockCommentRepository struct {
	CreateFunc                         func(ctx context.Context, comment *domain.Comment) error
	FindByIDFunc                       func(ctx context.Context, id uuid.UUID) (*domain.Comment, error)
	FindByFallaIDFunc                  func(ctx context.Context, fallaID uuid.UUID) ([]*domain.Comment, error)
	FindByNinotIDFunc                  func(ctx context.Context, ninotID uuid.UUID) ([]*domain.Comment, error)
	FindWithoutSentimentFunc           func(ctx context.Context) ([]*domain.Comment, error)
	CountByFallaFunc                   func(ctx context.Context, fallaID uuid.UUID) (int64, error)
	CountFunc                          func(ctx context.Context) (int64, error)
	CountByFallaGroupedBySentimentFunc func(ctx context.Context, fallaID uuid.UUID) ([]repository.SentimentCount, error)
	UpdateSentimentFunc                func(ctx context.Context, id uuid.UUID, sentiment string) error
	UpdateContentFunc                  func(ctx context.Context, id uuid.UUID, content string) error
	UpdateFunc                         func(ctx context.Context, comment *domain.Comment) error
	DeleteFunc                         func(ctx context.Context, id uuid.UUID) error
	TransactionFunc                    func(ctx context.Context, fn func(txRepo repository.CommentRepository) error) error
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, comment)
	}
	return nil
}

func (m *MockCommentRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockCommentRepository) FindByFallaID(ctx context.Context, fallaID uuid.UUID) ([]*domain.Comment, error) {
	if m.FindByFallaIDFunc != nil {
		return m.FindByFallaIDFunc(ctx, fallaID)
	}
	return nil, nil
}

func (m *MockCommentRepository) FindByNinotID(ctx context.Context, ninotID uuid.UUID) ([]*domain.Comment, error) {
	if m.FindByNinotIDFunc != nil {
		return m.FindByNinotIDFunc(ctx, ninotID)
	}
	return nil, nil
}

func (m *MockCommentRepository) FindWithoutSentiment(ctx context.Context) ([]*domain.Comment, error) {
	if m.FindWithoutSentimentFunc != nil {
		return m.FindWithoutSentimentFunc(ctx)
	}
	return nil, nil
}

func (m *MockCommentRepository) CountByFalla(ctx context.Context, fallaID uuid.UUID) (int64, error) {
	if m.CountByFallaFunc != nil {
		return m.CountByFallaFunc(ctx, fallaID)
	}
	return 0, nil
}

func (m *MockCommentRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

func (m *MockCommentRepository) CountByFallaGroupedBySentiment(ctx context.Context, fallaID uuid.UUID) ([]repository.SentimentCount, error) {
	if m.CountByFallaGroupedBySentimentFunc != nil {
		return m.CountByFallaGroupedBySentimentFunc(ctx, fallaID)
	}
	return nil, nil
}

func (m *MockCommentRepository) UpdateSentiment(ctx context.Context, id uuid.UUID, sentiment string) error {
	if m.UpdateSentimentFunc != nil {
		return m.UpdateSentimentFunc(ctx, id, sentiment)
	}
	return nil
}

func (m *MockCommentRepository) UpdateContent(ctx context.Context, id uuid.UUID, content string) error {
	if m.UpdateContentFunc != nil {
		return m.UpdateContentFunc(ctx, id, content)
	}
	return nil
}

func (m *MockCommentRepository) Update(ctx context.Context, comment *domain.Comment) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, comment)
	}
	return nil
}

func (m *MockCommentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockCommentRepository) Transaction(ctx context.Context, fn func(txRepo repository.CommentRepository) error) error {
	if m.TransactionFunc != nil {
		return m.TransactionFunc(ctx, fn)
	}
	return fn(m)
}

// MockVoteRepository is a mock implementation of VoteRepository
type MockVoteRepository struct {
	CreateFunc                    func(ctx context.Context, vote *domain.Vote) error
	FindByIDFunc                  func(ctx context.Context, id uuid.UUID) (*domain.Vote, error)
	FindByUserFallaKindFunc       func(ctx context.Context, userID, fallaID uuid.UUID, kind domain.VoteKind) (*domain.Vote, error)
	FindByUserIDFunc              func(ctx context.Context, userID uuid.UUID) ([]*domain.Vote, error)
	FindByFallaIDFunc             func(ctx context.Context, fallaID uuid.UUID) ([]*domain.Vote, error)
	CountByFallaFunc              func(ctx context.Context, fallaID uuid.UUID) (int64, error)
	CountByFallaGroupedByKindFunc func(ctx context.Context, fallaID uuid.UUID) ([]repository.KindCount, error)
	CountFunc                     func(ctx context.Context) (int64, error)
	DeleteFunc                    func(ctx context.Context, id uuid.UUID) error
}

func (m *MockVoteRepository) Create(ctx context.Context, vote *domain.Vote) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, vote)
	}
	return nil
}

func (m *MockVoteRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Vote, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockVoteRepository) FindByUserFallaKind(ctx context.Context, userID, fallaID uuid.UUID, kind domain.VoteKind) (*domain.Vote, error) {
	if m.FindByUserFallaKindFunc != nil {
		return m.FindByUserFallaKindFunc(ctx, userID, fallaID, kind)
	}
	return nil, nil
}

func (m *MockVoteRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.Vote, error) {
	if m.FindByUserIDFunc != nil {
		return m.FindByUserIDFunc(ctx, userID)
	}
	return nil, nil
}

func (m *MockVoteRepository) FindByFallaID(ctx context.Context, fallaID uuid.UUID) ([]*domain.Vote, error) {
	if m.FindByFallaIDFunc != nil {
		return m.FindByFallaIDFunc(ctx, fallaID)
	}
	return nil, nil
}

func (m *MockVoteRepository) CountByFalla(ctx context.Context, fallaID uuid.UUID) (int64, error) {
	if m.CountByFallaFunc != nil {
		return m.CountByFallaFunc(ctx, fallaID)
	}
	return 0, nil
}

func (m *MockVoteRepository) CountByFallaGroupedByKind(ctx context.Context, fallaID uuid.UUID) ([]repository.KindCount, error) {
	if m.CountByFallaGroupedByKindFunc != nil {
		return m.CountByFallaGroupedByKindFunc(ctx, fallaID)
	}
	return nil, nil
}

func (m *MockVoteRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

func (m *MockVoteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	CreateFunc          func(ctx context.Context, user *domain.User) error
	FindByIDFunc        func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	FindByEmailFunc     func(ctx context.Context, email string) (*domain.User, error)
	CountFunc           func(ctx context.Context) (int64, error)
	CountActiveFunc     func(ctx context.Context) (int64, error)
	UpdateFunc          func(ctx context.Context, user *domain.User) error
	TouchLastAccessFunc func(ctx context.Context, id uuid.UUID) error
	DeleteFunc          func(ctx context.Context, id uuid.UUID) error
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	return nil
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *MockUserRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

func (m *MockUserRepository) CountActive(ctx context.Context) (int64, error) {
	if m.CountActiveFunc != nil {
		return m.CountActiveFunc(ctx)
	}
	return 0, nil
}

func (m *MockUserRepository) Update(ctx context.Context, user *domain.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, user)
	}
	return nil
}

func (m *MockUserRepository) TouchLastAccess(ctx context.Context, id uuid.UUID) error {
	if m.TouchLastAccessFunc != nil {
		return m.TouchLastAccessFunc(ctx, id)
	}
	return nil
}

func (m *MockUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// MockFallaRepository is a mock implementation of FallaRepository
type MockFallaRepository struct {
	CreateFunc                func(ctx context.Context, falla *domain.Falla) error
	FindByIDFunc              func(ctx context.Context, id uuid.UUID) (*domain.Falla, error)
	FindAllFunc               func(ctx context.Context, offset, limit int) ([]*domain.Falla, int64, error)
	CountByCategoryFunc       func(ctx context.Context, category domain.FallaCategory) (int64, error)
	CountGroupedBySectionFunc func(ctx context.Context) ([]repository.SectionCount, error)
	CountFunc                 func(ctx context.Context) (int64, error)
	UpdateFunc                func(ctx context.Context, falla *domain.Falla) error
	DeleteFunc                func(ctx context.Context, id uuid.UUID) error
}

func (m *MockFallaRepository) Create(ctx context.Context, falla *domain.Falla) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, falla)
	}
	return nil
}

func (m *MockFallaRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Falla, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockFallaRepository) FindAll(ctx context.Context, offset, limit int) ([]*domain.Falla, int64, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx, offset, limit)
	}
	return nil, 0, nil
}

func (m *MockFallaRepository) CountByCategory(ctx context.Context, category domain.FallaCategory) (int64, error) {
	if m.CountByCategoryFunc != nil {
		return m.CountByCategoryFunc(ctx, category)
	}
	return 0, nil
}

func (m *MockFallaRepository) CountGroupedBySection(ctx context.Context) ([]repository.SectionCount, error) {
	if m.CountGroupedBySectionFunc != nil {
		return m.CountGroupedBySectionFunc(ctx)
	}
	return nil, nil
}

func (m *MockFallaRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

func (m *MockFallaRepository) Update(ctx context.Context, falla *domain.Falla) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, falla)
	}
	return nil
}

func (m *MockFallaRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// MockNinotRepository is a mock implementation of NinotRepository
type MockNinotRepository struct {
	CreateFunc        func(ctx context.Context, ninot *domain.Ninot) error
	FindByIDFunc      func(ctx context.Context, id uuid.UUID) (*domain.Ninot, error)
	FindByFallaIDFunc func(ctx context.Context, fallaID uuid.UUID) ([]*domain.Ninot, error)
	CountFunc         func(ctx context.Context) (int64, error)
	DeleteFunc        func(ctx context.Context, id uuid.UUID) error
}

func (m *MockNinotRepository) Create(ctx context.Context, ninot *domain.Ninot) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, ninot)
	}
	return nil
}

func (m *MockNinotRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Ninot, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockNinotRepository) FindByFallaID(ctx context.Context, fallaID uuid.UUID) ([]*domain.Ninot, error) {
	if m.FindByFallaIDFunc != nil {
		return m.FindByFallaIDFunc(ctx, fallaID)
	}
	return nil, nil
}

func (m *MockNinotRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

func (m *MockNinotRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// MockEventRepository is a mock implementation of EventRepository
type MockEventRepository struct {
	CreateFunc        func(ctx context.Context, event *domain.Event) error
	FindByIDFunc      func(ctx context.Context, id uuid.UUID) (*domain.Event, error)
	FindByFallaIDFunc func(ctx context.Context, fallaID uuid.UUID) ([]*domain.Event, error)
	CountFunc         func(ctx context.Context) (int64, error)
	DeleteFunc        func(ctx context.Context, id uuid.UUID) error
}

func (m *MockEventRepository) Create(ctx context.Context, event *domain.Event) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, event)
	}
	return nil
}

func (m *MockEventRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Event, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockEventRepository) FindByFallaID(ctx context.Context, fallaID uuid.UUID) ([]*domain.Event, error) {
	if m.FindByFallaIDFunc != nil {
		return m.FindByFallaIDFunc(ctx, fallaID)
	}
	return nil, nil
}

func (m *MockEventRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

func (m *MockEventRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// MockEnqueuer is a mock implementation of SentimentEnqueuer
type MockEnqueuer struct {
	EnqueueFunc func(commentID uuid.UUID, text string) bool
	Enqueued    []uuid.UUID
}

func (m *MockEnqueuer) Enqueue(commentID uuid.UUID, text string) bool {
	m.Enqueued = append(m.Enqueued, commentID)
	if m.EnqueueFunc != nil {
		return m.EnqueueFunc(commentID, text)
	}
	return true
}
