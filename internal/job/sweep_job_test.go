package job

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"fallapp-api/internal/dto"
)

// MockCommentService is a mock implementation of CommentService
type MockCommentService struct {
	ReprocessPendingFunc func(ctx context.Context) (*dto.ReanalyzeResponse, error)
	runs                 int
}

func (m *MockCommentService) CreateComment(ctx context.Context, userID uuid.UUID, req *dto.CreateCommentRequest) (*dto.CommentResponse, error) {
	return nil, nil
}

func (m *MockCommentService) GetComment(ctx context.Context, commentID uuid.UUID) (*dto.CommentResponse, error) {
	return nil, nil
}

func (m *MockCommentService) GetCommentsByFalla(ctx context.Context, fallaID uuid.UUID) ([]dto.CommentResponse, error) {
	return nil, nil
}

func (m *MockCommentService) GetCommentsByNinot(ctx context.Context, ninotID uuid.UUID) ([]dto.CommentResponse, error) {
	return nil, nil
}

func (m *MockCommentService) UpdateComment(ctx context.Context, userID, commentID uuid.UUID, req *dto.UpdateCommentRequest) (*dto.CommentResponse, error) {
	return nil, nil
}

func (m *MockCommentService) DeleteComment(ctx context.Context, userID, commentID uuid.UUID) error {
	return nil
}

func (m *MockCommentService) ReprocessPending(ctx context.Context) (*dto.ReanalyzeResponse, error) {
	m.runs++
	if m.ReprocessPendingFunc != nil {
		return m.ReprocessPendingFunc(ctx)
	}
	return &dto.ReanalyzeResponse{}, nil
}

func TestSweepJobRunsReprocess(t *testing.T) {
	svc := &MockCommentService{
		ReprocessPendingFunc: func(ctx context.Context) (*dto.ReanalyzeResponse, error) {
			return &dto.ReanalyzeResponse{ComentariosEncolados: 4, Mensaje: "ok"}, nil
		},
	}

	job := NewSweepJob(svc, zap.NewNop())
	job.Run()

	assert.Equal(t, 1, svc.runs)
}

func TestSweepJobSurvivesServiceError(t *testing.T) {
	svc := &MockCommentService{
		ReprocessPendingFunc: func(ctx context.Context) (*dto.ReanalyzeResponse, error) {
			return nil, assert.AnError
		},
	}

	job := NewSweepJob(svc, zap.NewNop())

	assert.NotPanics(t, func() { job.Run() })
	assert.Equal(t, 1, svc.runs)
}
