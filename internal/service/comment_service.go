package service

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"fallapp-api/internal/database"
	"fallapp-api/internal/domain"
	"fallapp-api/internal/dto"
	"fallapp-api/internal/metrics"
	"fallapp-api/internal/repository"
	"fallapp-api/internal/response"
)

const (
	minCommentLength = 3
	maxCommentLength = 500
)

// SentimentEnqueuer schedules a comment for asynchronous sentiment
// classification.
type SentimentEnqueuer interface {
	Enqueue(commentID uuid.UUID, text string) bool
}

// CommentService defines the interface for comment business logic
type CommentService interface {
	CreateComment(ctx context.Context, userID uuid.UUID, req *dto.CreateCommentRequest) (*dto.CommentResponse, error)
	GetComment(ctx context.Context, commentID uuid.UUID) (*dto.CommentResponse, error)
	GetCommentsByFalla(ctx context.Context, fallaID uuid.UUID) ([]dto.CommentResponse, error)
	GetCommentsByNinot(ctx context.Context, ninotID uuid.UUID) ([]dto.CommentResponse, error)
	UpdateComment(ctx context.Context, userID, commentID uuid.UUID, req *dto.UpdateCommentRequest) (*dto.CommentResponse, error)
	DeleteComment(ctx context.Context, userID, commentID uuid.UUID) error
	ReprocessPending(ctx context.Context) (*dto.ReanalyzeResponse, error)
}

// commentServiceImpl is the implementation of CommentService
type commentServiceImpl struct {
	commentRepo repository.CommentRepository
	userRepo    repository.UserRepository
	fallaRepo   repository.FallaRepository
	ninotRepo   repository.NinotRepository
	enqueuer    SentimentEnqueuer
	logger      *zap.Logger
	metrics     *metrics.Metrics
}

// NewCommentService creates a new instance of CommentService
func NewCommentService(
	commentRepo repository.CommentRepository,
	userRepo repository.UserRepository,
	fallaRepo repository.FallaRepository,
	ninotRepo repository.NinotRepository,
	enqueuer SentimentEnqueuer,
	logger *zap.Logger,
	m *metrics.Metrics,
) CommentService {
	return &commentServiceImpl{
		commentRepo: commentRepo,
		userRepo:    userRepo,
		fallaRepo:   fallaRepo,
		ninotRepo:   ninotRepo,
		enqueuer:    enqueuer,
		logger:      logger,
		metrics:     m,
	}
}

// CreateComment persists a comment and schedules its sentiment
// classification. The enqueue runs as a post-commit hook: it fires
// only after the transaction committed, so a worker can never observe
// a comment id that is not yet visible.
func (s *commentServiceImpl) CreateComment(ctx context.Context, userID uuid.UUID, req *dto.CreateCommentRequest) (*dto.CommentResponse, error) {
	content := strings.TrimSpace(req.Content)
	if length := utf8.RuneCountInString(content); length < minCommentLength || length > maxCommentLength {
		return nil, response.NewValidationError("Comment content must be between 3 and 500 characters", "")
	}

	// Exactly one target
	if (req.FallaID == nil) == (req.NinotID == nil) {
		return nil, response.NewValidationError("Exactly one of fallaId and ninotId must be set", "")
	}

	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("User not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to verify user", err.Error())
	}

	if req.FallaID != nil {
		if _, err := s.fallaRepo.FindByID(ctx, *req.FallaID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, response.NewNotFoundError("Falla not found", "")
			}
			return nil, response.NewAppError(response.ErrCodeInternal, "Failed to verify falla", err.Error())
		}
	} else {
		if _, err := s.ninotRepo.FindByID(ctx, *req.NinotID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, response.NewNotFoundError("Ninot not found", "")
			}
			return nil, response.NewAppError(response.ErrCodeInternal, "Failed to verify ninot", err.Error())
		}
	}

	comment := &domain.Comment{
		UserID:  userID,
		FallaID: req.FallaID,
		NinotID: req.NinotID,
		Content: content,
	}

	ctx, hooks := database.WithPostCommitHooks(ctx)
	err := s.commentRepo.Transaction(ctx, func(txRepo repository.CommentRepository) error {
		if err := txRepo.Create(ctx, comment); err != nil {
			return err
		}
		database.AfterCommit(ctx, func() {
			s.enqueuer.Enqueue(comment.ID, comment.Content)
		})
		return nil
	})
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create comment", err.Error())
	}
	hooks.Run()

	if s.metrics != nil {
		s.metrics.IncrementCommentCreated()
	}
	s.logger.Info("Comment created",
		zap.String("comment_id", comment.ID.String()),
		zap.String("user_id", userID.String()),
	)

	resp := dto.ToCommentResponse(comment)
	return &resp, nil
}

// GetComment retrieves a single comment by id
func (s *commentServiceImpl) GetComment(ctx context.Context, commentID uuid.UUID) (*dto.CommentResponse, error) {
	comment, err := s.commentRepo.FindByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Comment not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch comment", err.Error())
	}
	resp := dto.ToCommentResponse(comment)
	return &resp, nil
}

// GetCommentsByFalla retrieves all comments of a falla, newest first
func (s *commentServiceImpl) GetCommentsByFalla(ctx context.Context, fallaID uuid.UUID) ([]dto.CommentResponse, error) {
	if _, err := s.fallaRepo.FindByID(ctx, fallaID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Falla not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to verify falla", err.Error())
	}

	comments, err := s.commentRepo.FindByFallaID(ctx, fallaID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch comments", err.Error())
	}
	return dto.ToCommentResponses(comments), nil
}

// GetCommentsByNinot retrieves all comments of a ninot, newest first
func (s *commentServiceImpl) GetCommentsByNinot(ctx context.Context, ninotID uuid.UUID) ([]dto.CommentResponse, error) {
	if _, err := s.ninotRepo.FindByID(ctx, ninotID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Ninot not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to verify ninot", err.Error())
	}

	comments, err := s.commentRepo.FindByNinotID(ctx, ninotID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch comments", err.Error())
	}
	return dto.ToCommentResponses(comments), nil
}

// UpdateComment rewrites the comment body. The stored sentiment keeps
// describing the originally classified text; edits do not re-trigger
// classification.
func (s *commentServiceImpl) UpdateComment(ctx context.Context, userID, commentID uuid.UUID, req *dto.UpdateCommentRequest) (*dto.CommentResponse, error) {
	content := strings.TrimSpace(req.Content)
	if length := utf8.RuneCountInString(content); length < minCommentLength || length > maxCommentLength {
		return nil, response.NewValidationError("Comment content must be between 3 and 500 characters", "")
	}

	comment, err := s.commentRepo.FindByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Comment not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch comment", err.Error())
	}

	if err := s.authorizeCommentAccess(ctx, userID, comment); err != nil {
		return nil, err
	}

	if err := s.commentRepo.UpdateContent(ctx, commentID, content); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update comment", err.Error())
	}

	comment.Content = content
	resp := dto.ToCommentResponse(comment)
	return &resp, nil
}

// DeleteComment removes a comment. Only the author or an admin may
// delete it.
func (s *commentServiceImpl) DeleteComment(ctx context.Context, userID, commentID uuid.UUID) error {
	comment, err := s.commentRepo.FindByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError("Comment not found", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to fetch comment", err.Error())
	}

	if err := s.authorizeCommentAccess(ctx, userID, comment); err != nil {
		return err
	}

	if err := s.commentRepo.Delete(ctx, commentID); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete comment", err.Error())
	}

	s.logger.Info("Comment deleted",
		zap.String("comment_id", commentID.String()),
		zap.String("user_id", userID.String()),
	)
	return nil
}

// ReprocessPending re-queues every comment that still lacks a
// sentiment label. Comments the queue cannot absorb stay pending and
// are picked up by the next sweep.
func (s *commentServiceImpl) ReprocessPending(ctx context.Context) (*dto.ReanalyzeResponse, error) {
	pending, err := s.commentRepo.FindWithoutSentiment(ctx)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch pending comments", err.Error())
	}

	enqueued := 0
	for _, comment := range pending {
		if s.enqueuer.Enqueue(comment.ID, comment.Content) {
			enqueued++
		}
	}

	s.logger.Info("Pending comments re-queued for classification",
		zap.Int("pending", len(pending)),
		zap.Int("enqueued", enqueued),
	)

	return &dto.ReanalyzeResponse{
		ComentariosEncolados: enqueued,
		Mensaje:              "Comentarios encolados para análisis de sentimiento",
	}, nil
}

// authorizeCommentAccess allows the comment author and admins
func (s *commentServiceImpl) authorizeCommentAccess(ctx context.Context, userID uuid.UUID, comment *domain.Comment) error {
	if comment.UserID == userID {
		return nil
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewForbiddenError("Not allowed to modify this comment", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to verify user", err.Error())
	}
	if !user.IsAdmin() {
		return response.NewForbiddenError("Not allowed to modify this comment", "")
	}
	return nil
}
