package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"fallapp-api/internal/domain"
	"fallapp-api/internal/dto"
	"fallapp-api/internal/metrics"
	"fallapp-api/internal/repository"
	"fallapp-api/internal/response"
)

// VoteService defines the interface for vote business logic
type VoteService interface {
	CastVote(ctx context.Context, userID uuid.UUID, req *dto.CastVoteRequest) (*dto.VoteResponse, error)
	GetVotesByUser(ctx context.Context, userID uuid.UUID) ([]dto.VoteResponse, error)
	GetVotesByFalla(ctx context.Context, fallaID uuid.UUID) ([]dto.VoteResponse, error)
	RemoveVote(ctx context.Context, userID, voteID uuid.UUID) error
}

// voteServiceImpl is the implementation of VoteService
type voteServiceImpl struct {
	voteRepo  repository.VoteRepository
	userRepo  repository.UserRepository
	fallaRepo repository.FallaRepository
	logger    *zap.Logger
	metrics   *metrics.Metrics
}

// NewVoteService creates a new instance of VoteService
func NewVoteService(
	voteRepo repository.VoteRepository,
	userRepo repository.UserRepository,
	fallaRepo repository.FallaRepository,
	logger *zap.Logger,
	m *metrics.Metrics,
) VoteService {
	return &voteServiceImpl{
		voteRepo:  voteRepo,
		userRepo:  userRepo,
		fallaRepo: fallaRepo,
		logger:    logger,
		metrics:   m,
	}
}

// CastVote records one vote of the given kind by a user on a falla.
// The kind is validated before any lookup. A second vote of the same
// kind on the same falla is a conflict: the duplicate check here gives
// a clean error for the common case, and the composite unique index
// catches the race two concurrent requests can still win.
func (s *voteServiceImpl) CastVote(ctx context.Context, userID uuid.UUID, req *dto.CastVoteRequest) (*dto.VoteResponse, error) {
	if !domain.IsValidVoteKind(req.Kind) {
		return nil, response.NewValidationError(fmt.Sprintf("Invalid vote kind: %s", req.Kind), "")
	}
	kind := domain.VoteKind(req.Kind)

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("User not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to verify user", err.Error())
	}

	falla, err := s.fallaRepo.FindByID(ctx, req.FallaID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Falla not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to verify falla", err.Error())
	}

	if _, err := s.voteRepo.FindByUserFallaKind(ctx, userID, req.FallaID, kind); err == nil {
		if s.metrics != nil {
			s.metrics.IncrementVoteConflict()
		}
		return nil, response.NewConflictError(
			fmt.Sprintf("User has already cast a '%s' vote for this falla", kind), "")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to check existing vote", err.Error())
	}

	vote := &domain.Vote{
		UserID:  userID,
		FallaID: req.FallaID,
		Kind:    kind,
	}
	if err := s.voteRepo.Create(ctx, vote); err != nil {
		if isUniqueViolation(err) {
			if s.metrics != nil {
				s.metrics.IncrementVoteConflict()
			}
			return nil, response.NewConflictError(
				fmt.Sprintf("User has already cast a '%s' vote for this falla", kind), "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to cast vote", err.Error())
	}

	if s.metrics != nil {
		s.metrics.IncrementVoteCast()
	}
	s.logger.Info("Vote cast",
		zap.String("vote_id", vote.ID.String()),
		zap.String("user_id", userID.String()),
		zap.String("falla_id", req.FallaID.String()),
		zap.String("kind", string(kind)),
	)

	resp := dto.ToVoteResponse(vote, user.FullName, falla.Name)
	return &resp, nil
}

// GetVotesByUser lists all votes cast by a user
func (s *voteServiceImpl) GetVotesByUser(ctx context.Context, userID uuid.UUID) ([]dto.VoteResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("User not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to verify user", err.Error())
	}

	votes, err := s.voteRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch votes", err.Error())
	}
	return s.toVoteResponses(ctx, votes, user, nil)
}

// GetVotesByFalla lists all votes received by a falla
func (s *voteServiceImpl) GetVotesByFalla(ctx context.Context, fallaID uuid.UUID) ([]dto.VoteResponse, error) {
	falla, err := s.fallaRepo.FindByID(ctx, fallaID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Falla not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to verify falla", err.Error())
	}

	votes, err := s.voteRepo.FindByFallaID(ctx, fallaID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch votes", err.Error())
	}
	return s.toVoteResponses(ctx, votes, nil, falla)
}

// RemoveVote deletes a vote. Only the voter may remove it.
func (s *voteServiceImpl) RemoveVote(ctx context.Context, userID, voteID uuid.UUID) error {
	vote, err := s.voteRepo.FindByID(ctx, voteID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError("Vote not found", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to fetch vote", err.Error())
	}

	if vote.UserID != userID {
		return response.NewForbiddenError("Not allowed to remove this vote", "")
	}

	if err := s.voteRepo.Delete(ctx, voteID); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to remove vote", err.Error())
	}
	return nil
}

// toVoteResponses resolves display names, reusing the already-fetched
// side of the relation and looking up the other per distinct id.
func (s *voteServiceImpl) toVoteResponses(ctx context.Context, votes []*domain.Vote, user *domain.User, falla *domain.Falla) ([]dto.VoteResponse, error) {
	userNames := make(map[uuid.UUID]string)
	fallaNames := make(map[uuid.UUID]string)
	if user != nil {
		userNames[user.ID] = user.FullName
	}
	if falla != nil {
		fallaNames[falla.ID] = falla.Name
	}

	responses := make([]dto.VoteResponse, 0, len(votes))
	for _, v := range votes {
		if _, ok := userNames[v.UserID]; !ok {
			if u, err := s.userRepo.FindByID(ctx, v.UserID); err == nil {
				userNames[v.UserID] = u.FullName
			} else {
				userNames[v.UserID] = ""
			}
		}
		if _, ok := fallaNames[v.FallaID]; !ok {
			if f, err := s.fallaRepo.FindByID(ctx, v.FallaID); err == nil {
				fallaNames[v.FallaID] = f.Name
			} else {
				fallaNames[v.FallaID] = ""
			}
		}
		responses = append(responses, dto.ToVoteResponse(v, userNames[v.UserID], fallaNames[v.FallaID]))
	}
	return responses, nil
}

// isUniqueViolation reports whether err looks like a unique constraint
// failure. Covers gorm's translated error plus the raw postgres and
// sqlite messages.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "constraint failed")
}
