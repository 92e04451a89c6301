package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"fallapp-api/internal/domain"
	"fallapp-api/internal/dto"
	"fallapp-api/internal/repository"
	"fallapp-api/internal/response"
)

const sentimentCacheTTL = 60 * time.Second

// StatsService defines the interface for aggregated reporting
type StatsService interface {
	SentimentByFalla(ctx context.Context, fallaID uuid.UUID) (*dto.SentimentReportResponse, error)
	GeneralSummary(ctx context.Context) (*dto.GeneralSummaryResponse, error)
	FallaBreakdown(ctx context.Context) (*dto.FallaBreakdownResponse, error)
	FallaStats(ctx context.Context, fallaID uuid.UUID) (*dto.FallaStatsResponse, error)
}

// statsServiceImpl is the implementation of StatsService. The redis
// client is optional; when nil every report is computed from the
// database directly.
type statsServiceImpl struct {
	commentRepo repository.CommentRepository
	voteRepo    repository.VoteRepository
	fallaRepo   repository.FallaRepository
	userRepo    repository.UserRepository
	ninotRepo   repository.NinotRepository
	eventRepo   repository.EventRepository
	cache       *redis.Client
	logger      *zap.Logger
}

// NewStatsService creates a new instance of StatsService
func NewStatsService(
	commentRepo repository.CommentRepository,
	voteRepo repository.VoteRepository,
	fallaRepo repository.FallaRepository,
	userRepo repository.UserRepository,
	ninotRepo repository.NinotRepository,
	eventRepo repository.EventRepository,
	cache *redis.Client,
	logger *zap.Logger,
) StatsService {
	return &statsServiceImpl{
		commentRepo: commentRepo,
		voteRepo:    voteRepo,
		fallaRepo:   fallaRepo,
		userRepo:    userRepo,
		ninotRepo:   ninotRepo,
		eventRepo:   eventRepo,
		cache:       cache,
		logger:      logger,
	}
}

// SentimentByFalla aggregates the sentiment labels of a falla's
// comments. Labels that never occur report zero, and the pending count
// is clamped at zero so a sweep racing the report can never push it
// negative. Snapshots are cached briefly; a cache failure is only
// logged.
func (s *statsServiceImpl) SentimentByFalla(ctx context.Context, fallaID uuid.UUID) (*dto.SentimentReportResponse, error) {
	if _, err := s.fallaRepo.FindByID(ctx, fallaID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Falla not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to verify falla", err.Error())
	}

	cacheKey := fmt.Sprintf("fallapp:sentiment:%s", fallaID)
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, cacheKey).Result(); err == nil {
			var report dto.SentimentReportResponse
			if err := json.Unmarshal([]byte(cached), &report); err == nil {
				return &report, nil
			}
		}
	}

	counts, err := s.commentRepo.CountByFallaGroupedBySentiment(ctx, fallaID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to aggregate sentiment", err.Error())
	}
	totalFalla, err := s.commentRepo.CountByFalla(ctx, fallaID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to count comments", err.Error())
	}

	report := &dto.SentimentReportResponse{TotalComentariosFalla: totalFalla}
	for _, c := range counts {
		report.TotalComentarios += c.Count
		switch c.Sentiment {
		case domain.SentimentPositive:
			report.Positive = c.Count
		case domain.SentimentNeutral:
			report.Neutral = c.Count
		case domain.SentimentNegative:
			report.Negative = c.Count
		}
	}
	report.TotalPendientes = totalFalla - report.TotalComentarios
	if report.TotalPendientes < 0 {
		report.TotalPendientes = 0
	}

	if s.cache != nil {
		if payload, err := json.Marshal(report); err == nil {
			if err := s.cache.Set(ctx, cacheKey, payload, sentimentCacheTTL).Err(); err != nil {
				s.logger.Warn("Failed to cache sentiment snapshot",
					zap.String("falla_id", fallaID.String()),
					zap.Error(err),
				)
			}
		}
	}

	return report, nil
}

// GeneralSummary computes the platform-wide counters
func (s *statsServiceImpl) GeneralSummary(ctx context.Context) (*dto.GeneralSummaryResponse, error) {
	summary := &dto.GeneralSummaryResponse{
		FallasByCategory: make(map[string]int64),
	}

	var err error
	if summary.TotalUsers, err = s.userRepo.Count(ctx); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to count users", err.Error())
	}
	if summary.ActiveUsers, err = s.userRepo.CountActive(ctx); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to count active users", err.Error())
	}
	if summary.TotalFallas, err = s.fallaRepo.Count(ctx); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to count fallas", err.Error())
	}
	if summary.TotalNinots, err = s.ninotRepo.Count(ctx); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to count ninots", err.Error())
	}
	if summary.TotalEvents, err = s.eventRepo.Count(ctx); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to count events", err.Error())
	}
	if summary.TotalComments, err = s.commentRepo.Count(ctx); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to count comments", err.Error())
	}
	if summary.TotalVotes, err = s.voteRepo.Count(ctx); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to count votes", err.Error())
	}

	for _, category := range domain.ValidFallaCategories {
		count, err := s.fallaRepo.CountByCategory(ctx, category)
		if err != nil {
			return nil, response.NewAppError(response.ErrCodeInternal, "Failed to count fallas by category", err.Error())
		}
		summary.FallasByCategory[string(category)] = count
	}

	return summary, nil
}

// FallaBreakdown computes the public distribution of fallas over
// categories and sections. Every valid category appears even when its
// count is zero; sections are free text and only occurring ones appear.
func (s *statsServiceImpl) FallaBreakdown(ctx context.Context) (*dto.FallaBreakdownResponse, error) {
	breakdown := &dto.FallaBreakdownResponse{
		PorCategoria: make(map[string]int64),
		PorSeccion:   make(map[string]int64),
	}

	var err error
	if breakdown.TotalFallas, err = s.fallaRepo.Count(ctx); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to count fallas", err.Error())
	}

	for _, category := range domain.ValidFallaCategories {
		count, err := s.fallaRepo.CountByCategory(ctx, category)
		if err != nil {
			return nil, response.NewAppError(response.ErrCodeInternal, "Failed to count fallas by category", err.Error())
		}
		breakdown.PorCategoria[string(category)] = count
	}

	sectionCounts, err := s.fallaRepo.CountGroupedBySection(ctx)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to count fallas by section", err.Error())
	}
	for _, sc := range sectionCounts {
		breakdown.PorSeccion[sc.Section] = sc.Count
	}

	return breakdown, nil
}

// FallaStats computes the activity counters of one falla
func (s *statsServiceImpl) FallaStats(ctx context.Context, fallaID uuid.UUID) (*dto.FallaStatsResponse, error) {
	falla, err := s.fallaRepo.FindByID(ctx, fallaID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Falla not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to verify falla", err.Error())
	}

	stats := &dto.FallaStatsResponse{
		FallaID:     falla.ID,
		FallaName:   falla.Name,
		VotesByKind: make(map[string]int64),
	}

	if stats.CommentCount, err = s.commentRepo.CountByFalla(ctx, fallaID); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to count comments", err.Error())
	}
	if stats.VoteCount, err = s.voteRepo.CountByFalla(ctx, fallaID); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to count votes", err.Error())
	}

	kindCounts, err := s.voteRepo.CountByFallaGroupedByKind(ctx, fallaID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to count votes by kind", err.Error())
	}
	for _, kc := range kindCounts {
		stats.VotesByKind[kc.Kind] = kc.Count
	}

	return stats, nil
}
