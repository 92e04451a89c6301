package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"fallapp-api/internal/domain"
	"fallapp-api/internal/dto"
	"fallapp-api/internal/repository"
	"fallapp-api/internal/response"
)

// NinotService defines the interface for ninot business logic
type NinotService interface {
	CreateNinot(ctx context.Context, req *dto.CreateNinotRequest) (*dto.NinotResponse, error)
	GetNinot(ctx context.Context, ninotID uuid.UUID) (*dto.NinotResponse, error)
	GetNinotsByFalla(ctx context.Context, fallaID uuid.UUID) ([]dto.NinotResponse, error)
	DeleteNinot(ctx context.Context, ninotID uuid.UUID) error
}

// ninotServiceImpl is the implementation of NinotService
type ninotServiceImpl struct {
	ninotRepo repository.NinotRepository
	fallaRepo repository.FallaRepository
	logger    *zap.Logger
}

// NewNinotService creates a new instance of NinotService
func NewNinotService(ninotRepo repository.NinotRepository, fallaRepo repository.FallaRepository, logger *zap.Logger) NinotService {
	return &ninotServiceImpl{
		ninotRepo: ninotRepo,
		fallaRepo: fallaRepo,
		logger:    logger,
	}
}

// CreateNinot registers a new ninot for an existing falla
func (s *ninotServiceImpl) CreateNinot(ctx context.Context, req *dto.CreateNinotRequest) (*dto.NinotResponse, error) {
	if _, err := s.fallaRepo.FindByID(ctx, req.FallaID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Falla not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to verify falla", err.Error())
	}

	ninot := &domain.Ninot{
		FallaID:  req.FallaID,
		Name:     req.Name,
		ImageURL: req.ImageURL,
		Awarded:  req.Awarded,
	}
	if err := s.ninotRepo.Create(ctx, ninot); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create ninot", err.Error())
	}

	s.logger.Info("Ninot created",
		zap.String("ninot_id", ninot.ID.String()),
		zap.String("falla_id", req.FallaID.String()),
	)

	resp := dto.ToNinotResponse(ninot)
	return &resp, nil
}

// GetNinot retrieves a ninot by id
func (s *ninotServiceImpl) GetNinot(ctx context.Context, ninotID uuid.UUID) (*dto.NinotResponse, error) {
	ninot, err := s.ninotRepo.FindByID(ctx, ninotID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Ninot not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch ninot", err.Error())
	}
	resp := dto.ToNinotResponse(ninot)
	return &resp, nil
}

// GetNinotsByFalla lists the ninots of a falla
func (s *ninotServiceImpl) GetNinotsByFalla(ctx context.Context, fallaID uuid.UUID) ([]dto.NinotResponse, error) {
	if _, err := s.fallaRepo.FindByID(ctx, fallaID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Falla not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to verify falla", err.Error())
	}

	ninots, err := s.ninotRepo.FindByFallaID(ctx, fallaID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch ninots", err.Error())
	}
	return dto.ToNinotResponses(ninots), nil
}

// DeleteNinot removes a ninot
func (s *ninotServiceImpl) DeleteNinot(ctx context.Context, ninotID uuid.UUID) error {
	if _, err := s.ninotRepo.FindByID(ctx, ninotID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError("Ninot not found", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to fetch ninot", err.Error())
	}

	if err := s.ninotRepo.Delete(ctx, ninotID); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete ninot", err.Error())
	}
	return nil
}
