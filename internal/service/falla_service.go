package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"fallapp-api/internal/domain"
	"fallapp-api/internal/dto"
	"fallapp-api/internal/repository"
	"fallapp-api/internal/response"
)

const (
	defaultPageSize  = 20
	maxPageSize      = 100
	earliestFounding = 1800
)

// FallaService defines the interface for falla business logic
type FallaService interface {
	CreateFalla(ctx context.Context, req *dto.CreateFallaRequest) (*dto.FallaResponse, error)
	GetFalla(ctx context.Context, fallaID uuid.UUID) (*dto.FallaResponse, error)
	ListFallas(ctx context.Context, offset, limit int) (*dto.FallaListResponse, error)
	UpdateFalla(ctx context.Context, fallaID uuid.UUID, req *dto.UpdateFallaRequest) (*dto.FallaResponse, error)
	DeleteFalla(ctx context.Context, fallaID uuid.UUID) error
}

// fallaServiceImpl is the implementation of FallaService
type fallaServiceImpl struct {
	fallaRepo repository.FallaRepository
	logger    *zap.Logger
}

// NewFallaService creates a new instance of FallaService
func NewFallaService(fallaRepo repository.FallaRepository, logger *zap.Logger) FallaService {
	return &fallaServiceImpl{
		fallaRepo: fallaRepo,
		logger:    logger,
	}
}

// CreateFalla registers a new falla commission
func (s *fallaServiceImpl) CreateFalla(ctx context.Context, req *dto.CreateFallaRequest) (*dto.FallaResponse, error) {
	category := domain.FallaCategorySinCategoria
	if req.Category != "" {
		if !domain.IsValidFallaCategory(req.Category) {
			return nil, response.NewValidationError(fmt.Sprintf("Invalid falla category: %s", req.Category), "")
		}
		category = domain.FallaCategory(req.Category)
	}

	if err := validateFoundedYear(req.FoundedYear); err != nil {
		return nil, err
	}

	falla := &domain.Falla{
		Name:         req.Name,
		Section:      req.Section,
		Fallera:      req.Fallera,
		President:    req.President,
		Artist:       req.Artist,
		Motto:        req.Motto,
		FoundedYear:  req.FoundedYear,
		Category:     category,
		Description:  req.Description,
		Website:      req.Website,
		ContactEmail: req.ContactEmail,
		Lat:          req.Lat,
		Lon:          req.Lon,
		Extra:        req.Extra,
	}
	if err := s.fallaRepo.Create(ctx, falla); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create falla", err.Error())
	}

	s.logger.Info("Falla created",
		zap.String("falla_id", falla.ID.String()),
		zap.String("name", falla.Name),
	)

	resp := dto.ToFallaResponse(falla)
	return &resp, nil
}

// GetFalla retrieves a falla by id
func (s *fallaServiceImpl) GetFalla(ctx context.Context, fallaID uuid.UUID) (*dto.FallaResponse, error) {
	falla, err := s.fallaRepo.FindByID(ctx, fallaID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Falla not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch falla", err.Error())
	}
	resp := dto.ToFallaResponse(falla)
	return &resp, nil
}

// ListFallas returns a page of fallas ordered by name
func (s *fallaServiceImpl) ListFallas(ctx context.Context, offset, limit int) (*dto.FallaListResponse, error) {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	fallas, total, err := s.fallaRepo.FindAll(ctx, offset, limit)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list fallas", err.Error())
	}

	return &dto.FallaListResponse{
		Fallas: dto.ToFallaResponses(fallas),
		Total:  total,
		Offset: offset,
		Limit:  limit,
	}, nil
}

// UpdateFalla applies the non-zero fields of the request
func (s *fallaServiceImpl) UpdateFalla(ctx context.Context, fallaID uuid.UUID, req *dto.UpdateFallaRequest) (*dto.FallaResponse, error) {
	falla, err := s.fallaRepo.FindByID(ctx, fallaID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Falla not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch falla", err.Error())
	}

	if req.Category != "" {
		if !domain.IsValidFallaCategory(req.Category) {
			return nil, response.NewValidationError(fmt.Sprintf("Invalid falla category: %s", req.Category), "")
		}
		falla.Category = domain.FallaCategory(req.Category)
	}
	if req.FoundedYear != nil {
		if err := validateFoundedYear(req.FoundedYear); err != nil {
			return nil, err
		}
		falla.FoundedYear = req.FoundedYear
	}
	if req.Name != "" {
		falla.Name = req.Name
	}
	if req.Section != "" {
		falla.Section = req.Section
	}
	if req.Fallera != "" {
		falla.Fallera = req.Fallera
	}
	if req.President != "" {
		falla.President = req.President
	}
	if req.Artist != "" {
		falla.Artist = req.Artist
	}
	if req.Motto != "" {
		falla.Motto = req.Motto
	}
	if req.Description != "" {
		falla.Description = req.Description
	}
	if req.Website != "" {
		falla.Website = req.Website
	}
	if req.ContactEmail != "" {
		falla.ContactEmail = req.ContactEmail
	}
	if req.Lat != nil {
		falla.Lat = req.Lat
	}
	if req.Lon != nil {
		falla.Lon = req.Lon
	}
	if len(req.Extra) > 0 {
		falla.Extra = req.Extra
	}

	if err := s.fallaRepo.Update(ctx, falla); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update falla", err.Error())
	}

	resp := dto.ToFallaResponse(falla)
	return &resp, nil
}

// DeleteFalla removes a falla and, through the cascade, its ninots,
// events and comments.
func (s *fallaServiceImpl) DeleteFalla(ctx context.Context, fallaID uuid.UUID) error {
	if _, err := s.fallaRepo.FindByID(ctx, fallaID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError("Falla not found", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to fetch falla", err.Error())
	}

	if err := s.fallaRepo.Delete(ctx, fallaID); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete falla", err.Error())
	}

	s.logger.Info("Falla deleted", zap.String("falla_id", fallaID.String()))
	return nil
}

func validateFoundedYear(year *int) error {
	if year == nil {
		return nil
	}
	if *year < earliestFounding || *year > time.Now().Year()+1 {
		return response.NewValidationError(fmt.Sprintf("Invalid founding year: %d", *year), "")
	}
	return nil
}
