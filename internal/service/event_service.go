package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"fallapp-api/internal/domain"
	"fallapp-api/internal/dto"
	"fallapp-api/internal/repository"
	"fallapp-api/internal/response"
)

var validEventKinds = []domain.EventKind{
	domain.EventKindMascleta,
	domain.EventKindOfrenda,
	domain.EventKindCrema,
	domain.EventKindVerbena,
	domain.EventKindPasacalle,
	domain.EventKindOtro,
}

// EventService defines the interface for event business logic
type EventService interface {
	CreateEvent(ctx context.Context, userID uuid.UUID, req *dto.CreateEventRequest) (*dto.EventResponse, error)
	GetEvent(ctx context.Context, eventID uuid.UUID) (*dto.EventResponse, error)
	GetEventsByFalla(ctx context.Context, fallaID uuid.UUID) ([]dto.EventResponse, error)
	DeleteEvent(ctx context.Context, eventID uuid.UUID) error
}

// eventServiceImpl is the implementation of EventService
type eventServiceImpl struct {
	eventRepo repository.EventRepository
	fallaRepo repository.FallaRepository
	logger    *zap.Logger
}

// NewEventService creates a new instance of EventService
func NewEventService(eventRepo repository.EventRepository, fallaRepo repository.FallaRepository, logger *zap.Logger) EventService {
	return &eventServiceImpl{
		eventRepo: eventRepo,
		fallaRepo: fallaRepo,
		logger:    logger,
	}
}

// CreateEvent schedules a new event for an existing falla
func (s *eventServiceImpl) CreateEvent(ctx context.Context, userID uuid.UUID, req *dto.CreateEventRequest) (*dto.EventResponse, error) {
	kind := domain.EventKindOtro
	if req.Kind != "" {
		if !isValidEventKind(domain.EventKind(req.Kind)) {
			return nil, response.NewValidationError(fmt.Sprintf("Invalid event kind: %s", req.Kind), "")
		}
		kind = domain.EventKind(req.Kind)
	}

	if _, err := s.fallaRepo.FindByID(ctx, req.FallaID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Falla not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to verify falla", err.Error())
	}

	event := &domain.Event{
		FallaID:            req.FallaID,
		Kind:               kind,
		Name:               req.Name,
		Description:        req.Description,
		StartsAt:           req.StartsAt,
		Location:           req.Location,
		EstimatedAttendees: req.EstimatedAttendees,
		CreatedBy:          userID,
	}
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create event", err.Error())
	}

	s.logger.Info("Event created",
		zap.String("event_id", event.ID.String()),
		zap.String("falla_id", req.FallaID.String()),
		zap.String("kind", string(kind)),
	)

	resp := dto.ToEventResponse(event)
	return &resp, nil
}

// GetEvent retrieves an event by id
func (s *eventServiceImpl) GetEvent(ctx context.Context, eventID uuid.UUID) (*dto.EventResponse, error) {
	event, err := s.eventRepo.FindByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Event not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch event", err.Error())
	}
	resp := dto.ToEventResponse(event)
	return &resp, nil
}

// GetEventsByFalla lists the events of a falla ordered by start time
func (s *eventServiceImpl) GetEventsByFalla(ctx context.Context, fallaID uuid.UUID) ([]dto.EventResponse, error) {
	if _, err := s.fallaRepo.FindByID(ctx, fallaID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Falla not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to verify falla", err.Error())
	}

	events, err := s.eventRepo.FindByFallaID(ctx, fallaID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch events", err.Error())
	}
	return dto.ToEventResponses(events), nil
}

// DeleteEvent removes an event
func (s *eventServiceImpl) DeleteEvent(ctx context.Context, eventID uuid.UUID) error {
	if _, err := s.eventRepo.FindByID(ctx, eventID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError("Event not found", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to fetch event", err.Error())
	}

	if err := s.eventRepo.Delete(ctx, eventID); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete event", err.Error())
	}
	return nil
}

func isValidEventKind(kind domain.EventKind) bool {
	for _, k := range validEventKinds {
		if k == kind {
			return true
		}
	}
	return false
}
