package dto

import (
	"time"

	"github.com/google/uuid"

	"fallapp-api/internal/domain"
)

// CreateEventRequest represents the request to schedule an event
type CreateEventRequest struct {
	FallaID            uuid.UUID `json:"fallaId" binding:"required"`
	Kind               string    `json:"kind"`
	Name               string    `json:"name" binding:"required,min=1,max=255"`
	Description        string    `json:"description"`
	StartsAt           time.Time `json:"startsAt" binding:"required"`
	Location           string    `json:"location"`
	EstimatedAttendees *int      `json:"estimatedAttendees,omitempty"`
}

// EventResponse represents the event response
type EventResponse struct {
	EventID            uuid.UUID `json:"eventId"`
	FallaID            uuid.UUID `json:"fallaId"`
	Kind               string    `json:"kind"`
	Name               string    `json:"name"`
	Description        string    `json:"description"`
	StartsAt           time.Time `json:"startsAt"`
	Location           string    `json:"location"`
	EstimatedAttendees *int      `json:"estimatedAttendees,omitempty"`
	CreatedBy          uuid.UUID `json:"createdBy"`
	CreatedAt          time.Time `json:"createdAt"`
}

// ToEventResponse converts an event model to its response form
func ToEventResponse(e *domain.Event) EventResponse {
	return EventResponse{
		EventID:            e.ID,
		FallaID:            e.FallaID,
		Kind:               string(e.Kind),
		Name:               e.Name,
		Description:        e.Description,
		StartsAt:           e.StartsAt,
		Location:           e.Location,
		EstimatedAttendees: e.EstimatedAttendees,
		CreatedBy:          e.CreatedBy,
		CreatedAt:          e.CreatedAt,
	}
}

// ToEventResponses converts a list of event models
func ToEventResponses(events []*domain.Event) []EventResponse {
	responses := make([]EventResponse, 0, len(events))
	for _, e := range events {
		responses = append(responses, ToEventResponse(e))
	}
	return responses
}
