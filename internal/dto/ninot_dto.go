package dto

import (
	"time"

	"github.com/google/uuid"

	"fallapp-api/internal/domain"
)

// CreateNinotRequest represents the request to register a ninot
type CreateNinotRequest struct {
	FallaID  uuid.UUID `json:"fallaId" binding:"required"`
	Name     string    `json:"name" binding:"required,min=1,max=255"`
	ImageURL string    `json:"imageUrl" binding:"omitempty,url"`
	Awarded  bool      `json:"awarded"`
}

// NinotResponse represents the ninot response
type NinotResponse struct {
	NinotID   uuid.UUID `json:"ninotId"`
	FallaID   uuid.UUID `json:"fallaId"`
	Name      string    `json:"name"`
	ImageURL  string    `json:"imageUrl"`
	Awarded   bool      `json:"awarded"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToNinotResponse converts a ninot model to its response form
func ToNinotResponse(n *domain.Ninot) NinotResponse {
	return NinotResponse{
		NinotID:   n.ID,
		FallaID:   n.FallaID,
		Name:      n.Name,
		ImageURL:  n.ImageURL,
		Awarded:   n.Awarded,
		CreatedAt: n.CreatedAt,
	}
}

// ToNinotResponses converts a list of ninot models
func ToNinotResponses(ninots []*domain.Ninot) []NinotResponse {
	responses := make([]NinotResponse, 0, len(ninots))
	for _, n := range ninots {
		responses = append(responses, ToNinotResponse(n))
	}
	return responses
}
