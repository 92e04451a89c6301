package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"fallapp-api/internal/domain"
)

// CreateFallaRequest represents the request to register a falla
type CreateFallaRequest struct {
	Name         string         `json:"name" binding:"required,min=2,max=255"`
	Section      string         `json:"section"`
	Fallera      string         `json:"fallera"`
	President    string         `json:"president"`
	Artist       string         `json:"artist"`
	Motto        string         `json:"motto"`
	FoundedYear  *int           `json:"foundedYear,omitempty"`
	Category     string         `json:"category"`
	Description  string         `json:"description"`
	Website      string         `json:"website"`
	ContactEmail string         `json:"contactEmail" binding:"omitempty,email"`
	Lat          *float64       `json:"lat,omitempty"`
	Lon          *float64       `json:"lon,omitempty"`
	Extra        datatypes.JSON `json:"extra,omitempty"`
}

// UpdateFallaRequest represents the request to update a falla. Zero
// fields keep their stored value.
type UpdateFallaRequest struct {
	Name         string         `json:"name"`
	Section      string         `json:"section"`
	Fallera      string         `json:"fallera"`
	President    string         `json:"president"`
	Artist       string         `json:"artist"`
	Motto        string         `json:"motto"`
	FoundedYear  *int           `json:"foundedYear,omitempty"`
	Category     string         `json:"category"`
	Description  string         `json:"description"`
	Website      string         `json:"website"`
	ContactEmail string         `json:"contactEmail" binding:"omitempty,email"`
	Lat          *float64       `json:"lat,omitempty"`
	Lon          *float64       `json:"lon,omitempty"`
	Extra        datatypes.JSON `json:"extra,omitempty"`
}

// FallaResponse represents the falla response
type FallaResponse struct {
	FallaID      uuid.UUID      `json:"fallaId"`
	Name         string         `json:"name"`
	Section      string         `json:"section"`
	Fallera      string         `json:"fallera"`
	President    string         `json:"president"`
	Artist       string         `json:"artist"`
	Motto        string         `json:"motto"`
	FoundedYear  *int           `json:"foundedYear,omitempty"`
	Category     string         `json:"category"`
	Description  string         `json:"description"`
	Website      string         `json:"website"`
	ContactEmail string         `json:"contactEmail"`
	Lat          *float64       `json:"lat,omitempty"`
	Lon          *float64       `json:"lon,omitempty"`
	Extra        datatypes.JSON `json:"extra,omitempty"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
}

// FallaListResponse represents a paginated list of fallas
type FallaListResponse struct {
	Fallas []FallaResponse `json:"fallas"`
	Total  int64           `json:"total"`
	Offset int             `json:"offset"`
	Limit  int             `json:"limit"`
}

// ToFallaResponse converts a falla model to its response form
func ToFallaResponse(f *domain.Falla) FallaResponse {
	return FallaResponse{
		FallaID:      f.ID,
		Name:         f.Name,
		Section:      f.Section,
		Fallera:      f.Fallera,
		President:    f.President,
		Artist:       f.Artist,
		Motto:        f.Motto,
		FoundedYear:  f.FoundedYear,
		Category:     string(f.Category),
		Description:  f.Description,
		Website:      f.Website,
		ContactEmail: f.ContactEmail,
		Lat:          f.Lat,
		Lon:          f.Lon,
		Extra:        f.Extra,
		CreatedAt:    f.CreatedAt,
		UpdatedAt:    f.UpdatedAt,
	}
}

// ToFallaResponses converts a list of falla models
func ToFallaResponses(fallas []*domain.Falla) []FallaResponse {
	responses := make([]FallaResponse, 0, len(fallas))
	for _, f := range fallas {
		responses = append(responses, ToFallaResponse(f))
	}
	return responses
}
