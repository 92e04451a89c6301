package dto

import (
	"time"

	"github.com/google/uuid"

	"fallapp-api/internal/domain"
)

// CastVoteRequest represents the request to cast a vote on a falla
type CastVoteRequest struct {
	FallaID uuid.UUID `json:"fallaId" binding:"required"`
	Kind    string    `json:"tipoVoto" binding:"required"`
}

// VoteResponse represents the vote response with the voter and falla
// names resolved for display.
type VoteResponse struct {
	VoteID    uuid.UUID `json:"voteId"`
	UserID    uuid.UUID `json:"userId"`
	UserName  string    `json:"userName"`
	FallaID   uuid.UUID `json:"fallaId"`
	FallaName string    `json:"fallaName"`
	Kind      string    `json:"tipoVoto"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToVoteResponse converts a vote model to its response form
func ToVoteResponse(v *domain.Vote, userName, fallaName string) VoteResponse {
	return VoteResponse{
		VoteID:    v.ID,
		UserID:    v.UserID,
		UserName:  userName,
		FallaID:   v.FallaID,
		FallaName: fallaName,
		Kind:      string(v.Kind),
		CreatedAt: v.CreatedAt,
	}
}
