package dto

import (
	"time"

	"github.com/google/uuid"

	"fallapp-api/internal/domain"
)

// CreateCommentRequest represents the request to create a new comment.
// Exactly one of fallaId and ninotId must be set.
type CreateCommentRequest struct {
	FallaID *uuid.UUID `json:"fallaId,omitempty"`
	NinotID *uuid.UUID `json:"ninotId,omitempty"`
	Content string     `json:"content" binding:"required"`
}

// UpdateCommentRequest represents the request to update a comment's text
type UpdateCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

// CommentResponse represents the comment response. Sentiment is null
// until the classification pipeline has processed the comment.
type CommentResponse struct {
	CommentID uuid.UUID  `json:"commentId"`
	UserID    uuid.UUID  `json:"userId"`
	FallaID   *uuid.UUID `json:"fallaId,omitempty"`
	NinotID   *uuid.UUID `json:"ninotId,omitempty"`
	Content   string     `json:"content"`
	Sentiment *string    `json:"sentiment"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// ToCommentResponse converts a comment model to its response form
func ToCommentResponse(c *domain.Comment) CommentResponse {
	return CommentResponse{
		CommentID: c.ID,
		UserID:    c.UserID,
		FallaID:   c.FallaID,
		NinotID:   c.NinotID,
		Content:   c.Content,
		Sentiment: c.Sentiment,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// ToCommentResponses converts a list of comment models
func ToCommentResponses(comments []*domain.Comment) []CommentResponse {
	responses := make([]CommentResponse, 0, len(comments))
	for _, c := range comments {
		responses = append(responses, ToCommentResponse(c))
	}
	return responses
}

// ReanalyzeResponse reports how many pending comments were queued for
// classification by an administrative reprocess request.
type ReanalyzeResponse struct {
	ComentariosEncolados int    `json:"comentariosEncolados"`
	Mensaje              string `json:"mensaje"`
}
