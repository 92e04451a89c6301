package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fallapp-api/internal/dto"
	"fallapp-api/internal/response"
	"fallapp-api/internal/service"
)

type VoteHandler struct {
	voteService service.VoteService
}

func NewVoteHandler(voteService service.VoteService) *VoteHandler {
	return &VoteHandler{
		voteService: voteService,
	}
}

// CastVote records one vote of a kind on a falla
func (h *VoteHandler) CastVote(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.CastVoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	vote, err := h.voteService.CastVote(c.Request.Context(), userID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, vote)
}

// GetMyVotes lists the authenticated user's votes
func (h *VoteHandler) GetMyVotes(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	votes, err := h.voteService.GetVotesByUser(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, votes)
}

// GetVotesByFalla lists the votes a falla received
func (h *VoteHandler) GetVotesByFalla(c *gin.Context) {
	fallaID, ok := pathUUID(c, "fallaId")
	if !ok {
		return
	}

	votes, err := h.voteService.GetVotesByFalla(c.Request.Context(), fallaID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, votes)
}

// RemoveVote deletes the authenticated user's vote
func (h *VoteHandler) RemoveVote(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	voteID, ok := pathUUID(c, "voteId")
	if !ok {
		return
	}

	if err := h.voteService.RemoveVote(c.Request.Context(), userID, voteID); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, gin.H{"deleted": true})
}
