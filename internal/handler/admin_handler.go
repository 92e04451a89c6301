package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fallapp-api/internal/response"
	"fallapp-api/internal/service"
)

// AdminHandler exposes the administrative reporting and maintenance
// endpoints. Access control happens in the route group middleware.
type AdminHandler struct {
	commentService service.CommentService
	statsService   service.StatsService
}

func NewAdminHandler(commentService service.CommentService, statsService service.StatsService) *AdminHandler {
	return &AdminHandler{
		commentService: commentService,
		statsService:   statsService,
	}
}

// FallaSentiment returns the aggregated sentiment report of a falla
func (h *AdminHandler) FallaSentiment(c *gin.Context) {
	fallaID, ok := pathUUID(c, "fallaId")
	if !ok {
		return
	}

	report, err := h.statsService.SentimentByFalla(c.Request.Context(), fallaID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, report)
}

// ReanalyzeComments re-queues every comment still lacking a sentiment
func (h *AdminHandler) ReanalyzeComments(c *gin.Context) {
	result, err := h.commentService.ReprocessPending(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, result)
}

// GeneralSummary returns the platform-wide counters
func (h *AdminHandler) GeneralSummary(c *gin.Context) {
	summary, err := h.statsService.GeneralSummary(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, summary)
}

// FallaStats returns the activity counters of one falla
func (h *AdminHandler) FallaStats(c *gin.Context) {
	fallaID, ok := pathUUID(c, "fallaId")
	if !ok {
		return
	}

	stats, err := h.statsService.FallaStats(c.Request.Context(), fallaID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, stats)
}
