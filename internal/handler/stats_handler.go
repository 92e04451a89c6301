package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fallapp-api/internal/response"
	"fallapp-api/internal/service"
)

// StatsHandler exposes the public analytics endpoints. The data is
// aggregate-only, so no authentication is required.
type StatsHandler struct {
	statsService service.StatsService
}

func NewStatsHandler(statsService service.StatsService) *StatsHandler {
	return &StatsHandler{
		statsService: statsService,
	}
}

// Summary returns the platform-wide counters
func (h *StatsHandler) Summary(c *gin.Context) {
	summary, err := h.statsService.GeneralSummary(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, summary)
}

// FallaBreakdown returns the distribution of fallas over categories
// and sections
func (h *StatsHandler) FallaBreakdown(c *gin.Context) {
	breakdown, err := h.statsService.FallaBreakdown(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, breakdown)
}
