package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fallapp-api/internal/dto"
	"fallapp-api/internal/response"
	"fallapp-api/internal/service"
)

type NinotHandler struct {
	ninotService service.NinotService
}

func NewNinotHandler(ninotService service.NinotService) *NinotHandler {
	return &NinotHandler{
		ninotService: ninotService,
	}
}

// CreateNinot registers a new ninot
func (h *NinotHandler) CreateNinot(c *gin.Context) {
	var req dto.CreateNinotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	ninot, err := h.ninotService.CreateNinot(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, ninot)
}

// GetNinot returns a single ninot
func (h *NinotHandler) GetNinot(c *gin.Context) {
	ninotID, ok := pathUUID(c, "ninotId")
	if !ok {
		return
	}

	ninot, err := h.ninotService.GetNinot(c.Request.Context(), ninotID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, ninot)
}

// GetNinotsByFalla lists the ninots of a falla
func (h *NinotHandler) GetNinotsByFalla(c *gin.Context) {
	fallaID, ok := pathUUID(c, "fallaId")
	if !ok {
		return
	}

	ninots, err := h.ninotService.GetNinotsByFalla(c.Request.Context(), fallaID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, ninots)
}

// DeleteNinot removes a ninot
func (h *NinotHandler) DeleteNinot(c *gin.Context) {
	ninotID, ok := pathUUID(c, "ninotId")
	if !ok {
		return
	}

	if err := h.ninotService.DeleteNinot(c.Request.Context(), ninotID); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, gin.H{"deleted": true})
}
