package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"fallapp-api/internal/dto"
	"fallapp-api/internal/response"
	"fallapp-api/internal/service"
)

type FallaHandler struct {
	fallaService service.FallaService
}

func NewFallaHandler(fallaService service.FallaService) *FallaHandler {
	return &FallaHandler{
		fallaService: fallaService,
	}
}

// CreateFalla registers a new falla commission
func (h *FallaHandler) CreateFalla(c *gin.Context) {
	var req dto.CreateFallaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	falla, err := h.fallaService.CreateFalla(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, falla)
}

// GetFalla returns a single falla
func (h *FallaHandler) GetFalla(c *gin.Context) {
	fallaID, ok := pathUUID(c, "fallaId")
	if !ok {
		return
	}

	falla, err := h.fallaService.GetFalla(c.Request.Context(), fallaID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, falla)
}

// ListFallas returns a page of fallas
func (h *FallaHandler) ListFallas(c *gin.Context) {
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	fallas, err := h.fallaService.ListFallas(c.Request.Context(), offset, limit)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, fallas)
}

// UpdateFalla applies changes to a falla
func (h *FallaHandler) UpdateFalla(c *gin.Context) {
	fallaID, ok := pathUUID(c, "fallaId")
	if !ok {
		return
	}

	var req dto.UpdateFallaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	falla, err := h.fallaService.UpdateFalla(c.Request.Context(), fallaID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, falla)
}

// DeleteFalla removes a falla
func (h *FallaHandler) DeleteFalla(c *gin.Context) {
	fallaID, ok := pathUUID(c, "fallaId")
	if !ok {
		return
	}

	if err := h.fallaService.DeleteFalla(c.Request.Context(), fallaID); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, gin.H{"deleted": true})
}
