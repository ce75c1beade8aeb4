package complaint

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"pgnest/internal/domain"
	"pgnest/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterResidentRoutes(rg *gin.RouterGroup) {
	rg.POST("/complaints", h.Create)
	rg.GET("/complaints/mine", h.ListMine)
}

func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("/complaints", h.List)
	rg.PATCH("/complaints/:id", h.UpdateStatus)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateComplaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeValidation, "Invalid request body")
		return
	}

	tenantID := c.GetInt64("user_id")
	complaint, err := h.service.Create(c.Request.Context(), tenantID, req)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			response.Error(c, http.StatusBadRequest, response.CodeValidation, "Description is required")
			return
		}
		response.Error(c, http.StatusInternalServerError, response.CodeInternal, "Failed to file complaint")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"complaint": complaint})
}

func (h *Handler) ListMine(c *gin.Context) {
	tenantID := c.GetInt64("user_id")
	complaints, err := h.service.ListForTenant(c.Request.Context(), tenantID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.CodeInternal, "Failed to list complaints")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"complaints": complaints})
}

func (h *Handler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	var status *domain.ComplaintStatus
	if s := c.Query("status"); s != "" {
		st := domain.ComplaintStatus(s)
		status = &st
	}

	complaints, total, err := h.service.List(c.Request.Context(), status, limit, offset)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.CodeInternal, "Failed to list complaints")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"complaints": complaints, "total": total})
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeValidation, "Invalid complaint ID")
		return
	}

	var req UpdateComplaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeValidation, "Invalid request body")
		return
	}

	complaint, err := h.service.UpdateStatus(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, response.CodeValidation, "Invalid complaint status")
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, response.CodeNotFound, "Complaint not found")
		default:
			response.Error(c, http.StatusInternalServerError, response.CodeInternal, "Failed to update complaint")
		}
		return
	}
	response.Success(c, http.StatusOK, gin.H{"complaint": complaint})
}
