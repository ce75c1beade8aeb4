package registration

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"pgnest/internal/modules/occupancy"
	"pgnest/internal/pkg/response"
	"pgnest/internal/repository"
)

type Handler struct {
	service *Service
	tenants *repository.TenantRepository
}

func NewHandler(service *Service, tenants *repository.TenantRepository) *Handler {
	return &Handler{service: service, tenants: tenants}
}

// RegisterPublicRoutes exposes the applicant-facing endpoint.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.POST("/registrations", h.Register)
}

// RegisterAdminRoutes exposes the approval queue and tenant lookup.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("/registrations/pending", h.ListPending)
	rg.POST("/registrations/approve", h.Approve)
	rg.POST("/registrations/reject", h.Reject)
	rg.GET("/tenants/code/:code", h.GetByCode)
	rg.DELETE("/tenants/:id", h.Remove)
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeValidation, "Invalid request body")
		return
	}

	tenant, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			response.Error(c, http.StatusBadRequest, response.CodeValidation, "Name and email are required")
			return
		}
		response.Error(c, http.StatusInternalServerError, response.CodeInternal, "Failed to register")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"tenant": tenant})
}

func (h *Handler) ListPending(c *gin.Context) {
	tenants, err := h.service.ListPending(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.CodeInternal, "Failed to list pending registrations")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"registrations": tenants})
}

func (h *Handler) GetByCode(c *gin.Context) {
	tenant, err := h.tenants.GetByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		if repository.IsNotFound(err) {
			response.Error(c, http.StatusNotFound, response.CodeNotFound, "Tenant not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, response.CodeInternal, "Failed to load tenant")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"tenant": tenant})
}

// Remove soft-deletes a tenant record; history and archives stay intact.
func (h *Handler) Remove(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeValidation, "Invalid tenant ID")
		return
	}

	if err := h.tenants.SoftDelete(c.Request.Context(), id); err != nil {
		if repository.IsNotFound(err) {
			response.Error(c, http.StatusNotFound, response.CodeNotFound, "Tenant not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, response.CodeInternal, "Failed to remove tenant")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) Approve(c *gin.Context) {
	var req ApproveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeValidation, "Invalid request body")
		return
	}

	result, err := h.service.Approve(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, response.CodeValidation, "Payment amount must be positive and months non-empty")
		case errors.Is(err, ErrNotFound), errors.Is(err, occupancy.ErrNotFound):
			response.Error(c, http.StatusNotFound, response.CodeNotFound, "Tenant or room not found")
		case errors.Is(err, ErrAlreadyProcessed):
			response.Error(c, http.StatusConflict, response.CodeConflict, "Registration already processed")
		case errors.Is(err, occupancy.ErrRoomFull):
			response.Error(c, http.StatusConflict, response.CodeConflict, "Room has no free beds")
		case errors.Is(err, occupancy.ErrMaintenance), errors.Is(err, occupancy.ErrInactive):
			response.Error(c, http.StatusConflict, response.CodeConflict, "Room is not accepting tenants")
		default:
			response.Error(c, http.StatusInternalServerError, response.CodeInternal, "Failed to approve registration")
		}
		return
	}
	response.Success(c, http.StatusOK, result)
}

func (h *Handler) Reject(c *gin.Context) {
	var req RejectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeValidation, "Invalid request body")
		return
	}

	tenant, err := h.service.Reject(c.Request.Context(), req.TenantID, req.Reason)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, response.CodeValidation, "Reason is required")
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, response.CodeNotFound, "Tenant not found")
		case errors.Is(err, ErrAlreadyProcessed):
			response.Error(c, http.StatusConflict, response.CodeConflict, "Registration already processed")
		default:
			response.Error(c, http.StatusInternalServerError, response.CodeInternal, "Failed to reject registration")
		}
		return
	}
	response.Success(c, http.StatusOK, gin.H{"tenant": tenant})
}
