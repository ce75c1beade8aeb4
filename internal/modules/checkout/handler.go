package checkout

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"pgnest/internal/modules/occupancy"
	"pgnest/internal/pkg/response"
	"pgnest/internal/repository"
)

type Handler struct {
	service  *Service
	archives *repository.ArchiveRepository
}

func NewHandler(service *Service, archives *repository.ArchiveRepository) *Handler {
	return &Handler{service: service, archives: archives}
}

// RegisterResidentRoutes covers the notice actions a resident takes on
// their own stay. The acting tenant always comes from the auth claims; a
// resident cannot name another tenant in the body.
func (h *Handler) RegisterResidentRoutes(rg *gin.RouterGroup) {
	rg.POST("/notice", h.SubmitNoticeSelf)
	rg.POST("/notice/withdraw", h.WithdrawNoticeSelf)
}

// RegisterAdminRoutes carries the full lifecycle, including the notice
// actions taken on a resident's behalf with an explicit tenant id.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.POST("/notice", h.SubmitNotice)
	rg.POST("/notice/withdraw", h.WithdrawNotice)
	rg.POST("/checkout", h.Checkout)
	rg.POST("/reactivate", h.Reactivate)
	rg.GET("/archives", h.ListArchives)
	rg.GET("/archives/tenant/:id", h.LatestArchive)
}

func (h *Handler) SubmitNoticeSelf(c *gin.Context) {
	var req ResidentNoticeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeValidation, "Invalid request body")
		return
	}
	h.submitNotice(c, c.GetInt64("user_id"), req.LastStayingDate)
}

func (h *Handler) SubmitNotice(c *gin.Context) {
	var req SubmitNoticeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeValidation, "Invalid request body")
		return
	}
	h.submitNotice(c, req.TenantID, req.LastStayingDate)
}

func (h *Handler) submitNotice(c *gin.Context, tenantID int64, lastStayingDate time.Time) {
	result, err := h.service.SubmitNotice(c.Request.Context(), tenantID, lastStayingDate)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, response.CodeNotFound, "Tenant not found")
		case errors.Is(err, ErrNoticeTooShort):
			response.Error(c, http.StatusConflict, response.CodeConflict, "Notice period is too short")
		case errors.Is(err, ErrNotActive), errors.Is(err, ErrAlreadyOnNotice):
			response.Error(c, http.StatusConflict, response.CodeConflict, "Tenant cannot submit notice in this state")
		default:
			response.Error(c, http.StatusInternalServerError, response.CodeInternal, "Failed to submit notice")
		}
		return
	}
	response.Success(c, http.StatusOK, result)
}

func (h *Handler) WithdrawNoticeSelf(c *gin.Context) {
	h.withdrawNotice(c, c.GetInt64("user_id"))
}

func (h *Handler) WithdrawNotice(c *gin.Context) {
	var req struct {
		TenantID int64 `json:"tenant_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeValidation, "Invalid request body")
		return
	}
	h.withdrawNotice(c, req.TenantID)
}

func (h *Handler) withdrawNotice(c *gin.Context, tenantID int64) {
	tenant, err := h.service.WithdrawNotice(c.Request.Context(), tenantID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, response.CodeNotFound, "Tenant not found")
		case errors.Is(err, ErrNotOnNotice):
			response.Error(c, http.StatusConflict, response.CodeConflict, "Tenant is not on notice")
		default:
			response.Error(c, http.StatusInternalServerError, response.CodeInternal, "Failed to withdraw notice")
		}
		return
	}
	response.Success(c, http.StatusOK, gin.H{"tenant": tenant})
}

func (h *Handler) Checkout(c *gin.Context) {
	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeValidation, "Invalid request body")
		return
	}

	archive, err := h.service.Checkout(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, response.CodeNotFound, "Tenant not found")
		case errors.Is(err, ErrNotOnNotice):
			response.Error(c, http.StatusConflict, response.CodeConflict, "Checkout requires an active notice")
		default:
			response.Error(c, http.StatusInternalServerError, response.CodeInternal, "Failed to check out tenant")
		}
		return
	}
	response.Success(c, http.StatusOK, gin.H{"archive": archive})
}

func (h *Handler) ListArchives(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	archives, total, err := h.archives.List(c.Request.Context(), limit, offset)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.CodeInternal, "Failed to list archives")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"archives": archives, "total": total})
}

// LatestArchive shows the prior stay, useful before a reactivation.
func (h *Handler) LatestArchive(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeValidation, "Invalid tenant ID")
		return
	}

	archive, err := h.archives.LatestByTenant(c.Request.Context(), id)
	if err != nil {
		if repository.IsNotFound(err) {
			response.Error(c, http.StatusNotFound, response.CodeNotFound, "No archive for tenant")
			return
		}
		response.Error(c, http.StatusInternalServerError, response.CodeInternal, "Failed to load archive")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"archive": archive})
}

func (h *Handler) Reactivate(c *gin.Context) {
	var req ReactivateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeValidation, "Invalid request body")
		return
	}

	result, err := h.service.Reactivate(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, response.CodeValidation, "Invalid reactivation payload")
		case errors.Is(err, ErrNotFound), errors.Is(err, occupancy.ErrNotFound):
			response.Error(c, http.StatusNotFound, response.CodeNotFound, "Tenant or room not found")
		case errors.Is(err, ErrNotReactivable):
			response.Error(c, http.StatusConflict, response.CodeConflict, "Tenant cannot be reactivated")
		case errors.Is(err, occupancy.ErrRoomFull), errors.Is(err, occupancy.ErrMaintenance), errors.Is(err, occupancy.ErrInactive):
			response.Error(c, http.StatusConflict, response.CodeConflict, "Room is not accepting tenants")
		default:
			response.Error(c, http.StatusInternalServerError, response.CodeInternal, "Failed to reactivate tenant")
		}
		return
	}
	response.Success(c, http.StatusOK, result)
}
