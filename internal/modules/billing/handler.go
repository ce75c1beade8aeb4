package billing

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"pgnest/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/dues", h.RosterDues)
	rg.GET("/tenants/:id/dues", h.TenantDues)
	rg.GET("/tenants/:id/payments", h.ListPayments)
	rg.POST("/payments", h.RecordPayment)
}

func (h *Handler) RosterDues(c *gin.Context) {
	dues, err := h.service.RosterDues(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.CodeInternal, "Failed to compute dues")
		return
	}
	response.Success(c, http.StatusOK, dues)
}

func (h *Handler) TenantDues(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeValidation, "Invalid tenant ID")
		return
	}

	status, err := h.service.ComputeCurrentPeriodStatus(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, response.CodeNotFound, "Tenant not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, response.CodeInternal, "Failed to compute dues")
		return
	}
	response.Success(c, http.StatusOK, status)
}

func (h *Handler) ListPayments(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeValidation, "Invalid tenant ID")
		return
	}

	payments, err := h.service.ListTenantPayments(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, response.CodeNotFound, "Tenant not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, response.CodeInternal, "Failed to list payments")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"payments": payments})
}

func (h *Handler) RecordPayment(c *gin.Context) {
	var req RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeValidation, "Invalid request body")
		return
	}

	p, err := h.service.RecordPayment(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, response.CodeValidation, "Amount must be positive and months non-empty")
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, response.CodeNotFound, "Tenant not found")
		default:
			response.Error(c, http.StatusInternalServerError, response.CodeInternal, "Failed to record payment")
		}
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"payment": p})
}
