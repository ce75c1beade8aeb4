package notification

import (
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

// RegisterRoutes exposes the resident notification feed. The tenant id
// comes from the auth middleware, not the request.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/notifications", h.List)
	rg.PATCH("/notifications/:id/read", h.MarkRead)
	rg.PATCH("/notifications/read-all", h.MarkAllRead)
}

func (h *Handler) List(c *gin.Context) {
	tenantID := c.GetInt64("user_id")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	list, unread, err := h.service.ListForTenant(c.Request.Context(), tenantID, limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.CodeInternal, "Failed to list notifications")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"notifications": list, "unread": unread})
}

func (h *Handler) MarkRead(c *gin.Context) {
	tenantID := c.GetInt64("user_id")
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeValidation, "Invalid notification ID")
		return
	}

	if err := h.service.MarkAsRead(c.Request.Context(), id, tenantID); err != nil {
		response.Error(c, http.StatusInternalServerError, response.CodeInternal, "Failed to mark notification")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"read": true})
}

func (h *Handler) MarkAllRead(c *gin.Context) {
	tenantID := c.GetInt64("user_id")
	if err := h.service.MarkAllAsRead(c.Request.Context(), tenantID); err != nil {
		response.Error(c, http.StatusInternalServerError, response.CodeInternal, "Failed to mark notifications")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"read": true})
}
