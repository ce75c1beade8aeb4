package auth

import (
	"errors"
	"net/http"

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

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/auth/login", h.AdminLogin)
	rg.POST("/auth/resident-login", h.ResidentLogin)
}

func (h *Handler) AdminLogin(c *gin.Context) {
	var req AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeValidation, "Email and password are required")
		return
	}

	token, err := h.service.LoginAdmin(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "Invalid credentials")
			return
		}
		response.Error(c, http.StatusInternalServerError, response.CodeInternal, "Login failed")
		return
	}
	response.Success(c, http.StatusOK, LoginResponse{Token: token, Role: string(domain.RoleAdmin)})
}

func (h *Handler) ResidentLogin(c *gin.Context) {
	var req ResidentLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeValidation, "Tenant code and password are required")
		return
	}

	token, err := h.service.LoginResident(c.Request.Context(), req.TenantCode, req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "Invalid credentials")
			return
		}
		response.Error(c, http.StatusInternalServerError, response.CodeInternal, "Login failed")
		return
	}
	response.Success(c, http.StatusOK, LoginResponse{Token: token, Role: string(domain.RoleResident)})
}
