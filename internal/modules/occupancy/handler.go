package occupancy

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"pgnest/internal/domain"
	"pgnest/internal/pkg/response"
	"pgnest/internal/repository"
)

type Handler struct {
	ledger *Ledger
	rooms  *repository.RoomRepository
}

func NewHandler(ledger *Ledger, rooms *repository.RoomRepository) *Handler {
	return &Handler{ledger: ledger, rooms: rooms}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/rooms", h.ListRooms)
	rg.POST("/rooms", h.CreateRoom)
	rg.PATCH("/rooms/:id/maintenance", h.SetMaintenance)
	rg.DELETE("/rooms/:id", h.DeactivateRoom)
}

func (h *Handler) ListRooms(c *gin.Context) {
	onlyActive := c.Query("all") == ""
	rooms, err := h.rooms.List(c.Request.Context(), onlyActive)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.CodeInternal, "Failed to list rooms")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"rooms": rooms})
}

func (h *Handler) CreateRoom(c *gin.Context) {
	var req CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeValidation, "Invalid request body")
		return
	}

	room := &domain.Room{
		Building:    req.Building,
		Floor:       req.Floor,
		RoomNumber:  req.RoomNumber,
		SharingType: domain.SharingType(req.SharingType),
		Price:       req.Price,
		Capacity:    req.Capacity,
		Status:      domain.RoomAvailable,
		IsActive:    true,
	}
	if err := ValidateRoom(room); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeValidation, "Invalid room fields")
		return
	}

	if err := h.rooms.Create(c.Request.Context(), room); err != nil {
		response.Error(c, http.StatusInternalServerError, response.CodeInternal, "Failed to create room")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"room": room})
}

func (h *Handler) SetMaintenance(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeValidation, "Invalid room ID")
		return
	}

	var req MaintenanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeValidation, "Invalid request body")
		return
	}

	room, err := h.ledger.SetMaintenance(c.Request.Context(), id, req.Maintenance)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, response.CodeNotFound, "Room not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, response.CodeInternal, "Failed to update room")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"room": room})
}

func (h *Handler) DeactivateRoom(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeValidation, "Invalid room ID")
		return
	}

	if err := h.rooms.Deactivate(c.Request.Context(), id); err != nil {
		if repository.IsNotFound(err) {
			response.Error(c, http.StatusNotFound, response.CodeNotFound, "Room not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, response.CodeInternal, "Failed to deactivate room")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deactivated": true})
}
