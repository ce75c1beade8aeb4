package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type RoomStatus string

const (
	RoomAvailable   RoomStatus = "available"
	RoomOccupied    RoomStatus = "occupied"
	RoomMaintenance RoomStatus = "maintenance"
)

type SharingType string

const (
	SharingSingle SharingType = "single"
	SharingDouble SharingType = "double"
	SharingTriple SharingType = "triple"
	SharingQuad   SharingType = "quad"
)

// Room is one rentable unit of the PG. Occupancy and status are mutated
// only through the occupancy ledger; rooms are deactivated, never deleted.
type Room struct {
	ID               int64           `json:"id"`
	Building         string          `json:"building" validate:"required"`
	Floor            int             `json:"floor"`
	RoomNumber       string          `json:"room_number" validate:"required"`
	SharingType      SharingType     `json:"sharing_type"`
	Price            decimal.Decimal `json:"price" gorm:"type:numeric(12,2)"`
	Capacity         int             `json:"capacity" validate:"required,gt=0"`
	CurrentOccupancy int             `json:"current_occupancy"`
	Status           RoomStatus      `json:"status"`
	IsActive         bool            `json:"is_active"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// HasVacancy reports whether a bed can be assigned. Maintenance is a hard
// gate independent of remaining capacity.
func (r *Room) HasVacancy() bool {
	return r.Status != RoomMaintenance && r.CurrentOccupancy < r.Capacity
}

// RoomSummary is the resolved form of a tenant's room reference, carrying
// only what the billing and display boundaries need.
type RoomSummary struct {
	ID         int64           `json:"id"`
	Building   string          `json:"building"`
	RoomNumber string          `json:"room_number"`
	Price      decimal.Decimal `json:"price"`
}
