package occupancy

import "github.com/shopspring/decimal"

type CreateRoomRequest struct {
	Building    string          `json:"building" binding:"required"`
	Floor       int             `json:"floor"`
	RoomNumber  string          `json:"room_number" binding:"required"`
	SharingType string          `json:"sharing_type"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	Capacity    int             `json:"capacity" binding:"required,gt=0"`
}

type MaintenanceRequest struct {
	Maintenance bool `json:"maintenance"`
}
