package domain

import "time"

type ComplaintStatus string

const (
	ComplaintOpen       ComplaintStatus = "open"
	ComplaintInProgress ComplaintStatus = "in_progress"
	ComplaintResolved   ComplaintStatus = "resolved"
)

type ComplaintCategory string

const (
	ComplaintMaintenance ComplaintCategory = "maintenance"
	ComplaintCleanliness ComplaintCategory = "cleanliness"
	ComplaintFood        ComplaintCategory = "food"
	ComplaintNoise       ComplaintCategory = "noise"
	ComplaintOther       ComplaintCategory = "other"
)

type Complaint struct {
	ID          int64             `json:"id"`
	TenantID    int64             `json:"tenant_id" gorm:"index"`
	Category    ComplaintCategory `json:"category"`
	Description string            `json:"description" gorm:"type:text" validate:"required"`
	Status      ComplaintStatus   `json:"status"`
	Resolution  string            `json:"resolution,omitempty" gorm:"type:text"`
	ResolvedAt  *time.Time        `json:"resolved_at,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}
