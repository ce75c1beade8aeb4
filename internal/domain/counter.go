package domain

import "time"

// Counter is a named monotonic sequence. The tenant-code sequence lives
// here so that concurrent approvals on separate instances cannot collide.
type Counter struct {
	Name      string    `json:"name" gorm:"primaryKey"`
	Value     int64     `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

const CounterTenantCode = "tenant_code"
