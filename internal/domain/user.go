package domain

import "time"

type UserRole string

const (
	RoleAdmin    UserRole = "admin"
	RoleResident UserRole = "resident"
)

// AdminUser is a dashboard operator account. Resident logins ride on the
// Tenant record itself, keyed by tenant code.
type AdminUser struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email" gorm:"uniqueIndex" validate:"required,email"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
