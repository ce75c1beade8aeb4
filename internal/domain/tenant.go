package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type RegistrationStatus string

const (
	RegistrationPending  RegistrationStatus = "pending"
	RegistrationApproved RegistrationStatus = "approved"
	RegistrationRejected RegistrationStatus = "rejected"
)

// Tenant covers the whole lifecycle: pending applicant, active resident,
// resident on notice, and checked-out former resident. The row is soft
// deleted at most; history lives in TenantArchive.
type Tenant struct {
	ID                 int64              `json:"id"`
	Name               string             `json:"name" validate:"required"`
	Email              string             `json:"email" validate:"required,email"`
	Phone              string             `json:"phone,omitempty"`
	GuardianName       string             `json:"guardian_name,omitempty"`
	GuardianPhone      string             `json:"guardian_phone,omitempty"`
	RegistrationStatus RegistrationStatus `json:"registration_status"`
	// TenantCode is empty until approval; uniqueness comes from the
	// counter, so the index stays non-unique to admit many pending rows.
	TenantCode         string             `json:"tenant_code,omitempty" gorm:"index"`
	PasswordHash       string             `json:"-"`

	RoomID    *int64 `json:"room_id,omitempty"`
	BedNumber *int   `json:"bed_number,omitempty"`

	IsActive         bool       `json:"is_active"`
	IsOnNoticePeriod bool       `json:"is_on_notice_period"`
	NoticeDate       *time.Time `json:"notice_date,omitempty"`
	LastStayingDate  *time.Time `json:"last_staying_date,omitempty"`
	MoveInDate       *time.Time `json:"move_in_date,omitempty"`
	MoveOutDate      *time.Time `json:"move_out_date,omitempty"`

	DepositFees decimal.Decimal `json:"deposit_fees" gorm:"type:numeric(12,2)"`
	// RefundCredit is the notice-length credit earned against the deposit.
	// Set when notice is accepted, cleared on withdrawal, settled into the
	// archive at checkout.
	RefundCredit decimal.Decimal `json:"refund_credit" gorm:"type:numeric(12,2)"`
	KeyIssued    bool            `json:"key_issued"`

	ApprovalDate    *time.Time `json:"approval_date,omitempty"`
	RejectionReason string     `json:"rejection_reason,omitempty"`
	RejectionDate   *time.Time `json:"rejection_date,omitempty"`

	IsDeleted bool      `json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Assigned reports whether the tenant currently holds a bed.
func (t *Tenant) Assigned() bool {
	return t.RoomID != nil
}
