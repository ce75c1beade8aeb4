package registration

import (
	"time"

	"github.com/shopspring/decimal"

	"pgnest/internal/domain"
)

type RegisterRequest struct {
	Name          string `json:"name" binding:"required"`
	Email         string `json:"email" binding:"required,email"`
	Phone         string `json:"phone"`
	GuardianName  string `json:"guardian_name"`
	GuardianPhone string `json:"guardian_phone"`
}

// PaymentDetails describes the initial rent receipt taken at approval.
type PaymentDetails struct {
	Amount decimal.Decimal      `json:"amount" binding:"required"`
	Months []string             `json:"months" binding:"required"`
	Status domain.PaymentStatus `json:"status"`
	Method domain.PaymentMethod `json:"method"`
}

type ApproveRequest struct {
	TenantID      int64           `json:"tenant_id" binding:"required"`
	RoomID        int64           `json:"room_id" binding:"required"`
	CheckInDate   time.Time       `json:"check_in_date" binding:"required"`
	Payment       PaymentDetails  `json:"payment" binding:"required"`
	DepositAmount decimal.Decimal `json:"deposit_amount"`
	KeyIssued     bool            `json:"key_issued"`
}

type RejectRequest struct {
	TenantID int64  `json:"tenant_id" binding:"required"`
	Reason   string `json:"reason" binding:"required"`
}

// ApprovalResult carries the minted credentials back to the caller. The
// plaintext password exists only here and in the welcome notification;
// the stored copy is hashed.
type ApprovalResult struct {
	Tenant          *domain.Tenant `json:"tenant"`
	TenantCode      string         `json:"tenant_code"`
	OneTimePassword string         `json:"one_time_password"`
}
