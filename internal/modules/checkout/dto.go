package checkout

import (
	"time"

	"github.com/shopspring/decimal"

	"pgnest/internal/domain"
)

// SubmitNoticeRequest is the admin form, naming the tenant explicitly.
type SubmitNoticeRequest struct {
	TenantID        int64     `json:"tenant_id" binding:"required"`
	LastStayingDate time.Time `json:"last_staying_date" binding:"required"`
}

// ResidentNoticeRequest is the resident form; the tenant comes from the
// auth claims, never from the body.
type ResidentNoticeRequest struct {
	LastStayingDate time.Time `json:"last_staying_date" binding:"required"`
}

// NoticeResult reports the accepted notice plus the deposit-refund
// position it produces.
type NoticeResult struct {
	Tenant         *domain.Tenant  `json:"tenant"`
	DaysNotice     int             `json:"days_notice"`
	RefundEligible bool            `json:"refund_eligible"`
	RefundCredit   decimal.Decimal `json:"refund_credit"`
}

// ExitSurvey is the optional feedback captured at checkout. Ratings are
// 1..5.
type ExitSurvey struct {
	CleanlinessRating int    `json:"cleanliness_rating" binding:"min=1,max=5"`
	FoodRating        int    `json:"food_rating" binding:"min=1,max=5"`
	StaffRating       int    `json:"staff_rating" binding:"min=1,max=5"`
	Comments          string `json:"comments"`
}

type CheckoutRequest struct {
	TenantID int64       `json:"tenant_id" binding:"required"`
	Survey   *ExitSurvey `json:"survey,omitempty"`
}

type ReactivateRequest struct {
	TenantID      int64                `json:"tenant_id" binding:"required"`
	RoomID        int64                `json:"room_id" binding:"required"`
	CheckInDate   time.Time            `json:"check_in_date" binding:"required"`
	RentMonths    []string             `json:"rent_months"`
	RentAmount    decimal.Decimal      `json:"rent_amount"`
	DepositAmount decimal.Decimal      `json:"deposit_amount"`
	Method        domain.PaymentMethod `json:"method"`
	IssuePassword bool                 `json:"issue_password"`
}

// ReactivationResult mirrors ApprovalResult; OneTimePassword is empty
// unless a fresh credential was requested.
type ReactivationResult struct {
	Tenant          *domain.Tenant `json:"tenant"`
	OneTimePassword string         `json:"one_time_password,omitempty"`
}
