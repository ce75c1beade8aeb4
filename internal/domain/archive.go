package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ArchiveReason string

const (
	ArchiveCheckout ArchiveReason = "checkout"
	ArchiveEviction ArchiveReason = "eviction"
)

// TenantArchive is the frozen snapshot written once at checkout. It is
// never updated; reactivation creates a fresh active Tenant instead.
type TenantArchive struct {
	ID       uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	TenantID int64     `json:"tenant_id" gorm:"index"`

	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone,omitempty"`
	TenantCode string `json:"tenant_code"`

	RoomID      *int64          `json:"room_id,omitempty"`
	BedNumber   *int            `json:"bed_number,omitempty"`
	DepositFees decimal.Decimal `json:"deposit_fees" gorm:"type:numeric(12,2)"`
	// RefundCredit is the notice-length credit earned; DepositRefund is
	// the settled position owed back, deposit plus credit.
	RefundCredit  decimal.Decimal `json:"refund_credit" gorm:"type:numeric(12,2)"`
	DepositRefund decimal.Decimal `json:"deposit_refund" gorm:"type:numeric(12,2)"`

	MoveInDate   *time.Time    `json:"move_in_date,omitempty"`
	MoveOutDate  time.Time     `json:"move_out_date"`
	StayDuration int           `json:"stay_duration_days"`
	Reason       ArchiveReason `json:"reason"`
	ArchiveDate  time.Time     `json:"archive_date"`

	ExitSurveyCompleted bool   `json:"exit_survey_completed"`
	CleanlinessRating   *int   `json:"cleanliness_rating,omitempty"`
	FoodRating          *int   `json:"food_rating,omitempty"`
	StaffRating         *int   `json:"staff_rating,omitempty"`
	ExitComments        string `json:"exit_comments,omitempty" gorm:"type:text"`

	CreatedAt time.Time `json:"created_at"`
}
