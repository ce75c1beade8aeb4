package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentPaid    PaymentStatus = "paid"
	PaymentDue     PaymentStatus = "due"
	PaymentOverdue PaymentStatus = "overdue"
	PaymentPartial PaymentStatus = "partial"
	PaymentPending PaymentStatus = "pending"
)

type PaymentMethod string

const (
	MethodCash         PaymentMethod = "cash"
	MethodUPI          PaymentMethod = "upi"
	MethodBankTransfer PaymentMethod = "bank_transfer"
	MethodCard         PaymentMethod = "card"
)

// Payment is a receipt against a tenant. Months holds the "January 2006"
// period labels the payment covers; a single payment may settle several
// months. Deposit payments carry no months and never count toward rent.
type Payment struct {
	ID               uuid.UUID       `json:"id" gorm:"type:uuid;primaryKey"`
	TenantID         int64           `json:"tenant_id" gorm:"index"`
	Amount           decimal.Decimal `json:"amount" gorm:"type:numeric(12,2)"`
	Months           MonthList       `json:"months" gorm:"serializer:json"`
	PaymentStatus    PaymentStatus   `json:"payment_status"`
	PaymentMethod    PaymentMethod   `json:"payment_method"`
	IsDepositPayment bool            `json:"is_deposit_payment"`
	PaymentDate      time.Time       `json:"payment_date"`
	Notes            string          `json:"notes,omitempty" gorm:"type:text"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// MonthList is an ordered set of billing period labels.
type MonthList []string

// Contains reports whether the payment covers the given period label.
func (m MonthList) Contains(label string) bool {
	for _, v := range m {
		if v == label {
			return true
		}
	}
	return false
}

// PeriodLabel formats t as the billing period label used across payments.
func PeriodLabel(t time.Time) string {
	return t.Format("January 2006")
}
