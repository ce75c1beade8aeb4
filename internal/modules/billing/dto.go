package billing

import (
	"github.com/shopspring/decimal"

	"pgnest/internal/domain"
)

type RecordPaymentRequest struct {
	TenantID  int64                `json:"tenant_id" binding:"required"`
	Amount    decimal.Decimal      `json:"amount" binding:"required"`
	Months    []string             `json:"months"`
	Status    domain.PaymentStatus `json:"status"`
	Method    domain.PaymentMethod `json:"method"`
	IsDeposit bool                 `json:"is_deposit"`
	Notes     string               `json:"notes"`
}
