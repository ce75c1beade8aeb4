package billing

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"pgnest/internal/domain"
)

type DueStatus string

const (
	DuePaid          DueStatus = "paid"
	DueUnpaid        DueStatus = "unpaid"
	DueNotApplicable DueStatus = "n/a"
)

// PeriodStatus is the reconciled rent position of one tenant for one
// billing period.
type PeriodStatus struct {
	Period    string          `json:"period"`
	Status    DueStatus       `json:"status"`
	DueAmount decimal.Decimal `json:"due_amount"`
	PaidSoFar decimal.Decimal `json:"paid_so_far"`
}

type Service struct {
	tenants  TenantRepository
	payments PaymentRepository
	rooms    RoomRepository
}

func NewService(tenants TenantRepository, payments PaymentRepository, rooms RoomRepository) *Service {
	return &Service{tenants: tenants, payments: payments, rooms: rooms}
}

// ComputePeriodStatus reconciles a tenant's payments against the room
// price for one period. Only confirmed (paid) non-deposit payments that
// list the period reduce the due; a month may be settled by several
// partial receipts. Dues are per-period: unpaid amounts from earlier
// months are deliberately not rolled into this figure.
func ComputePeriodStatus(tenant *domain.Tenant, payments []domain.Payment, room *domain.RoomSummary, period string) PeriodStatus {
	out := PeriodStatus{
		Period:    period,
		Status:    DueNotApplicable,
		DueAmount: decimal.Zero,
		PaidSoFar: decimal.Zero,
	}

	if tenant == nil || !tenant.Assigned() || room == nil || !room.Price.IsPositive() {
		return out
	}

	paid := decimal.Zero
	for _, p := range payments {
		if p.TenantID != tenant.ID || p.IsDepositPayment {
			continue
		}
		if !p.Months.Contains(period) {
			continue
		}
		if p.PaymentStatus != domain.PaymentPaid {
			continue
		}
		paid = paid.Add(p.Amount)
	}

	out.PaidSoFar = paid
	if paid.GreaterThanOrEqual(room.Price) {
		out.Status = DuePaid
		return out
	}
	out.Status = DueUnpaid
	out.DueAmount = room.Price.Sub(paid)
	return out
}

// ComputeCurrentPeriodStatus evaluates the current calendar month.
func (s *Service) ComputeCurrentPeriodStatus(ctx context.Context, tenantID int64) (*PeriodStatus, error) {
	tenant, err := s.tenants.GetByID(ctx, tenantID)
	if err != nil {
		return nil, ErrNotFound
	}

	payments, err := s.payments.ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	var room *domain.RoomSummary
	if tenant.Assigned() {
		room, err = s.rooms.GetSummary(ctx, *tenant.RoomID)
		if err != nil {
			return nil, err
		}
	}

	status := ComputePeriodStatus(tenant, payments, room, domain.PeriodLabel(time.Now()))
	return &status, nil
}

// TenantDue pairs a roster entry with its current-period position.
type TenantDue struct {
	TenantID   int64     `json:"tenant_id"`
	TenantCode string    `json:"tenant_code"`
	Name       string    `json:"name"`
	RoomNumber string    `json:"room_number,omitempty"`
	Building   string    `json:"building,omitempty"`
	PeriodStatus
}

// RosterDues is the admin dues sweep across all active tenants. The
// aggregate sums current-period dues only; historical arrears are out of
// scope here and tracked on the individual payment rows.
type RosterDues struct {
	Period           string          `json:"period"`
	Tenants          []TenantDue     `json:"tenants"`
	TotalOutstanding decimal.Decimal `json:"total_outstanding"`
}

func (s *Service) RosterDues(ctx context.Context) (*RosterDues, error) {
	tenants, err := s.tenants.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(tenants))
	for _, t := range tenants {
		ids = append(ids, t.ID)
	}
	paymentsByTenant, err := s.payments.ListByTenants(ctx, ids)
	if err != nil {
		return nil, err
	}

	period := domain.PeriodLabel(time.Now())
	out := &RosterDues{
		Period:           period,
		Tenants:          make([]TenantDue, 0, len(tenants)),
		TotalOutstanding: decimal.Zero,
	}

	roomCache := make(map[int64]*domain.RoomSummary)
	for i := range tenants {
		t := &tenants[i]

		var room *domain.RoomSummary
		if t.Assigned() {
			room = roomCache[*t.RoomID]
			if room == nil {
				room, err = s.rooms.GetSummary(ctx, *t.RoomID)
				if err != nil {
					return nil, err
				}
				roomCache[*t.RoomID] = room
			}
		}

		status := ComputePeriodStatus(t, paymentsByTenant[t.ID], room, period)
		due := TenantDue{
			TenantID:     t.ID,
			TenantCode:   t.TenantCode,
			Name:         t.Name,
			PeriodStatus: status,
		}
		if room != nil {
			due.RoomNumber = room.RoomNumber
			due.Building = room.Building
		}

		out.Tenants = append(out.Tenants, due)
		out.TotalOutstanding = out.TotalOutstanding.Add(status.DueAmount)
	}

	return out, nil
}

// RecordPayment stores an admin-entered receipt. Non-deposit payments
// must name at least one period; deposits never carry periods.
func (s *Service) RecordPayment(ctx context.Context, req RecordPaymentRequest) (*domain.Payment, error) {
	if !req.Amount.IsPositive() {
		return nil, ErrValidation
	}
	if !req.IsDeposit && len(req.Months) == 0 {
		return nil, ErrValidation
	}

	if _, err := s.tenants.GetByID(ctx, req.TenantID); err != nil {
		return nil, ErrNotFound
	}

	months := domain.MonthList(req.Months)
	if req.IsDeposit {
		months = nil
	}

	p := &domain.Payment{
		ID:               uuid.New(),
		TenantID:         req.TenantID,
		Amount:           req.Amount,
		Months:           months,
		PaymentStatus:    req.Status,
		PaymentMethod:    req.Method,
		IsDepositPayment: req.IsDeposit,
		PaymentDate:      time.Now(),
		Notes:            req.Notes,
	}
	if p.PaymentStatus == "" {
		p.PaymentStatus = domain.PaymentPaid
	}

	if err := s.payments.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) ListTenantPayments(ctx context.Context, tenantID int64) ([]domain.Payment, error) {
	if _, err := s.tenants.GetByID(ctx, tenantID); err != nil {
		return nil, ErrNotFound
	}
	return s.payments.ListByTenant(ctx, tenantID)
}
