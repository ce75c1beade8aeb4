package billing

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"pgnest/internal/domain"
)

// Mock repositories
type MockTenantRepository struct {
	mock.Mock
}

func (m *MockTenantRepository) GetByID(ctx context.Context, id int64) (*domain.Tenant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tenant), args.Error(1)
}

func (m *MockTenantRepository) ListActive(ctx context.Context) ([]domain.Tenant, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Tenant), args.Error(1)
}

type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) Create(ctx context.Context, p *domain.Payment) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPaymentRepository) ListByTenant(ctx context.Context, tenantID int64) ([]domain.Payment, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) ListByTenants(ctx context.Context, tenantIDs []int64) (map[int64][]domain.Payment, error) {
	args := m.Called(ctx, tenantIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64][]domain.Payment), args.Error(1)
}

type MockRoomRepository struct {
	mock.Mock
}

func (m *MockRoomRepository) GetSummary(ctx context.Context, id int64) (*domain.RoomSummary, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RoomSummary), args.Error(1)
}

func assignedTenant(id, roomID int64) *domain.Tenant {
	bed := 1
	return &domain.Tenant{
		ID:        id,
		Name:      "Test Tenant",
		RoomID:    &roomID,
		BedNumber: &bed,
		IsActive:  true,
	}
}

func paidPayment(tenantID int64, amount int64, periods ...string) domain.Payment {
	return domain.Payment{
		ID:            uuid.New(),
		TenantID:      tenantID,
		Amount:        decimal.NewFromInt(amount),
		Months:        domain.MonthList(periods),
		PaymentStatus: domain.PaymentPaid,
		PaymentMethod: domain.MethodCash,
	}
}

func TestComputePeriodStatus_PartialReceiptsSettleMonth(t *testing.T) {
	period := "September 2026"
	tenant := assignedTenant(1, 10)
	room := &domain.RoomSummary{ID: 10, Price: decimal.NewFromInt(6000)}

	payments := []domain.Payment{
		paidPayment(1, 2000, period),
		paidPayment(1, 4000, period),
	}

	status := ComputePeriodStatus(tenant, payments, room, period)

	assert.Equal(t, DuePaid, status.Status)
	assert.True(t, status.DueAmount.IsZero())
	assert.True(t, status.PaidSoFar.Equal(decimal.NewFromInt(6000)))
}

func TestComputePeriodStatus_Underpaid(t *testing.T) {
	period := "September 2026"
	tenant := assignedTenant(1, 10)
	room := &domain.RoomSummary{ID: 10, Price: decimal.NewFromInt(6000)}

	payments := []domain.Payment{paidPayment(1, 3000, period)}

	status := ComputePeriodStatus(tenant, payments, room, period)

	assert.Equal(t, DueUnpaid, status.Status)
	assert.True(t, status.DueAmount.Equal(decimal.NewFromInt(3000)))
}

func TestComputePeriodStatus_DepositsNeverCount(t *testing.T) {
	period := "September 2026"
	tenant := assignedTenant(1, 10)
	room := &domain.RoomSummary{ID: 10, Price: decimal.NewFromInt(6000)}

	deposit := paidPayment(1, 6000, period)
	deposit.IsDepositPayment = true

	status := ComputePeriodStatus(tenant, []domain.Payment{deposit}, room, period)

	assert.Equal(t, DueUnpaid, status.Status)
	assert.True(t, status.PaidSoFar.IsZero())
	assert.True(t, status.DueAmount.Equal(decimal.NewFromInt(6000)))
}

func TestComputePeriodStatus_OnlyConfirmedPaymentsCount(t *testing.T) {
	period := "September 2026"
	tenant := assignedTenant(1, 10)
	room := &domain.RoomSummary{ID: 10, Price: decimal.NewFromInt(6000)}

	pending := paidPayment(1, 6000, period)
	pending.PaymentStatus = domain.PaymentPending
	due := paidPayment(1, 6000, period)
	due.PaymentStatus = domain.PaymentDue

	status := ComputePeriodStatus(tenant, []domain.Payment{pending, due}, room, period)

	assert.Equal(t, DueUnpaid, status.Status)
	assert.True(t, status.PaidSoFar.IsZero())
}

func TestComputePeriodStatus_OtherPeriodsIgnored(t *testing.T) {
	tenant := assignedTenant(1, 10)
	room := &domain.RoomSummary{ID: 10, Price: decimal.NewFromInt(6000)}

	payments := []domain.Payment{paidPayment(1, 6000, "August 2026")}

	status := ComputePeriodStatus(tenant, payments, room, "September 2026")

	assert.Equal(t, DueUnpaid, status.Status)
	assert.True(t, status.DueAmount.Equal(decimal.NewFromInt(6000)))
}

func TestComputePeriodStatus_MultiMonthReceipt(t *testing.T) {
	tenant := assignedTenant(1, 10)
	room := &domain.RoomSummary{ID: 10, Price: decimal.NewFromInt(6000)}

	// One receipt covering two periods counts in full for each.
	payments := []domain.Payment{paidPayment(1, 12000, "August 2026", "September 2026")}

	status := ComputePeriodStatus(tenant, payments, room, "September 2026")

	assert.Equal(t, DuePaid, status.Status)
}

func TestComputePeriodStatus_UnassignedTenantNotApplicable(t *testing.T) {
	tenant := &domain.Tenant{ID: 1, IsActive: true}

	status := ComputePeriodStatus(tenant, nil, nil, "September 2026")

	assert.Equal(t, DueNotApplicable, status.Status)
	assert.True(t, status.DueAmount.IsZero())
}

func TestComputePeriodStatus_ZeroPriceNotApplicable(t *testing.T) {
	tenant := assignedTenant(1, 10)
	room := &domain.RoomSummary{ID: 10, Price: decimal.Zero}

	status := ComputePeriodStatus(tenant, nil, room, "September 2026")

	assert.Equal(t, DueNotApplicable, status.Status)
}

func TestRosterDues_SumsOutstanding(t *testing.T) {
	tenantRepo := new(MockTenantRepository)
	paymentRepo := new(MockPaymentRepository)
	roomRepo := new(MockRoomRepository)
	service := NewService(tenantRepo, paymentRepo, roomRepo)

	period := domain.PeriodLabel(time.Now())
	t1 := assignedTenant(1, 10)
	t2 := assignedTenant(2, 10)
	unassigned := &domain.Tenant{ID: 3, IsActive: true}

	tenantRepo.On("ListActive", mock.Anything).Return([]domain.Tenant{*t1, *t2, *unassigned}, nil)
	paymentRepo.On("ListByTenants", mock.Anything, []int64{1, 2, 3}).Return(map[int64][]domain.Payment{
		1: {paidPayment(1, 6000, period)},
		2: {paidPayment(2, 2500, period)},
	}, nil)
	roomRepo.On("GetSummary", mock.Anything, int64(10)).
		Return(&domain.RoomSummary{ID: 10, RoomNumber: "A-101", Building: "A", Price: decimal.NewFromInt(6000)}, nil).
		Once() // the room cache must dedupe the lookup

	dues, err := service.RosterDues(context.Background())

	assert.NoError(t, err)
	assert.Len(t, dues.Tenants, 3)
	assert.Equal(t, DuePaid, dues.Tenants[0].Status)
	assert.Equal(t, DueUnpaid, dues.Tenants[1].Status)
	assert.Equal(t, DueNotApplicable, dues.Tenants[2].Status)
	assert.True(t, dues.TotalOutstanding.Equal(decimal.NewFromInt(3500)))
	roomRepo.AssertExpectations(t)
}

func TestRecordPayment_RequiresMonthsForRent(t *testing.T) {
	service := NewService(new(MockTenantRepository), new(MockPaymentRepository), new(MockRoomRepository))

	_, err := service.RecordPayment(context.Background(), RecordPaymentRequest{
		TenantID: 1,
		Amount:   decimal.NewFromInt(5000),
	})

	assert.ErrorIs(t, err, ErrValidation)
}

func TestRecordPayment_DepositDropsMonths(t *testing.T) {
	tenantRepo := new(MockTenantRepository)
	paymentRepo := new(MockPaymentRepository)
	service := NewService(tenantRepo, paymentRepo, new(MockRoomRepository))

	tenantRepo.On("GetByID", mock.Anything, int64(1)).Return(assignedTenant(1, 10), nil)
	paymentRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	p, err := service.RecordPayment(context.Background(), RecordPaymentRequest{
		TenantID:  1,
		Amount:    decimal.NewFromInt(5000),
		Months:    []string{"September 2026"},
		IsDeposit: true,
	})

	assert.NoError(t, err)
	assert.True(t, p.IsDepositPayment)
	assert.Empty(t, p.Months)
	assert.Equal(t, domain.PaymentPaid, p.PaymentStatus)
}

func TestComputeCurrentPeriodStatus_UnknownTenant(t *testing.T) {
	tenantRepo := new(MockTenantRepository)
	service := NewService(tenantRepo, new(MockPaymentRepository), new(MockRoomRepository))

	tenantRepo.On("GetByID", mock.Anything, int64(42)).Return(nil, gorm.ErrRecordNotFound)

	_, err := service.ComputeCurrentPeriodStatus(context.Background(), 42)

	assert.ErrorIs(t, err, ErrNotFound)
}
