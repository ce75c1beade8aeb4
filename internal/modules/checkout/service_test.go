package checkout

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"pgnest/internal/database"
	"pgnest/internal/domain"
	"pgnest/internal/modules/credentials"
	"pgnest/internal/modules/occupancy"
	"pgnest/internal/repository"
)

type recordingNotifier struct {
	notices     int
	withdrawals int
	checkouts   int
	welcomes    int
}

func (r *recordingNotifier) NotifyNoticeSubmitted(ctx context.Context, tenant *domain.Tenant, refundEligible bool) error {
	r.notices++
	return nil
}

func (r *recordingNotifier) NotifyNoticeWithdrawn(ctx context.Context, tenant *domain.Tenant) error {
	r.withdrawals++
	return nil
}

func (r *recordingNotifier) NotifyCheckout(ctx context.Context, tenant *domain.Tenant) error {
	r.checkouts++
	return nil
}

func (r *recordingNotifier) NotifyWelcome(ctx context.Context, tenant *domain.Tenant, oneTimePassword string) error {
	r.welcomes++
	return nil
}

func setupService(t *testing.T) (*gorm.DB, *Service, *recordingNotifier) {
	db, err := database.Connect(":memory:")
	require.NoError(t, err, "Failed to connect to test database")
	require.NoError(t, database.Migrate(db))

	ledger := occupancy.NewLedger(db)
	issuer := credentials.NewIssuer(repository.NewCounterRepository(db))
	notifs := &recordingNotifier{}
	return db, NewService(db, ledger, issuer, notifs), notifs
}

func createRoom(t *testing.T, db *gorm.DB, capacity int) *domain.Room {
	room := &domain.Room{
		Building:   "A",
		RoomNumber: "A-101",
		Price:      decimal.NewFromInt(6000),
		Capacity:   capacity,
		Status:     domain.RoomAvailable,
		IsActive:   true,
	}
	require.NoError(t, db.Create(room).Error)
	return room
}

// createResident sets up an active tenant occupying a bed in the room.
func createResident(t *testing.T, db *gorm.DB, room *domain.Room, code string) *domain.Tenant {
	moveIn := time.Now().AddDate(0, -2, 0)
	tenant := &domain.Tenant{
		Name:               "Resident " + code,
		Email:              code + "@test.com",
		RegistrationStatus: domain.RegistrationApproved,
		TenantCode:         code,
		IsActive:           true,
		MoveInDate:         &moveIn,
		DepositFees:        decimal.NewFromInt(5000),
	}
	require.NoError(t, db.Create(tenant).Error)

	_, err := occupancy.NewLedger(db).AssignBed(context.Background(), room.ID, tenant)
	require.NoError(t, err)
	return tenant
}

func TestSubmitNotice_FifteenDaysIsTooShort(t *testing.T) {
	db, service, _ := setupService(t)
	tenant := createResident(t, db, createRoom(t, db, 2), "PG00001")

	_, err := service.SubmitNotice(context.Background(), tenant.ID, time.Now().AddDate(0, 0, 15))
	assert.ErrorIs(t, err, ErrNoticeTooShort)
}

func TestSubmitNotice_SixteenDaysAcceptedWithRefund(t *testing.T) {
	db, service, notifs := setupService(t)
	tenant := createResident(t, db, createRoom(t, db, 2), "PG00001")

	result, err := service.SubmitNotice(context.Background(), tenant.ID, time.Now().AddDate(0, 0, 16))
	require.NoError(t, err)

	assert.Equal(t, 16, result.DaysNotice)
	assert.True(t, result.RefundEligible)
	assert.True(t, result.RefundCredit.Equal(RefundCredit))
	assert.True(t, result.Tenant.IsOnNoticePeriod)
	assert.NotNil(t, result.Tenant.LastStayingDate)
	assert.Equal(t, 1, notifs.notices)

	// The refund position is durable, not just reported.
	var stored domain.Tenant
	require.NoError(t, db.First(&stored, "id = ?", tenant.ID).Error)
	assert.True(t, stored.RefundCredit.Equal(RefundCredit))
	assert.NotNil(t, stored.NoticeDate)

	// The bed is held through the notice period.
	var room domain.Room
	require.NoError(t, db.First(&room, "id = ?", *result.Tenant.RoomID).Error)
	assert.Equal(t, 1, room.CurrentOccupancy)
}

func TestSubmitNotice_AlreadyOnNotice(t *testing.T) {
	db, service, _ := setupService(t)
	tenant := createResident(t, db, createRoom(t, db, 2), "PG00001")
	last := time.Now().AddDate(0, 0, 30)

	_, err := service.SubmitNotice(context.Background(), tenant.ID, last)
	require.NoError(t, err)

	_, err = service.SubmitNotice(context.Background(), tenant.ID, last)
	assert.ErrorIs(t, err, ErrAlreadyOnNotice)
}

func TestSubmitNotice_InactiveTenant(t *testing.T) {
	db, service, _ := setupService(t)
	tenant := &domain.Tenant{Name: "Gone", Email: "gone@test.com", TenantCode: "PG00009"}
	require.NoError(t, db.Create(tenant).Error)

	_, err := service.SubmitNotice(context.Background(), tenant.ID, time.Now().AddDate(0, 0, 30))
	assert.ErrorIs(t, err, ErrNotActive)
}

func TestWithdrawNotice_ClearsNoticeState(t *testing.T) {
	db, service, notifs := setupService(t)
	tenant := createResident(t, db, createRoom(t, db, 2), "PG00001")

	_, err := service.SubmitNotice(context.Background(), tenant.ID, time.Now().AddDate(0, 0, 30))
	require.NoError(t, err)

	withdrawn, err := service.WithdrawNotice(context.Background(), tenant.ID)
	require.NoError(t, err)

	assert.False(t, withdrawn.IsOnNoticePeriod)
	assert.Nil(t, withdrawn.LastStayingDate)
	assert.Nil(t, withdrawn.NoticeDate)
	assert.True(t, withdrawn.RefundCredit.IsZero())
	assert.True(t, withdrawn.IsActive)
	assert.NotNil(t, withdrawn.RoomID)
	assert.Equal(t, 1, notifs.withdrawals)
}

func TestWithdrawNotice_NotOnNotice(t *testing.T) {
	db, service, _ := setupService(t)
	tenant := createResident(t, db, createRoom(t, db, 2), "PG00001")

	_, err := service.WithdrawNotice(context.Background(), tenant.ID)
	assert.ErrorIs(t, err, ErrNotOnNotice)
}

func TestCheckout_WithoutNoticeConflicts(t *testing.T) {
	db, service, _ := setupService(t)
	tenant := createResident(t, db, createRoom(t, db, 2), "PG00001")

	_, err := service.Checkout(context.Background(), CheckoutRequest{TenantID: tenant.ID})
	assert.ErrorIs(t, err, ErrNotOnNotice)

	// Nothing moved: tenant still active and housed.
	var fresh domain.Tenant
	require.NoError(t, db.First(&fresh, "id = ?", tenant.ID).Error)
	assert.True(t, fresh.IsActive)
	assert.NotNil(t, fresh.RoomID)
}

func TestCheckout_ReleasesBedAndArchives(t *testing.T) {
	db, service, notifs := setupService(t)
	room := createRoom(t, db, 2)
	tenant := createResident(t, db, room, "PG00001")

	_, err := service.SubmitNotice(context.Background(), tenant.ID, time.Now().AddDate(0, 0, 20))
	require.NoError(t, err)

	archive, err := service.Checkout(context.Background(), CheckoutRequest{
		TenantID: tenant.ID,
		Survey: &ExitSurvey{
			CleanlinessRating: 4,
			FoodRating:        3,
			StaffRating:       5,
			Comments:          "good stay",
		},
	})
	require.NoError(t, err)

	assert.Equal(t, tenant.ID, archive.TenantID)
	assert.Equal(t, "PG00001", archive.TenantCode)
	require.NotNil(t, archive.RoomID)
	assert.Equal(t, room.ID, *archive.RoomID)
	assert.True(t, archive.StayDuration > 0)
	assert.Equal(t, domain.ArchiveCheckout, archive.Reason)

	// 20 days of notice earned the credit; the archived settlement is
	// deposit plus credit.
	assert.True(t, archive.RefundCredit.Equal(RefundCredit))
	assert.True(t, archive.DepositRefund.Equal(decimal.NewFromInt(5000).Add(RefundCredit)))

	assert.True(t, archive.ExitSurveyCompleted)
	require.NotNil(t, archive.FoodRating)
	assert.Equal(t, 3, *archive.FoodRating)

	var fresh domain.Tenant
	require.NoError(t, db.First(&fresh, "id = ?", tenant.ID).Error)
	assert.False(t, fresh.IsActive)
	assert.False(t, fresh.IsOnNoticePeriod)
	assert.Nil(t, fresh.RoomID)
	assert.NotNil(t, fresh.MoveOutDate)
	assert.Equal(t, "PG00001", fresh.TenantCode)

	var freshRoom domain.Room
	require.NoError(t, db.First(&freshRoom, "id = ?", room.ID).Error)
	assert.Equal(t, 0, freshRoom.CurrentOccupancy)
	assert.Equal(t, domain.RoomAvailable, freshRoom.Status)

	assert.Equal(t, 1, notifs.checkouts)
}

func TestReactivate_RoundTripRestoresOccupancy(t *testing.T) {
	db, service, notifs := setupService(t)
	room := createRoom(t, db, 2)
	tenant := createResident(t, db, room, "PG00001")

	_, err := service.SubmitNotice(context.Background(), tenant.ID, time.Now().AddDate(0, 0, 20))
	require.NoError(t, err)
	_, err = service.Checkout(context.Background(), CheckoutRequest{TenantID: tenant.ID})
	require.NoError(t, err)

	result, err := service.Reactivate(context.Background(), ReactivateRequest{
		TenantID:      tenant.ID,
		RoomID:        room.ID,
		CheckInDate:   time.Now(),
		RentMonths:    []string{domain.PeriodLabel(time.Now())},
		RentAmount:    decimal.NewFromInt(6000),
		Method:        domain.MethodCash,
		IssuePassword: true,
	})
	require.NoError(t, err)

	back := result.Tenant
	assert.True(t, back.IsActive)
	assert.Equal(t, "PG00001", back.TenantCode)
	require.NotNil(t, back.RoomID)
	assert.Equal(t, room.ID, *back.RoomID)
	assert.Nil(t, back.MoveOutDate)
	assert.NotEmpty(t, result.OneTimePassword)

	var freshRoom domain.Room
	require.NoError(t, db.First(&freshRoom, "id = ?", room.ID).Error)
	assert.Equal(t, 1, freshRoom.CurrentOccupancy)

	var count int64
	require.NoError(t, db.Model(&domain.Payment{}).Where("tenant_id = ?", tenant.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	assert.Equal(t, 1, notifs.welcomes)
}

func TestReactivate_ActiveTenantRejected(t *testing.T) {
	db, service, _ := setupService(t)
	room := createRoom(t, db, 2)
	tenant := createResident(t, db, room, "PG00001")

	_, err := service.Reactivate(context.Background(), ReactivateRequest{
		TenantID:    tenant.ID,
		RoomID:      room.ID,
		CheckInDate: time.Now(),
	})
	assert.ErrorIs(t, err, ErrNotReactivable)
}

func TestReactivate_NeverApprovedRejected(t *testing.T) {
	db, service, _ := setupService(t)
	room := createRoom(t, db, 2)

	// Rejected applicant: inactive but never held a tenant code.
	tenant := &domain.Tenant{
		Name:               "Rejected",
		Email:              "rejected@test.com",
		RegistrationStatus: domain.RegistrationRejected,
	}
	require.NoError(t, db.Create(tenant).Error)

	_, err := service.Reactivate(context.Background(), ReactivateRequest{
		TenantID:    tenant.ID,
		RoomID:      room.ID,
		CheckInDate: time.Now(),
	})
	assert.ErrorIs(t, err, ErrNotReactivable)
}
