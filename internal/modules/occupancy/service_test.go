package occupancy

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"pgnest/internal/database"
	"pgnest/internal/domain"
)

func setupLedger(t *testing.T) (*gorm.DB, *Ledger) {
	db, err := database.Connect(":memory:")
	require.NoError(t, err, "Failed to connect to test database")
	require.NoError(t, database.Migrate(db))
	return db, NewLedger(db)
}

func createRoom(t *testing.T, db *gorm.DB, capacity int) *domain.Room {
	room := &domain.Room{
		Building:    "A",
		Floor:       1,
		RoomNumber:  "A-101",
		SharingType: domain.SharingDouble,
		Price:       decimal.NewFromInt(6000),
		Capacity:    capacity,
		Status:      domain.RoomAvailable,
		IsActive:    true,
	}
	require.NoError(t, db.Create(room).Error)
	return room
}

func createActiveTenant(t *testing.T, db *gorm.DB, name string) *domain.Tenant {
	tenant := &domain.Tenant{
		Name:               name,
		Email:              name + "@test.com",
		RegistrationStatus: domain.RegistrationApproved,
		IsActive:           true,
	}
	require.NoError(t, db.Create(tenant).Error)
	return tenant
}

func TestAssignBed_TakesLowestFreeSlot(t *testing.T) {
	db, ledger := setupLedger(t)
	room := createRoom(t, db, 2)
	ctx := context.Background()

	first := createActiveTenant(t, db, "first")
	_, err := ledger.AssignBed(ctx, room.ID, first)
	require.NoError(t, err)
	require.NotNil(t, first.BedNumber)
	assert.Equal(t, 1, *first.BedNumber)

	second := createActiveTenant(t, db, "second")
	updated, err := ledger.AssignBed(ctx, room.ID, second)
	require.NoError(t, err)
	assert.Equal(t, 2, *second.BedNumber)
	assert.Equal(t, 2, updated.CurrentOccupancy)
	assert.Equal(t, domain.RoomOccupied, updated.Status)
}

func TestAssignBed_FullRoomRejected(t *testing.T) {
	db, ledger := setupLedger(t)
	room := createRoom(t, db, 1)
	ctx := context.Background()

	_, err := ledger.AssignBed(ctx, room.ID, createActiveTenant(t, db, "first"))
	require.NoError(t, err)

	late := createActiveTenant(t, db, "late")
	_, err = ledger.AssignBed(ctx, room.ID, late)
	assert.ErrorIs(t, err, ErrRoomFull)
	assert.Nil(t, late.RoomID)

	// The failed attempt must not leak into the counter.
	var fresh domain.Room
	require.NoError(t, db.First(&fresh, "id = ?", room.ID).Error)
	assert.Equal(t, 1, fresh.CurrentOccupancy)
}

func TestAssignBed_MaintenanceBlocksRegardlessOfCapacity(t *testing.T) {
	db, ledger := setupLedger(t)
	room := createRoom(t, db, 2)
	ctx := context.Background()

	_, err := ledger.SetMaintenance(ctx, room.ID, true)
	require.NoError(t, err)

	_, err = ledger.AssignBed(ctx, room.ID, createActiveTenant(t, db, "blocked"))
	assert.ErrorIs(t, err, ErrMaintenance)
}

func TestAssignBed_InactiveRoomRejected(t *testing.T) {
	db, ledger := setupLedger(t)
	room := createRoom(t, db, 2)
	require.NoError(t, db.Model(room).Update("is_active", false).Error)

	_, err := ledger.AssignBed(context.Background(), room.ID, createActiveTenant(t, db, "x"))
	assert.ErrorIs(t, err, ErrInactive)
}

func TestAssignBed_UnknownRoom(t *testing.T) {
	db, ledger := setupLedger(t)

	_, err := ledger.AssignBed(context.Background(), 999, createActiveTenant(t, db, "x"))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReleaseBed_FreesSlotForReuse(t *testing.T) {
	db, ledger := setupLedger(t)
	room := createRoom(t, db, 2)
	ctx := context.Background()

	first := createActiveTenant(t, db, "first")
	second := createActiveTenant(t, db, "second")
	_, err := ledger.AssignBed(ctx, room.ID, first)
	require.NoError(t, err)
	_, err = ledger.AssignBed(ctx, room.ID, second)
	require.NoError(t, err)

	updated, err := ledger.ReleaseBed(ctx, first)
	require.NoError(t, err)
	assert.Equal(t, 1, updated.CurrentOccupancy)
	assert.Equal(t, domain.RoomAvailable, updated.Status)
	assert.Nil(t, first.RoomID)
	assert.Nil(t, first.BedNumber)

	// Bed 1 is free again and goes to the next arrival.
	third := createActiveTenant(t, db, "third")
	_, err = ledger.AssignBed(ctx, room.ID, third)
	require.NoError(t, err)
	assert.Equal(t, 1, *third.BedNumber)
}

func TestReleaseBed_UnassignedTenant(t *testing.T) {
	db, ledger := setupLedger(t)

	_, err := ledger.ReleaseBed(context.Background(), createActiveTenant(t, db, "loose"))
	assert.ErrorIs(t, err, ErrValidation)
}

func TestSetMaintenance_ClearRestoresDerivedStatus(t *testing.T) {
	db, ledger := setupLedger(t)
	room := createRoom(t, db, 1)
	ctx := context.Background()

	_, err := ledger.AssignBed(ctx, room.ID, createActiveTenant(t, db, "solo"))
	require.NoError(t, err)

	flagged, err := ledger.SetMaintenance(ctx, room.ID, true)
	require.NoError(t, err)
	assert.Equal(t, domain.RoomMaintenance, flagged.Status)
	assert.Equal(t, 1, flagged.CurrentOccupancy)

	cleared, err := ledger.SetMaintenance(ctx, room.ID, false)
	require.NoError(t, err)
	assert.Equal(t, domain.RoomOccupied, cleared.Status)
}

func TestValidateRoom(t *testing.T) {
	ok := &domain.Room{Building: "A", RoomNumber: "A-101", Capacity: 2, Price: decimal.NewFromInt(100)}
	assert.NoError(t, ValidateRoom(ok))

	assert.ErrorIs(t, ValidateRoom(&domain.Room{RoomNumber: "A-101", Capacity: 2}), ErrValidation)
	assert.ErrorIs(t, ValidateRoom(&domain.Room{Building: "A", RoomNumber: "A-101", Capacity: 0}), ErrValidation)
	assert.ErrorIs(t, ValidateRoom(&domain.Room{Building: "A", RoomNumber: "A-101", Capacity: 2,
		Price: decimal.NewFromInt(-1)}), ErrValidation)
}
