package occupancy

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"pgnest/internal/domain"
)

// Ledger owns the room capacity/occupancy/status invariants. Every bed
// assignment and release in the system goes through it, and the occupancy
// increment is a single conditional UPDATE so two admins racing for the
// last bed cannot both win.
type Ledger struct {
	db *gorm.DB
}

func NewLedger(db *gorm.DB) *Ledger {
	return &Ledger{db: db}
}

// AssignBed reserves a bed for the tenant and persists both records.
func (l *Ledger) AssignBed(ctx context.Context, roomID int64, tenant *domain.Tenant) (*domain.Room, error) {
	var room *domain.Room
	err := l.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		room, err = l.AssignBedTx(tx, roomID, tenant)
		if err != nil {
			return err
		}
		return tx.Save(tenant).Error
	})
	if err != nil {
		return nil, err
	}
	return room, nil
}

// AssignBedTx runs the assignment inside an existing transaction. The
// room row is updated; the tenant struct gets its RoomID and BedNumber
// set and must be persisted by the caller before commit.
func (l *Ledger) AssignBedTx(tx *gorm.DB, roomID int64, tenant *domain.Tenant) (*domain.Room, error) {
	res := tx.Model(&domain.Room{}).
		Where("id = ? AND is_active = ? AND status <> ? AND current_occupancy < capacity",
			roomID, true, domain.RoomMaintenance).
		UpdateColumn("current_occupancy", gorm.Expr("current_occupancy + 1"))
	if res.Error != nil {
		return nil, res.Error
	}

	if res.RowsAffected == 0 {
		// Guard refused; load the row to say why.
		var room domain.Room
		if err := tx.First(&room, "id = ?", roomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrNotFound
			}
			return nil, err
		}
		switch {
		case !room.IsActive:
			return nil, ErrInactive
		case room.Status == domain.RoomMaintenance:
			return nil, ErrMaintenance
		default:
			return nil, ErrRoomFull
		}
	}

	var room domain.Room
	if err := tx.First(&room, "id = ?", roomID).Error; err != nil {
		return nil, err
	}

	bed, err := firstFreeBed(tx, &room)
	if err != nil {
		return nil, err
	}
	tenant.RoomID = &room.ID
	tenant.BedNumber = &bed

	if err := recomputeStatus(tx, &room); err != nil {
		return nil, err
	}

	return &room, nil
}

// ReleaseBed frees the tenant's bed and persists both records.
func (l *Ledger) ReleaseBed(ctx context.Context, tenant *domain.Tenant) (*domain.Room, error) {
	var room *domain.Room
	err := l.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		room, err = l.ReleaseBedTx(tx, tenant)
		if err != nil {
			return err
		}
		return tx.Save(tenant).Error
	})
	if err != nil {
		return nil, err
	}
	return room, nil
}

// ReleaseBedTx decrements occupancy (floor 0), recomputes status and
// clears the tenant's room reference. The caller persists the tenant.
func (l *Ledger) ReleaseBedTx(tx *gorm.DB, tenant *domain.Tenant) (*domain.Room, error) {
	if tenant.RoomID == nil {
		return nil, ErrValidation
	}
	roomID := *tenant.RoomID

	res := tx.Model(&domain.Room{}).
		Where("id = ? AND current_occupancy > 0", roomID).
		UpdateColumn("current_occupancy", gorm.Expr("current_occupancy - 1"))
	if res.Error != nil {
		return nil, res.Error
	}

	var room domain.Room
	if err := tx.First(&room, "id = ?", roomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	tenant.RoomID = nil
	tenant.BedNumber = nil

	if err := recomputeStatus(tx, &room); err != nil {
		return nil, err
	}

	return &room, nil
}

// SetMaintenance toggles the manual maintenance override. It never alters
// the occupancy count; while set, AssignBed fails regardless of capacity.
func (l *Ledger) SetMaintenance(ctx context.Context, roomID int64, on bool) (*domain.Room, error) {
	var room domain.Room
	err := l.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&room, "id = ?", roomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if on {
			room.Status = domain.RoomMaintenance
			return tx.Model(&domain.Room{}).Where("id = ?", room.ID).
				Update("status", domain.RoomMaintenance).Error
		}
		room.Status = domain.RoomAvailable
		return recomputeStatus(tx, &room)
	})
	if err != nil {
		return nil, err
	}
	return &room, nil
}

// recomputeStatus derives available/occupied from the counters. Callers
// clearing maintenance come through here as well.
func recomputeStatus(tx *gorm.DB, room *domain.Room) error {
	status := domain.RoomAvailable
	if room.CurrentOccupancy >= room.Capacity {
		status = domain.RoomOccupied
	}
	if room.Status == domain.RoomMaintenance {
		// Sticky until explicitly cleared.
		return nil
	}
	room.Status = status
	return tx.Model(&domain.Room{}).Where("id = ?", room.ID).Update("status", status).Error
}

// firstFreeBed picks the lowest bed slot in 1..capacity not held by an
// active tenant of the room.
func firstFreeBed(tx *gorm.DB, room *domain.Room) (int, error) {
	var taken []int
	if err := tx.Model(&domain.Tenant{}).
		Where("room_id = ? AND is_active = ? AND bed_number IS NOT NULL", room.ID, true).
		Pluck("bed_number", &taken).Error; err != nil {
		return 0, err
	}

	used := make(map[int]bool, len(taken))
	for _, b := range taken {
		used[b] = true
	}
	for bed := 1; bed <= room.Capacity; bed++ {
		if !used[bed] {
			return bed, nil
		}
	}
	// Occupancy guard passed, so a slot must exist; fall back to the last.
	return room.Capacity, nil
}

// ValidateRoom checks the administrative create/update input.
func ValidateRoom(room *domain.Room) error {
	if strings.TrimSpace(room.Building) == "" || strings.TrimSpace(room.RoomNumber) == "" {
		return ErrValidation
	}
	if room.Capacity <= 0 || room.Price.IsNegative() {
		return ErrValidation
	}
	return nil
}
