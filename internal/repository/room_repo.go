package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"pgnest/internal/domain"
)

type RoomRepository struct {
	db *gorm.DB
}

func NewRoomRepository(db *gorm.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

func (r *RoomRepository) DB() *gorm.DB {
	return r.db
}

func (r *RoomRepository) Create(ctx context.Context, room *domain.Room) error {
	return r.db.WithContext(ctx).Create(room).Error
}

func (r *RoomRepository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	var room domain.Room
	if err := r.db.WithContext(ctx).First(&room, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

// GetSummary resolves a tenant's room reference into the fields the
// billing boundary needs.
func (r *RoomRepository) GetSummary(ctx context.Context, id int64) (*domain.RoomSummary, error) {
	var room domain.Room
	if err := r.db.WithContext(ctx).
		Select("id", "building", "room_number", "price").
		First(&room, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &domain.RoomSummary{
		ID:         room.ID,
		Building:   room.Building,
		RoomNumber: room.RoomNumber,
		Price:      room.Price,
	}, nil
}

func (r *RoomRepository) List(ctx context.Context, onlyActive bool) ([]domain.Room, error) {
	q := r.db.WithContext(ctx).Order("building, floor, room_number")
	if onlyActive {
		q = q.Where("is_active = ?", true)
	}

	var rooms []domain.Room
	if err := q.Find(&rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}

func (r *RoomRepository) Save(ctx context.Context, room *domain.Room) error {
	return r.db.WithContext(ctx).Save(room).Error
}

// Deactivate soft-disables a room. Rooms are never hard-deleted.
func (r *RoomRepository) Deactivate(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Model(&domain.Room{}).
		Where("id = ?", id).
		Update("is_active", false)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
