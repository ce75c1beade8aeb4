package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"pgnest/internal/domain"
)

type CounterRepository struct {
	db *gorm.DB
}

func NewCounterRepository(db *gorm.DB) *CounterRepository {
	return &CounterRepository{db: db}
}

// Next atomically increments the named counter and returns the new value.
func (r *CounterRepository) Next(ctx context.Context, name string) (int64, error) {
	var value int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		value, err = NextCounterTx(tx, name)
		return err
	})
	return value, err
}

// NextCounterTx increments the counter inside an existing transaction.
// The increment runs as a single UPDATE so two concurrent callers can
// never read the same value; the row lock it takes holds until commit.
func NextCounterTx(tx *gorm.DB, name string) (int64, error) {
	res := tx.Model(&domain.Counter{}).
		Where("name = ?", name).
		UpdateColumn("value", gorm.Expr("value + 1"))
	if res.Error != nil {
		return 0, res.Error
	}

	if res.RowsAffected == 0 {
		c := domain.Counter{Name: name, Value: 1}
		if err := tx.Create(&c).Error; err != nil {
			if !errors.Is(err, gorm.ErrDuplicatedKey) {
				return 0, err
			}
			// Lost the race to create the row; increment it instead.
			res = tx.Model(&domain.Counter{}).
				Where("name = ?", name).
				UpdateColumn("value", gorm.Expr("value + 1"))
			if res.Error != nil {
				return 0, res.Error
			}
		} else {
			return c.Value, nil
		}
	}

	var c domain.Counter
	if err := tx.First(&c, "name = ?", name).Error; err != nil {
		return 0, err
	}
	return c.Value, nil
}
