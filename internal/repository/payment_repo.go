package repository

import (
	"context"

	"gorm.io/gorm"

	"pgnest/internal/domain"
)

type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) DB() *gorm.DB {
	return r.db
}

func (r *PaymentRepository) Create(ctx context.Context, p *domain.Payment) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PaymentRepository) ListByTenant(ctx context.Context, tenantID int64) ([]domain.Payment, error) {
	var payments []domain.Payment
	err := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("payment_date DESC").
		Find(&payments).Error
	return payments, err
}

// ListByTenants loads payment history for a roster in one query, keyed by
// tenant for the dues sweep.
func (r *PaymentRepository) ListByTenants(ctx context.Context, tenantIDs []int64) (map[int64][]domain.Payment, error) {
	out := make(map[int64][]domain.Payment, len(tenantIDs))
	if len(tenantIDs) == 0 {
		return out, nil
	}

	var payments []domain.Payment
	if err := r.db.WithContext(ctx).
		Where("tenant_id IN ?", tenantIDs).
		Order("payment_date DESC").
		Find(&payments).Error; err != nil {
		return nil, err
	}

	for _, p := range payments {
		out[p.TenantID] = append(out[p.TenantID], p)
	}
	return out, nil
}
