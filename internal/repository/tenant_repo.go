package repository

import (
	"context"

	"gorm.io/gorm"

	"pgnest/internal/domain"
)

type TenantRepository struct {
	db *gorm.DB
}

func NewTenantRepository(db *gorm.DB) *TenantRepository {
	return &TenantRepository{db: db}
}

func (r *TenantRepository) DB() *gorm.DB {
	return r.db
}

func (r *TenantRepository) Create(ctx context.Context, t *domain.Tenant) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *TenantRepository) GetByID(ctx context.Context, id int64) (*domain.Tenant, error) {
	var t domain.Tenant
	if err := r.db.WithContext(ctx).First(&t, "id = ? AND is_deleted = ?", id, false).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TenantRepository) GetByCode(ctx context.Context, code string) (*domain.Tenant, error) {
	var t domain.Tenant
	if err := r.db.WithContext(ctx).First(&t, "tenant_code = ? AND is_deleted = ?", code, false).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TenantRepository) Save(ctx context.Context, t *domain.Tenant) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *TenantRepository) ListPending(ctx context.Context) ([]domain.Tenant, error) {
	var tenants []domain.Tenant
	err := r.db.WithContext(ctx).
		Where("registration_status = ? AND is_deleted = ?", domain.RegistrationPending, false).
		Order("created_at").
		Find(&tenants).Error
	return tenants, err
}

func (r *TenantRepository) ListActive(ctx context.Context) ([]domain.Tenant, error) {
	var tenants []domain.Tenant
	err := r.db.WithContext(ctx).
		Where("is_active = ? AND is_deleted = ?", true, false).
		Order("tenant_code").
		Find(&tenants).Error
	return tenants, err
}

// SoftDelete hides the record from reads while keeping it for audit.
func (r *TenantRepository) SoftDelete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Model(&domain.Tenant{}).
		Where("id = ?", id).
		Update("is_deleted", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
