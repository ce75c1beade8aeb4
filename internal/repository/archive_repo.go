package repository

import (
	"context"

	"gorm.io/gorm"

	"pgnest/internal/domain"
)

type ArchiveRepository struct {
	db *gorm.DB
}

func NewArchiveRepository(db *gorm.DB) *ArchiveRepository {
	return &ArchiveRepository{db: db}
}

func (r *ArchiveRepository) DB() *gorm.DB {
	return r.db
}

func (r *ArchiveRepository) Create(ctx context.Context, a *domain.TenantArchive) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *ArchiveRepository) List(ctx context.Context, limit, offset int) ([]domain.TenantArchive, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	var total int64
	if err := r.db.WithContext(ctx).Model(&domain.TenantArchive{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var archives []domain.TenantArchive
	err := r.db.WithContext(ctx).
		Order("archive_date DESC").
		Limit(limit).
		Offset(offset).
		Find(&archives).Error
	return archives, total, err
}

// LatestByTenant returns the most recent archive entry for a tenant, used
// by reactivation to show the prior stay.
func (r *ArchiveRepository) LatestByTenant(ctx context.Context, tenantID int64) (*domain.TenantArchive, error) {
	var a domain.TenantArchive
	err := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("archive_date DESC").
		First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}
