package repository

import (
	"context"

	"gorm.io/gorm"

	"pgnest/internal/domain"
)

type ComplaintRepository struct {
	db *gorm.DB
}

func NewComplaintRepository(db *gorm.DB) *ComplaintRepository {
	return &ComplaintRepository{db: db}
}

func (r *ComplaintRepository) Create(ctx context.Context, c *domain.Complaint) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *ComplaintRepository) GetByID(ctx context.Context, id int64) (*domain.Complaint, error) {
	var c domain.Complaint
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *ComplaintRepository) Update(ctx context.Context, c *domain.Complaint) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *ComplaintRepository) ListByTenant(ctx context.Context, tenantID int64) ([]domain.Complaint, error) {
	var complaints []domain.Complaint
	err := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("created_at DESC").
		Find(&complaints).Error
	return complaints, err
}

func (r *ComplaintRepository) List(ctx context.Context, status *domain.ComplaintStatus, limit, offset int) ([]domain.Complaint, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	q := r.db.WithContext(ctx).Model(&domain.Complaint{})
	if status != nil {
		q = q.Where("status = ?", *status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var complaints []domain.Complaint
	err := q.Order("created_at DESC").Limit(limit).Offset(offset).Find(&complaints).Error
	return complaints, total, err
}
