package repository

import (
	"context"

	"gorm.io/gorm"

	"pgnest/internal/domain"
)

type NotificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) Create(ctx context.Context, n *domain.Notification) error {
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *NotificationRepository) ListByTenant(ctx context.Context, tenantID int64, limit int) ([]domain.Notification, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	var list []domain.Notification
	err := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("created_at DESC").
		Limit(limit).
		Find(&list).Error
	return list, err
}

func (r *NotificationRepository) CountUnread(ctx context.Context, tenantID int64) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.Notification{}).
		Where("tenant_id = ? AND is_read = ?", tenantID, false).
		Count(&n).Error
	return n, err
}

func (r *NotificationRepository) MarkAsRead(ctx context.Context, id, tenantID int64) error {
	return r.db.WithContext(ctx).Model(&domain.Notification{}).
		Where("id = ? AND tenant_id = ?", id, tenantID).
		Update("is_read", true).Error
}

func (r *NotificationRepository) MarkAllAsRead(ctx context.Context, tenantID int64) error {
	return r.db.WithContext(ctx).Model(&domain.Notification{}).
		Where("tenant_id = ? AND is_read = ?", tenantID, false).
		Update("is_read", true).Error
}
