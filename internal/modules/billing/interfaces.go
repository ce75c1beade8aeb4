package billing

import (
	"context"

	"pgnest/internal/domain"
)

type TenantRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Tenant, error)
	ListActive(ctx context.Context) ([]domain.Tenant, error)
}

type PaymentRepository interface {
	Create(ctx context.Context, p *domain.Payment) error
	ListByTenant(ctx context.Context, tenantID int64) ([]domain.Payment, error)
	ListByTenants(ctx context.Context, tenantIDs []int64) (map[int64][]domain.Payment, error)
}

type RoomRepository interface {
	GetSummary(ctx context.Context, id int64) (*domain.RoomSummary, error)
}
