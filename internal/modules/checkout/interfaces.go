package checkout

import (
	"context"

	"pgnest/internal/domain"
)

type NotificationSender interface {
	NotifyNoticeSubmitted(ctx context.Context, tenant *domain.Tenant, refundEligible bool) error
	NotifyNoticeWithdrawn(ctx context.Context, tenant *domain.Tenant) error
	NotifyCheckout(ctx context.Context, tenant *domain.Tenant) error
	NotifyWelcome(ctx context.Context, tenant *domain.Tenant, oneTimePassword string) error
}

// CredentialIssuer is only consulted on reactivation when the caller
// asks for a fresh one-time password; the tenant code is reused.
type CredentialIssuer interface {
	GeneratePassword(length int) (string, error)
}
