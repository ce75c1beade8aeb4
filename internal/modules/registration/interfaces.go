package registration

import (
	"context"

	"pgnest/internal/domain"
)

// CredentialIssuer mints the unique tenant code and the mailed one-time
// password at approval time.
type CredentialIssuer interface {
	NextTenantCode(ctx context.Context) (string, error)
	GeneratePassword(length int) (string, error)
}

// NotificationSender is fire-and-forget: failures are logged by the
// service, never surfaced to the approval flow.
type NotificationSender interface {
	NotifyWelcome(ctx context.Context, tenant *domain.Tenant, oneTimePassword string) error
	NotifyRegistrationRejected(ctx context.Context, tenant *domain.Tenant, reason string) error
}
