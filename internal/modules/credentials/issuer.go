package credentials

import (
	"context"
	"fmt"

	"pgnest/internal/domain"
	"pgnest/internal/pkg/password"
)

// CounterSource hands out strictly increasing values for a named
// sequence. The persistence-backed implementation increments under a
// single atomic update, so codes stay unique across server instances.
type CounterSource interface {
	Next(ctx context.Context, name string) (int64, error)
}

// Issuer mints tenant codes and one-time passwords at approval and
// reactivation time. Codes are never reused, including for rejected and
// archived tenants.
type Issuer struct {
	counters CounterSource
}

func NewIssuer(counters CounterSource) *Issuer {
	return &Issuer{counters: counters}
}

func (i *Issuer) NextTenantCode(ctx context.Context) (string, error) {
	n, err := i.counters.Next(ctx, domain.CounterTenantCode)
	if err != nil {
		return "", err
	}
	return FormatTenantCode(n), nil
}

func (i *Issuer) GeneratePassword(length int) (string, error) {
	return password.Generate(length)
}

// FormatTenantCode renders a sequence value as a resident-facing code.
func FormatTenantCode(n int64) string {
	return fmt.Sprintf("PG%05d", n)
}
