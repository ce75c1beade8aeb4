package auth

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"pgnest/internal/domain"
	jwtsvc "pgnest/internal/pkg/jwt"
	"pgnest/internal/pkg/password"
)

// Service exchanges stored credentials for a signed token. Admins log in
// with their email; residents with the tenant code and one-time password
// from their welcome email. Lookup failures and password mismatches
// collapse into one error so the endpoint does not leak which was wrong.
type Service struct {
	db  *gorm.DB
	jwt *jwtsvc.Service
}

func NewService(db *gorm.DB, jwt *jwtsvc.Service) *Service {
	return &Service{db: db, jwt: jwt}
}

func (s *Service) LoginAdmin(ctx context.Context, email, plain string) (string, error) {
	var user domain.AdminUser
	err := s.db.WithContext(ctx).
		First(&user, "email = ?", strings.ToLower(strings.TrimSpace(email))).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}
	if err := password.Check(plain, user.PasswordHash); err != nil {
		return "", ErrInvalidCredentials
	}
	return s.jwt.GenerateToken(user.ID, string(domain.RoleAdmin))
}

func (s *Service) LoginResident(ctx context.Context, tenantCode, plain string) (string, error) {
	var tenant domain.Tenant
	err := s.db.WithContext(ctx).
		First(&tenant, "tenant_code = ? AND is_deleted = ?", strings.TrimSpace(tenantCode), false).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}
	// Pending applicants have no credential yet.
	if tenant.PasswordHash == "" {
		return "", ErrInvalidCredentials
	}
	if err := password.Check(plain, tenant.PasswordHash); err != nil {
		return "", ErrInvalidCredentials
	}
	return s.jwt.GenerateToken(tenant.ID, string(domain.RoleResident))
}
