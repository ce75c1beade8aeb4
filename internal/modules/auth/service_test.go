package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"pgnest/internal/database"
	"pgnest/internal/domain"
	jwtsvc "pgnest/internal/pkg/jwt"
	"pgnest/internal/pkg/password"
)

func setupService(t *testing.T) (*gorm.DB, *Service, *jwtsvc.Service) {
	db, err := database.Connect(":memory:")
	require.NoError(t, err, "Failed to connect to test database")
	require.NoError(t, database.Migrate(db))

	j := jwtsvc.New("test-secret", time.Hour)
	return db, NewService(db, j), j
}

func TestLoginAdmin(t *testing.T) {
	db, service, j := setupService(t)

	hash, err := password.Hash("admin123")
	require.NoError(t, err)
	admin := domain.AdminUser{Email: "admin@test.com", PasswordHash: hash, Name: "Admin"}
	require.NoError(t, db.Create(&admin).Error)

	token, err := service.LoginAdmin(context.Background(), "Admin@Test.com ", "admin123")
	require.NoError(t, err)

	claims, err := j.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, admin.ID, claims.UserID)
	assert.Equal(t, "admin", claims.Role)
}

func TestLoginAdmin_WrongPassword(t *testing.T) {
	db, service, _ := setupService(t)

	hash, _ := password.Hash("admin123")
	require.NoError(t, db.Create(&domain.AdminUser{Email: "admin@test.com", PasswordHash: hash}).Error)

	_, err := service.LoginAdmin(context.Background(), "admin@test.com", "nope")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginAdmin_UnknownEmail(t *testing.T) {
	_, service, _ := setupService(t)

	_, err := service.LoginAdmin(context.Background(), "ghost@test.com", "admin123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginResident(t *testing.T) {
	db, service, j := setupService(t)

	hash, err := password.Hash("Wq3!xyzAb")
	require.NoError(t, err)
	tenant := domain.Tenant{
		Name:               "Resident",
		Email:              "resident@test.com",
		RegistrationStatus: domain.RegistrationApproved,
		TenantCode:         "PG00001",
		PasswordHash:       hash,
		IsActive:           true,
	}
	require.NoError(t, db.Create(&tenant).Error)

	token, err := service.LoginResident(context.Background(), "PG00001", "Wq3!xyzAb")
	require.NoError(t, err)

	claims, err := j.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, tenant.ID, claims.UserID)
	assert.Equal(t, "resident", claims.Role)
}

func TestLoginResident_PendingApplicantHasNoCredential(t *testing.T) {
	db, service, _ := setupService(t)

	// Pending rows carry the empty code and no password hash.
	require.NoError(t, db.Create(&domain.Tenant{
		Name:               "Applicant",
		Email:              "applicant@test.com",
		RegistrationStatus: domain.RegistrationPending,
	}).Error)

	_, err := service.LoginResident(context.Background(), "", "anything")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginResident_UnknownCode(t *testing.T) {
	_, service, _ := setupService(t)

	_, err := service.LoginResident(context.Background(), "PG99999", "anything")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
