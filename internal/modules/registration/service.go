package registration

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"pgnest/internal/domain"
	"pgnest/internal/modules/occupancy"
	"pgnest/internal/pkg/password"
)

// Service drives the Pending -> Approved/Rejected workflow. Approval is a
// single transaction: the status flip is a conditional update so two
// admins acting at once cannot both approve, and a failed bed assignment
// rolls everything back. The welcome notification goes out only after
// commit.
type Service struct {
	db     *gorm.DB
	ledger *occupancy.Ledger
	issuer CredentialIssuer
	notifs NotificationSender
}

func NewService(db *gorm.DB, ledger *occupancy.Ledger, issuer CredentialIssuer, notifs NotificationSender) *Service {
	return &Service{db: db, ledger: ledger, issuer: issuer, notifs: notifs}
}

// Register files a new application in Pending state.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*domain.Tenant, error) {
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" {
		return nil, ErrValidation
	}

	t := &domain.Tenant{
		Name:               strings.TrimSpace(req.Name),
		Email:              strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:              req.Phone,
		GuardianName:       req.GuardianName,
		GuardianPhone:      req.GuardianPhone,
		RegistrationStatus: domain.RegistrationPending,
	}
	if err := s.db.WithContext(ctx).Create(t).Error; err != nil {
		return nil, err
	}
	return t, nil
}

func (s *Service) ListPending(ctx context.Context) ([]domain.Tenant, error) {
	var tenants []domain.Tenant
	err := s.db.WithContext(ctx).
		Where("registration_status = ? AND is_deleted = ?", domain.RegistrationPending, false).
		Order("created_at").
		Find(&tenants).Error
	return tenants, err
}

// Approve turns a pending applicant into an active tenant: bed assigned,
// tenant code minted, one-time password issued, initial rent (and
// optional deposit) recorded.
func (s *Service) Approve(ctx context.Context, req ApproveRequest) (*ApprovalResult, error) {
	if !req.Payment.Amount.IsPositive() || len(req.Payment.Months) == 0 {
		return nil, ErrValidation
	}
	if req.DepositAmount.IsNegative() {
		return nil, ErrValidation
	}

	// The code counter is its own atomic update, outside the approval
	// transaction; a rollback burns the code, it never reissues one.
	code, err := s.issuer.NextTenantCode(ctx)
	if err != nil {
		return nil, err
	}
	oneTime, err := s.issuer.GeneratePassword(password.DefaultLength)
	if err != nil {
		return nil, err
	}
	hash, err := password.Hash(oneTime)
	if err != nil {
		return nil, err
	}

	var tenant domain.Tenant
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Conditional flip guards against a concurrent approve/reject.
		res := tx.Model(&domain.Tenant{}).
			Where("id = ? AND registration_status = ? AND is_deleted = ?",
				req.TenantID, domain.RegistrationPending, false).
			Update("registration_status", domain.RegistrationApproved)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			if err := tx.First(&domain.Tenant{}, "id = ? AND is_deleted = ?", req.TenantID, false).Error; err != nil {
				return ErrNotFound
			}
			return ErrAlreadyProcessed
		}

		if err := tx.First(&tenant, "id = ?", req.TenantID).Error; err != nil {
			return err
		}

		if _, err := s.ledger.AssignBedTx(tx, req.RoomID, &tenant); err != nil {
			return err
		}

		now := time.Now()
		checkIn := req.CheckInDate
		tenant.TenantCode = code
		tenant.PasswordHash = hash
		tenant.IsActive = true
		tenant.MoveInDate = &checkIn
		tenant.ApprovalDate = &now
		tenant.DepositFees = req.DepositAmount
		tenant.KeyIssued = req.KeyIssued
		if err := tx.Save(&tenant).Error; err != nil {
			return err
		}

		status := req.Payment.Status
		if status == "" {
			status = domain.PaymentPaid
		}
		rent := domain.Payment{
			ID:            uuid.New(),
			TenantID:      tenant.ID,
			Amount:        req.Payment.Amount,
			Months:        domain.MonthList(req.Payment.Months),
			PaymentStatus: status,
			PaymentMethod: req.Payment.Method,
			PaymentDate:   now,
		}
		if err := tx.Create(&rent).Error; err != nil {
			return err
		}

		if req.DepositAmount.IsPositive() {
			deposit := domain.Payment{
				ID:               uuid.New(),
				TenantID:         tenant.ID,
				Amount:           req.DepositAmount,
				PaymentStatus:    domain.PaymentPaid,
				PaymentMethod:    req.Payment.Method,
				IsDepositPayment: true,
				PaymentDate:      now,
			}
			if err := tx.Create(&deposit).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.notifs != nil {
		if err := s.notifs.NotifyWelcome(ctx, &tenant, oneTime); err != nil {
			logrus.WithError(err).WithField("tenant_id", tenant.ID).
				Warn("welcome notification failed")
		}
	}

	return &ApprovalResult{
		Tenant:          &tenant,
		TenantCode:      code,
		OneTimePassword: oneTime,
	}, nil
}

// Reject closes a pending application. Rejecting twice is a conflict, not
// a silent no-op, mirroring the approval guard.
func (s *Service) Reject(ctx context.Context, tenantID int64, reason string) (*domain.Tenant, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, ErrValidation
	}

	now := time.Now()
	res := s.db.WithContext(ctx).Model(&domain.Tenant{}).
		Where("id = ? AND registration_status = ? AND is_deleted = ?",
			tenantID, domain.RegistrationPending, false).
		Updates(map[string]any{
			"registration_status": domain.RegistrationRejected,
			"rejection_reason":    reason,
			"rejection_date":      now,
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		var probe domain.Tenant
		if err := s.db.WithContext(ctx).First(&probe, "id = ? AND is_deleted = ?", tenantID, false).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrNotFound
			}
			return nil, err
		}
		return nil, ErrAlreadyProcessed
	}

	var tenant domain.Tenant
	if err := s.db.WithContext(ctx).First(&tenant, "id = ?", tenantID).Error; err != nil {
		return nil, err
	}

	if s.notifs != nil {
		if err := s.notifs.NotifyRegistrationRejected(ctx, &tenant, reason); err != nil {
			logrus.WithError(err).WithField("tenant_id", tenant.ID).
				Warn("rejection notification failed")
		}
	}

	return &tenant, nil
}
