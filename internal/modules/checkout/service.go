package checkout

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"pgnest/internal/domain"
	"pgnest/internal/modules/occupancy"
	"pgnest/internal/pkg/password"
)

const (
	// minNoticeDays is the business minimum between declaring intent to
	// leave and the last staying date. A notice of exactly this many days
	// is still too short; strictly more is required.
	minNoticeDays = 15

	// refundNoticeDays is the threshold above which the departing tenant
	// earns the fixed deposit refund credit.
	refundNoticeDays = 15
)

// RefundCredit is the fixed credit applied to deposit accounting when
// notice is long enough.
var RefundCredit = decimal.NewFromInt(500)

// Service runs the Active -> NoticePeriod -> CheckedOut machine, plus the
// Withdraw and Reactivate transitions. The bed is held through the whole
// notice period and released only at actual checkout.
type Service struct {
	db     *gorm.DB
	ledger *occupancy.Ledger
	issuer CredentialIssuer
	notifs NotificationSender
}

func NewService(db *gorm.DB, ledger *occupancy.Ledger, issuer CredentialIssuer, notifs NotificationSender) *Service {
	return &Service{db: db, ledger: ledger, issuer: issuer, notifs: notifs}
}

// SubmitNotice records intent to leave on lastStayingDate.
func (s *Service) SubmitNotice(ctx context.Context, tenantID int64, lastStayingDate time.Time) (*NoticeResult, error) {
	tenant, err := s.getTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	if !tenant.IsActive {
		return nil, ErrNotActive
	}
	if tenant.IsOnNoticePeriod {
		return nil, ErrAlreadyOnNotice
	}

	now := time.Now()
	days := daysUntil(now, lastStayingDate)
	if days <= minNoticeDays {
		return nil, ErrNoticeTooShort
	}
	eligible := days > refundNoticeDays

	// The refund position is settled now and stored on the tenant, so it
	// survives until checkout and into the archive.
	last := lastStayingDate
	tenant.IsOnNoticePeriod = true
	tenant.NoticeDate = &now
	tenant.LastStayingDate = &last
	tenant.RefundCredit = decimal.Zero
	if eligible {
		tenant.RefundCredit = RefundCredit
	}
	if err := s.db.WithContext(ctx).Save(tenant).Error; err != nil {
		return nil, err
	}

	if s.notifs != nil {
		if err := s.notifs.NotifyNoticeSubmitted(ctx, tenant, eligible); err != nil {
			logrus.WithError(err).WithField("tenant_id", tenant.ID).
				Warn("notice notification failed")
		}
	}

	return &NoticeResult{
		Tenant:         tenant,
		DaysNotice:     days,
		RefundEligible: eligible,
		RefundCredit:   tenant.RefundCredit,
	}, nil
}

// WithdrawNotice cancels a pending departure. No room effect: the bed was
// never released during notice.
func (s *Service) WithdrawNotice(ctx context.Context, tenantID int64) (*domain.Tenant, error) {
	tenant, err := s.getTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	if !tenant.IsOnNoticePeriod || !tenant.IsActive {
		return nil, ErrNotOnNotice
	}

	tenant.IsOnNoticePeriod = false
	tenant.NoticeDate = nil
	tenant.LastStayingDate = nil
	tenant.RefundCredit = decimal.Zero
	if err := s.db.WithContext(ctx).Save(tenant).Error; err != nil {
		return nil, err
	}

	if s.notifs != nil {
		if err := s.notifs.NotifyNoticeWithdrawn(ctx, tenant); err != nil {
			logrus.WithError(err).WithField("tenant_id", tenant.ID).
				Warn("withdraw notification failed")
		}
	}

	return tenant, nil
}

// Checkout completes a departure: bed released, archive snapshot written,
// tenant record retained inactive for audit. Notice is mandatory; an
// active tenant cannot check out directly.
func (s *Service) Checkout(ctx context.Context, req CheckoutRequest) (*domain.TenantArchive, error) {
	var archive *domain.TenantArchive

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var tenant domain.Tenant
		if err := tx.First(&tenant, "id = ? AND is_deleted = ?", req.TenantID, false).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if !tenant.IsOnNoticePeriod {
			return ErrNotOnNotice
		}

		// Snapshot the room linkage before the release clears it.
		roomID := tenant.RoomID
		bed := tenant.BedNumber

		if tenant.RoomID != nil {
			if _, err := s.ledger.ReleaseBedTx(tx, &tenant); err != nil {
				return err
			}
		}

		now := time.Now()
		stay := 0
		if tenant.MoveInDate != nil {
			stay = daysUntil(*tenant.MoveInDate, now)
		}

		archive = &domain.TenantArchive{
			ID:            uuid.New(),
			TenantID:      tenant.ID,
			Name:          tenant.Name,
			Email:         tenant.Email,
			Phone:         tenant.Phone,
			TenantCode:    tenant.TenantCode,
			RoomID:        roomID,
			BedNumber:     bed,
			DepositFees:   tenant.DepositFees,
			RefundCredit:  tenant.RefundCredit,
			DepositRefund: tenant.DepositFees.Add(tenant.RefundCredit),
			MoveInDate:    tenant.MoveInDate,
			MoveOutDate:   now,
			StayDuration:  stay,
			Reason:        domain.ArchiveCheckout,
			ArchiveDate:   now,
		}
		if req.Survey != nil {
			cl, fo, st := req.Survey.CleanlinessRating, req.Survey.FoodRating, req.Survey.StaffRating
			archive.ExitSurveyCompleted = true
			archive.CleanlinessRating = &cl
			archive.FoodRating = &fo
			archive.StaffRating = &st
			archive.ExitComments = req.Survey.Comments
		}
		if err := tx.Create(archive).Error; err != nil {
			return err
		}

		tenant.IsActive = false
		tenant.IsOnNoticePeriod = false
		tenant.MoveOutDate = &now
		return tx.Save(&tenant).Error
	})
	if err != nil {
		return nil, err
	}

	if s.notifs != nil {
		var tenant domain.Tenant
		if err := s.db.WithContext(ctx).First(&tenant, "id = ?", req.TenantID).Error; err == nil {
			if err := s.notifs.NotifyCheckout(ctx, &tenant); err != nil {
				logrus.WithError(err).WithField("tenant_id", tenant.ID).
					Warn("checkout notification failed")
			}
		}
	}

	return archive, nil
}

// Reactivate returns a former tenant to active occupancy. The original
// tenant code is kept; a new bed is assigned like a fresh approval.
func (s *Service) Reactivate(ctx context.Context, req ReactivateRequest) (*ReactivationResult, error) {
	if req.RentAmount.IsNegative() || req.DepositAmount.IsNegative() {
		return nil, ErrValidation
	}
	if req.RentAmount.IsPositive() && len(req.RentMonths) == 0 {
		return nil, ErrValidation
	}

	oneTime := ""
	hash := ""
	if req.IssuePassword {
		var err error
		oneTime, err = s.issuer.GeneratePassword(password.DefaultLength)
		if err != nil {
			return nil, err
		}
		hash, err = password.Hash(oneTime)
		if err != nil {
			return nil, err
		}
	}

	var tenant domain.Tenant
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&tenant, "id = ? AND is_deleted = ?", req.TenantID, false).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if tenant.IsActive || tenant.TenantCode == "" {
			return ErrNotReactivable
		}

		if _, err := s.ledger.AssignBedTx(tx, req.RoomID, &tenant); err != nil {
			return err
		}

		now := time.Now()
		checkIn := req.CheckInDate
		tenant.IsActive = true
		tenant.IsOnNoticePeriod = false
		tenant.MoveInDate = &checkIn
		tenant.MoveOutDate = nil
		tenant.NoticeDate = nil
		tenant.LastStayingDate = nil
		tenant.RefundCredit = decimal.Zero
		if req.DepositAmount.IsPositive() {
			tenant.DepositFees = req.DepositAmount
		}
		if hash != "" {
			tenant.PasswordHash = hash
		}
		if err := tx.Save(&tenant).Error; err != nil {
			return err
		}

		if req.RentAmount.IsPositive() {
			rent := domain.Payment{
				ID:            uuid.New(),
				TenantID:      tenant.ID,
				Amount:        req.RentAmount,
				Months:        domain.MonthList(req.RentMonths),
				PaymentStatus: domain.PaymentPaid,
				PaymentMethod: req.Method,
				PaymentDate:   now,
			}
			if err := tx.Create(&rent).Error; err != nil {
				return err
			}
		}
		if req.DepositAmount.IsPositive() {
			deposit := domain.Payment{
				ID:               uuid.New(),
				TenantID:         tenant.ID,
				Amount:           req.DepositAmount,
				PaymentStatus:    domain.PaymentPaid,
				PaymentMethod:    req.Method,
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
				Warn("reactivation notification failed")
		}
	}

	return &ReactivationResult{Tenant: &tenant, OneTimePassword: oneTime}, nil
}

func (s *Service) getTenant(ctx context.Context, id int64) (*domain.Tenant, error) {
	var tenant domain.Tenant
	if err := s.db.WithContext(ctx).First(&tenant, "id = ? AND is_deleted = ?", id, false).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &tenant, nil
}

// daysUntil counts whole calendar days from a to b, ignoring clock time.
func daysUntil(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	start := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	end := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(end.Sub(start).Hours() / 24)
}
