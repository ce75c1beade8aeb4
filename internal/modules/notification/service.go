package notification

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"pgnest/internal/domain"
	"pgnest/internal/repository"
)

// EmailSender is the outbound delivery collaborator. Send is
// fire-and-forget from the engine's perspective; failures are logged and
// never retried here.
type EmailSender interface {
	Send(ctx context.Context, to, subject, body string) error
}

// LogSender is the default EmailSender: it only logs. Real delivery is
// wired in deployment.
type LogSender struct{}

func (LogSender) Send(ctx context.Context, to, subject, body string) error {
	logrus.WithFields(logrus.Fields{"to": to, "subject": subject}).Info("email (stub)")
	return nil
}

// Service persists an in-app notification row for every lifecycle event
// and mirrors it to the email collaborator.
type Service struct {
	repo  *repository.NotificationRepository
	email EmailSender
}

func NewService(repo *repository.NotificationRepository, email EmailSender) *Service {
	if email == nil {
		email = LogSender{}
	}
	return &Service{repo: repo, email: email}
}

func (s *Service) create(ctx context.Context, tenantID int64, t domain.NotificationType, title, message string) error {
	n := &domain.Notification{
		TenantID: tenantID,
		Type:     t,
		Title:    title,
		Message:  message,
	}
	return s.repo.Create(ctx, n)
}

func (s *Service) ListForTenant(ctx context.Context, tenantID int64, limit int) ([]domain.Notification, int64, error) {
	list, err := s.repo.ListByTenant(ctx, tenantID, limit)
	if err != nil {
		return nil, 0, err
	}
	unread, err := s.repo.CountUnread(ctx, tenantID)
	if err != nil {
		unread = 0
	}
	return list, unread, nil
}

func (s *Service) MarkAsRead(ctx context.Context, id, tenantID int64) error {
	return s.repo.MarkAsRead(ctx, id, tenantID)
}

func (s *Service) MarkAllAsRead(ctx context.Context, tenantID int64) error {
	return s.repo.MarkAllAsRead(ctx, tenantID)
}

// NotifyWelcome carries the minted credentials. The password goes only to
// the email, never into the stored notification row.
func (s *Service) NotifyWelcome(ctx context.Context, tenant *domain.Tenant, oneTimePassword string) error {
	if err := s.create(ctx, tenant.ID, domain.NotifWelcome,
		"Welcome to the PG",
		fmt.Sprintf("Your registration is approved. Your tenant code is %s.", tenant.TenantCode)); err != nil {
		return err
	}

	body := fmt.Sprintf("Welcome %s!\n\nTenant code: %s", tenant.Name, tenant.TenantCode)
	if oneTimePassword != "" {
		body += fmt.Sprintf("\nTemporary password: %s\n\nPlease change it after your first login.", oneTimePassword)
	}
	if err := s.email.Send(ctx, tenant.Email, "Welcome to the PG", body); err != nil {
		logrus.WithError(err).WithField("tenant_id", tenant.ID).Warn("welcome email failed")
	}
	return nil
}

func (s *Service) NotifyRegistrationRejected(ctx context.Context, tenant *domain.Tenant, reason string) error {
	msg := "Your registration was not approved."
	if reason != "" {
		msg += " Reason: " + reason
	}
	if err := s.create(ctx, tenant.ID, domain.NotifRegistrationDone, "Registration update", msg); err != nil {
		return err
	}
	if err := s.email.Send(ctx, tenant.Email, "Registration update", msg); err != nil {
		logrus.WithError(err).WithField("tenant_id", tenant.ID).Warn("rejection email failed")
	}
	return nil
}

func (s *Service) NotifyNoticeSubmitted(ctx context.Context, tenant *domain.Tenant, refundEligible bool) error {
	msg := "Your notice has been recorded."
	if tenant.LastStayingDate != nil {
		msg = fmt.Sprintf("Your notice has been recorded. Last staying date: %s.",
			tenant.LastStayingDate.Format("02 Jan 2006"))
	}
	if refundEligible {
		msg += " You are eligible for the deposit refund credit."
	}
	return s.create(ctx, tenant.ID, domain.NotifNoticeSubmitted, "Notice submitted", msg)
}

func (s *Service) NotifyNoticeWithdrawn(ctx context.Context, tenant *domain.Tenant) error {
	return s.create(ctx, tenant.ID, domain.NotifNoticeWithdrawn,
		"Notice withdrawn", "Your notice has been withdrawn; your stay continues.")
}

func (s *Service) NotifyCheckout(ctx context.Context, tenant *domain.Tenant) error {
	if err := s.create(ctx, tenant.ID, domain.NotifCheckout,
		"Checkout complete", "Your checkout is complete. Thank you for staying with us."); err != nil {
		return err
	}
	if err := s.email.Send(ctx, tenant.Email, "Checkout complete",
		fmt.Sprintf("Goodbye %s, your checkout is complete.", tenant.Name)); err != nil {
		logrus.WithError(err).WithField("tenant_id", tenant.ID).Warn("checkout email failed")
	}
	return nil
}

func (s *Service) NotifyComplaintUpdate(ctx context.Context, tenantID int64, status domain.ComplaintStatus, resolution string) error {
	msg := fmt.Sprintf("Your complaint is now %s.", status)
	if resolution != "" {
		msg += " " + resolution
	}
	return s.create(ctx, tenantID, domain.NotifComplaintUpdate, "Complaint update", msg)
}
