package complaint

import (
	"context"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"pgnest/internal/domain"
	"pgnest/internal/repository"
)

type NotificationSender interface {
	NotifyComplaintUpdate(ctx context.Context, tenantID int64, status domain.ComplaintStatus, resolution string) error
}

type Service struct {
	repo   *repository.ComplaintRepository
	notifs NotificationSender
}

func NewService(repo *repository.ComplaintRepository, notifs NotificationSender) *Service {
	return &Service{repo: repo, notifs: notifs}
}

func (s *Service) Create(ctx context.Context, tenantID int64, req CreateComplaintRequest) (*domain.Complaint, error) {
	if strings.TrimSpace(req.Description) == "" {
		return nil, ErrValidation
	}

	category := domain.ComplaintCategory(req.Category)
	switch category {
	case domain.ComplaintMaintenance, domain.ComplaintCleanliness, domain.ComplaintFood,
		domain.ComplaintNoise, domain.ComplaintOther:
	default:
		category = domain.ComplaintOther
	}

	c := &domain.Complaint{
		TenantID:    tenantID,
		Category:    category,
		Description: strings.TrimSpace(req.Description),
		Status:      domain.ComplaintOpen,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) ListForTenant(ctx context.Context, tenantID int64) ([]domain.Complaint, error) {
	return s.repo.ListByTenant(ctx, tenantID)
}

func (s *Service) List(ctx context.Context, status *domain.ComplaintStatus, limit, offset int) ([]domain.Complaint, int64, error) {
	return s.repo.List(ctx, status, limit, offset)
}

// UpdateStatus moves a complaint along open -> in_progress -> resolved.
// Setting resolved stamps the resolution time.
func (s *Service) UpdateStatus(ctx context.Context, id int64, req UpdateComplaintRequest) (*domain.Complaint, error) {
	switch req.Status {
	case domain.ComplaintOpen, domain.ComplaintInProgress, domain.ComplaintResolved:
	default:
		return nil, ErrValidation
	}

	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}

	c.Status = req.Status
	c.Resolution = req.Resolution
	if req.Status == domain.ComplaintResolved {
		now := time.Now()
		c.ResolvedAt = &now
	}
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}

	if s.notifs != nil {
		if err := s.notifs.NotifyComplaintUpdate(ctx, c.TenantID, c.Status, c.Resolution); err != nil {
			logrus.WithError(err).WithField("complaint_id", c.ID).
				Warn("complaint notification failed")
		}
	}

	return c, nil
}
