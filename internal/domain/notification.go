package domain

import "time"

type NotificationType string

const (
	NotifWelcome          NotificationType = "welcome"
	NotifRegistrationDone NotificationType = "registration_processed"
	NotifNoticeSubmitted  NotificationType = "notice_submitted"
	NotifNoticeWithdrawn  NotificationType = "notice_withdrawn"
	NotifCheckout         NotificationType = "checkout"
	NotifRentDue          NotificationType = "rent_due"
	NotifComplaintUpdate  NotificationType = "complaint_update"
)

type Notification struct {
	ID        int64            `json:"id"`
	TenantID  int64            `json:"tenant_id" gorm:"index"`
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Message   string           `json:"message" gorm:"type:text"`
	IsRead    bool             `json:"is_read"`
	CreatedAt time.Time        `json:"created_at"`
}
