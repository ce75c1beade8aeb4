package complaint

import "pgnest/internal/domain"

type CreateComplaintRequest struct {
	Category    string `json:"category" binding:"required"`
	Description string `json:"description" binding:"required"`
}

type UpdateComplaintRequest struct {
	Status     domain.ComplaintStatus `json:"status" binding:"required"`
	Resolution string                 `json:"resolution"`
}
