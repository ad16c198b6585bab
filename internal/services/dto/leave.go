package dto

import (
	"time"

	"namedesk_backend/internal/models"
)

type CreateLeaveRequest struct {
	Type     models.LeaveType `json:"type" validate:"required,oneof=sick casual other"`
	Reason   string           `json:"reason" validate:"omitempty,max=1000"`
	DateFrom string           `json:"date_from" validate:"required,datestr"`
	DateTo   string           `json:"date_to" validate:"required,datestr"`
}

type DecideLeaveRequest struct {
	Status       models.LeaveStatus `json:"status" validate:"required,oneof=approved rejected"`
	RejectReason string             `json:"reject_reason" validate:"required_if=Status rejected,max=1000"`
}

type LeaveResponse struct {
	ID           string             `json:"id"`
	UserID       string             `json:"user_id"`
	Type         models.LeaveType   `json:"type"`
	Reason       string             `json:"reason,omitempty"`
	DateFrom     string             `json:"date_from"`
	DateTo       string             `json:"date_to"`
	Days         int                `json:"days"`
	Status       models.LeaveStatus `json:"status"`
	DecidedAt    *time.Time         `json:"decided_at,omitempty"`
	DecidedByID  *string            `json:"decided_by_id,omitempty"`
	RejectReason string             `json:"reject_reason,omitempty"`
	CreatedAt    time.Time          `json:"created_at"`
}

type LeaveListResponse struct {
	Requests   []*LeaveResponse `json:"requests"`
	Total      int64            `json:"total"`
	Page       int              `json:"page"`
	PageSize   int              `json:"page_size"`
	TotalPages int              `json:"total_pages"`
}
