package dto

import (
	"time"

	"namedesk_backend/internal/models"
)

type CreateCustomerRequest struct {
	FatherName     string     `json:"father_name" validate:"required,max=100"`
	MotherName     string     `json:"mother_name" validate:"omitempty,max=100"`
	Email          string     `json:"email" validate:"omitempty,email"`
	WhatsappNumber string     `json:"whatsapp_number" validate:"required,max=20"`
	BabyGender     string     `json:"baby_gender" validate:"required,babygender"`
	PaymentDate    *time.Time `json:"payment_date,omitempty"`
	Note           string     `json:"note" validate:"omitempty,max=2000"`
}

// UpdateCustomerRequest carries targeted field changes plus the version the
// client last read. The update is rejected when the version is stale.
type UpdateCustomerRequest struct {
	FatherName     *string    `json:"father_name,omitempty" validate:"omitempty,max=100"`
	MotherName     *string    `json:"mother_name,omitempty" validate:"omitempty,max=100"`
	Email          *string    `json:"email,omitempty" validate:"omitempty,email"`
	WhatsappNumber *string    `json:"whatsapp_number,omitempty" validate:"omitempty,max=20"`
	BabyGender     *string    `json:"baby_gender,omitempty" validate:"omitempty,babygender"`
	PaymentDate    *time.Time `json:"payment_date,omitempty"`
	Note           *string    `json:"note,omitempty" validate:"omitempty,max=2000"`
	AssignedToID   *string    `json:"assigned_to_id,omitempty"`
	Version        int64      `json:"version" validate:"required,min=1"`
}

type UpdateCustomerStatusRequest struct {
	Status models.CustomerStatus `json:"status" validate:"required,oneof=new_request in_progress completed rejected"`
}

type CustomerResponse struct {
	ID             string                `json:"id"`
	FatherName     string                `json:"father_name"`
	MotherName     string                `json:"mother_name,omitempty"`
	Email          string                `json:"email,omitempty"`
	WhatsappNumber string                `json:"whatsapp_number"`
	BabyGender     string                `json:"baby_gender"`
	Status         models.CustomerStatus `json:"status"`
	PaymentDate    *time.Time            `json:"payment_date,omitempty"`
	Note           string                `json:"note,omitempty"`
	AssignedToID   *string               `json:"assigned_to_id,omitempty"`
	Version        int64                 `json:"version"`
	CreatedAt      time.Time             `json:"created_at"`
	UpdatedAt      time.Time             `json:"updated_at"`
}

type CustomerListResponse struct {
	Customers  []*CustomerResponse `json:"customers"`
	Total      int64               `json:"total"`
	Page       int                 `json:"page"`
	PageSize   int                 `json:"page_size"`
	TotalPages int                 `json:"total_pages"`
}
