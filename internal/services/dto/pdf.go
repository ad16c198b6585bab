package dto

import "time"

type CreatePDFRecordRequest struct {
	CustomerID string `json:"customer_id" validate:"required"`
	FileName   string `json:"file_name" validate:"required,max=255"`
}

type PDFRecordResponse struct {
	ID          string    `json:"id"`
	CustomerID  string    `json:"customer_id"`
	UserID      string    `json:"user_id"`
	FileName    string    `json:"file_name"`
	GeneratedAt time.Time `json:"generated_at"`
}
