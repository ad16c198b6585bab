package models

import "time"

// PDFRecord tracks one generated report for a customer. Rendering and
// storage of the file itself happen elsewhere; this is metadata only.
type PDFRecord struct {
	ID          string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	CustomerID  string    `gorm:"index;not null" json:"customer_id"`
	UserID      string    `gorm:"index;not null" json:"user_id"`
	FileName    string    `gorm:"not null" json:"file_name"`
	GeneratedAt time.Time `gorm:"default:now()" json:"generated_at"`
}
