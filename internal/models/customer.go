package models

import "time"

// Customer is one naming-service request. Version backs the optimistic
// concurrency check on updates; whole-record overwrites are not allowed.
type Customer struct {
	BaseModel
	FatherName     string         `gorm:"not null" json:"father_name"`
	MotherName     string         `json:"mother_name"`
	Email          string         `json:"email"`
	WhatsappNumber string         `json:"whatsapp_number"`
	BabyGender     string         `gorm:"type:varchar(10)" json:"baby_gender"`
	Status         CustomerStatus `gorm:"type:varchar(20);not null;default:'new_request';index" json:"status"`
	PaymentDate    *time.Time     `json:"payment_date,omitempty"`
	Note           string         `gorm:"type:text" json:"note"`
	AssignedToID   *string        `gorm:"index" json:"assigned_to_id,omitempty"`
	Version        int64          `gorm:"not null;default:1" json:"version"`

	AssignedTo *User       `gorm:"foreignKey:AssignedToID" json:"-"`
	PDFRecords []PDFRecord `gorm:"foreignKey:CustomerID" json:"-"`
}
