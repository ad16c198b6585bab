package repositories

import (
	"namedesk_backend/internal/models"

	"gorm.io/gorm"
)

type PDFRepository interface {
	Create(record *models.PDFRecord) error
	FindByCustomer(customerID string) ([]models.PDFRecord, error)
	FindByUser(userID string) ([]models.PDFRecord, error)
}

type PDFRepositoryImpl struct {
	db *gorm.DB
}

func NewPDFRepository(db *gorm.DB) PDFRepository {
	return &PDFRepositoryImpl{db: db}
}

func (r *PDFRepositoryImpl) Create(record *models.PDFRecord) error {
	return r.db.Create(record).Error
}

func (r *PDFRepositoryImpl) FindByCustomer(customerID string) ([]models.PDFRecord, error) {
	var records []models.PDFRecord
	err := r.db.Where("customer_id = ?", customerID).
		Order("generated_at DESC").
		Find(&records).Error
	return records, err
}

func (r *PDFRepositoryImpl) FindByUser(userID string) ([]models.PDFRecord, error) {
	var records []models.PDFRecord
	err := r.db.Where("user_id = ?", userID).
		Order("generated_at DESC").
		Find(&records).Error
	return records, err
}
