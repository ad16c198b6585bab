package repositories

import (
	"errors"

	"namedesk_backend/internal/models"

	"gorm.io/gorm"
)

var ErrBabyNameNotFound = errors.New("baby name not found")

type BabyNameCriteria struct {
	Gender   string
	Rashi    string
	Zodiac   string
	Search   string
	Page     int
	PageSize int
}

type BabyNameRepository interface {
	Create(name *models.BabyName) error
	CreateBulk(names []models.BabyName) error
	FindByID(id string) (*models.BabyName, error)
	FindAll(criteria BabyNameCriteria) ([]models.BabyName, int64, error)
	UpdateFields(id string, updates map[string]interface{}) error
	Delete(id string) error
}

type BabyNameRepositoryImpl struct {
	db *gorm.DB
}

func NewBabyNameRepository(db *gorm.DB) BabyNameRepository {
	return &BabyNameRepositoryImpl{db: db}
}

func (r *BabyNameRepositoryImpl) Create(name *models.BabyName) error {
	return r.db.Create(name).Error
}

func (r *BabyNameRepositoryImpl) CreateBulk(names []models.BabyName) error {
	if len(names) == 0 {
		return nil
	}
	return r.db.CreateInBatches(names, 500).Error
}

func (r *BabyNameRepositoryImpl) FindByID(id string) (*models.BabyName, error) {
	var name models.BabyName
	err := r.db.First(&name, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBabyNameNotFound
		}
		return nil, err
	}
	return &name, nil
}

func (r *BabyNameRepositoryImpl) FindAll(criteria BabyNameCriteria) ([]models.BabyName, int64, error) {
	query := r.db.Model(&models.BabyName{})

	if criteria.Gender != "" {
		query = query.Where("gender = ?", criteria.Gender)
	}
	if criteria.Rashi != "" {
		query = query.Where("rashi = ?", criteria.Rashi)
	}
	if criteria.Zodiac != "" {
		query = query.Where("zodiac = ?", criteria.Zodiac)
	}
	if criteria.Search != "" {
		pattern := "%" + criteria.Search + "%"
		query = query.Where("name_english ILIKE ? OR meaning ILIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	limit := criteria.PageSize
	offset := (criteria.Page - 1) * criteria.PageSize

	var names []models.BabyName
	err := query.Order("name_english ASC").
		Limit(limit).Offset(offset).
		Find(&names).Error

	return names, total, err
}

func (r *BabyNameRepositoryImpl) UpdateFields(id string, updates map[string]interface{}) error {
	result := r.db.Model(&models.BabyName{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrBabyNameNotFound
	}
	return nil
}

func (r *BabyNameRepositoryImpl) Delete(id string) error {
	result := r.db.Where("id = ?", id).Delete(&models.BabyName{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrBabyNameNotFound
	}
	return nil
}
