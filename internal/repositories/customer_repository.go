package repositories

import (
	"errors"

	"namedesk_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrCustomerNotFound = errors.New("customer not found")
	ErrVersionMismatch  = errors.New("customer version mismatch")
	ErrStatusMismatch   = errors.New("customer status mismatch")
)

type CustomerCriteria struct {
	Status       models.CustomerStatus
	AssignedToID string
	Page         int
	PageSize     int
}

type CustomerRepository interface {
	Create(customer *models.Customer) error
	FindByID(id string) (*models.Customer, error)
	FindAll(criteria CustomerCriteria) ([]models.Customer, int64, error)

	// UpdateFields applies targeted field updates guarded by the version the
	// client last read. A stale version means a concurrent writer got there
	// first; the caller must reload.
	UpdateFields(id string, expectedVersion int64, updates map[string]interface{}) error

	// UpdateStatus moves the customer from one status to another as a single
	// conditional statement. Nothing is written when the row is no longer in
	// the expected status.
	UpdateStatus(id string, from, to models.CustomerStatus) error

	Delete(id string) error
}

type CustomerRepositoryImpl struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) CustomerRepository {
	return &CustomerRepositoryImpl{db: db}
}

func (r *CustomerRepositoryImpl) Create(customer *models.Customer) error {
	return r.db.Create(customer).Error
}

func (r *CustomerRepositoryImpl) FindByID(id string) (*models.Customer, error) {
	var customer models.Customer
	err := r.db.First(&customer, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}
	return &customer, nil
}

func (r *CustomerRepositoryImpl) FindAll(criteria CustomerCriteria) ([]models.Customer, int64, error) {
	query := r.db.Model(&models.Customer{})

	if criteria.Status != "" {
		query = query.Where("status = ?", criteria.Status)
	}
	if criteria.AssignedToID != "" {
		query = query.Where("assigned_to_id = ?", criteria.AssignedToID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	limit := criteria.PageSize
	offset := (criteria.Page - 1) * criteria.PageSize

	var customers []models.Customer
	err := query.Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&customers).Error

	return customers, total, err
}

func (r *CustomerRepositoryImpl) UpdateFields(id string, expectedVersion int64, updates map[string]interface{}) error {
	updates["version"] = gorm.Expr("version + 1")

	result := r.db.Model(&models.Customer{}).
		Where("id = ? AND version = ?", id, expectedVersion).
		Updates(updates)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		// Distinguish a missing row from a lost race
		var count int64
		if err := r.db.Model(&models.Customer{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrCustomerNotFound
		}
		return ErrVersionMismatch
	}
	return nil
}

func (r *CustomerRepositoryImpl) UpdateStatus(id string, from, to models.CustomerStatus) error {
	result := r.db.Model(&models.Customer{}).
		Where("id = ? AND status = ?", id, from).
		Updates(map[string]interface{}{
			"status":  to,
			"version": gorm.Expr("version + 1"),
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.Model(&models.Customer{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrCustomerNotFound
		}
		return ErrStatusMismatch
	}
	return nil
}

func (r *CustomerRepositoryImpl) Delete(id string) error {
	result := r.db.Where("id = ?", id).Delete(&models.Customer{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCustomerNotFound
	}
	return nil
}
