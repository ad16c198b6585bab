package repositories

import (
	"errors"

	"namedesk_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrTaskNotFound       = errors.New("task not found")
	ErrTaskStatusMismatch = errors.New("task status mismatch")
)

type TaskCriteria struct {
	AssignedToID string
	Status       models.TaskStatus
	Page         int
	PageSize     int
}

type TaskRepository interface {
	Create(task *models.Task) error
	FindByID(id string) (*models.Task, error)
	FindAll(criteria TaskCriteria) ([]models.Task, int64, error)
	UpdateFields(id string, updates map[string]interface{}) error
	UpdateStatus(id string, from, to models.TaskStatus) error
	Delete(id string) error
}

type TaskRepositoryImpl struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &TaskRepositoryImpl{db: db}
}

func (r *TaskRepositoryImpl) Create(task *models.Task) error {
	return r.db.Create(task).Error
}

func (r *TaskRepositoryImpl) FindByID(id string) (*models.Task, error) {
	var task models.Task
	err := r.db.First(&task, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}
	return &task, nil
}

func (r *TaskRepositoryImpl) FindAll(criteria TaskCriteria) ([]models.Task, int64, error) {
	query := r.db.Model(&models.Task{})

	if criteria.AssignedToID != "" {
		query = query.Where("assigned_to_id = ?", criteria.AssignedToID)
	}
	if criteria.Status != "" {
		query = query.Where("status = ?", criteria.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	limit := criteria.PageSize
	offset := (criteria.Page - 1) * criteria.PageSize

	var tasks []models.Task
	err := query.Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&tasks).Error

	return tasks, total, err
}

func (r *TaskRepositoryImpl) UpdateFields(id string, updates map[string]interface{}) error {
	result := r.db.Model(&models.Task{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTaskNotFound
	}
	return nil
}

func (r *TaskRepositoryImpl) UpdateStatus(id string, from, to models.TaskStatus) error {
	result := r.db.Model(&models.Task{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.Model(&models.Task{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrTaskNotFound
		}
		return ErrTaskStatusMismatch
	}
	return nil
}

func (r *TaskRepositoryImpl) Delete(id string) error {
	result := r.db.Where("id = ?", id).Delete(&models.Task{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTaskNotFound
	}
	return nil
}
