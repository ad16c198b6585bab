package repositories

import (
	"errors"
	"time"

	"namedesk_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrLeaveNotFound       = errors.New("leave request not found")
	ErrLeaveAlreadyDecided = errors.New("leave request already decided")
	ErrInsufficientBalance = errors.New("insufficient leave balance")
)

type LeaveCriteria struct {
	UserID   string
	Status   models.LeaveStatus
	Page     int
	PageSize int
}

type LeaveRepository interface {
	Create(leave *models.LeaveRequest) error
	FindByID(id string) (*models.LeaveRequest, error)
	FindAll(criteria LeaveCriteria) ([]models.LeaveRequest, int64, error)

	// Approve decides the request and debits the employee's balance in one
	// transaction. Both writes are conditional: the request must still be
	// pending and the balance must cover the day count.
	Approve(id, decidedByID string, days int) (*models.LeaveRequest, error)

	// Reject decides the request; conditional on the pending state.
	Reject(id, decidedByID, rejectReason string) (*models.LeaveRequest, error)
}

type LeaveRepositoryImpl struct {
	db *gorm.DB
}

func NewLeaveRepository(db *gorm.DB) LeaveRepository {
	return &LeaveRepositoryImpl{db: db}
}

func (r *LeaveRepositoryImpl) Create(leave *models.LeaveRequest) error {
	return r.db.Create(leave).Error
}

func (r *LeaveRepositoryImpl) FindByID(id string) (*models.LeaveRequest, error) {
	var leave models.LeaveRequest
	err := r.db.First(&leave, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLeaveNotFound
		}
		return nil, err
	}
	return &leave, nil
}

func (r *LeaveRepositoryImpl) FindAll(criteria LeaveCriteria) ([]models.LeaveRequest, int64, error) {
	query := r.db.Model(&models.LeaveRequest{})

	if criteria.UserID != "" {
		query = query.Where("user_id = ?", criteria.UserID)
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

	var leaves []models.LeaveRequest
	err := query.Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&leaves).Error

	return leaves, total, err
}

func (r *LeaveRepositoryImpl) Approve(id, decidedByID string, days int) (*models.LeaveRequest, error) {
	var leave models.LeaveRequest

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&leave, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrLeaveNotFound
			}
			return err
		}

		// Debit first; the condition keeps the balance from going negative
		// even under a concurrent approval.
		debit := tx.Model(&models.User{}).
			Where("id = ? AND leave_balance >= ?", leave.UserID, days).
			Update("leave_balance", gorm.Expr("leave_balance - ?", days))
		if debit.Error != nil {
			return debit.Error
		}
		if debit.RowsAffected == 0 {
			return ErrInsufficientBalance
		}

		now := time.Now()
		decide := tx.Model(&models.LeaveRequest{}).
			Where("id = ? AND status = ?", id, models.LeaveStatusPending).
			Updates(map[string]interface{}{
				"status":        models.LeaveStatusApproved,
				"decided_at":    now,
				"decided_by_id": decidedByID,
			})
		if decide.Error != nil {
			return decide.Error
		}
		if decide.RowsAffected == 0 {
			// Rolls back the debit
			return ErrLeaveAlreadyDecided
		}

		leave.Status = models.LeaveStatusApproved
		leave.DecidedAt = &now
		leave.DecidedByID = &decidedByID
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &leave, nil
}

func (r *LeaveRepositoryImpl) Reject(id, decidedByID, rejectReason string) (*models.LeaveRequest, error) {
	var leave models.LeaveRequest

	if err := r.db.First(&leave, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLeaveNotFound
		}
		return nil, err
	}

	now := time.Now()
	result := r.db.Model(&models.LeaveRequest{}).
		Where("id = ? AND status = ?", id, models.LeaveStatusPending).
		Updates(map[string]interface{}{
			"status":        models.LeaveStatusRejected,
			"decided_at":    now,
			"decided_by_id": decidedByID,
			"reject_reason": rejectReason,
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrLeaveAlreadyDecided
	}

	leave.Status = models.LeaveStatusRejected
	leave.DecidedAt = &now
	leave.DecidedByID = &decidedByID
	leave.RejectReason = rejectReason
	return &leave, nil
}
