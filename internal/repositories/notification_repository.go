package repositories

import (
	"errors"
	"time"

	"namedesk_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrNotificationNotFound = errors.New("notification not found")
	ErrNoRecipients         = errors.New("notification has no recipients")
)

// UserNotification is one notification as seen by a single recipient:
// the shared message plus that recipient's own read receipt.
type UserNotification struct {
	models.Notification
	IsRead bool       `json:"is_read"`
	ReadAt *time.Time `json:"read_at,omitempty"`
}

type NotificationCriteria struct {
	UnreadOnly bool
	Page       int
	PageSize   int
}

type NotificationRepository interface {
	// CreateWithRecipients persists one notification document and one
	// receipt row per recipient, atomically.
	CreateWithRecipients(notification *models.Notification, recipientIDs []string) error
	FindByID(id string) (*models.Notification, error)
	FindUserNotifications(userID string, criteria NotificationCriteria) ([]UserNotification, int64, error)

	// IsRecipient reports whether the user is addressed by the notification.
	IsRecipient(notificationID, userID string) (bool, error)

	// MarkAsRead flips only this user's receipt.
	MarkAsRead(notificationID, userID string) error
	MarkAllAsRead(userID string) error
	GetUnreadCount(userID string) (int64, error)
	DeleteNotification(id string) error
}

type NotificationRepositoryImpl struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &NotificationRepositoryImpl{db: db}
}

func (r *NotificationRepositoryImpl) CreateWithRecipients(notification *models.Notification, recipientIDs []string) error {
	if len(recipientIDs) == 0 {
		return ErrNoRecipients
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(notification).Error; err != nil {
			return err
		}

		receipts := make([]models.NotificationRecipient, 0, len(recipientIDs))
		for _, userID := range recipientIDs {
			receipts = append(receipts, models.NotificationRecipient{
				NotificationID: notification.ID,
				UserID:         userID,
			})
		}

		if err := tx.CreateInBatches(receipts, 100).Error; err != nil {
			return err
		}

		notification.Recipients = receipts
		return nil
	})
}

func (r *NotificationRepositoryImpl) FindByID(id string) (*models.Notification, error) {
	var notification models.Notification
	err := r.db.Preload("Recipients").First(&notification, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotificationNotFound
		}
		return nil, err
	}
	return &notification, nil
}

func (r *NotificationRepositoryImpl) FindUserNotifications(userID string, criteria NotificationCriteria) ([]UserNotification, int64, error) {
	base := r.db.Model(&models.Notification{}).
		Joins("JOIN notification_recipients nr ON nr.notification_id = notifications.id").
		Where("nr.user_id = ?", userID)

	if criteria.UnreadOnly {
		base = base.Where("nr.is_read = ?", false)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	limit := criteria.PageSize
	offset := (criteria.Page - 1) * criteria.PageSize

	var results []UserNotification
	err := base.Select("notifications.*, nr.is_read, nr.read_at").
		Order("notifications.created_at DESC").
		Limit(limit).Offset(offset).
		Scan(&results).Error

	return results, total, err
}

func (r *NotificationRepositoryImpl) IsRecipient(notificationID, userID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.NotificationRecipient{}).
		Where("notification_id = ? AND user_id = ?", notificationID, userID).
		Count(&count).Error
	return count > 0, err
}

func (r *NotificationRepositoryImpl) MarkAsRead(notificationID, userID string) error {
	result := r.db.Model(&models.NotificationRecipient{}).
		Where("notification_id = ? AND user_id = ?", notificationID, userID).
		Updates(map[string]interface{}{
			"is_read": true,
			"read_at": time.Now(),
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotificationNotFound
	}
	return nil
}

func (r *NotificationRepositoryImpl) MarkAllAsRead(userID string) error {
	return r.db.Model(&models.NotificationRecipient{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Updates(map[string]interface{}{
			"is_read": true,
			"read_at": time.Now(),
		}).Error
}

func (r *NotificationRepositoryImpl) GetUnreadCount(userID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.NotificationRecipient{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&count).Error
	return count, err
}

func (r *NotificationRepositoryImpl) DeleteNotification(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("notification_id = ?", id).Delete(&models.NotificationRecipient{}).Error; err != nil {
			return err
		}

		result := tx.Where("id = ?", id).Delete(&models.Notification{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotificationNotFound
		}
		return nil
	})
}
