package models

import (
	"time"

	"gorm.io/datatypes"
)

// Notification is one message addressed to a set of recipients. Read state
// lives per recipient on NotificationRecipient, so one recipient marking a
// message read never flips it for the others.
type Notification struct {
	BaseModel
	SenderID string         `gorm:"not null;index" json:"sender_id"`
	Message  string         `gorm:"not null" json:"message"`
	Data     datatypes.JSON `gorm:"type:jsonb" json:"data,omitempty"`

	Sender     *User                   `gorm:"foreignKey:SenderID" json:"-"`
	Recipients []NotificationRecipient `gorm:"foreignKey:NotificationID" json:"recipients,omitempty"`
}

// NotificationRecipient is the per-(notification, recipient) read receipt.
type NotificationRecipient struct {
	ID             string     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	NotificationID string     `gorm:"index;not null;uniqueIndex:idx_notification_user" json:"notification_id"`
	UserID         string     `gorm:"index;not null;uniqueIndex:idx_notification_user" json:"user_id"`
	IsRead         bool       `gorm:"default:false" json:"is_read"`
	ReadAt         *time.Time `json:"read_at,omitempty"`
}
