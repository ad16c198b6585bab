package dto

import "time"

type SendNotificationRequest struct {
	Message      string                 `json:"message" validate:"required,max=2000"`
	RecipientIDs []string               `json:"recipient_ids" validate:"required,min=1,dive,required"`
	Data         map[string]interface{} `json:"data"`
}

type NotificationResponse struct {
	ID         string                 `json:"id"`
	SenderID   string                 `json:"sender_id"`
	SenderName string                 `json:"sender_name"`
	Message    string                 `json:"message"`
	Data       map[string]interface{} `json:"data,omitempty"`
	// RecipientIDs is set on the create response only; list entries are
	// scoped to the caller and omit it.
	RecipientIDs []string   `json:"recipient_ids,omitempty"`
	IsRead       bool       `json:"is_read"`
	ReadAt       *time.Time `json:"read_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

type NotificationListResponse struct {
	Notifications []*NotificationResponse `json:"notifications"`
	Total         int64                   `json:"total"`
	UnreadCount   int64                   `json:"unread_count"`
	Page          int                     `json:"page"`
	PageSize      int                     `json:"page_size"`
	TotalPages    int                     `json:"total_pages"`
}

type NotificationCriteria struct {
	UnreadOnly bool
	Page       int
	PageSize   int
}
