package services

import (
	"encoding/json"

	"namedesk_backend/internal/models"
	"namedesk_backend/internal/repositories"
	"namedesk_backend/internal/services/dto"
	"namedesk_backend/pkg/apperrors"

	"gorm.io/datatypes"
)

type NotificationService interface {
	Send(senderID string, req *dto.SendNotificationRequest) (*dto.NotificationResponse, error)
	GetUserNotifications(userID string, criteria dto.NotificationCriteria) (*dto.NotificationListResponse, error)
	MarkAsRead(userID, notificationID string) error
	MarkAllAsRead(userID string) error
	GetUnreadCount(userID string) (int64, error)
	Delete(notificationID string) error
}

type NotificationServiceImpl struct {
	notificationRepo repositories.NotificationRepository
	userRepo         repositories.UserRepository
}

func NewNotificationService(
	notificationRepo repositories.NotificationRepository,
	userRepo repositories.UserRepository,
) NotificationService {
	return &NotificationServiceImpl{
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
	}
}

// Send creates one notification addressed to every listed recipient. Each
// recipient gets their own unread receipt.
func (s *NotificationServiceImpl) Send(senderID string, req *dto.SendNotificationRequest) (*dto.NotificationResponse, error) {
	recipients, err := s.userRepo.FindByIDs(req.RecipientIDs)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if len(recipients) != len(uniqueStrings(req.RecipientIDs)) {
		return nil, apperrors.NewBadRequestError("One or more recipients do not exist")
	}

	var dataJSON datatypes.JSON
	if req.Data != nil {
		raw, err := json.Marshal(req.Data)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		dataJSON = datatypes.JSON(raw)
	}

	notification := &models.Notification{
		SenderID: senderID,
		Message:  req.Message,
		Data:     dataJSON,
	}

	recipientIDs := make([]string, 0, len(recipients))
	for i := range recipients {
		recipientIDs = append(recipientIDs, recipients[i].ID)
	}

	if err := s.notificationRepo.CreateWithRecipients(notification, recipientIDs); err != nil {
		return nil, apperrors.InternalError(err)
	}

	sender, err := s.userRepo.FindByID(senderID)
	senderName := ""
	if err == nil {
		senderName = sender.Name
	}

	return &dto.NotificationResponse{
		ID:           notification.ID,
		SenderID:     notification.SenderID,
		SenderName:   senderName,
		Message:      notification.Message,
		Data:         req.Data,
		RecipientIDs: recipientIDs,
		IsRead:       false,
		CreatedAt:    notification.CreatedAt,
	}, nil
}

// GetUserNotifications lists the caller's notifications newest-first, each
// carrying the caller's own read state and the sender's display name.
func (s *NotificationServiceImpl) GetUserNotifications(userID string, criteria dto.NotificationCriteria) (*dto.NotificationListResponse, error) {
	repoCriteria := repositories.NotificationCriteria{
		UnreadOnly: criteria.UnreadOnly,
		Page:       criteria.Page,
		PageSize:   criteria.PageSize,
	}

	notifications, total, err := s.notificationRepo.FindUserNotifications(userID, repoCriteria)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	unread, err := s.notificationRepo.GetUnreadCount(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	senderNames, err := s.resolveSenderNames(notifications)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	items := make([]*dto.NotificationResponse, 0, len(notifications))
	for i := range notifications {
		n := &notifications[i]

		var data map[string]interface{}
		if len(n.Data) > 0 {
			if err := json.Unmarshal(n.Data, &data); err != nil {
				data = nil
			}
		}

		items = append(items, &dto.NotificationResponse{
			ID:         n.ID,
			SenderID:   n.SenderID,
			SenderName: senderNames[n.SenderID],
			Message:    n.Message,
			Data:       data,
			IsRead:     n.IsRead,
			ReadAt:     n.ReadAt,
			CreatedAt:  n.CreatedAt,
		})
	}

	return &dto.NotificationListResponse{
		Notifications: items,
		Total:         total,
		UnreadCount:   unread,
		Page:          criteria.Page,
		PageSize:      criteria.PageSize,
		TotalPages:    totalPages(total, criteria.PageSize),
	}, nil
}

// MarkAsRead flips the caller's receipt. A notification that exists but does
// not address the caller is a permission error, not a missing resource.
func (s *NotificationServiceImpl) MarkAsRead(userID, notificationID string) error {
	if _, err := s.notificationRepo.FindByID(notificationID); err != nil {
		if apperrors.Is(err, repositories.ErrNotificationNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}

	isRecipient, err := s.notificationRepo.IsRecipient(notificationID, userID)
	if err != nil {
		return apperrors.InternalError(err)
	}
	if !isRecipient {
		return apperrors.ErrNotARecipient
	}

	if err := s.notificationRepo.MarkAsRead(notificationID, userID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *NotificationServiceImpl) MarkAllAsRead(userID string) error {
	if err := s.notificationRepo.MarkAllAsRead(userID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// Delete removes the notification and every recipient's receipt.
func (s *NotificationServiceImpl) Delete(notificationID string) error {
	if err := s.notificationRepo.DeleteNotification(notificationID); err != nil {
		if apperrors.Is(err, repositories.ErrNotificationNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *NotificationServiceImpl) GetUnreadCount(userID string) (int64, error) {
	count, err := s.notificationRepo.GetUnreadCount(userID)
	if err != nil {
		return 0, apperrors.InternalError(err)
	}
	return count, nil
}

func (s *NotificationServiceImpl) resolveSenderNames(notifications []repositories.UserNotification) (map[string]string, error) {
	ids := make([]string, 0, len(notifications))
	seen := make(map[string]bool, len(notifications))
	for i := range notifications {
		id := notifications[i].SenderID
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}

	users, err := s.userRepo.FindByIDs(ids)
	if err != nil {
		return nil, err
	}

	names := make(map[string]string, len(users))
	for i := range users {
		names[users[i].ID] = users[i].Name
	}
	return names, nil
}

func uniqueStrings(values []string) []string {
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}
