package services

import (
	"fmt"

	"namedesk_backend/internal/email"
	"namedesk_backend/internal/logger"
	"namedesk_backend/internal/models"
	"namedesk_backend/internal/repositories"
	"namedesk_backend/internal/services/dto"
	"namedesk_backend/pkg/apperrors"
)

type LeaveService interface {
	Create(userID string, req *dto.CreateLeaveRequest) (*dto.LeaveResponse, error)
	Get(id string) (*dto.LeaveResponse, error)
	ListForUser(userID string, page, limit int) (*dto.LeaveListResponse, error)
	ListAll(status models.LeaveStatus, page, limit int) (*dto.LeaveListResponse, error)
	Decide(adminID, id string, req *dto.DecideLeaveRequest) (*dto.LeaveResponse, error)
}

type LeaveServiceImpl struct {
	leaveRepo        repositories.LeaveRepository
	userRepo         repositories.UserRepository
	notificationRepo repositories.NotificationRepository
	emailProvider    email.Provider
}

func NewLeaveService(
	leaveRepo repositories.LeaveRepository,
	userRepo repositories.UserRepository,
	notificationRepo repositories.NotificationRepository,
	emailProvider email.Provider,
) LeaveService {
	return &LeaveServiceImpl{
		leaveRepo:        leaveRepo,
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
		emailProvider:    emailProvider,
	}
}

func (s *LeaveServiceImpl) Create(userID string, req *dto.CreateLeaveRequest) (*dto.LeaveResponse, error) {
	leave := &models.LeaveRequest{
		UserID:   userID,
		Type:     req.Type,
		Reason:   req.Reason,
		DateFrom: req.DateFrom,
		DateTo:   req.DateTo,
		Status:   models.LeaveStatusPending,
	}

	days := leave.Days()
	if days == 0 {
		return nil, apperrors.NewBadRequestError("date_to must not be before date_from")
	}

	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if user.LeaveBalance < days {
		return nil, apperrors.ErrInsufficientLeaveBalance
	}

	if err := s.leaveRepo.Create(leave); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return buildLeaveResponse(leave), nil
}

func (s *LeaveServiceImpl) Get(id string) (*dto.LeaveResponse, error) {
	leave, err := s.leaveRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrLeaveNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return buildLeaveResponse(leave), nil
}

func (s *LeaveServiceImpl) ListForUser(userID string, page, limit int) (*dto.LeaveListResponse, error) {
	return s.list(repositories.LeaveCriteria{
		UserID:   userID,
		Page:     page,
		PageSize: limit,
	})
}

func (s *LeaveServiceImpl) ListAll(status models.LeaveStatus, page, limit int) (*dto.LeaveListResponse, error) {
	return s.list(repositories.LeaveCriteria{
		Status:   status,
		Page:     page,
		PageSize: limit,
	})
}

func (s *LeaveServiceImpl) list(criteria repositories.LeaveCriteria) (*dto.LeaveListResponse, error) {
	leaves, total, err := s.leaveRepo.FindAll(criteria)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	items := make([]*dto.LeaveResponse, 0, len(leaves))
	for i := range leaves {
		items = append(items, buildLeaveResponse(&leaves[i]))
	}

	return &dto.LeaveListResponse{
		Requests:   items,
		Total:      total,
		Page:       criteria.Page,
		PageSize:   criteria.PageSize,
		TotalPages: totalPages(total, criteria.PageSize),
	}, nil
}

// Decide approves or rejects a pending request. Approval debits the
// employee's balance in the same transaction; a request that already left
// the pending state cannot be decided again.
func (s *LeaveServiceImpl) Decide(adminID, id string, req *dto.DecideLeaveRequest) (*dto.LeaveResponse, error) {
	leave, err := s.leaveRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrLeaveNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	var decided *models.LeaveRequest
	switch req.Status {
	case models.LeaveStatusApproved:
		decided, err = s.leaveRepo.Approve(id, adminID, leave.Days())
	case models.LeaveStatusRejected:
		decided, err = s.leaveRepo.Reject(id, adminID, req.RejectReason)
	default:
		return nil, apperrors.NewBadRequestError("Decision must be approved or rejected")
	}

	if err != nil {
		switch {
		case apperrors.Is(err, repositories.ErrLeaveNotFound):
			return nil, apperrors.ErrNotFound(err)
		case apperrors.Is(err, repositories.ErrLeaveAlreadyDecided):
			return nil, apperrors.ErrLeaveAlreadyDecided
		case apperrors.Is(err, repositories.ErrInsufficientBalance):
			return nil, apperrors.ErrInsufficientLeaveBalance
		default:
			return nil, apperrors.InternalError(err)
		}
	}

	s.notifyDecision(decided)

	return buildLeaveResponse(decided), nil
}

// notifyDecision tells the requester in-app and by email. Best-effort only:
// a notification failure never undoes the decision.
func (s *LeaveServiceImpl) notifyDecision(leave *models.LeaveRequest) {
	user, err := s.userRepo.FindByID(leave.UserID)
	if err != nil {
		logger.WithError(err).Warn("failed to load user for leave decision notice", "user_id", leave.UserID)
		return
	}

	if leave.DecidedByID != nil {
		message := fmt.Sprintf("Your leave request for %s to %s has been %s", leave.DateFrom, leave.DateTo, leave.Status)
		if leave.Status == models.LeaveStatusRejected && leave.RejectReason != "" {
			message += ": " + leave.RejectReason
		}
		notification := &models.Notification{
			SenderID: *leave.DecidedByID,
			Message:  message,
		}
		if err := s.notificationRepo.CreateWithRecipients(notification, []string{leave.UserID}); err != nil {
			logger.WithError(err).Warn("failed to create leave decision notification", "user_id", user.ID)
		}
	}

	err = s.emailProvider.SendLeaveDecision(user.Email, user.Name, string(leave.Status), leave.RejectReason)
	if err != nil {
		logger.WithError(err).Warn("failed to send leave decision email", "user_id", user.ID)
	}
}

func buildLeaveResponse(leave *models.LeaveRequest) *dto.LeaveResponse {
	return &dto.LeaveResponse{
		ID:           leave.ID,
		UserID:       leave.UserID,
		Type:         leave.Type,
		Reason:       leave.Reason,
		DateFrom:     leave.DateFrom,
		DateTo:       leave.DateTo,
		Days:         leave.Days(),
		Status:       leave.Status,
		DecidedAt:    leave.DecidedAt,
		DecidedByID:  leave.DecidedByID,
		RejectReason: leave.RejectReason,
		CreatedAt:    leave.CreatedAt,
	}
}
