package services

import (
	"namedesk_backend/internal/auth"
	"namedesk_backend/internal/email"
	"namedesk_backend/internal/logger"
	"namedesk_backend/internal/models"
	"namedesk_backend/internal/repositories"
	"namedesk_backend/internal/services/dto"
	"namedesk_backend/pkg/apperrors"
)

type UserService interface {
	CreateEmployee(req *dto.CreateEmployeeRequest) (*dto.UserDTO, error)
	GetEmployee(id string) (*dto.UserDTO, error)
	ListEmployees(page, limit int) (*dto.EmployeeListResponse, error)
	UpdateEmployee(id string, req *dto.UpdateEmployeeRequest) (*dto.UserDTO, error)
	DeleteEmployee(id string) error
}

type UserServiceImpl struct {
	userRepo      repositories.UserRepository
	emailProvider email.Provider
}

func NewUserService(userRepo repositories.UserRepository, emailProvider email.Provider) UserService {
	return &UserServiceImpl{
		userRepo:      userRepo,
		emailProvider: emailProvider,
	}
}

func (s *UserServiceImpl) CreateEmployee(req *dto.CreateEmployeeRequest) (*dto.UserDTO, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.ErrWeakPassword
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Username:     req.Username,
		PasswordHash: hash,
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Role:         models.UserRoleEmployee,
	}

	if err := s.userRepo.Create(user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			if _, lookupErr := s.userRepo.FindByUsername(req.Username); lookupErr == nil {
				return nil, apperrors.ErrUsernameAlreadyExists
			}
			if _, lookupErr := s.userRepo.FindByEmail(req.Email); lookupErr == nil {
				return nil, apperrors.ErrEmailAlreadyExists
			}
			return nil, apperrors.ErrAlreadyExists(err)
		}
		return nil, apperrors.InternalError(err)
	}

	// Best-effort; a mail outage must not block onboarding.
	if err := s.emailProvider.SendWelcome(user.Email, user.Name, user.Username); err != nil {
		logger.WithError(err).Warn("failed to send welcome email", "user_id", user.ID)
	}

	return buildUserDTO(user), nil
}

func (s *UserServiceImpl) GetEmployee(id string) (*dto.UserDTO, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	// Admin accounts are invisible in the directory.
	if user.IsAdmin() {
		return nil, apperrors.ErrNotFound(repositories.ErrUserNotFound)
	}
	return buildUserDTO(user), nil
}

func (s *UserServiceImpl) ListEmployees(page, limit int) (*dto.EmployeeListResponse, error) {
	total, err := s.userRepo.CountEmployees()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	offset := (page - 1) * limit
	users, err := s.userRepo.FindEmployees(limit, offset)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	employees := make([]dto.UserDTO, 0, len(users))
	for i := range users {
		employees = append(employees, *buildUserDTO(&users[i]))
	}

	return &dto.EmployeeListResponse{
		Employees:      employees,
		CurrentPage:    page,
		TotalPages:     totalPages(total, limit),
		TotalEmployees: total,
	}, nil
}

func (s *UserServiceImpl) UpdateEmployee(id string, req *dto.UpdateEmployeeRequest) (*dto.UserDTO, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if user.IsAdmin() {
		return nil, apperrors.ErrNotFound(repositories.ErrUserNotFound)
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}

	profileChanged := req.Name != nil || req.Email != nil || req.Phone != nil
	if !profileChanged && req.LeaveBalance == nil {
		return nil, apperrors.NewBadRequestError("No fields to update")
	}

	if profileChanged {
		if err := s.userRepo.Update(user); err != nil {
			if apperrors.Is(err, repositories.ErrUserNotFound) {
				return nil, apperrors.ErrNotFound(err)
			}
			return nil, apperrors.InternalError(err)
		}
	}
	if req.LeaveBalance != nil {
		if err := s.userRepo.UpdateLeaveBalance(id, *req.LeaveBalance); err != nil {
			if apperrors.Is(err, repositories.ErrUserNotFound) {
				return nil, apperrors.ErrNotFound(err)
			}
			return nil, apperrors.InternalError(err)
		}
		user.LeaveBalance = *req.LeaveBalance
	}

	return buildUserDTO(user), nil
}

func (s *UserServiceImpl) DeleteEmployee(id string) error {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	if user.IsAdmin() {
		return apperrors.ErrNotFound(repositories.ErrUserNotFound)
	}

	if err := s.userRepo.Delete(id); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// totalPages is ceil(total/limit); zero items mean zero pages.
func totalPages(total int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}
