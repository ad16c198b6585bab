package services

import (
	"namedesk_backend/internal/auth"
	"namedesk_backend/internal/models"
	"namedesk_backend/internal/repositories"
	"namedesk_backend/internal/services/dto"
	"namedesk_backend/pkg/apperrors"
)

type AuthService interface {
	Login(req *dto.LoginRequest) (*dto.LoginResponse, error)
	GetCurrentUser(userID string) (*dto.UserDTO, error)
	ChangePassword(userID string, req *dto.ChangePasswordRequest) error
}

type AuthServiceImpl struct {
	userRepo repositories.UserRepository
}

func NewAuthService(userRepo repositories.UserRepository) AuthService {
	return &AuthServiceImpl{userRepo: userRepo}
}

// Login authenticates by username and issues a session token. Unknown
// username and wrong password produce the same error.
func (s *AuthServiceImpl) Login(req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByUsername(req.Username)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.LoginResponse{
		Token: token,
		User:  *buildUserDTO(user),
	}, nil
}

func (s *AuthServiceImpl) GetCurrentUser(userID string) (*dto.UserDTO, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return buildUserDTO(user), nil
}

func (s *AuthServiceImpl) ChangePassword(userID string, req *dto.ChangePasswordRequest) error {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.CurrentPassword, user.PasswordHash) {
		return apperrors.ErrInvalidCredentials
	}

	if err := auth.ValidatePassword(req.NewPassword); err != nil {
		return apperrors.ErrWeakPassword
	}

	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return apperrors.InternalError(err)
	}

	if err := s.userRepo.UpdatePassword(userID, hash); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func buildUserDTO(user *models.User) *dto.UserDTO {
	return &dto.UserDTO{
		ID:           user.ID,
		Username:     user.Username,
		Name:         user.Name,
		Email:        user.Email,
		Phone:        user.Phone,
		Role:         user.Role,
		LeaveBalance: user.LeaveBalance,
		CreatedAt:    user.CreatedAt,
	}
}
