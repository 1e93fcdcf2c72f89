package services

import (
	"foodboard_backend/internal/auth"
	"foodboard_backend/internal/datefmt"
	"foodboard_backend/internal/models"
	"foodboard_backend/internal/repositories"
	"foodboard_backend/internal/services/dto"
	"foodboard_backend/pkg/apperrors"

	"github.com/google/uuid"
)

type AuthService interface {
	Register(req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(req *dto.LoginRequest) (*dto.AuthResponse, error)
}

type AuthServiceImpl struct {
	userRepo repositories.UserRepository
}

func NewAuthService(userRepo repositories.UserRepository) AuthService {
	return &AuthServiceImpl{userRepo: userRepo}
}

// Register - регистрация нового пользователя по телефону
func (s *AuthServiceImpl) Register(req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.ErrWeakPassword
	}

	// Телефон - логин, дубликаты запрещены
	if _, err := s.userRepo.FindByPhone(req.Phone); err == nil {
		return nil, apperrors.ErrPhoneAlreadyExists
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		BaseModel: models.BaseModel{
			ID:        uuid.NewString(),
			CreatedAt: datefmt.Now(),
		},
		Phone:        req.Phone,
		PasswordHash: hash,
		Name:         req.Name,
		Role:         models.UserRoleUser,
		Verified:     true,
	}

	if err := s.userRepo.Create(user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrPhoneAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	return s.buildAuthResponse(user)
}

// Login - аутентификация пользователя
func (s *AuthServiceImpl) Login(req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByPhone(req.Phone)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	if user.IsBlocked {
		return nil, apperrors.ErrUserBlocked
	}

	return s.buildAuthResponse(user)
}

func (s *AuthServiceImpl) buildAuthResponse(user *models.User) (*dto.AuthResponse, error) {
	token, err := auth.GenerateToken(user.ID, user.Phone, string(user.Role))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.AuthResponse{
		User: dto.AuthUser{
			ID:        user.ID,
			Phone:     user.Phone,
			Name:      user.Name,
			Role:      string(user.Role),
			IsBlocked: user.IsBlocked,
		},
		Token: token,
	}, nil
}
