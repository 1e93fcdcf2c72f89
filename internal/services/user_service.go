package services

import (
	"foodboard_backend/internal/datefmt"
	"foodboard_backend/internal/models"
	"foodboard_backend/internal/repositories"
	"foodboard_backend/internal/services/dto"
	"foodboard_backend/pkg/apperrors"
)

type UserService interface {
	GetProfile(userID string) (*dto.UserProfileResponse, error)
	UpdateProfile(userID string, req *dto.UpdateProfileRequest) error
	UpdateLocation(userID string, req *dto.UpdateLocationRequest) error
	UpdateNotificationRadius(userID string, req *dto.UpdateRadiusRequest) error

	// Админские операции
	ListUsers(page, pageSize int) ([]models.User, int64, error)
	SetBlocked(userID string, blocked bool) error
	DeleteUser(userID string) error
}

type UserServiceImpl struct {
	userRepo         repositories.UserRepository
	notificationRepo repositories.NotificationRepository
	defaultRadius    int
}

func NewUserService(
	userRepo repositories.UserRepository,
	notificationRepo repositories.NotificationRepository,
	defaultRadius int,
) UserService {
	return &UserServiceImpl{
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
		defaultRadius:    defaultRadius,
	}
}

func (s *UserServiceImpl) GetProfile(userID string) (*dto.UserProfileResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	radius := s.defaultRadius
	if user.NotificationRadius != nil {
		radius = *user.NotificationRadius
	}

	return &dto.UserProfileResponse{
		ID:                 user.ID,
		Phone:              user.Phone,
		Name:               user.Name,
		Role:               string(user.Role),
		IsBlocked:          user.IsBlocked,
		LastLat:            user.LastLat,
		LastLon:            user.LastLon,
		LastLocationUpdate: user.LastLocationUpdate,
		NotificationRadius: radius,
		CreatedAt:          user.CreatedAt,
	}, nil
}

func (s *UserServiceImpl) UpdateProfile(userID string, req *dto.UpdateProfileRequest) error {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Email != nil {
		user.Email = req.Email
	}

	if err := s.userRepo.Update(user); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// UpdateLocation запоминает последнюю геопозицию пользователя.
// Независимо от жизненного цикла постов.
func (s *UserServiceImpl) UpdateLocation(userID string, req *dto.UpdateLocationRequest) error {
	err := s.userRepo.UpdateLocation(userID, req.Lat, req.Lon, datefmt.Now())
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

// UpdateNotificationRadius сохраняет личный радиус уведомлений.
// 0 - валидное значение, означает "выключено".
func (s *UserServiceImpl) UpdateNotificationRadius(userID string, req *dto.UpdateRadiusRequest) error {
	err := s.userRepo.UpdateNotificationRadius(userID, *req.NotificationRadius)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *UserServiceImpl) ListUsers(page, pageSize int) ([]models.User, int64, error) {
	return s.userRepo.List(page, pageSize)
}

func (s *UserServiceImpl) SetBlocked(userID string, blocked bool) error {
	err := s.userRepo.SetBlocked(userID, blocked)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *UserServiceImpl) DeleteUser(userID string) error {
	// Уведомления удаленного пользователя чистим сразу,
	// посты доживут до фоновой очистки.
	if err := s.notificationRepo.DeleteAllForUser(userID); err != nil {
		return apperrors.InternalError(err)
	}
	if err := s.userRepo.Delete(userID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}
