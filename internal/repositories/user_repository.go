package repositories

import (
	"errors"

	"foodboard_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
)

type UserRepository interface {
	Create(user *models.User) error
	FindByID(id string) (*models.User, error)
	FindByPhone(phone string) (*models.User, error)
	Update(user *models.User) error
	UpdateLocation(id string, lat, lon float64, updatedAt string) error
	UpdateNotificationRadius(id string, radius int) error
	SetBlocked(id string, blocked bool) error
	Delete(id string) error
	List(page, pageSize int) ([]models.User, int64, error)

	// FindNeighborCandidates возвращает кандидатов на уведомление о новом
	// посте: все кроме автора, с полной геопозицией, не заблокированные.
	// Фильтр по личному радиусу остается за сервисом.
	FindNeighborCandidates(excludeUserID string) ([]models.User, error)
}

type UserRepositoryImpl struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &UserRepositoryImpl{db: db}
}

func (r *UserRepositoryImpl) Create(user *models.User) error {
	err := r.db.Create(user).Error
	if err != nil && errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrUserAlreadyExists
	}
	return err
}

func (r *UserRepositoryImpl) FindByID(id string) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindByPhone(phone string) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "phone = ?", phone).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) Update(user *models.User) error {
	return r.db.Save(user).Error
}

func (r *UserRepositoryImpl) UpdateLocation(id string, lat, lon float64, updatedAt string) error {
	result := r.db.Model(&models.User{}).Where("id = ?", id).Updates(map[string]interface{}{
		"last_lat":             lat,
		"last_lon":             lon,
		"last_location_update": updatedAt,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepositoryImpl) UpdateNotificationRadius(id string, radius int) error {
	result := r.db.Model(&models.User{}).Where("id = ?", id).Update("notification_radius", radius)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepositoryImpl) SetBlocked(id string, blocked bool) error {
	result := r.db.Model(&models.User{}).Where("id = ?", id).Update("is_blocked", blocked)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepositoryImpl) Delete(id string) error {
	return r.db.Delete(&models.User{}, "id = ?", id).Error
}

func (r *UserRepositoryImpl) List(page, pageSize int) ([]models.User, int64, error) {
	var users []models.User
	var total int64

	if err := r.db.Model(&models.User{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset, limit := normalizePaging(page, pageSize)
	if err := r.db.Order("created_at DESC").Offset(offset).Limit(limit).Find(&users).Error; err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

func (r *UserRepositoryImpl) FindNeighborCandidates(excludeUserID string) ([]models.User, error) {
	var users []models.User
	err := r.db.
		Select("id", "name", "phone", "last_lat", "last_lon", "notification_radius").
		Where("id <> ?", excludeUserID).
		Where("last_lat IS NOT NULL").
		Where("last_lon IS NOT NULL").
		Where("is_blocked = ?", false).
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}
