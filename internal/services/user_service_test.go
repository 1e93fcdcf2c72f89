package services

import (
	"testing"

	"foodboard_backend/internal/datefmt"
	"foodboard_backend/internal/models"
	"foodboard_backend/internal/repositories"
	"foodboard_backend/internal/services/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newUserService(db *gorm.DB) UserService {
	return NewUserService(
		repositories.NewUserRepository(db),
		repositories.NewNotificationRepository(db),
		defaultTestRadius,
	)
}

func TestUserService_UpdateLocation(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "user", nil, nil, nil, false)
	svc := newUserService(db)

	err := svc.UpdateLocation(user.ID, &dto.UpdateLocationRequest{Lat: 53.2211, Lon: 50.6257})
	require.NoError(t, err)

	profile, err := svc.GetProfile(user.ID)
	require.NoError(t, err)
	require.NotNil(t, profile.LastLat)
	require.NotNil(t, profile.LastLon)
	assert.InDelta(t, 53.2211, *profile.LastLat, 1e-9)
	assert.InDelta(t, 50.6257, *profile.LastLon, 1e-9)

	require.NotNil(t, profile.LastLocationUpdate)
	_, err = datefmt.Parse(*profile.LastLocationUpdate)
	assert.NoError(t, err, "временная метка хранится в формате доски")
}

// Пока пользователь не выбрал радиус, профиль показывает значение по умолчанию.
func TestUserService_RadiusFallback(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "user", nil, nil, nil, false)
	svc := newUserService(db)

	profile, err := svc.GetProfile(user.ID)
	require.NoError(t, err)
	assert.Equal(t, defaultTestRadius, profile.NotificationRadius)

	err = svc.UpdateNotificationRadius(user.ID, &dto.UpdateRadiusRequest{NotificationRadius: ptrI(0)})
	require.NoError(t, err)

	profile, err = svc.GetProfile(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, profile.NotificationRadius, "выбранный ноль не подменяется дефолтом")
}

func TestUserService_UpdateProfile(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "старое имя", nil, nil, nil, false)
	svc := newUserService(db)

	newName := "новое имя"
	email := "user@example.com"
	err := svc.UpdateProfile(user.ID, &dto.UpdateProfileRequest{Name: &newName, Email: &email})
	require.NoError(t, err)

	var stored models.User
	require.NoError(t, db.First(&stored, "id = ?", user.ID).Error)
	assert.Equal(t, newName, stored.Name)
	require.NotNil(t, stored.Email)
	assert.Equal(t, email, *stored.Email)

	// Не заданные поля не трогаются
	err = svc.UpdateProfile(user.ID, &dto.UpdateProfileRequest{})
	require.NoError(t, err)
	require.NoError(t, db.First(&stored, "id = ?", user.ID).Error)
	assert.Equal(t, newName, stored.Name)
}

func TestUserService_SetBlocked(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "user", nil, nil, nil, false)
	svc := newUserService(db)

	require.NoError(t, svc.SetBlocked(user.ID, true))

	var stored models.User
	require.NoError(t, db.First(&stored, "id = ?", user.ID).Error)
	assert.True(t, stored.IsBlocked)

	err := svc.SetBlocked(uuid.NewString(), true)
	assert.Error(t, err)
}

func TestUserService_DeleteUser_RemovesNotifications(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "user", nil, nil, nil, false)
	svc := newUserService(db)

	notification := &models.Notification{
		BaseModel: models.BaseModel{ID: uuid.NewString(), CreatedAt: datefmt.Now()},
		UserID:    user.ID,
		PostID:    uuid.NewString(),
		PostTitle: "t",
		Distance:  100,
	}
	require.NoError(t, db.Create(notification).Error)

	require.NoError(t, svc.DeleteUser(user.ID))

	var users, notifications int64
	db.Model(&models.User{}).Count(&users)
	db.Model(&models.Notification{}).Count(&notifications)
	assert.Equal(t, int64(0), users)
	assert.Equal(t, int64(0), notifications)
}
