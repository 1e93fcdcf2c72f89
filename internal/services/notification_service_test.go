package services

import (
	"testing"

	"foodboard_backend/internal/datefmt"
	"foodboard_backend/internal/models"
	"foodboard_backend/internal/repositories"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func createTestNotification(t *testing.T, db *gorm.DB, userID string, isRead bool) *models.Notification {
	t.Helper()
	n := &models.Notification{
		BaseModel: models.BaseModel{ID: uuid.NewString(), CreatedAt: datefmt.Now()},
		UserID:    userID,
		PostID:    uuid.NewString(),
		PostTitle: "Пост",
		Distance:  500,
		IsRead:    isRead,
	}
	require.NoError(t, db.Create(n).Error)
	return n
}

func TestNotificationService_UnreadCount(t *testing.T) {
	db := newTestDB(t)
	owner := createTestUser(t, db, "owner", nil, nil, nil, false)
	other := createTestUser(t, db, "other", nil, nil, nil, false)
	svc := NewNotificationService(repositories.NewNotificationRepository(db))

	createTestNotification(t, db, owner.ID, false)
	createTestNotification(t, db, owner.ID, false)
	createTestNotification(t, db, owner.ID, true)
	createTestNotification(t, db, other.ID, false)

	count, err := svc.GetUnreadCount(owner.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestNotificationService_MarkAsRead_OwnerOnly(t *testing.T) {
	db := newTestDB(t)
	owner := createTestUser(t, db, "owner", nil, nil, nil, false)
	stranger := createTestUser(t, db, "stranger", nil, nil, nil, false)
	svc := NewNotificationService(repositories.NewNotificationRepository(db))

	n := createTestNotification(t, db, owner.ID, false)

	err := svc.MarkAsRead(stranger.ID, n.ID)
	assert.Error(t, err, "чужое уведомление пометить нельзя")

	require.NoError(t, svc.MarkAsRead(owner.ID, n.ID))

	count, err := svc.GetUnreadCount(owner.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestNotificationService_MarkAllAsRead(t *testing.T) {
	db := newTestDB(t)
	owner := createTestUser(t, db, "owner", nil, nil, nil, false)
	other := createTestUser(t, db, "other", nil, nil, nil, false)
	svc := NewNotificationService(repositories.NewNotificationRepository(db))

	createTestNotification(t, db, owner.ID, false)
	createTestNotification(t, db, owner.ID, false)
	createTestNotification(t, db, other.ID, false)

	require.NoError(t, svc.MarkAllAsRead(owner.ID))

	ownerCount, err := svc.GetUnreadCount(owner.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), ownerCount)

	otherCount, err := svc.GetUnreadCount(other.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), otherCount, "чужие уведомления не затронуты")
}

func TestNotificationService_Delete_OwnerOnly(t *testing.T) {
	db := newTestDB(t)
	owner := createTestUser(t, db, "owner", nil, nil, nil, false)
	stranger := createTestUser(t, db, "stranger", nil, nil, nil, false)
	svc := NewNotificationService(repositories.NewNotificationRepository(db))

	n := createTestNotification(t, db, owner.ID, false)

	err := svc.Delete(stranger.ID, n.ID)
	assert.Error(t, err)

	require.NoError(t, svc.Delete(owner.ID, n.ID))

	var count int64
	db.Model(&models.Notification{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestNotificationService_List_UnreadOnly(t *testing.T) {
	db := newTestDB(t)
	owner := createTestUser(t, db, "owner", nil, nil, nil, false)
	svc := NewNotificationService(repositories.NewNotificationRepository(db))

	createTestNotification(t, db, owner.ID, true)
	unread := createTestNotification(t, db, owner.ID, false)

	resp, err := svc.GetUserNotifications(owner.ID, repositories.NotificationCriteria{UnreadOnly: true})
	require.NoError(t, err)
	require.Len(t, resp.Notifications, 1)
	assert.Equal(t, unread.ID, resp.Notifications[0].ID)
	assert.Equal(t, int64(1), resp.Total)
}
