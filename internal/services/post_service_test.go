package services

import (
	"testing"
	"time"

	"foodboard_backend/internal/datefmt"
	"foodboard_backend/internal/models"
	"foodboard_backend/internal/repositories"
	"foodboard_backend/internal/services/dto"
	"foodboard_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newPostService(db *gorm.DB) PostService {
	userRepo := repositories.NewUserRepository(db)
	notificationRepo := repositories.NewNotificationRepository(db)
	neighbors := NewNeighborService(userRepo, notificationRepo, defaultTestRadius)
	return NewPostService(repositories.NewPostRepository(db), userRepo, neighbors, 6)
}

func TestPostService_Create(t *testing.T) {
	db := newTestDB(t)
	author := createTestUser(t, db, "author", nil, nil, nil, false)
	svc := newPostService(db)

	post, err := svc.Create(author.ID, &dto.CreatePostRequest{
		Title:   "Домашнее варенье",
		Contact: "+79990000000",
		Price:   250,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, post.ID)
	assert.Equal(t, models.PostCategoryOther, post.Category, "пустая категория заменяется на 'Другое'")

	// createdAt обязан быть читаемым кодеком
	createdAt, err := datefmt.Parse(post.CreatedAt)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), createdAt, 2*time.Minute)
}

func TestPostService_Create_BlockedAuthor(t *testing.T) {
	db := newTestDB(t)
	blocked := createTestUser(t, db, "blocked", nil, nil, nil, true)
	svc := newPostService(db)

	_, err := svc.Create(blocked.ID, &dto.CreatePostRequest{
		Title:   "t",
		Contact: "c",
	})
	assert.ErrorIs(t, err, apperrors.ErrUserBlocked)
}

func TestPostService_Create_TooManyPhotos(t *testing.T) {
	db := newTestDB(t)
	author := createTestUser(t, db, "author", nil, nil, nil, false)
	svc := newPostService(db)

	photos := make([]string, 7)
	for i := range photos {
		photos[i] = "/uploads/p.jpg"
	}

	_, err := svc.Create(author.ID, &dto.CreatePostRequest{
		Title:   "t",
		Contact: "c",
		Photos:  photos,
	})
	assert.Error(t, err)
}

// Создание поста с notifyNeighbors не ждет рассылку: пост возвращается
// сразу, уведомления доезжают в фоне.
func TestPostService_Create_DispatchesNeighborNotifications(t *testing.T) {
	db := newTestDB(t)
	postLat, postLon := 53.2211, 50.6257

	author := createTestUser(t, db, "author", nil, nil, nil, false)
	neighbor := createTestUser(t, db, "neighbor", ptrF(postLat), ptrF(postLon), ptrI(5000), false)

	svc := newPostService(db)
	post, err := svc.Create(author.ID, &dto.CreatePostRequest{
		Title:           "Свежий хлеб",
		Contact:         "+79990000000",
		Lat:             ptrF(postLat),
		Lon:             ptrF(postLon),
		NotifyNeighbors: true,
	})
	require.NoError(t, err)

	assert.Eventually(t, func() bool {
		var count int64
		db.Model(&models.Notification{}).Where("user_id = ? AND post_id = ?", neighbor.ID, post.ID).Count(&count)
		return count == 1
	}, 2*time.Second, 10*time.Millisecond, "фоновая рассылка должна создать уведомление")
}

func TestPostService_Create_NoDispatchWithoutFlag(t *testing.T) {
	db := newTestDB(t)
	postLat, postLon := 53.2211, 50.6257

	author := createTestUser(t, db, "author", nil, nil, nil, false)
	createTestUser(t, db, "neighbor", ptrF(postLat), ptrF(postLon), ptrI(5000), false)

	svc := newPostService(db)
	_, err := svc.Create(author.ID, &dto.CreatePostRequest{
		Title:           "Без рассылки",
		Contact:         "c",
		Lat:             ptrF(postLat),
		Lon:             ptrF(postLon),
		NotifyNeighbors: false,
	})
	require.NoError(t, err)

	// Даем фону шанс ошибиться
	time.Sleep(100 * time.Millisecond)

	var count int64
	db.Model(&models.Notification{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

// Геопоиск: прямоугольная выборка репозитория уточняется точной
// дистанцией, углы прямоугольника в выдачу не попадают.
func TestPostService_Search_Nearby(t *testing.T) {
	db := newTestDB(t)
	author := createTestUser(t, db, "author", nil, nil, nil, false)
	svc := newPostService(db)

	centerLat, centerLon := 53.2211, 50.6257
	lonDegree := 1.0 / (111195.0 * 0.5989) // ~1 м по долготе на этой широте

	near, err := svc.Create(author.ID, &dto.CreatePostRequest{
		Title: "Рядом", Contact: "c",
		Lat: ptrF(centerLat + 500.0/111195.0), Lon: ptrF(centerLon),
	})
	require.NoError(t, err)

	// Угол габаритного прямоугольника: по каждой оси внутри,
	// по прямой ~1270 м
	_, err = svc.Create(author.ID, &dto.CreatePostRequest{
		Title: "Угол", Contact: "c",
		Lat: ptrF(centerLat + 900.0/111195.0), Lon: ptrF(centerLon + 900.0*lonDegree),
	})
	require.NoError(t, err)

	_, err = svc.Create(author.ID, &dto.CreatePostRequest{
		Title: "Без координат", Contact: "c",
	})
	require.NoError(t, err)

	resp, err := svc.Search(repositories.PostSearchCriteria{
		NearLat: ptrF(centerLat),
		NearLon: ptrF(centerLon),
		RadiusM: 1000,
	})
	require.NoError(t, err)
	require.Len(t, resp.Posts, 1)
	assert.Equal(t, near.ID, resp.Posts[0].ID)
	assert.Equal(t, int64(1), resp.Total)
}

func TestPostService_UpdateDelete_AuthorOnly(t *testing.T) {
	db := newTestDB(t)
	author := createTestUser(t, db, "author", nil, nil, nil, false)
	stranger := createTestUser(t, db, "stranger", nil, nil, nil, false)
	svc := newPostService(db)

	post, err := svc.Create(author.ID, &dto.CreatePostRequest{Title: "t", Contact: "c"})
	require.NoError(t, err)

	newTitle := "новый заголовок"
	_, err = svc.Update(stranger.ID, models.UserRoleUser, post.ID, &dto.UpdatePostRequest{Title: &newTitle})
	assert.ErrorIs(t, err, apperrors.ErrNotPostAuthor)

	err = svc.Delete(stranger.ID, models.UserRoleUser, post.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotPostAuthor)

	// Админ может удалить чужой пост
	err = svc.Delete(stranger.ID, models.UserRoleAdmin, post.ID)
	assert.NoError(t, err)
}
