package services

import (
	"sort"
	"sync"
	"sync/atomic"

	"foodboard_backend/internal/datefmt"
	"foodboard_backend/internal/geo"
	"foodboard_backend/internal/logger"
	"foodboard_backend/internal/models"
	"foodboard_backend/internal/repositories"

	"github.com/google/uuid"
)

// NeighborService рассылает уведомления соседям о новом посте.
//
// Пользователь получает уведомление только если:
//  1. он не автор поста;
//  2. у него есть полная геопозиция и он не заблокирован;
//  3. расстояние до поста <= его ЛИЧНОГО радиуса уведомлений
//     (по умолчанию 5000 м; радиус 0 выключает уведомления).
type NeighborService interface {
	// NotifyNeighbors возвращает число успешно созданных уведомлений.
	NotifyNeighbors(postID, postTitle string, lat, lon *float64, authorID string) (int, error)

	// Dispatch - fire-and-forget обертка для пути создания поста:
	// HTTP-ответ не ждет рассылку, любая ошибка гасится внутри.
	Dispatch(postID, postTitle string, lat, lon *float64, authorID string)
}

type neighborService struct {
	userRepo         repositories.UserRepository
	notificationRepo repositories.NotificationRepository

	// Радиус для пользователей, не настроивших свой (метры).
	defaultRadius int
}

func NewNeighborService(
	userRepo repositories.UserRepository,
	notificationRepo repositories.NotificationRepository,
	defaultRadius int,
) NeighborService {
	return &neighborService{
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
		defaultRadius:    defaultRadius,
	}
}

// candidate - пользователь, прошедший фильтр по расстоянию
type candidate struct {
	user     models.User
	distance float64
	radius   int
}

func (s *neighborService) NotifyNeighbors(postID, postTitle string, lat, lon *float64, authorID string) (int, error) {
	// Пост без координат не может никого уведомить.
	// Нулевая координата исторически приравнена к отсутствующей.
	if lat == nil || lon == nil || *lat == 0 || *lon == 0 {
		logger.Debug("notify neighbors skipped: post has no coordinates", "post_id", postID)
		return 0, nil
	}

	users, err := s.userRepo.FindNeighborCandidates(authorID)
	if err != nil {
		return 0, err
	}

	logger.Debug("neighbor candidates loaded", "post_id", postID, "count", len(users))

	eligible := make([]candidate, 0, len(users))
	for _, user := range users {
		// Репозиторий уже отфильтровал по геопозиции, но частичная
		// координата прилетает как nil - перепроверяем.
		if !user.HasLocation() {
			continue
		}

		radius := s.defaultRadius
		if user.NotificationRadius != nil {
			radius = *user.NotificationRadius
		}
		// Радиус 0 = пользователь выключил уведомления, расстояние не важно
		if radius <= 0 {
			continue
		}

		distance := geo.Distance(*lat, *lon, *user.LastLat, *user.LastLon)
		// Граница включительно: ровно на радиусе - еще уведомляем
		if distance <= float64(radius) {
			eligible = append(eligible, candidate{user: user, distance: distance, radius: radius})
		}
	}

	// Ближние первыми; влияет только на порядок создания записей
	sort.Slice(eligible, func(i, j int) bool {
		return eligible[i].distance < eligible[j].distance
	})

	if len(eligible) == 0 {
		logger.Info("no neighbors in notification range", "post_id", postID)
		return 0, nil
	}

	// Создаем уведомления пакетом горутин; отказ одной вставки не
	// отменяет остальные, значим только итоговый счетчик.
	var wg sync.WaitGroup
	var created int64
	for _, c := range eligible {
		wg.Add(1)
		go func(c candidate) {
			defer wg.Done()

			notification := &models.Notification{
				BaseModel: models.BaseModel{
					ID:        uuid.NewString(),
					CreatedAt: datefmt.Now(),
				},
				UserID:    c.user.ID,
				PostID:    postID,
				PostTitle: postTitle,
				Distance:  int(c.distance + 0.5), // round
				IsRead:    false,
			}

			if err := s.notificationRepo.Create(notification); err != nil {
				logger.Error("failed to create neighbor notification",
					"post_id", postID, "user_id", c.user.ID, "error", err)
				return
			}
			atomic.AddInt64(&created, 1)
		}(c)
	}
	wg.Wait()

	logger.Info("neighbor notifications sent",
		"post_id", postID, "eligible", len(eligible), "created", created)

	return int(created), nil
}

func (s *neighborService) Dispatch(postID, postTitle string, lat, lon *float64, authorID string) {
	go func() {
		// Ошибка рассылки никогда не должна дойти до HTTP-запроса,
		// создавшего пост.
		defer func() {
			if r := recover(); r != nil {
				logger.Error("neighbor notification panic", "post_id", postID, "panic", r)
			}
		}()

		if _, err := s.NotifyNeighbors(postID, postTitle, lat, lon, authorID); err != nil {
			logger.Error("neighbor notification failed", "post_id", postID, "error", err)
		}
	}()
}
