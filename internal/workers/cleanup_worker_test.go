package workers

import (
	"testing"
	"time"

	"foodboard_backend/internal/datefmt"
	"foodboard_backend/internal/models"
	"foodboard_backend/internal/repositories"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.Post{}))
	return db
}

func createTestPost(t *testing.T, db *gorm.DB, title, createdAt string) *models.Post {
	post := &models.Post{
		BaseModel: models.BaseModel{
			ID:        uuid.NewString(),
			CreatedAt: createdAt,
		},
		Title:   title,
		Contact: "+79990000000",
		UserID:  "author",
	}
	require.NoError(t, db.Create(post).Error)
	return post
}

func newWorkerAt(db *gorm.DB, now time.Time, lifetime time.Duration) *CleanupWorker {
	w := NewCleanupWorker(repositories.NewPostRepository(db), lifetime, time.Minute)
	w.now = func() time.Time { return now }
	return w
}

// Два поста: 20 дней и 1 день. При времени жизни 14 дней удаляется
// только двадцатидневный.
func TestSweep_DeletesOnlyExpired(t *testing.T) {
	db := newTestDB(t)
	now := time.Date(2025, time.December, 14, 12, 0, 0, 0, time.Local)

	old := createTestPost(t, db, "old", datefmt.Format(now.AddDate(0, 0, -20)))
	fresh := createTestPost(t, db, "fresh", datefmt.Format(now.AddDate(0, 0, -1)))

	w := newWorkerAt(db, now, 14*24*time.Hour)
	deleted, err := w.Sweep()
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	var remaining []models.Post
	require.NoError(t, db.Find(&remaining).Error)
	require.Len(t, remaining, 1)
	assert.Equal(t, fresh.ID, remaining[0].ID)

	var count int64
	db.Model(&models.Post{}).Where("id = ?", old.ID).Count(&count)
	assert.Equal(t, int64(0), count)
}

// Нечитаемый createdAt не делает пост "бесконечно старым":
// он пропускается и остается в базе.
func TestSweep_SkipsUnparseableDates(t *testing.T) {
	db := newTestDB(t)
	now := time.Date(2025, time.December, 14, 12, 0, 0, 0, time.Local)

	createTestPost(t, db, "broken", "not-a-date")
	createTestPost(t, db, "empty", "")
	expired := createTestPost(t, db, "expired", datefmt.Format(now.AddDate(0, 0, -30)))

	w := newWorkerAt(db, now, 14*24*time.Hour)
	deleted, err := w.Sweep()
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	var remaining []models.Post
	require.NoError(t, db.Find(&remaining).Error)
	assert.Len(t, remaining, 2, "посты с нечитаемой датой должны выжить")
	for _, p := range remaining {
		assert.NotEqual(t, expired.ID, p.ID)
	}
}

func TestSweep_EmptyBoard(t *testing.T) {
	db := newTestDB(t)
	w := newWorkerAt(db, time.Now(), 14*24*time.Hour)

	deleted, err := w.Sweep()
	require.NoError(t, err)
	assert.Equal(t, int64(0), deleted)
}

// Пост ровно на границе времени жизни: cutoff не строгий в обе стороны,
// протухшим считается только строго старше cutoff.
func TestSweep_BoundaryIsExclusive(t *testing.T) {
	db := newTestDB(t)
	now := time.Date(2025, time.December, 14, 12, 0, 0, 0, time.Local)
	lifetime := 14 * 24 * time.Hour

	// Ровно 14 дней: parsed == cutoff, Before(cutoff) == false
	boundary := createTestPost(t, db, "boundary", datefmt.Format(now.Add(-lifetime)))
	createTestPost(t, db, "past-boundary", datefmt.Format(now.Add(-lifetime-time.Minute)))

	w := newWorkerAt(db, now, lifetime)
	deleted, err := w.Sweep()
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	var remaining []models.Post
	require.NoError(t, db.Find(&remaining).Error)
	require.Len(t, remaining, 1)
	assert.Equal(t, boundary.ID, remaining[0].ID)
}
