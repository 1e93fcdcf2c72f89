package repositories

import (
	"errors"
	"math"

	"foodboard_backend/internal/models"

	"gorm.io/gorm"
)

var ErrPostNotFound = errors.New("post not found")

// Метров в одном градусе широты
const metersPerDegreeLat = 111195.0

// PostSearchCriteria - фильтры поиска постов
type PostSearchCriteria struct {
	Query    string `form:"q"`
	Category string `form:"category"`
	District string `form:"district"`
	UserID   string `form:"user_id"`

	// Поиск "рядом со мной": центр и радиус в метрах.
	// Репозиторий режет по габаритному прямоугольнику, точную
	// дистанцию досчитывает сервис.
	NearLat *float64 `form:"lat" validate:"omitempty,latitude"`
	NearLon *float64 `form:"lon" validate:"omitempty,longitude"`
	RadiusM int      `form:"radius_m" validate:"min=0,max=100000"`

	Page     int `form:"page"`
	PageSize int `form:"page_size" binding:"max=100"`
}

// HasNearFilter - задан ли геопоиск целиком
func (c *PostSearchCriteria) HasNearFilter() bool {
	return c.NearLat != nil && c.NearLon != nil && c.RadiusM > 0
}

// SweepRecord - минимальная проекция поста для фоновой очистки
type SweepRecord struct {
	ID        string
	Title     string
	CreatedAt string
}

type PostRepository interface {
	Create(post *models.Post) error
	FindByID(id string) (*models.Post, error)
	Search(criteria PostSearchCriteria) ([]models.Post, int64, error)
	Update(post *models.Post) error
	Delete(id string) error

	// FindAllForSweep возвращает id и createdAt всех постов для Expiry Sweeper.
	FindAllForSweep() ([]SweepRecord, error)
	// DeleteByIDs удаляет протухшие посты одним батчем.
	DeleteByIDs(ids []string) (int64, error)
}

type PostRepositoryImpl struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &PostRepositoryImpl{db: db}
}

func (r *PostRepositoryImpl) Create(post *models.Post) error {
	return r.db.Create(post).Error
}

func (r *PostRepositoryImpl) FindByID(id string) (*models.Post, error) {
	var post models.Post
	if err := r.db.First(&post, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return &post, nil
}

func (r *PostRepositoryImpl) Search(criteria PostSearchCriteria) ([]models.Post, int64, error) {
	query := r.db.Model(&models.Post{})

	if criteria.Query != "" {
		like := "%" + criteria.Query + "%"
		query = query.Where("title LIKE ? OR description LIKE ?", like, like)
	}
	if criteria.Category != "" {
		query = query.Where("category = ?", criteria.Category)
	}
	if criteria.District != "" {
		query = query.Where("district = ?", criteria.District)
	}
	if criteria.UserID != "" {
		query = query.Where("user_id = ?", criteria.UserID)
	}
	if criteria.HasNearFilter() {
		latDelta := float64(criteria.RadiusM) / metersPerDegreeLat
		lonDelta := latDelta / math.Cos(*criteria.NearLat*math.Pi/180)
		query = query.
			Where("lat IS NOT NULL AND lon IS NOT NULL").
			Where("lat BETWEEN ? AND ?", *criteria.NearLat-latDelta, *criteria.NearLat+latDelta).
			Where("lon BETWEEN ? AND ?", *criteria.NearLon-lonDelta, *criteria.NearLon+lonDelta)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var posts []models.Post
	offset, limit := normalizePaging(criteria.Page, criteria.PageSize)
	err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&posts).Error
	if err != nil {
		return nil, 0, err
	}

	return posts, total, nil
}

func (r *PostRepositoryImpl) Update(post *models.Post) error {
	return r.db.Save(post).Error
}

func (r *PostRepositoryImpl) Delete(id string) error {
	result := r.db.Delete(&models.Post{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPostNotFound
	}
	return nil
}

func (r *PostRepositoryImpl) FindAllForSweep() ([]SweepRecord, error) {
	var records []SweepRecord
	err := r.db.Model(&models.Post{}).
		Select("id", "title", "created_at").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *PostRepositoryImpl) DeleteByIDs(ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	result := r.db.Delete(&models.Post{}, "id IN ?", ids)
	return result.RowsAffected, result.Error
}
