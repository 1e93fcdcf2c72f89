package services

import (
	"encoding/json"

	"foodboard_backend/internal/datefmt"
	"foodboard_backend/internal/geo"
	"foodboard_backend/internal/models"
	"foodboard_backend/internal/repositories"
	"foodboard_backend/internal/services/dto"
	"foodboard_backend/pkg/apperrors"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type PostService interface {
	Create(authorID string, req *dto.CreatePostRequest) (*models.Post, error)
	GetByID(id string) (*models.Post, error)
	Search(criteria repositories.PostSearchCriteria) (*dto.PostListResponse, error)
	Update(actorID string, actorRole models.UserRole, postID string, req *dto.UpdatePostRequest) (*models.Post, error)
	Delete(actorID string, actorRole models.UserRole, postID string) error
}

type PostServiceImpl struct {
	postRepo  repositories.PostRepository
	userRepo  repositories.UserRepository
	neighbors NeighborService
	maxPhotos int
}

func NewPostService(
	postRepo repositories.PostRepository,
	userRepo repositories.UserRepository,
	neighbors NeighborService,
	maxPhotos int,
) PostService {
	return &PostServiceImpl{
		postRepo:  postRepo,
		userRepo:  userRepo,
		neighbors: neighbors,
		maxPhotos: maxPhotos,
	}
}

// Create создает пост и, если автор попросил, запускает рассылку
// уведомлений соседям. Рассылка асинхронная: её исход (включая ноль
// получателей или сбой) не влияет на результат создания поста.
func (s *PostServiceImpl) Create(authorID string, req *dto.CreatePostRequest) (*models.Post, error) {
	author, err := s.userRepo.FindByID(authorID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if author.IsBlocked {
		return nil, apperrors.ErrUserBlocked
	}

	if len(req.Photos) > s.maxPhotos {
		return nil, apperrors.ErrInvalidOperation("posts", "too many photos")
	}

	photos, err := photosJSON(req.Photos)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	category := models.PostCategory(req.Category)
	if category == "" {
		category = models.PostCategoryOther
	}

	post := &models.Post{
		BaseModel: models.BaseModel{
			ID:        uuid.NewString(),
			CreatedAt: datefmt.Now(),
		},
		Title:           req.Title,
		Description:     req.Description,
		Price:           req.Price,
		Contact:         req.Contact,
		Category:        category,
		District:        req.District,
		Photos:          photos,
		Lat:             req.Lat,
		Lon:             req.Lon,
		NotifyNeighbors: req.NotifyNeighbors,
		UserID:          authorID,
	}

	if err := s.postRepo.Create(post); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if post.NotifyNeighbors && post.HasCoordinates() {
		s.neighbors.Dispatch(post.ID, post.Title, post.Lat, post.Lon, post.UserID)
	}

	return post, nil
}

func (s *PostServiceImpl) GetByID(id string) (*models.Post, error) {
	post, err := s.postRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrPostNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return post, nil
}

func (s *PostServiceImpl) Search(criteria repositories.PostSearchCriteria) (*dto.PostListResponse, error) {
	posts, total, err := s.postRepo.Search(criteria)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	// Прямоугольник репозитория шире круга: углы отсекаем точной дистанцией
	if criteria.HasNearFilter() {
		filtered := posts[:0]
		for _, post := range posts {
			if !post.HasCoordinates() {
				continue
			}
			d := geo.Distance(*criteria.NearLat, *criteria.NearLon, *post.Lat, *post.Lon)
			if d <= float64(criteria.RadiusM) {
				filtered = append(filtered, post)
			}
		}
		total -= int64(len(posts) - len(filtered))
		posts = filtered
	}

	return &dto.PostListResponse{
		Posts:      posts,
		Total:      total,
		Page:       criteria.Page,
		PageSize:   criteria.PageSize,
		TotalPages: calculateTotalPages(total, criteria.PageSize),
	}, nil
}

func (s *PostServiceImpl) Update(actorID string, actorRole models.UserRole, postID string, req *dto.UpdatePostRequest) (*models.Post, error) {
	post, err := s.GetByID(postID)
	if err != nil {
		return nil, err
	}

	if post.UserID != actorID && actorRole != models.UserRoleAdmin {
		return nil, apperrors.ErrNotPostAuthor
	}

	if req.Title != nil {
		post.Title = *req.Title
	}
	if req.Description != nil {
		post.Description = *req.Description
	}
	if req.Price != nil {
		post.Price = *req.Price
	}
	if req.Contact != nil {
		post.Contact = *req.Contact
	}
	if req.Category != nil {
		post.Category = models.PostCategory(*req.Category)
	}
	if req.District != nil {
		post.District = *req.District
	}
	if req.Photos != nil {
		if len(req.Photos) > s.maxPhotos {
			return nil, apperrors.ErrInvalidOperation("posts", "too many photos")
		}
		photos, err := photosJSON(req.Photos)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		post.Photos = photos
	}
	if req.Lat != nil {
		post.Lat = req.Lat
	}
	if req.Lon != nil {
		post.Lon = req.Lon
	}

	if err := s.postRepo.Update(post); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return post, nil
}

func (s *PostServiceImpl) Delete(actorID string, actorRole models.UserRole, postID string) error {
	post, err := s.GetByID(postID)
	if err != nil {
		return err
	}

	if post.UserID != actorID && actorRole != models.UserRoleAdmin {
		return apperrors.ErrNotPostAuthor
	}

	if err := s.postRepo.Delete(postID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func photosJSON(photos []string) (datatypes.JSON, error) {
	if photos == nil {
		photos = []string{}
	}
	raw, err := json.Marshal(photos)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}
