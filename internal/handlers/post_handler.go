package handlers

import (
	"net/http"

	"foodboard_backend/internal/middleware"
	"foodboard_backend/internal/repositories"
	"foodboard_backend/internal/services"
	"foodboard_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	*BaseHandler
	postService     services.PostService
	defaultPageSize int
}

func NewPostHandler(base *BaseHandler, postService services.PostService, defaultPageSize int) *PostHandler {
	return &PostHandler{
		BaseHandler:     base,
		postService:     postService,
		defaultPageSize: defaultPageSize,
	}
}

// RegisterRoutes регистрирует маршруты постов
func (h *PostHandler) RegisterRoutes(rg *gin.RouterGroup) {
	posts := rg.Group("/posts")
	{
		posts.GET("", h.Search)
		posts.GET("/:id", h.GetByID)
	}

	authorized := rg.Group("/posts")
	authorized.Use(middleware.AuthMiddleware())
	{
		authorized.POST("", h.Create)
		authorized.PUT("/:id", h.Update)
		authorized.DELETE("/:id", h.Delete)
	}
}

// Create создает пост. Если автор поставил notifyNeighbors и указал
// координаты, рассылка соседям уходит в фон - ответ клиенту её не ждет.
func (h *PostHandler) Create(c *gin.Context) {
	var req dto.CreatePostRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	post, err := h.postService.Create(middleware.GetUserID(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, post)
}

func (h *PostHandler) GetByID(c *gin.Context) {
	post, err := h.postService.GetByID(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

func (h *PostHandler) Search(c *gin.Context) {
	var criteria repositories.PostSearchCriteria
	if !h.BindAndValidateQuery(c, &criteria) {
		return
	}
	if criteria.Page < 1 {
		criteria.Page = 1
	}
	if criteria.PageSize < 1 {
		criteria.PageSize = h.defaultPageSize
	}

	response, err := h.postService.Search(criteria)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *PostHandler) Update(c *gin.Context) {
	var req dto.UpdatePostRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	post, err := h.postService.Update(
		middleware.GetUserID(c),
		middleware.GetUserRole(c),
		c.Param("id"),
		&req,
	)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

func (h *PostHandler) Delete(c *gin.Context) {
	err := h.postService.Delete(
		middleware.GetUserID(c),
		middleware.GetUserRole(c),
		c.Param("id"),
	)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "post deleted"})
}
