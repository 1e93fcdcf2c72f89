package handlers

import (
	"net/http"
	"strconv"

	"foodboard_backend/internal/middleware"
	"foodboard_backend/internal/models"
	"foodboard_backend/internal/repositories"
	"foodboard_backend/internal/services"
	"foodboard_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

// AdminHandler - панель администратора: пользователи, посты, жалобы
type AdminHandler struct {
	*BaseHandler
	userService     services.UserService
	postService     services.PostService
	reportService   services.ReportService
	defaultPageSize int
}

func NewAdminHandler(
	base *BaseHandler,
	userService services.UserService,
	postService services.PostService,
	reportService services.ReportService,
	defaultPageSize int,
) *AdminHandler {
	return &AdminHandler{
		BaseHandler:     base,
		userService:     userService,
		postService:     postService,
		reportService:   reportService,
		defaultPageSize: defaultPageSize,
	}
}

// RegisterRoutes регистрирует админские маршруты
func (h *AdminHandler) RegisterRoutes(rg *gin.RouterGroup) {
	admin := rg.Group("/admin")
	admin.Use(middleware.AuthMiddleware())
	admin.Use(middleware.AdminMiddleware())
	{
		admin.GET("/users", h.ListUsers)
		admin.PUT("/users/:id/block", h.BlockUser)
		admin.PUT("/users/:id/unblock", h.UnblockUser)
		admin.DELETE("/users/:id", h.DeleteUser)
		admin.DELETE("/posts/:id", h.DeletePost)
		admin.GET("/reports", h.ListReports)
		admin.PUT("/reports/:id", h.UpdateReportStatus)
	}
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(h.defaultPageSize)))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = h.defaultPageSize
	}

	users, total, err := h.userService.ListUsers(page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"users": users,
		"total": total,
		"page":  page,
	})
}

func (h *AdminHandler) BlockUser(c *gin.Context) {
	if err := h.userService.SetBlocked(c.Param("id"), true); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "user blocked"})
}

func (h *AdminHandler) UnblockUser(c *gin.Context) {
	if err := h.userService.SetBlocked(c.Param("id"), false); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "user unblocked"})
}

func (h *AdminHandler) DeleteUser(c *gin.Context) {
	if err := h.userService.DeleteUser(c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "user deleted"})
}

func (h *AdminHandler) DeletePost(c *gin.Context) {
	// Админ удаляет любой пост
	err := h.postService.Delete(middleware.GetUserID(c), models.UserRoleAdmin, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "post deleted"})
}

func (h *AdminHandler) ListReports(c *gin.Context) {
	var criteria repositories.ReportCriteria
	if !h.BindAndValidateQuery(c, &criteria) {
		return
	}
	if criteria.Page < 1 {
		criteria.Page = 1
	}
	if criteria.PageSize < 1 {
		criteria.PageSize = h.defaultPageSize
	}

	response, err := h.reportService.List(criteria)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *AdminHandler) UpdateReportStatus(c *gin.Context) {
	var req dto.UpdateReportStatusRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.reportService.UpdateStatus(c.Param("id"), &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "report updated"})
}
