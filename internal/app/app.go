package app

import (
	"context"
	"fmt"
	"os"

	"foodboard_backend/internal/auth"
	"foodboard_backend/internal/config"
	"foodboard_backend/internal/datefmt"
	"foodboard_backend/internal/handlers"
	"foodboard_backend/internal/logger"
	"foodboard_backend/internal/models"
	"foodboard_backend/internal/repositories"
	"foodboard_backend/internal/routes"
	"foodboard_backend/internal/services"
	"foodboard_backend/internal/validator"
	"foodboard_backend/internal/workers"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := Migrate(gormDB); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	if err := seedFirstAdmin(gormDB); err != nil {
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	// Фоновая очистка протухших постов живет, пока жив процесс
	postRepo := repositories.NewPostRepository(gormDB)
	cleanupWorker := workers.NewCleanupWorker(postRepo, cfg.PostLifetime(), cfg.CleanupInterval())
	cleanupWorker.Start(context.Background())

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// Migrate приводит схему базы к моделям приложения
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.Notification{},
		&models.Report{},
	)
}

// SetupRouter собирает репозитории, сервисы и хэндлеры и возвращает
// готовый *gin.Engine. Вынесено из Run для интеграционных тестов.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	// Репозитории
	userRepo := repositories.NewUserRepository(gormDB)
	postRepo := repositories.NewPostRepository(gormDB)
	notificationRepo := repositories.NewNotificationRepository(gormDB)
	reportRepo := repositories.NewReportRepository(gormDB)

	// Сервисы
	neighborService := services.NewNeighborService(userRepo, notificationRepo, cfg.Board.DefaultRadiusMeters)
	authService := services.NewAuthService(userRepo)
	userService := services.NewUserService(userRepo, notificationRepo, cfg.Board.DefaultRadiusMeters)
	postService := services.NewPostService(postRepo, userRepo, neighborService, cfg.Board.MaxPhotos)
	notificationService := services.NewNotificationService(notificationRepo)
	reportService := services.NewReportService(reportRepo, userRepo)

	// Хэндлеры
	base := handlers.NewBaseHandler(validator.New())
	appHandlers := &handlers.AppHandlers{
		AuthHandler:         handlers.NewAuthHandler(base, authService),
		UserHandler:         handlers.NewUserHandler(base, userService),
		PostHandler:         handlers.NewPostHandler(base, postService, cfg.Board.DefaultPageSize),
		NotificationHandler: handlers.NewNotificationHandler(base, notificationService, cfg.Board.DefaultPageSize),
		ReportHandler:       handlers.NewReportHandler(base, reportService),
		AdminHandler:        handlers.NewAdminHandler(base, userService, postService, reportService, cfg.Board.DefaultPageSize),
	}

	if cfg.Server.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	ginRouter := gin.New()
	ginRouter.Use(gin.Logger(), gin.Recovery())

	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

// seedFirstAdmin создает администратора при первом запуске,
// если в базе еще нет ни одного.
func seedFirstAdmin(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Where("role = ?", models.UserRoleAdmin).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	phone := os.Getenv("ADMIN_PHONE")
	password := os.Getenv("ADMIN_PASSWORD")
	if phone == "" || password == "" {
		logger.Warn("ADMIN_PHONE/ADMIN_PASSWORD not set, skipping admin seed")
		return nil
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	admin := &models.User{
		BaseModel: models.BaseModel{
			ID:        uuid.NewString(),
			CreatedAt: datefmt.Now(),
		},
		Phone:        phone,
		PasswordHash: hash,
		Name:         "admin",
		Role:         models.UserRoleAdmin,
		Verified:     true,
	}

	if err := db.Create(admin).Error; err != nil {
		return err
	}
	logger.Info("First admin user created", "phone", phone)
	return nil
}
