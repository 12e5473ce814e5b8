package main

import (
	"context"
	"errors"
	"log"
	"net/http"

	"estately/docs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"estately/internal/auth"
	"estately/internal/cache"
	"estately/internal/config"
	"estately/internal/db"
	"estately/internal/handler"
	"estately/internal/model"
	"estately/internal/repository"
	"estately/internal/router"
	"estately/internal/service"
	"estately/internal/storage"
)

// @title Estately API
// @version 1.0
// @description Real estate marketplace API with listings, appointments, favorites, reviews and admin moderation.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}
	cfg := config.Load()
	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
	}

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}
	if err := db.Migrate(gormDB); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	propertyRepo := repository.NewPropertyRepository(gormDB)
	categoryRepo := repository.NewCategoryRepository(gormDB)
	locationRepo := repository.NewLocationRepository(gormDB)
	appointmentRepo := repository.NewAppointmentRepository(gormDB)
	favoriteRepo := repository.NewFavoriteRepository(gormDB)
	reviewRepo := repository.NewReviewRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	denyList := auth.NewDenyList(cacheClient)

	if err := ensureAdmin(context.Background(), userRepo, cfg); err != nil {
		log.Fatalf("admin bootstrap: %v", err)
	}

	store := storage.NewStore(cfg.UploadDir)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService)
	userService := service.NewUserService(userRepo)
	propertyService := service.NewPropertyService(propertyRepo, categoryRepo, locationRepo)
	categoryService := service.NewCategoryService(categoryRepo)
	locationService := service.NewLocationService(locationRepo)
	appointmentService := service.NewAppointmentService(appointmentRepo)
	favoriteService := service.NewFavoriteService(favoriteRepo, propertyRepo)
	reviewService := service.NewReviewService(reviewRepo, propertyRepo)
	adminService := service.NewAdminService(userRepo, propertyRepo, reviewRepo, denyList)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService, store)
	userHandler := handler.NewUserHandler(userService, store)
	propertyHandler := handler.NewPropertyHandler(propertyService, store)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	locationHandler := handler.NewLocationHandler(locationService)
	appointmentHandler := handler.NewAppointmentHandler(appointmentService)
	favoriteHandler := handler.NewFavoriteHandler(favoriteService)
	reviewHandler := handler.NewReviewHandler(reviewService)
	adminHandler := handler.NewAdminHandler(adminService)

	e := echo.New()

	// Register routes
	router.Register(
		e,
		cfg,
		denyList,
		authHandler,
		userHandler,
		propertyHandler,
		categoryHandler,
		locationHandler,
		appointmentHandler,
		favoriteHandler,
		reviewHandler,
		adminHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}

// ensureAdmin creates the admin account on first start if it does not exist.
func ensureAdmin(ctx context.Context, userRepo repository.UserRepository, cfg *config.Config) error {
	_, err := userRepo.FindByEmail(ctx, cfg.AdminEmail)
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	digest, err := auth.HashPassword(cfg.AdminPassword)
	if err != nil {
		return err
	}
	admin := &model.User{
		Name:       "Admin",
		Email:      cfg.AdminEmail,
		Password:   digest,
		Role:       model.RoleAdmin,
		IsVerified: true,
		IsActive:   true,
	}
	if err := userRepo.Create(ctx, admin); err != nil {
		return err
	}
	log.Printf("Admin account created: %s", cfg.AdminEmail)
	return nil
}
