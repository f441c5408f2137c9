package main

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"storefront/internal/auth"
	"storefront/internal/cache"
	"storefront/internal/config"
	"storefront/internal/db"
	"storefront/internal/handler"
	"storefront/internal/mail"
	"storefront/internal/model"
	"storefront/internal/repository"
	"storefront/internal/router"
	"storefront/internal/service"
)

// @title Storefront API
// @version 1.0
// @description Storefront mutation API with cookie sessions, permission-gated access and idempotent cart aggregation.
// @host localhost:8080
// @BasePath /api
// @schemes http
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Item{},
		&model.CartItem{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	itemRepo := repository.NewItemRepository(gormDB)
	cartRepo := repository.NewCartRepository(gormDB)

	// Process-wide collaborators: signing secret and mail transport live
	// from startup to shutdown and are never mutated.
	jwtService := auth.NewJWTService(cfg.AppSecret, cfg.SessionTTL)
	mailer := mail.NewSMTPMailer(cfg.SMTPAddr, cfg.MailFrom)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService)
	resetService := service.NewResetService(userRepo, jwtService, mailer, cfg.FrontendURL)
	itemService := service.NewItemService(itemRepo, userRepo)
	cartService := service.NewCartService(cartRepo, itemRepo)
	userService := service.NewUserService(userRepo, cacheClient)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService, resetService)
	itemHandler := handler.NewItemHandler(itemService)
	cartHandler := handler.NewCartHandler(cartService)
	userHandler := handler.NewUserHandler(userService)

	// Register routes
	router.Register(e, cfg, authHandler, itemHandler, cartHandler, userHandler)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
