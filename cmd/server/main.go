package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"eduportal/docs"
	"eduportal/internal/auth"
	"eduportal/internal/cache"
	"eduportal/internal/config"
	"eduportal/internal/db"
	"eduportal/internal/handler"
	"eduportal/internal/metrics"
	"eduportal/internal/repository"
	"eduportal/internal/router"
	"eduportal/internal/service"
	"eduportal/internal/upload"
)

// @title Education Portal API
// @version 1.0
// @description Public read/search API for categorized materials and videos, plus the bearer-gated admin CRUD API.
// @host localhost:5000
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	if cfg.IsDevelopment() {
		logger.SetLevel(logrus.DebugLevel)
	}

	// Schema bootstrap failures are fatal: no partial start.
	gormDB, err := db.Open(db.Options{
		Host:     cfg.DBHost,
		Port:     cfg.DBPort,
		User:     cfg.DBUser,
		Password: cfg.DBPassword,
		Name:     cfg.DBName,
		PoolSize: cfg.DBPoolSize,
		Debug:    cfg.IsDevelopment(),
	})
	if err != nil {
		logger.Fatalf("database init: %v", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatalf("database handle: %v", err)
	}
	defer sqlDB.Close()
	if err := metrics.RegisterDBStats(sqlDB, cfg.DBName); err != nil {
		logger.WithError(err).Warn("database pool metrics not registered")
	}
	logger.WithFields(logrus.Fields{
		"host":      cfg.DBHost,
		"database":  cfg.DBName,
		"pool_size": cfg.DBPoolSize,
	}).Info("database ready")

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	defer cacheClient.Close()
	if cacheClient == nil {
		logger.Info("REDIS_ADDR not set, read cache disabled")
	}

	uploads, err := upload.NewStore(cfg.UploadDir, "/uploads", cfg.MaxUploadSize, upload.DefaultRules)
	if err != nil {
		logger.Fatalf("upload store: %v", err)
	}

	// Initialize repositories
	categoryRepo := repository.NewCategoryRepository(gormDB)
	materialRepo := repository.NewMaterialRepository(gormDB)
	videoRepo := repository.NewVideoRepository(gormDB)
	adminRepo := repository.NewAdminRepository(gormDB)

	jwtService := auth.NewJWTService(cfg.JWTSecret)

	// Initialize services
	contentService := service.NewContentService(categoryRepo, materialRepo, videoRepo, cacheClient, cfg.CacheTTL)
	catalogService := service.NewCatalogService(categoryRepo, materialRepo, videoRepo, cacheClient)
	adminService := service.NewAdminService(adminRepo, jwtService, cfg.AdminEmail, cfg.AdminPassword)

	e := echo.New()
	e.HideBanner = true

	router.Register(
		e,
		cfg,
		logger,
		jwtService,
		handler.NewContentHandler(contentService, logger),
		handler.NewAdminHandler(adminService, logger),
		handler.NewCatalogHandler(catalogService, uploads, logger),
	)

	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = strings.TrimPrefix(strings.TrimPrefix(cfg.SwaggerHost, "https://"), "http://")
	} else {
		docs.SwaggerInfo.Host = "localhost:" + cfg.ServerPort
	}
	logger.Infof("Swagger documentation available at: http://%s/swagger/index.html", docs.SwaggerInfo.Host)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		addr := ":" + cfg.ServerPort
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("server start: %v", err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Error("server shutdown")
	}
}
