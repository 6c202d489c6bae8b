package router

import (
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
	echoSwagger "github.com/swaggo/echo-swagger"

	"eduportal/internal/auth"
	"eduportal/internal/config"
	"eduportal/internal/handler"
	"eduportal/internal/metrics"
)

// Register wires middleware, the public and admin APIs and the static mounts.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	logger *logrus.Logger,
	jwtService *auth.JWTService,
	contentHandler *handler.ContentHandler,
	adminHandler *handler.AdminHandler,
	catalogHandler *handler.CatalogHandler,
) {
	e.HTTPErrorHandler = ErrorHandler(logger, cfg.IsDevelopment())
	e.Validator = &CustomValidator{validator: validator.New()}

	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogRequestID: true,
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			entry := logger.WithFields(logrus.Fields{
				"request_id": v.RequestID,
				"method":     v.Method,
				"uri":        v.URI,
				"status":     v.Status,
				"latency_ms": v.Latency.Milliseconds(),
			})
			if v.Error != nil {
				entry.WithError(v.Error).Warn("request")
				return nil
			}
			entry.Info("request")
			return nil
		},
	}))
	e.Use(metrics.Middleware())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/metrics", metrics.Handler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	e.Static("/uploads", cfg.UploadDir)
	e.Static("/admin", cfg.AdminDashboardDir)

	api := e.Group("/api")

	// Public routes
	api.GET("/health", contentHandler.Health)
	api.GET("/categories", contentHandler.ListCategories)
	api.GET("/categories/:id", contentHandler.GetCategory)
	api.GET("/categories/:id/materials", contentHandler.ListCategoryMaterials)
	api.GET("/categories/:id/videos", contentHandler.ListCategoryVideos)
	api.GET("/materials", contentHandler.ListMaterials)
	api.GET("/materials/author/:author", contentHandler.ListMaterialsByAuthor)
	api.GET("/materials/:id", contentHandler.GetMaterial)
	api.GET("/authors", contentHandler.ListAuthors)
	api.GET("/videos", contentHandler.ListVideos)
	api.GET("/videos/:id", contentHandler.GetVideo)
	api.GET("/search", contentHandler.Search)
	api.GET("/latest", contentHandler.Latest)

	admin := api.Group("/admin")

	// Admin bootstrap, open
	admin.GET("/check", adminHandler.Check)
	admin.POST("/init", adminHandler.Init)
	admin.POST("/login", adminHandler.Login)
	admin.POST("/reset-password", adminHandler.ResetPassword)

	// Bearer-gated routes. The gate is attached per route, not to the group.
	gate := auth.Middleware(jwtService)
	upload := middleware.BodyLimit(strconv.FormatInt(cfg.MaxUploadSize, 10))

	admin.GET("/me", adminHandler.Me, gate)
	admin.GET("/stats", catalogHandler.Stats, gate)

	admin.GET("/categories", catalogHandler.ListCategories, gate)
	admin.POST("/categories", catalogHandler.CreateCategory, gate)
	admin.PUT("/categories/:id", catalogHandler.UpdateCategory, gate)
	admin.DELETE("/categories/:id", catalogHandler.DeleteCategory, gate)

	admin.GET("/materials", catalogHandler.ListMaterials, gate)
	admin.POST("/materials", catalogHandler.CreateMaterial, gate, upload)
	admin.PUT("/materials/:id", catalogHandler.UpdateMaterial, gate, upload)
	admin.DELETE("/materials/:id", catalogHandler.DeleteMaterial, gate)

	admin.GET("/videos", catalogHandler.ListVideos, gate)
	admin.POST("/videos", catalogHandler.CreateVideo, gate, upload)
	admin.PUT("/videos/:id", catalogHandler.UpdateVideo, gate, upload)
	admin.DELETE("/videos/:id", catalogHandler.DeleteVideo, gate)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
