package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/polkiloo/salesorders/internal/config"
	"github.com/polkiloo/salesorders/internal/server/http/handlers"
	"github.com/polkiloo/salesorders/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.SalesOrderFacade, logger *slog.Logger, cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(middleware.LimitRequestBody(cfg.MaxUploadSize))
	engine.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedExtensions([]string{".pdf"})))

	orderHandler := handlers.NewOrderHandler(facade)
	lineItemHandler := handlers.NewLineItemHandler(facade)
	catalogHandler := handlers.NewCatalogHandler(facade)
	fileHandler := handlers.NewFileHandler(facade)
	healthHandler := handlers.NewHealthHandler(facade)

	engine.GET("/healthz", healthHandler.Check)
	engine.POST("/upload", orderHandler.Upload)
	engine.GET("/catalog", catalogHandler.List)
	engine.GET("/files/:filename", fileHandler.Get)

	orders := engine.Group("/orders")
	orders.GET("", orderHandler.List)
	orders.GET("/:id", orderHandler.Get)
	orders.GET("/:id/export", orderHandler.Export)
	orders.POST("/:id/match", lineItemHandler.Match)
	orders.POST("/:id/match-all", orderHandler.MatchAll)
	orders.PUT("/:id/line-items/:item_id", lineItemHandler.Update)
	orders.DELETE("/:id/line-items/:item_id/match", lineItemHandler.ClearMatch)

	return engine
}
