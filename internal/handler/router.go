package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vedatdikgoz/MicroServiceShop-Frontend/internal/handler/api"
	"github.com/vedatdikgoz/MicroServiceShop-Frontend/internal/handler/middleware"
	"github.com/vedatdikgoz/MicroServiceShop-Frontend/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, basketHandler *api.BasketHandler, commentHandler *api.CommentHandler, catalogHandler *api.CatalogHandler) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, basketHandler, commentHandler, catalogHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(logger))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, basketHandler *api.BasketHandler, commentHandler *api.CommentHandler, catalogHandler *api.CatalogHandler) {
	engine.GET("/health", healthCheck)

	apiGroup := engine.Group("/api")
	{
		basket := apiGroup.Group("/basket")
		{
			addRoutes(basket, []route{
				{Method: http.MethodGet, Path: "", Handler: basketHandler.Get},
				{Method: http.MethodPost, Path: "/items", Handler: basketHandler.AddItem},
				{Method: http.MethodDelete, Path: "/items/:productId", Handler: basketHandler.Remove},
				{Method: http.MethodPost, Path: "/items/:productId/increment", Handler: basketHandler.IncrementQuantity},
				{Method: http.MethodPost, Path: "/items/:productId/decrement", Handler: basketHandler.DecrementQuantity},
				{Method: http.MethodPost, Path: "/discount", Handler: basketHandler.ApplyDiscount},
			})
		}

		comments := apiGroup.Group("/comments")
		{
			addRoutes(comments, []route{
				{Method: http.MethodGet, Path: "", Handler: commentHandler.List},
				{Method: http.MethodPost, Path: "", Handler: commentHandler.Create},
				{Method: http.MethodGet, Path: "/:productId/count/stream", Handler: commentHandler.CountStream},
			})
		}

		products := apiGroup.Group("/products")
		{
			addRoutes(products, []route{
				{Method: http.MethodGet, Path: "/:id", Handler: catalogHandler.Product},
				{Method: http.MethodGet, Path: "/:id/images", Handler: catalogHandler.Images},
				{Method: http.MethodGet, Path: "/:id/detail", Handler: catalogHandler.Detail},
			})
		}
	}
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, r.Handler)
		case http.MethodPost:
			g.POST(r.Path, r.Handler)
		case http.MethodDelete:
			g.DELETE(r.Path, r.Handler)
		default:
			g.Any(r.Path, r.Handler)
		}
	}
}
