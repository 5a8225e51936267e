package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"course-booking-api/internal/handler/api"
	"course-booking-api/internal/handler/middleware"
	"course-booking-api/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, courseHandler *api.CourseHandler, orderHandler *api.OrderHandler) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, courseHandler, orderHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, courseHandler *api.CourseHandler, orderHandler *api.OrderHandler) {
	engine.GET("/", banner)
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	addRoutes(engine.Group(""), []route{
		{Method: http.MethodGet, Path: "/courses", Handler: courseHandler.ListCourses},
		{Method: http.MethodPost, Path: "/courses/import", Handler: courseHandler.ImportCourses},
		{Method: http.MethodGet, Path: "/orders", Handler: orderHandler.ListOrders},
		{Method: http.MethodPost, Path: "/orders", Handler: orderHandler.CreateOrder},
		{Method: http.MethodGet, Path: "/orders/test", Handler: orderHandler.TestOrder},
	})
}

// @Summary Banner
// @Description Plain-text banner confirming the backend is running
// @Tags health
// @Produce plain
// @Success 200 {string} string
// @Router / [get]
func banner(c *gin.Context) {
	c.String(http.StatusOK, "Course booking backend running")
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
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
		case http.MethodPut:
			g.PUT(r.Path, r.Handler)
		case http.MethodDelete:
			g.DELETE(r.Path, r.Handler)
		default:
			g.Any(r.Path, r.Handler)
		}
	}
}
