package handlers

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"taskdeck/internal/middleware"
	"taskdeck/internal/monitoring"
)

// RouterOptions carries the optional cross-cutting pieces; nil fields are
// simply not wired.
type RouterOptions struct {
	RateLimiter *middleware.RateLimiter
	Metrics     *monitoring.Metrics
	Health      *monitoring.HealthChecker
}

func NewRouter(tasks *TaskHandler, categories *CategoryHandler, opts RouterOptions) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(middleware.RecoveryWithLog())
	router.Use(middleware.RequestID())
	if opts.Metrics != nil {
		router.Use(opts.Metrics.Middleware())
	}
	if opts.RateLimiter != nil {
		router.Use(opts.RateLimiter.Middleware())
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader},
		ExposeHeaders: []string{middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}))

	api := router.Group("/api")
	{
		api.GET("/tasks", tasks.ListTasks)
		api.POST("/tasks", tasks.CreateTask)
		api.GET("/tasks/stats", tasks.GetStats)
		api.POST("/tasks/bulk/complete", tasks.BulkComplete)
		api.POST("/tasks/bulk/delete", tasks.BulkDelete)
		api.POST("/tasks/bulk/category", tasks.BulkUpdateCategory)
		api.GET("/tasks/:id", tasks.GetTask)
		api.PUT("/tasks/:id", tasks.UpdateTask)
		api.DELETE("/tasks/:id", tasks.DeleteTask)

		api.GET("/categories", categories.ListCategories)
		api.POST("/categories", categories.CreateCategory)
		api.GET("/categories/:id", categories.GetCategory)
		api.PUT("/categories/:id", categories.UpdateCategory)
		api.DELETE("/categories/:id", categories.DeleteCategory)
	}

	if opts.Health != nil {
		router.GET("/healthz", opts.Health.Handler())
	}
	if opts.Metrics != nil {
		router.GET("/metrics", opts.Metrics.Handler())
	}

	return router
}
