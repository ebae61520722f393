package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/campus/internal/container"
	"github.com/joshua-takyi/campus/internal/handlers"
	"github.com/joshua-takyi/campus/internal/locale"
	"github.com/joshua-takyi/campus/internal/metrics"
	"github.com/joshua-takyi/campus/internal/middleware"
)

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept-Language", "X-Request-ID"},
		ExposeHeaders: []string{"Content-Length", "Content-Language", "X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}

// SetupRoutes configures all routes with the dependency container
func SetupRoutes(container *container.Container) *gin.Engine {
	if container.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(cors.New(corsConfig(container.Config.AllowedOrigins)))

	r.Use(middleware.RequestID())
	r.Use(middleware.Language(locale.Parse(container.Config.DefaultLanguage, locale.Turkish)))
	r.Use(middleware.StructuredLogger(container.Logger))
	r.Use(middleware.ErrorHandler(container.Logger))
	r.Use(middleware.Metrics())
	r.Use(middleware.Recovery())

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"status":  "OK",
				"service": "campus-api",
			})
		})

		userRoutes := api.Group("/users")
		{
			userRoutes.POST("", handlers.Register(container.AuthService))
			userRoutes.POST("/login", handlers.Login(container.AuthService))
		}

		eventRoutes := api.Group("/events")
		{
			eventRoutes.GET("", handlers.ListEvents(container.EventService))
			eventRoutes.POST("", handlers.CreateEvent(container.EventService))
			eventRoutes.GET("/user/:userId", handlers.ListEventsByCreator(container.EventService))
			eventRoutes.GET("/:id", handlers.GetEvent(container.EventService))
			eventRoutes.PUT("/:id", handlers.UpdateEvent(container.EventService))
			eventRoutes.DELETE("/:id", handlers.DeleteEvent(container.EventService))
		}
	}

	return r
}
