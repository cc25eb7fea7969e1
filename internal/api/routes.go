package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/finwrapped/finwrapped-go/internal/api/handlers"
	"github.com/finwrapped/finwrapped-go/internal/database"
	"github.com/finwrapped/finwrapped-go/internal/registry"
	"github.com/finwrapped/finwrapped-go/internal/services"
)

type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
	Services  Services  `json:"services"`
}

type Services struct {
	Database string `json:"database"`
	Redis    string `json:"redis"`
}

func SetupRoutes(router *gin.Engine, db *database.PostgresDB, redis *database.RedisClient, assembler *services.Assembler, refresher *services.Refresher, reg *registry.Registry) {
	router.GET("/health", healthCheck(db, redis))

	wrapped := handlers.NewWrappedHandler(assembler, reg)
	companies := handlers.NewCompaniesHandler(reg)
	refresh := handlers.NewRefreshHandler(assembler, refresher, reg)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/companies", companies.List)
		v1.GET("/wrapped/:ticker", wrapped.GetWrapped)
		v1.POST("/refresh", refresh.Refresh)
	}
}

func healthCheck(db *database.PostgresDB, redis *database.RedisClient) gin.HandlerFunc {
	return func(c *gin.Context) {
		response := HealthResponse{
			Status:    "ok",
			Timestamp: time.Now(),
			Version:   "1.0.0",
			Services: Services{
				Database: "ok",
				Redis:    "ok",
			},
		}

		if err := db.HealthCheck(c.Request.Context()); err != nil {
			response.Services.Database = "error"
			response.Status = "degraded"
		}

		if err := redis.HealthCheck(c.Request.Context()); err != nil {
			response.Services.Redis = "error"
			response.Status = "degraded"
		}

		statusCode := http.StatusOK
		if response.Status == "degraded" {
			statusCode = http.StatusServiceUnavailable
		}

		c.JSON(statusCode, response)
	}
}
