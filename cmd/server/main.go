package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/finwrapped/finwrapped-go/internal/api"
	"github.com/finwrapped/finwrapped-go/internal/cache"
	"github.com/finwrapped/finwrapped-go/internal/config"
	"github.com/finwrapped/finwrapped-go/internal/database"
	"github.com/finwrapped/finwrapped-go/internal/logging"
	"github.com/finwrapped/finwrapped-go/internal/middleware"
	"github.com/finwrapped/finwrapped-go/internal/polygon"
	"github.com/finwrapped/finwrapped-go/internal/registry"
	"github.com/finwrapped/finwrapped-go/internal/sec"
	"github.com/finwrapped/finwrapped-go/internal/services"
)

func main() {
	// Local development convenience; missing .env is fine.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}

	logging.Setup(cfg.LogLevel, cfg.Environment)

	db, err := database.NewPostgresConnection(cfg.Database)
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	redis, err := database.NewRedisConnection(cfg.Redis)
	if err != nil {
		logrus.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redis.Close()

	ctx := context.Background()

	if err := db.InitSchema(ctx); err != nil {
		logrus.Fatalf("Failed to initialize schema: %v", err)
	}

	reg := registry.Default()
	if err := reg.Seed(ctx, db.Pool); err != nil {
		logrus.WithError(err).Warn("Failed to seed company registry")
	}

	priceTTL := config.Duration(cfg.Cache.PriceTTL)
	filingTTL := config.Duration(cfg.Cache.FilingTTL)

	rawCache := cache.NewRawCache(redis.Client)
	snapshots := cache.NewSnapshotStore(db.Pool, config.Duration(cfg.Cache.WrappedTTL))

	secClient := sec.NewClient(cfg.SEC, rawCache, filingTTL)
	polygonClient := polygon.NewClient(cfg.Polygon, rawCache, priceTTL, filingTTL)

	assembler := services.NewAssembler(reg, secClient, polygonClient, snapshots)
	refresher := services.NewRefresher(assembler, reg, config.Duration(cfg.Refresh.Interval))

	sweeper := cache.NewSweeper(snapshots, cfg.Cache.SweepSchedule)
	if err := sweeper.Start(); err != nil {
		logrus.Fatalf("Failed to start cache sweeper: %v", err)
	}
	defer sweeper.Stop()

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg.Server.AllowedOrigins))

	api.SetupRoutes(router, db, redis, assembler, refresher, reg)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	go func() {
		logrus.Infof("Server starting on port %d", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.Fatalf("Server forced to shutdown: %v", err)
	}

	logrus.Info("Server exited")
}
