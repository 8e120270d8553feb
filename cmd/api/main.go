package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"edu-finder-backend/config"
	_ "edu-finder-backend/docs" // Important for Swagger
	"edu-finder-backend/internal/catalog"
	v1 "edu-finder-backend/internal/delivery/http/v1"
	"edu-finder-backend/internal/domain"
	"edu-finder-backend/internal/repository/memory"
	"edu-finder-backend/internal/repository/postgres"
	redisrepo "edu-finder-backend/internal/repository/redis"
	"edu-finder-backend/internal/usecase"
	"edu-finder-backend/pkg/auth"
	"edu-finder-backend/pkg/database"
	"edu-finder-backend/pkg/logger"
	"edu-finder-backend/pkg/redis"
	"edu-finder-backend/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// @title           Education Opportunity Finder API
// @version         1.0
// @description     Scholarships, schemes, exams, counselling and news filtered for a student profile.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey ClientToken
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init(cfg.LogLevel)
	gin.SetMode(cfg.GinMode)
	logger.Log.Info("Starting opportunity finder", "port", cfg.Port, "storage", cfg.StorageDriver)

	ctx := context.Background()

	// 3. Setup Redis (rate limiting, optionally slot storage)
	if cfg.RedisURL != "" {
		rc, err := redis.Connect(ctx, redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword})
		if err != nil {
			if cfg.StorageDriver == config.StorageRedis {
				logger.Log.Error("Failed to connect to redis", "error", err)
				os.Exit(1)
			}
			logger.Log.Warn("Redis unavailable, rate limiting falls back to memory", "error", err)
		} else {
			redis.SetDefault(rc)
			defer redis.Close()
		}
	}

	// 4. Setup Slot Store
	store, closeStore, err := newSlotStore(ctx, cfg)
	if err != nil {
		logger.Log.Error("Failed to initialise storage", "driver", cfg.StorageDriver, "error", err)
		os.Exit(1)
	}
	defer closeStore()

	// 5. Setup Auth
	tokens, err := auth.NewClientTokens(cfg.ClientTokenSecret)
	if err != nil {
		logger.Log.Error("Invalid client token secret", "error", err)
		os.Exit(1)
	}
	authenticator, err := auth.NewMockAuthenticator(cfg.MockAuthEmail, cfg.MockAuthPassword, cfg.MockAuthPasswordHash)
	if err != nil {
		logger.Log.Error("Invalid mock auth configuration", "error", err)
		os.Exit(1)
	}

	// 6. Setup UseCases
	validate := validator.New()
	validation.RegisterValidators(validate, domain.ProfileChoices())

	registry := catalog.NewRegistry()
	profileUC := usecase.NewProfileUsecase(store, validate)
	savedUC := usecase.NewSavedUsecase(store, registry, profileUC)
	catalogUC := usecase.NewCatalogUsecase(registry, profileUC, savedUC)
	authUC := usecase.NewAuthUsecase(store, authenticator)
	healthUC := usecase.NewHealthUsecase(store, cfg.StorageDriver)

	// 7. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		CatalogUC:    catalogUC,
		ProfileUC:    profileUC,
		SavedUC:      savedUC,
		AuthUC:       authUC,
		HealthUC:     healthUC,
		ClientTokens: tokens,
		NewClientID:  auth.NewClientID,
		Config:       cfg,
	})

	// 8. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Error("Listen failed", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}

func newSlotStore(ctx context.Context, cfg *config.Config) (domain.SlotStore, func(), error) {
	switch cfg.StorageDriver {
	case config.StoragePostgres:
		pool, err := database.NewPostgresConnection(ctx, cfg.DBUrl)
		if err != nil {
			return nil, nil, err
		}
		if err := postgres.EnsureSchema(ctx, pool); err != nil {
			pool.Close()
			return nil, nil, err
		}
		return postgres.NewSlotRepository(pool), pool.Close, nil

	case config.StorageRedis:
		rc := redis.Client()
		if rc == nil {
			return nil, nil, errors.New("redis client not connected")
		}
		ttl := time.Duration(cfg.RedisSlotTTLHours) * time.Hour
		return redisrepo.NewSlotRepository(rc, ttl), func() {}, nil

	case config.StorageMemory:
		return memory.NewSlotStore(), func() {}, nil
	}
	return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
}
