package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/SscSPs/corp_portal/internal/adapters/database/memory"
	"github.com/SscSPs/corp_portal/internal/core/services"
	"github.com/SscSPs/corp_portal/internal/dto"
	"github.com/SscSPs/corp_portal/internal/handlers"
	"github.com/SscSPs/corp_portal/internal/middleware"
	"github.com/SscSPs/corp_portal/internal/platform/config"
	"github.com/SscSPs/corp_portal/internal/seed"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// @title Corporate Portal API
// @version 1.0
// @description Announcements, documents, chat, officer directory and analytics with role-based visibility.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey ActingUser
// @in header
// @name X-User-ID
// @description Seeded user id to act as. X-Portal-Role may override the role when the role switcher is enabled.

// @security ActingUser
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: parseLogLevel(cfg.LogLevel)}))
	slog.SetDefault(logger)

	repos := memory.NewRepositoryProvider(seed.Load())
	serviceContainer := services.NewServiceContainer(repos)
	logger.Info("In-memory repositories seeded with demo data.")

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := dto.RegisterValidators(v); err != nil {
			logger.Error("Failed to register validators", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	rateLimiter, err := middleware.NewRateLimiter(cfg.RateLimit)
	if err != nil {
		logger.Error("Invalid rate limit", slog.String("rate", cfg.RateLimit), slog.String("error", err.Error()))
		os.Exit(1)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS, rate limiting)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", middleware.UserIDHeader, middleware.RoleHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimit(rateLimiter))
	if cfg.EnableMetrics {
		r.Use(middleware.MetricsMiddleware())
	}

	err = r.SetTrustedProxies(nil)
	if err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer)

	logger.Info("Server starting", slog.String("port", cfg.Port), slog.Bool("role_switcher", cfg.EnableRoleSwitcher))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
