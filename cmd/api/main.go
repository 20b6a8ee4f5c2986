package main

import (
	"context"
	"fmt"
	stdlog "log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/JustTro11/property-management/docs" // swagger docs
	"github.com/JustTro11/property-management/internal/api/handlers"
	"github.com/JustTro11/property-management/internal/api/middleware"
	"github.com/JustTro11/property-management/internal/api/routes"
	"github.com/JustTro11/property-management/internal/domain/analytics"
	"github.com/JustTro11/property-management/internal/domain/inquiry"
	"github.com/JustTro11/property-management/internal/domain/property"
	"github.com/JustTro11/property-management/internal/infrastructure/cache"
	"github.com/JustTro11/property-management/internal/infrastructure/geocode"
	"github.com/JustTro11/property-management/internal/infrastructure/mailer"
	"github.com/JustTro11/property-management/internal/infrastructure/persistence/postgres/connection"
	"github.com/JustTro11/property-management/internal/infrastructure/persistence/postgres/migrations"
	"github.com/JustTro11/property-management/internal/infrastructure/scheduler"
	"github.com/JustTro11/property-management/pkg/config"
	"github.com/JustTro11/property-management/pkg/logger"
	"github.com/JustTro11/property-management/pkg/security/auth"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// @title           LuxeLiving API
// @version         1.0
// @description     Property listing, tour inquiry and analytics API for the LuxeLiving rental platform.

// @contact.name   API Support

// @host      localhost:8000
// @BasePath

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.LoadConfig("") // Empty string will make it search in default locations
	if err != nil {
		stdlog.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	log := logger.NewLogger()
	defer log.Sync()

	log.Info("Configuration loaded successfully")
	log.Info("Server mode: " + cfg.Server.Mode)

	// Set up Gin
	if cfg.Server.Mode == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}
	gin.DefaultWriter = os.Stdout

	router := gin.New()

	tracing := middleware.NewTracingMiddleware()
	router.Use(gin.Recovery())
	router.Use(tracing.TraceRequest())
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: len(cfg.CORS.AllowedOrigins) == 0,
		AllowOrigins:    cfg.CORS.AllowedOrigins,
		AllowMethods:    cfg.CORS.AllowedMethods,
		AllowHeaders: append(cfg.CORS.AllowedHeaders,
			"Accept-Encoding",
			"Content-Type",
			"Authorization",
			"X-Request-ID",
		),
		ExposeHeaders: []string{
			"Content-Length",
			"Content-Type",
			"X-RateLimit-Remaining",
			"X-RateLimit-Reset",
			"X-Request-ID",
		},
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	// Prometheus metrics endpoint
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Connect to database
	db, err := connection.NewDatabase(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}

	// Run database migrations
	if err := migrations.AutoMigrate(db, log.Logger); err != nil {
		log.Fatal("Failed to run database migrations", zap.Error(err))
	}

	// Redis is optional: listing reads fall back to uncached responses
	// and rate limiting is skipped when it is unreachable.
	var redisClient *cache.RedisClient
	var rateLimiter auth.RateLimiter
	var cacheMiddleware *middleware.CacheMiddleware
	redisConfig := cache.NewConfigFromEnv(cfg)
	redisClient, err = cache.NewRedisClient(redisConfig)
	if err != nil {
		log.Warn("Redis unavailable, continuing without cache and rate limiting", zap.Error(err))
		redisClient = nil
	} else {
		defer redisClient.Close()
		rateLimiter = auth.NewRedisRateLimiter(redisClient.GetClient(), 1*time.Minute, 60)
		cacheMiddleware = middleware.NewCacheMiddleware(redisClient, "luxeliving", 5*time.Minute)
	}

	// Logrus logger for the mail-sending path
	mailLogger := logrus.New()
	mailLogger.SetFormatter(&logrus.JSONFormatter{})
	if cfg.Server.Mode == "production" {
		mailLogger.SetLevel(logrus.InfoLevel)
	} else {
		mailLogger.SetLevel(logrus.DebugLevel)
	}

	// Initialize repositories
	propertyRepo := property.NewRepository(db)
	analyticsRepo := analytics.NewRepository(db)

	// Initialize services
	geocoder := geocode.NewClient(cfg.Geocode.BaseURL, cfg.Geocode.UserAgent, cfg.Geocode.Timeout)
	propertyService := property.NewService(propertyRepo, geocoder, cfg.Properties.ForceMockData, log.Logger)
	analyticsService := analytics.NewService(analyticsRepo, log.Logger)

	mailClient := mailer.NewClient(cfg.Email.ResendAPIKey, mailLogger)
	inquiryService := inquiry.NewService(mailClient, analyticsService, cfg.Email.FromAddress, cfg.Email.AdminEmail, mailLogger)

	jwtService := auth.NewJWTService(cfg)
	authService := auth.NewService(cfg, jwtService)

	// Session cleanup and nightly cache metric rollover
	maintenance := scheduler.NewScheduler(auth.GetSessionStore(), redisClient, log)
	maintenance.Start()

	// Initialize handlers
	propertyHandler := handlers.NewPropertyHandler(propertyService, cfg.Properties.PageSize)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)
	inquiryHandler := handlers.NewInquiryHandler(inquiryService)
	authHandler := handlers.NewAuthHandler(authService)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check routes (no /api prefix as these are system endpoints)
	routes.SetupHealthRoutes(router, db, redisClient)

	propertyRoutes := routes.NewPropertyRoutes(propertyHandler, cfg.Auth.JWTSecret)
	propertyRoutes.RegisterRoutes(router, cacheMiddleware)
	log.Info("Registered property routes at /api/properties")

	analyticsRoutes := routes.NewAnalyticsRoutes(analyticsHandler, cfg.Auth.JWTSecret)
	analyticsRoutes.RegisterRoutes(router)
	log.Info("Registered analytics routes at /api/analytics")

	inquiryRoutes := routes.NewInquiryRoutes(inquiryHandler, rateLimiter)
	inquiryRoutes.RegisterRoutes(router)
	log.Info("Registered inquiry routes at /api/inquiries")

	authRoutes := routes.NewAuthRoutes(authHandler, cfg.Auth.JWTSecret, rateLimiter)
	authRoutes.RegisterRoutes(router)
	log.Info("Registered auth routes at /api/auth")

	// Start server
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		log.Info(fmt.Sprintf("Server starting on port %d", cfg.Server.Port))
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	// Shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	log.Info("Shutting down server...")
	maintenance.Stop()
	if err := server.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited properly")
}
