package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"dev-orbit.backend/internal/config"
	"dev-orbit.backend/internal/infrastructure/notifier"
	"dev-orbit.backend/internal/infrastructure/repositories"
	"dev-orbit.backend/internal/interfaces/http/handlers"
	"dev-orbit.backend/internal/interfaces/http/middleware"
	"dev-orbit.backend/internal/usecases"
	"dev-orbit.backend/pkg/jwt"
	"dev-orbit.backend/pkg/logger"
	"dev-orbit.backend/pkg/redis"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt:    false,
			TranslateError: true,
		})
	}
	newTokenStore = redis.NewTokenStore
	runServer     = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB      = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func smtpProvider(c config.SMTPConfig) notifier.Provider {
	return notifier.Provider{
		Host:     c.Host,
		Port:     c.Port,
		Username: c.Username,
		Password: c.Password,
		From:     c.From,
	}
}

func runMainProcess() error {
	// Load .env file
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := loadCfg()

	// Initialize Logger
	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	// Initialize Redis
	if err := initRedis(cfg.Redis.URL, cfg.Redis.Password); err != nil {
		logger.Error(context.Background(), "Failed to initialize Redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	logger.Info(context.Background(), "Redis initialized")

	// Set Gin mode
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database using GORM
	dsn := cfg.Database.URL()
	db, err := openDB(dsn)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		log.Printf("⚠️ Database not available: %v (endpoints will return errors)", err)
	} else {
		log.Println("✅ Connected to PostgreSQL via GORM")
	}

	// Initialize JWT service
	jwtService := jwt.NewJWTService(
		cfg.JWT.Secret,
		cfg.JWT.AccessExpiry,
		cfg.JWT.RefreshExpiry,
	)

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	profileRepo := repositories.NewProfileRepository(db)
	linkRepo := repositories.NewSocialLinkRepository(db)
	postRepo := repositories.NewPostRepository(db)
	verifRepo := repositories.NewVerificationRepository(db)
	uow := repositories.NewUnitOfWork(db)

	// Initialize token store and mail notifier
	tokenStore := newTokenStore()
	mailNotifier := notifier.NewSMTPNotifier(
		smtpProvider(cfg.Mail.Primary),
		smtpProvider(cfg.Mail.Fallback),
	)

	// Initialize usecases
	authUsecase := usecases.NewAuthUsecase(userRepo, profileRepo, linkRepo, uow, jwtService, tokenStore)
	verificationUsecase := usecases.NewVerificationUsecase(userRepo, verifRepo, mailNotifier, tokenStore, cfg.Verification.CodeTTL, cfg.Verification.ResendCooldown)
	postUsecase := usecases.NewPostUsecase(postRepo, userRepo)
	userUsecase := usecases.NewUserUsecase(userRepo, profileRepo, linkRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authUsecase, userUsecase)
	verificationHandler := handlers.NewVerificationHandler(verificationUsecase)
	postHandler := handlers.NewPostHandler(postUsecase)
	userHandler := handlers.NewUserHandler(userUsecase)

	// Create bearer auth middleware
	authMiddleware := middleware.AuthMiddleware(jwtService, userRepo)

	// Initialize router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.MetricsMiddleware())

	applyCORSMiddleware(r)
	registerHealthRoute(r)
	registerMetricsRoute(r)
	registerAPIV1Routes(r, routeDeps{
		authHandler:         authHandler,
		verificationHandler: verificationHandler,
		postHandler:         postHandler,
		userHandler:         userHandler,
		authMiddleware:      authMiddleware,
	})

	// Print all registered routes for debugging
	log.Println("📋 Registered Routes:")
	for _, route := range r.Routes() {
		log.Printf("   %s %s", route.Method, route.Path)
	}

	// Graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("🛑 Shutting down server...")
	}()

	// Start server
	log.Printf("🚀 DEV ORBIT Backend starting on port %s", cfg.Server.Port)
	log.Printf("📚 API: http://localhost:%s/api/v1", cfg.Server.Port)
	log.Printf("❤️ Health: http://localhost:%s/health", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
