package main

import (
	"os"
	"os/signal"
	"syscall"

	configs "github.com/campushub/teacher-service/config"
	"github.com/campushub/teacher-service/internal/constants"
	"github.com/campushub/teacher-service/internal/handler"
	"github.com/campushub/teacher-service/internal/middleware"
	"github.com/campushub/teacher-service/internal/repository"
	"github.com/campushub/teacher-service/internal/router"
	"github.com/campushub/teacher-service/internal/service"
	"github.com/campushub/teacher-service/pkg/database"
	"github.com/campushub/teacher-service/pkg/logger"
	"github.com/campushub/teacher-service/pkg/redis"
	"github.com/campushub/teacher-service/pkg/validation"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

func main() {
	config, err := configs.LoadConfig()
	if err != nil {
		panic("Failed to load config: " + err.Error())
	}

	if err := logger.InitLogger(config); err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer logger.Sync()

	logger.GetLogger().Info("Application starting",
		zap.String("app_name", config.App.Name),
		zap.String("environment", config.App.Environment),
		zap.String("version", constants.AppVersion),
	)

	db, err := database.NewPostgresDB(database.Config{
		Host:            config.Database.Host,
		Port:            config.Database.Port,
		User:            config.Database.User,
		Password:        config.Database.Password,
		Database:        config.Database.Name,
		SSLMode:         config.Database.SSLMode,
		MaxIdleConns:    config.Database.MaxIdleConns,
		MaxOpenConns:    config.Database.MaxOpenConns,
		ConnMaxLifetime: config.Database.ConnMaxLifetime,
		ConnMaxIdleTime: config.Database.ConnMaxIdleTime,
	})
	if err != nil {
		logger.GetLogger().Fatal("Failed to connect to database", zap.Error(err))
	}
	defer database.CloseDB(db)

	if err := database.AutoMigrate(db); err != nil {
		logger.GetLogger().Fatal("Failed to run database migrations", zap.Error(err))
	}
	logger.GetLogger().Info("Database migrated successfully")

	if err := database.Seed(db); err != nil {
		// Seed data may already exist, keep starting
		logger.GetLogger().Error("Failed to seed database", zap.Error(err))
	} else {
		logger.GetLogger().Info("Database seeded successfully")
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	teacherRepo := repository.NewTeacherRepository(db)

	// Redis is optional; a disabled client is a no-op cache
	redisClient, err := redis.NewClient(config)
	if err != nil {
		logger.GetLogger().Warn("Redis unavailable, running without cache", zap.Error(err))
		redisClient = redis.NewDisabledClient()
	}
	defer redisClient.Close()

	logger.GetLogger().Info("Redis client initialized",
		zap.Bool("enabled", redisClient.IsEnabled()),
	)

	// Services
	jwtService := service.NewJWTService(config.JWT.Secret, config.JWT.ExpirationTime)
	directoryCache := service.NewDirectoryCache(redisClient, config.Redis.CacheTTL)
	authService := service.NewAuthService(userRepo, teacherRepo, jwtService, directoryCache)
	teacherService := service.NewTeacherService(teacherRepo, userRepo, directoryCache)

	// Handlers
	authHandler := handler.NewAuthHandler(authService)
	teacherHandler := handler.NewTeacherHandler(teacherService)
	healthHandler := handler.NewHealthHandler(db, redisClient)

	// Middleware
	jwtMiddleware := middleware.NewJWTMiddleware(jwtService)

	// Register custom validation rules on gin's binding engine
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := validation.RegisterCustomValidators(v); err != nil {
			logger.GetLogger().Fatal("Failed to register validators", zap.Error(err))
		}
	}

	r := router.NewRouter(
		authHandler,
		teacherHandler,
		healthHandler,
		jwtMiddleware,
		config,
	).SetupRoutes()

	go func() {
		logger.GetLogger().Info("Server starting",
			zap.String("port", config.App.Port),
			zap.String("host", "0.0.0.0"),
		)
		if err := r.Run(":" + config.App.Port); err != nil {
			logger.GetLogger().Fatal("Failed to start server",
				zap.Error(err),
				zap.String("port", config.App.Port),
			)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.GetLogger().Info("Shutting down server...")
}
