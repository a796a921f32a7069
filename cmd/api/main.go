// @title QuizDeck API
// @version 1.0
// @description Quiz authoring and anonymous quiz-taking API.
// @host localhost:8000
// @BasePath /api
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type 'Bearer YOUR_TOKEN' to authorize.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"quizdeck/internal/adapter"
	"quizdeck/internal/cache"
	"quizdeck/internal/config"
	"quizdeck/internal/database"
	"quizdeck/internal/handler"
	"quizdeck/internal/logger"
	"quizdeck/internal/middleware"
	"quizdeck/internal/repository"
	"quizdeck/internal/service"
	"quizdeck/internal/validation"

	_ "quizdeck/cmd/api/docs"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

// requestLogger logs every HTTP request with its status and duration
func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		path := c.Path()
		method := c.Method()

		err := c.Next()

		logger.Get().Info("HTTP Request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("duration", time.Since(start)),
			zap.String("ip", c.IP()),
			zap.String("user_agent", c.Get("User-Agent")),
		)

		return err
	}
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	db, err := database.NewSQLXOracleDB(cfg.GetDSN())
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	quizRepository := repository.NewQuizDatabaseAdapter(db)
	submissionRepository := repository.NewSubmissionDatabaseAdapter(db)

	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	appLogger.Info("Successfully connected to Redis")
	cacheAdapter := adapter.NewRedisCacheAdapter(redisClient)

	quizCacheService := service.NewQuizCacheService(cacheAdapter, cfg.Cache.QuizTTL)
	quizService := service.NewQuizService(quizRepository, quizCacheService)
	submissionService := service.NewSubmissionService(submissionRepository, quizRepository)

	authService, err := service.NewAuthService(cacheAdapter, cfg)
	if err != nil {
		appLogger.Fatal("Failed to create AuthService", zap.Error(err))
	}

	validator := validation.NewValidator()
	quizHandler := handler.NewQuizHandler(quizService)
	adminQuizHandler := handler.NewAdminQuizHandler(quizService, validator)
	submissionHandler := handler.NewSubmissionHandler(submissionService, validator)
	authHandler := handler.NewAuthHandler(authService, validator)

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		BodyLimit:    10 * 1024 * 1024,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(requestLogger())
	app.Use(cors.New(cors.Config{AllowOrigins: "*", AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS", AllowHeaders: "Origin,Content-Type,Accept,Authorization", MaxAge: 300}))
	app.Use(recover.New())

	app.Get("/swagger/*", swagger.HandlerDefault)

	apiGroup := app.Group("/api")

	apiGroup.Get("/health", func(c *fiber.Ctx) error {
		if err := db.PingContext(c.Context()); err != nil {
			return fiber.NewError(fiber.StatusServiceUnavailable, "database unreachable")
		}
		if err := cacheAdapter.Ping(c.Context()); err != nil {
			return fiber.NewError(fiber.StatusServiceUnavailable, "cache unreachable")
		}
		return c.JSON(fiber.Map{"status": "OK"})
	})

	authGroup := apiGroup.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", middleware.Protected(authService), authHandler.Logout)

	// Order matters: the admin routes must register before the :id wildcard.
	quizGroup := apiGroup.Group("/quizzes")
	quizGroup.Get("/admin/all", middleware.Protected(authService), adminQuizHandler.List)
	quizGroup.Get("/admin/:id", middleware.Protected(authService), adminQuizHandler.Get)
	quizGroup.Get("/", quizHandler.ListPublished)
	quizGroup.Get("/:id", quizHandler.GetPublished)
	quizGroup.Post("/", middleware.Protected(authService), adminQuizHandler.Create)
	quizGroup.Put("/:id", middleware.Protected(authService), adminQuizHandler.Update)
	quizGroup.Delete("/:id", middleware.Protected(authService), adminQuizHandler.Delete)
	quizGroup.Patch("/:id/publish", middleware.Protected(authService), adminQuizHandler.Publish)
	quizGroup.Patch("/:id/unpublish", middleware.Protected(authService), adminQuizHandler.Unpublish)

	submissionGroup := apiGroup.Group("/submissions")
	submissionGroup.Post("/start", submissionHandler.Start)
	submissionGroup.Post("/finish", submissionHandler.Finish)

	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", os.Getenv("ENV")))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
