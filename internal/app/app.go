package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/config"
	"jobboard_backend/internal/email"
	"jobboard_backend/internal/handlers"
	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/middleware"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/routes"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/storage"
	"jobboard_backend/internal/validator"
	"jobboard_backend/internal/workers"
	"jobboard_backend/pkg/apperrors"

	_ "jobboard_backend/docs"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Dependencies - внешние зависимости роутера. Пустые поля создаются из конфига.
type Dependencies struct {
	Storage storage.Storage
	Mailer  services.MailQueue
}

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)
	apperrors.SetDebug(cfg.IsDevelopment())

	logger.Info("Connecting to database...", "driver", cfg.Database.Driver)
	gormDB, err := OpenDatabase(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	logger.Info("Database connected")

	if cfg.Database.AutoMigrate {
		if err := Migrate(gormDB); err != nil {
			logger.Fatal("Failed to migrate database", "error", err)
		}
		logger.Info("Database schema migrated")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	mailer := workers.NewMailDispatcher(newEmailProvider(cfg), cfg.Email.QueueSize)
	mailer.Start(ctx)

	cleanup := workers.NewTokenCleanupWorker(
		gormDB,
		repositories.NewAccessTokenRepository(),
		repositories.NewPasswordResetRepository(),
		time.Duration(cfg.Auth.CleanupInterval)*time.Minute,
		time.Duration(cfg.Auth.PasswordResetTTL)*time.Minute,
	)
	cleanup.Start(ctx)

	handler, container, err := SetupRouter(cfg, gormDB, Dependencies{Mailer: mailer})
	if err != nil {
		logger.Fatal("Failed to set up router", "error", err)
	}

	if err := seedFirstAdmin(gormDB, cfg, container.UserService); err != nil {
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         address,
		Handler:      handler,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	go func() {
		logger.Info(fmt.Sprintf("🚀 Server starting on %s", address))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server startup error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", "error", err)
	}

	mailer.Wait()

	if sqlDB, err := gormDB.DB(); err == nil {
		sqlDB.Close()
	}
	logger.Info("Server stopped")
}

// SetupRouter собирает сервисы, хэндлеры и маршруты поверх готового соединения с БД
func SetupRouter(cfg *config.Config, gormDB *gorm.DB, deps Dependencies) (http.Handler, *services.ServiceContainer, error) {
	if deps.Storage == nil {
		storageInstance, err := storage.NewStorage(storage.Config{
			Type:       cfg.Storage.Type,
			BasePath:   cfg.Storage.BasePath,
			Bucket:     cfg.Storage.Bucket,
			Region:     cfg.Storage.Region,
			AccessKey:  cfg.Storage.AccessKey,
			SecretKey:  cfg.Storage.SecretKey,
			Endpoint:   cfg.Storage.Endpoint,
			PublicRead: cfg.Storage.PublicRead,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialize storage: %w", err)
		}
		deps.Storage = storageInstance
		logger.Info("Storage initialized", "type", cfg.Storage.Type)
	}

	templates, err := email.NewTemplateManager()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load email templates: %w", err)
	}
	if cfg.Email.TemplatesDir != "" {
		if err := templates.LoadDir(os.DirFS(cfg.Email.TemplatesDir)); err != nil {
			return nil, nil, fmt.Errorf("failed to load email templates from %s: %w", cfg.Email.TemplatesDir, err)
		}
	}

	// 1. Сервисы
	serviceContainer := services.NewServiceContainer(services.Dependencies{
		Tokens:           auth.NewTokenManager(cfg.JWT.Secret, time.Duration(cfg.JWT.TTL)*time.Minute),
		Storage:          deps.Storage,
		Mailer:           deps.Mailer,
		Templates:        templates,
		FrontendURL:      cfg.Email.FrontendURL,
		PasswordResetTTL: time.Duration(cfg.Auth.PasswordResetTTL) * time.Minute,
		ThumbnailMaxSize: cfg.Upload.ThumbnailMaxSize,
		DocumentMaxSize:  cfg.Upload.DocumentMaxSize,
	})

	// 2. Хэндлеры
	appHandlers := initializeHandlers(serviceContainer)

	// 3. Gin
	ginRouter := initializeGinRouter(cfg, gormDB)
	if cfg.Server.EnableSwagger {
		ginRouter.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// 4. Маршруты
	routes.RegisterRoutes(ginRouter, appHandlers, middleware.AuthMiddleware(serviceContainer.AuthService))

	return middleware.MethodOverride(ginRouter, cfg.Server.MaxBodySize), serviceContainer, nil
}

func initializeHandlers(services *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler:         handlers.NewAuthHandler(baseHandler, services.AuthService, services.UserService),
		UserHandler:         handlers.NewUserHandler(baseHandler, services.UserService),
		CategoryHandler:     handlers.NewCategoryHandler(baseHandler, services.CategoryService),
		AnnonceHandler:      handlers.NewAnnonceHandler(baseHandler, services.AnnonceService),
		CandidatureHandler:  handlers.NewCandidatureHandler(baseHandler, services.CandidatureService),
		StatisticsHandler:   handlers.NewStatisticsHandler(baseHandler, services.StatisticsService),
		NotificationHandler: handlers.NewNotificationHandler(baseHandler, services.NotificationService),
		FileHandler:         handlers.NewFileHandler(baseHandler, services.Files),
		HealthHandler:       handlers.NewHealthHandler(baseHandler),
	}
}

func initializeGinRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.MaxMultipartMemory = cfg.Server.MaxBodySize
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.CORS.AllowedOrigins))
	router.Use(middleware.DBMiddleware(db))
	return router
}

// newEmailProvider возвращает SMTP-провайдер или, без SMTP-хоста, провайдер, пишущий письма в лог
func newEmailProvider(cfg *config.Config) email.Provider {
	if cfg.Email.SMTPHost == "" {
		logger.Warn("SMTP host is not configured, emails will be written to the log")
		return email.NewLogProvider()
	}

	smtpConfig := email.DefaultConfig()
	smtpConfig.Host = cfg.Email.SMTPHost
	smtpConfig.Port = cfg.Email.SMTPPort
	smtpConfig.Username = cfg.Email.SMTPUsername
	smtpConfig.Password = cfg.Email.SMTPPassword
	smtpConfig.FromEmail = cfg.Email.FromEmail
	smtpConfig.FromName = cfg.Email.FromName
	smtpConfig.UseTLS = cfg.Email.UseTLS

	provider := email.NewSMTPProvider(smtpConfig)
	if err := provider.Validate(); err != nil {
		logger.Warn("Invalid SMTP configuration, emails will be written to the log", "error", err)
		return email.NewLogProvider()
	}
	return provider
}

func seedFirstAdmin(db *gorm.DB, cfg *config.Config, userService services.UserService) error {
	if cfg.Admin.Email == "" || cfg.Admin.Password == "" {
		logger.Warn("ADMIN_EMAIL or ADMIN_PASSWORD is not set. Skipping admin seeding.")
		return nil
	}

	name := cfg.Admin.Name
	if name == "" {
		name = "Administrateur"
	}

	created, err := userService.SeedAdmin(db, name, cfg.Admin.Email, cfg.Admin.Password)
	if err != nil {
		return err
	}
	if created {
		logger.Info("✅ Successfully created first admin user", "email", cfg.Admin.Email)
	} else {
		logger.Info("Admin user already exists. Skipping creation.")
	}
	return nil
}
