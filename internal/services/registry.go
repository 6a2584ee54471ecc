package services

import (
	"time"

	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/email"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/storage"
)

// ServiceContainer содержит все сервисы приложения.
type ServiceContainer struct {
	AuthService         AuthService
	UserService         UserService
	CategoryService     CategoryService
	AnnonceService      AnnonceService
	CandidatureService  CandidatureService
	StatisticsService   StatisticsService
	NotificationService NotificationService
	Files               *storage.Attachments
}

// Dependencies - внешние зависимости, из которых собирается ServiceContainer
type Dependencies struct {
	Tokens           *auth.TokenManager
	Storage          storage.Storage
	Mailer           MailQueue
	Templates        email.TemplateRenderer
	FrontendURL      string
	PasswordResetTTL time.Duration
	ThumbnailMaxSize int64
	DocumentMaxSize  int64
}

func NewServiceContainer(deps Dependencies) *ServiceContainer {
	userRepo := repositories.NewUserRepository()
	tokenRepo := repositories.NewAccessTokenRepository()
	resetRepo := repositories.NewPasswordResetRepository()
	categoryRepo := repositories.NewCategoryRepository()
	annonceRepo := repositories.NewAnnonceRepository()
	candidatureRepo := repositories.NewCandidatureRepository()
	notificationRepo := repositories.NewNotificationRepository()
	statsRepo := repositories.NewStatisticsRepository()

	files := storage.NewAttachments(deps.Storage)
	notifications := NewNotificationService(notificationRepo, deps.Mailer, deps.Templates, deps.FrontendURL)

	return &ServiceContainer{
		AuthService:         NewAuthService(userRepo, tokenRepo, resetRepo, deps.Tokens, notifications, deps.PasswordResetTTL),
		UserService:         NewUserService(userRepo, annonceRepo, candidatureRepo, files),
		CategoryService:     NewCategoryService(categoryRepo),
		AnnonceService:      NewAnnonceService(annonceRepo, categoryRepo, candidatureRepo, files, storage.ThumbnailPolicy(deps.ThumbnailMaxSize)),
		CandidatureService:  NewCandidatureService(candidatureRepo, annonceRepo, notifications, files, storage.DocumentPolicy(deps.DocumentMaxSize)),
		StatisticsService:   NewStatisticsService(statsRepo),
		NotificationService: notifications,
		Files:               files,
	}
}
