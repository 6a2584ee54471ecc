package handlers

// AppHandlers содержит все хэндлеры приложения.
type AppHandlers struct {
	AuthHandler         *AuthHandler
	UserHandler         *UserHandler
	CategoryHandler     *CategoryHandler
	AnnonceHandler      *AnnonceHandler
	CandidatureHandler  *CandidatureHandler
	StatisticsHandler   *StatisticsHandler
	NotificationHandler *NotificationHandler
	FileHandler         *FileHandler
	HealthHandler       *HealthHandler
}
