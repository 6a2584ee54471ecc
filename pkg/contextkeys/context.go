package contextkeys

// Используем кастомный тип, чтобы избежать коллизий
type contextKey string

const (
	// DBContextKey - ключ, по которому хранится *gorm.DB в context
	DBContextKey = contextKey("db")

	// UserIDKey, RoleKey, TokenIDKey - данные аутентифицированного пользователя в gin.Context
	UserIDKey  = "userID"
	RoleKey    = "role"
	TokenIDKey = "tokenID"
)
