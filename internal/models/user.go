package models

import "time"

type User struct {
	BaseModel
	Name         string   `gorm:"size:255;not null" json:"name"`
	Email        string   `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PasswordHash string   `gorm:"not null" json:"-"`
	Role         UserRole `gorm:"type:varchar(20);not null;index" json:"role"`

	AccessTokens []AccessToken `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

// AccessToken - серверная запись выданного JWT. ID совпадает с claim "jti".
// Токен действителен, пока запись существует и не истекла.
type AccessToken struct {
	ID        string    `gorm:"type:varchar(36);primaryKey"`
	UserID    string    `gorm:"type:varchar(36);not null;index"`
	ExpiresAt time.Time `gorm:"not null;index"`
	CreatedAt time.Time
}

// PasswordReset - одноразовый токен сброса пароля (хранится только хэш)
type PasswordReset struct {
	Email     string    `gorm:"size:255;primaryKey"`
	TokenHash string    `gorm:"not null"`
	CreatedAt time.Time `gorm:"index"`
}
