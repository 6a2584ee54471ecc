package models

import (
	"time"

	"gorm.io/datatypes"
)

const NotificationTypeCandidatureStatus = "candidature_status"

type Notification struct {
	BaseModel
	UserID  string         `gorm:"type:varchar(36);not null;index" json:"user_id"`
	Type    string         `gorm:"size:64;not null" json:"type"`
	Title   string         `gorm:"size:255;not null" json:"title"`
	Message string         `gorm:"type:text" json:"message"`
	Data    datatypes.JSON `json:"data"`
	ReadAt  *time.Time     `json:"read_at"`

	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}
