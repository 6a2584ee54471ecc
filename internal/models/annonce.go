package models

type Annonce struct {
	BaseModel
	Title       string  `gorm:"size:255;not null" json:"title"`
	Description string  `gorm:"type:text;not null" json:"description"`
	Thumbnail   *string `gorm:"size:512" json:"thumbnail"`
	CategorieID string  `gorm:"type:varchar(36);not null;index" json:"categorie_id"`
	RecruteurID string  `gorm:"type:varchar(36);not null;index" json:"recruteur_id"`

	// Relations
	Categorie    *Category     `gorm:"foreignKey:CategorieID;constraint:OnDelete:RESTRICT" json:"categorie,omitempty"`
	Recruteur    *User         `gorm:"foreignKey:RecruteurID;constraint:OnDelete:CASCADE" json:"recruteur,omitempty"`
	Candidatures []Candidature `gorm:"foreignKey:AnnonceID" json:"candidatures,omitempty"`
}

// IsOwnedBy - является ли пользователь владельцем вакансии
func (a *Annonce) IsOwnedBy(userID string) bool {
	return a.RecruteurID == userID
}
