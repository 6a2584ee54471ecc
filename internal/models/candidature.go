package models

type Candidature struct {
	BaseModel
	Objet      string            `gorm:"size:255;not null" json:"objet"`
	Lettre     string            `gorm:"type:text;not null" json:"lettre"`
	Document   *string           `gorm:"size:512" json:"document"`
	Statut     CandidatureStatus `gorm:"type:varchar(20);not null;default:'En attente';index" json:"statut"`
	AnnonceID  string            `gorm:"type:varchar(36);not null;index" json:"annonce_id"`
	CandidatID string            `gorm:"type:varchar(36);not null;index" json:"candidat_id"`

	// Relations
	Annonce  *Annonce `gorm:"foreignKey:AnnonceID;constraint:OnDelete:CASCADE" json:"annonce,omitempty"`
	Candidat *User    `gorm:"foreignKey:CandidatID;constraint:OnDelete:CASCADE" json:"candidat,omitempty"`
}

// IsSubmittedBy - является ли пользователь автором кандидатуры
func (c *Candidature) IsSubmittedBy(userID string) bool {
	return c.CandidatID == userID
}
