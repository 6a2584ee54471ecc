package models

// All - модели для AutoMigrate в порядке зависимостей
func All() []interface{} {
	return []interface{}{
		&User{},
		&AccessToken{},
		&PasswordReset{},
		&Category{},
		&Annonce{},
		&Candidature{},
		&Notification{},
	}
}
