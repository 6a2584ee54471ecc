package validator

import (
	"log"

	"jobboard_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules регистрирует кастомные функции валидации
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// Без правила приложение не должно запускаться
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	// 'candidature_status': En attente / Accepte / Refuse
	mustRegister("candidature_status", validateCandidatureStatus)

	// 'user_role': любая из трех ролей
	mustRegister("user_role", validateUserRole)

	// 'self_register_role': роли, доступные при регистрации (без администратора)
	mustRegister("self_register_role", validateSelfRegisterRole)
}

func validateCandidatureStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // пустые значения проверяет 'required'
	}
	return models.CandidatureStatus(value).IsValid()
}

func validateUserRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.UserRole(value).IsValid()
}

func validateSelfRegisterRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.UserRole(value) {
	case models.UserRoleRecruiter, models.UserRoleCandidate:
		return true
	default:
		return false
	}
}
