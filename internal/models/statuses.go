package models

type UserRole string
type CandidatureStatus string

const (
	UserRoleAdmin     UserRole = "Administrateur"
	UserRoleRecruiter UserRole = "Recruteur"
	UserRoleCandidate UserRole = "Candidat"

	CandidatureStatusPending  CandidatureStatus = "En attente"
	CandidatureStatusAccepted CandidatureStatus = "Accepte"
	CandidatureStatusRejected CandidatureStatus = "Refuse"
)

// UserRoles - все роли, в порядке вывода статистики
var UserRoles = []UserRole{UserRoleAdmin, UserRoleRecruiter, UserRoleCandidate}

// CandidatureStatuses - все статусы кандидатуры
var CandidatureStatuses = []CandidatureStatus{
	CandidatureStatusPending,
	CandidatureStatusAccepted,
	CandidatureStatusRejected,
}

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleAdmin, UserRoleRecruiter, UserRoleCandidate:
		return true
	}
	return false
}

func (s CandidatureStatus) IsValid() bool {
	switch s {
	case CandidatureStatusPending, CandidatureStatusAccepted, CandidatureStatusRejected:
		return true
	}
	return false
}
