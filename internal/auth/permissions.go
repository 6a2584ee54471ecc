package auth

import "jobboard_backend/internal/models"

// Permission - право на действие, проверяемое на уровне маршрута
type Permission string

const (
	PermAnnoncesWrite      Permission = "annonces:write"
	PermCandidaturesRead   Permission = "candidatures:read"
	PermCandidaturesWrite  Permission = "candidatures:write"
	PermCandidaturesReview Permission = "candidatures:review"
	PermCategoriesWrite    Permission = "categories:write"
	PermUsersManage        Permission = "users:manage"
	PermStatsRecruiter     Permission = "stats:recruteur"
	PermStatsGlobal        Permission = "stats:global"
)

// Permissions - таблица прав по ролям
var Permissions = map[models.UserRole][]Permission{
	models.UserRoleAdmin: {
		PermCategoriesWrite,
		PermUsersManage,
		PermStatsGlobal,
	},
	models.UserRoleRecruiter: {
		PermAnnoncesWrite,
		PermCandidaturesRead,
		PermCandidaturesReview,
		PermStatsRecruiter,
	},
	models.UserRoleCandidate: {
		PermCandidaturesRead,
		PermCandidaturesWrite,
	},
}

// HasPermission проверяет есть ли у роли указанное разрешение
func HasPermission(role models.UserRole, permission Permission) bool {
	for _, p := range Permissions[role] {
		if p == permission {
			return true
		}
	}
	return false
}
