package helpers

import (
	"fmt"
	"os"
	"sync/atomic"
	"testing"

	"jobboard_backend/internal/app"
	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/config"
	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var dbSeq atomic.Int64

// NewTestDB открывает чистую БД с примененными миграциями.
// По умолчанию - in-memory SQLite; с TEST_DATABASE_URL - PostgreSQL (таблицы очищаются).
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	logger.Init("test")
	auth.SetPasswordCost(bcrypt.MinCost)

	cfg := &config.Config{}
	cfg.Database.SlowQueryMs = 500

	dsn := os.Getenv("TEST_DATABASE_URL")

	var dialector gorm.Dialector
	if dsn != "" {
		dialector = postgres.Open(dsn)
	} else {
		// Отдельная именованная in-memory БД на каждый тест
		name := fmt.Sprintf("file:jobboard_test_%d?mode=memory&cache=shared&_pragma=foreign_keys(1)", dbSeq.Add(1))
		dialector = sqlite.Open(name)
	}

	db, err := gorm.Open(dialector, app.GormConfig(cfg))
	require.NoError(t, err, "Не удалось открыть тестовую БД")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	if dsn == "" {
		// SQLite: одно соединение, иначе параллельные транзакции упираются в блокировку таблиц
		sqlDB.SetMaxOpenConns(1)
	}

	require.NoError(t, app.Migrate(db), "Не удалось выполнить миграции")
	if dsn != "" {
		ClearTables(t, db)
	}

	t.Cleanup(func() {
		sqlDB.Close()
	})
	return db
}

// ClearTables очищает все таблицы (PostgreSQL)
func ClearTables(t *testing.T, db *gorm.DB) {
	t.Helper()
	err := db.Exec("TRUNCATE TABLE notifications, candidatures, annonces, categories, password_resets, access_tokens, users CASCADE").Error
	require.NoError(t, err, "Не удалось очистить таблицы")
}

// CreateUser создает пользователя напрямую в БД с захешированным паролем
func CreateUser(t *testing.T, db *gorm.DB, name, email, password string, role models.UserRole) *models.User {
	t.Helper()

	hash, err := auth.HashPassword(password)
	require.NoError(t, err)

	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	}
	require.NoError(t, db.Create(user).Error, "Не удалось создать пользователя %s", email)
	return user
}

// CreateCategory создает категорию
func CreateCategory(t *testing.T, db *gorm.DB, name string) *models.Category {
	t.Helper()

	category := &models.Category{Name: name}
	require.NoError(t, db.Create(category).Error, "Не удалось создать категорию %s", name)
	return category
}

// CreateAnnonce создает вакансию рекрутера в категории
func CreateAnnonce(t *testing.T, db *gorm.DB, recruteurID, categoryID, title string) *models.Annonce {
	t.Helper()

	annonce := &models.Annonce{
		Title:       title,
		Description: "Description de " + title,
		CategorieID: categoryID,
		RecruteurID: recruteurID,
	}
	require.NoError(t, db.Omit("Categorie", "Recruteur", "Candidatures").Create(annonce).Error)
	return annonce
}

// CreateCandidature создает кандидатуру в статусе "En attente"
func CreateCandidature(t *testing.T, db *gorm.DB, candidatID, annonceID string) *models.Candidature {
	t.Helper()

	candidature := &models.Candidature{
		Objet:      "Candidature spontanée",
		Lettre:     "Madame, Monsieur...",
		Statut:     models.CandidatureStatusPending,
		AnnonceID:  annonceID,
		CandidatID: candidatID,
	}
	require.NoError(t, db.Omit("Annonce", "Candidat").Create(candidature).Error)
	return candidature
}
