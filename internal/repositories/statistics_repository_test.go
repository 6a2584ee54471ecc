package repositories_test

import (
	"testing"

	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatisticsRepository(t *testing.T) {
	// 1. Подготовка
	db := helpers.NewTestDB(t)
	repo := repositories.NewStatisticsRepository()

	alice := helpers.CreateUser(t, db, "Alice", "alice@example.com", "password123", models.UserRoleRecruiter)
	bob := helpers.CreateUser(t, db, "Bob", "bob@example.com", "password123", models.UserRoleRecruiter)
	carol := helpers.CreateUser(t, db, "Carol", "carol@example.com", "password123", models.UserRoleCandidate)
	helpers.CreateUser(t, db, "Dave", "dave@example.com", "password123", models.UserRoleRecruiter)

	category := helpers.CreateCategory(t, db, "IT")
	dev := helpers.CreateAnnonce(t, db, alice.ID, category.ID, "Dev")
	ops := helpers.CreateAnnonce(t, db, alice.ID, category.ID, "Ops")
	helpers.CreateAnnonce(t, db, bob.ID, category.ID, "QA")

	helpers.CreateCandidature(t, db, carol.ID, dev.ID)
	accepted := helpers.CreateCandidature(t, db, carol.ID, ops.ID)
	require.NoError(t, db.Model(accepted).Update("statut", models.CandidatureStatusAccepted).Error)

	// 2-3. Действие и проверка
	count, err := repo.CountAnnonces(db, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	count, err = repo.CountAnnonces(db, "")
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	byStatus, err := repo.CandidaturesByStatus(db, alice.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []repositories.GroupCount{
		{Key: "Accepte", Count: 1},
		{Key: "En attente", Count: 1},
	}, byStatus)

	byStatus, err = repo.CandidaturesByStatus(db, bob.ID)
	require.NoError(t, err)
	assert.Empty(t, byStatus)

	byTitle, err := repo.CandidaturesByAnnonceTitle(db, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, []repositories.GroupCount{{Key: "Dev", Count: 1}, {Key: "Ops", Count: 1}}, byTitle)

	byRole, err := repo.UsersByRole(db)
	require.NoError(t, err)
	var sum int64
	for _, row := range byRole {
		sum += row.Count
	}
	total, err := repo.CountUsers(db)
	require.NoError(t, err)
	assert.Equal(t, total, sum, "сумма по ролям равна числу пользователей")

	top, err := repo.TopRecruiters(db, 5)
	require.NoError(t, err)
	require.Len(t, top, 3, "рекрутер без вакансий тоже в рейтинге")
	assert.Equal(t, alice.ID, top[0].ID)
	assert.Equal(t, int64(2), top[0].AnnoncesCount)
	assert.Equal(t, bob.ID, top[1].ID)
	assert.Equal(t, int64(0), top[2].AnnoncesCount)

	top, err = repo.TopRecruiters(db, 1)
	require.NoError(t, err)
	assert.Len(t, top, 1)
}

func TestCategoryRepository_NameExists(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := repositories.NewCategoryRepository()
	it := helpers.CreateCategory(t, db, "IT")

	exists, err := repo.NameExists(db, "IT", "")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.NameExists(db, "IT", it.ID)
	require.NoError(t, err)
	assert.False(t, exists, "собственная запись не считается дублем")

	exists, err = repo.NameExists(db, "Finance", "")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestUserRepository_EmailCaseInsensitive(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := repositories.NewUserRepository()
	user := helpers.CreateUser(t, db, "Alice", "alice@example.com", "password123", models.UserRoleCandidate)

	found, err := repo.FindByEmail(db, "ALICE@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)

	taken, err := repo.EmailExists(db, "Alice@Example.com", "")
	require.NoError(t, err)
	assert.True(t, taken)

	taken, err = repo.EmailExists(db, "alice@example.com", user.ID)
	require.NoError(t, err)
	assert.False(t, taken)
}
