package services_test

import (
	"testing"
	"time"

	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/email"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/storage"
	"jobboard_backend/test/helpers"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type testEnv struct {
	db       *gorm.DB
	svc      *services.ServiceContainer
	mail     *helpers.MailRecorder
	filesDir string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := helpers.NewTestDB(t)
	dir := t.TempDir()
	store, err := storage.NewLocalStorage(storage.Config{BasePath: dir})
	require.NoError(t, err)
	templates, err := email.NewTemplateManager()
	require.NoError(t, err)

	mail := &helpers.MailRecorder{}
	svc := services.NewServiceContainer(services.Dependencies{
		Tokens:           auth.NewTokenManager("test-secret", time.Hour),
		Storage:          store,
		Mailer:           mail,
		Templates:        templates,
		FrontendURL:      "http://front.test/",
		PasswordResetTTL: time.Hour,
		ThumbnailMaxSize: 2 << 20,
		DocumentMaxSize:  5 << 20,
	})

	return &testEnv{db: db, svc: svc, mail: mail, filesDir: dir}
}
