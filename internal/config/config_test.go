package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_FileWithDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	path := writeConfig(t, `
server:
  port: 9000
  env: production
database:
  driver: mysql
  url: user:pass@tcp(localhost:3306)/talentpool
jwt:
  secret: s3cret
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.False(t, cfg.IsDevelopment())

	// Значения по умолчанию
	assert.Equal(t, 60, cfg.JWT.TTL)
	assert.Equal(t, int64(2048*1024), cfg.Upload.ThumbnailMaxSize)
	assert.Equal(t, int64(5120*1024), cfg.Upload.DocumentMaxSize)
	assert.Equal(t, "local", cfg.Storage.Type)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, 100, cfg.Email.QueueSize)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
database:
  url: postgres://file
jwt:
  secret: from-file
`)
	t.Setenv("DATABASE_URL", "postgres://env")
	t.Setenv("JWT_SECRET", "from-env")
	t.Setenv("SERVER_PORT", "8081")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test,http://b.test")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "postgres://env", cfg.Database.DSN)
	assert.Equal(t, "from-env", cfg.JWT.Secret)
	assert.Equal(t, 8081, cfg.Server.Port)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_MissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "absent.yaml")

	t.Run("без DATABASE_URL - ошибка", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "")
		_, err := Load(missing)
		assert.Error(t, err)
	})

	t.Run("DSN из окружения", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "postgres://env-only")
		cfg, err := Load(missing)
		require.NoError(t, err)
		assert.Equal(t, "postgres://env-only", cfg.Database.DSN)
		assert.Equal(t, "postgres", cfg.Database.Driver)
	})
}

func TestValidate(t *testing.T) {
	cfg := &Config{}
	cfg.Database.DSN = "postgres://x"
	cfg.Database.Driver = "postgres"
	cfg.Server.Env = "production"

	assert.Error(t, cfg.Validate(), "секрет JWT обязателен вне development")

	cfg.JWT.Secret = "secret"
	assert.NoError(t, cfg.Validate())

	cfg.Database.Driver = "oracle"
	assert.Error(t, cfg.Validate())

	cfg.Database.Driver = "postgres"
	cfg.Database.DSN = ""
	assert.Error(t, cfg.Validate())
}
