package helpers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"jobboard_backend/internal/app"
	"jobboard_backend/internal/config"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type TestServer struct {
	Server   *httptest.Server
	DB       *gorm.DB
	Mail     *MailRecorder
	Storage  storage.Storage
	Services *services.ServiceContainer
}

// TestConfig - конфигурация без файла и окружения
func TestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Server.Env = "test"
	cfg.Server.MaxBodySize = 8 << 20
	cfg.Database.Driver = "postgres"
	cfg.Database.SlowQueryMs = 500
	cfg.JWT.Secret = "test-secret-key-for-jobboard"
	cfg.JWT.TTL = 60
	cfg.Email.FrontendURL = "http://frontend.test"
	cfg.Upload.ThumbnailMaxSize = 2048 * 1024
	cfg.Upload.DocumentMaxSize = 5120 * 1024
	cfg.Auth.PasswordResetTTL = 60
	cfg.CORS.AllowedOrigins = []string{"*"}
	return cfg
}

// NewTestServer поднимает полный роутер поверх тестовой БД и локального хранилища во временном каталоге
func NewTestServer(t *testing.T) *TestServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := NewTestDB(t)

	store, err := storage.NewLocalStorage(storage.Config{BasePath: t.TempDir()})
	require.NoError(t, err)

	mail := &MailRecorder{}
	handler, container, err := app.SetupRouter(TestConfig(), db, app.Dependencies{
		Storage: store,
		Mailer:  mail,
	})
	require.NoError(t, err, "Не удалось собрать роутер")

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return &TestServer{
		Server:   server,
		DB:       db,
		Mail:     mail,
		Storage:  store,
		Services: container,
	}
}

// SendRequest отправляет JSON-запрос и возвращает ответ с телом
func (ts *TestServer) SendRequest(t *testing.T, method, path, token string, body interface{}) (*http.Response, string) {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err, "Ошибка кодирования JSON для запроса")
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, ts.Server.URL+path, reqBody)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return ts.do(t, req, token)
}

// SendMultipart отправляет multipart/form-data (поля и файлы)
func (ts *TestServer) SendMultipart(t *testing.T, method, path, token string, fields map[string]string, files map[string]FileUpload) (*http.Response, string) {
	t.Helper()

	body, contentType := MultipartBody(t, fields, files)
	req, err := http.NewRequest(method, ts.Server.URL+path, body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", contentType)
	return ts.do(t, req, token)
}

func (ts *TestServer) do(t *testing.T, req *http.Request, token string) (*http.Response, string) {
	t.Helper()

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := ts.Server.Client().Do(req)
	require.NoError(t, err, "Ошибка отправки HTTP-запроса")
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	require.NoError(t, err, "Ошибка чтения тела ответа")
	return res, string(resBody)
}

// authResponse - нужная тестам часть ответа /register и /login
type authResponse struct {
	User struct {
		ID string `json:"id"`
	} `json:"user"`
	Authorisation struct {
		Token string `json:"token"`
	} `json:"authorisation"`
}

// Register регистрирует пользователя через API и возвращает токен и ID
func (ts *TestServer) Register(t *testing.T, name, email string, role models.UserRole) (string, string) {
	t.Helper()

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/register", "", map[string]interface{}{
		"name":     name,
		"email":    email,
		"password": "password123",
		"role":     role,
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, "Регистрация должна пройти. Ответ: %s", body)

	var parsed authResponse
	require.NoError(t, json.Unmarshal([]byte(body), &parsed))
	require.NotEmpty(t, parsed.Authorisation.Token)
	return parsed.Authorisation.Token, parsed.User.ID
}

// Login выполняет вход и возвращает токен
func (ts *TestServer) Login(t *testing.T, email, password string) string {
	t.Helper()

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/login", "", map[string]string{
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusOK, res.StatusCode, "Логин должен быть успешным. Ответ: %s", body)

	var parsed authResponse
	require.NoError(t, json.Unmarshal([]byte(body), &parsed))
	return parsed.Authorisation.Token
}

// CreateAdmin создает администратора в БД и логинит его
func (ts *TestServer) CreateAdmin(t *testing.T, email string) (string, *models.User) {
	t.Helper()

	admin := CreateUser(t, ts.DB, "Admin", email, "password123", models.UserRoleAdmin)
	return ts.Login(t, email, "password123"), admin
}

// Decode разбирает JSON-тело ответа
func Decode(t *testing.T, body string, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal([]byte(body), v), "Не удалось распарсить JSON: %s", body)
}
