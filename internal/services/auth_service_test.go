package services_test

import (
	"regexp"
	"testing"

	"jobboard_backend/internal/models"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"
	"jobboard_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var resetTokenPattern = regexp.MustCompile(`<code>([0-9a-f]+)</code>`)

func TestAuthService_RegisterLoginLogout(t *testing.T) {
	env := newTestEnv(t)
	svc := env.svc.AuthService

	resp, err := svc.Register(env.db, &dto.RegisterRequest{
		Name:     "Carl",
		Email:    "Carl@Example.com",
		Password: "password123",
		Role:     models.UserRoleCandidate,
	})
	require.NoError(t, err)
	assert.Equal(t, "carl@example.com", resp.User.Email)
	assert.Equal(t, models.UserRoleCandidate, resp.Role)
	assert.Equal(t, "bearer", resp.Authorisation.Type)

	claims, err := svc.Authenticate(env.db, resp.Authorisation.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, claims.UserID)

	_, err = svc.Register(env.db, &dto.RegisterRequest{
		Name: "Dup", Email: "carl@example.com", Password: "password123", Role: models.UserRoleRecruiter,
	})
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 422, appErr.HTTPCode)

	_, err = svc.Login(env.db, &dto.LoginRequest{Email: "carl@example.com", Password: "wrong-password"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	_, err = svc.Login(env.db, &dto.LoginRequest{Email: "nobody@example.com", Password: "password123"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	login, err := svc.Login(env.db, &dto.LoginRequest{Email: "carl@example.com", Password: "password123"})
	require.NoError(t, err)

	// Выход отзывает только текущий токен
	require.NoError(t, svc.Logout(env.db, claims.ID))
	_, err = svc.Authenticate(env.db, resp.Authorisation.Token)
	assert.ErrorIs(t, err, apperrors.ErrUnauthenticated)
	_, err = svc.Authenticate(env.db, login.Authorisation.Token)
	assert.NoError(t, err)
}

func TestAuthService_PasswordReset(t *testing.T) {
	env := newTestEnv(t)
	svc := env.svc.AuthService
	user := helpers.CreateUser(t, env.db, "Carl", "carl@example.com", "password123", models.UserRoleCandidate)
	session, err := svc.Login(env.db, &dto.LoginRequest{Email: user.Email, Password: "password123"})
	require.NoError(t, err)

	// Неизвестный email: успех без письма
	require.NoError(t, svc.ForgotPassword(env.db, &dto.ForgotPasswordRequest{Email: "ghost@example.com"}))
	assert.Empty(t, env.mail.Messages())

	require.NoError(t, svc.ForgotPassword(env.db, &dto.ForgotPasswordRequest{Email: user.Email}))
	sent := env.mail.SentTo(user.Email)
	require.Len(t, sent, 1)
	match := resetTokenPattern.FindStringSubmatch(sent[0].HTMLBody)
	require.Len(t, match, 2)
	token := match[1]

	err = svc.ResetPassword(env.db, &dto.ResetPasswordRequest{
		Email: user.Email, Token: "bad-token", Password: "newpassword1", PasswordConfirmation: "newpassword1",
	})
	assert.Error(t, err)

	require.NoError(t, svc.ResetPassword(env.db, &dto.ResetPasswordRequest{
		Email: user.Email, Token: token, Password: "newpassword1", PasswordConfirmation: "newpassword1",
	}))

	// Старые сессии отозваны, токен сброса одноразовый
	_, err = svc.Authenticate(env.db, session.Authorisation.Token)
	assert.ErrorIs(t, err, apperrors.ErrUnauthenticated)

	err = svc.ResetPassword(env.db, &dto.ResetPasswordRequest{
		Email: user.Email, Token: token, Password: "another-pass", PasswordConfirmation: "another-pass",
	})
	assert.Error(t, err)

	_, err = svc.Login(env.db, &dto.LoginRequest{Email: user.Email, Password: "newpassword1"})
	assert.NoError(t, err)
}
