package apperrors

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_IsSurvivesCopies(t *testing.T) {
	detailed := ErrAnnonceNotFound.WithDetails(map[string]string{"id": "x"})
	wrapped := fmt.Errorf("service: %w", detailed)

	assert.True(t, errors.Is(wrapped, ErrAnnonceNotFound))
	assert.False(t, errors.Is(wrapped, ErrCandidatureNotFound))
	assert.Nil(t, ErrAnnonceNotFound.Details, "исходная переменная не мутирует")
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("connection reset")
	err := InternalError(cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "[system:INTERNAL_ERROR] Internal server error (connection reset)", err.Error())
}

func TestAppError_JSON(t *testing.T) {
	data, err := json.Marshal(FieldError("name", "The name has already been taken."))
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"code": "VALIDATION_FAILED",
		"domain": "validation",
		"message": "Validation failed",
		"details": {"name": "The name has already been taken."}
	}`, string(data))
}

func TestHandleError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	run := func(err error) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
		HandleError(c, err)
		return w
	}

	t.Run("AppError", func(t *testing.T) {
		w := run(ErrNotAnnonceOwner)
		assert.Equal(t, http.StatusForbidden, w.Code)

		var body map[string]map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "FORBIDDEN", body["error"]["code"])
	})

	t.Run("обычная ошибка превращается в 500", func(t *testing.T) {
		w := run(errors.New("boom"))
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})

	t.Run("детали скрыты вне debug", func(t *testing.T) {
		SetDebug(false)
		defer SetDebug(true)

		w := run(InternalError(errors.New("boom")).WithDetails("stack"))
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "stack")
	})
}
