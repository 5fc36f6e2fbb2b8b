package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stylemind-ai/stylemind-backend-go/utils"
)

func TestRegisterUserValidation(t *testing.T) {
	e := echo.New()

	tests := []struct {
		name    string
		body    string
		message string
	}{
		{
			name:    "missing name",
			body:    `{"email":"a@b.com","password":"secret1"}`,
			message: "Please enter all required fields",
		},
		{
			name:    "missing email",
			body:    `{"name":"Alex","password":"secret1"}`,
			message: "Please enter all required fields",
		},
		{
			name:    "missing password",
			body:    `{"name":"Alex","email":"a@b.com"}`,
			message: "Please enter all required fields",
		},
		{
			name:    "malformed email",
			body:    `{"name":"Alex","email":"not-an-email","password":"secret1"}`,
			message: "Invalid email format",
		},
		{
			name:    "short password",
			body:    `{"name":"Alex","email":"a@b.com","password":"abc"}`,
			message: "Password must be at least 6 characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(tt.body))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			require.NoError(t, RegisterUser(c))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.message)
		})
	}
}

func TestLoginUserRequiresCredentials(t *testing.T) {
	e := echo.New()

	for _, body := range []string{
		`{}`,
		`{"email":"a@b.com"}`,
		`{"password":"secret1"}`,
	} {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		require.NoError(t, LoginUser(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	}
}

func TestLogoutClearsCookie(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/logout", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, LogoutUser(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, utils.TokenCookieName, cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, isValidEmail("user@example.com"))
	assert.True(t, isValidEmail("first.last@shop.co.uk"))
	assert.False(t, isValidEmail("nope"))
	assert.False(t, isValidEmail("@missing-local.com"))
	assert.False(t, isValidEmail(""))
}
