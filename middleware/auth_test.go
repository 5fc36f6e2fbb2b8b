package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stylemind-ai/stylemind-backend-go/utils"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func invokeAuth(t *testing.T, cookie *http.Cookie) (*httptest.ResponseRecorder, echo.Context, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	nextCalled := false
	handler := AuthMiddleware(func(c echo.Context) error {
		nextCalled = true
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))
	return rec, c, nextCalled
}

func TestAuthMiddlewareAcceptsValidToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	userID := primitive.NewObjectID()
	token, err := utils.GenerateJWT(userID.Hex())
	require.NoError(t, err)

	rec, c, nextCalled := invokeAuth(t, &http.Cookie{Name: utils.TokenCookieName, Value: token})

	assert.True(t, nextCalled)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, userID, c.Get("userID"))
}

func TestAuthMiddlewareRejectsMissingCookie(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	rec, _, nextCalled := invokeAuth(t, nil)

	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "No token provided")
}

func TestAuthMiddlewareRejectsGarbageToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	rec, _, nextCalled := invokeAuth(t, &http.Cookie{Name: utils.TokenCookieName, Value: "not.a.jwt"})

	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddlewareRejectsExpiredToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("JWT_EXPIRES_IN", "-1h")

	token, err := utils.GenerateJWT(primitive.NewObjectID().Hex())
	require.NoError(t, err)

	rec, _, nextCalled := invokeAuth(t, &http.Cookie{Name: utils.TokenCookieName, Value: token})

	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid or expired token")
}

func TestAuthMiddlewareRejectsTokenSignedWithOtherSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "first-secret")
	token, err := utils.GenerateJWT(primitive.NewObjectID().Hex())
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "second-secret")
	rec, _, nextCalled := invokeAuth(t, &http.Cookie{Name: utils.TokenCookieName, Value: token})

	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddlewareRejectsNonObjectIDSubject(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := utils.GenerateJWT("not-an-object-id")
	require.NoError(t, err)

	rec, _, nextCalled := invokeAuth(t, &http.Cookie{Name: utils.TokenCookieName, Value: token})

	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid user ID")
}
