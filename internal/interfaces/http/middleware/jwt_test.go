package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brutchm/proyecto-3-back-end-sub000/internal/infrastructure/auth"
	"github.com/brutchm/proyecto-3-back-end-sub000/internal/infrastructure/config"
)

const (
	testJWTSecret = "test-secret-key-for-middleware-tests"
	testJWTIssuer = "farm-backend-test"
)

// mintToken signs a token the way the identity provider would.
func mintToken(t *testing.T, userID uuid.UUID, tokenType auth.TokenType, ttl time.Duration) string {
	t.Helper()
	now := time.Now()
	claims := &auth.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    testJWTIssuer,
			Subject:   userID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			NotBefore: jwt.NewNumericDate(now.Add(ttl - 15*time.Minute)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID:    userID.String(),
		Username:  "testuser",
		TokenType: tokenType,
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testJWTSecret))
	require.NoError(t, err)
	return token
}

func issueAccessToken(t *testing.T, userID uuid.UUID) string {
	t.Helper()
	return mintToken(t, userID, auth.TokenTypeAccess, 15*time.Minute)
}

func newProtectedRouter(skipPaths ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := auth.NewJWTService(config.JWTConfig{
		Secret: testJWTSecret,
		Issuer: testJWTIssuer,
	})

	r := gin.New()
	r.Use(JWTAuth(JWTAuthConfig{JWTService: svc, SkipPaths: skipPaths}))
	r.GET("/api/v1/reports", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": GetJWTUserID(c)})
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return r
}

func getWithAuth(r *gin.Engine, path, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestJWTAuth(t *testing.T) {
	t.Run("valid token reaches the handler with its user id", func(t *testing.T) {
		userID := uuid.New()
		r := newProtectedRouter()

		w := getWithAuth(r, "/api/v1/reports", "Bearer "+issueAccessToken(t, userID))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), userID.String())
	})

	t.Run("missing header is rejected", func(t *testing.T) {
		w := getWithAuth(newProtectedRouter(), "/api/v1/reports", "")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "UNAUTHORIZED")
		assert.Contains(t, w.Body.String(), `"success":false`)
	})

	t.Run("non-bearer scheme is rejected", func(t *testing.T) {
		w := getWithAuth(newProtectedRouter(), "/api/v1/reports", "Basic dXNlcjpwYXNz")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "INVALID_TOKEN")
	})

	t.Run("empty bearer token is rejected", func(t *testing.T) {
		w := getWithAuth(newProtectedRouter(), "/api/v1/reports", "Bearer ")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "UNAUTHORIZED")
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		w := getWithAuth(newProtectedRouter(), "/api/v1/reports", "Bearer not-a-real-token")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "INVALID_TOKEN")
	})

	t.Run("expired token maps to TOKEN_EXPIRED", func(t *testing.T) {
		expired := mintToken(t, uuid.New(), auth.TokenTypeAccess, -time.Minute)

		w := getWithAuth(newProtectedRouter(), "/api/v1/reports", "Bearer "+expired)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "TOKEN_EXPIRED")
	})

	t.Run("refresh token maps to INVALID_TOKEN_TYPE", func(t *testing.T) {
		refresh := mintToken(t, uuid.New(), auth.TokenTypeRefresh, 15*time.Minute)

		w := getWithAuth(newProtectedRouter(), "/api/v1/reports", "Bearer "+refresh)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "INVALID_TOKEN_TYPE")
	})

	t.Run("skip paths pass without a token", func(t *testing.T) {
		w := getWithAuth(newProtectedRouter("/health"), "/health", "")

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("skip paths match exactly", func(t *testing.T) {
		w := getWithAuth(newProtectedRouter("/api/v1"), "/api/v1/reports", "")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestGetJWTUserID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	assert.Empty(t, GetJWTUserID(c))

	c.Set(JWTUserIDKey, "user-1")
	assert.Equal(t, "user-1", GetJWTUserID(c))
}
