package auth

import (
	"testing"
	"time"

	"github.com/brutchm/proyecto-3-back-end-sub000/internal/infrastructure/config"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSecret = "test-secret-key-32-characters-ok"
	testIssuer = "farm-backend-test"
)

func newTestService() *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret: testSecret,
		Issuer: testIssuer,
	})
}

// signToken mints a token the way the identity provider does, so the
// validation path can be exercised without an issuance API here.
func signToken(t *testing.T, claims *Claims, secret string) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func testClaims(userID string, tokenType TokenType, ttl time.Duration) *Claims {
	now := time.Now()
	return &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Issuer:    testIssuer,
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			NotBefore: jwt.NewNumericDate(now),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID:    userID,
		Username:  "maria",
		TokenType: tokenType,
	}
}

func TestValidateAccessToken(t *testing.T) {
	svc := newTestService()
	userID := uuid.New().String()

	t.Run("accepts a valid access token", func(t *testing.T) {
		token := signToken(t, testClaims(userID, TokenTypeAccess, 15*time.Minute), testSecret)

		claims, err := svc.ValidateAccessToken(token)

		require.NoError(t, err)
		assert.Equal(t, userID, claims.UserID)
		assert.Equal(t, "maria", claims.Username)
		assert.Equal(t, TokenTypeAccess, claims.TokenType)
	})

	t.Run("rejects an expired token", func(t *testing.T) {
		c := testClaims(userID, TokenTypeAccess, 15*time.Minute)
		c.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))
		c.NotBefore = jwt.NewNumericDate(time.Now().Add(-time.Hour))
		c.IssuedAt = c.NotBefore
		token := signToken(t, c, testSecret)

		_, err := svc.ValidateAccessToken(token)

		assert.ErrorIs(t, err, ErrExpiredToken)
	})

	t.Run("rejects a token that is not yet valid", func(t *testing.T) {
		c := testClaims(userID, TokenTypeAccess, time.Hour)
		c.NotBefore = jwt.NewNumericDate(time.Now().Add(30 * time.Minute))
		token := signToken(t, c, testSecret)

		_, err := svc.ValidateAccessToken(token)

		assert.ErrorIs(t, err, ErrTokenNotYetValid)
	})

	t.Run("rejects a token signed with a different secret", func(t *testing.T) {
		token := signToken(t, testClaims(userID, TokenTypeAccess, 15*time.Minute), "some-other-secret-32-characters-x")

		_, err := svc.ValidateAccessToken(token)

		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("rejects a refresh token presented as access", func(t *testing.T) {
		token := signToken(t, testClaims(userID, TokenTypeRefresh, 24*time.Hour), testSecret)

		_, err := svc.ValidateAccessToken(token)

		assert.ErrorIs(t, err, ErrInvalidTokenType)
	})

	t.Run("rejects a token from another issuer", func(t *testing.T) {
		c := testClaims(userID, TokenTypeAccess, 15*time.Minute)
		c.Issuer = "somebody-else"
		token := signToken(t, c, testSecret)

		_, err := svc.ValidateAccessToken(token)

		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("rejects a token without a user id", func(t *testing.T) {
		token := signToken(t, testClaims("", TokenTypeAccess, 15*time.Minute), testSecret)

		_, err := svc.ValidateAccessToken(token)

		assert.ErrorIs(t, err, ErrMissingUserID)
	})

	t.Run("rejects garbage input", func(t *testing.T) {
		_, err := svc.ValidateAccessToken("not.a.token")

		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("rejects an unexpected signing algorithm", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS512,
			testClaims(userID, TokenTypeAccess, 15*time.Minute)).SignedString([]byte(testSecret))
		require.NoError(t, err)

		_, err = svc.ValidateAccessToken(token)

		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestValidateAccessToken_NoIssuerConfigured(t *testing.T) {
	svc := NewJWTService(config.JWTConfig{Secret: testSecret})
	c := testClaims(uuid.New().String(), TokenTypeAccess, 15*time.Minute)
	c.Issuer = "anything"
	token := signToken(t, c, testSecret)

	_, err := svc.ValidateAccessToken(token)

	assert.NoError(t, err)
}
