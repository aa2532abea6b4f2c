package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/brutchm/proyecto-3-back-end-sub000/internal/infrastructure/auth"
	"github.com/brutchm/proyecto-3-back-end-sub000/internal/infrastructure/logger"
	"github.com/brutchm/proyecto-3-back-end-sub000/internal/interfaces/http/dto"
)

// JWTUserIDKey is the gin context key holding the authenticated user id.
const JWTUserIDKey = "jwt_user_id"

const (
	authorizationHeader = "Authorization"
	bearerPrefix        = "Bearer "
)

var errMissingToken = errors.New("missing bearer token")

// JWTAuthConfig configures the bearer token middleware.
type JWTAuthConfig struct {
	JWTService *auth.JWTService
	// SkipPaths lists exact request paths served without a token.
	SkipPaths []string
	Logger    *zap.Logger
}

// JWTAuth rejects requests without a valid access token. Validated
// requests carry the user id in both the gin context and the request
// context logger.
func JWTAuth(cfg JWTAuthConfig) gin.HandlerFunc {
	skip := make(map[string]struct{}, len(cfg.SkipPaths))
	for _, p := range cfg.SkipPaths {
		skip[p] = struct{}{}
	}

	return func(c *gin.Context) {
		if _, ok := skip[c.Request.URL.Path]; ok {
			c.Next()
			return
		}

		token, err := bearerToken(c)
		if err != nil {
			abortUnauthorized(c, cfg.Logger, err)
			return
		}

		claims, err := cfg.JWTService.ValidateAccessToken(token)
		if err != nil {
			abortUnauthorized(c, cfg.Logger, err)
			return
		}

		c.Set(JWTUserIDKey, claims.UserID)

		ctx := c.Request.Context()
		ctx, _ = logger.WithUserID(ctx, logger.FromContext(ctx), claims.UserID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// GetJWTUserID returns the authenticated user id, or "" on
// unauthenticated requests.
func GetJWTUserID(c *gin.Context) string {
	return c.GetString(JWTUserIDKey)
}

func bearerToken(c *gin.Context) (string, error) {
	header := c.GetHeader(authorizationHeader)
	if header == "" {
		return "", errMissingToken
	}
	if !strings.HasPrefix(header, bearerPrefix) {
		return "", auth.ErrInvalidToken
	}
	token := strings.TrimPrefix(header, bearerPrefix)
	if token == "" {
		return "", errMissingToken
	}
	return token, nil
}

func abortUnauthorized(c *gin.Context, log *zap.Logger, err error) {
	if log != nil {
		log.Warn("Request rejected by token validation",
			zap.Error(err),
			zap.String("path", c.Request.URL.Path),
		)
	}

	code, message := "UNAUTHORIZED", "Authentication required"
	switch {
	case errors.Is(err, auth.ErrExpiredToken):
		code, message = "TOKEN_EXPIRED", "Token has expired"
	case errors.Is(err, auth.ErrTokenNotYetValid):
		code, message = "TOKEN_NOT_VALID", "Token is not yet valid"
	case errors.Is(err, auth.ErrInvalidTokenType):
		code, message = "INVALID_TOKEN_TYPE", "Invalid token type"
	case errors.Is(err, auth.ErrInvalidToken):
		code, message = "INVALID_TOKEN", "Invalid token"
	}

	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(code, message))
}
