package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"medigen/models"
	"medigen/services/identity"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Authenticator resolves a bearer token to a signed-in identity.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (models.Identity, error)
}

// UserAuthMiddleware authenticates the bearer token. With optional set, a
// request without a usable token passes through anonymously; otherwise it is
// rejected with 401.
func UserAuthMiddleware(auth Authenticator, optional bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := zap.L()

		tokenString := bearerToken(c)
		if tokenString == "" {
			if optional {
				c.Next()
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
				"code":  0,
			})
			return
		}

		id, err := auth.Authenticate(c.Request.Context(), tokenString)
		if err != nil {
			if optional {
				c.Next()
				return
			}
			msg := "Insufficient authorization"
			if errors.Is(err, identity.ErrRevoked) {
				msg = "Session has been signed out"
			}
			logger.Debug("authentication failed", zap.String("path", c.FullPath()), zap.Error(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": msg,
				"code":  0,
			})
			return
		}

		c.Set("identity", id)
		c.Set("userID", id.UID)
		c.Set("token", tokenString)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
}
