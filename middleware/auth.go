package middleware

import (
	"medigen/models"

	"github.com/gin-gonic/gin"
)

// CurrentIdentity returns the identity set by UserAuthMiddleware, or nil for
// an anonymous request.
func CurrentIdentity(c *gin.Context) *models.Identity {
	v, exists := c.Get("identity")
	if !exists {
		return nil
	}
	id, ok := v.(models.Identity)
	if !ok {
		return nil
	}
	return &id
}

// CurrentToken returns the raw bearer token of an authenticated request.
func CurrentToken(c *gin.Context) string {
	return c.GetString("token")
}
