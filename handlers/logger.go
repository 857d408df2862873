package handlers

import (
	"medigen/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// getLogger retrieves the request logger set by RequestLogger, falling back to
// the global one.
func getLogger(c *gin.Context) *zap.Logger {
	if l, exists := c.Get("logger"); exists {
		if logger, ok := l.(*zap.Logger); ok {
			return logger
		}
	}
	return utils.GetLogger()
}

func identityUID(c *gin.Context) (string, bool) {
	uid := c.GetString("userID")
	return uid, uid != ""
}
