package handlers

import (
	"campusportal/middleware"
	"campusportal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// getLogger returns the global logger tagged with the request route and caller.
func getLogger(c *gin.Context) *zap.Logger {
	fields := []zap.Field{zap.String("method", c.Request.Method), zap.String("path", c.FullPath())}
	if uid := c.GetString(middleware.CtxUserID); uid != "" {
		fields = append(fields, zap.String("userID", uid))
	}
	return utils.GetLogger().With(fields...)
}
