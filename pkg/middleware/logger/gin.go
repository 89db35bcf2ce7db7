package logger

import (
	"time"

	"github.com/gin-gonic/gin"
)

// LogWithWriter returns the access-log middleware.
func LogWithWriter() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		path := ctx.Request.URL.Path
		query := ctx.Request.URL.RawQuery

		ctx.Next()

		Infof(ctx, "%s %s?%s %d %s %s",
			ctx.Request.Method,
			path,
			query,
			ctx.Writer.Status(),
			time.Since(start),
			ctx.ClientIP(),
		)
	}
}
