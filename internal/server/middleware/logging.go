package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/webimagedrive/gallery/internal/logger"
)

// RequestLogger returns a Gin middleware that logs every request with method,
// path, status and latency. The health endpoint is silently skipped.
func RequestLogger(log *logger.Logger) gin.HandlerFunc {
	requestLog := log.WithComponent("http")
	return func(c *gin.Context) {
		if c.Request.URL.Path == "/" {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()
		path := c.Request.URL.Path
		if q := c.Request.URL.RawQuery; q != "" {
			path = path + "?" + q
		}

		fields := map[string]interface{}{
			"method":  c.Request.Method,
			"path":    path,
			"status":  status,
			"latency": latency.String(),
			"client":  c.ClientIP(),
		}
		if id := c.GetString(logger.FieldRequestID); id != "" {
			fields[logger.FieldRequestID] = id
		}

		switch {
		case status >= 500:
			requestLog.Error("request completed", fields)
		case status >= 400:
			requestLog.Warn("request completed", fields)
		default:
			requestLog.Debug("request completed", fields)
		}
	}
}
