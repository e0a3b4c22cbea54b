// internal/middleware/logging.go
package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// RequestLogger logs every request with its outcome. Health checks are
// skipped to keep the log readable.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.URL.Path == "/health" {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()
		duration := time.Since(start)

		operator, _ := c.Get("operator")
		fields := logrus.Fields{
			"method":   c.Request.Method,
			"path":     c.Request.URL.Path,
			"status":   c.Writer.Status(),
			"duration": duration.Milliseconds(),
			"ip":       c.ClientIP(),
			"operator": operator,
		}

		if c.Writer.Status() >= 500 {
			logrus.WithFields(fields).Error("Request failed")
			return
		}
		logrus.WithFields(fields).Info("Request processed")
	}
}
