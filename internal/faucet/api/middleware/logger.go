package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/suifaucet/faucet-backend/pkg/logging"
)

// Logger emits one structured line per handled request.
func Logger(logger logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		logger.Info("request handled",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start).String(),
			"client_ip", c.ClientIP(),
		)
	}
}
