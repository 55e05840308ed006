// SPDX-License-Identifier: MIT
package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/thatcatcamp/palettekit/internal/logging"
)

// RequestLogger logs one line per request once the handler chain finishes
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		fields := []interface{}{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"duration", time.Since(start),
			"client", getClientIP(c),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, "error", c.Errors.String())
		}

		switch {
		case status >= 500:
			logging.Logger.Error("request", fields...)
		case status >= 400:
			logging.Logger.Warn("request", fields...)
		default:
			logging.Logger.Info("request", fields...)
		}
	}
}
