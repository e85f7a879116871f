package middlewares

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/yeremiapane/restaurant-menu/utils"
)

func LoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		if raw != "" {
			path = path + "?" + raw
		}

		entry := utils.InfoLogger.WithFields(logrus.Fields{
			"request_id": GetRequestID(c),
			"client_ip":  c.ClientIP(),
			"latency":    latency,
		})
		if len(c.Errors) > 0 {
			entry = entry.WithField("errors", c.Errors.String())
		}

		switch {
		case status >= 500:
			entry.Errorf("%s | %3d | %s", c.Request.Method, status, path)
		case status >= 400:
			entry.Warnf("%s | %3d | %s", c.Request.Method, status, path)
		default:
			entry.Infof("%s | %3d | %s", c.Request.Method, status, path)
		}
	}
}
