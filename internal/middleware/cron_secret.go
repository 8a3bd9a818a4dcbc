package middleware

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const CronSecretHeader = "X-Cron-Secret"

// CronSecret guards scheduler endpoints. An empty configured secret rejects
// every call.
func CronSecret(secret string, logger *zap.Logger) gin.HandlerFunc {
	expected := []byte(secret)
	log := logger.Named("middleware.cron")

	return func(c *gin.Context) {
		got := []byte(c.GetHeader(CronSecretHeader))
		if len(expected) == 0 || subtle.ConstantTimeCompare(got, expected) != 1 {
			log.Warn("cron call rejected", zap.String("path", c.FullPath()), zap.String("ip", c.ClientIP()))
			fail(c, ErrCronSecret)
			return
		}
		c.Next()
	}
}
