package middleware

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"tuppershop_back_end/internal/database"

	"github.com/gin-gonic/gin"
)

const (
	// Limites du formulaire de contact (par adresse IP)
	ContactMaxAttempts = 5
	ContactCooldown    = 10 * time.Minute
)

// ContactRateLimit limite les envois du formulaire de contact par IP.
func ContactRateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if database.Redis == nil {
			c.Next()
			return
		}

		ctx := context.Background()
		key := "contact_attempts:" + c.ClientIP()

		pipe := database.Redis.Pipeline()
		incr := pipe.Incr(ctx, key)
		pipe.Expire(ctx, key, ContactCooldown)
		if _, err := pipe.Exec(ctx); err != nil {
			// Redis indisponible : on laisse passer plutôt que de bloquer le site
			c.Next()
			return
		}

		if incr.Val() > ContactMaxAttempts {
			ttl := database.Redis.TTL(ctx, key).Val()
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":       fmt.Sprintf("Trop de messages envoyés. Réessayez dans %d minutes", int(ttl.Minutes())+1),
				"retry_after": int(ttl.Seconds()),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
