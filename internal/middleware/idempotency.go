package middleware

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const (
	idempotencyLockTTL  = 30 * time.Second
	idempotencyCacheTTL = 24 * time.Hour
)

type bodyCaptureWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *bodyCaptureWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// Idempotency replays the cached response for a POST retried with the same
// Idempotency-Key and rejects a duplicate that arrives while the first
// attempt is still in flight. Keys are scoped per route and per user.
func Idempotency(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		idempKey := c.GetHeader("Idempotency-Key")
		userID := c.GetString("user_id_validated")

		if idempKey == "" || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		cacheKey := fmt.Sprintf("idemp:%s:%s:%s", c.FullPath(), userID, idempKey)
		lockKey := cacheKey + ":lock"

		val, err := rdb.Get(c.Request.Context(), cacheKey).Result()
		if err == nil {
			var cachedRes any
			json.Unmarshal([]byte(val), &cachedRes)
			c.AbortWithStatusJSON(http.StatusOK, cachedRes)
			return
		}

		// SetNX acts as an atomic lock; a short expiry clears it if the
		// process dies mid-request.
		isNew, _ := rdb.SetNX(c.Request.Context(), lockKey, "locked", idempotencyLockTTL).Result()
		if !isNew {
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{
				"code":    "PROCESSING",
				"message": "The same request is still being processed, please wait.",
			})
			return
		}

		writer := &bodyCaptureWriter{ResponseWriter: c.Writer, body: &bytes.Buffer{}}
		c.Writer = writer

		c.Next()

		ctx := c.Request.Context()
		if c.Writer.Status() >= 200 && c.Writer.Status() < 300 {
			rdb.Set(ctx, cacheKey, writer.body.String(), idempotencyCacheTTL)
		}
		rdb.Del(ctx, lockKey)
	}
}
