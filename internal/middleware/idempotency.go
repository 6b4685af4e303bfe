package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"colfdesk/internal/shared/apperror"
	"colfdesk/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const idempotencyLockTTL = 30 * time.Second

// Idempotency replays the cached response for a repeated POST carrying the
// same Idempotency-Key, and rejects a concurrent duplicate while the first
// request is still in flight.
func Idempotency(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		idempKey := c.GetHeader("Idempotency-Key")
		if idempKey == "" || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		cacheKey := fmt.Sprintf("idemp:%s:%s", c.FullPath(), idempKey)
		lockKey := cacheKey + ":lock"

		val, err := rdb.Get(c.Request.Context(), cacheKey).Result()
		if err == nil {
			var cached any
			if json.Unmarshal([]byte(val), &cached) == nil {
				c.Abort()
				response.Success(c, http.StatusOK, cached, nil)
				return
			}
		}

		isNew, _ := rdb.SetNX(c.Request.Context(), lockKey, "locked", idempotencyLockTTL).Result()
		if !isNew {
			c.Abort()
			response.Error(c, http.StatusConflict, apperror.CodeConflict,
				"Request with this idempotency key is already being processed", nil)
			return
		}

		writer := &bodyCaptureWriter{ResponseWriter: c.Writer}
		c.Writer = writer

		c.Next()

		rdb.Del(c.Request.Context(), lockKey)

		if writer.Status() >= 200 && writer.Status() < 300 {
			var envelope response.ApiEnvelope
			if json.Unmarshal(writer.body, &envelope) == nil && envelope.Ok {
				if payload, err := json.Marshal(envelope.Data); err == nil {
					rdb.Set(c.Request.Context(), cacheKey, payload, 24*time.Hour)
				}
			}
		}
	}
}

type bodyCaptureWriter struct {
	gin.ResponseWriter
	body []byte
}

func (w *bodyCaptureWriter) Write(b []byte) (int, error) {
	w.body = append(w.body, b...)
	return w.ResponseWriter.Write(b)
}
