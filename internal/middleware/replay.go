package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const (
	replayHeader = "Idempotency-Key"
	replayTTL    = 12 * time.Hour
	replayPrefix = "ridelite:replay:"
)

// storedReply is the cached outcome of a previously seen request.
type storedReply struct {
	StatusCode  int             `json:"status_code"`
	ContentType string          `json:"content_type"`
	Body        json.RawMessage `json:"body"`
}

// replyRecorder captures the response body as it is written.
type replyRecorder struct {
	gin.ResponseWriter
	buf bytes.Buffer
}

func (r *replyRecorder) Write(b []byte) (int, error) {
	r.buf.Write(b)
	return r.ResponseWriter.Write(b)
}

// ReplayGuard returns middleware that replays the stored response for a
// repeated Idempotency-Key instead of re-executing the request. Confirming
// a payment twice with the same key debits the wallet once. Requests
// without the header pass through untouched, as do all reads.
func ReplayGuard(client *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodGet || c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}

		key := c.GetHeader(replayHeader)
		if key == "" {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		cacheKey := replayPrefix + key

		data, err := client.Get(ctx, cacheKey).Bytes()
		if err == nil {
			var reply storedReply
			if json.Unmarshal(data, &reply) == nil {
				c.Data(reply.StatusCode, reply.ContentType, reply.Body)
				c.Abort()
				return
			}
		} else if err != redis.Nil {
			// Redis unavailable: serve the request without replay protection.
			c.Next()
			return
		}

		recorder := &replyRecorder{ResponseWriter: c.Writer}
		c.Writer = recorder

		c.Next()

		status := c.Writer.Status()
		if status >= http.StatusOK && status < http.StatusInternalServerError {
			reply := storedReply{
				StatusCode:  status,
				ContentType: c.Writer.Header().Get("Content-Type"),
				Body:        recorder.buf.Bytes(),
			}
			if encoded, err := json.Marshal(reply); err == nil {
				_ = client.Set(ctx, cacheKey, encoded, replayTTL).Err()
			}
		}
	}
}
