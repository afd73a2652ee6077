package middleware

import (
	"time"

	"github.com/guttosm/fuel-service/internal/service"
	"github.com/guttosm/fuel-service/internal/service/cache"
)

const idempotencyStoreCapacity = 4096

// CachedResponse is a replayable HTTP response stored under an idempotency key.
type CachedResponse struct {
	StatusCode  int               `json:"status_code"`
	ContentType string            `json:"content_type"`
	Headers     map[string]string `json:"headers,omitempty"`
	Body        []byte            `json:"body"`
	StoredAt    time.Time         `json:"stored_at"`
}

// IdempotencyStore holds replayable responses. Any cache backend can serve it.
type IdempotencyStore = cache.Cache[*CachedResponse]

// NewIdempotencyStore returns an in-process store whose entries expire after ttl.
func NewIdempotencyStore(ttl time.Duration) IdempotencyStore {
	if ttl <= 0 {
		ttl = IdempotencyKeyTTL
	}
	return service.NewShardedCache[*CachedResponse](idempotencyStoreCapacity, ttl, 0)
}
