package middleware

import (
	"hash/fnv"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/spedire/rate-service/internal/domain/dto"
	"github.com/spedire/rate-service/internal/i18n"
)

// defaultNumShards spreads visitors over independent locks.
const defaultNumShards = 16

// visitor tracks rate limit state for a single client.
type visitor struct {
	tokens    int
	lastReset time.Time
}

type rateLimiterShard struct {
	mu       sync.Mutex
	visitors map[string]*visitor
}

// RateLimiter is a sharded fixed-window rate limiter keyed by client IP.
type RateLimiter struct {
	shards []*rateLimiterShard
	rate   int
	window time.Duration
	stopCh chan struct{}
}

// NewRateLimiter creates a rate limiter allowing rate requests per window.
func NewRateLimiter(rate int, window time.Duration) *RateLimiter {
	shards := make([]*rateLimiterShard, defaultNumShards)
	for i := range shards {
		shards[i] = &rateLimiterShard{visitors: make(map[string]*visitor)}
	}

	rl := &RateLimiter{
		shards: shards,
		rate:   rate,
		window: window,
		stopCh: make(chan struct{}),
	}

	go rl.cleanup()
	return rl
}

func (rl *RateLimiter) getShard(identifier string) *rateLimiterShard {
	h := fnv.New32a()
	h.Write([]byte(identifier))
	return rl.shards[h.Sum32()%uint32(len(rl.shards))]
}

// allow consumes one token for the identifier, resetting the window first
// when it has elapsed.
func (rl *RateLimiter) allow(identifier string) bool {
	shard := rl.getShard(identifier)
	shard.mu.Lock()
	defer shard.mu.Unlock()

	now := time.Now()
	v, ok := shard.visitors[identifier]
	if !ok || now.Sub(v.lastReset) >= rl.window {
		shard.visitors[identifier] = &visitor{tokens: rl.rate - 1, lastReset: now}
		return true
	}
	if v.tokens <= 0 {
		return false
	}
	v.tokens--
	return true
}

// cleanup periodically drops visitors whose window expired long ago.
func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			cutoff := time.Now().Add(-2 * rl.window)
			for _, shard := range rl.shards {
				shard.mu.Lock()
				for id, v := range shard.visitors {
					if v.lastReset.Before(cutoff) {
						delete(shard.visitors, id)
					}
				}
				shard.mu.Unlock()
			}
		case <-rl.stopCh:
			return
		}
	}
}

// Stop terminates the background cleanup goroutine.
func (rl *RateLimiter) Stop() {
	close(rl.stopCh)
}

// RateLimit returns the gin middleware enforcing the limit.
func (rl *RateLimiter) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.allow(c.ClientIP()) {
			requestID := GetRequestID(c)
			locale := i18n.GetLocale(c)
			message := i18n.GetTranslator().Translate(i18n.ErrKeyRateLimitExceeded, locale)
			errorResp := dto.NewError(dto.ErrCodeRateLimit, message).WithRequestID(requestID)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, errorResp)
			return
		}
		c.Next()
	}
}
