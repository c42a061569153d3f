package httpapi

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	_HeaderRequestID = "X-Request-ID"
	_KeyRequestID    = "requestID"
)

type ErrorResponse struct {
	Message   string `json:"message"`
	Details   string `json:"details,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(_HeaderRequestID)
		if _, errParse := uuid.Parse(requestID); errParse != nil {
			requestID = uuid.NewString()
		}

		c.Set(_KeyRequestID, requestID)
		c.Header(_HeaderRequestID, requestID)

		c.Next()
	}
}

func recoveryMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if recovered := recover(); recovered != nil {
				logger.Error(
					"unhandled panic",
					zap.Any("error", recovered),
					zap.String("request_id", c.GetString(_KeyRequestID)),
				)

				c.AbortWithStatusJSON(
					http.StatusInternalServerError,
					ErrorResponse{
						Message:   "Internal Server Error",
						RequestID: c.GetString(_KeyRequestID),
					},
				)
			}
		}()

		c.Next()
	}
}

func loggingMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		started := time.Now()

		c.Next()

		logger.Info(
			"request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(started)),
			zap.String("client_ip", c.ClientIP()),
			zap.String("request_id", c.GetString(_KeyRequestID)),
		)
	}
}

// _LimiterIdleTTL exceeds the one minute refill of any limiter,
// an evicted client would have had a full bucket anyway.
const _LimiterIdleTTL = 3 * time.Minute

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// rateLimiterStore holds one limiter per client IP.
// Idle clients are swept at most once per _LimiterIdleTTL.
type rateLimiterStore struct {
	limiters  map[string]*clientLimiter
	lastSweep time.Time
	mu        sync.Mutex

	every time.Duration
	burst int
}

func newRateLimiterStore(requestsPerMinute int) *rateLimiterStore {
	return &rateLimiterStore{
		limiters:  make(map[string]*clientLimiter),
		lastSweep: time.Now(),

		every: time.Minute / time.Duration(requestsPerMinute),
		burst: requestsPerMinute,
	}
}

func (s *rateLimiterStore) getLimiter(ip string, now time.Time) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	if now.Sub(s.lastSweep) >= _LimiterIdleTTL {
		s.sweep(now)
	}

	client, exists := s.limiters[ip]
	if !exists {
		client = &clientLimiter{
			limiter: rate.NewLimiter(rate.Every(s.every), s.burst),
		}

		s.limiters[ip] = client
	}

	client.lastSeen = now

	return client.limiter
}

// sweep drops clients idle for longer than _LimiterIdleTTL, caller holds the lock.
func (s *rateLimiterStore) sweep(now time.Time) {
	for ip, client := range s.limiters {
		if now.Sub(client.lastSeen) > _LimiterIdleTTL {
			delete(s.limiters, ip)
		}
	}

	s.lastSweep = now
}

func rateLimitMiddleware(store *rateLimiterStore, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()

		if !store.getLimiter(ip, time.Now()).Allow() {
			logger.Warn("rate limit exceeded", zap.String("ip", ip))

			c.AbortWithStatusJSON(
				http.StatusTooManyRequests,
				ErrorResponse{
					Message:   "Rate limit exceeded. Try again later.",
					RequestID: c.GetString(_KeyRequestID),
				},
			)

			return
		}

		c.Next()
	}
}
