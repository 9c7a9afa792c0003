package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/yungbote/gigifypro-backend/internal/platform/ctxutil"
)

func limitedRouter(rl *RateLimiter, userID uuid.UUID) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if userID != uuid.Nil {
			ctx := ctxutil.WithRequestData(c.Request.Context(), &ctxutil.RequestData{UserID: userID})
			c.Request = c.Request.WithContext(ctx)
		}
		c.Next()
	})
	r.Use(rl.Middleware())
	r.POST("/write", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	return r
}

func TestRateLimiterBlocksAfterBurst(t *testing.T) {
	rl := NewRateLimiter(60, 2)
	r := limitedRouter(rl, uuid.New())

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/write", nil))
		codes = append(codes, rec.Code)
		if rec.Code == http.StatusTooManyRequests {
			assert.Equal(t, "1", rec.Header().Get("Retry-After"))
			assert.Contains(t, rec.Body.String(), "rate_limited")
		}
	}
	assert.Equal(t, []int{http.StatusNoContent, http.StatusNoContent, http.StatusTooManyRequests}, codes)
}

func TestRateLimiterKeysPerUser(t *testing.T) {
	rl := NewRateLimiter(60, 1)

	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		limitedRouter(rl, uuid.New()).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/write", nil))
		assert.Equal(t, http.StatusNoContent, rec.Code)
	}
}

func TestRateLimiterSweepsIdleCallers(t *testing.T) {
	rl := NewRateLimiter(60, 1)
	now := time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	rl.get("user:a")
	assert.Len(t, rl.limiters, 1)

	now = now.Add(limiterIdleTTL + 2*time.Minute)
	rl.get("user:b")
	assert.Len(t, rl.limiters, 1)
	assert.Contains(t, rl.limiters, "user:b")
}

func TestRateLimiterDisabled(t *testing.T) {
	assert.Nil(t, NewRateLimiter(0, 5))

	r := limitedRouter(nil, uuid.Nil)
	for i := 0; i < 5; i++ {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/write", nil))
		assert.Equal(t, http.StatusNoContent, rec.Code)
	}
}
