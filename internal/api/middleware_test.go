// internal/api/middleware_test.go
package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(RequestIDMiddleware())
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("request_id"))
	})

	t.Run("generates an id", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

		assert.NotEmpty(t, w.Body.String())
		assert.Equal(t, w.Body.String(), w.Header().Get("X-Request-ID"))
	})

	t.Run("keeps a client-supplied id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("X-Request-ID", "req-42")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, "req-42", w.Body.String())
		assert.Equal(t, "req-42", w.Header().Get("X-Request-ID"))
	})
}

func TestRateLimiter_Allow(t *testing.T) {
	rl := NewRateLimiter()

	for i := 0; i < 3; i++ {
		assert.True(t, rl.Allow("client", 3, time.Minute), "request %d", i)
	}
	assert.False(t, rl.Allow("client", 3, time.Minute))

	// other clients are tracked independently
	assert.True(t, rl.Allow("other", 3, time.Minute))
}

func TestRateLimiter_WindowReset(t *testing.T) {
	rl := NewRateLimiter()

	require.True(t, rl.Allow("client", 1, 10*time.Millisecond))
	require.False(t, rl.Allow("client", 1, 10*time.Millisecond))

	time.Sleep(20 * time.Millisecond)
	assert.True(t, rl.Allow("client", 1, 10*time.Millisecond))
}

func TestRateLimitMiddleware_TooManyRequests(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(RateLimitMiddleware(2, time.Minute, func(c *gin.Context) string {
		return "fixed-key"
	}))
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		require.Equal(t, http.StatusOK, w.Code, "request %d", i)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
}
