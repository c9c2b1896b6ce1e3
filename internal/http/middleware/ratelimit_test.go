package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIPRateLimiterAllow(t *testing.T) {
	rl := NewIPRateLimiter(1, 2)

	assert.True(t, rl.Allow("10.0.0.1"))
	assert.True(t, rl.Allow("10.0.0.1"))
	assert.False(t, rl.Allow("10.0.0.1"), "burst exhausted")

	// Separate buckets per IP.
	assert.True(t, rl.Allow("10.0.0.2"))
}

func TestIPRateLimitMiddleware(t *testing.T) {
	handler := IPRateLimit(1, 1)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	send := func(ip string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/leads", nil)
		req.Header.Set("X-Real-Ip", ip)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		return rr
	}

	require.Equal(t, http.StatusOK, send("10.0.0.1").Code)
	assert.Equal(t, http.StatusTooManyRequests, send("10.0.0.1").Code)
	assert.Equal(t, http.StatusOK, send("10.0.0.2").Code)
}
