package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ariebrainware/clinic-management/config"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newRateLimitedRouter(cfg RateLimitConfig) *gin.Engine {
	r := gin.New()
	r.POST("/login", RateLimiter(cfg), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "success"})
	})
	return r
}

func postLogin(r *gin.Engine) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	req.RemoteAddr = "192.168.1.1:1234"
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimiter_WithoutRedis(t *testing.T) {
	config.ResetRedisClientForTest()
	r := newRateLimitedRouter(RateLimitConfig{Limit: 5, Window: 15 * time.Minute})

	for i := 0; i < 10; i++ {
		assert.Equal(t, http.StatusOK, postLogin(r).Code, "request %d", i+1)
	}
}

func TestRateLimiter_BlocksAfterLimit(t *testing.T) {
	captureSecurityLog(t)
	mock := setupRedisMock(t)
	key := "ratelimit:/login:192.168.1.1"
	window := time.Minute

	mock.ExpectIncr(key).SetVal(2)
	mock.ExpectExpire(key, window).SetVal(true)
	mock.ExpectIncr(key).SetVal(3)
	mock.ExpectExpire(key, window).SetVal(true)

	r := newRateLimitedRouter(RateLimitConfig{Limit: 2, Window: window})
	assert.Equal(t, http.StatusOK, postLogin(r).Code)

	w := postLogin(r)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "Too many requests")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRateLimiter_RedisErrorAllows(t *testing.T) {
	buf := captureSecurityLog(t)
	mock := setupRedisMock(t)
	key := "ratelimit:/login:192.168.1.1"

	mock.ExpectIncr(key).SetErr(errors.New("redis down"))
	mock.ExpectExpire(key, defaultRateWindow).SetVal(true)

	r := newRateLimitedRouter(RateLimitConfig{})
	assert.Equal(t, http.StatusOK, postLogin(r).Code)
	assert.Contains(t, buf.String(), "Rate limit check failed")
}

func TestResetRateLimit(t *testing.T) {
	config.ResetRedisClientForTest()
	assert.Error(t, ResetRateLimit(context.Background(), "192.168.1.1", "/login"))

	mock := setupRedisMock(t)
	mock.ExpectDel("ratelimit:/login:192.168.1.1").SetVal(1)
	assert.NoError(t, ResetRateLimit(context.Background(), "192.168.1.1", "/login"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
