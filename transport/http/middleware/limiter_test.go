package middleware_test

import (
	"concierge/config"
	"concierge/infras/otel/mocks"
	cacheMocks "concierge/shared/cache/mocks"
	"concierge/transport/http/middleware"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestRateLimit(t *testing.T) {
	tests := []struct {
		name          string
		enable        bool
		header        map[string]string
		setupMock     func(c *cacheMocks.MockRedisCache)
		wantCode      int
		wantRemaining string
	}{
		{
			name:      "disabled",
			setupMock: func(*cacheMocks.MockRedisCache) {},
			wantCode:  http.StatusOK,
		},
		{
			name:   "first request in window",
			enable: true,
			header: map[string]string{"X-Forwarded-For": "10.0.0.7, 172.16.0.1", "User-Agent": "kiosk/1.0"},
			setupMock: func(c *cacheMocks.MockRedisCache) {
				c.EXPECT().Incr(gomock.Any(), "limiter:192.0.2.1", 60).Return(int64(1), nil)
			},
			wantCode:      http.StatusOK,
			wantRemaining: "2",
		},
		{
			name:   "over the limit",
			enable: true,
			setupMock: func(c *cacheMocks.MockRedisCache) {
				c.EXPECT().Incr(gomock.Any(), "limiter:192.0.2.1", 60).Return(int64(4), nil)
			},
			wantCode:      http.StatusTooManyRequests,
			wantRemaining: "0",
		},
		{
			name:   "redis down lets requests through",
			enable: true,
			header: map[string]string{"X-Real-IP": "10.0.0.9"},
			setupMock: func(c *cacheMocks.MockRedisCache) {
				c.EXPECT().Incr(gomock.Any(), "limiter:192.0.2.1", 60).Return(int64(0), errors.New("connection refused"))
			},
			wantCode: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			cache := cacheMocks.NewMockRedisCache(ctrl)
			tt.setupMock(cache)

			cfg := &config.Config{}
			cfg.App.RateLimiter.Enable = tt.enable
			cfg.App.RateLimiter.MaxRequests = 3
			cfg.App.RateLimiter.WindowSeconds = 60

			handler := middleware.NewAppMiddleware(mocks.NewOtel(), cfg, cache).RateLimit()(
				http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) }),
			)

			req := httptest.NewRequest(http.MethodGet, "/v1/rooms/", nil)
			for k, v := range tt.header {
				req.Header.Set(k, v)
			}

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.wantRemaining, rec.Header().Get("X-RateLimit-Remaining"))
		})
	}
}

func TestRateLimit_IgnoresClientHeaders(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.RateLimiter.Enable = true
	cfg.App.RateLimiter.MaxRequests = 2
	cfg.App.RateLimiter.WindowSeconds = 60

	handler := middleware.NewAppMiddleware(mocks.NewOtel(), cfg, cacheMocks.NewMemory()).RateLimit()(
		http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) }),
	)

	send := func(remoteAddr, forwardedFor, userAgent string) int {
		req := httptest.NewRequest(http.MethodGet, "/v1/rooms/", nil)
		req.RemoteAddr = remoteAddr
		req.Header.Set("X-Forwarded-For", forwardedFor)
		req.Header.Set("User-Agent", userAgent)

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		return rec.Code
	}

	assert.Equal(t, http.StatusOK, send("198.51.100.4:51000", "10.0.0.1", "kiosk/1.0"))
	assert.Equal(t, http.StatusOK, send("198.51.100.4:51001", "10.0.0.2", "kiosk/2.0"))
	assert.Equal(t, http.StatusTooManyRequests, send("198.51.100.4:51002", "10.0.0.3", "curl/8.0"))

	assert.Equal(t, http.StatusOK, send("198.51.100.5:40000", "10.0.0.3", "curl/8.0"))
}
