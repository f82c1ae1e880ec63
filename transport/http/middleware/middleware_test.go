package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"hotel/config"
	otelMocks "hotel/infras/otel/mocks"
	"hotel/shared"
	"hotel/shared/cache"
	cacheMocks "hotel/shared/cache/mocks"
	"hotel/shared/constant"
	"hotel/transport/http/middleware"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func captureOperator(seen *string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*seen = shared.Operator(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})
}

func TestOperator(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		expected string
	}{
		{name: "header sets operator", header: "clerk-7", expected: "clerk-7"},
		{name: "missing header falls back to system", header: "", expected: constant.OperatorSystem},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appMiddleware := middleware.NewAppMiddleware(otelMocks.NewOtel(), &config.Config{}, nil)

			var seen string

			req := httptest.NewRequest(http.MethodGet, "/v1/rooms", nil)
			if tt.header != "" {
				req.Header.Set(constant.RequestHeaderOperatorID, tt.header)
			}

			rec := httptest.NewRecorder()
			appMiddleware.Operator(captureOperator(&seen)).ServeHTTP(rec, req)

			assert.Equal(t, tt.expected, seen)
			assert.Equal(t, http.StatusNoContent, rec.Code)
		})
	}
}

func limiterConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.RateLimiter.Enable = true
	cfg.App.RateLimiter.MaxRequests = 2
	cfg.App.RateLimiter.WindowSeconds = 60

	return cfg
}

func TestRateLimit(t *testing.T) {
	tests := []struct {
		name         string
		setup        func(redisCache *cacheMocks.MockRedisCache)
		expectedCode int
		remaining    string
	}{
		{
			name: "first request in window",
			setup: func(redisCache *cacheMocks.MockRedisCache) {
				redisCache.EXPECT().Get(gomock.Any(), "limiter:operator:clerk-7", gomock.Any()).Return(cache.Nil)
				redisCache.EXPECT().Save(gomock.Any(), "limiter:operator:clerk-7", 1, 60).Return(nil)
			},
			expectedCode: http.StatusNoContent,
			remaining:    "1",
		},
		{
			name: "over the limit",
			setup: func(redisCache *cacheMocks.MockRedisCache) {
				redisCache.EXPECT().Get(gomock.Any(), "limiter:operator:clerk-7", gomock.Any()).
					DoAndReturn(func(_ any, _ string, value any) error {
						*(value.(*int)) = 2

						return nil
					})
			},
			expectedCode: http.StatusTooManyRequests,
		},
		{
			name: "cache failure lets the request through",
			setup: func(redisCache *cacheMocks.MockRedisCache) {
				redisCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis down"))
			},
			expectedCode: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			redisCache := cacheMocks.NewMockRedisCache(ctrl)
			tt.setup(redisCache)

			appMiddleware := middleware.NewAppMiddleware(otelMocks.NewOtel(), limiterConfig(), redisCache)

			var seen string

			req := httptest.NewRequest(http.MethodGet, "/v1/bookings", nil)
			req.Header.Set(constant.RequestHeaderOperatorID, "clerk-7")

			rec := httptest.NewRecorder()
			appMiddleware.RateLimit()(captureOperator(&seen)).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
			assert.Equal(t, tt.remaining, rec.Header().Get(constant.RequestHeaderRateLimitRemaining))
		})
	}
}

func TestRateLimitDisabled(t *testing.T) {
	appMiddleware := middleware.NewAppMiddleware(otelMocks.NewOtel(), &config.Config{}, nil)

	var seen string

	rec := httptest.NewRecorder()
	appMiddleware.RateLimit()(captureOperator(&seen)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestTracingPassesThrough(t *testing.T) {
	appMiddleware := middleware.NewAppMiddleware(otelMocks.NewOtel(), &config.Config{}, nil)

	var seen string

	rec := httptest.NewRecorder()
	appMiddleware.Tracing(captureOperator(&seen)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/hotel", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, constant.OperatorSystem, seen)
}
