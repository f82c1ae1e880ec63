package middleware

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"hotel/shared"
	"hotel/shared/cache"
	"hotel/shared/constant"
	"hotel/transport/http/response"

	"github.com/rs/zerolog/log"
)

const (
	cacheKeyRateLimit = "limiter"
)

// RateLimit counts requests per caller in a fixed window kept in Redis. A caller is the
// operator when the X-Operator-ID header is sent, otherwise the client address and user agent.
// Cache failures let the request through.
func (a *appMiddleware) RateLimit() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !a.config.App.RateLimiter.Enable {
				next.ServeHTTP(w, r)

				return
			}

			maxReqs := a.config.App.RateLimiter.MaxRequests
			windowSecs := a.config.App.RateLimiter.WindowSeconds
			cacheKey := a.callerKey(r)

			var count int
			err := a.cache.Get(r.Context(), cacheKey, &count)

			switch {
			case err == nil:
				count++
			case errors.Is(err, cache.Nil):
				count = 1
			default:
				log.Warn().Err(err).Str("key", cacheKey).Msg("rate limiter cache unavailable")
				next.ServeHTTP(w, r)

				return
			}

			if count > maxReqs {
				response.WithRequestLimitExceeded(w)

				return
			}

			if err = a.cache.Save(r.Context(), cacheKey, count, windowSecs); err != nil {
				next.ServeHTTP(w, r)

				return
			}

			w.Header().Set(constant.RequestHeaderRateLimit, strconv.Itoa(maxReqs))
			w.Header().Set(constant.RequestHeaderRateLimitRemaining, strconv.Itoa(max(0, maxReqs-count)))
			w.Header().Set(constant.RequestHeaderRateLimitWindow, strconv.Itoa(windowSecs))

			next.ServeHTTP(w, r)
		})
	}
}

func (a *appMiddleware) callerKey(r *http.Request) string {
	if operator := r.Header.Get(constant.RequestHeaderOperatorID); operator != "" {
		return shared.BuildCacheKey(cacheKeyRateLimit, "operator", operator)
	}

	return shared.BuildCacheKey(cacheKeyRateLimit, a.getClientIP(r), a.getUA(r))
}

func (a *appMiddleware) getUA(r *http.Request) string {
	ua := r.Header.Get(constant.RequestHeaderUserAgent)
	if ua == "" {
		ua = "unknown"
	}

	return ua
}

func (a *appMiddleware) getClientIP(r *http.Request) string {
	// X-Forwarded-For may carry a proxy chain; the first entry is the client.
	if xff := r.Header.Get(constant.RequestHeaderForwardedFor); xff != "" {
		if commaIdx := strings.Index(xff, ","); commaIdx > 0 {
			return strings.TrimSpace(xff[:commaIdx])
		}

		return strings.TrimSpace(xff)
	}

	if xri := r.Header.Get(constant.RequestHeaderRealIP); xri != "" {
		return strings.TrimSpace(xri)
	}

	return r.RemoteAddr
}
