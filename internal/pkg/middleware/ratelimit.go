package middleware

import (
	"net"
	"net/http"
	"strconv"
	"time"

	"binstock/internal/domain"
	"binstock/internal/pkg/cache"
	"binstock/internal/pkg/logger"
)

const rateLimitKey = "rate-limit:"

// RateLimiter limita requisições por IP numa janela fixa, com contadores no Redis.
// Se o Redis falhar, a requisição passa (fail-open) e o erro é logado.
func RateLimiter(client cache.Client, limit int, window time.Duration, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				ip = r.RemoteAddr
			}
			key := rateLimitKey + ip
			ctx := r.Context()

			count, err := client.Incr(ctx, key)
			if err != nil {
				log.Warn("Rate limiter indisponível; liberando requisição.", map[string]interface{}{"error": err.Error()})
				next.ServeHTTP(w, r)
				return
			}
			if count == 1 {
				// Primeira requisição da janela.
				if err := client.Expire(ctx, key, window); err != nil {
					log.Warn("Falha ao definir expiração do rate limit.", map[string]interface{}{"key": key, "error": err.Error()})
				}
			}

			remaining := int64(limit) - count
			if remaining < 0 {
				remaining = 0
			}
			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(limit))
			w.Header().Set("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

			if count > int64(limit) {
				writeJSON(w, http.StatusTooManyRequests, domain.ErrorResponse{
					Success:  false,
					Code:     http.StatusTooManyRequests,
					Category: "RATE_LIMITED",
					Message:  "rate limit exceeded",
				})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
