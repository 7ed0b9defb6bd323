package middleware

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"golang.org/x/time/rate"

	"github.com/hmax24/beauty-salon/internal/api/handlers"
)

const (
	msgRateLimited = "too many requests, try again later"

	// idleTTL через сколько неактивный клиент удаляется из таблицы лимитеров
	idleTTL = 10 * time.Minute
)

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter token bucket на каждого клиента (IP)
type RateLimiter struct {
	rps        rate.Limit
	burst      int
	trustProxy bool
	logger     Logger

	mu        sync.Mutex
	clients   map[string]*client
	lastEvict time.Time
	now       func() time.Time
}

// NewRateLimiter создает лимитер. trustProxy включает ключ по X-Forwarded-For:
// только за доверенным reverse proxy, иначе клиент подменяет заголовок и обходит лимит
func NewRateLimiter(requestsPerSecond float64, burst int, trustProxy bool, logger Logger) *RateLimiter {
	return &RateLimiter{
		rps:        rate.Limit(requestsPerSecond),
		burst:      burst,
		trustProxy: trustProxy,
		logger:     logger,
		clients:    make(map[string]*client),
		now:        time.Now,
	}
}

// Middleware отвечает 429, если клиент исчерпал свой лимит
func (rl *RateLimiter) Middleware() mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := clientKey(r, rl.trustProxy)
			if !rl.allow(key) {
				rl.logger.Warn("RateLimiter: limit exceeded: client=%s, path=%s", key, r.URL.Path)
				handlers.RespondError(w, http.StatusTooManyRequests, handlers.KindRateLimited, "", msgRateLimited)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (rl *RateLimiter) allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	c, ok := rl.clients[key]
	if !ok {
		c = &client{limiter: rate.NewLimiter(rl.rps, rl.burst)}
		rl.clients[key] = c
	}
	c.lastSeen = now

	rl.evict(now)

	return c.limiter.AllowN(now, 1)
}

// evict удаляет давно неактивных клиентов не чаще раза в idleTTL. Вызывается под mu
func (rl *RateLimiter) evict(now time.Time) {
	if now.Sub(rl.lastEvict) < idleTTL {
		return
	}
	rl.lastEvict = now

	for key, c := range rl.clients {
		if now.Sub(c.lastSeen) > idleTTL {
			delete(rl.clients, key)
		}
	}
}

func clientKey(r *http.Request, trustProxy bool) string {
	if trustProxy {
		if ip := r.Header.Get("X-Forwarded-For"); ip != "" {
			parts := strings.Split(ip, ",")
			if first := strings.TrimSpace(parts[0]); first != "" {
				return first
			}
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err == nil {
		return host
	}
	return r.RemoteAddr
}
