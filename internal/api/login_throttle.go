package api

import (
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
)

// loginThrottle counts failed sign-in attempts per client key over a
// sliding window. Failures arrive in chronological order, so expiry
// only ever trims the front of a key's history.
type loginThrottle struct {
	limit  int
	window time.Duration

	mu       sync.Mutex
	failures map[string][]time.Time
}

func newLoginThrottle(limit int, window time.Duration) *loginThrottle {
	return &loginThrottle{
		limit:    limit,
		window:   window,
		failures: make(map[string][]time.Time),
	}
}

// blocked reports whether the key reached the failure limit within the
// window ending at now.
func (throttle *loginThrottle) blocked(key string, now time.Time) bool {
	throttle.mu.Lock()
	defer throttle.mu.Unlock()
	return len(throttle.trimLocked(key, now)) >= throttle.limit
}

func (throttle *loginThrottle) recordFailure(key string, now time.Time) {
	throttle.mu.Lock()
	defer throttle.mu.Unlock()
	throttle.failures[key] = append(throttle.trimLocked(key, now), now)
}

// forget clears a key's history after a successful sign-in.
func (throttle *loginThrottle) forget(key string) {
	throttle.mu.Lock()
	defer throttle.mu.Unlock()
	delete(throttle.failures, key)
}

func (throttle *loginThrottle) trimLocked(key string, now time.Time) []time.Time {
	recorded := throttle.failures[key]
	cutoff := now.Add(-throttle.window)

	expired := 0
	for expired < len(recorded) && !recorded[expired].After(cutoff) {
		expired++
	}
	switch {
	case expired == len(recorded):
		delete(throttle.failures, key)
		return nil
	case expired > 0:
		recorded = recorded[expired:]
		throttle.failures[key] = recorded
	}
	return recorded
}

func clientThrottleKey(c *fiber.Ctx) string {
	if key := strings.TrimSpace(c.IP()); key != "" {
		return key
	}
	return "unknown"
}
