package contact

import (
	"sync"
	"time"
)

// window tracks submissions inside one rolling period.
type window struct {
	count int
	start time.Time
}

// RateLimiter enforces per-identity hourly and daily submission caps with an
// in-memory counter map. Counters reset lazily when their window elapses.
type RateLimiter struct {
	mu          sync.Mutex
	hourly      map[string]*window
	daily       map[string]*window
	hourlyLimit int
	dailyLimit  int
	now         func() time.Time
}

// NewRateLimiter creates a limiter with the given per-identity caps.
func NewRateLimiter(hourlyLimit, dailyLimit int) *RateLimiter {
	return &RateLimiter{
		hourly:      make(map[string]*window),
		daily:       make(map[string]*window),
		hourlyLimit: hourlyLimit,
		dailyLimit:  dailyLimit,
		now:         time.Now,
	}
}

// Allow records one submission attempt for the identity and reports whether
// it is within both limits. A denied attempt is not counted.
func (l *RateLimiter) Allow(identity string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()

	h := l.bucket(l.hourly, identity, now, time.Hour)
	d := l.bucket(l.daily, identity, now, 24*time.Hour)

	if h.count >= l.hourlyLimit || d.count >= l.dailyLimit {
		return false
	}

	h.count++
	d.count++
	return true
}

func (l *RateLimiter) bucket(m map[string]*window, identity string, now time.Time, period time.Duration) *window {
	w, ok := m[identity]
	if !ok || now.Sub(w.start) >= period {
		w = &window{start: now}
		m[identity] = w
	}
	return w
}
