// Package ratelimit throttles requests per client key with a token bucket.
// Buckets live either in process memory or in redis, so several api
// instances can share them.
package ratelimit

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type Limiter interface {
	// Allow takes one token from the bucket of key.
	Allow(ctx context.Context, key string) (bool, error)
}

const (
	idleTTL         = 5 * time.Minute
	cleanupInterval = time.Minute
)

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// Local keeps one rate.Limiter per key. Buckets idle for longer than
// idleTTL are dropped by a background janitor until Stop is called.
type Local struct {
	rps   rate.Limit
	burst int

	mu      sync.Mutex
	clients map[string]*client
	now     func() time.Time
	done    chan struct{}
	once    sync.Once
}

func NewLocal(rps float64, burst int) *Local {
	l := &Local{
		rps:     rate.Limit(rps),
		burst:   burst,
		clients: make(map[string]*client),
		now:     time.Now,
		done:    make(chan struct{}),
	}
	go l.janitor()
	return l
}

func (l *Local) Allow(_ context.Context, key string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	c, ok := l.clients[key]
	if !ok {
		c = &client{limiter: rate.NewLimiter(l.rps, l.burst)}
		l.clients[key] = c
	}
	c.lastSeen = l.now()
	return c.limiter.AllowN(c.lastSeen, 1), nil
}

func (l *Local) Stop() {
	l.once.Do(func() { close(l.done) })
}

func (l *Local) janitor() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()
	for {
		select {
		case <-l.done:
			return
		case <-ticker.C:
			l.cleanup()
		}
	}
}

func (l *Local) cleanup() {
	l.mu.Lock()
	defer l.mu.Unlock()
	for key, c := range l.clients {
		if l.now().Sub(c.lastSeen) > idleTTL {
			delete(l.clients, key)
		}
	}
}

func (l *Local) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.clients)
}
