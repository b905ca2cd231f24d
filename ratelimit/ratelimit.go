// Package ratelimit implements the per-client request accounting that sits
// in front of every gateway route. Counters are fixed-window and keyed by
// client address under a fixed namespace prefix, so they never collide with
// unrelated consumers of the same counter store.
package ratelimit

import (
	"context"
	"time"
)

// KeyPrefix namespaces every counter key written to the store.
const KeyPrefix = "crocdb_api_"

// Rule caps requests per client within a rolling window.
type Rule struct {
	Name   string
	Window time.Duration
	Max    int64
}

// DefaultRules returns the two rules active in production: a fast per-second
// cap and a deliberately low per-hour meta cap. Both are checked on every
// request; either one tripping rejects it.
func DefaultRules() []Rule {
	return []Rule{
		{Name: "default", Window: time.Second, Max: 30},
		{Name: "meta", Window: time.Hour, Max: 15},
	}
}

// Store is a counter backend. Incr bumps the counter for key within its
// current window and returns the new count. Implementations must be safe for
// concurrent use per key.
type Store interface {
	Incr(ctx context.Context, key string, window time.Duration) (int64, error)
	Close()
}

// Clock is injectable so window behavior can be tested without sleeping.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock is the wall clock.
var SystemClock Clock = systemClock{}

// Limiter applies a set of rules against a counter store.
type Limiter struct {
	prefix string
	rules  []Rule
	store  Store
}

func New(store Store, rules []Rule) *Limiter {
	return &Limiter{
		prefix: KeyPrefix,
		rules:  rules,
		store:  store,
	}
}

// Admit decides whether the client's current request may proceed. Every rule
// counter is incremented exactly once per call, even when another rule has
// already tripped, so a hammering client keeps burning its longer windows.
func (l *Limiter) Admit(ctx context.Context, client string) (bool, error) {
	admit := true
	for _, rule := range l.rules {
		n, err := l.store.Incr(ctx, l.prefix+rule.Name+":"+client, rule.Window)
		if err != nil {
			return false, err
		}
		if n > rule.Max {
			admit = false
		}
	}
	return admit, nil
}

func (l *Limiter) Close() {
	l.store.Close()
}
