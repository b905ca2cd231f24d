package ratelimit

import (
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"
)

// NewStoreFromURI builds a counter store from a storage URI. "memory://"
// selects the in-process store; "redis://..." and "rediss://..." are parsed
// by go-redis.
func NewStoreFromURI(uri string, clock Clock) (Store, error) {
	switch {
	case uri == "" || uri == "memory://":
		return NewMemoryStore(clock), nil
	case strings.HasPrefix(uri, "redis://"), strings.HasPrefix(uri, "rediss://"):
		opts, err := redis.ParseURL(uri)
		if err != nil {
			return nil, fmt.Errorf("invalid redis storage uri: %w", err)
		}
		return NewRedisStore(opts)
	default:
		return nil, fmt.Errorf("unsupported storage uri: %s", uri)
	}
}
