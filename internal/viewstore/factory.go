package viewstore

import (
	"context"
	"time"
)

const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

type Config struct {
	Backend string
	TTL     time.Duration
	Redis   RedisConfig
}

// New returns the store selected by cfg.Backend. An empty backend means
// memory.
func New(ctx context.Context, cfg Config) (Store, error) {
	switch cfg.Backend {
	case "", BackendMemory:
		return NewMemoryStore(cfg.TTL), nil
	case BackendRedis:
		rc := cfg.Redis
		if rc.TTL == 0 {
			rc.TTL = cfg.TTL
		}
		return NewRedisStore(ctx, rc)
	}
	return nil, ErrInvalidView.Msg("unknown view store backend " + cfg.Backend)
}
