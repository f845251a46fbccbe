package viewstore

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	DefaultKeyPrefix = "contentcatalog:view:"
	maxTxRetries     = 64
)

type RedisConfig struct {
	Address   string
	Password  string
	DB        int
	TTL       time.Duration
	KeyPrefix string
}

// RedisStore keeps views as JSON strings, one key per view. Every write
// refreshes the TTL.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
	prefix string
}

var _ Store = (*RedisStore)(nil)

func NewRedisStore(ctx context.Context, cfg RedisConfig) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, ErrViewStore.Msg("failed to connect to redis").Err(err)
	}
	prefix := cfg.KeyPrefix
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}
	log.Ctx(ctx).Info().Str("address", cfg.Address).Dur("ttl", cfg.TTL).Msg("connected to redis view store")
	return &RedisStore{client: client, ttl: cfg.TTL, prefix: prefix}, nil
}

func (r *RedisStore) key(id string) string {
	return r.prefix + id
}

func (r *RedisStore) Create(ctx context.Context, catalogName string) (*View, error) {
	if catalogName == "" {
		return nil, ErrInvalidView.Msg("catalog name is required")
	}
	v := newView(catalogName)
	b, err := json.Marshal(v)
	if err != nil {
		return nil, ErrViewStore.Err(err)
	}
	if err := r.client.Set(ctx, r.key(v.Id), b, r.ttl).Err(); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("view", v.Id).Msg("failed to create view")
		return nil, ErrViewStore.Err(err)
	}
	return v, nil
}

func (r *RedisStore) Get(ctx context.Context, id string) (*View, error) {
	if !validId(id) {
		return nil, ErrViewNotFound
	}
	b, err := r.client.Get(ctx, r.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrViewNotFound
		}
		return nil, ErrViewStore.Err(err)
	}
	return decodeView(b)
}

// Update runs fn inside an optimistic transaction on the view key and
// retries when another writer got there first.
func (r *RedisStore) Update(ctx context.Context, id string, fn func(*View) error) (*View, error) {
	if !validId(id) {
		return nil, ErrViewNotFound
	}
	key := r.key(id)
	var out *View

	txf := func(tx *redis.Tx) error {
		b, err := tx.Get(ctx, key).Bytes()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				return ErrViewNotFound
			}
			return err
		}
		v, err := decodeView(b)
		if err != nil {
			return err
		}
		if err := fn(v); err != nil {
			return err
		}
		v.Id = id
		v.UpdatedAt = time.Now().UTC()
		nb, err := json.Marshal(v)
		if err != nil {
			return err
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, nb, r.ttl)
			return nil
		})
		if err == nil {
			out = v
		}
		return err
	}

	for i := 0; i < maxTxRetries; i++ {
		err := r.client.Watch(ctx, txf, key)
		if err == nil {
			return out, nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			log.Ctx(ctx).Debug().Str("view", id).Int("attempt", i+1).Msg("view update raced, retrying")
			continue
		}
		if errors.Is(err, ErrViewStore) {
			return nil, err
		}
		return nil, ErrViewStore.Err(err)
	}
	return nil, ErrConflict
}

func (r *RedisStore) Delete(ctx context.Context, id string) error {
	if !validId(id) {
		return nil
	}
	if err := r.client.Del(ctx, r.key(id)).Err(); err != nil {
		return ErrViewStore.Err(err)
	}
	return nil
}

func (r *RedisStore) Close() error {
	return r.client.Close()
}

func decodeView(b []byte) (*View, error) {
	v := &View{}
	if err := json.Unmarshal(b, v); err != nil {
		return nil, ErrViewStore.Msg("corrupt view").Err(err)
	}
	return v, nil
}
