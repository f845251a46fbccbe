package viewstore

import (
	"context"
	"errors"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/mugiliam/contentcatalog/pkg/types"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stores(t *testing.T) map[string]Store {
	ctx := log.Logger.WithContext(context.Background())
	out := map[string]Store{"memory": NewMemoryStore(0)}
	if addr := os.Getenv("CATALOG_TEST_REDIS_ADDRESS"); addr != "" {
		rs, err := NewRedisStore(ctx, RedisConfig{
			Address:   addr,
			TTL:       time.Minute,
			KeyPrefix: "contentcatalog:test:view:",
		})
		require.NoError(t, err)
		t.Cleanup(func() { rs.Close() })
		out["redis"] = rs
	}
	return out
}

func expanded(t *testing.T, v *View) types.RecordId {
	id, ok := v.Selection().Expanded()
	if !ok {
		return 0
	}
	return id
}

func TestStoreToggle(t *testing.T) {
	ctx := log.Logger.WithContext(context.Background())
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			v, err := s.Create(ctx, "questions")
			require.NoError(t, err)
			defer s.Delete(ctx, v.Id)
			assert.True(t, v.State.ExpandedId.IsNil())

			v, err = Toggle(ctx, s, v.Id, 2)
			require.NoError(t, err)
			assert.Equal(t, types.RecordId(2), expanded(t, v))

			v, err = Toggle(ctx, s, v.Id, 3)
			require.NoError(t, err)
			assert.Equal(t, types.RecordId(3), expanded(t, v))

			v, err = Toggle(ctx, s, v.Id, 3)
			require.NoError(t, err)
			assert.True(t, v.State.ExpandedId.IsNil())

			_, err = Toggle(ctx, s, v.Id, 1)
			require.NoError(t, err)
			v, err = Clear(ctx, s, v.Id)
			require.NoError(t, err)
			assert.True(t, v.State.ExpandedId.IsNil())

			got, err := s.Get(ctx, v.Id)
			require.NoError(t, err)
			assert.Equal(t, "questions", got.Catalog)
			assert.True(t, got.State.ExpandedId.IsNil())
		})
	}
}

func TestStoreMissingViews(t *testing.T) {
	ctx := log.Logger.WithContext(context.Background())
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			_, err := s.Get(ctx, "00000000-0000-0000-0000-000000000000")
			assert.ErrorIs(t, err, ErrViewNotFound)
			_, err = s.Get(ctx, "not-a-uuid")
			assert.ErrorIs(t, err, ErrViewNotFound)
			_, err = Toggle(ctx, s, "not-a-uuid", 1)
			assert.ErrorIs(t, err, ErrViewNotFound)

			_, err = s.Create(ctx, "")
			assert.ErrorIs(t, err, ErrInvalidView)

			v, err := s.Create(ctx, "questions")
			require.NoError(t, err)
			require.NoError(t, s.Delete(ctx, v.Id))
			require.NoError(t, s.Delete(ctx, v.Id))
			_, err = s.Get(ctx, v.Id)
			assert.ErrorIs(t, err, ErrViewNotFound)
		})
	}
}

func TestStoreUpdateError(t *testing.T) {
	ctx := log.Logger.WithContext(context.Background())
	boom := errors.New("boom")
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			v, err := Toggle(ctx, s, mustCreate(t, s), 4)
			require.NoError(t, err)
			defer s.Delete(ctx, v.Id)

			_, err = s.Update(ctx, v.Id, func(v *View) error {
				v.State.ExpandedId.Clear()
				return boom
			})
			assert.ErrorIs(t, err, boom)

			got, err := s.Get(ctx, v.Id)
			require.NoError(t, err)
			assert.Equal(t, types.RecordId(4), expanded(t, got))
		})
	}
}

func TestStoreConcurrentToggles(t *testing.T) {
	ctx := log.Logger.WithContext(context.Background())
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			id := mustCreate(t, s)
			defer s.Delete(ctx, id)

			// an even number of toggles of the same id leaves it collapsed
			var wg sync.WaitGroup
			for i := 0; i < 10; i++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					_, err := Toggle(ctx, s, id, 7)
					assert.NoError(t, err)
				}()
			}
			wg.Wait()
			got, err := s.Get(ctx, id)
			require.NoError(t, err)
			assert.True(t, got.State.ExpandedId.IsNil())
		})
	}
}

func mustCreate(t *testing.T, s Store) string {
	v, err := s.Create(log.Logger.WithContext(context.Background()), "questions")
	require.NoError(t, err)
	return v.Id
}

func TestMemoryStoreTTL(t *testing.T) {
	ctx := log.Logger.WithContext(context.Background())
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	m := NewMemoryStore(time.Minute)
	m.now = func() time.Time { return now }

	a, err := m.Create(ctx, "questions")
	require.NoError(t, err)
	now = now.Add(30 * time.Second)
	_, err = Toggle(ctx, m, a.Id, 1)
	require.NoError(t, err)

	// the toggle refreshed the ttl
	now = now.Add(45 * time.Second)
	_, err = m.Get(ctx, a.Id)
	require.NoError(t, err)

	now = now.Add(2 * time.Minute)
	_, err = m.Get(ctx, a.Id)
	assert.ErrorIs(t, err, ErrViewNotFound)
	assert.Equal(t, 0, m.Len())
}

func TestNew(t *testing.T) {
	ctx := log.Logger.WithContext(context.Background())
	s, err := New(ctx, Config{})
	require.NoError(t, err)
	assert.IsType(t, &MemoryStore{}, s)

	_, err = New(ctx, Config{Backend: "etcd"})
	assert.ErrorIs(t, err, ErrInvalidView)
}

func TestScoped(t *testing.T) {
	ctx := log.Logger.WithContext(context.Background())
	m := NewMemoryStore(0)
	questions := NewScoped(m, "questions")
	operators := NewScoped(m, "operators")

	v, err := questions.Create(ctx, "ignored")
	require.NoError(t, err)
	assert.Equal(t, "questions", v.Catalog)

	_, err = operators.Get(ctx, v.Id)
	assert.ErrorIs(t, err, ErrViewNotFound)
	_, err = Toggle(ctx, operators, v.Id, 1)
	assert.ErrorIs(t, err, ErrViewNotFound)
	require.NoError(t, operators.Delete(ctx, v.Id))

	v, err = Toggle(ctx, questions, v.Id, 1)
	require.NoError(t, err)
	assert.Equal(t, types.RecordId(1), expanded(t, v))

	require.NoError(t, questions.Delete(ctx, v.Id))
	_, err = m.Get(ctx, v.Id)
	assert.ErrorIs(t, err, ErrViewNotFound)
}
