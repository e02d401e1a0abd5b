package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/erdoganeray/travelApp/internal/repository/cache"
)

func setupCache(t *testing.T) (*cache.Redis, func()) {
	client := redis.NewClient(&redis.Options{Addr: "localhost:6379", DB: 1})
	r, err := cache.NewRedisFromClient(client, zap.NewNop())
	if err != nil {
		client.Close()
		t.Skipf("Redis not available for integration tests: %v", err)
	}
	return r, func() { _ = r.Close() }
}

func TestCacheRepository(t *testing.T) {
	r, closeFn := setupCache(t)
	defer closeFn()

	repo := cache.NewCacheRepository(r)
	ctx := context.Background()

	t.Run("miss returns nil without error", func(t *testing.T) {
		val, err := repo.Get(ctx, "test:catalog:missing")
		require.NoError(t, err)
		assert.Nil(t, val)
	})

	t.Run("set get delete", func(t *testing.T) {
		require.NoError(t, repo.Set(ctx, "test:catalog:city:1", []byte(`{"name":"Izmir"}`), time.Minute))

		val, err := repo.Get(ctx, "test:catalog:city:1")
		require.NoError(t, err)
		assert.JSONEq(t, `{"name":"Izmir"}`, string(val))

		require.NoError(t, repo.Delete(ctx, "test:catalog:city:1"))
		val, err = repo.Get(ctx, "test:catalog:city:1")
		require.NoError(t, err)
		assert.Nil(t, val)
	})

	t.Run("delete by prefix", func(t *testing.T) {
		for _, key := range []string{"test:catalog:places:a", "test:catalog:places:b", "test:catalog:events:a"} {
			require.NoError(t, repo.Set(ctx, key, []byte("x"), time.Minute))
		}

		require.NoError(t, repo.DeleteByPrefix(ctx, "test:catalog:places:"))

		for _, key := range []string{"test:catalog:places:a", "test:catalog:places:b"} {
			val, err := repo.Get(ctx, key)
			require.NoError(t, err)
			assert.Nil(t, val, key)
		}
		val, err := repo.Get(ctx, "test:catalog:events:a")
		require.NoError(t, err)
		assert.Equal(t, []byte("x"), val)

		require.NoError(t, repo.DeleteByPrefix(ctx, "test:catalog:"))
	})
}
