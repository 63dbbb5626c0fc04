package kv

import (
	"context"
	"testing"

	"brewmenu/internal/domain/repository"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testRedisAddr = "localhost:6379"

func exerciseStore(t *testing.T, store repository.KeyValueStore) {
	t.Helper()
	ctx := context.Background()

	_, ok, err := store.Get(ctx, "setting:shop_name")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set(ctx, "setting:shop_name", "Tea Hut"))
	v, ok, err := store.Get(ctx, "setting:shop_name")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Tea Hut", v)

	require.NoError(t, store.Set(ctx, "setting:shop_name", ""))
	v, ok, err = store.Get(ctx, "setting:shop_name")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, v)

	require.NoError(t, store.Remove(ctx, "setting:shop_name"))
	require.NoError(t, store.Remove(ctx, "setting:shop_name"))
	_, ok, err = store.Get(ctx, "setting:shop_name")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, NewMemoryStore())
}

func TestRedisStore(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: testRedisAddr})
	t.Cleanup(func() { _ = client.Close() })

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("Redis not available at %s: %v", testRedisAddr, err)
	}

	prefix := "brewmenu-test:" + t.Name() + ":"
	t.Cleanup(func() {
		keys, _ := client.Keys(ctx, prefix+"*").Result()
		if len(keys) > 0 {
			client.Del(ctx, keys...)
		}
	})

	exerciseStore(t, NewRedisStore(client, prefix))
}
