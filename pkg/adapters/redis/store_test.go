package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/aretw0/turing/pkg/adapters/redis"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/ports"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (*miniredis.Miniredis, *backend.Client) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := backend.NewClient(&backend.Options{
		Addr: mr.Addr(),
	})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestRedisCache_Contract(t *testing.T) {
	_, client := setup(t)
	ports.RunResultCacheContract(t, redis.NewFromClient(client))
}

func TestRedisCache_TTL_Expiration(t *testing.T) {
	mr, client := setup(t)
	cache := redis.NewFromClient(client, redis.WithTTL(1*time.Second))
	ctx := context.Background()

	require.NoError(t, cache.Put(ctx, "k", domain.Result{Output: "accept"}))

	_, err := cache.Get(ctx, "k")
	assert.NoError(t, err)

	mr.FastForward(2 * time.Second)

	_, err = cache.Get(ctx, "k")
	assert.ErrorIs(t, err, domain.ErrCacheMiss)
}

func TestRedisCache_Prefix(t *testing.T) {
	mr, client := setup(t)
	cache := redis.NewFromClient(client, redis.WithPrefix("custom:app:"))

	require.NoError(t, cache.Put(context.Background(), "abc", domain.Result{Output: "x"}))
	assert.True(t, mr.Exists("custom:app:abc"), "Expected key with custom prefix to exist")
	assert.NoError(t, cache.Ping(context.Background()))
}

func TestRedisCache_CorruptPayload(t *testing.T) {
	mr, client := setup(t)
	cache := redis.NewFromClient(client)

	require.NoError(t, mr.Set("turing:result:bad", "{not json"))
	_, err := cache.Get(context.Background(), "bad")
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrCacheMiss)
}
