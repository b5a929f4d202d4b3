package redis_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	redisstore "github.com/castkit/scenevault/pkg/adapters/redis"
	"github.com/castkit/scenevault/pkg/ports"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T, opts ...redisstore.Option) *redisstore.Store {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := backend.NewClient(&backend.Options{
		Addr: mr.Addr(),
	})
	t.Cleanup(func() { _ = client.Close() })

	return redisstore.New(client, opts...)
}

func TestRedisStore_Contract(t *testing.T) {
	store := newTestStore(t)
	ports.RunBlobStoreContract(t, store)
}

func TestRedisStore_CustomKeyIsolation(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	client := backend.NewClient(&backend.Options{Addr: mr.Addr()})
	defer client.Close()

	a := redisstore.New(client, redisstore.WithKey("vault:a"))
	b := redisstore.New(client, redisstore.WithKey("vault:b"))
	ctx := context.Background()

	require.NoError(t, a.Write(ctx, "Work", []byte("{}")))

	ok, err := b.Exists(ctx, "Work")
	require.NoError(t, err)
	assert.False(t, ok, "stores with distinct keys must not see each other's documents")
}
