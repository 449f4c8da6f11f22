package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/vibecare/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestOTPCacheRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("requires docker")
	}
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "redis:7.0-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Skipf("redis container unavailable: %v", err)
	}
	defer redisC.Terminate(ctx)

	host, err := redisC.Host(ctx)
	assert.NoError(t, err)
	port, err := redisC.MappedPort(ctx, "6379")
	assert.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", host, port.Port()),
	})
	defer rdb.Close()

	err = rdb.Ping(ctx).Err()
	assert.NoError(t, err)

	repo := NewOTPCacheRepository(rdb, 2*time.Second)

	t.Run("Set and Get code", func(t *testing.T) {
		err := repo.Set(ctx, "Jane@Example.com ", "hash-1")
		assert.NoError(t, err)

		got, err := repo.Get(ctx, "jane@example.com")
		assert.NoError(t, err)
		assert.Equal(t, "hash-1", got)
	})

	t.Run("Set replaces previous code", func(t *testing.T) {
		assert.NoError(t, repo.Set(ctx, "bob@example.com", "old"))
		assert.NoError(t, repo.Set(ctx, "bob@example.com", "new"))

		got, err := repo.Get(ctx, "bob@example.com")
		assert.NoError(t, err)
		assert.Equal(t, "new", got)
	})

	t.Run("Get missing key returns ErrNotFound", func(t *testing.T) {
		_, err := repo.Get(ctx, "nobody@example.com")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("Delete removes code", func(t *testing.T) {
		assert.NoError(t, repo.Set(ctx, "del@example.com", "hash"))
		assert.NoError(t, repo.Delete(ctx, "del@example.com"))

		_, err := repo.Get(ctx, "del@example.com")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("Code expires", func(t *testing.T) {
		err := repo.Set(ctx, "exp@example.com", "hash")
		assert.NoError(t, err)

		time.Sleep(3 * time.Second)

		_, err = repo.Get(ctx, "exp@example.com")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestOTPCacheRepository_LogFields(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	old := logger.Log
	logger.Log = zap.New(core).Sugar()
	defer func() { logger.Log = old }()

	// nothing listens on port 1, every command fails fast
	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", DialTimeout: 100 * time.Millisecond, MaxRetries: -1})
	defer rdb.Close()
	repo := NewOTPCacheRepository(rdb, time.Minute)
	ctx := context.Background()

	assert.Error(t, repo.Set(ctx, " Jane@Example.com ", "hash"))
	_, err := repo.Get(ctx, "jane@example.com")
	assert.Error(t, err)
	assert.Error(t, repo.Delete(ctx, "jane@example.com"))

	for _, msg := range []string{"otp cached", "otp lookup", "otp deleted"} {
		entries := logs.FilterMessage(msg).All()
		require.Len(t, entries, 1, msg)
		fields := entries[0].ContextMap()
		assert.Equal(t, "otp:jane@example.com", fields["key"], msg)
		assert.Contains(t, fields, "error", msg)
	}
	assert.Equal(t, time.Minute, logs.FilterMessage("otp cached").All()[0].ContextMap()["ttl"])
	assert.Zero(t, logs.FilterMessage("Ignored key-value pairs with non-string keys.").Len())
}
