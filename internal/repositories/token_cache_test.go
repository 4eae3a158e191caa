package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestTokenCacheRepository(t *testing.T) {
	ctx := context.Background()

	// Start Redis container
	req := testcontainers.ContainerRequest{
		Image:        "redis:7.0-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)
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

	repo := NewTokenCacheRepository(rdb, 2*time.Second)

	t.Run("Set and Get token", func(t *testing.T) {
		token := "a1b2c3d4"
		userID := uuid.New()

		err := repo.Set(ctx, token, userID)
		assert.NoError(t, err)

		got, err := repo.Get(ctx, token)
		assert.NoError(t, err)
		assert.Equal(t, userID, got)
	})

	t.Run("Get missing token returns error", func(t *testing.T) {
		_, err := repo.Get(ctx, "never-cached")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "token not found")
	})

	t.Run("Delete removes token", func(t *testing.T) {
		token := "to-delete"
		userID := uuid.New()

		err := repo.Set(ctx, token, userID)
		assert.NoError(t, err)

		err = repo.Delete(ctx, token)
		assert.NoError(t, err)

		_, err = repo.Get(ctx, token)
		assert.Error(t, err)
	})

	t.Run("Cached token expires", func(t *testing.T) {
		token := "short-lived"
		userID := uuid.New()

		err := repo.Set(ctx, token, userID)
		assert.NoError(t, err)

		time.Sleep(3 * time.Second)

		_, err = repo.Get(ctx, token)
		assert.Error(t, err)
	})
}
