package cache

import (
	"context"
	"testing"

	"blood-donor-registry/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRedisClientUnreachable(t *testing.T) {
	client, err := NewRedisClient(context.Background(), config.RedisConfig{Host: "127.0.0.1", Port: "1"})
	require.Error(t, err)
	assert.Nil(t, client)
	assert.Contains(t, err.Error(), "127.0.0.1:1")
}
