package hub

import (
	"context"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"concierge/config"
)

func TestNewPublisher_NeverSubscribes(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1})
	t.Cleanup(func() { _ = client.Close() })

	h := NewPublisher(client, &config.Config{})
	t.Cleanup(h.Shutdown)

	assert.Nil(t, h.pubsub)
	assert.Same(t, client, h.redis)

	// an unreachable Redis still surfaces as a publish error
	err := h.PublishStaff(context.Background(), map[string]string{"type": "request"})
	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to publish chat event")
}
