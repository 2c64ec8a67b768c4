package redis

import (
	"context"
	"os"
	"testing"

	"github.com/gabapcia/aethersight/internal/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	_ = logger.Init("error")
}

func TestBlockKey(t *testing.T) {
	assert.Equal(t, "block:24041818", blockKey(24041818))
	assert.Equal(t, "block:0", blockKey(0))
}

// TestClient runs against a live server when AETHERSIGHT_TEST_REDIS_ADDR is set.
func TestClient(t *testing.T) {
	addr := os.Getenv("AETHERSIGHT_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("AETHERSIGHT_TEST_REDIS_ADDR not set")
	}

	c, err := NewClient(t.Context(), addr, "", "", 15)
	require.NoError(t, err)
	defer c.Close()

	const n = 18446744073709551615
	require.NoError(t, c.conn.Del(t.Context(), blockKey(n)).Err())

	_, ok := c.LoadBlock(t.Context(), n)
	assert.False(t, ok)

	require.NoError(t, c.SaveBlock(t.Context(), n, []byte(`{"result":null}`)))

	raw, ok := c.LoadBlock(t.Context(), n)
	require.True(t, ok)
	assert.Equal(t, `{"result":null}`, string(raw))

	require.NoError(t, c.conn.Del(t.Context(), blockKey(n)).Err())
}

func TestNewClient_Unreachable(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	_, err := NewClient(ctx, "127.0.0.1:1", "", "", 0)
	assert.Error(t, err)
}
