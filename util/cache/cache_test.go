// util/cache/cache_test.go
package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNilCacheIsNoOp(t *testing.T) {
	ctx := context.Background()
	var c *Cache

	var out []string
	require.False(t, c.GetJSON(ctx, KeyAvailableCars, &out))
	require.Empty(t, out)

	// must not panic
	c.SetJSON(ctx, KeyAvailableCars, []string{"a"})
	c.Del(ctx, KeyAvailableCars)
}

func TestNilClientIsNoOp(t *testing.T) {
	ctx := context.Background()
	c := New(nil, time.Minute)

	var out map[string]string
	require.False(t, c.GetJSON(ctx, "anything", &out))

	c.SetJSON(ctx, "anything", map[string]string{"k": "v"})
	c.Del(ctx, "anything")
}

func TestNewDefaultsTTL(t *testing.T) {
	c := New(nil, 0)
	require.Equal(t, 30*time.Second, c.ttl)
}
