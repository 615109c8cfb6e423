package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseCache_Expiry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c := newResponseCache(func() time.Time { return now })

	require.NoError(t, c.Set(ctx, "client?id=1", []byte("x"), time.Minute))

	v, ok, err := c.Get(ctx, "client?id=1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("x"), v)

	now = now.Add(time.Minute)
	_, ok, err = c.Get(ctx, "client?id=1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestResponseCache_ZeroTTLDoesNotStore(t *testing.T) {
	ctx := context.Background()
	c := NewResponseCache()
	require.NoError(t, c.Set(ctx, "k", []byte("x"), 0))
	_, ok, _ := c.Get(ctx, "k")
	assert.False(t, ok)
}
