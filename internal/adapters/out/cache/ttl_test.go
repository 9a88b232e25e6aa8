package cache_test

import (
	"testing"
	"time"

	"orders/internal/adapters/out/cache"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTTL_SetGet(t *testing.T) {
	c := cache.NewTTL(0, time.Minute)

	c.Set("orders", []string{"a", "b"})

	value, ok := c.Get("orders")
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, value)
}

func TestTTL_MissOnUnknownKey(t *testing.T) {
	c := cache.NewTTL(0, time.Minute)

	_, ok := c.Get("order_123")
	assert.False(t, ok)
}

func TestTTL_Remove(t *testing.T) {
	c := cache.NewTTL(0, time.Minute)
	c.Set("orders", "cached")

	c.Remove("orders")

	_, ok := c.Get("orders")
	assert.False(t, ok)

	// Removing an absent key must not panic.
	c.Remove("orders")
}

func TestTTL_SetReplacesValue(t *testing.T) {
	c := cache.NewTTL(0, time.Minute)
	c.Set("orders", "old")

	c.Set("orders", "new")

	value, ok := c.Get("orders")
	require.True(t, ok)
	assert.Equal(t, "new", value)
}

func TestTTL_EntriesExpire(t *testing.T) {
	c := cache.NewTTL(0, 20*time.Millisecond)
	c.Set("orders", "cached")

	time.Sleep(60 * time.Millisecond)

	_, ok := c.Get("orders")
	assert.False(t, ok)
}
