package cache

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTTLSetGet(t *testing.T) {
	c := NewTTL[string](time.Minute)

	c.Set("k", "v")
	got, ok := c.Get("k")
	assert.True(t, ok)
	assert.Equal(t, "v", got)

	_, ok = c.Get("missing")
	assert.False(t, ok)
}

func TestTTLOverwrite(t *testing.T) {
	c := NewTTL[int](time.Minute)

	c.Set("k", 1)
	c.Set("k", 2)

	got, ok := c.Get("k")
	assert.True(t, ok)
	assert.Equal(t, 2, got)
	assert.Equal(t, 1, c.Len())
}

func TestTTLExpiration(t *testing.T) {
	c := NewTTL[string](50 * time.Millisecond)

	c.Set("k", "v")
	got, ok := c.Get("k")
	assert.True(t, ok)
	assert.Equal(t, "v", got)

	time.Sleep(120 * time.Millisecond)

	_, ok = c.Get("k")
	assert.False(t, ok, "a get at or after insertion+ttl must miss")
}

func TestTTLConcurrentAccess(t *testing.T) {
	c := NewTTL[int](time.Minute)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			key := fmt.Sprintf("key-%d", n%4)
			for j := 0; j < 100; j++ {
				c.Set(key, j)
				c.Get(key)
			}
		}(i)
	}
	wg.Wait()

	// Last-writer-wins: whatever value survived, it must be readable.
	got, ok := c.Get("key-0")
	assert.True(t, ok)
	assert.GreaterOrEqual(t, got, 0)
}

func TestContentKey(t *testing.T) {
	a := ContentKey("offre de stage python")
	b := ContentKey("offre de stage python")
	c := ContentKey("offre de stage go")

	assert.Equal(t, a, b, "identical content must map to the same key")
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 32)
}
