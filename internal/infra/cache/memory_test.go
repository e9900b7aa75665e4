//go:build unit

package cache_test

import (
	"slices"
	"testing"
	"time"

	"airease-backend/internal/infra/cache"
	"airease-backend/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory(t *testing.T) {
	start := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)

	t.Run("entries live for the ttl inclusive", func(t *testing.T) {
		clk := clock.NewMockClock(start)
		c := cache.NewMemory[string](10*time.Minute, clk, nil)
		c.Set("k", "v")

		clk.Add(10 * time.Minute)
		got, ok := c.Get("k")
		require.True(t, ok)
		assert.Equal(t, "v", got)

		clk.Add(time.Second)
		_, ok = c.Get("k")
		assert.False(t, ok)
		assert.Zero(t, c.Len(), "expired entry is dropped on read")
	})

	t.Run("set refreshes the expiry", func(t *testing.T) {
		clk := clock.NewMockClock(start)
		c := cache.NewMemory[int](time.Minute, clk, nil)
		c.Set("k", 1)
		clk.Add(50 * time.Second)
		c.Set("k", 2)
		clk.Add(50 * time.Second)

		got, ok := c.Get("k")
		require.True(t, ok)
		assert.Equal(t, 2, got)
	})

	t.Run("clone isolates callers from the stored value", func(t *testing.T) {
		clk := clock.NewMockClock(start)
		c := cache.NewMemory[[]int](time.Minute, clk, slices.Clone[[]int])

		in := []int{3, 1, 2}
		c.Set("k", in)
		in[0] = 99

		out, ok := c.Get("k")
		require.True(t, ok)
		slices.Sort(out)

		again, _ := c.Get("k")
		assert.Equal(t, []int{3, 1, 2}, again)
	})

	t.Run("purge drops only expired entries", func(t *testing.T) {
		clk := clock.NewMockClock(start)
		c := cache.NewMemory[string](time.Minute, clk, nil)
		c.Set("old", "a")
		clk.Add(45 * time.Second)
		c.Set("new", "b")
		clk.Add(30 * time.Second)

		assert.Equal(t, 1, c.Purge())
		assert.Equal(t, 1, c.Len())
		_, ok := c.Get("new")
		assert.True(t, ok)
	})

	t.Run("expired read keeps a value written concurrently", func(t *testing.T) {
		clk := &hookClock{now: start}
		c := cache.NewMemory[string](time.Minute, clk, nil)
		c.Set("k", "stale")
		clk.now = start.Add(2 * time.Minute)

		// The write lands after Get saw the stale entry but before it takes the write lock.
		clk.hook = func() { c.Set("k", "fresh") }

		got, ok := c.Get("k")
		require.True(t, ok)
		assert.Equal(t, "fresh", got)

		again, ok := c.Get("k")
		require.True(t, ok, "fresh entry must not be deleted by the stale read")
		assert.Equal(t, "fresh", again)
	})
}

// hookClock runs hook once, on the next Now call.
type hookClock struct {
	now  time.Time
	hook func()
}

func (c *hookClock) Now() time.Time {
	if h := c.hook; h != nil {
		c.hook = nil
		h()
	}
	return c.now
}
