package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time { return f.now }

func TestLRU_GetSet(t *testing.T) {
	clock := &fakeClock{now: time.Now()}
	c := NewLRU[string, int](2, time.Minute).WithClock(clock.Now)

	c.Set("a", 1)
	c.Set("b", 2)

	v, ok := c.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	t.Run("Evicts least recently used", func(t *testing.T) {
		c.Set("c", 3)

		_, ok := c.Get("b")
		assert.False(t, ok)
		_, ok = c.Get("a")
		assert.True(t, ok)
		assert.Equal(t, 2, c.Len())
	})

	t.Run("Overwrite keeps size", func(t *testing.T) {
		c.Set("a", 10)

		v, ok := c.Get("a")
		assert.True(t, ok)
		assert.Equal(t, 10, v)
		assert.Equal(t, 2, c.Len())
	})

	t.Run("Delete", func(t *testing.T) {
		c.Delete("a")

		_, ok := c.Get("a")
		assert.False(t, ok)
	})
}

func TestLRU_Expiration(t *testing.T) {
	clock := &fakeClock{now: time.Now()}
	c := NewLRU[string, string](10, time.Minute).WithClock(clock.Now)

	c.Set("old", "x")
	clock.now = clock.now.Add(30 * time.Second)
	c.Set("fresh", "y")

	clock.now = clock.now.Add(45 * time.Second)

	_, ok := c.Get("old")
	assert.False(t, ok)

	v, ok := c.Get("fresh")
	assert.True(t, ok)
	assert.Equal(t, "y", v)

	clock.now = clock.now.Add(time.Minute)
	assert.Equal(t, 1, c.CleanExpired())
	assert.Equal(t, 0, c.Len())
}

func TestManager(t *testing.T) {
	clock := &fakeClock{now: time.Now()}
	first := NewLRU[int, int](10, time.Second).WithClock(clock.Now)
	second := NewLRU[int, int](10, time.Second).WithClock(clock.Now)

	m := NewManager(time.Hour, zap.NewNop())
	m.Register(first)
	m.Register(second)

	first.Set(1, 1)
	second.Set(1, 1)
	second.Set(2, 2)

	clock.now = clock.now.Add(2 * time.Second)
	assert.Equal(t, 3, m.CleanAll())

	t.Run("Run stops on cancel", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() { done <- m.Run(ctx) }()

		cancel()

		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(time.Second):
			t.Fatal("manager did not stop")
		}
	})
}
