package cell

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCellGetSet(t *testing.T) {
	c := New(1)
	assert.Equal(t, 1, c.Get())

	c.Set(2)
	assert.Equal(t, 2, c.Get())

	c.Update(func(v int) int { return v * 10 })
	assert.Equal(t, 20, c.Get())
}

func TestCellSubscribe(t *testing.T) {
	t.Run("notifies synchronously in subscription order", func(t *testing.T) {
		c := New("a")
		var got []string
		c.Subscribe(func(v string) { got = append(got, "first:"+v) })
		c.Subscribe(func(v string) { got = append(got, "second:"+v) })

		c.Set("b")
		assert.Equal(t, []string{"first:b", "second:b"}, got)
	})

	t.Run("cancel stops notifications", func(t *testing.T) {
		c := New(0)
		calls := 0
		cancel := c.Subscribe(func(int) { calls++ })

		c.Set(1)
		cancel()
		cancel()
		c.Set(2)
		assert.Equal(t, 1, calls)
	})

	t.Run("subscriber may read and write other cells", func(t *testing.T) {
		src := New(1)
		dst := New(0)
		src.Subscribe(func(v int) {
			assert.Equal(t, v, src.Get())
			dst.Set(v * 2)
		})

		src.Set(21)
		assert.Equal(t, 42, dst.Get())
	})
}

func TestCellConcurrentWrites(t *testing.T) {
	c := New(0)
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Update(func(v int) int { return v + 1 })
		}()
	}
	wg.Wait()
	require.Equal(t, 50, c.Get())
}
