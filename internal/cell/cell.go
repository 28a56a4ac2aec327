// Package cell provides an observable value holder. Dependents subscribe to a
// cell and are notified synchronously, in subscription order, on every write.
package cell

import "sync"

// Cell holds a value of type T and notifies subscribers when it changes.
// A Cell is safe for concurrent use; writers racing on the same cell resolve
// last-write-wins.
type Cell[T any] struct {
	mu     sync.RWMutex
	value  T
	subs   []subscriber[T]
	nextID int
}

type subscriber[T any] struct {
	id int
	fn func(T)
}

// New returns a cell holding v.
func New[T any](v T) *Cell[T] {
	return &Cell[T]{value: v}
}

// Get returns the current value.
func (c *Cell[T]) Get() T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.value
}

// Set stores v and notifies every subscriber with it.
func (c *Cell[T]) Set(v T) {
	c.mu.Lock()
	c.value = v
	subs := c.snapshot()
	c.mu.Unlock()

	notify(subs, v)
}

// Update replaces the value with fn(current) atomically, then notifies.
func (c *Cell[T]) Update(fn func(T) T) {
	c.mu.Lock()
	v := fn(c.value)
	c.value = v
	subs := c.snapshot()
	c.mu.Unlock()

	notify(subs, v)
}

// Subscribe registers fn to be called after every write. The returned
// function removes the subscription; calling it more than once is harmless.
func (c *Cell[T]) Subscribe(fn func(T)) (cancel func()) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.nextID++
	id := c.nextID
	c.subs = append(c.subs, subscriber[T]{id: id, fn: fn})

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		for i, s := range c.subs {
			if s.id == id {
				c.subs = append(c.subs[:i:i], c.subs[i+1:]...)
				return
			}
		}
	}
}

// snapshot copies the subscriber list so notification runs without the lock
// held. The caller must hold c.mu.
func (c *Cell[T]) snapshot() []subscriber[T] {
	if len(c.subs) == 0 {
		return nil
	}
	out := make([]subscriber[T], len(c.subs))
	copy(out, c.subs)
	return out
}

func notify[T any](subs []subscriber[T], v T) {
	for _, s := range subs {
		s.fn(v)
	}
}
