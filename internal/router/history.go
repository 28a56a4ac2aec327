package router

import "sync"

// History is the location primitive the router drives: the present path, a
// way to push a new entry, and a notification when the location changes by
// moving through existing entries.
type History interface {
	Path() string
	Push(path string)
	OnPop(fn func())
}

// MemoryHistory is an in-process History: an entry stack with a cursor.
// Push drops any forward entries. Back, Forward and Go move the cursor and
// call pop listeners synchronously; moves past either end do nothing.
type MemoryHistory struct {
	mu        sync.Mutex
	entries   []string
	cursor    int
	listeners []func()
}

// NewMemoryHistory starts a history at initial.
func NewMemoryHistory(initial string) *MemoryHistory {
	return &MemoryHistory{entries: []string{initial}}
}

func (h *MemoryHistory) Path() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.entries[h.cursor]
}

func (h *MemoryHistory) Push(path string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries = append(h.entries[:h.cursor+1], path)
	h.cursor++
}

func (h *MemoryHistory) OnPop(fn func()) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.listeners = append(h.listeners, fn)
}

// Back moves one entry back.
func (h *MemoryHistory) Back() bool { return h.Go(-1) }

// Forward moves one entry forward.
func (h *MemoryHistory) Forward() bool { return h.Go(1) }

// Go moves the cursor by delta and reports whether it moved.
func (h *MemoryHistory) Go(delta int) bool {
	h.mu.Lock()
	next := h.cursor + delta
	if delta == 0 || next < 0 || next >= len(h.entries) {
		h.mu.Unlock()
		return false
	}
	h.cursor = next
	listeners := append([]func(){}, h.listeners...)
	h.mu.Unlock()

	for _, fn := range listeners {
		fn()
	}
	return true
}

// Len returns the number of entries.
func (h *MemoryHistory) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entries)
}

// Entries returns a copy of the stack and the cursor position.
func (h *MemoryHistory) Entries() ([]string, int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]string(nil), h.entries...), h.cursor
}
