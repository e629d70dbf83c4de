package sim

import "sync"

// Key is a movement input the step understands.
type Key uint8

const (
	KeyLeft Key = 1 << iota
	KeyRight
	KeyJump
)

// Keys is an immutable set of held keys captured once per tick.
type Keys uint8

// NewKeys builds a snapshot from individual keys.
func NewKeys(keys ...Key) Keys {
	var k Keys
	for _, key := range keys {
		k |= Keys(key)
	}
	return k
}

// Held reports whether key is in the set.
func (k Keys) Held(key Key) bool {
	return k&Keys(key) != 0
}

// HeldKeys is the "currently held" set written by input producers and read
// by the tick. Producers may run on other goroutines.
type HeldKeys struct {
	mu   sync.Mutex
	keys Keys
}

func (h *HeldKeys) Press(key Key) {
	h.mu.Lock()
	h.keys |= Keys(key)
	h.mu.Unlock()
}

func (h *HeldKeys) Release(key Key) {
	h.mu.Lock()
	h.keys &^= Keys(key)
	h.mu.Unlock()
}

// Set presses or releases key.
func (h *HeldKeys) Set(key Key, held bool) {
	if held {
		h.Press(key)
		return
	}
	h.Release(key)
}

// Clear releases every key.
func (h *HeldKeys) Clear() {
	h.mu.Lock()
	h.keys = 0
	h.mu.Unlock()
}

// Snapshot returns a consistent copy of the held set.
func (h *HeldKeys) Snapshot() Keys {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.keys
}
