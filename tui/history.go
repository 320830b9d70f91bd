// Package tui provides a Bubble Tea terminal UI for the gang war game.
package tui

// History remembers submitted commands in a fixed-size ring and lets the
// player walk back through them with Up/Down.
type History struct {
	ring  []string
	start int // index of the oldest entry
	size  int // number of entries stored
	back  int // 0 = editing fresh input, n = n entries back from newest
}

// NewHistory creates a history that keeps the last capacity commands.
func NewHistory(capacity int) *History {
	if capacity < 1 {
		capacity = 1
	}
	return &History{ring: make([]string, capacity)}
}

// Len returns the number of stored commands.
func (h *History) Len() int {
	return h.size
}

// at returns the entry n back from the newest (1 = newest).
func (h *History) at(n int) string {
	return h.ring[(h.start+h.size-n)%len(h.ring)]
}

// Push records a command. Repeating the newest entry is a no-op; a full
// ring overwrites its oldest entry.
func (h *History) Push(cmd string) {
	if h.size > 0 && h.at(1) == cmd {
		return
	}
	if h.size < len(h.ring) {
		h.ring[(h.start+h.size)%len(h.ring)] = cmd
		h.size++
		return
	}
	h.ring[h.start] = cmd
	h.start = (h.start + 1) % len(h.ring)
}

// Prev steps one entry older. It stops at the oldest entry and reports
// false only when the history is empty.
func (h *History) Prev() (string, bool) {
	if h.size == 0 {
		return "", false
	}
	if h.back < h.size {
		h.back++
	}
	return h.at(h.back), true
}

// Next steps one entry newer. Stepping past the newest entry returns to
// fresh input and reports false.
func (h *History) Next() (string, bool) {
	if h.back <= 1 {
		h.back = 0
		return "", false
	}
	h.back--
	return h.at(h.back), true
}

// ResetCursor returns to fresh input.
func (h *History) ResetCursor() {
	h.back = 0
}
