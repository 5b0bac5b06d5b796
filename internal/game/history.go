package game

import "time"

// renderHistory records the last N regeneration durations in a ring buffer
// so the status line can show recent render cost.
type renderHistory struct {
	buffer    []time.Duration
	nextIndex int
	count     int
}

func newRenderHistory(ringSize int) *renderHistory {
	return &renderHistory{
		buffer: make([]time.Duration, ringSize),
	}
}

func (h *renderHistory) add(d time.Duration) {
	h.buffer[h.nextIndex] = d
	h.nextIndex++
	if h.nextIndex >= len(h.buffer) {
		h.nextIndex = 0
	}
	if h.count < len(h.buffer) {
		h.count++
	}
}

// snapshot returns up to the last n durations, most recent last.
func (h *renderHistory) snapshot(n int) []time.Duration {
	if n > h.count {
		n = h.count
	}
	out := make([]time.Duration, 0, n)
	// Walk backwards from nextIndex - 1
	idx := h.nextIndex - 1
	if idx < 0 {
		idx = len(h.buffer) - 1
	}
	for i := 0; i < n; i++ {
		out = append(out, h.buffer[idx])
		idx--
		if idx < 0 {
			idx = len(h.buffer) - 1
		}
	}
	// reverse to chronological order
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

func (h *renderHistory) last() time.Duration {
	s := h.snapshot(1)
	if len(s) == 0 {
		return 0
	}
	return s[0]
}

func (h *renderHistory) average() time.Duration {
	s := h.snapshot(h.count)
	if len(s) == 0 {
		return 0
	}
	var sum time.Duration
	for _, d := range s {
		sum += d
	}
	return sum / time.Duration(len(s))
}
