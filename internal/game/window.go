package game

import (
	"time"

	"github.com/vovakirdan/lost-n-found/internal/core"
)

// DefaultRevealLifetime is how long a revealed cell stays visible.
const DefaultRevealLifetime = 4 * time.Second

// RevealRecord tracks one visible cell and when it fades.
type RevealRecord struct {
	X, Y  int
	Timer core.Timer
}

// RevealWindow is a FIFO of reveals, oldest first, backed by a ring buffer
// that grows when full.
type RevealWindow struct {
	clock    core.Clock
	lifetime time.Duration
	capacity int

	buf  []RevealRecord
	head int
	n    int
}

// NewRevealWindow creates a window that keeps at most capacity cells
// visible, each for lifetime.
func NewRevealWindow(capacity int, clock core.Clock, lifetime time.Duration) *RevealWindow {
	return &RevealWindow{
		clock:    clock,
		lifetime: lifetime,
		capacity: capacity,
		buf:      make([]RevealRecord, capacity+1),
	}
}

// Capacity returns the number of reveals kept before eviction.
func (w *RevealWindow) Capacity() int {
	return w.capacity
}

// Len returns the number of tracked reveals.
func (w *RevealWindow) Len() int {
	return w.n
}

// Register appends a reveal of (x, y) with a fresh timer.
func (w *RevealWindow) Register(x, y int) {
	if w.n == len(w.buf) {
		w.grow()
	}
	w.buf[(w.head+w.n)%len(w.buf)] = RevealRecord{
		X:     x,
		Y:     y,
		Timer: core.NewTimer(w.clock, w.lifetime),
	}
	w.n++
}

// Expire pops the oldest record if the window is over capacity or that
// record's timer has run out. At most one record leaves per call.
func (w *RevealWindow) Expire() (RevealRecord, bool) {
	if w.n == 0 {
		return RevealRecord{}, false
	}
	oldest := w.buf[w.head]
	if w.n <= w.capacity && !oldest.Timer.Finished() {
		return RevealRecord{}, false
	}
	w.buf[w.head] = RevealRecord{}
	w.head = (w.head + 1) % len(w.buf)
	w.n--
	return oldest, true
}

// Records returns the tracked reveals, oldest first.
func (w *RevealWindow) Records() []RevealRecord {
	out := make([]RevealRecord, w.n)
	for i := range out {
		out[i] = w.buf[(w.head+i)%len(w.buf)]
	}
	return out
}

func (w *RevealWindow) grow() {
	size := len(w.buf) * 2
	if size == 0 {
		size = 2
	}
	w.buf = append(w.Records(), make([]RevealRecord, size-w.n)...)
	w.head = 0
}
