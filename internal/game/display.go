package game

import "time"

// DefaultFlickerPeriod is the length of one confusion flicker cycle. Hints
// are inverted for the first half of each cycle.
const DefaultFlickerPeriod = time.Second

// FlickerOn reports whether confused hints are inverted at phase into the
// effect.
func FlickerOn(phase, period time.Duration) bool {
	if period <= 0 {
		return false
	}
	return phase%period < period/2
}

// DisplayedDirection returns the arrow to draw for a hint whose true
// direction is d. The stored board never changes; only its presentation
// is scrambled while confusion is active.
func DisplayedDirection(d Direction, confused bool, phase, period time.Duration) Direction {
	if confused && FlickerOn(phase, period) {
		return d.Opposite()
	}
	return d
}
