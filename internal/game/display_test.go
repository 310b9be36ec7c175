package game

import (
	"testing"
	"time"
)

func TestDirectionOpposite(t *testing.T) {
	pairs := map[Direction]Direction{
		DirLeft:  DirRight,
		DirRight: DirLeft,
		DirUp:    DirDown,
		DirDown:  DirUp,
	}
	for d, want := range pairs {
		if got := d.Opposite(); got != want {
			t.Errorf("%v.Opposite() = %v, want %v", d, got, want)
		}
	}
}

func TestDisplayedDirection(t *testing.T) {
	tests := []struct {
		name     string
		confused bool
		phase    time.Duration
		want     Direction
	}{
		{"not confused", false, 100 * time.Millisecond, DirUp},
		{"confused first half", true, 100 * time.Millisecond, DirDown},
		{"confused second half", true, 600 * time.Millisecond, DirUp},
		{"confused next cycle", true, 1200 * time.Millisecond, DirDown},
		{"confused at half boundary", true, 500 * time.Millisecond, DirUp},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := DisplayedDirection(DirUp, tc.confused, tc.phase, time.Second)
			if got != tc.want {
				t.Errorf("DisplayedDirection = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestFlickerOnZeroPeriod(t *testing.T) {
	if FlickerOn(time.Second, 0) {
		t.Error("zero period should never flicker")
	}
}
