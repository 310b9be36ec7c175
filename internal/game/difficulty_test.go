package game

import (
	"math"
	"testing"
	"time"
)

func TestCurveExamples(t *testing.T) {
	c := DefaultCurve()

	tests := []struct {
		level    int
		w, h     int
		duration time.Duration
		capacity int
	}{
		{1, 15, 10, 15 * time.Second, 6},
		{3, 16, 11, 15 * time.Second, 6},
		{5, 16, 11, 15 * time.Second, 5},
		{6, 17, 12, 15 * time.Second, 5},
		{8, 17, 12, 15 * time.Second, 5},
		{9, 18, 13, 13 * time.Second, 5},
		{12, 19, 14, 11 * time.Second, 4},
		{21, 22, 17, 5 * time.Second, 2},
		{30, 25, 20, 5 * time.Second, 1},
		{1000, 25, 20, 5 * time.Second, 1},
	}

	for _, tc := range tests {
		w, h := c.GridSize(tc.level)
		if w != tc.w || h != tc.h {
			t.Errorf("GridSize(%d) = (%d, %d), want (%d, %d)", tc.level, w, h, tc.w, tc.h)
		}
		if d := c.Duration(tc.level); d != tc.duration {
			t.Errorf("Duration(%d) = %v, want %v", tc.level, d, tc.duration)
		}
		if n := c.Capacity(tc.level); n != tc.capacity {
			t.Errorf("Capacity(%d) = %d, want %d", tc.level, n, tc.capacity)
		}
	}
}

func TestCurveMonotoneAndBounded(t *testing.T) {
	c := DefaultCurve()
	prevW, prevH := c.GridSize(1)
	prevD := c.Duration(1)
	prevC := c.Capacity(1)

	for level := 1; level <= 1000; level++ {
		w, h := c.GridSize(level)
		d := c.Duration(level)
		n := c.Capacity(level)

		if w < prevW || h < prevH {
			t.Fatalf("GridSize shrank at level %d", level)
		}
		if d > prevD {
			t.Fatalf("Duration grew at level %d", level)
		}
		if n > prevC {
			t.Fatalf("Capacity grew at level %d", level)
		}
		if w < 15 || w > 25 || h < 10 || h > 20 {
			t.Fatalf("GridSize(%d) = (%d, %d) out of bounds", level, w, h)
		}
		if d < 5*time.Second || d > 15*time.Second {
			t.Fatalf("Duration(%d) = %v out of bounds", level, d)
		}
		if n < 1 || n > 6 {
			t.Fatalf("Capacity(%d) = %d out of bounds", level, n)
		}
		prevW, prevH, prevD, prevC = w, h, d, n
	}
}

func TestCurveExtremeLevels(t *testing.T) {
	c := DefaultCurve()

	for _, level := range []int{math.MaxInt, math.MaxInt - 1, math.MaxInt32} {
		w, h := c.GridSize(level)
		if w != 25 || h != 20 {
			t.Errorf("GridSize(%d) = (%d, %d), want (25, 20)", level, w, h)
		}
		if d := c.Duration(level); d != 5*time.Second {
			t.Errorf("Duration(%d) = %v, want 5s", level, d)
		}
		if n := c.Capacity(level); n != 1 {
			t.Errorf("Capacity(%d) = %d, want 1", level, n)
		}
	}

	// Below the first level behaves like level 1.
	for _, level := range []int{0, -1, math.MinInt} {
		if d := c.Duration(level); d != 15*time.Second {
			t.Errorf("Duration(%d) = %v, want 15s", level, d)
		}
		if w, h := c.GridSize(level); w != 15 || h != 10 {
			t.Errorf("GridSize(%d) = (%d, %d), want (15, 10)", level, w, h)
		}
	}
}

func TestCurveZeroDivisorsNeverStep(t *testing.T) {
	c := DefaultCurve()
	c.GrowEvery = 0
	c.CapacityEvery = 0
	c.DurationEvery = 0

	if w, h := c.GridSize(100); w != 15 || h != 10 {
		t.Errorf("GridSize = (%d, %d), want base size", w, h)
	}
	if n := c.Capacity(100); n != 6 {
		t.Errorf("Capacity = %d, want 6", n)
	}
	if d := c.Duration(100); d != 15*time.Second {
		t.Errorf("Duration = %v, want 15s", d)
	}
}
