package game

import "time"

// Curve maps a level number to round parameters. Every function is
// monotone in level and saturates.
type Curve struct {
	BaseDuration    time.Duration `yaml:"base_duration"`
	DurationStep    time.Duration `yaml:"duration_step"`
	DurationGrace   int           `yaml:"duration_grace"` // levels before the clock starts shrinking
	DurationEvery   int           `yaml:"duration_every"`
	DurationMaxCut  time.Duration `yaml:"duration_max_cut"`
	BaseWidth       int           `yaml:"base_width"`
	BaseHeight      int           `yaml:"base_height"`
	GrowEvery       int           `yaml:"grow_every"`
	MaxGrowth       int           `yaml:"max_growth"`
	BaseCapacity    int           `yaml:"base_capacity"`
	CapacityEvery   int           `yaml:"capacity_every"`
	CapacityMaxDrop int           `yaml:"capacity_max_drop"`
}

// DefaultCurve returns the standard progression: 15s rounds shrinking by 2s
// every 3 levels after level 6 down to 5s, a 15x10 board growing by one
// every 3 levels up to 25x20, and 6 visible cells dropping by one every 5
// levels down to 1.
func DefaultCurve() Curve {
	return Curve{
		BaseDuration:    15 * time.Second,
		DurationStep:    2 * time.Second,
		DurationGrace:   6,
		DurationEvery:   3,
		DurationMaxCut:  10 * time.Second,
		BaseWidth:       15,
		BaseHeight:      10,
		GrowEvery:       3,
		MaxGrowth:       10,
		BaseCapacity:    6,
		CapacityEvery:   5,
		CapacityMaxDrop: 5,
	}
}

// normalizeLevel treats anything below the first level as level 1.
func normalizeLevel(level int) int {
	if level < 1 {
		return 1
	}
	return level
}

// steps returns n/every, capped at limit. A non-positive divisor never steps.
func steps(n, every, limit int) int {
	if every <= 0 {
		return 0
	}
	s := n / every
	if s > limit {
		return limit
	}
	return s
}

// Duration returns the round length for level.
func (c Curve) Duration(level int) time.Duration {
	level = normalizeLevel(level)
	grace := level
	if grace > c.DurationGrace {
		grace = c.DurationGrace
	}

	maxSteps := 0
	if c.DurationStep > 0 {
		maxSteps = int(c.DurationMaxCut / c.DurationStep)
	}
	cut := time.Duration(steps(level-grace, c.DurationEvery, maxSteps)) * c.DurationStep
	if cut > c.DurationMaxCut {
		cut = c.DurationMaxCut
	}
	return c.BaseDuration - cut
}

// GridSize returns the board dimensions for level.
func (c Curve) GridSize(level int) (width, height int) {
	growth := steps(normalizeLevel(level), c.GrowEvery, c.MaxGrowth)
	return c.BaseWidth + growth, c.BaseHeight + growth
}

// Capacity returns how many cells may stay revealed at once on level.
func (c Curve) Capacity(level int) int {
	return c.BaseCapacity - steps(normalizeLevel(level), c.CapacityEvery, c.CapacityMaxDrop)
}
