// Package config provides YAML-based configuration loading and difficulty
// presets for Lost-n-Found.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/lost-n-found/internal/game"
)

// Config contains all tunables of the game and its host.
type Config struct {
	Timing     game.Timing   `yaml:"timing"`
	Difficulty game.Curve    `yaml:"difficulty"`
	Display    DisplayConfig `yaml:"display"`
}

// DisplayConfig defines host-side parameters.
type DisplayConfig struct {
	TickRate int    `yaml:"tick_rate"` // Host ticks per second
	Glyphs   string `yaml:"glyphs"`    // auto, unicode or ascii
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Timing:     game.DefaultTiming(),
		Difficulty: game.DefaultCurve(),
		Display: DisplayConfig{
			TickRate: 30,
			Glyphs:   "auto",
		},
	}
}

// Validate checks that every value can drive a playable game.
func (c Config) Validate() error {
	var errs []error

	t := c.Timing
	if t.RevealLifetime <= 0 {
		errs = append(errs, fmt.Errorf("timing.reveal_lifetime must be positive, got %v", t.RevealLifetime))
	}
	if t.Confusion <= 0 {
		errs = append(errs, fmt.Errorf("timing.confusion must be positive, got %v", t.Confusion))
	}
	if t.Message < 0 {
		errs = append(errs, fmt.Errorf("timing.message must not be negative, got %v", t.Message))
	}
	if t.FlickerPeriod <= 0 {
		errs = append(errs, fmt.Errorf("timing.flicker_period must be positive, got %v", t.FlickerPeriod))
	}

	d := c.Difficulty
	if d.BaseWidth <= 0 || d.BaseHeight <= 0 {
		errs = append(errs, fmt.Errorf("difficulty base size must be positive, got %dx%d", d.BaseWidth, d.BaseHeight))
	}
	if d.MaxGrowth < 0 {
		errs = append(errs, fmt.Errorf("difficulty.max_growth must not be negative, got %d", d.MaxGrowth))
	}
	if d.DurationMaxCut < 0 || d.DurationStep < 0 {
		errs = append(errs, errors.New("difficulty duration cut and step must not be negative"))
	}
	if d.BaseDuration-d.DurationMaxCut <= 0 {
		errs = append(errs, fmt.Errorf("difficulty.base_duration %v leaves no time after max cut %v", d.BaseDuration, d.DurationMaxCut))
	}
	if d.CapacityMaxDrop < 0 || d.BaseCapacity-d.CapacityMaxDrop < 1 {
		errs = append(errs, fmt.Errorf("difficulty capacity must stay at least 1 (base %d, max drop %d)", d.BaseCapacity, d.CapacityMaxDrop))
	}

	if c.Display.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("display.tick_rate must be positive, got %d", c.Display.TickRate))
	}

	switch c.Display.Glyphs {
	case "auto", "unicode", "ascii":
	default:
		errs = append(errs, fmt.Errorf("display.glyphs must be auto, unicode or ascii, got %q", c.Display.Glyphs))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}
