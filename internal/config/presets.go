package config

import "fmt"

// DifficultyPreset represents a named starting difficulty.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// StartLevelForPreset returns the level a run begins at for preset.
// Normal starts where the round clock begins to shrink; hard starts where
// the clock has bottomed out.
func StartLevelForPreset(preset DifficultyPreset) (int, error) {
	switch preset {
	case "", DifficultyEasy:
		return 1, nil
	case DifficultyNormal:
		return 7, nil
	case DifficultyHard:
		return 16, nil
	default:
		return 0, fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", preset)
	}
}
