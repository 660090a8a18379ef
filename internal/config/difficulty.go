package config

import "fmt"

// DifficultyPreset represents a named cart chase difficulty.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset validates a preset name. The empty string means normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch DifficultyPreset(name) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyHard:
		return DifficultyPreset(name), nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", name)
	}
}

// SpeedMultiplier returns the item speed scale for a preset.
func SpeedMultiplier(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.5
	case DifficultyHard:
		return 2.0
	default:
		return 1.0
	}
}

// ApplyPreset scales item speed and count for the preset.
// Normal leaves the configured values untouched.
func ApplyPreset(cfg *GameConfig, preset DifficultyPreset) {
	cfg.MaxSpeed *= SpeedMultiplier(preset)

	switch preset {
	case DifficultyEasy:
		cfg.ItemCount = max(1, cfg.ItemCount*3/4)
	case DifficultyHard:
		cfg.ItemCount = cfg.ItemCount * 3 / 2
	}
}
