package config

import (
	_ "embed"
)

//go:embed defaults/shooter.yaml
var defaultShooterYAML []byte

// DefaultShooterConfig returns the built-in configuration.
// It mirrors defaults/shooter.yaml and is used when the embedded YAML cannot be parsed.
func DefaultShooterConfig() ShooterConfig {
	return ShooterConfig{
		Player: PlayerConfig{
			Glyph: "^",
			Color: "bright_yellow",
			Lives: 5,
		},
		Tiers: []TierConfig{
			{Name: "small", Glyph: "#", HP: 1, Score: 1, Color: "bright_green"},
			{Name: "medium", Glyph: "@", HP: 2, Score: 3, Color: "bright_magenta"},
			{Name: "large", Glyph: "$", HP: 4, Score: 6, Color: "bright_red"},
		},
		Difficulties: []DifficultyConfig{
			{Name: "Easy", Cadence: 12, HPMultiplier: 1},
			{Name: "Normal", Cadence: 8, HPMultiplier: 2},
			{Name: "Hard", Cadence: 4, HPMultiplier: 3},
		},
		Spawn: SpawnConfig{
			Base:       100,
			PerCadence: 6,
			PerLevel:   2,
			Floor:      20,
		},
		Rules: RulesConfig{
			PointsPerLevel: 5,
			EscapePenalty:  1,
			MinCadence:     2,
		},
		Audio: AudioConfig{
			Enabled:  true,
			Volume:   0.4,
			Shoot:    ToneConfig{Frequency: 1200, DurationMS: 45},
			Hit:      ToneConfig{Frequency: 900, DurationMS: 60},
			LifeLost: ToneConfig{Frequency: 400, DurationMS: 220},
		},
		Palette: []PaletteEntry{
			{Name: "White", Color: "bright_white"},
			{Name: "Green", Color: "bright_green"},
			{Name: "Cyan", Color: "bright_cyan"},
			{Name: "Red", Color: "bright_red"},
			{Name: "Magenta", Color: "bright_magenta"},
			{Name: "Yellow", Color: "bright_yellow"},
		},
		Session: SessionConfig{
			TickMS:     60,
			InputQueue: 8,
			Difficulty: string(DifficultyNormal),
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultShooterYAML
}
