// Package config provides YAML-based configuration loading and difficulty
// presets for the shooter.
package config

import (
	"time"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

// ShooterConfig contains all tunable parameters of the shooter.
type ShooterConfig struct {
	Player       PlayerConfig       `yaml:"player"`
	Tiers        []TierConfig       `yaml:"tiers"`
	Difficulties []DifficultyConfig `yaml:"difficulties"`
	Spawn        SpawnConfig        `yaml:"spawn"`
	Rules        RulesConfig        `yaml:"rules"`
	Audio        AudioConfig        `yaml:"audio"`
	Palette      []PaletteEntry     `yaml:"palette"`
	Session      SessionConfig      `yaml:"session"`
}

// PlayerConfig defines the player's defaults at session start.
type PlayerConfig struct {
	Glyph string `yaml:"glyph"`
	Color string `yaml:"color"`
	Lives int    `yaml:"lives"`
}

// TierConfig defines one enemy size class.
type TierConfig struct {
	Name  string `yaml:"name"`
	Glyph string `yaml:"glyph"`
	HP    int    `yaml:"hp"`    // Base hit points before the difficulty multiplier
	Score int    `yaml:"score"` // Points awarded on kill
	Color string `yaml:"color"`
}

// DifficultyConfig is one selectable difficulty preset.
type DifficultyConfig struct {
	Name         string `yaml:"name"`
	Cadence      int    `yaml:"cadence"`       // Ticks between enemy advances
	HPMultiplier int    `yaml:"hp_multiplier"` // Enemy hp multiplier
}

// SpawnConfig defines the per-slot spawn trial odds.
type SpawnConfig struct {
	Base       int `yaml:"base"`
	PerCadence int `yaml:"per_cadence"`
	PerLevel   int `yaml:"per_level"`
	Floor      int `yaml:"floor"`
}

// RulesConfig holds scoring and pacing rules.
type RulesConfig struct {
	PointsPerLevel int `yaml:"points_per_level"`
	EscapePenalty  int `yaml:"escape_penalty"`
	MinCadence     int `yaml:"min_cadence"`
}

// ToneConfig is a single audio cue.
type ToneConfig struct {
	Frequency  float64 `yaml:"frequency"`
	DurationMS int     `yaml:"duration_ms"`
}

// Tone converts the config entry to a core.Tone.
func (t ToneConfig) Tone() core.Tone {
	return core.Tone{
		Frequency: t.Frequency,
		Duration:  time.Duration(t.DurationMS) * time.Millisecond,
	}
}

// AudioConfig defines the feedback tones.
type AudioConfig struct {
	Enabled  bool       `yaml:"enabled"`
	Volume   float64    `yaml:"volume"` // 0.0 to 1.0
	Shoot    ToneConfig `yaml:"shoot"`
	Hit      ToneConfig `yaml:"hit"`
	LifeLost ToneConfig `yaml:"life_lost"`
}

// Tones returns the cue table used by the audio player.
func (a AudioConfig) Tones() map[core.Cue]core.Tone {
	return map[core.Cue]core.Tone{
		core.CueShoot:    a.Shoot.Tone(),
		core.CueHit:      a.Hit.Tone(),
		core.CueLifeLost: a.LifeLost.Tone(),
	}
}

// PaletteEntry is a named player color offered by the customize screen.
type PaletteEntry struct {
	Name  string `yaml:"name"`
	Color string `yaml:"color"`
}

// SessionConfig defines session pacing and the starting difficulty.
type SessionConfig struct {
	TickMS     int    `yaml:"tick_ms"`
	InputQueue int    `yaml:"input_queue"`
	Difficulty string `yaml:"difficulty"`
}

// TickInterval returns the configured inter-tick delay.
func (s SessionConfig) TickInterval() time.Duration {
	if s.TickMS <= 0 {
		return core.DefaultTickInterval
	}
	return time.Duration(s.TickMS) * time.Millisecond
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// PresetIndex returns the difficulty table index for a preset.
func PresetIndex(preset DifficultyPreset) (int, bool) {
	switch preset {
	case DifficultyEasy:
		return 0, true
	case DifficultyNormal:
		return 1, true
	case DifficultyHard:
		return 2, true
	default:
		return 0, false
	}
}

// ParsePreset converts a CLI/config string to a preset.
// An empty string maps to Normal.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch DifficultyPreset(s) {
	case "":
		return DifficultyNormal, true
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s), true
	default:
		return "", false
	}
}

// StartDifficulty returns the index of the configured starting difficulty.
func (c ShooterConfig) StartDifficulty() int {
	preset, ok := ParsePreset(c.Session.Difficulty)
	if !ok {
		preset = DifficultyNormal
	}
	idx, _ := PresetIndex(preset)
	if idx >= len(c.Difficulties) {
		return 0
	}
	return idx
}

// PlayerGlyph returns the first rune of the configured player glyph.
func (c ShooterConfig) PlayerGlyph() rune {
	return firstRune(c.Player.Glyph, '^')
}

// PlayerColor resolves the configured player color.
func (c ShooterConfig) PlayerColor() core.Color {
	if col, ok := core.ParseColor(c.Player.Color); ok {
		return col
	}
	return core.ColorBrightYellow
}

// TierGlyph returns the display rune of tier i.
func (c ShooterConfig) TierGlyph(i int) rune {
	return firstRune(c.Tiers[i].Glyph, '#')
}

// TierColor resolves the display color of tier i.
func (c ShooterConfig) TierColor(i int) core.Color {
	if col, ok := core.ParseColor(c.Tiers[i].Color); ok {
		return col
	}
	return core.ColorDefault
}

// PaletteColor resolves the color of palette entry i.
func (c ShooterConfig) PaletteColor(i int) core.Color {
	if col, ok := core.ParseColor(c.Palette[i].Color); ok {
		return col
	}
	return core.ColorDefault
}

func firstRune(s string, fallback rune) rune {
	for _, r := range s {
		return r
	}
	return fallback
}
