package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

// Config sources reported by Load.
const (
	SourceCustom   = "custom"
	SourceUser     = "user"
	SourceLocal    = "local"
	SourceEmbedded = "embedded"
	SourceBuiltin  = "builtin"
)

// localConfigPath is the project-relative config location.
var localConfigPath = filepath.Join("configs", "shooter.yaml")

// Load loads the shooter configuration and reports where it came from.
// Search order: customPath -> ~/.shooter/configs/shooter.yaml -> ./configs/shooter.yaml -> embedded default.
// Files are decoded over the built-in defaults, so partial files only override what they set.
func Load(customPath string) (ShooterConfig, string, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return ShooterConfig{}, "", fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return ShooterConfig{}, "", fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, SourceCustom, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("shooter.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, SourceUser, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(localConfigPath); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, SourceLocal, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultShooterYAML)
	if err != nil {
		return DefaultShooterConfig(), SourceBuiltin, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, nil
}

// Parse decodes YAML over the built-in defaults and validates the result.
func Parse(data []byte) (ShooterConfig, error) {
	cfg := DefaultShooterConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return ShooterConfig{}, fmt.Errorf("failed to parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return ShooterConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".shooter", "configs", filename)
}

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks the invariants the simulation relies on.
func (c ShooterConfig) Validate() error {
	if c.Player.Lives <= 0 {
		return fmt.Errorf("%w: player.lives must be positive, got %d", ErrInvalidConfig, c.Player.Lives)
	}
	if len(c.Tiers) != 3 {
		return fmt.Errorf("%w: expected 3 tiers, got %d", ErrInvalidConfig, len(c.Tiers))
	}
	for i, t := range c.Tiers {
		if t.HP <= 0 {
			return fmt.Errorf("%w: tiers[%d].hp must be positive, got %d", ErrInvalidConfig, i, t.HP)
		}
		if t.Score < 0 {
			return fmt.Errorf("%w: tiers[%d].score must not be negative", ErrInvalidConfig, i)
		}
	}
	if len(c.Difficulties) != 3 {
		return fmt.Errorf("%w: expected 3 difficulties, got %d", ErrInvalidConfig, len(c.Difficulties))
	}
	for i, d := range c.Difficulties {
		if d.Name == "" {
			return fmt.Errorf("%w: difficulties[%d].name is empty", ErrInvalidConfig, i)
		}
		if d.Cadence <= 0 || d.HPMultiplier <= 0 {
			return fmt.Errorf("%w: difficulties[%d] needs positive cadence and hp_multiplier", ErrInvalidConfig, i)
		}
	}
	if c.Spawn.Floor < 1 {
		return fmt.Errorf("%w: spawn.floor must be at least 1, got %d", ErrInvalidConfig, c.Spawn.Floor)
	}
	if c.Rules.MinCadence < 1 {
		return fmt.Errorf("%w: rules.min_cadence must be at least 1, got %d", ErrInvalidConfig, c.Rules.MinCadence)
	}
	if len(c.Palette) == 0 {
		return fmt.Errorf("%w: palette is empty", ErrInvalidConfig)
	}
	for i, p := range c.Palette {
		if _, ok := core.ParseColor(p.Color); !ok {
			return fmt.Errorf("%w: palette[%d] has unknown color %q", ErrInvalidConfig, i, p.Color)
		}
	}
	if _, ok := ParsePreset(c.Session.Difficulty); !ok {
		return fmt.Errorf("%w: unknown session.difficulty %q", ErrInvalidConfig, c.Session.Difficulty)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("%w: audio.volume must be within [0, 1], got %g", ErrInvalidConfig, c.Audio.Volume)
	}
	return nil
}

// ApplyPreset sets the starting difficulty from a CLI preset.
func ApplyPreset(cfg *ShooterConfig, preset DifficultyPreset) {
	cfg.Session.Difficulty = string(preset)
}
