package config

// DifficultyManager derives the dynamic game parameters for one difficulty
// preset from the player's level.
type DifficultyManager struct {
	preset DifficultyConfig
	spawn  SpawnConfig
	rules  RulesConfig
}

// NewDifficultyManager creates a manager for the difficulty at index.
// Panics if index is outside the difficulty table.
func NewDifficultyManager(cfg ShooterConfig, index int) *DifficultyManager {
	return &DifficultyManager{
		preset: cfg.Difficulties[index],
		spawn:  cfg.Spawn,
		rules:  cfg.Rules,
	}
}

// Preset returns the active difficulty preset.
func (d *DifficultyManager) Preset() DifficultyConfig {
	return d.preset
}

// AdvanceCadence returns the number of ticks between enemy advances.
// Each two levels shave one tick off the preset cadence, never below the minimum.
func (d *DifficultyManager) AdvanceCadence(level int) int {
	cadence := d.preset.Cadence - level/2
	if cadence < d.rules.MinCadence {
		cadence = d.rules.MinCadence
	}
	if cadence < 1 {
		cadence = 1
	}
	return cadence
}

// SpawnOdds returns the upper bound of the spawn draw for a free slot.
// A slot spawns when a uniform draw from [0, odds] is zero.
func (d *DifficultyManager) SpawnOdds(level int) int {
	odds := d.spawn.Base - d.preset.Cadence*d.spawn.PerCadence - level*d.spawn.PerLevel
	if odds < d.spawn.Floor {
		odds = d.spawn.Floor
	}
	return odds
}

// MaxHP scales a tier's base hit points by the preset multiplier.
func (d *DifficultyManager) MaxHP(baseHP int) int {
	return baseHP * d.preset.HPMultiplier
}

// Level returns the level earned by score, never lower than current.
func (d *DifficultyManager) Level(score, current int) int {
	if d.rules.PointsPerLevel <= 0 {
		return current
	}
	if earned := score / d.rules.PointsPerLevel; earned > current {
		return earned
	}
	return current
}

// EscapePenalty returns the score deducted when an enemy leaves the field.
func (d *DifficultyManager) EscapePenalty() int {
	return d.rules.EscapePenalty
}
