// Package shooter implements the space shooter simulation: the player moves
// along the bottom row, fires upward and destroys or avoids descending enemies.
// The package is pure logic; input, audio and terminal output live elsewhere.
package shooter

import (
	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/rng"
)

// Game holds the state of one play session.
type Game struct {
	cfg             config.ShooterConfig
	rng             rng.Source
	difficulty      *config.DifficultyManager
	difficultyIndex int

	player   Player
	bullets  [MaxBullets]Bullet
	enemies  [MaxEnemies]Enemy
	tick     int
	gameOver bool
	events   []core.Event
}

// New creates a game using cfg and the given random source.
// The game starts on the configured difficulty with the configured player look.
func New(cfg config.ShooterConfig, src rng.Source) *Game {
	g := &Game{
		cfg: cfg,
		rng: src,
	}
	g.player.Glyph = cfg.PlayerGlyph()
	g.player.Color = cfg.PlayerColor()
	g.SetDifficulty(cfg.StartDifficulty())
	g.Reset()
	return g
}

// SetDifficulty selects the difficulty preset by index.
// It is meant to be called between sessions. Panics if index is out of range.
func (g *Game) SetDifficulty(index int) {
	g.difficultyIndex = index
	g.difficulty = config.NewDifficultyManager(g.cfg, index)
}

// Difficulty returns the active preset and its index.
func (g *Game) Difficulty() (config.DifficultyConfig, int) {
	return g.difficulty.Preset(), g.difficultyIndex
}

// Customize changes the player's glyph and color. Survives Reset.
func (g *Game) Customize(glyph rune, color core.Color) {
	g.player.Glyph = glyph
	g.player.Color = color
}

// Reset starts a fresh session: all slots are freed, the player returns to
// the middle lane with full lives and the tick counter restarts.
func (g *Game) Reset() {
	g.clearSlots()
	g.player.Row = PlayerRow
	g.player.Lane = Width / 2
	g.player.Lives = g.cfg.Player.Lives
	g.player.Score = 0
	g.player.Level = 0
	g.tick = 0
	g.gameOver = false
	g.events = nil
}

// Step applies at most one player action and advances the simulation by one tick.
// Sequence: action, bullets move, collision sweep, enemies move and spawn,
// second collision sweep, game-over check.
func (g *Game) Step(action core.Action) core.StepResult {
	g.events = nil
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	g.apply(action)
	g.tick++

	prev := g.moveBullets()
	for i := range g.bullets {
		g.resolveBullet(i, prev[i])
	}

	g.updateEnemies()

	for i := range g.bullets {
		if g.bullets[i].Active() {
			g.resolveBullet(i, g.bullets[i].Row)
		}
	}

	if g.player.Lives <= 0 {
		g.gameOver = true
		g.emit(core.EventGameOver, -1)
	}

	return core.StepResult{State: g.State(), Events: g.events}
}

// apply performs a single gameplay action.
func (g *Game) apply(action core.Action) {
	switch action {
	case core.ActionLeft:
		g.player.Lane = core.Clamp(g.player.Lane-1, MinLane, MaxLane)
	case core.ActionRight:
		g.player.Lane = core.Clamp(g.player.Lane+1, MinLane, MaxLane)
	case core.ActionFire:
		if slot, ok := g.FireBullet(); ok {
			g.emit(core.EventShot, slot)
		}
	}
}

// emit records a feedback event for the current tick.
func (g *Game) emit(kind core.EventKind, slot int) {
	g.events = append(g.events, core.Event{Kind: kind, Slot: slot})
}

// Tick returns the number of ticks since the session started.
func (g *Game) Tick() int {
	return g.tick
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.player.Score,
		Level:    g.player.Level,
		Lives:    g.player.Lives,
		GameOver: g.gameOver,
	}
}
