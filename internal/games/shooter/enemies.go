package shooter

import "github.com/vovakirdan/tui-shooter/internal/core"

// updateEnemies advances live enemies on the difficulty cadence, resolves
// player collisions and escapes, and runs the spawn trial for free slots.
func (g *Game) updateEnemies() {
	cadence := g.difficulty.AdvanceCadence(g.player.Level)
	advance := g.tick%cadence == 0

	for i := range g.enemies {
		if !g.enemies[i].Active() {
			g.trySpawn(i)
			continue
		}

		e := &g.enemies[i]
		if advance {
			e.Row++
		}

		if e.Row == g.player.Row && e.Lane == g.player.Lane {
			if g.player.Lives > 0 {
				g.player.Lives--
			}
			g.retireEnemy(i)
			g.emit(core.EventLifeLost, i)
			continue
		}

		if e.Row >= Height {
			g.player.Score -= g.difficulty.EscapePenalty()
			if g.player.Score < 0 {
				g.player.Score = 0
			}
			g.retireEnemy(i)
			g.emit(core.EventEscaped, i)
		}
	}
}
