package shooter

import "github.com/vovakirdan/tui-shooter/internal/core"

// resolveBullet checks bullet slot b against every live enemy in its lane,
// using the rows it swept between prev and its current row. The first enemy
// found in slot order takes one point of damage and the bullet is consumed.
//
// It runs twice per tick: once with the pre-move row right after bullets move,
// and once with the current row for both ends after enemies move, so bullets
// and enemies can never pass through each other between ticks.
func (g *Game) resolveBullet(b, prev int) {
	bullet := g.bullets[b]
	if !bullet.Active() && prev == NoRow {
		return
	}

	lo, hi := bullet.Row, bullet.Row
	if prev != NoRow {
		lo, hi = min(prev, bullet.Row), max(prev, bullet.Row)
	}

	for i := range g.enemies {
		e := &g.enemies[i]
		if !e.Active() || e.Lane != bullet.Lane {
			continue
		}
		if e.Row < lo || e.Row > hi {
			continue
		}

		e.HP--
		g.emit(core.EventHit, i)
		if e.HP <= 0 {
			e.HP = 0
			g.award(e.Tier)
			g.retireEnemy(i)
			g.emit(core.EventKill, i)
			g.respawn(i)
		}
		g.retireBullet(b)
		return
	}
}

// award adds the tier's kill score and raises the level when earned.
func (g *Game) award(t Tier) {
	g.player.Score += g.cfg.Tiers[t].Score
	g.player.Level = g.difficulty.Level(g.player.Score, g.player.Level)
}
