package shooter

// trySpawn runs the spawn trial for a free enemy slot.
// The odds shrink as the preset cadence and the player's level grow, never
// below the configured floor, so enemies keep appearing.
func (g *Game) trySpawn(i int) bool {
	odds := g.difficulty.SpawnOdds(g.player.Level)
	if g.rng.Range(0, odds) != 0 {
		return false
	}
	g.spawnEnemy(i)
	return true
}

// spawnEnemy places a fresh enemy on the top row of slot i with a random
// lane and tier. Panics if i is out of range.
func (g *Game) spawnEnemy(i int) {
	lane := g.rng.Range(MinLane, MaxLane)
	tier := Tier(g.rng.Range(int(TierSmall), int(TierLarge)))
	hp := g.difficulty.MaxHP(g.cfg.Tiers[tier].HP)

	g.enemies[i] = Enemy{
		Row:   TopRow,
		Lane:  lane,
		Tier:  tier,
		HP:    hp,
		MaxHP: hp,
		Glyph: g.cfg.TierGlyph(int(tier)),
	}
}

// respawn flips a fair coin after a kill and repopulates slot i on heads,
// bypassing the spawn odds.
func (g *Game) respawn(i int) bool {
	if g.rng.Range(0, 1) == 0 {
		return false
	}
	g.spawnEnemy(i)
	return true
}
