package shooter

import "github.com/vovakirdan/tui-shooter/internal/core"

// Playfield geometry. Row 0 and column 0/Width-1 are border; the player sits
// on the last row. The grid size is fixed.
const (
	Width      = 40
	Height     = 15
	TopRow     = 1          // First playable row
	PlayerRow  = Height - 1 // Row the player moves along
	MinLane    = 1
	MaxLane    = Width - 2
	NoRow      = -1 // Sentinel row of a free slot
	MaxBullets = 6
	MaxEnemies = 4
)

// Tier is an enemy size class.
type Tier int

const (
	TierSmall Tier = iota
	TierMedium
	TierLarge
)

// String returns the tier name.
func (t Tier) String() string {
	switch t {
	case TierSmall:
		return "small"
	case TierMedium:
		return "medium"
	case TierLarge:
		return "large"
	default:
		return "unknown"
	}
}

// Player is the avatar at the bottom of the grid.
type Player struct {
	Row   int
	Lane  int
	Glyph rune
	Color core.Color
	Lives int
	Score int
	Level int
}

// Bullet is a projectile slot. Retiring a bullet keeps its lane.
type Bullet struct {
	Row  int
	Lane int
}

// Active reports whether the slot holds a live bullet.
func (b Bullet) Active() bool {
	return b.Row != NoRow
}

// Enemy is a descending enemy slot.
type Enemy struct {
	Row   int
	Lane  int
	Tier  Tier
	HP    int
	MaxHP int
	Glyph rune
}

// Active reports whether the slot holds a live enemy.
func (e Enemy) Active() bool {
	return e.Row > 0
}

// clearSlots frees every bullet and enemy slot.
func (g *Game) clearSlots() {
	for i := range g.bullets {
		g.bullets[i] = Bullet{Row: NoRow, Lane: NoRow}
	}
	for i := range g.enemies {
		g.enemies[i] = Enemy{Row: NoRow, Lane: NoRow}
	}
}

// FireBullet places a bullet just above the player in the first free slot.
// Returns false when every slot is in use; the shot is then dropped.
func (g *Game) FireBullet() (int, bool) {
	for i := range g.bullets {
		if !g.bullets[i].Active() {
			g.bullets[i] = Bullet{Row: g.player.Row - 1, Lane: g.player.Lane}
			return i, true
		}
	}
	return -1, false
}

// retireBullet frees bullet slot i.
func (g *Game) retireBullet(i int) {
	g.bullets[i].Row = NoRow
}

// retireEnemy frees enemy slot i.
func (g *Game) retireEnemy(i int) {
	g.enemies[i].Row = NoRow
}

// ActiveBullets returns the number of occupied bullet slots.
func (g *Game) ActiveBullets() int {
	n := 0
	for _, b := range g.bullets {
		if b.Active() {
			n++
		}
	}
	return n
}

// ActiveEnemies returns the number of occupied enemy slots.
func (g *Game) ActiveEnemies() int {
	n := 0
	for _, e := range g.enemies {
		if e.Active() {
			n++
		}
	}
	return n
}

// Bullet returns a copy of bullet slot i. Panics if i is out of range.
func (g *Game) Bullet(i int) Bullet {
	return g.bullets[i]
}

// Enemy returns a copy of enemy slot i. Panics if i is out of range.
func (g *Game) Enemy(i int) Enemy {
	return g.enemies[i]
}

// Player returns a copy of the player record.
func (g *Game) Player() Player {
	return g.player
}
