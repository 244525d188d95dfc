package shooter

import (
	"fmt"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

// Frame size needed to draw the playfield with its HUD.
const (
	FrameWidth  = 80
	FrameHeight = Height + 7
)

const (
	borderColor = core.ColorBrightCyan
	bulletGlyph = '|'
	bulletColor = core.ColorBrightYellow
	heartGlyph  = '♥'
	heartColor  = core.ColorBrightRed
)

// Render draws the playfield, HUD and game-over overlay to dst.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderBorder(dst)

	// Draw order sets priority: enemies, then bullets, then the player.
	for _, e := range g.enemies {
		if e.Active() && e.Row < Height {
			dst.SetColored(e.Lane, e.Row, e.Glyph, g.cfg.TierColor(int(e.Tier)))
		}
	}
	for _, b := range g.bullets {
		if b.Active() {
			dst.SetColored(b.Lane, b.Row, bulletGlyph, bulletColor)
		}
	}
	dst.SetColored(g.player.Lane, g.player.Row, g.player.Glyph, g.player.Color)

	g.renderHUD(dst, Height+1)

	if g.gameOver {
		g.renderGameOver(dst)
	}
}

// renderBorder frames the playfield. The bottom edge sits below the player row.
func (g *Game) renderBorder(dst *core.Screen) {
	for x := 0; x < Width; x++ {
		dst.SetColored(x, 0, '-', borderColor)
		dst.SetColored(x, Height, '-', borderColor)
	}
	for y := 1; y < Height; y++ {
		dst.SetColored(0, y, '|', borderColor)
		dst.SetColored(Width-1, y, '|', borderColor)
	}
}

// renderHUD draws the status lines starting at row y.
func (g *Game) renderHUD(dst *core.Screen, y int) {
	preset, _ := g.Difficulty()
	status := fmt.Sprintf(" Score: %d   Level: %d   Difficulty: %s", g.player.Score, g.player.Level+1, preset.Name)
	dst.DrawText(0, y, status)

	dst.DrawText(0, y+1, " Lives: ")
	for i := 0; i < g.player.Lives; i++ {
		dst.SetColored(8+i*2, y+1, heartGlyph, heartColor)
	}

	x := 1
	dst.DrawText(x, y+2, "Enemies:")
	x += len("Enemies:") + 1
	for _, e := range g.enemies {
		if !e.Active() {
			continue
		}
		dst.SetColored(x, y+2, e.Glyph, g.cfg.TierColor(int(e.Tier)))
		x += 2
		x = drawHPBar(dst, x, y+2, e.HP, e.MaxHP) + 1
	}

	dst.DrawTextColored(0, y+4, " A/D or arrows: move   Space/W: fire   Q: menu", core.ColorGray)
}

// drawHPBar draws "[##--]" at (x, y) and returns the column after it.
func drawHPBar(dst *core.Screen, x, y, hp, maxHP int) int {
	dst.Set(x, y, '[')
	x++
	for i := 0; i < maxHP; i++ {
		if i < hp {
			dst.SetColored(x, y, '#', core.ColorBrightRed)
		} else {
			dst.SetColored(x, y, '-', core.ColorGray)
		}
		x++
	}
	dst.Set(x, y, ']')
	return x + 1
}

// renderGameOver draws a boxed summary over the playfield.
func (g *Game) renderGameOver(dst *core.Screen) {
	lines := []string{
		"GAME OVER",
		fmt.Sprintf("Final score: %d", g.player.Score),
		"Press any key",
	}

	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	box := core.NewRect((Width-maxLen-4)/2, Height/2-2, maxLen+4, len(lines)+2)
	dst.DrawRect(core.NewRect(box.X+1, box.Y+1, box.W-2, box.H-2), ' ')
	dst.DrawBox(box, core.ColorBrightWhite)
	for i, line := range lines {
		c := core.ColorDefault
		if i == 0 {
			c = core.ColorBrightRed
		}
		dst.DrawTextCentered(box, box.Y+1+i, line, c)
	}
}
