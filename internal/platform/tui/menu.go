package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-shooter/internal/session"
)

const menuTitle = "S P A C E   S H O O T E R"

// mainMenuView renders the numbered main menu.
func mainMenuView(c *session.Controller, theme Theme, width int) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(theme.Title.Render(menuTitle), width))
	b.WriteString("\n\n")

	for i, item := range session.MenuItems() {
		label := item.String()
		if item == session.ItemDifficulty {
			label = fmt.Sprintf("%s (%s)", label, c.Difficulty().Name)
		}
		b.WriteString(centerText(menuLine(theme, i == int(c.MenuCursor()), fmt.Sprintf("%d. %s", i+1, label)), width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(theme.Controls.Render("Up/Down: Navigate  |  Enter or 1-5: Select  |  Q: Quit"), width))
	b.WriteString("\n")

	return b.String()
}

// difficultyView renders the difficulty picker.
func difficultyView(c *session.Controller, theme Theme, width int) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(theme.Title.Render("SELECT DIFFICULTY"), width))
	b.WriteString("\n\n")

	for i, d := range c.Config().Difficulties {
		line := fmt.Sprintf("%-8s speed %2d  hp x%d", d.Name, d.Cadence, d.HPMultiplier)
		b.WriteString(centerText(menuLine(theme, i == c.DifficultyCursor(), line), width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(theme.Controls.Render("Up/Down: Change  |  Enter: Confirm  |  Esc: Back"), width))
	b.WriteString("\n")

	return b.String()
}

// customizeView renders the glyph prompt, then the color list.
func customizeView(c *session.Controller, theme Theme, width int) string {
	var b strings.Builder
	p := c.Game().Player()

	b.WriteString("\n")
	b.WriteString(centerText(theme.Title.Render("CUSTOMIZE PLAYER"), width))
	b.WriteString("\n\n")

	preview := lipgloss.NewStyle().Bold(true).Inherit(colorStyles[p.Color]).Render(string(p.Glyph))
	b.WriteString(centerText("Current: "+preview, width))
	b.WriteString("\n\n")

	if c.CustomizeStep() == session.StepGlyph {
		b.WriteString(centerText(theme.Subtitle.Render("Press a key to use as your ship"), width))
		b.WriteString("\n\n")
		b.WriteString(centerText(theme.Controls.Render("Enter: Keep current  |  Esc: Back"), width))
		b.WriteString("\n")
		return b.String()
	}

	cfg := c.Config()
	for i, entry := range cfg.Palette {
		swatch := colorStyles[cfg.PaletteColor(i)].Render(string(p.Glyph))
		line := fmt.Sprintf("%s %s", swatch, entry.Name)
		b.WriteString(centerText(menuLine(theme, i == c.ColorCursor(), line), width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(theme.Controls.Render("Up/Down: Change  |  Enter: Confirm  |  Esc: Back"), width))
	b.WriteString("\n")

	return b.String()
}

// menuLine renders one entry with the cursor marker.
func menuLine(theme Theme, active bool, text string) string {
	if active {
		return theme.ItemActive.Render("> " + text)
	}
	return theme.ItemNormal.Render("  " + text)
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}
