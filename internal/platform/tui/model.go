package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/games/shooter"
	"github.com/vovakirdan/tui-shooter/internal/session"
	"github.com/vovakirdan/tui-shooter/internal/storage"
)

// Model is the Bubble Tea model for one player's session.
type Model struct {
	ctrl       *session.Controller
	store      *storage.Store
	screen     *core.Screen
	keys       KeyMap
	help       help.Model
	theme      Theme
	scoreboard ScoreboardModel
	interval   time.Duration
	width      int
	height     int
	quitting   bool
}

// NewModel creates a model driving ctrl. store may be nil.
func NewModel(ctrl *session.Controller, store *storage.Store, theme Theme, width, height int) Model {
	cfg := ctrl.Config()
	tabs := make([]string, len(cfg.Difficulties))
	for i, d := range cfg.Difficulties {
		tabs[i] = d.Name
	}

	return Model{
		ctrl:       ctrl,
		store:      store,
		screen:     core.NewScreen(shooter.FrameWidth, shooter.FrameHeight),
		keys:       DefaultKeyMap(),
		help:       help.New(),
		theme:      theme,
		scoreboard: NewScoreboardModel(store, tabs, width, height),
		interval:   cfg.Session.TickInterval(),
		width:      width,
		height:     height,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.interval)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		var cmd tea.Cmd
		m.scoreboard, cmd = m.scoreboard.Update(msg)
		return m, cmd

	case TickMsg:
		m.ctrl.Tick()
		return m, tickCmd(m.interval)
	}

	return m, nil
}

// handleKey routes a key press to the controller using the bindings of the
// current screen.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		m.quitting = true
		return m, tea.Quit
	}

	var cmd tea.Cmd
	switch m.ctrl.State() {
	case session.StatePlaying:
		m.ctrl.HandleKey(m.keys.GameEvent(msg))

	case session.StateHighScores:
		if key.Matches(msg, m.scoreboard.keys.Back) {
			m.ctrl.HandleKey(core.Key(core.ActionBack))
		} else {
			m.scoreboard, cmd = m.scoreboard.Update(msg)
		}

	default:
		m.ctrl.HandleKey(m.keys.MenuEvent(msg))
		if m.ctrl.State() == session.StateHighScores {
			m.scoreboard.Open(m.ctrl.Difficulty().Name)
		}
	}

	if m.ctrl.Done() {
		m.quitting = true
		return m, tea.Quit
	}
	return m, cmd
}

// View renders the screen for the current state.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.ctrl.State() {
	case session.StateDifficulty:
		return difficultyView(m.ctrl, m.theme, m.width)
	case session.StateCustomize:
		return customizeView(m.ctrl, m.theme, m.width)
	case session.StateHighScores:
		return m.scoreboard.View()
	case session.StatePlaying, session.StateGameOver:
		return m.gameView()
	default:
		return mainMenuView(m.ctrl, m.theme, m.width)
	}
}

// gameView renders the playfield, plus a notice when the window is too small.
func (m Model) gameView() string {
	m.ctrl.Game().Render(m.screen)

	var b strings.Builder
	if m.width > 0 && (m.width < shooter.FrameWidth || m.height < shooter.FrameHeight) {
		b.WriteString(m.theme.Warning.Render(fmt.Sprintf("Window too small: need %dx%d", shooter.FrameWidth, shooter.FrameHeight)))
		b.WriteString("\n")
	}
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	if best, ok := m.ctrl.Best(); ok && m.ctrl.State() == session.StateGameOver {
		b.WriteString(m.theme.Subtitle.Render(fmt.Sprintf("Best on %s: %d", m.ctrl.Difficulty().Name, best)))
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(m.keys.Game))
	return b.String()
}

// Controller returns the session controller driven by the model.
func (m Model) Controller() *session.Controller {
	return m.ctrl
}

// Run starts the Bubble Tea program for ctrl on the current terminal.
func Run(ctrl *session.Controller, store *storage.Store, theme Theme, width, height int) error {
	model := NewModel(ctrl, store, theme, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
