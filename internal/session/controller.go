// Package session drives one player's path through the shooter: menus,
// difficulty and customization choices, play and game over.
package session

import (
	"unicode"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/games/shooter"
	"github.com/vovakirdan/tui-shooter/internal/rng"
)

// State is a screen of the session state machine.
type State int

const (
	StateMainMenu State = iota
	StateDifficulty
	StateCustomize
	StateHighScores
	StatePlaying
	StateGameOver
	StateExit
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateMainMenu:
		return "main_menu"
	case StateDifficulty:
		return "difficulty"
	case StateCustomize:
		return "customize"
	case StateHighScores:
		return "high_scores"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game_over"
	case StateExit:
		return "exit"
	default:
		return "unknown"
	}
}

// MenuItem is an entry of the main menu.
type MenuItem int

const (
	ItemStart MenuItem = iota
	ItemDifficulty
	ItemCustomize
	ItemHighScores
	ItemQuit
	menuItemCount
)

// String returns the menu label.
func (i MenuItem) String() string {
	switch i {
	case ItemStart:
		return "Start Game"
	case ItemDifficulty:
		return "Difficulty"
	case ItemCustomize:
		return "Customize Player"
	case ItemHighScores:
		return "High Scores"
	case ItemQuit:
		return "Quit"
	default:
		return ""
	}
}

// MenuItems lists the main menu in display order.
func MenuItems() []MenuItem {
	items := make([]MenuItem, menuItemCount)
	for i := range items {
		items[i] = MenuItem(i)
	}
	return items
}

// CustomizeStep is the current page of the customize screen.
type CustomizeStep int

const (
	StepGlyph CustomizeStep = iota
	StepColor
)

// ScoreRecorder stores finished sessions and reports the best one per difficulty.
type ScoreRecorder interface {
	SaveScore(difficulty string, score, level int) (int64, error)
	HighScore(difficulty string) (int, error)
}

// CuePlayer plays the feedback tone of a cue. Play must not block.
type CuePlayer interface {
	Play(cue core.Cue)
}

type silent struct{}

func (silent) Play(core.Cue) {}

// Options configure a Controller. Zero values get working defaults.
type Options struct {
	Config config.ShooterConfig
	Source rng.Source
	Audio  CuePlayer
	Scores ScoreRecorder
	Logger *log.Logger
}

// Controller owns the game and routes key presses and ticks according to
// the current state. It is not safe for concurrent use.
type Controller struct {
	cfg    config.ShooterConfig
	game   *shooter.Game
	audio  CuePlayer
	scores ScoreRecorder
	logger *log.Logger
	queue  *InputQueue

	state         State
	menuCursor    int
	diffCursor    int
	customizeStep CustomizeStep
	colorCursor   int
	last          core.GameState
	best          int
	bestKnown     bool
}

// New creates a controller at the main menu.
func New(opts Options) *Controller {
	if opts.Source == nil {
		opts.Source = rng.New(0)
	}
	if opts.Audio == nil {
		opts.Audio = silent{}
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	return &Controller{
		cfg:    opts.Config,
		game:   shooter.New(opts.Config, opts.Source),
		audio:  opts.Audio,
		scores: opts.Scores,
		logger: opts.Logger,
		queue:  NewInputQueue(opts.Config.Session.InputQueue),
		state:  StateMainMenu,
	}
}

// State returns the current state.
func (c *Controller) State() State {
	return c.state
}

// Done reports whether the player chose to quit.
func (c *Controller) Done() bool {
	return c.state == StateExit
}

// Game returns the underlying simulation for rendering.
func (c *Controller) Game() *shooter.Game {
	return c.game
}

// Config returns the active configuration.
func (c *Controller) Config() config.ShooterConfig {
	return c.cfg
}

// MenuCursor returns the highlighted main menu item.
func (c *Controller) MenuCursor() MenuItem {
	return MenuItem(c.menuCursor)
}

// DifficultyCursor returns the highlighted difficulty index.
func (c *Controller) DifficultyCursor() int {
	return c.diffCursor
}

// Difficulty returns the committed difficulty preset.
func (c *Controller) Difficulty() config.DifficultyConfig {
	preset, _ := c.game.Difficulty()
	return preset
}

// CustomizeStep returns the active page of the customize screen.
func (c *Controller) CustomizeStep() CustomizeStep {
	return c.customizeStep
}

// ColorCursor returns the highlighted palette index.
func (c *Controller) ColorCursor() int {
	return c.colorCursor
}

// LastResult returns the state of the most recently finished session.
func (c *Controller) LastResult() core.GameState {
	return c.last
}

// Best returns the high score of the difficulty just played, when the
// score store could report one.
func (c *Controller) Best() (int, bool) {
	return c.best, c.bestKnown
}

// Pending returns the number of queued gameplay actions.
func (c *Controller) Pending() int {
	return c.queue.Len()
}

// HandleKey routes one key press to the current state.
func (c *Controller) HandleKey(ev core.KeyEvent) {
	switch c.state {
	case StateMainMenu:
		c.handleMainMenu(ev)
	case StateDifficulty:
		c.handleDifficulty(ev)
	case StateCustomize:
		c.handleCustomize(ev)
	case StateHighScores:
		if ev.Action == core.ActionBack || ev.Action == core.ActionQuit {
			c.setState(StateMainMenu)
		}
	case StatePlaying:
		switch ev.Action {
		case core.ActionNone:
		case core.ActionQuit:
			// Leaves at once; a full queue must not swallow it.
			c.queue.Clear()
			c.setState(StateMainMenu)
		default:
			if !c.queue.Push(ev.Action) {
				c.logger.Debug("input dropped", "action", ev.Action)
			}
		}
	case StateGameOver:
		c.setState(StateMainMenu)
	}
}

// Tick advances the simulation by one step while playing.
// At most one queued action is applied per tick.
func (c *Controller) Tick() {
	if c.state != StatePlaying {
		return
	}

	action, _ := c.queue.Pop()
	res := c.game.Step(action)
	for _, ev := range res.Events {
		if cue := core.CueFor(ev.Kind); cue != core.CueNone {
			c.audio.Play(cue)
		}
	}

	if res.State.GameOver {
		c.finish(res.State)
	}
}

// finish records the result and shows the game-over screen.
func (c *Controller) finish(st core.GameState) {
	c.last = st
	c.bestKnown = false
	c.queue.Clear()
	preset := c.Difficulty()

	c.logger.Info("game over", "score", st.Score, "level", st.Level+1, "difficulty", preset.Name)
	if c.scores != nil {
		if _, err := c.scores.SaveScore(preset.Name, st.Score, st.Level); err != nil {
			c.logger.Warn("could not save score", "err", err)
		}
		if best, err := c.scores.HighScore(preset.Name); err == nil {
			c.best, c.bestKnown = best, true
		} else {
			c.logger.Warn("could not read high score", "err", err)
		}
	}
	c.setState(StateGameOver)
}

func (c *Controller) handleMainMenu(ev core.KeyEvent) {
	n := int(menuItemCount)
	switch {
	case ev.Rune >= '1' && ev.Rune < '1'+rune(n):
		c.menuCursor = int(ev.Rune - '1')
		c.selectMenuItem()
	case ev.Action == core.ActionUp:
		c.menuCursor = (c.menuCursor + n - 1) % n
	case ev.Action == core.ActionDown:
		c.menuCursor = (c.menuCursor + 1) % n
	case ev.Action == core.ActionConfirm:
		c.selectMenuItem()
	case ev.Action == core.ActionQuit:
		c.setState(StateExit)
	}
}

func (c *Controller) selectMenuItem() {
	switch MenuItem(c.menuCursor) {
	case ItemStart:
		c.game.Reset()
		c.queue.Clear()
		c.setState(StatePlaying)
	case ItemDifficulty:
		_, c.diffCursor = c.game.Difficulty()
		c.setState(StateDifficulty)
	case ItemCustomize:
		c.customizeStep = StepGlyph
		c.colorCursor = c.paletteIndex(c.game.Player().Color)
		c.setState(StateCustomize)
	case ItemHighScores:
		c.setState(StateHighScores)
	case ItemQuit:
		c.setState(StateExit)
	}
}

func (c *Controller) handleDifficulty(ev core.KeyEvent) {
	n := len(c.cfg.Difficulties)
	switch ev.Action {
	case core.ActionUp:
		c.diffCursor = (c.diffCursor + n - 1) % n
	case core.ActionDown:
		c.diffCursor = (c.diffCursor + 1) % n
	case core.ActionConfirm:
		c.game.SetDifficulty(c.diffCursor)
		c.logger.Debug("difficulty changed", "difficulty", c.Difficulty().Name)
		c.setState(StateMainMenu)
	case core.ActionBack, core.ActionQuit:
		c.setState(StateMainMenu)
	}
}

func (c *Controller) handleCustomize(ev core.KeyEvent) {
	if c.customizeStep == StepGlyph {
		c.handleGlyph(ev)
		return
	}

	n := len(c.cfg.Palette)
	switch ev.Action {
	case core.ActionUp:
		c.colorCursor = (c.colorCursor + n - 1) % n
	case core.ActionDown:
		c.colorCursor = (c.colorCursor + 1) % n
	case core.ActionConfirm:
		p := c.game.Player()
		c.game.Customize(p.Glyph, c.cfg.PaletteColor(c.colorCursor))
		c.setState(StateMainMenu)
	case core.ActionBack, core.ActionQuit:
		c.setState(StateMainMenu)
	}
}

// handleGlyph takes any printable character, space included, as the new
// glyph. Enter keeps the current one; Escape leaves without changes.
func (c *Controller) handleGlyph(ev core.KeyEvent) {
	switch {
	case ev.Rune != 0 && unicode.IsPrint(ev.Rune):
		p := c.game.Player()
		c.game.Customize(ev.Rune, p.Color)
		c.customizeStep = StepColor
	case ev.Action == core.ActionConfirm:
		c.customizeStep = StepColor
	case ev.Action == core.ActionBack:
		c.setState(StateMainMenu)
	}
}

// paletteIndex finds col in the palette, or 0 if it is not offered.
func (c *Controller) paletteIndex(col core.Color) int {
	for i := range c.cfg.Palette {
		if c.cfg.PaletteColor(i) == col {
			return i
		}
	}
	return 0
}

func (c *Controller) setState(s State) {
	if s == c.state {
		return
	}
	c.logger.Debug("session state", "from", c.state, "to", s)
	c.state = s
}
