package session

import (
	"errors"
	"io"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/rng"
)

type stubSource func(lo, hi int) int

func (f stubSource) Range(lo, hi int) int { return f(lo, hi) }

// quiet never spawns and never respawns.
var quiet = stubSource(func(lo, hi int) int {
	if lo == 0 && hi == 1 {
		return 0
	}
	return hi
})

type cueRecorder struct {
	cues []core.Cue
}

func (r *cueRecorder) Play(cue core.Cue) {
	r.cues = append(r.cues, cue)
}

type savedScore struct {
	difficulty string
	score      int
	level      int
}

type scoreRecorder struct {
	saved []savedScore
	err   error
}

func (r *scoreRecorder) SaveScore(difficulty string, score, level int) (int64, error) {
	if r.err != nil {
		return 0, r.err
	}
	r.saved = append(r.saved, savedScore{difficulty, score, level})
	return int64(len(r.saved)), nil
}

func (r *scoreRecorder) HighScore(difficulty string) (int, error) {
	if r.err != nil {
		return 0, r.err
	}
	best := 0
	for _, s := range r.saved {
		if s.difficulty == difficulty {
			best = max(best, s.score)
		}
	}
	return best, nil
}

type fixture struct {
	c      *Controller
	cues   *cueRecorder
	scores *scoreRecorder
}

func newFixture(t *testing.T, cfg config.ShooterConfig, src rng.Source) fixture {
	t.Helper()
	f := fixture{cues: &cueRecorder{}, scores: &scoreRecorder{}}
	f.c = New(Options{
		Config: cfg,
		Source: src,
		Audio:  f.cues,
		Scores: f.scores,
		Logger: log.New(io.Discard),
	})
	return f
}

func press(c *Controller, actions ...core.Action) {
	for _, a := range actions {
		c.HandleKey(core.Key(a))
	}
}

func TestMainMenuWrapAround(t *testing.T) {
	f := newFixture(t, config.DefaultShooterConfig(), quiet)

	press(f.c, core.ActionUp)
	if got := f.c.MenuCursor(); got != ItemQuit {
		t.Errorf("got cursor %v, expected %v", got, ItemQuit)
	}
	press(f.c, core.ActionDown)
	if got := f.c.MenuCursor(); got != ItemStart {
		t.Errorf("got cursor %v, expected %v", got, ItemStart)
	}
}

func TestMainMenuDigitShortcuts(t *testing.T) {
	tests := []struct {
		key  rune
		want State
	}{
		{'1', StatePlaying},
		{'2', StateDifficulty},
		{'3', StateCustomize},
		{'4', StateHighScores},
		{'5', StateExit},
		{'6', StateMainMenu},
	}

	for _, tt := range tests {
		t.Run(string(tt.key), func(t *testing.T) {
			f := newFixture(t, config.DefaultShooterConfig(), quiet)
			f.c.HandleKey(core.RuneKey(tt.key, core.ActionNone))
			if got := f.c.State(); got != tt.want {
				t.Errorf("got state %v, expected %v", got, tt.want)
			}
		})
	}
}

func TestQuitFromMainMenu(t *testing.T) {
	f := newFixture(t, config.DefaultShooterConfig(), quiet)

	press(f.c, core.ActionQuit)
	if !f.c.Done() {
		t.Errorf("got state %v, expected exit", f.c.State())
	}
}

func TestDifficultySelect(t *testing.T) {
	f := newFixture(t, config.DefaultShooterConfig(), quiet)

	press(f.c, core.ActionDown, core.ActionConfirm)
	if f.c.State() != StateDifficulty {
		t.Fatalf("got state %v, expected difficulty", f.c.State())
	}
	if f.c.DifficultyCursor() != 1 {
		t.Errorf("got cursor %d, expected current preset 1", f.c.DifficultyCursor())
	}

	// Normal -> Easy -> Hard (wrap) -> Easy (wrap)
	press(f.c, core.ActionUp)
	if f.c.DifficultyCursor() != 0 {
		t.Errorf("got cursor %d, expected 0", f.c.DifficultyCursor())
	}
	press(f.c, core.ActionUp)
	if f.c.DifficultyCursor() != 2 {
		t.Errorf("got cursor %d, expected 2", f.c.DifficultyCursor())
	}
	press(f.c, core.ActionDown)
	if f.c.DifficultyCursor() != 0 {
		t.Errorf("got cursor %d, expected 0", f.c.DifficultyCursor())
	}

	press(f.c, core.ActionConfirm)
	if f.c.State() != StateMainMenu {
		t.Errorf("got state %v, expected main menu", f.c.State())
	}
	if got := f.c.Difficulty().Name; got != "Easy" {
		t.Errorf("got difficulty %q, expected Easy", got)
	}
}

func TestDifficultyBackKeepsPreset(t *testing.T) {
	f := newFixture(t, config.DefaultShooterConfig(), quiet)

	f.c.HandleKey(core.RuneKey('2', core.ActionNone))
	press(f.c, core.ActionDown, core.ActionBack)

	if f.c.State() != StateMainMenu {
		t.Errorf("got state %v, expected main menu", f.c.State())
	}
	if got := f.c.Difficulty().Name; got != "Normal" {
		t.Errorf("got difficulty %q, expected Normal", got)
	}
}

func TestCustomizeGlyphAndColor(t *testing.T) {
	f := newFixture(t, config.DefaultShooterConfig(), quiet)

	f.c.HandleKey(core.RuneKey('3', core.ActionNone))
	if f.c.CustomizeStep() != StepGlyph {
		t.Fatalf("got step %v, expected glyph step", f.c.CustomizeStep())
	}

	// 'q' is a glyph here, not a quit.
	f.c.HandleKey(core.RuneKey('q', core.ActionQuit))
	if f.c.CustomizeStep() != StepColor {
		t.Fatalf("got step %v, expected color step", f.c.CustomizeStep())
	}
	if f.c.ColorCursor() != 5 {
		t.Errorf("got color cursor %d, expected current color 5", f.c.ColorCursor())
	}

	press(f.c, core.ActionDown, core.ActionConfirm)

	p := f.c.Game().Player()
	if p.Glyph != 'q' {
		t.Errorf("got glyph %q, expected 'q'", p.Glyph)
	}
	if p.Color != core.ColorBrightWhite {
		t.Errorf("got color %v, expected bright_white", p.Color)
	}
	if f.c.State() != StateMainMenu {
		t.Errorf("got state %v, expected main menu", f.c.State())
	}
}

func TestCustomizeAcceptsSpaceGlyph(t *testing.T) {
	f := newFixture(t, config.DefaultShooterConfig(), quiet)

	f.c.HandleKey(core.RuneKey('3', core.ActionNone))
	f.c.HandleKey(core.RuneKey(' ', core.ActionNone))
	if f.c.CustomizeStep() != StepColor {
		t.Fatalf("got step %v, expected color step", f.c.CustomizeStep())
	}
	press(f.c, core.ActionConfirm)

	if p := f.c.Game().Player(); p.Glyph != ' ' {
		t.Errorf("got glyph %q, expected ' '", p.Glyph)
	}
}

func TestCustomizeEnterKeepsGlyphBackKeepsColor(t *testing.T) {
	f := newFixture(t, config.DefaultShooterConfig(), quiet)

	f.c.HandleKey(core.RuneKey('3', core.ActionNone))
	press(f.c, core.ActionConfirm, core.ActionUp, core.ActionBack)

	p := f.c.Game().Player()
	if p.Glyph != '^' || p.Color != core.ColorBrightYellow {
		t.Errorf("got glyph %q color %v, expected defaults", p.Glyph, p.Color)
	}
	if f.c.State() != StateMainMenu {
		t.Errorf("got state %v, expected main menu", f.c.State())
	}
}

func TestHighScoresBack(t *testing.T) {
	f := newFixture(t, config.DefaultShooterConfig(), quiet)

	f.c.HandleKey(core.RuneKey('4', core.ActionNone))
	press(f.c, core.ActionDown) // ignored here
	if f.c.State() != StateHighScores {
		t.Fatalf("got state %v, expected high scores", f.c.State())
	}
	press(f.c, core.ActionBack)
	if f.c.State() != StateMainMenu {
		t.Errorf("got state %v, expected main menu", f.c.State())
	}
}

func TestPlayingAppliesOneActionPerTick(t *testing.T) {
	f := newFixture(t, config.DefaultShooterConfig(), quiet)
	press(f.c, core.ActionConfirm)
	if f.c.State() != StatePlaying {
		t.Fatalf("got state %v, expected playing", f.c.State())
	}

	start := f.c.Game().Player().Lane
	press(f.c, core.ActionRight, core.ActionRight, core.ActionFire)

	f.c.Tick()
	if got := f.c.Game().Player().Lane; got != start+1 {
		t.Errorf("got lane %d, expected %d", got, start+1)
	}
	if f.c.Pending() != 2 {
		t.Errorf("got %d pending, expected 2", f.c.Pending())
	}

	f.c.Tick()
	f.c.Tick()
	if got := f.c.Game().Player().Lane; got != start+2 {
		t.Errorf("got lane %d, expected %d", got, start+2)
	}
	if len(f.cues.cues) != 1 || f.cues.cues[0] != core.CueShoot {
		t.Errorf("got cues %v, expected one shoot cue", f.cues.cues)
	}
	if f.c.Game().Tick() != 3 {
		t.Errorf("got %d ticks, expected 3", f.c.Game().Tick())
	}
}

func TestInputQueueOverflowDropsNewest(t *testing.T) {
	f := newFixture(t, config.DefaultShooterConfig(), quiet)
	press(f.c, core.ActionConfirm)

	for i := 0; i < DefaultQueueSize+3; i++ {
		press(f.c, core.ActionLeft)
	}
	if f.c.Pending() != DefaultQueueSize {
		t.Errorf("got %d pending, expected %d", f.c.Pending(), DefaultQueueSize)
	}
}

func TestQuitFromPlayingSkipsGameOver(t *testing.T) {
	f := newFixture(t, config.DefaultShooterConfig(), quiet)
	press(f.c, core.ActionConfirm, core.ActionQuit)

	if f.c.State() != StateMainMenu {
		t.Errorf("got state %v, expected main menu", f.c.State())
	}
	if len(f.scores.saved) != 0 {
		t.Errorf("got %d saved scores, expected none", len(f.scores.saved))
	}
}

func TestQuitFromPlayingWithFullQueue(t *testing.T) {
	f := newFixture(t, config.DefaultShooterConfig(), quiet)
	press(f.c, core.ActionConfirm)

	for i := 0; i < DefaultQueueSize; i++ {
		press(f.c, core.ActionFire)
	}
	if f.c.Pending() != DefaultQueueSize {
		t.Fatalf("got %d pending, expected a full queue of %d", f.c.Pending(), DefaultQueueSize)
	}

	press(f.c, core.ActionQuit)
	if f.c.State() != StateMainMenu {
		t.Errorf("got state %v, expected main menu without a tick", f.c.State())
	}
	if f.c.Pending() != 0 {
		t.Errorf("got %d pending, expected the queue cleared", f.c.Pending())
	}
	if f.c.Game().Tick() != 0 {
		t.Errorf("got %d ticks, expected 0", f.c.Game().Tick())
	}
}

func TestTickIgnoredOutsidePlaying(t *testing.T) {
	f := newFixture(t, config.DefaultShooterConfig(), quiet)

	f.c.Tick()
	if f.c.Game().Tick() != 0 {
		t.Errorf("got %d ticks in main menu, expected 0", f.c.Game().Tick())
	}
}

// everyone spawns every enemy in lane 20 with the small tier.
var everyone = stubSource(func(lo, hi int) int {
	switch {
	case lo == 0 && hi == 1:
		return 0
	case lo == 1:
		return 20
	default:
		return 0
	}
})

func playUntilGameOver(t *testing.T, c *Controller) {
	t.Helper()
	for i := 0; i < 500 && c.State() == StatePlaying; i++ {
		c.Tick()
	}
	if c.State() != StateGameOver {
		t.Fatalf("got state %v, expected game over", c.State())
	}
}

func TestGameOverRecordsScore(t *testing.T) {
	cfg := config.DefaultShooterConfig()
	cfg.Player.Lives = 1
	cfg.Session.Difficulty = string(config.DifficultyHard)
	f := newFixture(t, cfg, everyone)

	press(f.c, core.ActionConfirm)
	playUntilGameOver(t, f.c)

	if len(f.scores.saved) != 1 {
		t.Fatalf("got %d saved scores, expected 1", len(f.scores.saved))
	}
	if got := f.scores.saved[0]; got.difficulty != "Hard" || got.score != 0 {
		t.Errorf("got %+v, expected Hard with score 0", got)
	}
	if n := len(f.cues.cues); n == 0 || f.cues.cues[n-1] != core.CueLifeLost {
		t.Errorf("got cues %v, expected to end with the life lost cue", f.cues.cues)
	}
	if res := f.c.LastResult(); !res.GameOver || res.Lives != 0 {
		t.Errorf("got %+v, expected finished session with no lives", res)
	}
	if best, ok := f.c.Best(); !ok || best != 0 {
		t.Errorf("got best (%d, %v), expected (0, true)", best, ok)
	}

	// Any key returns to the menu.
	f.c.HandleKey(core.RuneKey('x', core.ActionNone))
	if f.c.State() != StateMainMenu {
		t.Errorf("got state %v, expected main menu", f.c.State())
	}

	// A new session starts fresh.
	press(f.c, core.ActionConfirm)
	if st := f.c.Game().State(); st.Lives != 1 || st.GameOver {
		t.Errorf("got %+v after restart, expected a fresh session", st)
	}
}

func TestGameOverSurvivesStoreFailure(t *testing.T) {
	cfg := config.DefaultShooterConfig()
	cfg.Player.Lives = 1
	f := newFixture(t, cfg, everyone)
	f.scores.err = errors.New("disk full")

	press(f.c, core.ActionConfirm)
	playUntilGameOver(t, f.c)

	if _, ok := f.c.Best(); ok {
		t.Error("expected no best score when the store fails")
	}
}

func TestInputQueue(t *testing.T) {
	q := NewInputQueue(2)

	if !q.Push(core.ActionLeft) || !q.Push(core.ActionFire) {
		t.Fatal("expected pushes within capacity to succeed")
	}
	if q.Push(core.ActionRight) {
		t.Error("expected push beyond capacity to fail")
	}

	want := []core.Action{core.ActionLeft, core.ActionFire}
	for _, w := range want {
		got, ok := q.Pop()
		if !ok || got != w {
			t.Errorf("got %v (%v), expected %v", got, ok, w)
		}
	}
	if _, ok := q.Pop(); ok {
		t.Error("expected empty queue")
	}

	if NewInputQueue(0).size != DefaultQueueSize {
		t.Error("expected default capacity for non-positive size")
	}
}
