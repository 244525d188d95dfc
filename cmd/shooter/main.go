// shooter is a terminal space shooter: steer along the bottom row, fire
// upward and survive the descending enemies.
//
// Usage:
//
//	shooter                  - Open the main menu and play
//	shooter scores           - Show high scores from --db
//	shooter serve            - Start SSH server for remote play
//
// Global flags:
//
//	--config <path>      - Custom config YAML
//	--difficulty <name>  - Starting difficulty: easy, normal, hard
//	--db <path>          - Scores database (default: in memory for this run)
//	--log-file <path>    - Write logs to a file
//	--debug              - Enable debug logging
//	--mute               - Disable sound
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-shooter/internal/audio"
	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/games/shooter"
	"github.com/vovakirdan/tui-shooter/internal/platform/tui"
	"github.com/vovakirdan/tui-shooter/internal/rng"
	"github.com/vovakirdan/tui-shooter/internal/session"
	"github.com/vovakirdan/tui-shooter/internal/storage"
)

var (
	// Global flags
	flagConfig     string
	flagDifficulty string
	flagDBPath     string
	flagLogFile    string
	flagDebug      bool
	flagMute       bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "shooter",
	Short: "Space Shooter - an arcade shooter in your terminal",
	Long: `Space Shooter is a terminal arcade game. Move along the bottom row,
shoot the descending enemies and keep them from reaching you.

Controls:
  A/D or Left/Right  - Move
  Space/W/Up         - Fire
  Q/Esc              - Back to menu
  Ctrl+C             - Exit

Enemies:
  #  small   1 hit,  1 point
  @  medium  2 hits, 3 points
  $  large   4 hits, 6 points
  (hits are multiplied on Normal and Hard)

Examples:
  shooter
  shooter --difficulty hard
  shooter --db ~/.shooter/scores.db
  shooter --config ./my-shooter.yaml --mute`,
	SilenceUsage: true,
	RunE:         runGame,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database (empty keeps scores in memory)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable sound")

	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

func runGame(_ *cobra.Command, _ []string) error {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return errors.New("shooter: stdout is not a terminal")
	}

	// The TUI owns the terminal, so logs go to a file or nowhere.
	var out io.Writer = io.Discard
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("shooter: open log file: %w", err)
		}
		defer f.Close()
		out = f
	}
	logger := newLogger(out, "shooter")

	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("scores will not be recorded", "err", err)
		store = nil
	} else {
		defer store.Close()
	}

	width, height := shooter.FrameWidth, shooter.FrameHeight
	if w, h, sizeErr := term.GetSize(fd); sizeErr == nil {
		width, height = w, h
	}
	if width < shooter.FrameWidth || height < shooter.FrameHeight {
		fmt.Fprintf(os.Stderr, "Warning: terminal is %dx%d, the game needs %dx%d\n",
			width, height, shooter.FrameWidth, shooter.FrameHeight)
	}

	player := audio.New(cfg.Audio, flagMute, logger)
	if sp, ok := player.(*audio.SpeakerPlayer); ok {
		defer sp.Close()
	}

	opts := session.Options{
		Config: cfg,
		Source: rng.New(0),
		Audio:  player,
		Logger: logger,
	}
	if store != nil {
		opts.Scores = store
	}

	return tui.Run(session.New(opts), store, tui.DefaultTheme(), width, height)
}

// newLogger builds the structured logger used by all commands.
func newLogger(w io.Writer, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// loadConfig resolves the config file and applies --difficulty.
func loadConfig(logger *log.Logger) (config.ShooterConfig, error) {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return cfg, fmt.Errorf("shooter: load config: %w", err)
	}
	logger.Debug("config loaded", "source", source)

	if flagDifficulty != "" {
		preset, ok := config.ParsePreset(flagDifficulty)
		if !ok {
			return cfg, fmt.Errorf("shooter: unknown difficulty %q (use easy, normal or hard)", flagDifficulty)
		}
		config.ApplyPreset(&cfg, preset)
	}
	return cfg, nil
}
