package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tiny-bazooka/internal/core"
	"github.com/vovakirdan/tiny-bazooka/internal/games/bazooka"
	"github.com/vovakirdan/tiny-bazooka/internal/platform/audio"
	"github.com/vovakirdan/tiny-bazooka/internal/platform/tui"
)

var (
	flagMute      bool
	flagFixedStep float64
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start the game in the terminal.

Controls:
  Space      - Fire (starts a new game from the title screen)
  Up/W       - Jump (twice for a double jump)
  Esc/Q      - Quit
  Ctrl+S     - Save a text screenshot
  ?          - Show all keys

Examples:
  bazooka play
  bazooka play --mute
  bazooka play --fixed-step 0.01 --seed 42`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable audio")
	playCmd.Flags().Float64Var(&flagFixedStep, "fixed-step", 0, "Simulate in fixed steps of this many seconds (0 = one step per frame)")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("fixed-step") {
		cfg.Timing.FixedStep = flagFixedStep
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	if flagMute {
		cfg.Audio.Enabled = false
	}

	// The terminal belongs to the TUI, so logs go to a file.
	var logOut io.Writer = io.Discard
	if logFile, err := openLogFile(flagLogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
	} else {
		defer logFile.Close()
		logOut = logFile
	}
	logger, err := newLogger(logOut, flagLogLevel)
	if err != nil {
		return err
	}

	rc := runtimeConfig(flagFPS, flagSeed)
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc.ScreenW, rc.ScreenH = w, h
	}

	player := audio.NewPlayer(cfg.Audio, logger.WithPrefix("audio"))
	if err := player.Init(); err != nil {
		logger.Warn("audio unavailable", "error", err)
	}
	defer player.Close()

	presenter := tui.NewPresenter()
	game := bazooka.New(cfg,
		bazooka.WithSink(bazooka.MultiSink{presenter, player}),
		bazooka.WithLogger(logger),
		bazooka.WithSeed(rc.Seed),
	)
	logger.Info("starting", "seed", game.Seed(), "size", fmt.Sprintf("%dx%d", rc.ScreenW, rc.ScreenH), "fps", rc.TickRate)

	if err := tui.Run(game, presenter, rc, logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	logger.Info("exited", "score", game.Score())
	return nil
}

// runtimeConfig overrides the platform defaults with the command-line
// frame rate and seed. A non-positive fps keeps the default rate.
func runtimeConfig(fps int, seed int64) core.RuntimeConfig {
	rc := core.DefaultConfig()
	if fps > 0 {
		rc.TickRate = fps
	}
	rc.Seed = seed
	return rc
}
