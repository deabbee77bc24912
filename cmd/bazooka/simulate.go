package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tiny-bazooka/internal/games/bazooka"
)

var (
	flagSeconds   float64
	flagFireEvery float64
	flagJumpEvery float64
	flagRestart   bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a headless session with an autopilot",
	Long: `Run the game without a terminal UI. An autopilot starts the session,
fires every --fire-every seconds and jumps every --jump-every seconds.
Frames are --fps per second of simulated time; the run stops at game over
unless --restart is set.

Examples:
  bazooka simulate
  bazooka simulate --seconds 120 --fire-every 0.2 --jump-every 1.5 --seed 7
  bazooka simulate --restart --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().Float64Var(&flagSeconds, "seconds", 30, "Simulated seconds to run")
	simulateCmd.Flags().Float64Var(&flagFireEvery, "fire-every", 0.25, "Seconds between shots (0 = never fire)")
	simulateCmd.Flags().Float64Var(&flagJumpEvery, "jump-every", 0, "Seconds between jumps (0 = never jump)")
	simulateCmd.Flags().BoolVar(&flagRestart, "restart", false, "Start a new session after game over")
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, err := newLogger(os.Stderr, flagLogLevel)
	if err != nil {
		return err
	}
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}

	game := bazooka.New(cfg, bazooka.WithLogger(logger), bazooka.WithSeed(flagSeed))
	pilot := &bazooka.Autopilot{
		FireEvery: flagFireEvery,
		JumpEvery: flagJumpEvery,
		Restart:   flagRestart,
	}

	frames := bazooka.Simulate(game, pilot, flagSeconds, 1/float64(flagFPS))
	printSummary(cmd.OutOrStdout(), game, frames)
	return nil
}

func printSummary(w io.Writer, g *bazooka.Game, frames int) {
	s := g.Snapshot()
	fmt.Fprintf(w, "seed:     %d\n", g.Seed())
	fmt.Fprintf(w, "frames:   %d\n", frames)
	fmt.Fprintf(w, "state:    %s\n", s.State)
	fmt.Fprintf(w, "score:    %d\n", s.Score)
	fmt.Fprintf(w, "elapsed:  %.3fs\n", s.Elapsed)
	fmt.Fprintf(w, "enemies:  %d\n", len(s.Enemies))
	fmt.Fprintf(w, "rockets:  %d\n", len(s.Rockets))
}
