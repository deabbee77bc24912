// bazooka is Tiny Bazooka: jump, fire rockets and keep the enemies from
// reaching the left edge of the terminal.
//
// Usage:
//
//	bazooka play              - Play in the terminal
//	bazooka simulate          - Run a headless session with an autopilot
//	bazooka config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible enemy tiers
//	--config <path>       - Use a custom YAML config
//	--log-level <level>   - debug, info, warn, error (default: info)
//	--log-file <path>     - Log destination while playing (default: ~/.bazooka/bazooka.log)
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tiny-bazooka/internal/config"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bazooka",
	Short: "Tiny Bazooka - shoot down incoming enemies in your terminal",
	Long: `Tiny Bazooka is a one-screen arcade game. Enemies fly in from the right
in three lanes; fire rockets to destroy them and jump to reach the higher
lanes. The game ends when an enemy reaches the left edge.

Available commands:
  play      - Play in the terminal
  simulate  - Run a headless session and print the result
  config    - Print the effective configuration

Examples:
  bazooka play
  bazooka play --mute --fixed-step 0.01
  bazooka simulate --seconds 60 --fire-every 0.3 --seed 42
  bazooka config > my-bazooka.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.bazooka/bazooka.log", "Log file used while playing")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the CLI logger writing to w at the --log-level level.
func newLogger(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("bad --log-level %q: %w", level, err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "bazooka",
		Level:           lvl,
	}), nil
}

// openLogFile opens path for appending, creating its directory.
func openLogFile(path string) (*os.File, error) {
	path = expandHome(path)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
}

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

// loadConfig loads the config named by --config (or the usual search path).
func loadConfig() (config.Config, error) {
	return config.Load(expandHome(flagConfig))
}
