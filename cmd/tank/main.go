// tank is a terminal tank shooter.
//
// Usage:
//
//	tank play              - Play in the terminal
//	tank simulate          - Run a headless game with the autopilot
//	tank scores            - Show the run history
//	tank config            - Print the default configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 33)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set run history database (default: ~/.tank/scores.db)
//	--config <path>       - Use a custom game config YAML
//	--difficulty <name>   - Difficulty preset: easy, normal, hard, fixed
//	--log <path>          - Log file for interactive play (default: ~/.tank/tank.log)
//	--debug               - Enable debug logging
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tank/internal/config"
	"github.com/vovakirdan/tui-tank/internal/core"
	"github.com/vovakirdan/tui-tank/internal/games/tank"
	"github.com/vovakirdan/tui-tank/internal/highscore"
	"github.com/vovakirdan/tui-tank/internal/registry"
	"github.com/vovakirdan/tui-tank/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogPath    string
	flagDebug      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tank",
	Short: "Tank Shooter - a terminal arcade shooter",
	Long: `Tank Shooter puts you in a tank at the bottom of the field.
Shoot down the descending enemies before they reach you.

Available commands:
  play      - Play in the terminal
  simulate  - Run a headless game driven by the autopilot
  scores    - View the run history
  config    - Print the default configuration

Examples:
  tank play
  tank play --difficulty hard
  tank simulate --seed 42 --ticks 5000
  tank scores --plain
  tank config > ~/.tank/configs/tank.yaml`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", core.DefaultTickRate, "Tick rate (ticks per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tank/scores.db", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "~/.tank/tank.log", "Log file for interactive play")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger creates the application logger writing to w.
func newLogger(w io.Writer) *log.Logger {
	level := log.InfoLevel
	if flagDebug {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "tank",
		Level:           level,
	})
}

// openLogFile opens the interactive log file for appending.
func openLogFile(path string) (*os.File, error) {
	path = expandHome(path)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}

// expandHome replaces a leading ~ with the home directory.
func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}

// loadConfig resolves the game config the same way the game factory does.
func loadConfig() (config.TankConfig, error) {
	cfg, err := config.LoadTank(flagConfig)
	if err != nil {
		return config.TankConfig{}, err
	}
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.TankConfig{}, err
	}
	config.ApplyTankPreset(&cfg, preset)
	return cfg, nil
}

// session holds the collaborators of one game run.
type session struct {
	game   *tank.Game
	store  *storage.Store
	scores *highscore.FileStore
}

// newSession creates the game. With persist set, the run reads and writes the
// high score file and the run history database. A missing database only
// disables history.
func newSession(logger *log.Logger, persist bool) (*session, error) {
	if !registry.Exists(tank.GameID) {
		return nil, fmt.Errorf("game %q is not registered", tank.GameID)
	}

	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	s := &session{}
	opts := registry.Options{
		ConfigPath: flagConfig,
		Difficulty: flagDifficulty,
		Logger:     logger,
	}

	if persist {
		s.scores = highscore.NewFileStore(cfg.HighScore.Path)
		opts.HighScores = s.scores

		store, err := storage.Open(flagDBPath)
		if err != nil {
			logger.Warn("could not open run history database", "error", err)
		} else {
			s.store = store
			opts.History = store
		}
	}

	g, err := registry.Create(tank.GameID, opts)
	if err != nil {
		s.Close()
		return nil, err
	}
	tg, ok := g.(*tank.Game)
	if !ok {
		s.Close()
		return nil, fmt.Errorf("unexpected game type %T", g)
	}
	s.game = tg
	return s, nil
}

// Close releases the run history database.
func (s *session) Close() {
	if s.store != nil {
		s.store.Close()
	}
}
