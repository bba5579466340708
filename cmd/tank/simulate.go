package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-tank/internal/core"
	"github.com/vovakirdan/tui-tank/internal/games/tank"
)

var (
	flagTicks     uint64
	flagInterval  time.Duration
	flagAutopilot bool
	flagFireEvery uint64
	flagRecord    bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a headless game",
	Long: `Run a game without a terminal and print a YAML report.

The autopilot steers under the lowest enemy and fires when lined up.
Without --autopilot the tank sits still and never fires.
Runs with the same seed and flags produce the same report.

Examples:
  tank simulate --seed 42
  tank simulate --seed 7 --ticks 20000 --difficulty hard
  tank simulate --interval 30ms --record`,
	Args: cobra.NoArgs,
	Run:  runSimulate,
}

func init() {
	simulateCmd.Flags().Uint64Var(&flagTicks, "ticks", 10000, "Maximum ticks to run (0 = until game over)")
	simulateCmd.Flags().DurationVar(&flagInterval, "interval", 0, "Wall-clock time per tick (0 = as fast as possible)")
	simulateCmd.Flags().BoolVar(&flagAutopilot, "autopilot", true, "Drive the tank with the autopilot")
	simulateCmd.Flags().Uint64Var(&flagFireEvery, "fire-every", 8, "Minimum ticks between autopilot shots")
	simulateCmd.Flags().BoolVar(&flagRecord, "record", false, "Save the high score and record the run in history")
}

// simulationReport is the YAML summary printed after a headless run.
type simulationReport struct {
	Seed        int64          `yaml:"seed"`
	Difficulty  string         `yaml:"difficulty,omitempty"`
	Ticks       uint64         `yaml:"ticks"`
	State       string         `yaml:"state"`
	Score       int            `yaml:"score"`
	HighScore   int            `yaml:"high_score"`
	Level       int            `yaml:"level"`
	Health      int            `yaml:"health"`
	Enemies     int            `yaml:"enemies"`
	Projectiles int            `yaml:"projectiles"`
	Cues        map[string]int `yaml:"cues,omitempty"`
	Interrupted bool           `yaml:"interrupted,omitempty"`
	Elapsed     string         `yaml:"elapsed"`
}

func runSimulate(cmd *cobra.Command, args []string) {
	logger := newLogger(os.Stderr)

	s, err := newSession(logger, flagRecord)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer s.Close()

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	runtime := core.DefaultConfig()
	runtime.TickRate = flagFPS
	runtime.Seed = seed
	s.game.Reset(runtime)

	var pilot tank.Pilot
	if flagAutopilot {
		pilot = tank.NewAutopilot(flagFireEvery)
	}

	runner := tank.NewRunner(s.game, pilot, flagInterval, flagTicks)
	cues := make(map[string]int)
	runner.OnStep = func(r core.StepResult) {
		for _, c := range r.Cues {
			cues[string(c)]++
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	start := time.Now()
	snap, err := runner.Run(ctx)
	interrupted := errors.Is(err, context.Canceled)
	if err != nil && !interrupted {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	report := simulationReport{
		Seed:        seed,
		Difficulty:  flagDifficulty,
		Ticks:       snap.Tick,
		State:       snap.State,
		Score:       snap.Score,
		HighScore:   snap.HighScore,
		Level:       snap.Level,
		Health:      snap.Health,
		Enemies:     snap.Enemies,
		Projectiles: snap.Projectiles,
		Cues:        cues,
		Interrupted: interrupted,
		Elapsed:     time.Since(start).Round(time.Millisecond).String(),
	}

	out, err := yaml.Marshal(report)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(out)

	if s.scores != nil {
		logger.Debug("high score file", "path", s.scores.Path())
	}
}
