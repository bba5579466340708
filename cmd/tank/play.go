package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tank/internal/core"
	"github.com/vovakirdan/tui-tank/internal/platform/tui"
	"github.com/vovakirdan/tui-tank/internal/sfx"
)

var (
	flagSound  bool
	flagVolume float64
	flagLinger time.Duration
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game of Tank Shooter.

Controls:
  Left/A     - Move left
  Right/D    - Move right
  Down/S     - Stop
  Space/Up   - Fire
  P/Esc      - Pause
  Ctrl+S     - Screenshot
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Slower spawns, enemy speed capped at 3
  normal - Config as loaded, progression on
  hard   - Faster spawns, enemy speed up to 5
  fixed  - No progression, stays at the start level

Examples:
  tank play
  tank play --difficulty easy
  tank play --sound --volume -1
  tank play --config ./my-tank.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagSound, "sound", false, "Enable sound effects")
	playCmd.Flags().Float64Var(&flagVolume, "volume", sfx.DefaultVolume, "Sound volume in log2 steps (0 = full, -1 = half, -10 = mute)")
	playCmd.Flags().DurationVar(&flagLinger, "linger", tui.DefaultLinger, "How long the game-over screen stays up")
}

func runPlay(cmd *cobra.Command, args []string) {
	runtime := core.DefaultConfig()
	runtime.TickRate = flagFPS
	runtime.Seed = flagSeed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		runtime.ScreenW = w
		runtime.ScreenH = h
	}

	// The alternate screen owns stdout, so logs go to a file
	var logOut io.Writer = io.Discard
	if flagLogPath != "" {
		f, err := openLogFile(flagLogPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
		} else {
			defer f.Close()
			logOut = f
		}
	}
	logger := newLogger(logOut)

	s, err := newSession(logger, true)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer s.Close()

	opts := tui.Options{
		Runtime: runtime,
		Logger:  logger,
		Linger:  flagLinger,
	}

	if flagSound {
		player := sfx.NewPlayer(flagVolume)
		if err := player.Init(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: sound disabled: %v\n", err)
		} else {
			defer player.Close()
			opts.Sound = player
		}
	}

	logger.Info("session started", "difficulty", flagDifficulty, "seed", flagSeed)

	state, err := tui.Run(s.game, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if state.GameOver {
		fmt.Printf("Game over: score %d (high score %d)\n", state.Score, state.HighScore)
		if state.NewRecord {
			fmt.Println("New high score!")
		}
	}
}
