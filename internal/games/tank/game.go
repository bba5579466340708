package tank

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tank/internal/config"
	"github.com/vovakirdan/tui-tank/internal/core"
	"github.com/vovakirdan/tui-tank/internal/registry"
)

// GameID is the registry identifier of the tank game.
const GameID = "tank"

// Visual characters for rendering
const (
	TankChar       = '█'
	EnemyChar      = '▓'
	ProjectileChar = '|'
	HeartFull      = '♥'
	HeartEmpty     = '·'
)

// Game adapts a World to the platform: it turns input frames into world
// commands, synthesizes key release, persists results at game over, and
// renders the world onto a terminal screen.
type Game struct {
	cfg     config.TankConfig
	opts    registry.Options
	logger  *log.Logger
	runtime core.RuntimeConfig

	world     *World
	paused    bool
	idleTicks int  // Ticks since the last steering input
	finished  bool // Game-over persistence done
	final     Event
}

// New loads the configuration named by opts and creates a game.
func New(opts registry.Options) (*Game, error) {
	cfg, err := config.LoadTank(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	preset, err := config.ParsePreset(opts.Difficulty)
	if err != nil {
		return nil, err
	}
	config.ApplyTankPreset(&cfg, preset)

	return NewWithConfig(cfg, opts), nil
}

// NewWithConfig creates a game from an already loaded configuration.
func NewWithConfig(cfg config.TankConfig, opts registry.Options) *Game {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{
		cfg:    cfg,
		opts:   opts,
		logger: logger,
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Tank Shooter"
}

// Reset starts a new run. The stored high score is read here, once per run.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.runtime = rc
	g.world = NewWorld(g.cfg, rc.Seed, g.loadHighScore())
	g.paused = false
	g.idleTicks = 0
	g.finished = false
	g.final = Event{}

	g.logger.Debug("run started", "seed", rc.Seed, "level", g.world.Level(), "high_score", g.world.HighScore(),
		"progression", g.world.difficulty.IsEnabled())
}

func (g *Game) loadHighScore() int {
	if g.opts.HighScores == nil {
		return 0
	}
	score, err := g.opts.HighScores.Load()
	if err != nil {
		g.logger.Debug("high score unavailable, starting from 0", "error", err)
		return 0
	}
	return score
}

// World exposes the simulation for headless drivers and tests.
func (g *Game) World() *World {
	return g.world
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.world == nil {
		g.Reset(g.runtime)
	}
	if g.world.GameOver() {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.steer(in)
	for i, n := 0, in.Fires; i < n; i++ {
		g.world.Fire()
	}

	result := g.world.Tick()

	cues := make([]core.Cue, 0, len(result.Events))
	for _, ev := range result.Events {
		if cue, ok := ev.cue(); ok {
			cues = append(cues, cue)
		}
		if ev.Kind != EventFired {
			g.logger.Debug("event", "kind", ev.Kind, "tick", ev.Tick, "score", ev.Score, "health", ev.Health, "level", ev.Level)
		}
	}

	if ev, ok := result.Find(EventGameOver); ok && !g.finished {
		g.finish(ev)
	}

	return core.StepResult{State: g.State(), Cues: cues}
}

// steer applies steering input. Terminals report presses only, so a held
// direction is released after ReleaseTicks ticks without a repeat.
func (g *Game) steer(in core.InputFrame) {
	if dir, ok := in.Direction(); ok {
		g.world.SetDirection(dir)
		g.idleTicks = 0
		return
	}

	release := g.cfg.Input.ReleaseTicks
	if release <= 0 || g.world.Player().Direction == 0 {
		return
	}
	g.idleTicks++
	if g.idleTicks >= release {
		g.world.SetDirection(0)
		g.idleTicks = 0
	}
}

// finish persists the outcome of a run. Failures are logged, never fatal.
func (g *Game) finish(ev Event) {
	g.finished = true
	g.final = ev

	g.logger.Info("game over", "score", ev.Score, "level", ev.Level, "high_score", ev.HighScore, "new_record", ev.NewRecord)

	if ev.NewRecord && g.opts.HighScores != nil {
		if err := g.opts.HighScores.Save(ev.HighScore); err != nil {
			g.logger.Error("could not save high score", "score", ev.HighScore, "error", err)
		}
	}

	if g.opts.History != nil {
		run := core.RunRecord{
			GameID:    GameID,
			Score:     ev.Score,
			Level:     ev.Level,
			Ticks:     ev.Tick,
			Seed:      g.runtime.Seed,
			NewRecord: ev.NewRecord,
		}
		if err := g.opts.History.RecordRun(run); err != nil {
			g.logger.Warn("could not record run", "error", err)
		}
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.world == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:     g.world.Score(),
		HighScore: g.world.HighScore(),
		Level:     g.world.Level(),
		Health:    g.world.Player().Health,
		GameOver:  g.world.GameOver(),
		Paused:    g.paused,
		NewRecord: g.final.NewRecord,
	}
}

// Render draws the current game state to the screen.
// Row 0 holds the HUD; the remaining rows show the field scaled to fit.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.world == nil || dst.Width() == 0 || dst.Height() < 2 {
		return
	}

	v := newViewport(g.world, dst.Width(), dst.Height()-1)

	for _, e := range g.world.Enemies() {
		dst.DrawRect(v.project(e.Bounds()), EnemyChar, core.ColorRed)
	}
	for _, p := range g.world.Projectiles() {
		dst.DrawRect(v.project(p.Bounds()), ProjectileChar, core.ColorBrightYellow)
	}
	dst.DrawRect(v.project(g.world.Player().Bounds()), TankChar, core.ColorBrightGreen)

	g.drawHUD(dst)

	switch {
	case g.world.GameOver():
		lines := []string{
			"GAME OVER",
			"",
			fmt.Sprintf("Score: %d", g.final.Score),
			fmt.Sprintf("High Score: %d", g.world.HighScore()),
		}
		if g.final.NewRecord {
			lines = append(lines, "NEW HIGH SCORE!")
		}
		lines = append(lines, "", "Press any key to exit")
		drawCenteredBox(dst, lines)
	case g.paused:
		drawCenteredBox(dst, []string{"PAUSED", "", "Press P to resume"})
	}
}

// drawHUD renders health, score, level and high score on the top row.
func (g *Game) drawHUD(dst *core.Screen) {
	health := max(g.world.Player().Health, 0)
	empty := max(g.world.MaxHealth()-health, 0)

	dst.DrawTextColor(1, 0, "HP ", core.ColorWhite)
	hearts := strings.Repeat(string(HeartFull), health)
	dst.DrawTextColor(4, 0, hearts, core.ColorBrightRed)
	dst.DrawTextColor(4+health, 0, strings.Repeat(string(HeartEmpty), empty), core.ColorGray)

	stats := fmt.Sprintf("Score: %d  Level: %d", g.world.Score(), g.world.Level())
	dst.DrawTextColor(6+health+empty, 0, stats, core.ColorWhite)

	high := fmt.Sprintf("High: %d", g.world.HighScore())
	dst.DrawTextColor(dst.Width()-utf8.RuneCountInString(high)-1, 0, high, core.ColorYellow)
}

// drawCenteredBox draws a framed message box in the center of the screen.
func drawCenteredBox(dst *core.Screen, lines []string) {
	width := 0
	for _, l := range lines {
		width = max(width, utf8.RuneCountInString(l))
	}

	boxW := width + 4
	boxH := len(lines) + 2
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2
	box := core.NewRect(boxX, boxY, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)

	for i, l := range lines {
		x := boxX + (boxW-utf8.RuneCountInString(l))/2
		dst.DrawTextColor(x, boxY+1+i, l, core.ColorWhite)
	}
}

// viewport maps world units onto terminal cells below the HUD row.
type viewport struct {
	fieldW, fieldH int
	cols, rows     int
}

func newViewport(w *World, cols, rows int) viewport {
	fieldW, fieldH := w.Field()
	return viewport{fieldW: fieldW, fieldH: fieldH, cols: cols, rows: rows}
}

// project converts a world rectangle to screen cells. Anything visible
// covers at least one cell; rows above the field are clipped off.
func (v viewport) project(r core.Rect) core.Rect {
	x := floorDiv(r.X*v.cols, v.fieldW)
	y := floorDiv(r.Y*v.rows, v.fieldH) + 1
	w := max(r.W*v.cols/v.fieldW, 1)
	h := max(r.H*v.rows/v.fieldH, 1)

	if y < 1 {
		h -= 1 - y
		y = 1
	}
	if h <= 0 {
		return core.Rect{}
	}
	return core.NewRect(x, y, w, h)
}

// floorDiv divides rounding toward negative infinity, so entities partly
// above or left of the field stay off-screen.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func init() {
	registry.Register(GameID, "Tank Shooter", func(opts registry.Options) (registry.Game, error) {
		g, err := New(opts)
		if err != nil {
			return nil, err
		}
		return g, nil
	})
}
