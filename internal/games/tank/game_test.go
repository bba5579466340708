package tank

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-tank/internal/config"
	"github.com/vovakirdan/tui-tank/internal/core"
	"github.com/vovakirdan/tui-tank/internal/highscore"
	"github.com/vovakirdan/tui-tank/internal/registry"
)

type memoryHistory struct {
	runs []core.RunRecord
	err  error
}

func (h *memoryHistory) RecordRun(run core.RunRecord) error {
	if h.err != nil {
		return h.err
	}
	h.runs = append(h.runs, run)
	return nil
}

type failingStore struct {
	score int
	saves int
}

func (s *failingStore) Load() (int, error) { return s.score, nil }

func (s *failingStore) Save(int) error {
	s.saves++
	return errors.New("disk full")
}

func newTestGame(t *testing.T, opts registry.Options) *Game {
	t.Helper()
	g := NewWithConfig(config.DefaultTankConfig(), opts)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: core.DefaultTickRate, Seed: 1})
	return g
}

func frameWith(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// forceGameOver puts one enemy on top of a player with one health left.
func forceGameOver(g *Game, score int) core.StepResult {
	w := g.World()
	w.player.Health = 1
	w.score = score
	w.enemies = append(w.enemies, enemyAt(w.player.X, w.player.Y-20))
	return g.Step(core.NewInputFrame())
}

func TestGameMetadata(t *testing.T) {
	g := NewWithConfig(config.DefaultTankConfig(), registry.Options{})
	if g.ID() != "tank" {
		t.Errorf("ID() = %q, expected %q", g.ID(), "tank")
	}
	if g.Title() != "Tank Shooter" {
		t.Errorf("Title() = %q, expected %q", g.Title(), "Tank Shooter")
	}
}

func TestRegistryCreatesTank(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	if !registry.Exists(GameID) {
		t.Fatal("tank game not registered")
	}
	g, err := registry.Create(GameID, registry.Options{Difficulty: "hard"})
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.Title() != "Tank Shooter" {
		t.Errorf("Title() = %q", g.Title())
	}

	if _, err := registry.Create(GameID, registry.Options{Difficulty: "insane"}); err == nil {
		t.Error("expected error for unknown difficulty")
	}
}

func TestResetLoadsHighScore(t *testing.T) {
	store := highscore.NewFileStore(filepath.Join(t.TempDir(), "highscore.txt"))
	if err := store.Save(2500); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	g := newTestGame(t, registry.Options{HighScores: store})
	if got := g.State().HighScore; got != 2500 {
		t.Errorf("HighScore = %d, expected 2500", got)
	}
}

func TestResetWithBrokenHighScoreFile(t *testing.T) {
	store := highscore.NewFileStore(filepath.Join(t.TempDir(), "missing", "highscore.txt"))

	g := newTestGame(t, registry.Options{HighScores: store})
	if got := g.State().HighScore; got != 0 {
		t.Errorf("HighScore = %d, expected 0", got)
	}
}

func TestStepFireCount(t *testing.T) {
	g := newTestGame(t, registry.Options{})

	in := frameWith(core.ActionFire, core.ActionFire, core.ActionFire)
	result := g.Step(in)

	if n := len(g.World().Projectiles()); n != 3 {
		t.Errorf("expected 3 projectiles, got %d", n)
	}
	fires := 0
	for _, c := range result.Cues {
		if c == core.CueFire {
			fires++
		}
	}
	if fires != 3 {
		t.Errorf("expected 3 fire cues, got %d", fires)
	}
}

func TestStepSteering(t *testing.T) {
	g := newTestGame(t, registry.Options{})

	g.Step(frameWith(core.ActionRight))
	if d := g.World().Player().Direction; d != 1 {
		t.Fatalf("direction = %d after right, expected 1", d)
	}

	g.Step(frameWith(core.ActionStop))
	if d := g.World().Player().Direction; d != 0 {
		t.Errorf("direction = %d after stop, expected 0", d)
	}

	g.Step(frameWith(core.ActionLeft, core.ActionRight))
	if d := g.World().Player().Direction; d != 0 {
		t.Errorf("direction = %d with both keys, expected 0", d)
	}
}

func TestStepSynthesizedRelease(t *testing.T) {
	g := newTestGame(t, registry.Options{})
	release := g.cfg.Input.ReleaseTicks

	g.Step(frameWith(core.ActionLeft))
	for i := 1; i < release; i++ {
		g.Step(core.NewInputFrame())
		if d := g.World().Player().Direction; d != -1 {
			t.Fatalf("released early after %d idle ticks", i)
		}
	}

	g.Step(core.NewInputFrame())
	if d := g.World().Player().Direction; d != 0 {
		t.Errorf("direction = %d after %d idle ticks, expected release", d, release)
	}
}

func TestStepRepeatKeepsDirectionHeld(t *testing.T) {
	g := newTestGame(t, registry.Options{})
	release := g.cfg.Input.ReleaseTicks

	for i, n := 0, release*3; i < n; i++ {
		in := core.NewInputFrame()
		if i%(release-1) == 0 {
			in.Set(core.ActionRight)
		}
		g.Step(in)
		if d := g.World().Player().Direction; d != 1 {
			t.Fatalf("tick %d: direction = %d, key repeat should keep it held", i, d)
		}
	}
}

func TestStepReleaseDisabled(t *testing.T) {
	cfg := config.DefaultTankConfig()
	cfg.Input.ReleaseTicks = 0
	g := NewWithConfig(cfg, registry.Options{})
	g.Reset(core.RuntimeConfig{Seed: 1})

	g.Step(frameWith(core.ActionRight))
	for i := 0; i < 100; i++ {
		g.Step(core.NewInputFrame())
	}
	if d := g.World().Player().Direction; d != 1 {
		t.Errorf("direction = %d, expected held without release", d)
	}
}

func TestStepPause(t *testing.T) {
	g := newTestGame(t, registry.Options{})

	result := g.Step(frameWith(core.ActionPause))
	if !result.State.Paused {
		t.Fatal("expected paused state")
	}
	ticks := g.World().Ticks()

	g.Step(frameWith(core.ActionFire, core.ActionRight))
	if g.World().Ticks() != ticks || len(g.World().Projectiles()) != 0 {
		t.Error("world advanced while paused")
	}

	result = g.Step(frameWith(core.ActionPause))
	if result.State.Paused {
		t.Error("expected unpaused state")
	}
	if g.World().Ticks() != ticks+1 {
		t.Errorf("ticks = %d, expected %d after resume", g.World().Ticks(), ticks+1)
	}
}

func TestGameOverPersistsNewRecord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "highscore.txt")
	store := highscore.NewFileStore(path)
	if err := store.Save(300); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	history := &memoryHistory{}

	g := newTestGame(t, registry.Options{HighScores: store, History: history})
	result := forceGameOver(g, 800)

	if !result.State.GameOver {
		t.Fatal("expected game over")
	}
	if !result.State.NewRecord {
		t.Error("expected the state to report a new record")
	}
	if got, err := store.Load(); err != nil || got != 800 {
		t.Errorf("stored high score = %d (%v), expected 800", got, err)
	}
	if len(history.runs) != 1 {
		t.Fatalf("expected 1 recorded run, got %d", len(history.runs))
	}
	run := history.runs[0]
	if run.GameID != "tank" || run.Score != 800 || !run.NewRecord || run.Seed != 1 {
		t.Errorf("recorded run = %+v", run)
	}

	hasCue := false
	for _, c := range result.Cues {
		if c == core.CueGameOver {
			hasCue = true
		}
	}
	if !hasCue {
		t.Error("expected game over cue")
	}

	// Further steps neither tick nor persist again
	g.Step(frameWith(core.ActionFire))
	if len(history.runs) != 1 {
		t.Errorf("run recorded again after game over")
	}
}

func TestGameOverKeepsHigherStoredScore(t *testing.T) {
	store := highscore.NewFileStore(filepath.Join(t.TempDir(), "highscore.txt"))
	if err := store.Save(5000); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	g := newTestGame(t, registry.Options{HighScores: store})
	result := forceGameOver(g, 200)

	if result.State.HighScore != 5000 {
		t.Errorf("HighScore = %d, expected 5000", result.State.HighScore)
	}
	if result.State.NewRecord {
		t.Error("lower score reported as a new record")
	}
	if got, _ := store.Load(); got != 5000 {
		t.Errorf("stored high score = %d, expected 5000", got)
	}
}

func TestGameOverTyingStoredScoreIsNotRecord(t *testing.T) {
	store := &failingStore{score: 800}

	g := newTestGame(t, registry.Options{HighScores: store})
	result := forceGameOver(g, 800)

	if !result.State.GameOver {
		t.Fatal("expected game over")
	}
	if result.State.HighScore != 800 {
		t.Errorf("HighScore = %d, expected 800", result.State.HighScore)
	}
	if result.State.NewRecord || g.State().NewRecord {
		t.Error("tying the stored score reported as a new record")
	}
	if store.saves != 0 {
		t.Errorf("tie saved the high score %d times, expected none", store.saves)
	}
}

func TestGameOverSurvivesPersistenceFailure(t *testing.T) {
	store := &failingStore{score: 100}
	history := &memoryHistory{err: errors.New("db locked")}

	g := newTestGame(t, registry.Options{HighScores: store, History: history})
	result := forceGameOver(g, 400)

	if !result.State.GameOver {
		t.Fatal("expected game over despite persistence errors")
	}
	if store.saves != 1 {
		t.Errorf("expected one save attempt, got %d", store.saves)
	}
}

func TestRenderPlaying(t *testing.T) {
	g := newTestGame(t, registry.Options{})
	g.World().enemies = append(g.World().enemies, enemyAt(0, 100))
	g.Step(frameWith(core.ActionFire))

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	if !strings.Contains(screen.Row(0), "Score: 0") {
		t.Errorf("HUD missing score: %q", screen.Row(0))
	}
	if !strings.Contains(screen.Row(0), "High: 0") {
		t.Errorf("HUD missing high score: %q", screen.Row(0))
	}
	for _, r := range []rune{TankChar, EnemyChar, ProjectileChar, HeartFull} {
		if !strings.ContainsRune(out, r) {
			t.Errorf("rendered screen missing %q", r)
		}
	}

	// Player at world (400, 500) lands at column 40, row 1 + 500*23/600
	if c := screen.GetCell(40, 1+500*23/600); c.Rune != TankChar || c.Color != core.ColorBrightGreen {
		t.Errorf("player cell = %+v", c)
	}
}

func TestRenderGameOver(t *testing.T) {
	g := newTestGame(t, registry.Options{})
	forceGameOver(g, 600)

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	for _, want := range []string{"GAME OVER", "Score: 600", "High Score: 600", "NEW HIGH SCORE!"} {
		if !strings.Contains(out, want) {
			t.Errorf("game over screen missing %q", want)
		}
	}
}

func TestRenderPaused(t *testing.T) {
	g := newTestGame(t, registry.Options{})
	g.Step(frameWith(core.ActionPause))

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("paused screen missing message")
	}
}

func TestRenderTinyScreen(t *testing.T) {
	g := newTestGame(t, registry.Options{})
	for _, size := range [][2]int{{0, 0}, {1, 1}, {5, 2}} {
		screen := core.NewScreen(size[0], size[1])
		g.Render(screen) // Must not panic
	}
}

func TestViewportClipsAboveField(t *testing.T) {
	v := viewport{fieldW: 800, fieldH: 600, cols: 80, rows: 23}

	if r := v.project(core.NewRect(10, -100, 5, 10)); !r.Empty() {
		t.Errorf("rect above field projected to %+v", r)
	}
	r := v.project(core.NewRect(0, 0, 40, 40))
	if r.Y != 1 || r.X != 0 || r.W != 4 {
		t.Errorf("rect at origin projected to %+v", r)
	}
}
