package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-tank/internal/core"
)

type stubGame struct{ id string }

func (g stubGame) ID() string                           { return g.id }
func (g stubGame) Title() string                        { return "Stub" }
func (g stubGame) Reset(core.RuntimeConfig)             {}
func (g stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g stubGame) Render(*core.Screen)                  {}
func (g stubGame) State() core.GameState                { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("stub-a", "Stub A", func(Options) (Game, error) { return stubGame{id: "stub-a"}, nil })

	if !Exists("stub-a") || Exists("missing") {
		t.Error("Exists() reported wrong membership")
	}

	g, err := Create("stub-a", Options{})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if g.ID() != "stub-a" {
		t.Errorf("created %q, expected stub-a", g.ID())
	}
}

func TestCreateErrors(t *testing.T) {
	if _, err := Create("missing", Options{}); err == nil {
		t.Error("expected error for unknown game")
	}

	boom := errors.New("boom")
	Register("stub-broken", "Broken", func(Options) (Game, error) { return nil, boom })
	if _, err := Create("stub-broken", Options{}); !errors.Is(err, boom) {
		t.Errorf("Create() error = %v, expected wrapped factory error", err)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub-dup", "Dup", func(Options) (Game, error) { return stubGame{}, nil })

	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	Register("stub-dup", "Dup", func(Options) (Game, error) { return stubGame{}, nil })
}
