package registry

import (
	"testing"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

type stubGame struct {
	path, preset string
}

func (g *stubGame) ID() string                           { return "stub" }
func (g *stubGame) Title() string                        { return "Stub" }
func (g *stubGame) Reset(core.RuntimeConfig)             {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                  {}
func (g *stubGame) State() core.GameState                { return core.GameState{} }
func (g *stubGame) Checksum() uint64                     { return 42 }
func (g *stubGame) SetConfigPath(p string)               { g.path = p }
func (g *stubGame) SetDifficulty(p string)               { g.preset = p }

// bareGame implements only Game.
type bareGame struct{}

func (bareGame) ID() string                           { return "bare" }
func (bareGame) Title() string                        { return "Bare" }
func (bareGame) Reset(core.RuntimeConfig)             {}
func (bareGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (bareGame) Render(*core.Screen)                  {}
func (bareGame) State() core.GameState                { return core.GameState{} }

func TestRegisterCreateList(t *testing.T) {
	Register("zz-stub", func() Game { return &stubGame{} })

	if !Exists("zz-stub") {
		t.Fatal("registered game should exist")
	}
	g, err := Create("zz-stub")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.Title() != "Stub" {
		t.Errorf("Title = %q", g.Title())
	}

	found := false
	for _, info := range List() {
		if info.ID == "zz-stub" && info.Title == "Stub" {
			found = true
		}
	}
	if !found {
		t.Error("List should include the registered game")
	}

	if _, err := Create("nope"); err == nil {
		t.Error("unknown game should fail")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz-dup", func() Game { return &stubGame{} })
	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("zz-dup", func() Game { return &stubGame{} })
}

func TestOptionalInterfaces(t *testing.T) {
	g := &stubGame{}
	if sum, ok := Checksum(g); !ok || sum != 42 {
		t.Errorf("Checksum = %d, %v", sum, ok)
	}
	if !Configure(g, "/tmp/x.yaml", "hard") {
		t.Fatal("stub should be configurable")
	}
	if g.path != "/tmp/x.yaml" || g.preset != "hard" {
		t.Errorf("Configure did not apply: %+v", g)
	}

	b := bareGame{}
	if _, ok := Checksum(b); ok {
		t.Error("bare game should not provide a checksum")
	}
	if Configure(b, "x", "y") {
		t.Error("bare game should not be configurable")
	}
}
