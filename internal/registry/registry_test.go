package registry

import (
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

type stubGame struct{ id string }

func (g *stubGame) ID() string { return g.id }
func (g *stubGame) Title() string { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig) {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Resize(int, int) {}
func (g *stubGame) Render(*core.Screen) {}
func (g *stubGame) State() core.GameState { return core.GameState{} }

func TestRegisterCreateList(t *testing.T) {
	Register("zz_stub_b", func() Game { return &stubGame{id: "zz_stub_b"} })
	Register("zz_stub_a", func() Game { return &stubGame{id: "zz_stub_a"} })

	if !Exists("zz_stub_a") {
		t.Fatal("Exists(zz_stub_a) = false, expected true")
	}

	g, err := Create("zz_stub_b")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "zz_stub_b" {
		t.Errorf("Create() returned %q", g.ID())
	}

	if _, err := Create("missing"); err == nil {
		t.Error("Create(missing) should fail")
	}

	var ids []string
	for _, info := range List() {
		ids = append(ids, info.ID)
	}
	ia, ib := indexOf(ids, "zz_stub_a"), indexOf(ids, "zz_stub_b")
	if ia < 0 || ib < 0 || ia > ib {
		t.Errorf("List() = %v, expected sorted stubs", ids)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz_dup", func() Game { return &stubGame{id: "zz_dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("zz_dup", func() Game { return &stubGame{id: "zz_dup"} })
}

func indexOf(xs []string, s string) int {
	for i, x := range xs {
		if x == s {
			return i
		}
	}
	return -1
}
