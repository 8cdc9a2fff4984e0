package window

import (
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/invaders/internal/core"
)

type stubGame struct {
	inputs []core.InputFrame
}

func (g *stubGame) ID() string                { return "stub" }
func (g *stubGame) Title() string             { return "Stub" }
func (g *stubGame) Reset()                    {}
func (g *stubGame) Playfield() (int, int)     { return 800, 600 }
func (g *stubGame) FrameDelay() time.Duration { return 30 * time.Millisecond }
func (g *stubGame) State() core.GameState     { return core.GameState{} }
func (g *stubGame) Render(dst core.Canvas)    {}
func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	g.inputs = append(g.inputs, in)
	return core.StepResult{}
}

func TestSampleKeys(t *testing.T) {
	held := map[ebiten.Key]bool{
		ebiten.KeyA:       true,
		ebiten.KeySpace:   true,
		ebiten.KeyArrowUp: true,
	}

	g := &stubGame{}
	w := New(g, log.New(io.Discard))
	w.clock = core.NewManualClock(500)
	w.pressed = func(k ebiten.Key) bool { return held[k] }

	if err := w.Update(); err != nil {
		t.Fatalf("Update() failed: %v", err)
	}

	if len(g.inputs) != 1 {
		t.Fatalf("expected one step, got %d", len(g.inputs))
	}
	want := core.NewKeySet(core.KeyUp, core.KeyLeft, core.KeyFire)
	if g.inputs[0].Keys != want {
		t.Errorf("keys = %v, expected %v", g.inputs[0].Keys, want)
	}
	if g.inputs[0].Now != 500 {
		t.Errorf("now = %d, expected 500", g.inputs[0].Now)
	}
}

func TestLayoutIsPlayfield(t *testing.T) {
	w := New(&stubGame{}, log.New(io.Discard))

	gotW, gotH := w.Layout(1920, 1080)
	if gotW != 800 || gotH != 600 {
		t.Errorf("Layout() = %dx%d, expected 800x600", gotW, gotH)
	}
}

func TestToRGBA(t *testing.T) {
	got := toRGBA(core.ColorYellow)
	if got.R != 255 || got.G != 255 || got.B != 0 || got.A != 255 {
		t.Errorf("toRGBA(yellow) = %+v", got)
	}
}
