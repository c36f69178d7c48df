package world

import (
	"math"
	"testing"

	"github.com/harbdog/raycaster-go/geom"

	"raycasino/engine"
	"raycasino/model"
)

func TestDamageTint(t *testing.T) {
	if _, ok := DamageTint(0); ok {
		t.Fatalf("tint with no flash")
	}
	c, ok := DamageTint(1)
	if !ok || c.R != 200 || c.A != 114 {
		t.Fatalf("tint = %+v, capped alpha should be 114", c)
	}
	if c, _ := DamageTint(0.2); c.A != 51 {
		t.Fatalf("alpha = %d, want 51", c.A)
	}
}

func sceneState(t *testing.T) (*State, *engine.Renderer) {
	t.Helper()
	s := New(roomMap(t, 12, 12), []model.Table{
		{Position: geom.Vector2{X: 6.5, Y: 3.5}, Radius: 0.3, Kind: model.TableSlots, Name: "Slot Machine", Color: "#FFD700"},
	}, DefaultConfig())
	s.Enemies = nil
	return s, engine.NewRenderer(s.Grid, engine.LogicalWidth, engine.LogicalHeight)
}

func TestRenderSceneDrawsTables(t *testing.T) {
	s, r := sceneState(t)
	s.RenderScene(r, nil)

	c := r.Frame.RGBAAt(engine.LogicalWidth/2, engine.LogicalHeight/2)
	if c.B != 0 || c.R <= c.G || c.G == 0 {
		t.Fatalf("centre pixel %+v is not the gold table", c)
	}
}

func TestRenderSceneDamageTint(t *testing.T) {
	s, r := sceneState(t)
	s.RenderScene(r, nil)
	clean := r.Frame.RGBAAt(0, 0)

	s.DamageFlash = 1
	s.RenderScene(r, nil)
	hurt := r.Frame.RGBAAt(0, 0)
	if hurt.R <= clean.R || hurt.G >= clean.G || hurt.B >= clean.B {
		t.Fatalf("tint did not redden: %+v -> %+v", clean, hurt)
	}
}

func TestLookDownRaisesHorizon(t *testing.T) {
	s, _ := sceneState(t)
	centre := engine.Horizon(engine.LogicalHeight, 0)

	// ten pixels of downward mouse motion
	s.Update(0.01, Input{Captured: true, LookY: 10})
	if math.Abs(s.Player.Pitch-0.02) > 1e-9 {
		t.Fatalf("pitch = %v, want 0.02", s.Player.Pitch)
	}
	if h := engine.Horizon(engine.LogicalHeight, s.Player.Pitch); h >= centre {
		t.Fatalf("horizon = %d, want above centre %d", h, centre)
	}

	s.Update(0.01, Input{Captured: true, LookY: -20})
	if h := engine.Horizon(engine.LogicalHeight, s.Player.Pitch); h <= centre {
		t.Fatalf("horizon = %d after looking up, want below centre %d", h, centre)
	}
}
