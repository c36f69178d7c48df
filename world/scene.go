package world

import (
	"image"
	"image/color"
	"math"

	"raycasino/engine"
	"raycasino/model"
)

// EnemyTint is the flat colour of an enemy with no sprite.
var EnemyTint = color.RGBA{0xc4, 0x40, 0x40, 0xff}

const maxDamageTint = 0.45

func (s *State) View() engine.View {
	p := s.Player
	return engine.View{
		X:     p.Position.X,
		Y:     p.Position.Y,
		Angle: p.Angle,
		Pitch: p.Pitch,
		FOV:   p.FOV,
	}
}

// Billboards lists every table and enemy sprite. enemyTex may be nil.
func (s *State) Billboards(enemyTex image.Image) []engine.Billboard {
	out := make([]engine.Billboard, 0, len(s.Tables)+len(s.Enemies))
	for _, t := range s.Tables {
		out = append(out, engine.Billboard{
			X:     t.Position.X,
			Y:     t.Position.Y,
			Scale: model.TableScale,
			Tint:  t.RGBA(),
		})
	}
	for _, e := range s.Enemies {
		out = append(out, engine.Billboard{
			X:       e.Position.X,
			Y:       e.Position.Y,
			Scale:   e.Scale,
			Tint:    EnemyTint,
			Texture: enemyTex,
		})
	}
	return out
}

// DamageTint is the overlay colour at the given flash time, or false when
// there is nothing to draw.
func DamageTint(flash float64) (color.NRGBA, bool) {
	if flash <= 0 {
		return color.NRGBA{}, false
	}
	a := math.Min(maxDamageTint, flash)
	return color.NRGBA{R: 200, A: uint8(a * 255)}, true
}

// RenderScene draws walls, billboards and the damage tint across the whole frame.
func (s *State) RenderScene(r *engine.Renderer, enemyTex image.Image) {
	w, h := r.Frame.Width, r.Frame.Height
	v := s.View()
	r.Begin()
	r.RenderViewport(v, 0, w, h)
	r.RenderBillboards(v, s.Billboards(enemyTex), 0, w, h)
	if c, ok := DamageTint(s.DamageFlash); ok {
		r.Frame.Tint(c)
	}
}
