package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"raycasino/world"
)

var (
	crosshairColor = color.NRGBA{255, 255, 255, 200}
	hitColor       = color.NRGBA{255, 60, 60, 255}
)

// Crosshairs is a four-tick reticle that turns red while a hit registers.
type Crosshairs struct {
	size, gap, width float32
}

func NewCrosshairs(scale float64) *Crosshairs {
	s := float32(scale)
	return &Crosshairs{size: 4 * s, gap: 2 * s, width: s}
}

func (c *Crosshairs) IsHitIndicatorActive(snap world.Snapshot) bool {
	return snap.HitMarker > 0
}

func (c *Crosshairs) Draw(screen *ebiten.Image, snap world.Snapshot) {
	if snap.Mode.Mode == world.Paused {
		return
	}
	clr := crosshairColor
	if c.IsHitIndicatorActive(snap) {
		clr = hitColor
	}
	cx := float32(screen.Bounds().Dx()) / 2
	cy := float32(screen.Bounds().Dy()) / 2
	in, out := c.gap, c.gap+c.size

	vector.StrokeLine(screen, cx-out, cy, cx-in, cy, c.width, clr, false)
	vector.StrokeLine(screen, cx+in, cy, cx+out, cy, c.width, clr, false)
	vector.StrokeLine(screen, cx, cy-out, cx, cy-in, c.width, clr, false)
	vector.StrokeLine(screen, cx, cy+in, cx, cy+out, c.width, clr, false)
}
