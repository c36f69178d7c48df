package main

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/harbdog/raycaster-go/geom"

	"raycasino/engine"
	"raycasino/world"
)

const recoilKick = 15.0

var (
	muzzleColor = color.NRGBA{255, 220, 120, 230}
	gunColor    = color.NRGBA{60, 60, 70, 255}
)

// Gun draws the first-person weapon over the scene.
type Gun struct {
	asset *engine.Asset
	img   *ebiten.Image
	scale float64
}

func NewGun(asset *engine.Asset, scale float64) *Gun {
	return &Gun{asset: asset, scale: scale}
}

// texture uploads the decoded sprite on first use. It stays nil until the
// asset has loaded.
func (g *Gun) texture() *ebiten.Image {
	if g.img == nil {
		if src := g.asset.Image(); src != nil {
			g.img = ebiten.NewImageFromImage(src)
		}
	}
	return g.img
}

func (g *Gun) Draw(screen *ebiten.Image, snap world.Snapshot) {
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	recoil := math.Sin(geom.Clamp(snap.GunRecoil, 0, 1)*math.Pi) * recoilKick * g.scale

	// weapon should only take up 1/3rd of screen space
	target := float64(sh) / 3
	var w, h float64
	if img := g.texture(); img != nil {
		iw, ih := img.Bounds().Dx(), img.Bounds().Dy()
		drawScale := target / float64(ih)
		w, h = float64(iw)*drawScale, target

		op := &ebiten.DrawImageOptions{}
		op.Filter = ebiten.FilterNearest
		op.GeoM.Scale(drawScale, drawScale)
		op.GeoM.Translate(float64(sw)/2-w/2, float64(sh)-h+recoil)
		screen.DrawImage(img, op)
	} else {
		w, h = target/2, target
		vector.DrawFilledRect(screen,
			float32(float64(sw)/2-w/4), float32(float64(sh)-h*0.8+recoil),
			float32(w/2), float32(h*0.8), gunColor, false)
	}

	if snap.GunFlash > 0 {
		cx := float32(sw) / 2
		cy := float32(float64(sh) - h + recoil)
		vector.DrawFilledCircle(screen, cx, cy, float32(6*g.scale), muzzleColor, true)
		tint := color.NRGBA{255, 220, 120, uint8(math.Min(0.25, snap.GunFlash*3) * 255)}
		vector.DrawFilledRect(screen, 0, 0, float32(sw), float32(sh), tint, false)
	}
}
