package engine

import (
	"image"
	"image/color"
	"math"
)

const (
	// CullMargin widens the field of view when culling billboards so they do
	// not pop in at the screen edge.
	CullMargin = 0.2

	billboardFalloff = 10
	minBillboardDist = 1e-4
)

// Billboard is a camera-facing square sprite. Texture may be nil, in which
// case the billboard renders as a distance-shaded Tint.
type Billboard struct {
	X, Y    float64
	Scale   float64
	Tint    color.RGBA
	Texture image.Image
}

// Projection is a billboard's placement on screen.
type Projection struct {
	Distance  float64
	Corrected float64
	Bearing   float64
	Size      int
	CenterX   int
	Top       int
	Left      int
	Right     int
}

// Project places b in a viewport of width x height starting at xOffset.
// It reports false when the billboard is culled.
func Project(v View, b Billboard, xOffset, width, height int) (Projection, bool) {
	dx := b.X - v.X
	dy := b.Y - v.Y
	dist := math.Hypot(dx, dy)
	if dist < minBillboardDist {
		return Projection{}, false
	}

	rel := NormalizeAngle(math.Atan2(dy, dx) - v.Angle)
	if math.Abs(rel) > v.FOV/2+CullMargin {
		return Projection{}, false
	}

	corrected := dist * math.Cos(rel)
	if corrected <= 0 {
		return Projection{}, false
	}
	size := int(math.Min(float64(height), math.Floor(float64(height)/corrected*b.Scale)))
	centerX := int(math.Floor(float64(xOffset) + (rel/v.FOV+0.5)*float64(width)))
	top := int(math.Floor(float64(height-size)/2 - v.Pitch*PitchScale))

	return Projection{
		Distance:  dist,
		Corrected: corrected,
		Bearing:   rel,
		Size:      size,
		CenterX:   centerX,
		Top:       top,
		Left:      int(math.Floor(float64(centerX) - float64(size)/2)),
		Right:     int(math.Floor(float64(centerX) + float64(size)/2)),
	}, true
}

// BillboardShade scales c by distance the same way for every flat billboard.
func BillboardShade(c color.RGBA, corrected float64) color.RGBA {
	shade := math.Max(0, math.Min(1, 1-corrected/billboardFalloff))
	return color.RGBA{
		R: uint8(float64(c.R) * shade),
		G: uint8(float64(c.G) * shade),
		B: uint8(float64(c.B) * shade),
		A: 0xff,
	}
}

// RenderBillboards composites sprites far to near. A column of a billboard is
// drawn only where its corrected distance is nearer than the wall depth.
func (r *Renderer) RenderBillboards(v View, sprites []Billboard, xOffset, width, height int) {
	n := len(sprites)
	if n == 0 {
		return
	}

	order := make([]int, 0, n)
	dist := make([]float64, 0, n)
	projs := make([]Projection, n)
	for i, b := range sprites {
		p, ok := Project(v, b, xOffset, width, height)
		if !ok {
			continue
		}
		projs[i] = p
		order = append(order, i)
		dist = append(dist, p.Corrected)
	}
	combSort(order, dist, len(order))

	for _, i := range order {
		r.drawBillboard(sprites[i], projs[i], xOffset, width)
	}
}

func (r *Renderer) drawBillboard(b Billboard, p Projection, xOffset, width int) {
	if p.Size <= 0 {
		return
	}
	flat := BillboardShade(b.Tint, p.Corrected)

	var tb image.Rectangle
	if b.Texture != nil {
		tb = b.Texture.Bounds()
	}
	textured := b.Texture != nil && tb.Dx() > 0 && tb.Dy() > 0

	for sx := p.Left; sx <= p.Right; sx++ {
		if sx < xOffset || sx >= xOffset+width {
			continue
		}
		if !r.Depth.Visible(sx, p.Corrected) {
			continue
		}
		if !textured {
			r.Frame.VLine(sx, p.Top, p.Size, flat)
			continue
		}

		u := float64(sx-p.Left) / math.Max(1, float64(p.Size))
		srcX := tb.Min.X + int(math.Min(float64(tb.Dx()-1), math.Floor(u*float64(tb.Dx()))))
		for py := 0; py < p.Size; py++ {
			srcY := tb.Min.Y + py*tb.Dy()/p.Size
			r.Frame.Blend(sx, p.Top+py, b.Texture.At(srcX, srcY))
		}
	}
}

// combSort orders by descending distance so farther entries come first.
func combSort(order []int, dist []float64, amount int) {
	gap := amount
	swapped := false
	for gap > 1 || swapped {
		gap = (gap * 10) / 13
		if gap == 9 || gap == 10 {
			gap = 11
		}
		if gap < 1 {
			gap = 1
		}
		swapped = false
		for i := 0; i < amount-gap; i++ {
			j := i + gap
			if dist[i] < dist[j] {
				dist[i], dist[j] = dist[j], dist[i]
				order[i], order[j] = order[j], order[i]
				swapped = true
			}
		}
	}
}
