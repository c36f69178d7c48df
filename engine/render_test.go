package engine

import (
	"image"
	"image/color"
	"math"
	"testing"
)

func TestRenderViewportFillsDepth(t *testing.T) {
	g := boxGrid(8, 8)
	r := NewRenderer(g, 64, 36)
	r.Begin()

	v := View{X: 1.5, Y: 1.5, Angle: 0, FOV: math.Pi / 3}
	r.RenderViewport(v, 0, 64, 36)

	for col := 0; col < 64; col++ {
		d := r.Depth.At(col)
		if math.IsInf(d, 1) || d <= 0 {
			t.Fatalf("column %d depth = %v", col, d)
		}
	}
}

func TestRenderViewportFisheyeCorrection(t *testing.T) {
	g := boxGrid(8, 8)
	const width = 40
	r := NewRenderer(g, width, 30)
	r.Begin()

	v := View{X: 3.5, Y: 3.5, Angle: 0.1, FOV: math.Pi / 3}
	r.RenderViewport(v, 0, width, 30)

	step := v.FOV / width
	for col := 0; col < width; col++ {
		rayAngle := v.Angle - v.FOV/2 + float64(col)*step
		raw := Cast(g, v.X, v.Y, rayAngle).Distance
		want := raw * math.Cos(rayAngle-v.Angle)
		if math.Abs(r.Depth.At(col)-want) > 1e-9 {
			t.Fatalf("column %d depth = %v, want %v", col, r.Depth.At(col), want)
		}
	}

	// The centre column looks straight ahead, so no correction applies.
	center := width / 2
	raw := Cast(g, v.X, v.Y, v.Angle).Distance
	if math.Abs(r.Depth.At(center)-raw) > 1e-9 {
		t.Fatalf("centre depth = %v, want raw %v", r.Depth.At(center), raw)
	}
}

func TestRenderViewportSkyAndGround(t *testing.T) {
	g := boxGrid(8, 32)
	r := NewRenderer(g, 16, 100)
	r.Begin()
	r.RenderViewport(View{X: 1.5, Y: 16.5, Angle: 0, FOV: math.Pi / 3}, 0, 16, 100)

	if got := r.Frame.RGBAAt(0, 0); got != DefaultSky {
		t.Fatalf("top pixel = %v, want sky", got)
	}
	if got := r.Frame.RGBAAt(0, 99); got != DefaultGround {
		t.Fatalf("bottom pixel = %v, want ground", got)
	}
	mid := r.Frame.RGBAAt(8, 50)
	if mid.R != mid.G || mid.G != mid.B || mid.R == 0 {
		t.Fatalf("wall pixel = %v, want non-black grayscale", mid)
	}
}

func TestWallShade(t *testing.T) {
	if WallShade(0, SideVertical) != 210 || WallShade(0, SideHorizontal) != 180 {
		t.Fatalf("base brightness mismatch")
	}
	if WallShade(6, SideVertical) != 105 {
		t.Fatalf("half distance shade = %d, want 105", WallShade(6, SideVertical))
	}
	if WallShade(20, SideHorizontal) != 0 {
		t.Fatalf("far wall should be black")
	}
}

func TestHorizonShiftsWithPitch(t *testing.T) {
	if Horizon(180, 0) != 90 {
		t.Fatalf("level horizon = %d", Horizon(180, 0))
	}
	if Horizon(180, 0.5) != 30 {
		t.Fatalf("pitched horizon = %d, want 30", Horizon(180, 0.5))
	}
}

func TestProjectCulling(t *testing.T) {
	v := View{X: 0, Y: 0, Angle: 0, FOV: math.Pi / 3}

	tests := []struct {
		name   string
		x, y   float64
		wantOK bool
	}{
		{"ahead", 4, 0, true},
		{"behind", -4, 0, false},
		{"inside margin", 4 * math.Cos(v.FOV/2+0.1), 4 * math.Sin(v.FOV/2+0.1), true},
		{"outside margin", 4 * math.Cos(v.FOV/2+0.3), 4 * math.Sin(v.FOV/2+0.3), false},
		{"on viewer", 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := Project(v, Billboard{X: tt.x, Y: tt.y, Scale: 1}, 0, 320, 180)
			if ok != tt.wantOK {
				t.Fatalf("visible = %v, want %v", ok, tt.wantOK)
			}
		})
	}
}

func TestProjectSizing(t *testing.T) {
	v := View{FOV: math.Pi / 3}
	p, ok := Project(v, Billboard{X: 2, Y: 0, Scale: 0.5}, 0, 320, 180)
	if !ok {
		t.Fatalf("billboard culled")
	}
	if p.Size != 45 {
		t.Fatalf("size = %d, want 45", p.Size)
	}
	if p.CenterX != 160 {
		t.Fatalf("centre = %d, want 160", p.CenterX)
	}

	near, _ := Project(v, Billboard{X: 0.1, Y: 0, Scale: 1}, 0, 320, 180)
	if near.Size != 180 {
		t.Fatalf("near size = %d, want clamp to 180", near.Size)
	}
}

func TestBillboardOcclusion(t *testing.T) {
	r := &Renderer{Frame: NewFrame(20, 20), Depth: NewDepthBuffer(20)}
	r.Begin()
	for col := 0; col < 20; col++ {
		if col < 10 {
			r.Depth.Set(col, 1)
		} else {
			r.Depth.Set(col, 100)
		}
	}

	v := View{FOV: math.Pi / 3}
	b := Billboard{X: 2, Y: 0, Scale: 1, Tint: color.RGBA{200, 0, 0, 255}}
	p, ok := Project(v, b, 0, 20, 20)
	if !ok {
		t.Fatalf("billboard culled")
	}
	r.RenderBillboards(v, []Billboard{b}, 0, 20, 20)

	row := p.Top + p.Size/2
	for col := p.Left; col <= p.Right; col++ {
		if col < 0 || col >= 20 {
			continue
		}
		drawn := r.Frame.RGBAAt(col, row).R > 0
		want := p.Corrected < r.Depth.At(col)
		if drawn != want {
			t.Fatalf("column %d drawn = %v, want %v", col, drawn, want)
		}
	}
}

func TestBillboardsCompositeFarToNear(t *testing.T) {
	r := &Renderer{Frame: NewFrame(40, 40), Depth: NewDepthBuffer(40)}
	r.Begin()
	v := View{FOV: math.Pi / 3}

	near := Billboard{X: 2, Y: 0, Scale: 1, Tint: color.RGBA{0, 250, 0, 255}}
	far := Billboard{X: 4, Y: 0, Scale: 1, Tint: color.RGBA{250, 0, 0, 255}}
	r.RenderBillboards(v, []Billboard{near, far}, 0, 40, 40)

	c := r.Frame.RGBAAt(20, 20)
	if c.G == 0 || c.R != 0 {
		t.Fatalf("centre pixel = %v, want the near billboard", c)
	}
}

func TestBillboardTextureSkipsTransparent(t *testing.T) {
	tex := image.NewRGBA(image.Rect(0, 0, 2, 2))
	tex.Set(0, 0, color.RGBA{0, 0, 255, 255})
	tex.Set(0, 1, color.RGBA{0, 0, 255, 255})

	r := &Renderer{Frame: NewFrame(40, 40), Depth: NewDepthBuffer(40)}
	r.Begin()
	bg := color.RGBA{9, 9, 9, 255}
	r.Frame.FillRect(0, 0, 40, 40, bg)

	v := View{FOV: math.Pi / 3}
	b := Billboard{X: 2, Y: 0, Scale: 1, Texture: tex}
	p, _ := Project(v, b, 0, 40, 40)
	r.RenderBillboards(v, []Billboard{b}, 0, 40, 40)

	row := p.Top + p.Size/2
	if got := r.Frame.RGBAAt(p.Left, row); got.B != 255 {
		t.Fatalf("left slice = %v, want texture blue", got)
	}
	if got := r.Frame.RGBAAt(p.Right-1, row); got != bg {
		t.Fatalf("right slice = %v, want background", got)
	}
}

func TestDepthBufferResetAndBounds(t *testing.T) {
	d := NewDepthBuffer(4)
	d.Set(2, 3)
	d.Reset()
	for i := 0; i < d.Len(); i++ {
		if !math.IsInf(d.At(i), 1) {
			t.Fatalf("column %d = %v after reset", i, d.At(i))
		}
	}
	d.Set(10, 1)
	if d.Visible(-1, 0.5) || d.Visible(4, 0.5) {
		t.Fatalf("out of range columns must be occluded")
	}
}
