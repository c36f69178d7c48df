package engine

import (
	"image"
	"image/color"
)

const (
	// LogicalWidth and LogicalHeight are the fixed render resolution the
	// display layer scales to fit the window.
	LogicalWidth  = 320
	LogicalHeight = 180
)

// Frame is an RGBA pixel buffer. Pix holds 4 bytes per pixel, row-major.
type Frame struct {
	Pix    []byte
	Width  int
	Height int
}

func NewFrame(width, height int) *Frame {
	return &Frame{
		Pix:    make([]byte, width*height*4),
		Width:  width,
		Height: height,
	}
}

func (f *Frame) ColorModel() color.Model {
	return color.RGBAModel
}

func (f *Frame) Bounds() image.Rectangle {
	return image.Rect(0, 0, f.Width, f.Height)
}

func (f *Frame) At(x, y int) color.Color {
	return f.RGBAAt(x, y)
}

func (f *Frame) RGBAAt(x, y int) color.RGBA {
	if x < 0 || x >= f.Width || y < 0 || y >= f.Height {
		return color.RGBA{}
	}
	i := (y*f.Width + x) * 4
	return color.RGBA{f.Pix[i], f.Pix[i+1], f.Pix[i+2], f.Pix[i+3]}
}

func (f *Frame) Set(x, y int, c color.Color) {
	f.SetRGBA(x, y, color.RGBAModel.Convert(c).(color.RGBA))
}

func (f *Frame) SetRGBA(x, y int, c color.RGBA) {
	if x < 0 || x >= f.Width || y < 0 || y >= f.Height {
		return
	}
	i := (y*f.Width + x) * 4
	f.Pix[i] = c.R
	f.Pix[i+1] = c.G
	f.Pix[i+2] = c.B
	f.Pix[i+3] = c.A
}

// FillRect fills the rectangle at (x, y) clipped to the frame.
func (f *Frame) FillRect(x, y, width, height int, c color.RGBA) {
	r := image.Rect(x, y, x+width, y+height).Intersect(f.Bounds())
	for py := r.Min.Y; py < r.Max.Y; py++ {
		for px := r.Min.X; px < r.Max.X; px++ {
			f.SetRGBA(px, py, c)
		}
	}
}

// VLine fills a one pixel wide column of the given height starting at y.
func (f *Frame) VLine(x, y, height int, c color.RGBA) {
	f.FillRect(x, y, 1, height, c)
}

// Blend composites c over the pixel at (x, y).
func (f *Frame) Blend(x, y int, c color.Color) {
	src := color.RGBAModel.Convert(c).(color.RGBA)
	if src.A == 0 {
		return
	}
	if src.A == 0xff {
		f.SetRGBA(x, y, src)
		return
	}
	dst := f.RGBAAt(x, y)
	inv := 255 - uint32(src.A)
	f.SetRGBA(x, y, color.RGBA{
		R: uint8(uint32(src.R) + uint32(dst.R)*inv/255),
		G: uint8(uint32(src.G) + uint32(dst.G)*inv/255),
		B: uint8(uint32(src.B) + uint32(dst.B)*inv/255),
		A: uint8(uint32(src.A) + uint32(dst.A)*inv/255),
	})
}

// Tint blends c over the whole frame.
func (f *Frame) Tint(c color.Color) {
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			f.Blend(x, y, c)
		}
	}
}

func (f *Frame) Clear() {
	for i := range f.Pix {
		f.Pix[i] = 0
	}
}
