package engine

import (
	"image/color"
	"math"
)

const (
	// PitchScale converts pitch radians into a vertical pixel shift.
	PitchScale = 120

	minWallDistance = 1e-4
	wallFalloff     = 12
	baseVertical    = 210
	baseHorizontal  = 180
)

var (
	DefaultSky    = color.RGBA{0x2a, 0x2f, 0x3a, 0xff}
	DefaultGround = color.RGBA{0x1a, 0x1c, 0x20, 0xff}
)

// View is the camera state a viewport pass renders from.
type View struct {
	X, Y  float64
	Angle float64
	Pitch float64
	FOV   float64
}

// Renderer draws walls and billboards into Frame and records wall depth.
// Walls are always drawn before billboards within a frame.
type Renderer struct {
	Frame  *Frame
	Depth  *DepthBuffer
	Grid   Grid
	Sky    color.RGBA
	Ground color.RGBA
}

func NewRenderer(grid Grid, width, height int) *Renderer {
	return &Renderer{
		Frame:  NewFrame(width, height),
		Depth:  NewDepthBuffer(width),
		Grid:   grid,
		Sky:    DefaultSky,
		Ground: DefaultGround,
	}
}

// Begin starts a frame. Depth from the previous frame is discarded.
func (r *Renderer) Begin() {
	r.Depth.Reset()
}

// Horizon is the screen row dividing sky from ground for the given pitch.
func Horizon(height int, pitch float64) int {
	return int(math.Floor(float64(height)/2 - pitch*PitchScale))
}

// CorrectDistance removes fisheye distortion from a raw ray distance.
func CorrectDistance(raw, rayAngle, facing float64) float64 {
	return raw * math.Cos(rayAngle-facing)
}

// WallShade returns the grayscale intensity of a wall column.
func WallShade(corrected float64, side Side) uint8 {
	shade := math.Max(0, math.Min(1, 1-corrected/wallFalloff))
	base := float64(baseVertical)
	if side == SideHorizontal {
		base = baseHorizontal
	}
	return uint8(math.Floor(base * shade))
}

// RenderViewport sweeps the view's field of view across width columns
// starting at xOffset, drawing sky, ground and wall slivers. Every column in
// the range gets a fresh depth value.
func (r *Renderer) RenderViewport(v View, xOffset, width, height int) {
	horizon := Horizon(height, v.Pitch)
	top := int(math.Max(0, float64(horizon)))
	r.Frame.FillRect(xOffset, 0, width, top, r.Sky)
	r.Frame.FillRect(xOffset, top, width, height-top, r.Ground)

	step := v.FOV / float64(width)
	start := v.Angle - v.FOV/2
	for col := 0; col < width; col++ {
		rayAngle := start + float64(col)*step
		hit := Cast(r.Grid, v.X, v.Y, rayAngle)
		raw := math.Max(minWallDistance, hit.Distance)
		corrected := CorrectDistance(raw, rayAngle, v.Angle)

		lineHeight := int(math.Min(float64(height), math.Floor(float64(height)/corrected)))
		drawStart := int(math.Floor(float64(height-lineHeight)/2 - v.Pitch*PitchScale))

		c := WallShade(corrected, hit.Side)
		r.Frame.VLine(xOffset+col, drawStart, lineHeight, color.RGBA{c, c, c, 0xff})
		r.Depth.Set(xOffset+col, corrected)
	}
}
