package engine

import "math"

// DepthBuffer holds the nearest corrected wall distance per screen column.
type DepthBuffer struct {
	cols []float64
}

func NewDepthBuffer(width int) *DepthBuffer {
	d := &DepthBuffer{cols: make([]float64, width)}
	d.Reset()
	return d
}

// Reset marks every column as unoccluded.
func (d *DepthBuffer) Reset() {
	for i := range d.cols {
		d.cols[i] = math.Inf(1)
	}
}

func (d *DepthBuffer) Len() int {
	return len(d.cols)
}

func (d *DepthBuffer) Set(col int, dist float64) {
	if col < 0 || col >= len(d.cols) {
		return
	}
	d.cols[col] = dist
}

// At returns the depth at col. Columns outside the buffer are fully occluded.
func (d *DepthBuffer) At(col int) float64 {
	if col < 0 || col >= len(d.cols) {
		return 0
	}
	return d.cols[col]
}

// Visible reports whether something at dist shows in front of the wall at col.
func (d *DepthBuffer) Visible(col int, dist float64) bool {
	return dist < d.At(col)
}
