package engine

import (
	"math"
)

// Grid is the tile map a ray is cast against. Cells outside the grid must
// report as walls.
type Grid interface {
	Width() int
	Height() int
	IsWall(x, y int) bool
}

// Side is the face orientation a ray struck.
type Side int

const (
	// SideVertical is a face crossed while stepping along X.
	SideVertical Side = iota
	// SideHorizontal is a face crossed while stepping along Y.
	SideHorizontal
)

const rayEpsilon = 1e-6

// Hit is the result of a single cast. Distance is measured along the ray's
// own axis and is not corrected for fisheye.
type Hit struct {
	Distance float64
	Side     Side
	MapX     int
	MapY     int
}

// Cast walks the grid cell by cell from (ox, oy) along angle until it reaches
// a wall or leaves the grid. An origin inside a wall or outside the grid
// yields a zero distance hit.
func Cast(g Grid, ox, oy, angle float64) Hit {
	mapX := int(math.Floor(ox))
	mapY := int(math.Floor(oy))
	w, h := g.Width(), g.Height()
	if mapX < 0 || mapY < 0 || mapX >= w || mapY >= h || g.IsWall(mapX, mapY) {
		return Hit{Distance: 0, Side: SideVertical, MapX: mapX, MapY: mapY}
	}

	sin, cos := math.Sincos(angle)
	if cos == 0 {
		cos = rayEpsilon
	}
	if sin == 0 {
		sin = rayEpsilon
	}
	deltaDistX := math.Abs(1 / cos)
	deltaDistY := math.Abs(1 / sin)

	var stepX, stepY int
	var sideDistX, sideDistY float64
	if cos < 0 {
		stepX = -1
		sideDistX = (ox - float64(mapX)) * deltaDistX
	} else {
		stepX = 1
		sideDistX = (float64(mapX) + 1.0 - ox) * deltaDistX
	}
	if sin < 0 {
		stepY = -1
		sideDistY = (oy - float64(mapY)) * deltaDistY
	} else {
		stepY = 1
		sideDistY = (float64(mapY) + 1.0 - oy) * deltaDistY
	}

	side := SideVertical
	for {
		if sideDistX < sideDistY {
			sideDistX += deltaDistX
			mapX += stepX
			side = SideVertical
		} else {
			sideDistY += deltaDistY
			mapY += stepY
			side = SideHorizontal
		}
		if mapX < 0 || mapY < 0 || mapX >= w || mapY >= h {
			break
		}
		if g.IsWall(mapX, mapY) {
			break
		}
	}

	hit := Hit{Side: side, MapX: mapX, MapY: mapY}
	if side == SideVertical {
		hit.Distance = sideDistX - deltaDistX
	} else {
		hit.Distance = sideDistY - deltaDistY
	}
	return hit
}

// NormalizeAngle wraps a into [-Pi, Pi].
func NormalizeAngle(a float64) float64 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a < -math.Pi {
		a += 2 * math.Pi
	}
	return a
}
