package main

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"raycasino/model"
	"raycasino/world"
)

const (
	minimapCell   = 2
	minimapMargin = 4
)

var (
	minimapWall  = color.RGBA{50, 50, 50, 220}
	minimapFloor = color.RGBA{140, 140, 140, 160}
	minimapEnemy = color.RGBA{255, 0, 0, 255}
)

// Minimap draws the grid in the top-right corner with the player, enemies
// and tables on top.
type Minimap struct {
	grid   *model.GridMap
	static *ebiten.Image
	cell   int
}

func NewMinimap(grid *model.GridMap, scale float64) *Minimap {
	m := &Minimap{grid: grid, cell: int(math.Max(1, minimapCell*scale))}
	m.generateStatic()
	return m
}

func (m *Minimap) generateStatic() {
	c := m.cell
	m.static = ebiten.NewImage(m.grid.Width()*c, m.grid.Height()*c)
	for y := 0; y < m.grid.Height(); y++ {
		for x := 0; x < m.grid.Width(); x++ {
			clr := minimapFloor
			if m.grid.IsWall(x, y) {
				clr = minimapWall
			}
			vector.DrawFilledRect(m.static, float32(x*c), float32(y*c), float32(c), float32(c), clr, false)
		}
	}
}

func (m *Minimap) origin(screen *ebiten.Image) (float32, float32) {
	return float32(screen.Bounds().Dx() - m.static.Bounds().Dx() - minimapMargin*m.cell), float32(minimapMargin * m.cell)
}

func (m *Minimap) Draw(screen *ebiten.Image, s *world.State) {
	ox, oy := m.origin(screen)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(ox), float64(oy))
	screen.DrawImage(m.static, op)

	c := float32(m.cell)
	for _, t := range s.Tables {
		vector.DrawFilledRect(screen, ox+float32(t.Position.X)*c-c/2, oy+float32(t.Position.Y)*c-c/2, c, c, t.RGBA(), false)
	}
	for _, e := range s.Enemies {
		vector.DrawFilledCircle(screen, ox+float32(e.Position.X)*c, oy+float32(e.Position.Y)*c, c/2, minimapEnemy, false)
	}
	m.drawPlayer(screen, ox, oy, s.Player)
}

func (m *Minimap) drawPlayer(screen *ebiten.Image, ox, oy float32, p *model.Pose) {
	// calculate player position on minimap
	px := ox + float32(p.Position.X)*float32(m.cell)
	py := oy + float32(p.Position.Y)*float32(m.cell)

	// calculate triangle points
	size := float32(m.cell) * 1.5
	angle := p.Angle

	x1 := px + size*float32(math.Cos(angle))
	y1 := py + size*float32(math.Sin(angle))

	x2 := px + size*float32(math.Cos(angle+2.5))
	y2 := py + size*float32(math.Sin(angle+2.5))

	x3 := px + size*float32(math.Cos(angle-2.5))
	y3 := py + size*float32(math.Sin(angle-2.5))

	// teal player marker
	vertices := []ebiten.Vertex{
		{DstX: x1, DstY: y1, SrcX: 1, SrcY: 1, ColorR: 0, ColorG: 1, ColorB: 1, ColorA: 1},
		{DstX: x2, DstY: y2, SrcX: 1, SrcY: 1, ColorR: 0, ColorG: 1, ColorB: 1, ColorA: 1},
		{DstX: x3, DstY: y3, SrcX: 1, SrcY: 1, ColorR: 0, ColorG: 1, ColorB: 1, ColorA: 1},
	}
	indices := []uint16{0, 1, 2}

	screen.DrawTriangles(vertices, indices, whitePixel, nil)
}

var whitePixel = func() *ebiten.Image {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}()
