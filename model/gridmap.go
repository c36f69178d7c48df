package model

import (
	"fmt"
	"math"
	"strings"
)

type Cell uint8

const (
	CellEmpty Cell = iota
	CellWall
)

// GridMap is the static tile grid. Reads outside the grid are walls.
type GridMap struct {
	width  int
	height int
	cells  []Cell
}

func NewGridMap(width, height int, cells []Cell) (*GridMap, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("grid map: invalid size %dx%d", width, height)
	}
	if len(cells) != width*height {
		return nil, fmt.Errorf("grid map: got %d cells, want %d", len(cells), width*height)
	}

	m := &GridMap{width: width, height: height, cells: make([]Cell, len(cells))}
	for i, c := range cells {
		if c != CellEmpty {
			m.cells[i] = CellWall
		}
	}
	return m, nil
}

// ParseGridMap builds a map from text rows: '#' or '1' is a wall, anything else is empty.
func ParseGridMap(rows []string) (*GridMap, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("grid map: no rows")
	}

	width := len(rows[0])
	cells := make([]Cell, 0, width*len(rows))
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("grid map: row %d has %d columns, want %d", y, len(row), width)
		}
		for _, r := range row {
			switch r {
			case '#', '1':
				cells = append(cells, CellWall)
			default:
				cells = append(cells, CellEmpty)
			}
		}
	}

	return NewGridMap(width, len(rows), cells)
}

func (m *GridMap) Width() int  { return m.width }
func (m *GridMap) Height() int { return m.height }

func (m *GridMap) At(x, y int) Cell {
	if x < 0 || y < 0 || x >= m.width || y >= m.height {
		return CellWall
	}
	return m.cells[y*m.width+x]
}

func (m *GridMap) IsWall(x, y int) bool {
	return m.At(x, y) == CellWall
}

// IsWallAt tests the cell containing the fractional point (x, y).
func (m *GridMap) IsWallAt(x, y float64) bool {
	return m.IsWall(int(math.Floor(x)), int(math.Floor(y)))
}

func (m *GridMap) String() string {
	var b strings.Builder
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			if m.IsWall(x, y) {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

var defaultRows = []string{
	"################",
	"#..............#",
	"#......###...#.#",
	"#....######..#.#",
	"#....#...#...#.#",
	"#....#...##..#.#",
	"#....#...#.###.#",
	"#....#####.#...#",
	"#..........#...#",
	"#..........#...#",
	"#..........#...#",
	"#...#......#...#",
	"#..........#...#",
	"#..........#...#",
	"#..............#",
	"################",
}

// DefaultGridMap is the 16x16 casino floor.
func DefaultGridMap() *GridMap {
	m, err := ParseGridMap(defaultRows)
	if err != nil {
		panic(err)
	}
	return m
}
