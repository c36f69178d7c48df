package model

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"
)

func TestGridMapOutOfBoundsIsWall(t *testing.T) {
	m, err := ParseGridMap([]string{
		"...",
		".#.",
		"...",
	})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{"interior empty", 0, 0, false},
		{"interior wall", 1, 1, true},
		{"left of grid", -1, 0, true},
		{"above grid", 0, -1, true},
		{"right of grid", 3, 1, true},
		{"below grid", 1, 3, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.IsWall(tt.x, tt.y); got != tt.want {
				t.Fatalf("IsWall(%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestGridMapIsWallAtFloorsCoordinates(t *testing.T) {
	m, _ := ParseGridMap([]string{"#.", ".."})
	if !m.IsWallAt(0.99, 0.01) {
		t.Fatalf("expected wall at (0.99, 0.01)")
	}
	if m.IsWallAt(1.5, 0.5) {
		t.Fatalf("expected empty at (1.5, 0.5)")
	}
	if !m.IsWallAt(-0.01, 0.5) {
		t.Fatalf("expected negative coordinate to floor outside the grid")
	}
}

func TestParseGridMapRejectsRaggedRows(t *testing.T) {
	if _, err := ParseGridMap([]string{"...", ".."}); err == nil {
		t.Fatalf("expected error for ragged rows")
	}
	if _, err := ParseGridMap(nil); err == nil {
		t.Fatalf("expected error for empty map")
	}
}

func TestNewGridMapNormalizesCells(t *testing.T) {
	m, err := NewGridMap(2, 1, []Cell{CellEmpty, Cell(7)})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if m.At(1, 0) != CellWall {
		t.Fatalf("non-empty cell should normalize to wall, got %v", m.At(1, 0))
	}
}

func TestDefaultGridMap(t *testing.T) {
	m := DefaultGridMap()
	if m.Width() != 16 || m.Height() != 16 {
		t.Fatalf("size = %dx%d, want 16x16", m.Width(), m.Height())
	}
	for i := 0; i < 16; i++ {
		if !m.IsWall(i, 0) || !m.IsWall(i, 15) || !m.IsWall(0, i) || !m.IsWall(15, i) {
			t.Fatalf("border cell %d is open", i)
		}
	}
	if m.IsWallAt(3.5, 3.5) {
		t.Fatalf("player start cell is a wall")
	}
}

func TestDecodeLevelText(t *testing.T) {
	src := "###\n#.#\n\n###\n"
	m, err := DecodeLevelText(strings.NewReader(src))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if m.Height() != 3 || m.Width() != 3 {
		t.Fatalf("size = %dx%d, want 3x3", m.Width(), m.Height())
	}
	if m.IsWall(1, 1) {
		t.Fatalf("center should be empty")
	}
}

func TestDecodeLevelImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, LevelColorWall)
	img.Set(1, 0, LevelColorEmpty)
	img.Set(0, 1, color.RGBA{10, 200, 30, 255})
	img.Set(1, 1, LevelColorWall)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode: %v", err)
	}

	m, err := DecodeLevelImage(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !m.IsWall(0, 0) || m.IsWall(1, 0) || m.IsWall(0, 1) || !m.IsWall(1, 1) {
		t.Fatalf("unexpected map:\n%s", m)
	}
}

func TestLoadLevelEmptyPathIsDefault(t *testing.T) {
	m, err := LoadLevel("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if m.String() != DefaultGridMap().String() {
		t.Fatalf("empty path did not yield the default map")
	}
	if _, err := LoadLevel("does/not/exist.txt"); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
