package model

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
)

var (
	LevelColorEmpty = color.RGBA{255, 255, 255, 255}
	LevelColorWall  = color.RGBA{0, 0, 0, 255}
)

// DecodeLevelImage reads a level drawn as an image: black pixels are walls,
// every other colour is floor.
func DecodeLevelImage(r io.Reader) (*GridMap, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode level image: %w", err)
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	cells := make([]Cell, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := color.RGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.RGBA)
			if c == LevelColorWall {
				cells[y*width+x] = CellWall
			}
		}
	}

	return NewGridMap(width, height, cells)
}

// DecodeLevelText reads one row per line. Blank lines are skipped.
func DecodeLevelText(r io.Reader) (*GridMap, error) {
	var rows []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r ")
		if line == "" {
			continue
		}
		rows = append(rows, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read level text: %w", err)
	}
	return ParseGridMap(rows)
}

// LoadLevel loads a level file, choosing the decoder by extension.
// An empty path yields the default map.
func LoadLevel(path string) (*GridMap, error) {
	if path == "" {
		return DefaultGridMap(), nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open level: %w", err)
	}
	defer file.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return DecodeLevelImage(file)
	default:
		return DecodeLevelText(file)
	}
}
