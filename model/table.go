package model

import (
	"fmt"
	"image/color"
	"strconv"

	"github.com/harbdog/raycaster-go/geom"
)

// TableKind is the closed set of casino table types.
type TableKind int

const (
	TableBlackjack TableKind = iota
	TablePoker
	TableRoulette
	TableSlots
	TableCraps
	TableWaveControl
	TablePerkSlots
)

var tableKindNames = [...]string{
	TableBlackjack:   "blackjack",
	TablePoker:       "poker",
	TableRoulette:    "roulette",
	TableSlots:       "slots",
	TableCraps:       "craps",
	TableWaveControl: "wavecontrol",
	TablePerkSlots:   "perkslots",
}

func (k TableKind) String() string {
	if k < 0 || int(k) >= len(tableKindNames) {
		return fmt.Sprintf("TableKind(%d)", int(k))
	}
	return tableKindNames[k]
}

// TableScale is the billboard scale shared by every casino table.
const TableScale = 0.6

// Table is a static casino billboard the player can interact with.
type Table struct {
	Position geom.Vector2
	Radius   float64
	Kind     TableKind
	Name     string
	Color    string
}

// RGBA decodes the table's "#rrggbb" colour. Malformed colours decode to magenta.
func (t Table) RGBA() color.RGBA {
	c, err := ParseHexColor(t.Color)
	if err != nil {
		return color.RGBA{255, 0, 255, 255}
	}
	return c
}

func ParseHexColor(s string) (color.RGBA, error) {
	if len(s) != 7 || s[0] != '#' {
		return color.RGBA{}, fmt.Errorf("hex color %q: want #rrggbb", s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("hex color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}

func DefaultTables() []Table {
	return []Table{
		{Position: geom.Vector2{X: 2.5, Y: 2.5}, Kind: TableBlackjack, Name: "Blackjack Table", Color: "#8B4513", Radius: 0.3},
		{Position: geom.Vector2{X: 9.5, Y: 9.5}, Kind: TablePoker, Name: "Poker Table", Color: "#654321", Radius: 0.3},
		{Position: geom.Vector2{X: 12.5, Y: 6.5}, Kind: TableRoulette, Name: "Roulette Wheel", Color: "#FFD700", Radius: 0.3},
		{Position: geom.Vector2{X: 6.5, Y: 12.5}, Kind: TableSlots, Name: "Slot Machine", Color: "#FF69B4", Radius: 0.2},
		{Position: geom.Vector2{X: 9.5, Y: 12.5}, Kind: TableCraps, Name: "Craps Table", Color: "#32CD32", Radius: 0.3},
		{Position: geom.Vector2{X: 2.5, Y: 14.5}, Kind: TableWaveControl, Name: "Wave Control", Color: "#FF0000", Radius: 0.3},
		{Position: geom.Vector2{X: 4.5, Y: 14.5}, Kind: TablePerkSlots, Name: "Perk Slots", Color: "#AA00FF", Radius: 0.3},
	}
}
