package main

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"raycasino/casino"
	"raycasino/model"
	"raycasino/world"
)

const lineSpacing = 14

var (
	textColor   = color.White
	dimColor    = color.NRGBA{200, 200, 200, 255}
	goldColor   = color.NRGBA{255, 215, 0, 255}
	winColor    = color.NRGBA{90, 230, 110, 255}
	loseColor   = color.NRGBA{240, 80, 80, 255}
	panelColor  = color.NRGBA{10, 10, 16, 215}
	borderColor = color.NRGBA{255, 215, 0, 180}
)

// HUD draws text over the scene: stats, banners, prompts and overlays.
type HUD struct {
	face   text.Face
	tables *casino.Registry

	width, height int
	// text is drawn at this multiple of the 7x13 bitmap face
	textScale float64
}

func NewHUD(tables *casino.Registry, width, height int, scale float64) *HUD {
	return &HUD{
		face:      text.NewGoXFace(basicfont.Face7x13),
		tables:    tables,
		width:     width,
		height:    height,
		textScale: math.Max(1, math.Floor(scale/1.5)),
	}
}

func (h *HUD) print(screen *ebiten.Image, s string, x, y float64, clr color.Color, align text.Align) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(h.textScale, h.textScale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.Filter = ebiten.FilterNearest
	op.LineSpacing = lineSpacing
	op.PrimaryAlign = align
	text.Draw(screen, s, h.face, op)
}

func (h *HUD) line(n float64) float64 {
	return n * lineSpacing * h.textScale
}

func (h *HUD) Draw(screen *ebiten.Image, snap world.Snapshot, captured bool) {
	pad := h.line(0.5)

	stats := []string{
		fmt.Sprintf("Wave %d  %d/%d", snap.Wave, snap.WaveKilled, snap.WaveNeeded),
		fmt.Sprintf("HP %d/%d", snap.HPShown, snap.MaxHP),
		fmt.Sprintf("Ammo %d/%d", snap.Ammo, snap.MaxAmmo),
		fmt.Sprintf("Chips %d  Score %d", snap.Chips, snap.Score),
	}
	if snap.Reload > 0 {
		stats[2] += fmt.Sprintf("  R: reload %d", snap.Reload)
	}
	h.print(screen, strings.Join(stats, "\n"), pad, pad, textColor, text.AlignStart)

	if len(snap.Perks) > 0 {
		parts := make([]string, len(snap.Perks))
		for i, p := range snap.Perks {
			parts[i] = fmt.Sprintf("%s x%d", p.Short, p.Count)
		}
		h.print(screen, strings.Join(parts, " "), pad, pad+h.line(4.5), dimColor, text.AlignStart)
	}

	cx := float64(h.width) / 2
	switch {
	case snap.RoundComplete > 0:
		h.print(screen, fmt.Sprintf("Wave %d complete! +%d chips", snap.Wave, world.WaveBonus(snap.Wave)),
			cx, h.line(2), goldColor, text.AlignCenter)
	case snap.Countdown > 0:
		h.print(screen, fmt.Sprintf("Next wave in %.0fs  K: start now", math.Ceil(snap.Countdown)),
			cx, h.line(2), dimColor, text.AlignCenter)
	}

	if snap.Result.Active() {
		h.print(screen, snap.Result.Message, cx, float64(h.height)-h.line(6), resultColor(snap.Result.Kind), text.AlignCenter)
	}

	if snap.Mode.Mode == world.Playing {
		if t := snap.NearbyTable; t != nil {
			h.print(screen, h.prompt(*t), cx, float64(h.height)/2+h.line(2), goldColor, text.AlignCenter)
		}
		if !captured {
			h.print(screen, "Click to aim", cx, float64(h.height)-h.line(1.5), dimColor, text.AlignCenter)
		}
	}
}

func (h *HUD) prompt(t model.Table) string {
	cost := h.tables.Cost(t.Kind)
	if cost == 0 {
		return "E: " + t.Name
	}
	return fmt.Sprintf("E: %s (%d)", t.Name, cost)
}

func resultColor(k world.ResultKind) color.Color {
	switch k {
	case world.ResultWin:
		return winColor
	case world.ResultLose, world.ResultError:
		return loseColor
	}
	return textColor
}

// DrawOverlay draws the panel for whatever is pausing play.
func (h *HUD) DrawOverlay(screen *ebiten.Image, snap world.Snapshot) {
	var lines []string
	switch snap.Mode.Reason {
	case world.ReasonTable:
		lines = snap.TableLines
		if len(lines) == 0 && snap.OpenTable != nil {
			lines = []string{snap.OpenTable.Name, "Nothing to play here.", "Esc: Close"}
		}
	case world.ReasonPerks:
		lines = []string{"Choose a perk"}
		for i, id := range snap.PerkOffer {
			p, _ := id.Perk()
			lines = append(lines, fmt.Sprintf("%d: %s", i+1, p.Name))
		}
		lines = append(lines, "Esc: Skip")
	case world.ReasonDefeat:
		lines = []string{
			"You were overwhelmed",
			fmt.Sprintf("Reached wave %d  Score %d", snap.Wave, snap.Score),
			"Enter: Restart",
		}
	case world.ReasonMenu:
		lines = []string{"Paused", "P: Resume"}
	default:
		return
	}
	h.panel(screen, lines)
}

func (h *HUD) panel(screen *ebiten.Image, lines []string) {
	widest := 0
	for _, l := range lines {
		if n := len(l); n > widest {
			widest = n
		}
	}
	charW := float64(basicfont.Face7x13.Advance) * h.textScale
	w := float64(widest)*charW + h.line(2)
	ht := h.line(float64(len(lines)) + 1)
	x := (float64(h.width) - w) / 2
	y := (float64(h.height) - ht) / 2

	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(ht), panelColor, false)
	vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(ht), float32(h.textScale), borderColor, false)

	for i, l := range lines {
		clr := dimColor
		if i == 0 {
			clr = goldColor
		}
		h.print(screen, l, float64(h.width)/2, y+h.line(0.5)+h.line(float64(i)), clr, text.AlignCenter)
	}
}
