package main

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"raycasino/world"
)

var tableKeys = []struct {
	key    ebiten.Key
	action world.TableAction
}{
	{ebiten.KeyEnter, world.ActionPlay},
	{ebiten.KeyH, world.ActionHit},
	{ebiten.KeyS, world.ActionStand},
	{ebiten.KeyD, world.ActionDouble},
	{ebiten.KeyR, world.ActionReroll},
	{ebiten.KeyDigit1, world.ActionPick1},
	{ebiten.KeyDigit2, world.ActionPick2},
	{ebiten.KeyDigit3, world.ActionPick3},
	{ebiten.KeyEqual, world.ActionStakeUp},
	{ebiten.KeyNumpadAdd, world.ActionStakeUp},
	{ebiten.KeyMinus, world.ActionStakeDown},
	{ebiten.KeyNumpadSubtract, world.ActionStakeDown},
}

// Controls turns ebiten key and pointer state into world input.
type Controls struct {
	mouseX, mouseY int
	captured       bool
	triggerDown    bool
}

func NewControls() *Controls {
	return &Controls{mouseX: math.MinInt32, mouseY: math.MinInt32}
}

func (c *Controls) Captured() bool {
	return c.captured
}

func (c *Controls) capture() {
	ebiten.SetCursorMode(ebiten.CursorModeCaptured)
	c.captured = true

	// reset initial mouse capture position
	c.mouseX, c.mouseY = math.MinInt32, math.MinInt32
}

func (c *Controls) release() {
	ebiten.SetCursorMode(ebiten.CursorModeVisible)
	c.captured = false
}

// Sync releases the pointer whenever play is paused.
func (c *Controls) Sync(mode world.InteractionMode) {
	if mode.Mode == world.Paused && c.captured {
		c.release()
	}
	if c.captured && ebiten.CursorMode() != ebiten.CursorModeCaptured {
		// lost capture to the OS (alt-tab)
		c.captured = false
	}
}

func (c *Controls) Poll(mode world.InteractionMode) world.Input {
	var in world.Input

	in.Pause = inpututil.IsKeyJustPressed(ebiten.KeyP)
	in.Close = inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	in.Interact = inpututil.IsKeyJustPressed(ebiten.KeyE)

	switch mode.Reason {
	case world.ReasonDefeat:
		in.Restart = inpututil.IsKeyJustPressed(ebiten.KeyEnter)
		return in
	case world.ReasonTable, world.ReasonPerks:
		for _, k := range tableKeys {
			if inpututil.IsKeyJustPressed(k.key) {
				in.Table = append(in.Table, k.action)
			}
		}
		return in
	}
	if mode.Mode == world.Paused {
		return in
	}

	aiming := c.captured
	if !aiming {
		// the first click only captures the pointer
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			c.capture()
		}
	} else {
		c.look(&in)
	}
	down := ebiten.IsKeyPressed(ebiten.KeySpace) ||
		(aiming && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft))
	in.Fire = c.pull(down)

	in.Reload = inpututil.IsKeyJustPressed(ebiten.KeyR)
	in.StartWave = inpututil.IsKeyJustPressed(ebiten.KeyK)

	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyUp) {
		in.Forward++
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyDown) {
		in.Forward--
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) {
		in.Strafe++
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) {
		in.Strafe--
	}
	if ebiten.IsKeyPressed(ebiten.KeyRight) {
		in.Turn++
	}
	if ebiten.IsKeyPressed(ebiten.KeyLeft) {
		in.Turn--
	}
	return in
}

func (c *Controls) look(in *world.Input) {
	x, y := ebiten.CursorPosition()

	if c.mouseX == math.MinInt32 && c.mouseY == math.MinInt32 {
		// initialize first position to establish delta
		c.mouseX, c.mouseY = x, y
		return
	}
	dx, dy := x-c.mouseX, y-c.mouseY
	c.mouseX, c.mouseY = x, y

	in.Captured = true
	in.LookX = float64(dx)
	in.LookY = float64(dy)
}

// pull reports a trigger press on the frame the button goes down. Holding it
// fires once.
func (c *Controls) pull(down bool) bool {
	pulled := down && !c.triggerDown
	c.triggerDown = down
	return pulled
}
