package main

import (
	"math"

	"raycasino/model"
	"raycasino/world"
)

const (
	// aimTolerance is how far off target, in radians, the bot still fires.
	aimTolerance = 0.04
	// maxLook bounds one frame of synthetic mouse motion in pixels.
	maxLook = 400
)

// botInput picks the next frame's input: turn to the nearest enemy, fire when
// lined up, reload when dry, take the first perk and restart after defeat.
func botInput(s *world.State) world.Input {
	in := world.Input{Captured: true}

	switch s.Mode().Reason {
	case world.ReasonDefeat:
		in.Restart = true
		return in
	case world.ReasonPerks:
		in.Table = []world.TableAction{world.ActionPick1}
		return in
	case world.ReasonTable, world.ReasonMenu:
		in.Close = true
		in.Pause = s.Mode().Reason == world.ReasonMenu
		return in
	}

	if s.Countdown() > 0 {
		in.StartWave = true
	}

	if s.Weapon.Ammo == 0 {
		in.Reload = true
		return in
	}

	e := nearest(s)
	if e == nil {
		return in
	}
	diff := angleTo(s.Player, e)
	if sens := s.Config().SensitivityX; sens > 0 {
		in.LookX = math.Max(-maxLook, math.Min(maxLook, diff/sens))
	}
	in.Fire = math.Abs(diff) < aimTolerance
	return in
}

func nearest(s *world.State) *model.Enemy {
	var best *model.Enemy
	bestDist := math.Inf(1)
	for _, e := range s.Enemies {
		d := math.Hypot(e.Position.X-s.Player.Position.X, e.Position.Y-s.Player.Position.Y)
		if d < bestDist {
			best, bestDist = e, d
		}
	}
	return best
}

// angleTo returns the signed yaw from the player's heading to e, in (-π, π].
func angleTo(p *model.Pose, e *model.Enemy) float64 {
	want := math.Atan2(e.Position.Y-p.Position.Y, e.Position.X-p.Position.X)
	d := math.Mod(want-p.Angle, 2*math.Pi)
	if d > math.Pi {
		d -= 2 * math.Pi
	} else if d <= -math.Pi {
		d += 2 * math.Pi
	}
	return d
}
