package world

import (
	"math"

	"raycasino/engine"
)

const (
	// hitForgiveness widens the hit cone past an enemy's true angular size.
	hitForgiveness = 1.4
	wallEpsilon    = 0.01
)

// FireWeapon shoots along the view centre. It does nothing while the weapon
// is cooling down or empty, and reports whether an enemy was hit.
func (s *State) FireWeapon() bool {
	if !s.Weapon.Fire(s.Upgrades.FireRate) {
		return false
	}

	idx := s.hitscan()
	if idx < 0 {
		return false
	}
	s.Enemies[idx].Damage(s.Upgrades.Damage)
	return true
}

// hitscan returns the index of the nearest enemy in the centre ray's cone
// that is not behind a wall, or -1.
func (s *State) hitscan() int {
	p := s.Player
	wall := math.Max(1e-4, engine.Cast(s.Grid, p.Position.X, p.Position.Y, p.Angle).Distance)

	best := -1
	bestDist := math.Inf(1)
	for i, e := range s.Enemies {
		dx := e.Position.X - p.Position.X
		dy := e.Position.Y - p.Position.Y
		dist := math.Hypot(dx, dy)
		rel := engine.NormalizeAngle(math.Atan2(dy, dx) - p.Angle)
		halfWidth := math.Atan2(e.Radius, dist) * hitForgiveness
		if math.Abs(rel) <= halfWidth && dist < bestDist && dist < wall+wallEpsilon {
			best = i
			bestDist = dist
		}
	}
	return best
}

// Reload refills the magazine for one chip per missing round. It does
// nothing when the magazine is full or the chips do not cover it.
func (s *State) Reload() bool {
	cost := s.Weapon.Deficit()
	if cost == 0 {
		return false
	}
	if !s.Debit(cost) {
		return false
	}
	s.Weapon.Refill()
	return true
}

// reap removes dead enemies back to front and pays out for each.
func (s *State) reap() {
	for i := len(s.Enemies) - 1; i >= 0; i-- {
		if s.Enemies[i].Alive() {
			continue
		}
		s.Enemies = append(s.Enemies[:i], s.Enemies[i+1:]...)
		s.Credit(killChips)
		s.Score += killScore
		s.Wave.Killed++
	}
}
