package world

import (
	"math"

	"github.com/harbdog/raycaster-go/geom"

	"raycasino/model"
)

const (
	maxSubStep = 0.1
	// enemyRadiusFactor loosens enemy footprints so they snag less on corners.
	enemyRadiusFactor = 0.9
)

// Walls is the collision view of a tile map.
type Walls interface {
	IsWallAt(x, y float64) bool
}

// CanOccupy tests the four corners of a square footprint against the grid.
func CanOccupy(w Walls, x, y, radius float64) bool {
	if w.IsWallAt(x-radius, y-radius) {
		return false
	}
	if w.IsWallAt(x+radius, y-radius) {
		return false
	}
	if w.IsWallAt(x-radius, y+radius) {
		return false
	}
	if w.IsWallAt(x+radius, y+radius) {
		return false
	}
	return true
}

// TryMove moves pos toward (tx, ty) in sub-steps no longer than 0.1.
// Each sub-step tries X then Y on its own so movers slide along walls.
func TryMove(w Walls, pos *geom.Vector2, radius, tx, ty float64) {
	dx := tx - pos.X
	dy := ty - pos.Y

	steps := int(math.Max(1, math.Ceil(math.Max(math.Abs(dx), math.Abs(dy))/maxSubStep)))
	stepX := dx / float64(steps)
	stepY := dy / float64(steps)

	for i := 0; i < steps; i++ {
		if px := pos.X + stepX; CanOccupy(w, px, pos.Y, radius) {
			pos.X = px
		}
		if py := pos.Y + stepY; CanOccupy(w, pos.X, py, radius) {
			pos.Y = py
		}
	}
}

func (s *State) movePlayer(dt float64, in Input) {
	p := s.Player
	if s.cfg.KeyboardTurn && in.Turn != 0 {
		p.Turn(in.Turn, dt)
	}
	if in.Forward == 0 && in.Strafe == 0 {
		return
	}
	dx, dy := p.Velocity(in.Forward, in.Strafe, dt)
	TryMove(s.Grid, &p.Position, model.PlayerRadius, p.Position.X+dx, p.Position.Y+dy)
}

// look applies mouse deltas. Deltas only count while the pointer is captured.
func (s *State) look(in Input) {
	if !in.Captured || (in.LookX == 0 && in.LookY == 0) {
		return
	}
	s.Player.Look(in.LookX*s.cfg.SensitivityX, in.LookY*s.cfg.SensitivityY)
}

// moveEnemies chases the player and applies contact damage.
func (s *State) moveEnemies(dt float64) {
	target := s.Player.Position
	for i := len(s.Enemies) - 1; i >= 0; i-- {
		e := s.Enemies[i]
		vx := target.X - e.Position.X
		vy := target.Y - e.Position.Y
		if dist := math.Hypot(vx, vy); dist > 1e-4 {
			nx := e.Position.X + vx/dist*e.Speed*dt
			ny := e.Position.Y + vy/dist*e.Speed*dt
			TryMove(s.Grid, &e.Position, e.Radius*enemyRadiusFactor, nx, ny)
		}

		if math.Hypot(e.Position.X-target.X, e.Position.Y-target.Y) < e.Radius+0.2 {
			damage := 0.5 * dt * (1 - s.Upgrades.DamageReduction)
			s.HP = math.Max(0, s.HP-damage)
			s.DamageFlash = math.Max(s.DamageFlash, damageFlashTime)
		}
	}
}
