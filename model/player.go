package model

import (
	"math"

	"github.com/harbdog/raycaster-go/geom"
)

const (
	// MaxPitch bounds vertical look in radians, both up and down.
	MaxPitch = 0.6

	PlayerMoveSpeed = 3.0
	PlayerTurnSpeed = 2.4
	PlayerRadius    = 0.18
)

// Pose is the player's viewpoint and locomotion tuning.
type Pose struct {
	Position  geom.Vector2
	Angle     float64
	Pitch     float64
	FOV       float64
	MoveSpeed float64
	TurnSpeed float64
}

func NewPose(x, y, angle float64) *Pose {
	return &Pose{
		Position:  geom.Vector2{X: x, Y: y},
		Angle:     angle,
		Pitch:     0,
		FOV:       math.Pi / 3,
		MoveSpeed: PlayerMoveSpeed,
		TurnSpeed: PlayerTurnSpeed,
	}
}

// Look applies a yaw and pitch delta, keeping pitch within MaxPitch.
func (p *Pose) Look(yaw, pitch float64) {
	p.Angle += yaw
	p.Pitch = geom.Clamp(p.Pitch+pitch, -MaxPitch, MaxPitch)
}

// Turn rotates by turn speed in direction dir (-1 left, +1 right) over dt seconds.
func (p *Pose) Turn(dir, dt float64) {
	p.Angle += dir * p.TurnSpeed * dt
}

// Velocity converts forward/strafe axes into a world-space displacement for dt seconds.
func (p *Pose) Velocity(forward, strafe, dt float64) (float64, float64) {
	sin, cos := math.Sincos(p.Angle)
	dx := (cos*forward - sin*strafe) * p.MoveSpeed * dt
	dy := (sin*forward + cos*strafe) * p.MoveSpeed * dt
	return dx, dy
}
