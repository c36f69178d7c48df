package model

import (
	"github.com/harbdog/raycaster-go/geom"
)

const (
	EnemyRadius = 0.14
	EnemyScale  = 0.55
)

type Enemy struct {
	Position geom.Vector2
	Radius   float64
	Speed    float64
	Health   float64
	Scale    float64
}

// EnemyArchetype is the template every spawned enemy is cloned from.
var EnemyArchetype = Enemy{
	Radius: EnemyRadius,
	Speed:  1.3,
	Health: 3,
	Scale:  EnemyScale,
}

func (e *Enemy) Alive() bool {
	return e.Health > 0
}

func (e *Enemy) Damage(amount float64) {
	e.Health -= amount
}
