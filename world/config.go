package world

import (
	"github.com/sirupsen/logrus"

	"raycasino/model"
)

const (
	DefaultChips       = 10
	DefaultHP          = 5
	DefaultAutoAdvance = 60.0

	SensitivityX = 0.0016
	SensitivityY = 0.0020
)

// Config seeds a new State.
type Config struct {
	StartX, StartY float64
	StartAngle     float64
	MoveSpeed      float64
	TurnSpeed      float64
	SensitivityX   float64
	SensitivityY   float64
	// KeyboardTurn enables the arrow-key turn path. Mouse look is always on.
	KeyboardTurn bool

	Chips int
	HP    int

	AutoAdvance float64
	OfferPerks  bool

	Seed   int64
	Logger *logrus.Entry
}

func DefaultConfig() Config {
	return Config{
		StartX:       3.5,
		StartY:       3.5,
		StartAngle:   0,
		MoveSpeed:    model.PlayerMoveSpeed,
		TurnSpeed:    model.PlayerTurnSpeed,
		SensitivityX: SensitivityX,
		SensitivityY: SensitivityY,
		Chips:        DefaultChips,
		HP:           DefaultHP,
		AutoAdvance:  DefaultAutoAdvance,
		Seed:         1,
	}
}
