package world

import (
	"io"
	"math"
	"math/rand"

	"github.com/sirupsen/logrus"

	"raycasino/model"
)

const (
	damageFlashTime  = 0.35
	damageFlashDecay = 1.8
	messageTime      = 3.0
	hitMarkerTime    = 0.15
)

// Wave tracks the current enemy wave.
type Wave struct {
	Number     int
	Killed     int
	Required   int
	InProgress bool
	// AutoTimer counts down to the next wave while the wave is cleared.
	AutoTimer float64
}

// Cleared reports whether the wave is over and the next may start.
func (w Wave) Cleared(live int) bool {
	return !w.InProgress && live == 0
}

// State is the whole mutable game, owned by the frame loop.
type State struct {
	cfg Config
	log *logrus.Entry
	rng *rand.Rand

	Grid    *model.GridMap
	Tables  []model.Table
	Player  *model.Pose
	Enemies []*model.Enemy
	Weapon  *model.Weapon

	Upgrades model.Upgrades
	HP       float64
	MaxHP    int
	Chips    int
	Score    int

	Wave Wave

	DamageFlash   float64
	HitMarker     float64
	RoundComplete float64
	Result        Result
	PerkOffer     []model.PerkID

	mode    InteractionMode
	session *TableSession
	mount   MountFunc
}

// New builds a state on grid and spawns the first wave.
func New(grid *model.GridMap, tables []model.Table, cfg Config) *State {
	log := cfg.Logger
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = logrus.NewEntry(l)
	}

	s := &State{
		cfg:    cfg,
		log:    log.WithField("component", "world"),
		rng:    rand.New(rand.NewSource(cfg.Seed)),
		Grid:   grid,
		Tables: tables,
	}
	s.reset()
	return s
}

func (s *State) reset() {
	p := model.NewPose(s.cfg.StartX, s.cfg.StartY, s.cfg.StartAngle)
	if s.cfg.MoveSpeed > 0 {
		p.MoveSpeed = s.cfg.MoveSpeed
	}
	if s.cfg.TurnSpeed > 0 {
		p.TurnSpeed = s.cfg.TurnSpeed
	}

	s.Player = p
	s.Weapon = model.NewWeapon()
	s.Upgrades = model.NewUpgrades()
	s.Upgrades.MaxHP = float64(s.cfg.HP)
	s.HP = float64(s.cfg.HP)
	s.MaxHP = s.cfg.HP
	s.Chips = s.cfg.Chips
	s.Score = 0
	s.Enemies = nil
	s.DamageFlash = 0
	s.HitMarker = 0
	s.RoundComplete = 0
	s.Result = Result{}
	s.PerkOffer = nil
	s.mode = playing
	s.session = nil
	s.Wave = Wave{Number: 1}

	s.syncUpgrades()
	s.SpawnWave()
}

// Restart throws away the run and starts again from wave 1.
func (s *State) Restart() {
	if s.session != nil {
		s.CloseTable()
	}
	s.log.Info("restarting run")
	s.reset()
}

func (s *State) Config() Config { return s.cfg }

func (s *State) Rand() *rand.Rand { return s.rng }

func (s *State) Logger() *logrus.Entry { return s.log }

func (s *State) Mode() InteractionMode { return s.mode }

// Paused is the single gate for movement, AI, weapons and damage.
func (s *State) Paused() bool {
	return s.mode.Mode == Paused
}

// TogglePause enters or leaves the menu pause. Other pause reasons are left alone.
func (s *State) TogglePause() {
	switch {
	case s.mode == playing:
		s.mode = pausedFor(ReasonMenu)
	case s.mode.Reason == ReasonMenu:
		s.mode = playing
	}
}

func (s *State) Defeated() bool {
	return s.mode.Reason == ReasonDefeat
}

// syncUpgrades recomputes the live stats that depend on upgrades.
func (s *State) syncUpgrades() {
	base := s.cfg.MoveSpeed
	if base <= 0 {
		base = model.PlayerMoveSpeed
	}
	s.Player.MoveSpeed = base * s.Upgrades.Speed

	s.MaxHP = int(math.Max(1, math.Round(s.Upgrades.MaxHP)))
	s.HP = math.Min(s.HP, float64(s.MaxHP))

	capacity := int(math.Max(1, math.Round(s.Upgrades.AmmoCapacity)))
	if capacity > s.Weapon.MaxAmmo {
		s.Weapon.MaxAmmo = capacity
	}
}

// ApplyPerk adds one perk level and refreshes dependent stats.
func (s *State) ApplyPerk(id model.PerkID) bool {
	if !s.Upgrades.Apply(id) {
		return false
	}
	if id == model.PerkMaxHP {
		s.HP = math.Round(s.Upgrades.MaxHP)
	}
	s.syncUpgrades()
	s.log.WithField("perk", id.String()).Info("perk applied")
	return true
}

// Grant raises a stat outside the perk path, e.g. a casino bonus.
func (s *State) Grant(stat model.Stat, amount float64) bool {
	if !s.Upgrades.Grant(stat, amount) {
		return false
	}
	s.syncUpgrades()
	return true
}

// Live is the number of enemies still on the map.
func (s *State) Live() int {
	return len(s.Enemies)
}

// ReloadCost is the chip price of topping up the magazine.
func (s *State) ReloadCost() int {
	return s.Weapon.Deficit()
}
