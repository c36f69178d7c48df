package world

import (
	"math"

	"github.com/jinzhu/copier"

	"raycasino/model"
)

type PerkLevel struct {
	ID    model.PerkID
	Short string
	Count int
}

type EnemyView struct {
	X, Y   float64
	Health float64
}

// Snapshot is a read-only copy of the values the HUD shows.
type Snapshot struct {
	Wave       int
	WaveKilled int
	WaveNeeded int
	WaveActive bool
	Countdown  float64

	HP      float64
	HPShown int
	MaxHP   int
	Ammo    int
	MaxAmmo int
	Reload  int
	Chips   int
	Score   int

	Live    int
	Enemies []EnemyView

	Upgrades model.Upgrades
	Perks    []PerkLevel

	RoundComplete float64
	Result        Result
	PerkOffer     []model.PerkID

	NearbyTable *model.Table
	OpenTable   *model.Table
	TableLines  []string

	Mode        InteractionMode
	DamageFlash float64
	HitMarker   float64
	GunFlash    float64
	GunRecoil   float64
}

// Snapshot copies the HUD values out of the state.
func (s *State) Snapshot() Snapshot {
	snap := Snapshot{
		Wave:          s.Wave.Number,
		WaveKilled:    s.Wave.Killed,
		WaveNeeded:    s.Wave.Required,
		WaveActive:    s.Wave.InProgress,
		Countdown:     s.Countdown(),
		HP:            s.HP,
		HPShown:       int(math.Ceil(s.HP)),
		MaxHP:         s.MaxHP,
		Ammo:          s.Weapon.Ammo,
		MaxAmmo:       s.Weapon.MaxAmmo,
		Reload:        s.ReloadCost(),
		Chips:         s.Chips,
		Score:         s.Score,
		Live:          len(s.Enemies),
		RoundComplete: s.RoundComplete,
		Result:        s.Result,
		Mode:          s.mode,
		DamageFlash:   s.DamageFlash,
		HitMarker:     s.HitMarker,
		GunFlash:      s.Weapon.Flash,
		GunRecoil:     s.Weapon.Recoil,
	}

	if err := copier.CopyWithOption(&snap.Upgrades, &s.Upgrades, copier.Option{DeepCopy: true}); err != nil {
		s.log.WithError(err).Warn("snapshot upgrades")
	}
	if len(s.PerkOffer) > 0 {
		snap.PerkOffer = append([]model.PerkID(nil), s.PerkOffer...)
	}

	snap.Enemies = make([]EnemyView, 0, len(s.Enemies))
	for _, e := range s.Enemies {
		snap.Enemies = append(snap.Enemies, EnemyView{X: e.Position.X, Y: e.Position.Y, Health: e.Health})
	}

	for _, p := range model.AllPerks() {
		if n := s.Upgrades.PickCount(p.ID); n > 0 {
			snap.Perks = append(snap.Perks, PerkLevel{ID: p.ID, Short: p.Short, Count: n})
		}
	}

	if t, ok := s.NearbyTable(); ok {
		snap.NearbyTable = &t
	}
	if s.session != nil {
		t := s.session.table
		snap.OpenTable = &t
		if s.session.game != nil {
			snap.TableLines = append([]string(nil), s.session.game.Lines()...)
		}
	}
	return snap
}
