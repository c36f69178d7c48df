package model

import (
	"fmt"
	"math"
)

type PerkID int

const (
	PerkDamage PerkID = iota
	PerkFireRate
	PerkMaxHP
	PerkAmmo
	PerkSpeed
	PerkRegen
	PerkLuck
	PerkArmor
)

// Stat names an upgrade field that can be raised outside the perk path.
type Stat int

const (
	StatDamage Stat = iota
	StatFireRate
	StatMaxHP
	StatAmmoCapacity
	StatSpeed
)

var statNames = [...]string{
	StatDamage:       "DMG",
	StatFireRate:     "FIRE",
	StatMaxHP:        "HP",
	StatAmmoCapacity: "AMMO",
	StatSpeed:        "SPD",
}

func (s Stat) String() string {
	if s < 0 || int(s) >= len(statNames) {
		return fmt.Sprintf("Stat(%d)", int(s))
	}
	return statNames[s]
}

// CoreStats are the stats a casino bonus may raise.
var CoreStats = []Stat{StatDamage, StatFireRate, StatMaxHP, StatAmmoCapacity, StatSpeed}

type Perk struct {
	ID    PerkID
	Name  string
	Short string
}

var perks = []Perk{
	{PerkDamage, "Damage +0.2", "DMG"},
	{PerkFireRate, "Fire Rate +10%", "FIRE"},
	{PerkMaxHP, "Max HP +1 (heal to full)", "HP"},
	{PerkAmmo, "Ammo Capacity +2", "AMMO"},
	{PerkSpeed, "Speed +10%", "SPD"},
	{PerkRegen, "Health Regen +0.5", "REGEN"},
	{PerkLuck, "Casino Luck +5%", "LUCK"},
	{PerkArmor, "Damage Reduction +10%", "ARMOR"},
}

// AllPerks returns the perk catalogue in display order.
func AllPerks() []Perk {
	out := make([]Perk, len(perks))
	copy(out, perks)
	return out
}

func (id PerkID) Perk() (Perk, bool) {
	if id < 0 || int(id) >= len(perks) {
		return Perk{}, false
	}
	return perks[id], true
}

func (id PerkID) String() string {
	if p, ok := id.Perk(); ok {
		return p.Short
	}
	return fmt.Sprintf("PerkID(%d)", int(id))
}

// Upgrades only ever grow. Picks counts how many times each perk was chosen.
type Upgrades struct {
	Damage          float64
	FireRate        float64
	MaxHP           float64
	AmmoCapacity    float64
	Speed           float64
	HealthRegen     float64
	CasinoLuck      float64
	DamageReduction float64
	Picks           map[PerkID]int
}

func NewUpgrades() Upgrades {
	return Upgrades{
		Damage:       1,
		FireRate:     1,
		MaxHP:        5,
		AmmoCapacity: WeaponAmmo,
		Speed:        1,
		Picks:        map[PerkID]int{},
	}
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// Apply adds one level of the perk. It reports false for unknown perks.
func (u *Upgrades) Apply(id PerkID) bool {
	switch id {
	case PerkDamage:
		u.Damage = round2(u.Damage + 0.2)
	case PerkFireRate:
		u.FireRate = round2(u.FireRate + 0.1)
	case PerkMaxHP:
		u.MaxHP = math.Round(u.MaxHP + 1)
	case PerkAmmo:
		u.AmmoCapacity = math.Round(u.AmmoCapacity + 2)
	case PerkSpeed:
		u.Speed = round2(u.Speed + 0.1)
	case PerkRegen:
		u.HealthRegen += 0.5
	case PerkLuck:
		u.CasinoLuck = round2(u.CasinoLuck + 0.05)
	case PerkArmor:
		u.DamageReduction = round2(math.Min(0.9, u.DamageReduction+0.1))
	default:
		return false
	}
	if u.Picks == nil {
		u.Picks = map[PerkID]int{}
	}
	u.Picks[id]++
	return true
}

// Grant raises a stat without counting a perk pick. Non-positive amounts are ignored.
func (u *Upgrades) Grant(s Stat, amount float64) bool {
	if amount <= 0 {
		return false
	}
	switch s {
	case StatDamage:
		u.Damage = round2(u.Damage + amount)
	case StatFireRate:
		u.FireRate = round2(u.FireRate + amount)
	case StatMaxHP:
		u.MaxHP += amount
	case StatAmmoCapacity:
		u.AmmoCapacity += amount
	case StatSpeed:
		u.Speed = round2(u.Speed + amount)
	default:
		return false
	}
	return true
}

func (u *Upgrades) PickCount(id PerkID) int {
	return u.Picks[id]
}
