package model

const (
	WeaponRate     = 0.8
	WeaponAmmo     = 8
	flashDuration  = 0.08
	recoilDuration = 1.0
	recoilDecay    = 3.0
)

// Weapon timers are in seconds.
type Weapon struct {
	Cooldown float64
	Rate     float64
	Flash    float64
	Recoil   float64
	Ammo     int
	MaxAmmo  int
}

func NewWeapon() *Weapon {
	return &Weapon{
		Rate:    WeaponRate,
		Ammo:    WeaponAmmo,
		MaxAmmo: WeaponAmmo,
	}
}

func (w *Weapon) OnCooldown() bool {
	return w.Cooldown > 0
}

func (w *Weapon) CanFire() bool {
	return !w.OnCooldown() && w.Ammo > 0
}

// Fire consumes one round and starts the cooldown and animation timers.
// It reports false, changing nothing, when the weapon cannot fire.
func (w *Weapon) Fire(fireRate float64) bool {
	if !w.CanFire() {
		return false
	}
	if fireRate <= 0 {
		fireRate = 1
	}
	w.Cooldown = w.Rate / fireRate
	w.Flash = flashDuration
	w.Recoil = recoilDuration
	w.Ammo--
	return true
}

// Deficit is the number of rounds needed to fill the magazine.
func (w *Weapon) Deficit() int {
	if w.Ammo >= w.MaxAmmo {
		return 0
	}
	return w.MaxAmmo - w.Ammo
}

func (w *Weapon) Refill() {
	w.Ammo = w.MaxAmmo
}

func (w *Weapon) Update(dt float64) {
	if w.Cooldown > 0 {
		w.Cooldown -= dt
	}
	if w.Flash > 0 {
		w.Flash -= dt
	}
	if w.Recoil > 0 {
		w.Recoil -= dt * recoilDecay
	}
}
