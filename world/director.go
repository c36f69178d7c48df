package world

import (
	"math"

	"github.com/harbdog/raycaster-go/geom"
	"github.com/jinzhu/copier"

	"raycasino/model"
)

const (
	killChips = 2
	killScore = 100

	maxWaveEnemies   = 6
	minSpawnDistance = 3.0
	maxSpawnAttempts = 256
	perkOfferSize    = 3
)

func EnemyCount(wave int) int {
	return int(math.Min(float64(2+wave/2), maxWaveEnemies))
}

func EnemySpeed(wave int) float64 {
	return model.EnemyArchetype.Speed + float64(wave)*0.1
}

func EnemyHealth(wave int) float64 {
	return model.EnemyArchetype.Health + float64(wave/2)
}

// WaveBonus is the chip award for clearing wave n.
func WaveBonus(wave int) int {
	return wave * 2
}

// SpawnWave replaces the enemy list with a fresh wave.
func (s *State) SpawnWave() {
	n := s.Wave.Number
	count := EnemyCount(n)

	s.Enemies = s.Enemies[:0]
	s.spawn(count)

	s.Wave.Required = count
	s.Wave.Killed = 0
	s.Wave.InProgress = true
	s.Wave.AutoTimer = 0

	s.log.WithField("wave", n).WithField("enemies", count).Info("wave started")
}

func (s *State) spawn(count int) {
	n := s.Wave.Number
	for i := 0; i < count; i++ {
		e := &model.Enemy{}
		if err := copier.Copy(e, &model.EnemyArchetype); err != nil {
			s.log.WithError(err).Warn("clone enemy archetype")
			*e = model.EnemyArchetype
		}
		e.Position = s.spawnPoint()
		e.Speed = EnemySpeed(n)
		e.Health = EnemyHealth(n)
		s.Enemies = append(s.Enemies, e)
	}
}

// spawnPoint samples the grid interior for an open cell far enough from the
// player. After maxSpawnAttempts it settles for the farthest open sample.
func (s *State) spawnPoint() geom.Vector2 {
	w := float64(s.Grid.Width())
	h := float64(s.Grid.Height())
	px, py := s.Player.Position.X, s.Player.Position.Y

	var best geom.Vector2
	bestDist := -1.0
	for i := 0; i < maxSpawnAttempts; i++ {
		x := s.rng.Float64()*(w-2) + 1
		y := s.rng.Float64()*(h-2) + 1
		if s.Grid.IsWallAt(x, y) {
			continue
		}
		d := math.Hypot(x-px, y-py)
		if d >= minSpawnDistance {
			return geom.Vector2{X: x, Y: y}
		}
		if d > bestDist {
			best = geom.Vector2{X: x, Y: y}
			bestDist = d
		}
	}
	if bestDist < 0 {
		s.log.Warn("no open spawn cell found")
		return s.Player.Position
	}
	return best
}

// TopUp spawns replacements while live plus killed falls short of the quota.
func (s *State) TopUp() int {
	if !s.Wave.InProgress {
		return 0
	}
	missing := s.Wave.Required - s.Wave.Killed - len(s.Enemies)
	if missing <= 0 {
		return 0
	}
	s.spawn(missing)
	return missing
}

// checkWaveComplete moves an in-progress wave to cleared once every enemy is
// dead and the quota is met. It fires once per wave.
func (s *State) checkWaveComplete() bool {
	if len(s.Enemies) != 0 || s.Wave.Killed < s.Wave.Required || !s.Wave.InProgress {
		return false
	}

	s.Wave.InProgress = false
	s.Credit(WaveBonus(s.Wave.Number))
	s.RoundComplete = messageTime
	s.Wave.AutoTimer = s.cfg.AutoAdvance
	s.log.WithField("wave", s.Wave.Number).WithField("bonus", WaveBonus(s.Wave.Number)).Info("wave cleared")

	if s.cfg.OfferPerks {
		s.offerPerks()
	}
	return true
}

// WaveReady reports whether the next wave may be started.
func (s *State) WaveReady() bool {
	return s.Wave.Cleared(len(s.Enemies))
}

// StartNextWave advances to the next wave when the current one is cleared.
func (s *State) StartNextWave() bool {
	if !s.WaveReady() {
		return false
	}
	s.Wave.Number++
	s.SpawnWave()
	return true
}

// tickAutoAdvance runs regardless of pause so overlays cannot stall waves.
// It stops on defeat.
func (s *State) tickAutoAdvance(dt float64) {
	if s.Defeated() || !s.WaveReady() || s.Wave.AutoTimer <= 0 {
		return
	}
	s.Wave.AutoTimer = math.Max(0, s.Wave.AutoTimer-dt)
	if s.Wave.AutoTimer == 0 {
		s.StartNextWave()
	}
}

// Countdown is the time left before the next wave starts on its own.
func (s *State) Countdown() float64 {
	if !s.WaveReady() {
		return 0
	}
	return s.Wave.AutoTimer
}

func (s *State) offerPerks() {
	if s.mode != playing {
		return
	}
	s.PerkOffer = RollPerks(s.rng, perkOfferSize)
	s.mode = pausedFor(ReasonPerks)
}

// ChoosePerk takes offer i and resumes play.
func (s *State) ChoosePerk(i int) bool {
	if s.mode.Reason != ReasonPerks || i < 0 || i >= len(s.PerkOffer) {
		return false
	}
	s.ApplyPerk(s.PerkOffer[i])
	s.PerkOffer = nil
	s.mode = playing
	return true
}

// SkipPerks declines the offer.
func (s *State) SkipPerks() {
	if s.mode.Reason != ReasonPerks {
		return
	}
	s.PerkOffer = nil
	s.mode = playing
}

// RollPerks draws n distinct perks.
func RollPerks(rng interface{ Perm(int) []int }, n int) []model.PerkID {
	all := model.AllPerks()
	if n > len(all) {
		n = len(all)
	}
	out := make([]model.PerkID, 0, n)
	for _, i := range rng.Perm(len(all))[:n] {
		out = append(out, all[i].ID)
	}
	return out
}
