package world

import (
	"math"
)

// Input is one frame of polled player input. Axes are in [-1, 1]; look
// deltas are raw pointer movement in pixels.
type Input struct {
	Forward float64
	Strafe  float64
	Turn    float64

	LookX, LookY float64
	Captured     bool

	Fire      bool
	Reload    bool
	Interact  bool
	StartWave bool
	Pause     bool
	Close     bool
	Restart   bool

	Table []TableAction
}

// Update advances the game by dt seconds. Movement, AI, weapons, damage and
// regeneration only run while playing; message and wave timers always run.
func (s *State) Update(dt float64, in Input) {
	s.handleCommands(in)

	if !s.Paused() {
		s.look(in)
		s.movePlayer(dt, in)
		s.moveEnemies(dt)
		if in.Fire && s.FireWeapon() {
			s.HitMarker = hitMarkerTime
		}
		s.reap()

		s.Weapon.Update(dt)
		if s.DamageFlash > 0 {
			s.DamageFlash = math.Max(0, s.DamageFlash-dt*damageFlashDecay)
		}
		if s.HitMarker > 0 {
			s.HitMarker = math.Max(0, s.HitMarker-dt)
		}
		if r := s.Upgrades.HealthRegen; r > 0 && s.HP > 0 && s.HP < float64(s.MaxHP) {
			s.HP = math.Min(float64(s.MaxHP), s.HP+r*dt)
		}

		s.TopUp()
		s.checkWaveComplete()

		if s.HP <= 0 {
			s.defeat()
		}
	}

	if s.RoundComplete > 0 {
		s.RoundComplete = math.Max(0, s.RoundComplete-dt)
	}
	if s.Result.Timer > 0 {
		s.Result.Timer = math.Max(0, s.Result.Timer-dt)
	}
	s.tickAutoAdvance(dt)
}

func (s *State) handleCommands(in Input) {
	switch s.mode.Reason {
	case ReasonDefeat:
		if in.Restart {
			s.Restart()
		}
		return
	case ReasonTable:
		if in.Close || in.Interact {
			s.CloseTable()
			return
		}
		for _, a := range in.Table {
			s.PlayTable(a)
			if s.session == nil {
				break
			}
		}
		return
	case ReasonPerks:
		if in.Close {
			s.SkipPerks()
			return
		}
		for _, a := range in.Table {
			if a >= ActionPick1 && a <= ActionPick3 {
				s.ChoosePerk(int(a - ActionPick1))
				return
			}
		}
		return
	}

	if in.Pause {
		s.TogglePause()
	}
	if s.Paused() {
		return
	}
	if in.Interact {
		s.Interact()
	}
	if in.Reload {
		s.Reload()
	}
	if in.StartWave && s.Countdown() > 0 {
		s.StartNextWave()
	}
}

func (s *State) defeat() {
	if s.session != nil {
		s.CloseTable()
	}
	s.mode = pausedFor(ReasonDefeat)
	s.log.WithField("wave", s.Wave.Number).WithField("score", s.Score).Info("player defeated")
}
