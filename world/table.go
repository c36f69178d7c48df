package world

import (
	"math"
	"math/rand"

	"raycasino/model"
)

const interactRange = 0.5

// TableAction is a player command sent to the open table game.
type TableAction int

const (
	ActionPlay TableAction = iota
	ActionHit
	ActionStand
	ActionDouble
	ActionReroll
	ActionPick1
	ActionPick2
	ActionPick3
	ActionStakeUp
	ActionStakeDown
)

type ResultKind int

const (
	ResultNone ResultKind = iota
	ResultWin
	ResultLose
	ResultPush
	ResultInfo
	ResultError
)

// Result is a table outcome shown on the HUD for a few seconds.
type Result struct {
	Kind    ResultKind
	Message string
	Chips   int
	Timer   float64
}

func (r Result) Active() bool {
	return r.Kind != ResultNone && r.Timer > 0
}

// TableGame is a mini-game mounted on a session.
type TableGame interface {
	Handle(action TableAction) Result
	Lines() []string
}

// MountFunc builds the game for a table, or returns nil when the table has none.
type MountFunc func(s *TableSession) TableGame

// SetMounter installs the table game factory.
func (s *State) SetMounter(m MountFunc) {
	s.mount = m
}

// TableSession is the capability a table game gets. It can only touch the
// chip balance and upgrades through these methods.
type TableSession struct {
	state  *State
	table  model.Table
	game   TableGame
	closed bool
}

func (ts *TableSession) Table() model.Table { return ts.table }

func (ts *TableSession) Game() TableGame { return ts.game }

func (ts *TableSession) Closed() bool { return ts.closed }

func (ts *TableSession) Debit(n int) bool {
	if ts.closed {
		return false
	}
	return ts.state.Debit(n)
}

func (ts *TableSession) Credit(n int) {
	if ts.closed {
		return
	}
	ts.state.Credit(n)
}

func (ts *TableSession) Close() {
	if ts.closed {
		return
	}
	ts.state.CloseTable()
}

func (ts *TableSession) Chips() int { return ts.state.Chips }

func (ts *TableSession) Luck() float64 { return ts.state.Upgrades.CasinoLuck }

func (ts *TableSession) ApplyPerk(id model.PerkID) bool {
	if ts.closed {
		return false
	}
	return ts.state.ApplyPerk(id)
}

func (ts *TableSession) Grant(stat model.Stat, amount float64) bool {
	if ts.closed {
		return false
	}
	return ts.state.Grant(stat, amount)
}

func (ts *TableSession) Rand() *rand.Rand { return ts.state.rng }

func (ts *TableSession) Wave() int { return ts.state.Wave.Number }

func (ts *TableSession) WaveInProgress() bool { return ts.state.Wave.InProgress }

func (ts *TableSession) WaveReady() bool { return ts.state.WaveReady() }

func (ts *TableSession) StartNextWave() bool {
	if ts.closed {
		return false
	}
	return ts.state.StartNextWave()
}

// NearbyTable returns the first table within interaction range of the player.
func (s *State) NearbyTable() (model.Table, bool) {
	p := s.Player.Position
	for _, t := range s.Tables {
		if math.Hypot(t.Position.X-p.X, t.Position.Y-p.Y) < t.Radius+interactRange {
			return t, true
		}
	}
	return model.Table{}, false
}

// Interact toggles the nearby table: it closes an open table, otherwise
// opens the one in range.
func (s *State) Interact() *TableSession {
	if s.session != nil {
		s.CloseTable()
		return nil
	}
	t, ok := s.NearbyTable()
	if !ok {
		return nil
	}
	return s.OpenTable(t)
}

// OpenTable pauses play and mounts the table's game.
func (s *State) OpenTable(t model.Table) *TableSession {
	if s.mode != playing {
		return nil
	}
	ts := &TableSession{state: s, table: t}
	s.session = ts
	s.mode = pausedFor(ReasonTable)
	if s.mount != nil {
		ts.game = s.mount(ts)
	}
	s.log.WithField("table", t.Kind.String()).Info("table opened")
	return ts
}

// CloseTable unmounts the game and resumes play.
func (s *State) CloseTable() {
	ts := s.session
	if ts == nil {
		return
	}
	if u, ok := ts.game.(interface{ Unmount() }); ok {
		u.Unmount()
	}
	ts.closed = true
	ts.game = nil
	s.session = nil
	if s.mode.Reason == ReasonTable {
		s.mode = playing
	}
	s.log.WithField("table", ts.table.Kind.String()).Info("table closed")
}

func (s *State) Session() *TableSession {
	return s.session
}

// PlayTable forwards an action to the open game and shows its result.
func (s *State) PlayTable(a TableAction) Result {
	if s.session == nil || s.session.game == nil {
		return Result{}
	}
	r := s.session.game.Handle(a)
	if r.Kind != ResultNone {
		s.ShowResult(r)
	}
	return r
}

// ShowResult displays r for the standard message time.
func (s *State) ShowResult(r Result) {
	r.Timer = messageTime
	s.Result = r
}
