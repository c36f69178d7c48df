// Package casino implements the table mini-games. Each game only sees the
// chip balance through a world.TableSession.
package casino

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"raycasino/model"
	"raycasino/world"
)

const hintClose = "Esc: Close"

type entry struct {
	title    string
	cost     func() int
	describe func(ts *world.TableSession) string
	mount    func(ts *world.TableSession) world.TableGame
}

// Registry maps each table kind to its cost, description and game.
// Stakes and the blackjack shoe outlive a single visit to the table.
type Registry struct {
	log     *logrus.Entry
	entries map[model.TableKind]entry
	stakes  map[model.TableKind]int
	shoe    *Shoe
}

func NewRegistry(log *logrus.Entry) *Registry {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = logrus.NewEntry(l)
	}
	r := &Registry{
		log:    log.WithField("component", "casino"),
		stakes: map[model.TableKind]int{},
	}

	r.entries = map[model.TableKind]entry{
		model.TableWaveControl: {
			title:    "Wave Control",
			cost:     func() int { return 0 },
			describe: describeWave,
			mount: func(ts *world.TableSession) world.TableGame {
				return &WaveControl{reg: r, ts: ts}
			},
		},
		model.TablePerkSlots: {
			title: "Perk Slots",
			cost:  func() int { return perkSpinCost },
			describe: func(*world.TableSession) string {
				return fmt.Sprintf("Spin %d chips for 3 perks, reroll %d", perkSpinCost, perkRerollCost)
			},
			mount: func(ts *world.TableSession) world.TableGame {
				return &PerkSlots{reg: r, ts: ts}
			},
		},
		model.TableBlackjack: {
			title: "Blackjack",
			cost:  func() int { return r.Stake(model.TableBlackjack) },
			describe: func(*world.TableSession) string {
				return fmt.Sprintf("Beat the dealer. Win pays %d", 2*r.Stake(model.TableBlackjack))
			},
			mount: func(ts *world.TableSession) world.TableGame {
				if r.shoe == nil {
					r.shoe = NewShoe(ts.Rand())
				}
				return &Blackjack{reg: r, ts: ts, shoe: r.shoe}
			},
		},
	}
	for kind, rules := range wagerTables {
		kind, rules := kind, rules
		r.entries[kind] = entry{
			title:    rules.title,
			cost:     func() int { return r.Stake(kind) },
			describe: func(*world.TableSession) string { return rules.describe(r.Stake(kind)) },
			mount: func(ts *world.TableSession) world.TableGame {
				return &Wager{reg: r, ts: ts, kind: kind, rules: rules}
			},
		}
	}
	return r
}

// Mount builds the game for the session's table, or nil for unknown kinds.
// It satisfies world.MountFunc.
func (r *Registry) Mount(ts *world.TableSession) world.TableGame {
	e, ok := r.entries[ts.Table().Kind]
	if !ok {
		r.log.WithField("table", ts.Table().Kind.String()).Warn("no game for table")
		return nil
	}
	return e.mount(ts)
}

// Cost is the chips one play at the table needs.
func (r *Registry) Cost(kind model.TableKind) int {
	e, ok := r.entries[kind]
	if !ok {
		return 0
	}
	return e.cost()
}

func (r *Registry) Title(kind model.TableKind) string {
	e, ok := r.entries[kind]
	if !ok {
		return kind.String()
	}
	return e.title
}

// Describe is the one-line summary shown under the table title.
func (r *Registry) Describe(ts *world.TableSession) string {
	e, ok := r.entries[ts.Table().Kind]
	if !ok {
		return ""
	}
	return e.describe(ts)
}

// Stake returns the current bet at a table, never below 1.
func (r *Registry) Stake(kind model.TableKind) int {
	if n, ok := r.stakes[kind]; ok {
		return n
	}
	if rules, ok := wagerTables[kind]; ok {
		return rules.base
	}
	return 1
}

func (r *Registry) SetStake(kind model.TableKind, n int) {
	if n < 1 {
		n = 1
	}
	r.stakes[kind] = n
}

func (r *Registry) adjustStake(kind model.TableKind, a world.TableAction) bool {
	switch a {
	case world.ActionStakeUp:
		r.SetStake(kind, r.Stake(kind)+1)
	case world.ActionStakeDown:
		r.SetStake(kind, r.Stake(kind)-1)
	default:
		return false
	}
	return true
}

// header is the title block every game overlay starts with.
func (r *Registry) header(ts *world.TableSession) []string {
	kind := ts.Table().Kind
	return []string{
		r.Title(kind),
		r.Describe(ts),
		fmt.Sprintf("Cost: %d  Chips: %d", r.Cost(kind), ts.Chips()),
	}
}

func chipWord(n int) string {
	if n == 1 || n == -1 {
		return "chip"
	}
	return "chips"
}

func notEnough(n int) world.Result {
	return world.Result{
		Kind:    world.ResultError,
		Message: fmt.Sprintf("Not enough chips! Need %d %s.", n, chipWord(n)),
	}
}
