package casino

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"

	"raycasino/model"
	"raycasino/world"
)

// Outcome is one resolved wager. Payout is in chips for a base-sized stake;
// zero is a loss.
type Outcome struct {
	Payout int
	Detail string
}

type wagerRules struct {
	title    string
	base     int
	describe func(stake int) string
	roll     func(rng *rand.Rand, luck float64) Outcome
}

var wagerTables = map[model.TableKind]wagerRules{
	model.TableRoulette: {
		title: "Roulette",
		base:  1,
		describe: func(stake int) string {
			return fmt.Sprintf("35%% (+%d)", scale(rouletteWin, stake, 1))
		},
		roll: SpinRoulette,
	},
	model.TableSlots: {
		title: "Slots",
		base:  1,
		describe: func(stake int) string {
			return fmt.Sprintf("Three of a kind +%d, pair +%d", scale(slotsTriple, stake, 1), scale(slotsPair, stake, 1))
		},
		roll: withLuck(PullSlots),
	},
	model.TablePoker: {
		title: "Poker",
		base:  2,
		describe: func(stake int) string {
			return fmt.Sprintf("Trips +%d, straight +%d, pair +%d",
				scale(pokerTrips, stake, 2), scale(pokerStraight, stake, 2), scale(pokerPair, stake, 2))
		},
		roll: withLuck(DealPoker),
	},
	model.TableCraps: {
		title: "Craps",
		base:  3,
		describe: func(stake int) string {
			return fmt.Sprintf("7 or 11 +%d, 2 3 12 lose, else push", scale(crapsNatural, stake, 3))
		},
		roll: withLuck(RollCraps),
	},
}

const (
	rouletteChance = 0.35
	rouletteWin    = 3

	slotsTriple = 4
	slotsPair   = 2

	pokerTrips    = 5
	pokerStraight = 3
	pokerPair     = 2

	crapsNatural = 6
	crapsPush    = 3
)

// scale converts a base-stake payout to the current stake.
func scale(payout, stake, base int) int {
	return payout * stake / base
}

// withLuck re-rolls a losing result once with probability luck.
func withLuck(roll func(rng *rand.Rand) Outcome) func(*rand.Rand, float64) Outcome {
	return func(rng *rand.Rand, luck float64) Outcome {
		o := roll(rng)
		if o.Payout == 0 && luck > 0 && rng.Float64() < luck {
			o = roll(rng)
		}
		return o
	}
}

// SpinRoulette wins with probability 0.35 plus luck.
func SpinRoulette(rng *rand.Rand, luck float64) Outcome {
	if rng.Float64() < rouletteChance+luck {
		return Outcome{Payout: rouletteWin, Detail: "Red!"}
	}
	return Outcome{Detail: "Black."}
}

var SlotSymbols = []string{"CHERRY", "BELL", "STAR", "7", "LEMON", "GEM"}

func PullSlots(rng *rand.Rand) Outcome {
	var reels [3]int
	for i := range reels {
		reels[i] = rng.Intn(len(SlotSymbols))
	}
	return Outcome{Payout: SlotsPayout(reels), Detail: slotsLine(reels)}
}

func SlotsPayout(reels [3]int) int {
	a, b, c := reels[0], reels[1], reels[2]
	switch {
	case a == b && b == c:
		return slotsTriple
	case a == b || b == c || a == c:
		return slotsPair
	}
	return 0
}

func slotsLine(reels [3]int) string {
	names := make([]string, len(reels))
	for i, r := range reels {
		names[i] = SlotSymbols[r]
	}
	return strings.Join(names, " | ")
}

func DealPoker(rng *rand.Rand) Outcome {
	cards := []int{1 + rng.Intn(13), 1 + rng.Intn(13), 1 + rng.Intn(13)}
	sort.Ints(cards)
	hand := [3]int{cards[0], cards[1], cards[2]}
	return Outcome{Payout: PokerPayout(hand), Detail: fmt.Sprintf("%d %d %d", hand[0], hand[1], hand[2])}
}

// PokerPayout scores three cards sorted ascending.
func PokerPayout(hand [3]int) int {
	a, b, c := hand[0], hand[1], hand[2]
	switch {
	case a == b && b == c:
		return pokerTrips
	case a+1 == b && b+1 == c:
		return pokerStraight
	case a == b || b == c:
		return pokerPair
	}
	return 0
}

func RollCraps(rng *rand.Rand) Outcome {
	d1, d2 := 1+rng.Intn(6), 1+rng.Intn(6)
	return Outcome{Payout: CrapsPayout(d1 + d2), Detail: fmt.Sprintf("%d + %d = %d", d1, d2, d1+d2)}
}

func CrapsPayout(sum int) int {
	switch sum {
	case 7, 11:
		return crapsNatural
	case 2, 3, 12:
		return 0
	}
	return crapsPush
}

// Wager is a single-action bet: pay the stake, roll, collect.
type Wager struct {
	reg   *Registry
	ts    *world.TableSession
	kind  model.TableKind
	rules wagerRules
	last  string
}

func (w *Wager) Handle(a world.TableAction) world.Result {
	if w.reg.adjustStake(w.kind, a) {
		return world.Result{}
	}
	if a != world.ActionPlay {
		return world.Result{}
	}

	stake := w.reg.Stake(w.kind)
	if !w.ts.Debit(stake) {
		return notEnough(stake)
	}
	o := w.rules.roll(w.ts.Rand(), w.ts.Luck())
	won := scale(o.Payout, stake, w.rules.base)
	w.ts.Credit(won)
	w.last = o.Detail

	net := won - stake
	w.reg.log.WithFields(logrus.Fields{
		"table": w.kind.String(),
		"stake": stake,
		"net":   net,
	}).Debug("wager resolved")

	switch {
	case net > 0:
		return world.Result{Kind: world.ResultWin, Message: fmt.Sprintf("%s You won! +%d %s", o.Detail, net, chipWord(net)), Chips: net}
	case net == 0:
		return world.Result{Kind: world.ResultPush, Message: fmt.Sprintf("%s Push, stake returned.", o.Detail)}
	}
	return world.Result{Kind: world.ResultLose, Message: fmt.Sprintf("%s You lost! %d %s", o.Detail, net, chipWord(net)), Chips: net}
}

func (w *Wager) Lines() []string {
	lines := w.reg.header(w.ts)
	if w.last != "" {
		lines = append(lines, "Last: "+w.last)
	}
	return append(lines, "Enter: Play  +/-: Stake  "+hintClose)
}
