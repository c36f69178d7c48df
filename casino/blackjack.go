package casino

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"raycasino/model"
	"raycasino/world"
)

const (
	shoeDecks    = 4
	shoeMinCards = 30
	dealerStands = 17

	bonusChance = 0.3
	bonusAmount = 0.1
)

// Ace is stored as 11 and counted as 1 when the hand would bust.
const Ace = 11

var cardRanks = []int{2, 3, 4, 5, 6, 7, 8, 9, 10, 10, 10, 10, Ace}

// Shoe is a multi-deck card stack drawn from the top.
type Shoe struct {
	rng   *rand.Rand
	cards []int
}

func NewShoe(rng *rand.Rand) *Shoe {
	s := &Shoe{rng: rng}
	s.Rebuild()
	return s
}

// Rebuild refills the shoe with four decks and shuffles it.
func (s *Shoe) Rebuild() {
	s.cards = s.cards[:0]
	for d := 0; d < shoeDecks; d++ {
		for suit := 0; suit < 4; suit++ {
			s.cards = append(s.cards, cardRanks...)
		}
	}
	for i := len(s.cards) - 1; i > 0; i-- {
		j := s.rng.Intn(i + 1)
		s.cards[i], s.cards[j] = s.cards[j], s.cards[i]
	}
}

func (s *Shoe) Len() int {
	return len(s.cards)
}

// Draw pops the top card, rebuilding an empty shoe first.
func (s *Shoe) Draw() int {
	if len(s.cards) == 0 {
		s.Rebuild()
	}
	c := s.cards[len(s.cards)-1]
	s.cards = s.cards[:len(s.cards)-1]
	return c
}

// HandTotal counts aces as 11, dropping them to 1 while over 21.
func HandTotal(hand []int) int {
	total, aces := 0, 0
	for _, c := range hand {
		if c == Ace {
			aces++
		}
		total += c
	}
	for total > 21 && aces > 0 {
		total -= 10
		aces--
	}
	return total
}

type Phase int

const (
	PhaseWaiting Phase = iota
	PhasePlaying
	PhaseFinished
)

// Blackjack plays single hands against a dealer who draws to 17.
type Blackjack struct {
	reg  *Registry
	ts   *world.TableSession
	shoe *Shoe

	phase  Phase
	bet    int
	player []int
	dealer []int
}

func (b *Blackjack) Phase() Phase { return b.phase }

func (b *Blackjack) Player() []int { return b.player }

func (b *Blackjack) Dealer() []int { return b.dealer }

func (b *Blackjack) Handle(a world.TableAction) world.Result {
	if b.phase != PhasePlaying && b.reg.adjustStake(model.TableBlackjack, a) {
		return world.Result{}
	}
	switch a {
	case world.ActionPlay:
		return b.Deal()
	case world.ActionHit:
		return b.Hit()
	case world.ActionStand:
		return b.Stand()
	case world.ActionDouble:
		return b.Double()
	}
	return world.Result{}
}

// Deal pays the stake and deals two cards each.
func (b *Blackjack) Deal() world.Result {
	if b.phase == PhasePlaying {
		return world.Result{}
	}
	stake := b.reg.Stake(model.TableBlackjack)
	if !b.ts.Debit(stake) {
		return notEnough(stake)
	}
	if b.shoe.Len() < shoeMinCards {
		b.shoe.Rebuild()
	}
	b.bet = stake
	b.player = []int{b.shoe.Draw(), b.shoe.Draw()}
	b.dealer = []int{b.shoe.Draw(), b.shoe.Draw()}
	b.phase = PhasePlaying
	return world.Result{}
}

func (b *Blackjack) Hit() world.Result {
	if b.phase != PhasePlaying {
		return world.Result{}
	}
	b.player = append(b.player, b.shoe.Draw())
	if HandTotal(b.player) > 21 {
		return b.finish(world.ResultLose, "Bust! You went over 21.", -b.bet)
	}
	return world.Result{}
}

// Double pays the stake again, takes exactly one card and stands.
func (b *Blackjack) Double() world.Result {
	if b.phase != PhasePlaying || len(b.player) != 2 {
		return world.Result{}
	}
	extra := b.bet
	if !b.ts.Debit(extra) {
		return notEnough(extra)
	}
	b.bet += extra
	b.player = append(b.player, b.shoe.Draw())
	if HandTotal(b.player) > 21 {
		return b.finish(world.ResultLose, "Bust! You went over 21.", -b.bet)
	}
	return b.Stand()
}

func (b *Blackjack) Stand() world.Result {
	if b.phase != PhasePlaying {
		return world.Result{}
	}
	for HandTotal(b.dealer) < dealerStands {
		b.dealer = append(b.dealer, b.shoe.Draw())
	}

	p, d := HandTotal(b.player), HandTotal(b.dealer)
	switch {
	case p > 21:
		return b.finish(world.ResultLose, "Bust! You went over 21.", -b.bet)
	case d > 21:
		b.ts.Credit(2 * b.bet)
		return b.win("Dealer bust! You win!")
	case p > d:
		b.ts.Credit(2 * b.bet)
		return b.win("You win!")
	case p == d:
		b.ts.Credit(b.bet)
		return b.finish(world.ResultPush, "Push! Tie game.", 0)
	}
	return b.finish(world.ResultLose, "Dealer wins!", -b.bet)
}

func (b *Blackjack) win(msg string) world.Result {
	rng := b.ts.Rand()
	if rng.Float64() < bonusChance {
		stat := model.CoreStats[rng.Intn(len(model.CoreStats))]
		if b.ts.Grant(stat, bonusAmount) {
			msg += fmt.Sprintf(" Bonus +%.1f %s", bonusAmount, stat)
		}
	}
	return b.finish(world.ResultWin, msg, b.bet)
}

func (b *Blackjack) finish(kind world.ResultKind, msg string, net int) world.Result {
	b.phase = PhaseFinished
	b.reg.log.WithFields(logrus.Fields{
		"player": HandTotal(b.player),
		"dealer": HandTotal(b.dealer),
		"net":    net,
	}).Debug("blackjack hand finished")
	return world.Result{Kind: kind, Message: msg, Chips: net}
}

// Unmount drops any hand in progress.
func (b *Blackjack) Unmount() {
	b.phase = PhaseWaiting
	b.player, b.dealer = nil, nil
	b.bet = 0
}

func (b *Blackjack) Lines() []string {
	lines := b.reg.header(b.ts)
	switch b.phase {
	case PhaseWaiting:
		lines = append(lines, "Enter: Deal  +/-: Stake  "+hintClose)
	case PhasePlaying:
		lines = append(lines,
			fmt.Sprintf("Dealer: %s ?", cardName(b.dealer[0])),
			fmt.Sprintf("You: %s (%d)", handString(b.player), HandTotal(b.player)),
			"H: Hit  S: Stand  D: Double  "+hintClose)
	case PhaseFinished:
		lines = append(lines,
			fmt.Sprintf("Dealer: %s (%d)", handString(b.dealer), HandTotal(b.dealer)),
			fmt.Sprintf("You: %s (%d)", handString(b.player), HandTotal(b.player)),
			"Enter: Deal again  +/-: Stake  "+hintClose)
	}
	return lines
}

func cardName(c int) string {
	if c == Ace {
		return "A"
	}
	return strconv.Itoa(c)
}

func handString(hand []int) string {
	parts := make([]string, len(hand))
	for i, c := range hand {
		parts[i] = cardName(c)
	}
	return strings.Join(parts, " ")
}
