package casino

import (
	"math/rand"
	"testing"

	"raycasino/model"
	"raycasino/world"
)

func TestHandTotal(t *testing.T) {
	tests := []struct {
		name string
		hand []int
		want int
	}{
		{"blackjack", []int{Ace, 10}, 21},
		{"two aces", []int{Ace, Ace}, 12},
		{"soft to hard", []int{Ace, 5, 10}, 16},
		{"two aces and ten", []int{Ace, Ace, 10}, 12},
		{"bust", []int{10, 9, 5}, 24},
		{"empty", nil, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HandTotal(tt.hand); got != tt.want {
				t.Fatalf("HandTotal(%v) = %d, want %d", tt.hand, got, tt.want)
			}
		})
	}
}

func TestShoeComposition(t *testing.T) {
	shoe := NewShoe(rand.New(rand.NewSource(7)))
	if shoe.Len() != 208 {
		t.Fatalf("shoe has %d cards, want 208", shoe.Len())
	}
	counts := map[int]int{}
	for shoe.Len() > 0 {
		counts[shoe.Draw()]++
	}
	if counts[10] != 64 || counts[Ace] != 16 || counts[2] != 16 {
		t.Fatalf("counts = %v", counts)
	}
	shoe.Draw()
	if shoe.Len() != 207 {
		t.Fatalf("empty shoe was not rebuilt: %d", shoe.Len())
	}
}

func blackjack(t *testing.T, ts *world.TableSession) *Blackjack {
	t.Helper()
	bj, ok := ts.Game().(*Blackjack)
	if !ok {
		t.Fatalf("game is %T", ts.Game())
	}
	return bj
}

func TestBlackjackDealAndStand(t *testing.T) {
	s, _, ts := openTable(t, model.TableBlackjack)
	s.Chips = 500
	bj := blackjack(t, ts)

	for i := 0; i < 100; i++ {
		start := s.Chips
		bj.Handle(world.ActionPlay)
		if bj.Phase() != PhasePlaying {
			t.Fatalf("hand %d: phase %v after deal", i, bj.Phase())
		}
		if len(bj.Player()) != 2 || len(bj.Dealer()) != 2 {
			t.Fatalf("hand %d: dealt %d/%d cards", i, len(bj.Player()), len(bj.Dealer()))
		}
		if s.Chips != start-1 {
			t.Fatalf("hand %d: deal debited %d", i, start-s.Chips)
		}

		bj.Handle(world.ActionPlay)
		if s.Chips != start-1 {
			t.Fatalf("hand %d: second deal mid-hand was not ignored", i)
		}

		r := bj.Handle(world.ActionStand)
		if bj.Phase() != PhaseFinished {
			t.Fatalf("hand %d: phase %v after stand", i, bj.Phase())
		}
		if HandTotal(bj.Dealer()) < 17 {
			t.Fatalf("hand %d: dealer stood on %d", i, HandTotal(bj.Dealer()))
		}
		net := s.Chips - start
		if net != r.Chips {
			t.Fatalf("hand %d: result %d, balance moved %d", i, r.Chips, net)
		}
		switch r.Kind {
		case world.ResultWin:
			if net != 1 {
				t.Fatalf("hand %d: win netted %d", i, net)
			}
		case world.ResultPush:
			if net != 0 {
				t.Fatalf("hand %d: push netted %d", i, net)
			}
		case world.ResultLose:
			if net != -1 {
				t.Fatalf("hand %d: loss netted %d", i, net)
			}
		default:
			t.Fatalf("hand %d: kind %v", i, r.Kind)
		}
	}
}

func TestBlackjackDouble(t *testing.T) {
	s, reg, ts := openTable(t, model.TableBlackjack)
	reg.SetStake(model.TableBlackjack, 2)
	s.Chips = 100
	bj := blackjack(t, ts)

	bj.Handle(world.ActionPlay)
	r := bj.Handle(world.ActionDouble)
	if len(bj.Player()) != 3 {
		t.Fatalf("double drew %d cards", len(bj.Player())-2)
	}
	if bj.Phase() != PhaseFinished {
		t.Fatalf("double did not finish the hand")
	}
	net := s.Chips - 100
	if net != 4 && net != 0 && net != -4 {
		t.Fatalf("double netted %d", net)
	}
	if r.Chips != net {
		t.Fatalf("result %d, balance moved %d", r.Chips, net)
	}
}

func TestBlackjackDoubleNeedsChips(t *testing.T) {
	s, reg, ts := openTable(t, model.TableBlackjack)
	reg.SetStake(model.TableBlackjack, 3)
	s.Chips = 4
	bj := blackjack(t, ts)

	bj.Handle(world.ActionPlay)
	if r := bj.Handle(world.ActionDouble); r.Kind != world.ResultError {
		t.Fatalf("double with 1 chip left: %+v", r)
	}
	if s.Chips != 1 || bj.Phase() != PhasePlaying {
		t.Fatalf("chips %d phase %v", s.Chips, bj.Phase())
	}
}

func TestBlackjackHitUntilBust(t *testing.T) {
	s, _, ts := openTable(t, model.TableBlackjack)
	bj := blackjack(t, ts)

	bj.Handle(world.ActionPlay)
	var r world.Result
	for bj.Phase() == PhasePlaying {
		r = bj.Handle(world.ActionHit)
	}
	if HandTotal(bj.Player()) <= 21 {
		t.Fatalf("hand finished on %d without standing", HandTotal(bj.Player()))
	}
	if r.Kind != world.ResultLose || s.Chips != world.DefaultChips-1 {
		t.Fatalf("bust result %+v chips %d", r, s.Chips)
	}
}

func TestBlackjackStakeLockedMidHand(t *testing.T) {
	_, reg, ts := openTable(t, model.TableBlackjack)
	bj := blackjack(t, ts)

	bj.Handle(world.ActionStakeUp)
	if reg.Stake(model.TableBlackjack) != 2 {
		t.Fatalf("stake = %d", reg.Stake(model.TableBlackjack))
	}
	bj.Handle(world.ActionPlay)
	bj.Handle(world.ActionStakeUp)
	if reg.Stake(model.TableBlackjack) != 2 {
		t.Fatalf("stake changed during a hand")
	}
}

func TestBlackjackShoeOutlivesTable(t *testing.T) {
	s, reg, ts := openTable(t, model.TableBlackjack)
	blackjack(t, ts).Handle(world.ActionPlay)
	s.CloseTable()
	if reg.shoe.Len() != 204 {
		t.Fatalf("shoe = %d after one deal", reg.shoe.Len())
	}

	ts = s.Interact()
	bj := blackjack(t, ts)
	if bj.Phase() != PhaseWaiting || bj.shoe != reg.shoe {
		t.Fatalf("reopened table did not reuse the shoe")
	}
	for reg.shoe.Len() >= shoeMinCards {
		reg.shoe.Draw()
	}
	s.Chips = 10
	bj.Handle(world.ActionPlay)
	if reg.shoe.Len() != 204 {
		t.Fatalf("short shoe was not rebuilt before the deal: %d", reg.shoe.Len())
	}
}

func TestBlackjackUnmountResets(t *testing.T) {
	s, _, ts := openTable(t, model.TableBlackjack)
	bj := blackjack(t, ts)
	bj.Handle(world.ActionPlay)
	s.CloseTable()
	if bj.Phase() != PhaseWaiting || bj.Player() != nil {
		t.Fatalf("close left a hand in progress")
	}
}

func TestBlackjackWinBonusGrantsWithoutPicks(t *testing.T) {
	s, _, ts := openTable(t, model.TableBlackjack)
	s.Chips = 1000
	bj := blackjack(t, ts)
	base := model.NewUpgrades()

	wins := 0
	for i := 0; i < 400; i++ {
		bj.Handle(world.ActionPlay)
		if r := bj.Handle(world.ActionStand); r.Kind == world.ResultWin {
			wins++
		}
	}
	if wins == 0 {
		t.Fatalf("no wins in 400 hands")
	}
	u := s.Upgrades
	raised := u.Damage+u.FireRate+u.MaxHP+u.AmmoCapacity+u.Speed > base.Damage+base.FireRate+base.MaxHP+base.AmmoCapacity+base.Speed
	if !raised {
		t.Fatalf("no bonus granted across %d wins", wins)
	}
	for _, p := range model.AllPerks() {
		if u.PickCount(p.ID) != 0 {
			t.Fatalf("bonus counted as a %s pick", p.Short)
		}
	}
}
