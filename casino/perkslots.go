package casino

import (
	"fmt"
	"strings"

	"raycasino/model"
	"raycasino/world"
)

const (
	perkSpinCost   = 3
	perkRerollCost = 2
	perkReels      = 3
)

// PerkSlots sells perks: spin for a roll of distinct perks, then pick one.
// It never pays out chips.
type PerkSlots struct {
	reg  *Registry
	ts   *world.TableSession
	roll []model.PerkID
}

func (p *PerkSlots) Roll() []model.PerkID { return p.roll }

func (p *PerkSlots) Handle(a world.TableAction) world.Result {
	switch a {
	case world.ActionPlay:
		return p.Spin()
	case world.ActionReroll:
		return p.Reroll()
	case world.ActionPick1, world.ActionPick2, world.ActionPick3:
		return p.Pick(int(a - world.ActionPick1))
	}
	return world.Result{}
}

func (p *PerkSlots) Spin() world.Result {
	if len(p.roll) > 0 {
		return world.Result{Kind: world.ResultInfo, Message: "Pick a perk or reroll."}
	}
	return p.spin(perkSpinCost)
}

// Reroll replaces an existing roll at the cheaper price.
func (p *PerkSlots) Reroll() world.Result {
	if len(p.roll) == 0 {
		return world.Result{Kind: world.ResultError, Message: "Spin first."}
	}
	return p.spin(perkRerollCost)
}

func (p *PerkSlots) spin(cost int) world.Result {
	if !p.ts.Debit(cost) {
		return notEnough(cost)
	}
	p.roll = world.RollPerks(p.ts.Rand(), perkReels)
	return world.Result{Kind: world.ResultInfo, Message: "Rolled " + rollString(p.roll), Chips: -cost}
}

func (p *PerkSlots) Pick(i int) world.Result {
	if i < 0 || i >= len(p.roll) {
		return world.Result{}
	}
	id := p.roll[i]
	p.roll = nil
	if !p.ts.ApplyPerk(id) {
		return world.Result{}
	}
	perk, _ := id.Perk()
	p.reg.log.WithField("perk", id.String()).Info("perk bought")
	return world.Result{Kind: world.ResultWin, Message: perk.Name}
}

func (p *PerkSlots) Unmount() {
	p.roll = nil
}

func (p *PerkSlots) Lines() []string {
	lines := p.reg.header(p.ts)
	if len(p.roll) == 0 {
		return append(lines, fmt.Sprintf("Enter: Spin (%d)  %s", perkSpinCost, hintClose))
	}
	for i, id := range p.roll {
		perk, _ := id.Perk()
		lines = append(lines, fmt.Sprintf("%d: %s", i+1, perk.Name))
	}
	return append(lines, fmt.Sprintf("1-3: Pick  R: Reroll (%d)  %s", perkRerollCost, hintClose))
}

func rollString(roll []model.PerkID) string {
	parts := make([]string, len(roll))
	for i, id := range roll {
		parts[i] = id.String()
	}
	return strings.Join(parts, " | ")
}
