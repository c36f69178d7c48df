package world

import "fmt"

type Mode int

const (
	Playing Mode = iota
	Paused
)

// Reason says why gameplay is paused.
type Reason int

const (
	ReasonNone Reason = iota
	ReasonMenu
	ReasonTable
	ReasonPerks
	ReasonDefeat
)

var reasonNames = [...]string{
	ReasonNone:   "none",
	ReasonMenu:   "menu",
	ReasonTable:  "table",
	ReasonPerks:  "perks",
	ReasonDefeat: "defeat",
}

func (r Reason) String() string {
	if r < 0 || int(r) >= len(reasonNames) {
		return fmt.Sprintf("Reason(%d)", int(r))
	}
	return reasonNames[r]
}

// InteractionMode is either Playing or Paused for a single Reason.
type InteractionMode struct {
	Mode   Mode
	Reason Reason
}

var playing = InteractionMode{Mode: Playing}

func pausedFor(r Reason) InteractionMode {
	return InteractionMode{Mode: Paused, Reason: r}
}

func (m InteractionMode) String() string {
	if m.Mode == Playing {
		return "playing"
	}
	return "paused(" + m.Reason.String() + ")"
}
