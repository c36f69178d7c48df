package world

import (
	"time"
)

// MaxFrameDelta bounds a single step so a hitch cannot tunnel physics.
const MaxFrameDelta = 0.05

// Clock turns a monotonic time source into clamped frame deltas.
type Clock struct {
	now     func() time.Time
	last    time.Time
	started bool
}

func NewClock(now func() time.Time) *Clock {
	if now == nil {
		now = time.Now
	}
	return &Clock{now: now}
}

// Tick returns the seconds since the previous tick, clamped to
// [0, MaxFrameDelta]. The first tick returns 0.
func (c *Clock) Tick() float64 {
	t := c.now()
	if !c.started {
		c.started = true
		c.last = t
		return 0
	}
	dt := t.Sub(c.last).Seconds()
	c.last = t
	return ClampDelta(dt)
}

func ClampDelta(dt float64) float64 {
	if dt < 0 {
		return 0
	}
	if dt > MaxFrameDelta {
		return MaxFrameDelta
	}
	return dt
}

// Driver runs one update and one render per frame.
type Driver struct {
	Clock  *Clock
	State  *State
	Render func(*State)

	frames int
}

func NewDriver(s *State, clock *Clock, render func(*State)) *Driver {
	if clock == nil {
		clock = NewClock(nil)
	}
	return &Driver{Clock: clock, State: s, Render: render}
}

// Step performs one frame and returns the delta it used.
func (d *Driver) Step(in Input) float64 {
	dt := d.Clock.Tick()
	d.State.Update(dt, in)
	if d.Render != nil {
		d.Render(d.State)
	}
	d.frames++
	return dt
}

func (d *Driver) Frames() int {
	return d.frames
}
