package main

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"void-runner/sim"
)

// holdWindow is how long a key counts as held after its last press or repeat.
// Terminals report no key release.
const holdWindow = 150 * time.Millisecond

// keyInput is what one key event means to the simulation
type keyInput struct {
	hold  sim.Control
	press sim.Action
	boost bool // toggles boost
	quit  bool
}

// mapKey translates a tcell key event
func mapKey(ev *tcell.EventKey) keyInput {
	switch ev.Key() {
	case tcell.KeyLeft:
		return keyInput{hold: sim.ControlLeft}
	case tcell.KeyRight:
		return keyInput{hold: sim.ControlRight}
	case tcell.KeyUp:
		return keyInput{hold: sim.ControlUp}
	case tcell.KeyDown:
		return keyInput{hold: sim.ControlDown}
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return keyInput{quit: true}
	}
	switch ev.Rune() {
	case 'a', 'A':
		return keyInput{hold: sim.ControlLeft}
	case 'd', 'D':
		return keyInput{hold: sim.ControlRight}
	case 'w', 'W':
		return keyInput{hold: sim.ControlUp}
	case 's', 'S':
		return keyInput{hold: sim.ControlDown}
	case ' ':
		// one key launches, fires and retries depending on the state
		return keyInput{hold: sim.ControlFire, press: sim.ActionLaunch | sim.ActionFire | sim.ActionRetry}
	case 'b', 'B':
		return keyInput{boost: true}
	case 'q', 'Q':
		return keyInput{quit: true}
	}
	return keyInput{}
}

// heldKeys tracks the last time each control was seen
type heldKeys struct {
	seen  map[sim.Control]time.Time
	boost bool
}

func newHeldKeys() *heldKeys {
	return &heldKeys{seen: make(map[sim.Control]time.Time)}
}

// touch records the controls of c as seen at now
func (h *heldKeys) touch(c sim.Control, now time.Time) {
	for bit := sim.ControlLeft; bit <= sim.ControlFire; bit <<= 1 {
		if c.Has(bit) {
			h.seen[bit] = now
		}
	}
}

// held returns every control seen within holdWindow of now
func (h *heldKeys) held(now time.Time) sim.Control {
	var c sim.Control
	for bit, t := range h.seen {
		if now.Sub(t) < holdWindow {
			c |= bit
		}
	}
	if h.boost {
		c |= sim.ControlBoost
	}
	return c
}
