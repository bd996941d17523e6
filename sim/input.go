package sim

import "sync"

// Control is a bitmask of continuously held controls
type Control uint8

const (
	ControlLeft Control = 1 << iota
	ControlRight
	ControlUp
	ControlDown
	ControlBoost
	ControlFire
)

// Has reports whether every bit of c is held
func (h Control) Has(c Control) bool {
	return h&c == c
}

// Action is a bitmask of discrete actions pressed since the last tick
type Action uint8

const (
	ActionLaunch Action = 1 << iota
	ActionFire
	ActionRetry
)

// Has reports whether a was pressed
func (p Action) Has(a Action) bool {
	return p&a == a
}

// Input is the control sample for one tick
type Input struct {
	Held    Control
	Pressed Action
}

// InputQueue collects input between ticks. Writers may be on other goroutines;
// the simulation drains it once per tick with Sample.
type InputQueue struct {
	mu      sync.Mutex
	held    Control
	pressed Action
}

// SetHeld replaces the held set
func (q *InputQueue) SetHeld(held Control) {
	q.mu.Lock()
	q.held = held
	q.mu.Unlock()
}

// Hold sets or clears a single held control
func (q *InputQueue) Hold(c Control, down bool) {
	q.mu.Lock()
	if down {
		q.held |= c
	} else {
		q.held &^= c
	}
	q.mu.Unlock()
}

// Press records a discrete action until the next Sample
func (q *InputQueue) Press(a Action) {
	q.mu.Lock()
	q.pressed |= a
	q.mu.Unlock()
}

// Sample returns the current input and clears the pressed set
func (q *InputQueue) Sample() Input {
	q.mu.Lock()
	defer q.mu.Unlock()
	in := Input{Held: q.held, Pressed: q.pressed}
	q.pressed = 0
	return in
}
