package sim

// State is the session lifecycle phase
type State int

const (
	StateMenu State = iota
	StatePlaying
	StateDestroyed
)

func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StateDestroyed:
		return "destroyed"
	}
	return "unknown"
}
