package sim

import "math"

// Ring is a gate that scores once when flown through
type Ring struct {
	ID        uint64
	Pos       Vec3
	Collected bool
}

// Captures reports whether ship is inside the gate's capture volume
func (r *Ring) Captures(ship Vec3, cfg *Config) bool {
	if math.Abs(ship.Z()-r.Pos.Z()) >= cfg.RingCaptureDepth {
		return false
	}
	return math.Hypot(ship.X()-r.Pos.X(), ship.Y()-r.Pos.Y()) < cfg.RingCaptureRadius
}

// ToState converts to snapshot state
func (r *Ring) ToState() RingState {
	return RingState{
		ID:        r.ID,
		X:         round1(r.Pos.X()),
		Y:         round1(r.Pos.Y()),
		Z:         round1(r.Pos.Z()),
		Collected: r.Collected,
	}
}
