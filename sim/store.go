package sim

import "slices"

// Store owns every live entity of a session. Each entity lives in exactly one
// slice; slices keep spawn order, which collision tie-breaks depend on.
type Store struct {
	PlayerBolts  []Bolt
	HostileBolts []Bolt
	Enemies      []Enemy
	Asteroids    []Asteroid
	Rings        []Ring
	Pickups      []Pickup
	nextID       uint64
}

// NewID returns a session-unique entity id
func (s *Store) NewID() uint64 {
	s.nextID++
	return s.nextID
}

// Reset drops every entity
func (s *Store) Reset() {
	*s = Store{}
}

// Count returns the number of live entities
func (s *Store) Count() int {
	return len(s.PlayerBolts) + len(s.HostileBolts) + len(s.Enemies) +
		len(s.Asteroids) + len(s.Rings) + len(s.Pickups)
}

// expireBolts advances bolts and drops those whose time-to-live ran out
func expireBolts(bolts []Bolt, dt float64) []Bolt {
	for i := range bolts {
		bolts[i].Update(dt)
	}
	return slices.DeleteFunc(bolts, func(b Bolt) bool { return b.Expired() })
}

// Cull evicts hazards and collectibles whose Z is beyond cutoff. Nothing is
// scored for them. Returns how many were removed.
func (s *Store) Cull(cutoff float64) int {
	n := s.Count()
	s.Enemies = slices.DeleteFunc(s.Enemies, func(e Enemy) bool { return e.Pos.Z() > cutoff })
	s.Asteroids = slices.DeleteFunc(s.Asteroids, func(a Asteroid) bool { return a.Pos.Z() > cutoff })
	s.Rings = slices.DeleteFunc(s.Rings, func(r Ring) bool { return r.Pos.Z() > cutoff })
	s.Pickups = slices.DeleteFunc(s.Pickups, func(p Pickup) bool { return p.Pos.Z() > cutoff })
	return n - s.Count()
}
