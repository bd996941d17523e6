package sim

// Pickup is a hull repair orb
type Pickup struct {
	ID  uint64
	Pos Vec3
}

// ToState converts to snapshot state
func (p *Pickup) ToState() PickupState {
	return PickupState{
		ID: p.ID,
		X:  round1(p.Pos.X()),
		Y:  round1(p.Pos.Y()),
		Z:  round1(p.Pos.Z()),
	}
}
