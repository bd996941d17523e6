package sim

const (
	AsteroidRadiusMin = 1.0
	AsteroidRadiusMax = 3.5
)

// Asteroid is a static rock the ship flies past
type Asteroid struct {
	ID     uint64
	Pos    Vec3
	Radius float64
	HP     int
}

// AsteroidHP maps a radius to its hit point tier
func AsteroidHP(radius float64) int {
	switch {
	case radius > 2.5:
		return 3
	case radius > 1.5:
		return 2
	default:
		return 1
	}
}

// NewAsteroid creates an asteroid with hit points derived from its radius
func NewAsteroid(id uint64, pos Vec3, radius float64) Asteroid {
	return Asteroid{
		ID:     id,
		Pos:    pos,
		Radius: radius,
		HP:     AsteroidHP(radius),
	}
}

// TakeHit removes one hit point and returns true if the asteroid breaks up
func (a *Asteroid) TakeHit() bool {
	a.HP--
	if a.HP <= 0 {
		a.HP = 0
		return true
	}
	return false
}

// Tier sizes the explosion
func (a *Asteroid) Tier() int {
	return AsteroidHP(a.Radius)
}

// ToState converts to snapshot state
func (a *Asteroid) ToState() AsteroidState {
	return AsteroidState{
		ID: a.ID,
		X:  round1(a.Pos.X()),
		Y:  round1(a.Pos.Y()),
		Z:  round1(a.Pos.Z()),
		R:  round1(a.Radius),
	}
}
