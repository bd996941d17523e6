package sim

const (
	RadarRange = 200.0 // world units covered in each direction
	RadarSize  = 30.0  // radius of the drawn radar disc
)

// Blip is one hazard on the radar, relative to the ship and scaled to RadarSize.
// Forward is negative Z.
type Blip struct {
	X     float64    `json:"x" msgpack:"x"`
	Z     float64    `json:"z" msgpack:"z"`
	Type  EntityType `json:"t" msgpack:"t"`
	Enemy EnemyKind  `json:"k,omitempty" msgpack:"k,omitempty"`
}

// Radar returns blips for enemies and asteroids within RadarRange of the ship
func (g *Game) Radar() []Blip {
	var blips []Blip
	sp := g.Ship.Pos
	add := func(p Vec3, t EntityType, k EnemyKind) {
		dx := p.X() - sp.X()
		dz := p.Z() - sp.Z()
		if dx < -RadarRange || dx > RadarRange || dz < -RadarRange || dz > RadarRange {
			return
		}
		blips = append(blips, Blip{
			X:     round1(dx / RadarRange * RadarSize),
			Z:     round1(dz / RadarRange * RadarSize),
			Type:  t,
			Enemy: k,
		})
	}
	for i := range g.Store.Enemies {
		e := &g.Store.Enemies[i]
		add(e.Pos, EntityEnemy, e.Kind)
	}
	for i := range g.Store.Asteroids {
		add(g.Store.Asteroids[i].Pos, EntityAsteroid, 0)
	}
	return blips
}
