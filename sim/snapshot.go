package sim

// ShipState is the ship as seen by the camera and HUD
type ShipState struct {
	X          float64 `json:"x" msgpack:"x"`
	Y          float64 `json:"y" msgpack:"y"`
	Z          float64 `json:"z" msgpack:"z"`
	Roll       float64 `json:"rl" msgpack:"rl"` // bank intent
	Pitch      float64 `json:"pt" msgpack:"pt"` // nose intent
	Boost      bool    `json:"b,omitempty" msgpack:"b,omitempty"`
	Invincible bool    `json:"inv,omitempty" msgpack:"inv,omitempty"`
	Shake      float64 `json:"sh,omitempty" msgpack:"sh,omitempty"`
}

// BoltState is broadcast per bolt
type BoltState struct {
	ID      uint64  `json:"id" msgpack:"id"`
	X       float64 `json:"x" msgpack:"x"`
	Y       float64 `json:"y" msgpack:"y"`
	Z       float64 `json:"z" msgpack:"z"`
	Hostile bool    `json:"h,omitempty" msgpack:"h,omitempty"`
	Color   int     `json:"c" msgpack:"c"`
}

// EnemyState is broadcast per enemy
type EnemyState struct {
	ID   uint64  `json:"id" msgpack:"id"`
	Kind int     `json:"k" msgpack:"k"`
	X    float64 `json:"x" msgpack:"x"`
	Y    float64 `json:"y" msgpack:"y"`
	Z    float64 `json:"z" msgpack:"z"`
	FX   float64 `json:"fx" msgpack:"fx"` // facing
	FY   float64 `json:"fy" msgpack:"fy"`
	FZ   float64 `json:"fz" msgpack:"fz"`
	HP   int     `json:"hp" msgpack:"hp"`
	Tier int     `json:"tr" msgpack:"tr"`
}

// AsteroidState is broadcast per asteroid
type AsteroidState struct {
	ID uint64  `json:"id" msgpack:"id"`
	X  float64 `json:"x" msgpack:"x"`
	Y  float64 `json:"y" msgpack:"y"`
	Z  float64 `json:"z" msgpack:"z"`
	R  float64 `json:"r" msgpack:"r"`
}

// RingState is broadcast per ring gate
type RingState struct {
	ID        uint64  `json:"id" msgpack:"id"`
	X         float64 `json:"x" msgpack:"x"`
	Y         float64 `json:"y" msgpack:"y"`
	Z         float64 `json:"z" msgpack:"z"`
	Collected bool    `json:"col,omitempty" msgpack:"col,omitempty"`
}

// PickupState is broadcast per pickup
type PickupState struct {
	ID uint64  `json:"id" msgpack:"id"`
	X  float64 `json:"x" msgpack:"x"`
	Y  float64 `json:"y" msgpack:"y"`
	Z  float64 `json:"z" msgpack:"z"`
}

// Snapshot is the full read-only view handed to render and HUD collaborators
type Snapshot struct {
	Run        string          `json:"run,omitempty" msgpack:"run,omitempty"`
	State      int             `json:"st" msgpack:"st"`
	Score      int             `json:"sc" msgpack:"sc"`
	Health     int             `json:"hp" msgpack:"hp"`
	MaxHealth  int             `json:"mhp" msgpack:"mhp"`
	LowHealth  bool            `json:"low,omitempty" msgpack:"low,omitempty"`
	Distance   float64         `json:"d" msgpack:"d"`
	Difficulty float64         `json:"df" msgpack:"df"`
	Ship       ShipState       `json:"s" msgpack:"s"`
	Bolts      []BoltState     `json:"b" msgpack:"b"`
	Enemies    []EnemyState    `json:"e" msgpack:"e"`
	Asteroids  []AsteroidState `json:"a" msgpack:"a"`
	Rings      []RingState     `json:"r" msgpack:"r"`
	Pickups    []PickupState   `json:"pk" msgpack:"pk"`
	Radar      []Blip          `json:"rd" msgpack:"rd"`
}

// Health returns the ship's current health
func (g *Game) Health() int { return g.Ship.Health }

// MaxHealth returns the ship's maximum health
func (g *Game) MaxHealth() int { return g.Ship.MaxHealth }

// LowHealth reports whether the ship is one hit from destruction
func (g *Game) LowHealth() bool {
	return g.state == StatePlaying && g.Ship.Health == 1
}

// Snapshot copies the current state for collaborators
func (g *Game) Snapshot() Snapshot {
	s := &g.Store
	snap := Snapshot{
		Run:        g.runID,
		State:      int(g.state),
		Score:      g.score,
		Health:     g.Ship.Health,
		MaxHealth:  g.Ship.MaxHealth,
		LowHealth:  g.LowHealth(),
		Distance:   round1(g.distance),
		Difficulty: g.difficulty,
		Ship:       g.Ship.ToState(),
		Bolts:      make([]BoltState, 0, len(s.PlayerBolts)+len(s.HostileBolts)),
		Enemies:    make([]EnemyState, 0, len(s.Enemies)),
		Asteroids:  make([]AsteroidState, 0, len(s.Asteroids)),
		Rings:      make([]RingState, 0, len(s.Rings)),
		Pickups:    make([]PickupState, 0, len(s.Pickups)),
		Radar:      g.Radar(),
	}
	for i := range s.PlayerBolts {
		snap.Bolts = append(snap.Bolts, s.PlayerBolts[i].ToState())
	}
	for i := range s.HostileBolts {
		snap.Bolts = append(snap.Bolts, s.HostileBolts[i].ToState())
	}
	for i := range s.Enemies {
		snap.Enemies = append(snap.Enemies, s.Enemies[i].ToState())
	}
	for i := range s.Asteroids {
		snap.Asteroids = append(snap.Asteroids, s.Asteroids[i].ToState())
	}
	for i := range s.Rings {
		snap.Rings = append(snap.Rings, s.Rings[i].ToState())
	}
	for i := range s.Pickups {
		snap.Pickups = append(snap.Pickups, s.Pickups[i].ToState())
	}
	return snap
}
