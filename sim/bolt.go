package sim

// Side is which side fired a bolt
type Side int

const (
	SidePlayer Side = iota
	SideHostile
)

// Color is the visual tag of a bolt
type Color int

const (
	ColorCyan   Color = iota // player
	ColorRed                 // fighter aimed shot
	ColorPurple              // cruiser spread
)

// Bolt is a laser projectile. Velocity is fixed at firing time.
type Bolt struct {
	ID    uint64
	Pos   Vec3
	Vel   Vec3
	Life  float64
	Side  Side
	Color Color
}

// NewPlayerBolt fires straight ahead from a wing gun
func NewPlayerBolt(id uint64, origin Vec3, cfg *Config) Bolt {
	return Bolt{
		ID:    id,
		Pos:   origin,
		Vel:   Vec3{0, 0, -cfg.BoltSpeed},
		Life:  cfg.BoltLife,
		Side:  SidePlayer,
		Color: ColorCyan,
	}
}

// NewHostileBolt fires along dir (normalized) at speed
func NewHostileBolt(id uint64, origin, dir Vec3, speed float64, color Color, cfg *Config) Bolt {
	return Bolt{
		ID:    id,
		Pos:   origin,
		Vel:   dir.Mul(speed),
		Life:  cfg.HostileBoltLife,
		Side:  SideHostile,
		Color: color,
	}
}

// Update moves the bolt one tick and burns its time-to-live
func (b *Bolt) Update(dt float64) {
	b.Life -= dt
	b.Pos = b.Pos.Add(b.Vel.Mul(dt))
}

// Expired reports whether the time-to-live ran out
func (b *Bolt) Expired() bool {
	return b.Life <= 0
}

// ToState converts to snapshot state
func (b *Bolt) ToState() BoltState {
	return BoltState{
		ID:      b.ID,
		X:       round1(b.Pos.X()),
		Y:       round1(b.Pos.Y()),
		Z:       round1(b.Pos.Z()),
		Hostile: b.Side == SideHostile,
		Color:   int(b.Color),
	}
}
