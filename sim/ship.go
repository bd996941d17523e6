package sim

// Ship is the player's ship. It always travels along -Z.
type Ship struct {
	Pos        Vec3
	Health     int
	MaxHealth  int
	Invincible float64 // seconds of damage immunity left
	Shake      float64 // screen-shake intensity for the camera
	Boosting   bool
	SteerX     float64 // -1, 0 or 1
	SteerY     float64
	FireCD     float64
	wing       bool // alternates between left and right guns
}

// NewShip creates a ship at the origin with full health
func NewShip(cfg *Config) Ship {
	return Ship{
		Health:    cfg.MaxHealth,
		MaxHealth: cfg.MaxHealth,
	}
}

// Steer reads the held controls for this tick
func (s *Ship) Steer(held Control) {
	s.Boosting = held.Has(ControlBoost)
	s.SteerX, s.SteerY = 0, 0
	if held.Has(ControlLeft) {
		s.SteerX--
	}
	if held.Has(ControlRight) {
		s.SteerX++
	}
	if held.Has(ControlUp) {
		s.SteerY++
	}
	if held.Has(ControlDown) {
		s.SteerY--
	}
}

// Speed returns the current forward speed
func (s *Ship) Speed(cfg *Config) float64 {
	if s.Boosting {
		return cfg.ForwardSpeed * cfg.BoostMul
	}
	return cfg.ForwardSpeed
}

// Update moves the ship one tick and returns the forward distance covered
func (s *Ship) Update(dt float64, cfg *Config) float64 {
	fwd := s.Speed(cfg) * dt
	s.Pos[2] -= fwd

	lat := cfg.LateralSpeed
	if s.Boosting {
		lat *= cfg.BoostLateralMul
	}
	s.Pos[0] = Clamp(s.Pos[0]+s.SteerX*lat*dt, -cfg.BoundX, cfg.BoundX)
	s.Pos[1] = Clamp(s.Pos[1]+s.SteerY*lat*dt, -cfg.BoundY+1, cfg.BoundY)

	if s.Shake > 0.03 {
		s.Shake *= 0.85
	} else {
		s.Shake = 0
	}
	s.FireCD -= dt
	if s.Invincible > 0 {
		s.Invincible -= dt
	}
	return fwd
}

// Muzzle returns the spawn point of the next player bolt, alternating wings
func (s *Ship) Muzzle(cfg *Config) Vec3 {
	s.wing = !s.wing
	off := -cfg.WingOffset
	if s.wing {
		off = cfg.WingOffset
	}
	return Vec3{s.Pos.X() + off, s.Pos.Y(), s.Pos.Z() - cfg.MuzzleOffset}
}

// TakeDamage applies dmg unless the ship is invincible. Returns whether the
// damage landed and whether it destroyed the ship.
func (s *Ship) TakeDamage(dmg int, cfg *Config) (applied, died bool) {
	if s.Invincible > 0 {
		return false, false
	}
	s.Health -= dmg
	if s.Health < 0 {
		s.Health = 0
	}
	s.Invincible = cfg.InvincibleTime
	s.Shake = cfg.ShakeOnHit
	return true, s.Health == 0
}

// Heal restores n health up to the maximum
func (s *Ship) Heal(n int) {
	s.Health += n
	if s.Health > s.MaxHealth {
		s.Health = s.MaxHealth
	}
}

// Roll is the bank intent for the camera
func (s *Ship) Roll() float64 {
	return -s.SteerX * 0.06
}

// Pitch is the nose intent for the camera
func (s *Ship) Pitch() float64 {
	return s.SteerY * 0.03
}

// ToState converts to snapshot state
func (s *Ship) ToState() ShipState {
	return ShipState{
		X:          round1(s.Pos.X()),
		Y:          round1(s.Pos.Y()),
		Z:          round1(s.Pos.Z()),
		Roll:       s.Roll(),
		Pitch:      s.Pitch(),
		Boost:      s.Boosting,
		Invincible: s.Invincible > 0,
		Shake:      round1(s.Shake),
	}
}
