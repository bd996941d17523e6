package sim

import "math"

// EnemyKind tags the enemy variant; behaviour switches on it.
type EnemyKind int

const (
	Drone EnemyKind = iota
	Fighter
	Cruiser
)

func (k EnemyKind) String() string {
	switch k {
	case Drone:
		return "drone"
	case Fighter:
		return "fighter"
	case Cruiser:
		return "cruiser"
	}
	return "unknown"
}

const (
	DroneWeaveFreq = 0.05 // per unit of Z
	DroneWeaveAmp  = 12.0
	DroneSpeedMin  = 55.0
	DroneSpeedMax  = 80.0

	FighterApproach = 25.0 // closing speed while far
	FighterHoldDist = 30.0 // stops closing inside this distance
	FighterStrafeX  = 18.0
	FighterStrafeY  = 10.0
	FighterFreqX    = 2.5
	FighterFreqY    = 1.8
	FighterRange    = 200.0
	FighterCDBase   = 2.0
	FighterCDSlope  = 0.1
	FighterCDFloor  = 0.8

	CruiserAdvance = 12.0
	CruiserRange   = 250.0
	CruiserCDBase  = 2.5
	CruiserCDSlope = 0.08
	CruiserCDFloor = 1.0

	SpawnCDMin = 0.5 // fresh spawns start with a staggered cooldown
	SpawnCDMax = 2.0
)

// EnemyDef holds the per-kind spawn stats
type EnemyDef struct {
	HP     int
	Radius float64
	Score  int
	Homing bool // flat homing speed, drones only
}

var EnemyDefs = [3]EnemyDef{
	Drone:   {HP: 1, Radius: 0.7, Score: ScoreDrone, Homing: true},
	Fighter: {HP: 2, Radius: 1.0, Score: ScoreFighter},
	Cruiser: {HP: 5, Radius: 2.2, Score: ScoreCruiser},
}

// FireMode is what an enemy wants to shoot this tick
type FireMode int

const (
	FireNone FireMode = iota
	FireAimed
	FireSpread
)

// Enemy is a hostile ship
type Enemy struct {
	ID      uint64
	Kind    EnemyKind
	Pos     Vec3
	Facing  Vec3 // unit vector toward the ship, for renderers
	HP      int
	Radius  float64
	ShootCD float64
	Phase   float64 // desyncs the oscillating motion between instances
	Speed   float64 // homing speed, zero for non-drones
}

// NewEnemy creates an enemy of the given kind with randomized phase, cooldown and speed
func NewEnemy(id uint64, kind EnemyKind, pos Vec3, r Rand) Enemy {
	def := EnemyDefs[kind]
	e := Enemy{
		ID:      id,
		Kind:    kind,
		Pos:     pos,
		Facing:  Vec3{0, 0, 1},
		HP:      def.HP,
		Radius:  def.Radius,
		ShootCD: randRange(r, SpawnCDMin, SpawnCDMax),
		Phase:   randRange(r, 0, 2*math.Pi),
	}
	if def.Homing {
		e.Speed = randRange(r, DroneSpeedMin, DroneSpeedMax)
	}
	return e
}

// Update advances the enemy one tick toward the ship and reports whether it fires.
// clock is the session time used for strafing phases.
func (e *Enemy) Update(dt float64, ship Vec3, clock, difficulty float64) FireMode {
	e.ShootCD -= dt

	pos := e.Pos
	dist := Distance(pos, ship)
	fire := FireNone

	switch e.Kind {
	case Drone:
		e.Pos = pos.Add(Direction(pos, ship).Mul(e.Speed * dt))
		e.Pos[0] += math.Sin(e.Phase+pos.Z()*DroneWeaveFreq) * DroneWeaveAmp * dt
	case Fighter:
		if dist > FighterHoldDist {
			e.Pos = pos.Add(Direction(pos, ship).Mul(FighterApproach * dt))
		}
		e.Pos[0] += math.Sin(e.Phase+clock*FighterFreqX) * FighterStrafeX * dt
		e.Pos[1] += math.Cos(e.Phase+clock*FighterFreqY) * FighterStrafeY * dt
		if e.ShootCD <= 0 && dist < FighterRange {
			fire = FireAimed
			e.ShootCD = math.Max(FighterCDFloor, FighterCDBase-difficulty*FighterCDSlope)
		}
	case Cruiser:
		e.Pos[2] += CruiserAdvance * dt
		if e.ShootCD <= 0 && dist < CruiserRange {
			fire = FireSpread
			e.ShootCD = math.Max(CruiserCDFloor, CruiserCDBase-difficulty*CruiserCDSlope)
		}
	}

	e.Facing = Direction(e.Pos, ship)
	return fire
}

// TakeHit removes one hit point and returns true if the enemy is destroyed
func (e *Enemy) TakeHit() bool {
	e.HP--
	if e.HP <= 0 {
		e.HP = 0
		return true
	}
	return false
}

// Score is awarded when the enemy is shot down
func (e *Enemy) Score() int {
	return EnemyDefs[e.Kind].Score
}

// Tier sizes the explosion: 1 drone, 2 fighter, 3 cruiser
func (e *Enemy) Tier() int {
	return int(e.Kind) + 1
}

// ToState converts to snapshot state
func (e *Enemy) ToState() EnemyState {
	return EnemyState{
		ID:   e.ID,
		Kind: int(e.Kind),
		X:    round1(e.Pos.X()),
		Y:    round1(e.Pos.Y()),
		Z:    round1(e.Pos.Z()),
		FX:   math.Round(e.Facing.X()*100) / 100,
		FY:   math.Round(e.Facing.Y()*100) / 100,
		FZ:   math.Round(e.Facing.Z()*100) / 100,
		HP:   e.HP,
		Tier: e.Tier(),
	}
}
