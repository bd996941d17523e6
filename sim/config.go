package sim

// Config holds the tunables read once when a Game is created.
type Config struct {
	BoundX float64 // ship lateral limit, |x| <= BoundX
	BoundY float64 // ship vertical limit, -BoundY+1 <= y <= BoundY

	ForwardSpeed    float64 // units/s along -Z
	BoostMul        float64 // forward speed multiplier while boosting
	LateralSpeed    float64
	BoostLateralMul float64 // lateral speed multiplier while boosting

	ShootCooldown float64 // seconds between player shots
	WingOffset    float64 // lateral offset of alternating wing guns
	MuzzleOffset  float64 // bolts spawn this far ahead of the ship
	BoltSpeed     float64
	BoltLife      float64

	HostileBoltSpeed float64
	HostileBoltLife  float64
	SpreadSpeedMul   float64 // cruiser spread bolts are slower
	SpreadOffset     float64 // lateral aim offset of the side spread bolts

	SpawnDistance  float64 // hazards appear this far ahead
	RemoveDistance float64 // and are culled this far behind

	MaxHealth      int
	InvincibleTime float64
	ShakeOnHit     float64

	ShipRadius   float64
	BoltRadius   float64
	PickupRadius float64

	RingScore         int
	RingCaptureDepth  float64 // forward-axis capture window
	RingCaptureRadius float64 // lateral+vertical capture radius

	DifficultyDistance float64 // distance per +1 difficulty

	DestroyedFeedbackDelay float64 // death screen becomes ready
	DestroyedRetryDelay    float64 // retry accepted after this

	MaxDelta float64 // ticks longer than this are dropped

	EnemyTimer    float64
	AsteroidTimer float64
	RingTimer     float64
	PickupTimer   float64
}

// Score values
const (
	ScoreDrone    = 50
	ScoreFighter  = 100
	ScoreCruiser  = 250
	ScoreAsteroid = 25
)

// DefaultConfig returns the standard tuning.
func DefaultConfig() Config {
	return Config{
		BoundX:          16,
		BoundY:          10,
		ForwardSpeed:    90,
		BoostMul:        1.8,
		LateralSpeed:    38,
		BoostLateralMul: 0.7,

		ShootCooldown: 0.11,
		WingOffset:    0.8,
		MuzzleOffset:  3,
		BoltSpeed:     300,
		BoltLife:      2.0,

		HostileBoltSpeed: 150,
		HostileBoltLife:  4.0,
		SpreadSpeedMul:   0.8,
		SpreadOffset:     0.15,

		SpawnDistance:  380,
		RemoveDistance: 60,

		MaxHealth:      5,
		InvincibleTime: 1.2,
		ShakeOnHit:     2.5,

		ShipRadius:   1.0,
		BoltRadius:   0.5,
		PickupRadius: 2.0,

		RingScore:         200,
		RingCaptureDepth:  3,
		RingCaptureRadius: 4.5,

		DifficultyDistance: 600,

		DestroyedFeedbackDelay: 0.8,
		DestroyedRetryDelay:    1.5,

		MaxDelta: 0.1,

		EnemyTimer:    1.5,
		AsteroidTimer: 0.5,
		RingTimer:     8,
		PickupTimer:   12,
	}
}
