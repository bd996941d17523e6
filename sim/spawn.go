package sim

import (
	"math"

	"github.com/sirupsen/logrus"
)

const (
	EnemyJitter    = 30.0 // forward jitter around the spawn distance
	AsteroidJitter = 50.0
	AsteroidSpread = 1.2 // asteroids spread wider than the ship bounds
	RingAhead      = 50.0
	RingSpreadX    = 6.0
	RingSpreadY    = 3.0
	RingTimerMin   = 8.0
	RingTimerMax   = 15.0
	PickupTimerMin = 10.0
	PickupTimerMax = 20.0
	MaxWave        = 4
)

// Difficulty is 1 + distance/DifficultyDistance
func Difficulty(distance float64, cfg *Config) float64 {
	return 1 + distance/cfg.DifficultyDistance
}

// EnemyInterval is the seconds between enemy waves at difficulty d
func EnemyInterval(d float64) float64 {
	return math.Max(0.8, 3.5-d*0.25)
}

// AsteroidInterval is the seconds between asteroid clusters at difficulty d
func AsteroidInterval(d float64) float64 {
	return math.Max(0.4, 1.8-d*0.12)
}

// MaxWaveSize is the largest enemy wave at difficulty d
func MaxWaveSize(d float64) int {
	return min(MaxWave, int(math.Floor(d))+1)
}

var (
	poolEasy   = []EnemyKind{Drone, Drone, Drone, Fighter}
	poolMedium = []EnemyKind{Drone, Drone, Fighter, Fighter, Cruiser}
	poolHard   = []EnemyKind{Fighter, Fighter, Cruiser, Cruiser}
)

// EnemyPool returns the weighted kinds a wave draws from at difficulty d
func EnemyPool(d float64) []EnemyKind {
	switch {
	case d < 2:
		return poolEasy
	case d < 4:
		return poolMedium
	default:
		return poolHard
	}
}

// Spawner holds the four spawn cadence countdowns
type Spawner struct {
	EnemyT    float64
	AsteroidT float64
	RingT     float64
	PickupT   float64
}

// NewSpawner returns timers at their initial values
func NewSpawner(cfg *Config) Spawner {
	return Spawner{
		EnemyT:    cfg.EnemyTimer,
		AsteroidT: cfg.AsteroidTimer,
		RingT:     cfg.RingTimer,
		PickupT:   cfg.PickupTimer,
	}
}

// spawn ticks the cadence timers and creates any batches that came due
func (g *Game) spawn(dt float64) {
	s := &g.spawner
	s.EnemyT -= dt
	if s.EnemyT <= 0 {
		g.spawnEnemyWave()
		s.EnemyT = EnemyInterval(g.difficulty)
	}
	s.AsteroidT -= dt
	if s.AsteroidT <= 0 {
		g.spawnAsteroidCluster()
		s.AsteroidT = AsteroidInterval(g.difficulty)
	}
	s.RingT -= dt
	if s.RingT <= 0 {
		g.spawnRing()
		s.RingT = randRange(g.rng, RingTimerMin, RingTimerMax)
	}
	s.PickupT -= dt
	if s.PickupT <= 0 {
		g.spawnPickup()
		s.PickupT = randRange(g.rng, PickupTimerMin, PickupTimerMax)
	}
}

func (g *Game) spawnEnemyWave() {
	cfg := &g.cfg
	z := g.Ship.Pos.Z()
	pool := EnemyPool(g.difficulty)
	count := randInt(g.rng, 1, MaxWaveSize(g.difficulty))
	for i := 0; i < count; i++ {
		kind := pool[g.rng.Intn(len(pool))]
		pos := Vec3{
			randRange(g.rng, -cfg.BoundX, cfg.BoundX),
			randRange(g.rng, -cfg.BoundY+2, cfg.BoundY),
			z - cfg.SpawnDistance + randRange(g.rng, -EnemyJitter, EnemyJitter),
		}
		g.Store.Enemies = append(g.Store.Enemies, NewEnemy(g.Store.NewID(), kind, pos, g.rng))
	}
	g.log.WithFields(logrus.Fields{
		"count":      count,
		"difficulty": g.difficulty,
	}).Debug("enemy wave spawned")
}

func (g *Game) spawnAsteroidCluster() {
	cfg := &g.cfg
	z := g.Ship.Pos.Z()
	count := randInt(g.rng, 1, 3)
	for i := 0; i < count; i++ {
		radius := randRange(g.rng, AsteroidRadiusMin, AsteroidRadiusMax)
		pos := Vec3{
			randRange(g.rng, -cfg.BoundX*AsteroidSpread, cfg.BoundX*AsteroidSpread),
			randRange(g.rng, -cfg.BoundY, cfg.BoundY),
			z - cfg.SpawnDistance + randRange(g.rng, -AsteroidJitter, AsteroidJitter),
		}
		g.Store.Asteroids = append(g.Store.Asteroids, NewAsteroid(g.Store.NewID(), pos, radius))
	}
}

func (g *Game) spawnRing() {
	pos := Vec3{
		randRange(g.rng, -RingSpreadX, RingSpreadX),
		randRange(g.rng, -RingSpreadY, RingSpreadY),
		g.Ship.Pos.Z() - g.cfg.SpawnDistance - RingAhead,
	}
	g.Store.Rings = append(g.Store.Rings, Ring{ID: g.Store.NewID(), Pos: pos})
}

func (g *Game) spawnPickup() {
	cfg := &g.cfg
	pos := Vec3{
		randRange(g.rng, -cfg.BoundX, cfg.BoundX),
		randRange(g.rng, -cfg.BoundY+2, cfg.BoundY),
		g.Ship.Pos.Z() - cfg.SpawnDistance,
	}
	g.Store.Pickups = append(g.Store.Pickups, Pickup{ID: g.Store.NewID(), Pos: pos})
}
