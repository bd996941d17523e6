package sim

import (
	"io"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Game is the whole simulation state of one session. It is owned by a single
// goroutine; none of its methods are safe for concurrent use.
type Game struct {
	cfg Config
	rng Rand
	log *logrus.Entry

	state      State
	runID      string
	score      int
	distance   float64
	difficulty float64
	clock      float64 // seconds spent playing this run

	lastTime     float64
	started      bool // lastTime is valid
	destroyedFor float64
	deathScreen  bool

	Ship    Ship
	Store   Store
	spawner Spawner

	events []Event
}

// Option configures a Game
type Option func(*Game)

// WithLogger sets the entry the game logs through
func WithLogger(l *logrus.Entry) Option {
	return func(g *Game) {
		g.log = l
	}
}

// New creates a game in the menu state
func New(cfg Config, rng Rand, opts ...Option) *Game {
	quiet := logrus.New()
	quiet.SetOutput(io.Discard)
	g := &Game{
		cfg:        cfg,
		rng:        rng,
		log:        logrus.NewEntry(quiet),
		state:      StateMenu,
		difficulty: 1,
	}
	for _, opt := range opts {
		opt(g)
	}
	g.Ship = NewShip(&g.cfg)
	g.spawner = NewSpawner(&g.cfg)
	return g
}

// Update runs one frame at wall-clock time now (seconds). The first frame after
// a reset only records the time, and frames with a bad delta are dropped
// without sampling input. The returned events are valid until the next call.
func (g *Game) Update(now float64, q *InputQueue) []Event {
	if !g.started {
		g.started = true
		g.lastTime = now
		return nil
	}
	dt := now - g.lastTime
	g.lastTime = now
	if dt <= 0 || dt > g.cfg.MaxDelta {
		return nil
	}
	events, _ := g.Step(dt, q.Sample())
	return events
}

// Step advances the simulation by dt with the given input. It reports false
// and does nothing when dt is non-positive or above MaxDelta.
func (g *Game) Step(dt float64, in Input) ([]Event, bool) {
	g.events = g.events[:0]
	if dt <= 0 || dt > g.cfg.MaxDelta {
		return nil, false
	}

	switch g.state {
	case StateMenu:
		if in.Pressed.Has(ActionLaunch) {
			g.launch()
		}
	case StatePlaying:
		g.play(dt, in)
	case StateDestroyed:
		g.destroyedFor += dt
		if !g.deathScreen && g.destroyedFor > g.cfg.DestroyedFeedbackDelay {
			g.deathScreen = true
			g.emit(Event{Kind: EventDeathScreen, Score: g.score})
		}
		if in.Pressed.Has(ActionRetry) && g.destroyedFor > g.cfg.DestroyedRetryDelay {
			g.setState(StateMenu)
		}
	}
	return g.events, true
}

// launch discards the previous run and starts playing
func (g *Game) launch() {
	g.Store.Reset()
	g.Ship = NewShip(&g.cfg)
	g.spawner = NewSpawner(&g.cfg)
	g.score = 0
	g.distance = 0
	g.difficulty = 1
	g.clock = 0
	g.destroyedFor = 0
	g.deathScreen = false
	g.started = false
	g.runID = uuid.NewString()
	g.setState(StatePlaying)
}

func (g *Game) play(dt float64, in Input) {
	cfg := &g.cfg
	ship := &g.Ship

	ship.Steer(in.Held)
	g.distance += ship.Update(dt, cfg)
	g.clock += dt
	g.difficulty = Difficulty(g.distance, cfg)

	if (in.Held.Has(ControlFire) || in.Pressed.Has(ActionFire)) && ship.FireCD <= 0 {
		g.firePlayer()
		ship.FireCD = cfg.ShootCooldown
	}

	g.spawn(dt)
	g.updateEnemies(dt)
	g.Store.PlayerBolts = expireBolts(g.Store.PlayerBolts, dt)
	g.Store.HostileBolts = expireBolts(g.Store.HostileBolts, dt)

	g.resolveCollisions()
	if g.state != StatePlaying {
		return
	}
	g.Store.Cull(ship.Pos.Z() + cfg.RemoveDistance)
}

func (g *Game) updateEnemies(dt float64) {
	for i := range g.Store.Enemies {
		e := &g.Store.Enemies[i]
		// shots leave from where the enemy stood at the start of the tick
		from := e.Pos
		switch e.Update(dt, g.Ship.Pos, g.clock, g.difficulty) {
		case FireAimed:
			g.fireAimed(from)
		case FireSpread:
			g.fireSpread(from)
		}
	}
}

func (g *Game) firePlayer() {
	b := NewPlayerBolt(g.Store.NewID(), g.Ship.Muzzle(&g.cfg), &g.cfg)
	g.Store.PlayerBolts = append(g.Store.PlayerBolts, b)
	g.emit(Event{Kind: EventBoltFired, Entity: EntityBolt, ID: b.ID, Pos: b.Pos, Color: b.Color})
}

// fireAimed shoots one bolt at where the ship is now
func (g *Game) fireAimed(from Vec3) {
	dir := Direction(from, g.Ship.Pos)
	b := NewHostileBolt(g.Store.NewID(), from, dir, g.cfg.HostileBoltSpeed, ColorRed, &g.cfg)
	g.Store.HostileBolts = append(g.Store.HostileBolts, b)
	g.emit(Event{Kind: EventBoltFired, Entity: EntityBolt, ID: b.ID, Pos: from, Color: ColorRed})
}

// fireSpread shoots three slower bolts: one aimed, two offset sideways
func (g *Game) fireSpread(from Vec3) {
	aim := Direction(from, g.Ship.Pos)
	speed := g.cfg.HostileBoltSpeed * g.cfg.SpreadSpeedMul
	for _, off := range [3]float64{-g.cfg.SpreadOffset, 0, g.cfg.SpreadOffset} {
		dir := Direction(Vec3{}, Vec3{aim.X() + off, aim.Y(), aim.Z()})
		b := NewHostileBolt(g.Store.NewID(), from, dir, speed, ColorPurple, &g.cfg)
		g.Store.HostileBolts = append(g.Store.HostileBolts, b)
	}
	g.emit(Event{Kind: EventBoltFired, Entity: EntityBolt, Pos: from, Color: ColorPurple})
}

// applyDamage hurts the ship unless it is invincible, ending the run at zero health
func (g *Game) applyDamage(n int) {
	applied, died := g.Ship.TakeDamage(n, &g.cfg)
	if !applied {
		return
	}
	g.emit(Event{Kind: EventShipDamaged, Entity: EntityShip, Pos: g.Ship.Pos, Health: g.Ship.Health})
	g.log.WithField("health", g.Ship.Health).Debug("ship damaged")
	if died {
		g.emit(Event{Kind: EventDestroyed, Entity: EntityShip, Pos: g.Ship.Pos, Tier: 3})
		g.setState(StateDestroyed)
	}
}

func (g *Game) setState(to State) {
	from := g.state
	g.state = to
	g.emit(Event{Kind: EventStateChanged, From: from, To: to, Score: g.score})
	g.log.WithFields(logrus.Fields{
		"run":      g.runID,
		"from":     from.String(),
		"to":       to.String(),
		"score":    g.score,
		"distance": int(g.distance),
	}).Info("session state changed")
}

func (g *Game) emit(e Event) {
	g.events = append(g.events, e)
}

// State returns the session phase
func (g *Game) State() State { return g.state }

// Score returns the run score
func (g *Game) Score() int { return g.score }

// Distance returns the forward distance traveled this run
func (g *Game) Distance() float64 { return g.distance }

// Difficulty returns the current difficulty scalar
func (g *Game) Difficulty() float64 { return g.difficulty }

// RunID identifies the current run in logs and snapshots
func (g *Game) RunID() string { return g.runID }

// Config returns the tuning the game was created with
func (g *Game) Config() Config { return g.cfg }
