package sim

import (
	"math/rand"
	"testing"
)

func TestCheckCollision(t *testing.T) {
	a := Vec3{0, 0, 0}
	if !CheckCollision(a, 1, Vec3{1.4, 0, 0}, 0.5) {
		t.Error("expected overlap")
	}
	if CheckCollision(a, 1, Vec3{1.5, 0, 0}, 0.5) {
		t.Error("touching spheres should not collide")
	}
	if CheckCollision(a, 1, Vec3{0, 0, -10}, 2) {
		t.Error("distant spheres should not collide")
	}
}

func TestBoltDamagesOneEnemy(t *testing.T) {
	g := newTestGame(t)
	p := Vec3{0, 0, -100}
	for i := 0; i < 2; i++ {
		g.Store.Enemies = append(g.Store.Enemies, NewEnemy(g.Store.NewID(), Cruiser, p, g.rng))
	}
	g.Store.PlayerBolts = append(g.Store.PlayerBolts, NewPlayerBolt(g.Store.NewID(), p, &g.cfg))

	g.resolveCollisions()
	if len(g.Store.PlayerBolts) != 0 {
		t.Error("bolt should be consumed")
	}
	if g.Store.Enemies[0].HP != 5 || g.Store.Enemies[1].HP != 4 {
		t.Errorf("expected only the newest enemy damaged, got HP %d and %d",
			g.Store.Enemies[0].HP, g.Store.Enemies[1].HP)
	}
	if countEvents(g.events, EventHit) != 1 {
		t.Error("expected one hit event")
	}
}

func TestBoltDamagesNewestAsteroid(t *testing.T) {
	g := newTestGame(t)
	p := Vec3{0, 0, -100}
	older := NewAsteroid(g.Store.NewID(), p, 3)
	newer := NewAsteroid(g.Store.NewID(), p, 3)
	g.Store.Asteroids = append(g.Store.Asteroids, older, newer)
	g.Store.PlayerBolts = append(g.Store.PlayerBolts, NewPlayerBolt(g.Store.NewID(), p, &g.cfg))

	g.resolveCollisions()
	if g.Store.Asteroids[0].HP != 3 || g.Store.Asteroids[1].HP != 2 {
		t.Errorf("expected only the newest asteroid damaged, got HP %d and %d",
			g.Store.Asteroids[0].HP, g.Store.Asteroids[1].HP)
	}
}

func TestBoltPrefersEnemyOverAsteroid(t *testing.T) {
	g := newTestGame(t)
	p := Vec3{0, 0, -100}
	g.Store.Asteroids = append(g.Store.Asteroids, NewAsteroid(g.Store.NewID(), p, 1))
	g.Store.Enemies = append(g.Store.Enemies, NewEnemy(g.Store.NewID(), Fighter, p, g.rng))
	g.Store.PlayerBolts = append(g.Store.PlayerBolts, NewPlayerBolt(g.Store.NewID(), p, &g.cfg))

	g.resolveCollisions()
	if g.Store.Enemies[0].HP != 1 {
		t.Errorf("expected fighter hit, HP %d", g.Store.Enemies[0].HP)
	}
	if len(g.Store.Asteroids) != 1 {
		t.Error("asteroid should be untouched")
	}
}

func TestEachBoltHitsOnce(t *testing.T) {
	g := newTestGame(t)
	p := Vec3{0, 0, -100}
	g.Store.Enemies = append(g.Store.Enemies, NewEnemy(g.Store.NewID(), Cruiser, p, g.rng))
	for i := 0; i < 3; i++ {
		g.Store.PlayerBolts = append(g.Store.PlayerBolts, NewPlayerBolt(g.Store.NewID(), p, &g.cfg))
	}

	g.resolveCollisions()
	if g.Store.Enemies[0].HP != 2 {
		t.Errorf("expected 3 hits, HP %d", g.Store.Enemies[0].HP)
	}
	if len(g.Store.PlayerBolts) != 0 {
		t.Errorf("expected all bolts consumed, %d left", len(g.Store.PlayerBolts))
	}
}

func TestDestroyScores(t *testing.T) {
	cases := []struct {
		name  string
		place func(g *Game, p Vec3)
		score int
	}{
		{"drone", func(g *Game, p Vec3) {
			g.Store.Enemies = append(g.Store.Enemies, NewEnemy(g.Store.NewID(), Drone, p, g.rng))
		}, 50},
		{"fighter", func(g *Game, p Vec3) {
			e := NewEnemy(g.Store.NewID(), Fighter, p, g.rng)
			e.HP = 1
			g.Store.Enemies = append(g.Store.Enemies, e)
		}, 100},
		{"cruiser", func(g *Game, p Vec3) {
			e := NewEnemy(g.Store.NewID(), Cruiser, p, g.rng)
			e.HP = 1
			g.Store.Enemies = append(g.Store.Enemies, e)
		}, 250},
		{"asteroid", func(g *Game, p Vec3) {
			a := NewAsteroid(g.Store.NewID(), p, 3.2)
			a.HP = 1
			g.Store.Asteroids = append(g.Store.Asteroids, a)
		}, 25},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			g := newTestGame(t)
			p := Vec3{2, 1, -80}
			c.place(g, p)
			g.Store.PlayerBolts = append(g.Store.PlayerBolts, NewPlayerBolt(g.Store.NewID(), p, &g.cfg))

			g.resolveCollisions()
			if g.Score() != c.score {
				t.Errorf("expected score %d, got %d", c.score, g.Score())
			}
			if len(g.Store.Enemies)+len(g.Store.Asteroids) != 0 {
				t.Error("target should be removed")
			}
			if countEvents(g.events, EventDestroyed) != 1 {
				t.Error("expected one destroyed event")
			}
		})
	}
}

func TestShipHitsOneHazardPerTick(t *testing.T) {
	g := newTestGame(t)
	g.Ship.Health = 1
	p := g.Ship.Pos
	g.Store.Enemies = append(g.Store.Enemies, NewEnemy(g.Store.NewID(), Cruiser, p, g.rng))
	g.Store.Asteroids = append(g.Store.Asteroids, NewAsteroid(g.Store.NewID(), p, 2))
	g.Store.Rings = append(g.Store.Rings, Ring{ID: g.Store.NewID(), Pos: p})
	g.Store.Pickups = append(g.Store.Pickups, Pickup{ID: g.Store.NewID(), Pos: p})

	g.resolveCollisions()
	if g.Health() != 0 {
		t.Errorf("expected health 0, got %d", g.Health())
	}
	if g.State() != StateDestroyed {
		t.Errorf("expected destroyed, got %s", g.State())
	}
	if countEvents(g.events, EventShipDamaged) != 1 {
		t.Errorf("expected exactly one damage event, got %d", countEvents(g.events, EventShipDamaged))
	}
	if len(g.Store.Asteroids) != 0 {
		t.Error("asteroid is checked first and should be removed")
	}
	if len(g.Store.Enemies) != 1 || g.Store.Enemies[0].HP != 5 {
		t.Error("enemy should be untouched")
	}
	// the rest of the tick does not run once the ship is gone
	if g.Score() != 0 || g.Store.Rings[0].Collected {
		t.Errorf("ring should not be collected after death, score %d", g.Score())
	}
	if len(g.Store.Pickups) != 1 || countEvents(g.events, EventPickupCollected) != 0 {
		t.Error("pickup should not be collected after death")
	}
}

func TestShipHitsNewestAsteroid(t *testing.T) {
	g := newTestGame(t)
	p := g.Ship.Pos
	older := NewAsteroid(g.Store.NewID(), p, 2)
	newer := NewAsteroid(g.Store.NewID(), p, 2)
	g.Store.Asteroids = append(g.Store.Asteroids, older, newer)

	g.resolveCollisions()
	if len(g.Store.Asteroids) != 1 || g.Store.Asteroids[0].ID != older.ID {
		t.Errorf("expected asteroid %d to survive, got %+v", older.ID, g.Store.Asteroids)
	}
	if g.Health() != g.MaxHealth()-1 {
		t.Errorf("expected one damage, health %d", g.Health())
	}
}

func TestDeathSkipsCull(t *testing.T) {
	g := newTestGame(t)
	g.Ship.Health = 1
	g.Store.Asteroids = append(g.Store.Asteroids, NewAsteroid(g.Store.NewID(), ahead(g, tick), 2))
	behind := g.Ship.Pos.Add(Vec3{0, 0, g.cfg.RemoveDistance + 50})
	g.Store.Pickups = append(g.Store.Pickups, Pickup{ID: g.Store.NewID(), Pos: behind})

	g.Step(tick, Input{})
	if g.State() != StateDestroyed {
		t.Fatalf("expected destroyed, got %s", g.State())
	}
	if len(g.Store.Pickups) != 1 {
		t.Error("cull should not run on the tick the ship is destroyed")
	}
}

func TestShipHazardOrder(t *testing.T) {
	g := newTestGame(t)
	p := g.Ship.Pos
	g.Store.HostileBolts = append(g.Store.HostileBolts,
		NewHostileBolt(g.Store.NewID(), p, Vec3{0, 0, 1}, 150, ColorRed, &g.cfg))
	g.Store.Enemies = append(g.Store.Enemies, NewEnemy(g.Store.NewID(), Drone, p, g.rng))

	g.resolveCollisions()
	if len(g.Store.Enemies) != 0 {
		t.Error("enemy should be hit before hostile bolts")
	}
	if len(g.Store.HostileBolts) != 1 {
		t.Error("hostile bolt should wait for a later tick")
	}
	if g.Health() != g.MaxHealth()-1 {
		t.Errorf("expected one damage, health %d", g.Health())
	}
}

func TestInvincibilityWindow(t *testing.T) {
	g := newTestGame(t)
	dt := 0.05
	hits := []int{}
	for i := 0; i < 40; i++ {
		inv := g.Ship.Invincible
		before := g.Health()
		g.Store.Asteroids = []Asteroid{NewAsteroid(g.Store.NewID(), ahead(g, dt), 3)}
		g.Step(dt, Input{})
		if g.Health() < before {
			if inv-dt > 0 {
				t.Fatalf("tick %d: damage while invincible (%f left)", i, inv-dt)
			}
			hits = append(hits, i)
		}
	}
	if len(hits) < 2 {
		t.Fatalf("expected damage to resume after the window, hits at %v", hits)
	}
	if gap := float64(hits[1]-hits[0]) * dt; gap < g.cfg.InvincibleTime-1e-9 {
		t.Errorf("hits %v closer than the invincibility window", hits)
	}
}

func TestInvincibleShipIgnoresOverlap(t *testing.T) {
	g := newTestGame(t)
	g.Ship.Invincible = 1
	g.Store.Asteroids = append(g.Store.Asteroids, NewAsteroid(g.Store.NewID(), g.Ship.Pos, 2))

	g.resolveCollisions()
	if g.Health() != g.MaxHealth() {
		t.Error("invincible ship should not take damage")
	}
	if len(g.Store.Asteroids) != 1 {
		t.Error("overlapping asteroid should stay while invincible")
	}
}

func TestRingScoresOnce(t *testing.T) {
	g := newTestGame(t)
	g.Store.Rings = append(g.Store.Rings, Ring{ID: g.Store.NewID(), Pos: g.Ship.Pos.Add(Vec3{2, 1, 1})})

	for i := 0; i < 3; i++ {
		g.resolveCollisions()
	}
	if g.Score() != 200 {
		t.Errorf("expected 200, got %d", g.Score())
	}
	if len(g.Store.Rings) != 1 || !g.Store.Rings[0].Collected {
		t.Error("collected ring should stay in the store, marked")
	}
}

func TestRingCaptureVolume(t *testing.T) {
	cfg := DefaultConfig()
	r := Ring{Pos: Vec3{0, 0, -100}}
	cases := []struct {
		ship Vec3
		want bool
	}{
		{Vec3{0, 0, -100}, true},
		{Vec3{3, 3, -102}, true},
		{Vec3{0, 0, -103}, false},
		{Vec3{4.5, 0, -100}, false},
	}
	for _, c := range cases {
		if got := r.Captures(c.ship, &cfg); got != c.want {
			t.Errorf("Captures(%v) = %v, want %v", c.ship, got, c.want)
		}
	}
}

func TestPickupHealsClamped(t *testing.T) {
	g := newTestGame(t)
	g.Ship.Health = 3
	g.Store.Pickups = append(g.Store.Pickups, Pickup{ID: g.Store.NewID(), Pos: g.Ship.Pos})

	g.resolveCollisions()
	if g.Health() != 4 {
		t.Errorf("expected 4, got %d", g.Health())
	}
	if len(g.Store.Pickups) != 0 {
		t.Error("pickup should be removed")
	}

	g.Ship.Health = g.MaxHealth()
	for i := 0; i < 2; i++ {
		g.Store.Pickups = append(g.Store.Pickups, Pickup{ID: g.Store.NewID(), Pos: g.Ship.Pos})
	}
	g.resolveCollisions()
	if g.Health() != g.MaxHealth() {
		t.Errorf("health should clamp at %d, got %d", g.MaxHealth(), g.Health())
	}
	if countEvents(g.events, EventPickupCollected) != 3 {
		t.Errorf("expected 3 pickup events, got %d", countEvents(g.events, EventPickupCollected))
	}
}

func TestRemovalKeepsNeighbours(t *testing.T) {
	g := New(DefaultConfig(), rand.New(rand.NewSource(3)))
	g.state = StatePlaying
	// bolts 1 and 2 hit drones, bolt 3 misses; none may be skipped
	for i, x := range []float64{0, 5, 40} {
		p := Vec3{x, 0, -100}
		g.Store.PlayerBolts = append(g.Store.PlayerBolts, NewPlayerBolt(g.Store.NewID(), p, &g.cfg))
		if i < 2 {
			g.Store.Enemies = append(g.Store.Enemies, NewEnemy(g.Store.NewID(), Drone, p, g.rng))
		}
	}
	g.resolveCollisions()
	if len(g.Store.Enemies) != 0 {
		t.Errorf("expected both drones destroyed, %d left", len(g.Store.Enemies))
	}
	if len(g.Store.PlayerBolts) != 1 || g.Store.PlayerBolts[0].Pos.X() != 40 {
		t.Errorf("expected only the missing bolt to remain, got %+v", g.Store.PlayerBolts)
	}
	if g.Score() != 100 {
		t.Errorf("expected 100, got %d", g.Score())
	}
}
