package sim

import "slices"

// CheckCollision reports whether two spheres overlap (center distance strictly
// less than the sum of radii)
func CheckCollision(a Vec3, ra float64, b Vec3, rb float64) bool {
	d := a.Sub(b)
	radSum := ra + rb
	return d.Dot(d) < radSum*radSum
}

// resolveCollisions runs every interaction for the tick in fixed order. Each
// pass stops at its first match so an entity is never touched after removal.
func (g *Game) resolveCollisions() {
	g.collideBolts()

	if g.Ship.Invincible <= 0 {
		g.collideShip()
		if g.state != StatePlaying {
			return
		}
	}

	g.collectRings()
	g.collectPickups()
}

// collideBolts lets each player bolt damage at most one hazard, enemies first.
// Every list is walked newest first, so of two overlapping hazards the later
// spawn takes the hit.
func (g *Game) collideBolts() {
	bolts := g.Store.PlayerBolts
	for i := len(bolts) - 1; i >= 0; i-- {
		p := bolts[i].Pos
		if g.boltHitsEnemy(p) || g.boltHitsAsteroid(p) {
			bolts = slices.Delete(bolts, i, i+1)
		}
	}
	g.Store.PlayerBolts = bolts
}

func (g *Game) boltHitsEnemy(p Vec3) bool {
	for j := len(g.Store.Enemies) - 1; j >= 0; j-- {
		e := &g.Store.Enemies[j]
		if !CheckCollision(p, g.cfg.BoltRadius, e.Pos, e.Radius) {
			continue
		}
		if e.TakeHit() {
			g.score += e.Score()
			g.emit(Event{Kind: EventDestroyed, Entity: EntityEnemy, Enemy: e.Kind, ID: e.ID,
				Pos: e.Pos, Tier: e.Tier(), Score: e.Score()})
			g.Store.Enemies = slices.Delete(g.Store.Enemies, j, j+1)
		} else {
			g.emit(Event{Kind: EventHit, Entity: EntityEnemy, Enemy: e.Kind, ID: e.ID, Pos: e.Pos})
		}
		return true
	}
	return false
}

func (g *Game) boltHitsAsteroid(p Vec3) bool {
	for j := len(g.Store.Asteroids) - 1; j >= 0; j-- {
		a := &g.Store.Asteroids[j]
		if !CheckCollision(p, g.cfg.BoltRadius, a.Pos, a.Radius) {
			continue
		}
		if a.TakeHit() {
			g.score += ScoreAsteroid
			g.emit(Event{Kind: EventDestroyed, Entity: EntityAsteroid, ID: a.ID,
				Pos: a.Pos, Tier: a.Tier(), Score: ScoreAsteroid})
			g.Store.Asteroids = slices.Delete(g.Store.Asteroids, j, j+1)
		} else {
			g.emit(Event{Kind: EventHit, Entity: EntityAsteroid, ID: a.ID, Pos: a.Pos})
		}
		return true
	}
	return false
}

// collideShip applies at most one hazard hit per tick: asteroids, then
// enemies, then hostile bolts, each newest first
func (g *Game) collideShip() {
	sp := g.Ship.Pos
	r := g.cfg.ShipRadius

	for i := len(g.Store.Asteroids) - 1; i >= 0; i-- {
		a := g.Store.Asteroids[i]
		if CheckCollision(sp, r, a.Pos, a.Radius) {
			g.Store.Asteroids = slices.Delete(g.Store.Asteroids, i, i+1)
			g.emit(Event{Kind: EventDestroyed, Entity: EntityAsteroid, ID: a.ID, Pos: a.Pos, Tier: a.Tier()})
			g.applyDamage(1)
			return
		}
	}
	for i := len(g.Store.Enemies) - 1; i >= 0; i-- {
		e := g.Store.Enemies[i]
		if CheckCollision(sp, r, e.Pos, e.Radius) {
			g.Store.Enemies = slices.Delete(g.Store.Enemies, i, i+1)
			g.emit(Event{Kind: EventDestroyed, Entity: EntityEnemy, Enemy: e.Kind, ID: e.ID, Pos: e.Pos, Tier: e.Tier()})
			g.applyDamage(1)
			return
		}
	}
	for i := len(g.Store.HostileBolts) - 1; i >= 0; i-- {
		b := g.Store.HostileBolts[i]
		if CheckCollision(sp, r, b.Pos, g.cfg.BoltRadius) {
			g.Store.HostileBolts = slices.Delete(g.Store.HostileBolts, i, i+1)
			g.applyDamage(1)
			return
		}
	}
}

// collectRings scores every uncollected gate the ship is passing through
func (g *Game) collectRings() {
	for i := range g.Store.Rings {
		r := &g.Store.Rings[i]
		if r.Collected || !r.Captures(g.Ship.Pos, &g.cfg) {
			continue
		}
		r.Collected = true
		g.score += g.cfg.RingScore
		g.emit(Event{Kind: EventRingCollected, Entity: EntityRing, ID: r.ID, Pos: r.Pos, Score: g.cfg.RingScore})
	}
}

// collectPickups heals one unit per pickup in reach
func (g *Game) collectPickups() {
	pickups := g.Store.Pickups
	for i := len(pickups) - 1; i >= 0; i-- {
		p := pickups[i]
		if Distance(p.Pos, g.Ship.Pos) >= g.cfg.PickupRadius {
			continue
		}
		g.Ship.Heal(1)
		pickups = slices.Delete(pickups, i, i+1)
		g.emit(Event{Kind: EventPickupCollected, Entity: EntityPickup, ID: p.ID, Pos: p.Pos, Health: g.Ship.Health})
	}
	g.Store.Pickups = pickups
}
