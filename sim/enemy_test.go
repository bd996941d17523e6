package sim

import (
	"math/rand"
	"testing"
)

func TestDroneHomesOnShip(t *testing.T) {
	e := NewEnemy(1, Drone, Vec3{0, 0, -200}, rand.New(rand.NewSource(1)))
	ship := Vec3{}
	before := Distance(e.Pos, ship)
	for i := 0; i < 30; i++ {
		e.Update(tick, ship, 0, 1)
	}
	if Distance(e.Pos, ship) >= before {
		t.Error("drone should close on the ship")
	}
	if e.Facing.Z() <= 0 {
		t.Errorf("drone should face the ship, facing %v", e.Facing)
	}
}

func TestDronesNeverFire(t *testing.T) {
	e := NewEnemy(1, Drone, Vec3{0, 0, -50}, rand.New(rand.NewSource(1)))
	e.ShootCD = 0
	if fire := e.Update(tick, Vec3{}, 0, 1); fire != FireNone {
		t.Errorf("drone fired %v", fire)
	}
}

func TestFighterHoldsDistance(t *testing.T) {
	e := NewEnemy(1, Fighter, Vec3{0, 0, -20}, rand.New(rand.NewSource(1)))
	e.ShootCD = 100
	z := e.Pos.Z()
	e.Update(tick, Vec3{}, 0, 1)
	if e.Pos.Z() != z {
		t.Error("fighter inside hold distance should only strafe")
	}
}

func TestFighterCooldownScales(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	low := NewEnemy(1, Fighter, Vec3{0, 0, -100}, r)
	low.ShootCD = 0
	low.Update(tick, Vec3{}, 0, 1)
	high := NewEnemy(2, Fighter, Vec3{0, 0, -100}, r)
	high.ShootCD = 0
	high.Update(tick, Vec3{}, 0, 50)
	if high.ShootCD >= low.ShootCD {
		t.Errorf("higher difficulty should fire faster: %f vs %f", high.ShootCD, low.ShootCD)
	}
	if high.ShootCD != FighterCDFloor {
		t.Errorf("cooldown should floor at %f, got %f", FighterCDFloor, high.ShootCD)
	}
}

func TestCruiserAdvancesOnlyForward(t *testing.T) {
	e := NewEnemy(1, Cruiser, Vec3{3, 2, -100}, rand.New(rand.NewSource(1)))
	e.ShootCD = 100
	e.Update(0.5, Vec3{}, 0, 1)
	if e.Pos.X() != 3 || e.Pos.Y() != 2 {
		t.Errorf("cruiser should keep its lateral position, got %v", e.Pos)
	}
	if e.Pos.Z() != -94 {
		t.Errorf("expected z -94, got %f", e.Pos.Z())
	}
}

func TestEnemyTakeHit(t *testing.T) {
	e := NewEnemy(1, Fighter, Vec3{}, rand.New(rand.NewSource(1)))
	if e.TakeHit() {
		t.Error("fighter should survive one hit")
	}
	if !e.TakeHit() {
		t.Error("fighter should die on the second hit")
	}
	if e.HP != 0 {
		t.Errorf("expected HP 0, got %d", e.HP)
	}
}
