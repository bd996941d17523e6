package sim

// EventKind identifies a discrete notification for renderer, HUD and audio collaborators
type EventKind int

const (
	EventDestroyed       EventKind = iota // enemy, asteroid or ship exploded
	EventHit                              // hazard took a hit and survived
	EventBoltFired                        // muzzle flash
	EventShipDamaged                      // shake/flash feedback
	EventRingCollected                    // score popup
	EventPickupCollected                  // hull popup
	EventStateChanged                     // menu/HUD show-hide
	EventDeathScreen                      // destroyed feedback delay elapsed
)

func (k EventKind) String() string {
	switch k {
	case EventDestroyed:
		return "destroyed"
	case EventHit:
		return "hit"
	case EventBoltFired:
		return "bolt_fired"
	case EventShipDamaged:
		return "ship_damaged"
	case EventRingCollected:
		return "ring_collected"
	case EventPickupCollected:
		return "pickup_collected"
	case EventStateChanged:
		return "state_changed"
	case EventDeathScreen:
		return "death_screen"
	}
	return "unknown"
}

// EntityType names the kind of entity an event is about
type EntityType int

const (
	EntityNone EntityType = iota
	EntityShip
	EntityEnemy
	EntityAsteroid
	EntityBolt
	EntityRing
	EntityPickup
)

// Event is one notification emitted during a tick. Only the fields relevant to
// Kind are set.
type Event struct {
	Kind   EventKind  `json:"k" msgpack:"k"`
	Entity EntityType `json:"e,omitempty" msgpack:"e,omitempty"`
	Enemy  EnemyKind  `json:"ek,omitempty" msgpack:"ek,omitempty"`
	ID     uint64     `json:"id,omitempty" msgpack:"id,omitempty"`
	Pos    Vec3       `json:"p" msgpack:"p"`
	Tier   int        `json:"tr,omitempty" msgpack:"tr,omitempty"` // explosion size
	Score  int        `json:"sc,omitempty" msgpack:"sc,omitempty"` // score awarded
	Color  Color      `json:"c,omitempty" msgpack:"c,omitempty"`
	From   State      `json:"f,omitempty" msgpack:"f,omitempty"`
	To     State      `json:"to,omitempty" msgpack:"to,omitempty"`
	Health int        `json:"hp,omitempty" msgpack:"hp,omitempty"`
}
