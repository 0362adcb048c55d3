package system

import "github.com/younwookim/cave/internal/domain/entity"

// Event is something the collision pass produced during a tick.
// The session turns events into state transitions.
type Event interface {
	isEvent()
}

// DamageSource identifies what hurt the player
type DamageSource int

const (
	DamageEnemy DamageSource = iota
	DamageBullet
	DamageSpike
)

// String returns the string representation of the damage source
func (d DamageSource) String() string {
	switch d {
	case DamageEnemy:
		return "enemy"
	case DamageBullet:
		return "bullet"
	case DamageSpike:
		return "spike"
	default:
		return "unknown"
	}
}

// DeathCause identifies how a run was lost
type DeathCause int

const (
	DeathHealth DeathCause = iota
	DeathFall
	DeathTimeout
)

// String returns the string representation of the death cause
func (d DeathCause) String() string {
	switch d {
	case DeathHealth:
		return "health"
	case DeathFall:
		return "fall"
	case DeathTimeout:
		return "timeout"
	default:
		return "unknown"
	}
}

// PlayerDamaged is emitted once per hit
type PlayerDamaged struct {
	Source DamageSource
	Health int // remaining
}

func (PlayerDamaged) isEvent() {}

// PlayerDied requests game over
type PlayerDied struct {
	Cause DeathCause
}

func (PlayerDied) isEvent() {}

// EnemyKilled is emitted for every enemy destroyed by a player bullet
type EnemyKilled struct {
	Kind  entity.EnemyKind
	X, Y  float64
	Kills int // total after this kill
}

func (EnemyKilled) isEvent() {}

// CoinCollected is emitted per coin
type CoinCollected struct {
	Score int // total after this coin
}

func (CoinCollected) isEvent() {}

// HeartSpawned is emitted when the heart meter fills
type HeartSpawned struct {
	X, Y float64
}

func (HeartSpawned) isEvent() {}

// HeartCollected is emitted when a heart is picked up
type HeartCollected struct {
	Health int // after healing
}

func (HeartCollected) isEvent() {}

// UpgradeDropped is emitted when a kill milestone drops an upgrade
type UpgradeDropped struct {
	X, Y float64
}

func (UpgradeDropped) isEvent() {}

// UpgradeCollected requests weapon selection
type UpgradeCollected struct{}

func (UpgradeCollected) isEvent() {}

// GoalReached requests the clear state
type GoalReached struct{}

func (GoalReached) isEvent() {}
