package entity

// EnemyKind identifies an enemy's behavior variant
type EnemyKind int

const (
	EnemyPatrol EnemyKind = iota
	EnemyShooter
	EnemyStream
	EnemyChase
)

// String returns the string representation of the enemy kind
func (k EnemyKind) String() string {
	switch k {
	case EnemyPatrol:
		return "Patrol"
	case EnemyShooter:
		return "Shooter"
	case EnemyStream:
		return "Stream"
	case EnemyChase:
		return "Chase"
	default:
		return "Unknown"
	}
}

// Behavior holds the variant-specific state of an enemy.
// Implementations are the pointer types below; the set is closed.
type Behavior interface {
	Kind() EnemyKind
	isBehavior()
}

// Patrol walks back and forth inside [MinX, MaxX]
type Patrol struct {
	MinX, MaxX float64
	Speed      float64 // signed, pixels per tick
}

func (*Patrol) Kind() EnemyKind { return EnemyPatrol }
func (*Patrol) isBehavior()     {}

// Shooter stands still and fires aimed bullets
type Shooter struct {
	ShootTimer int
}

func (*Shooter) Kind() EnemyKind { return EnemyShooter }
func (*Shooter) isBehavior()     {}

// Stream drifts horizontally at constant speed
type Stream struct {
	Speed float64 // signed, negative drifts left
}

func (*Stream) Kind() EnemyKind { return EnemyStream }
func (*Stream) isBehavior()     {}

// Chase homes toward the player
type Chase struct {
	Speed float64
}

func (*Chase) Kind() EnemyKind { return EnemyChase }
func (*Chase) isBehavior()     {}

// Enemy represents an enemy entity
type Enemy struct {
	X, Y     float64
	Behavior Behavior
}

// NewPatrolEnemy creates a patrol enemy confined to [minX, maxX]
func NewPatrolEnemy(x, y, minX, maxX, speed float64) Enemy {
	return Enemy{X: x, Y: y, Behavior: &Patrol{MinX: minX, MaxX: maxX, Speed: speed}}
}

// NewShooterEnemy creates a shooter with the given initial timer
func NewShooterEnemy(x, y float64, timer int) Enemy {
	return Enemy{X: x, Y: y, Behavior: &Shooter{ShootTimer: timer}}
}

// NewStreamEnemy creates a drifting enemy
func NewStreamEnemy(x, y, speed float64) Enemy {
	return Enemy{X: x, Y: y, Behavior: &Stream{Speed: speed}}
}

// NewChaseEnemy creates a homing enemy
func NewChaseEnemy(x, y, speed float64) Enemy {
	return Enemy{X: x, Y: y, Behavior: &Chase{Speed: speed}}
}

// Kind returns the behavior variant
func (e Enemy) Kind() EnemyKind {
	return e.Behavior.Kind()
}

// Rect returns the enemy's hit box
func (e Enemy) Rect() Rect {
	return NewRect(e.X, e.Y, Size, Size)
}

// Clone returns a copy that does not share behavior state
func (e Enemy) Clone() Enemy {
	switch b := e.Behavior.(type) {
	case *Patrol:
		c := *b
		e.Behavior = &c
	case *Shooter:
		c := *b
		e.Behavior = &c
	case *Stream:
		c := *b
		e.Behavior = &c
	case *Chase:
		c := *b
		e.Behavior = &c
	}
	return e
}
