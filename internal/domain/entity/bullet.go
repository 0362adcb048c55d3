package entity

// Owner identifies who fired a bullet
type Owner int

const (
	OwnerPlayer Owner = iota
	OwnerEnemy
)

// Bullet represents a straight-flying projectile
type Bullet struct {
	X, Y   float64
	VX, VY float64
	Size   float64
	Owner  Owner

	// Piercing bullets survive enemy hits (charge shots)
	Piercing bool
}

// NewBullet creates a bullet
func NewBullet(x, y, vx, vy, size float64, owner Owner) Bullet {
	return Bullet{X: x, Y: y, VX: vx, VY: vy, Size: size, Owner: owner}
}

// IsPlayer returns true if the player fired this bullet
func (b Bullet) IsPlayer() bool {
	return b.Owner == OwnerPlayer
}

// Advance moves the bullet by its velocity
func (b *Bullet) Advance() {
	b.X += b.VX
	b.Y += b.VY
}

// Rect returns the bullet's hit box
func (b Bullet) Rect() Rect {
	return NewRect(b.X, b.Y, b.Size, b.Size)
}
