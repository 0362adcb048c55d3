package entity

// Player represents the player entity.
// X is moved in float steps but rendered on whole pixels.
type Player struct {
	X, Y   float64
	VY     float64
	Facing int // +1 right, -1 left

	Health    int
	MaxHealth int

	JumpsLeft int
	MaxJumps  int

	// Invincible counts down the remaining iframes
	Invincible int

	// Weapons
	Weapon   WeaponType
	Ammo     [WeaponCount]int
	MaxAmmo  [WeaponCount]int
	Charge   int
	Cooldown int

	// Traveled is the unsigned horizontal distance since the last ammo refill
	Traveled float64
}

// NewPlayer creates a player with full health, jumps and ammo.
func NewPlayer(x, y float64, maxHealth, maxJumps int, maxAmmo [WeaponCount]int) *Player {
	return &Player{
		X:         x,
		Y:         y,
		Facing:    1,
		Health:    maxHealth,
		MaxHealth: maxHealth,
		JumpsLeft: maxJumps,
		MaxJumps:  maxJumps,
		Weapon:    WeaponNormal,
		Ammo:      maxAmmo,
		MaxAmmo:   maxAmmo,
	}
}

// PixelX returns the rendered x position
func (p *Player) PixelX() int {
	return int(p.X)
}

// PixelY returns the rendered y position
func (p *Player) PixelY() int {
	return int(p.Y)
}

// Rect returns the player's hit box
func (p *Player) Rect() Rect {
	return NewRect(p.X, p.Y, Size, Size)
}

// IsInvincible returns true while iframes remain
func (p *Player) IsInvincible() bool {
	return p.Invincible > 0
}

// Visible reports whether the player is drawn this tick.
// While invincible the sprite is hidden every other 5-tick window.
func (p *Player) Visible() bool {
	return p.Invincible%10 < 5
}

// IsDead returns true once health is exhausted
func (p *Player) IsDead() bool {
	return p.Health <= 0
}

// TakeHit removes one health and starts the iframe window
func (p *Player) TakeHit(iframes int) {
	if p.Health > 0 {
		p.Health--
	}
	p.Invincible = iframes
}

// Heal restores health up to max
func (p *Player) Heal(amount int) {
	p.Health += amount
	if p.Health > p.MaxHealth {
		p.Health = p.MaxHealth
	}
}

// ActiveAmmo returns the ammo of the equipped weapon
func (p *Player) ActiveAmmo() int {
	return p.Ammo[p.Weapon]
}

// ActiveMaxAmmo returns the ammo capacity of the equipped weapon
func (p *Player) ActiveMaxAmmo() int {
	return p.MaxAmmo[p.Weapon]
}

// SpendAmmo removes cost from the equipped weapon.
// Returns false and leaves ammo untouched if there is not enough.
func (p *Player) SpendAmmo(cost int) bool {
	if cost < 0 || p.Ammo[p.Weapon] < cost {
		return false
	}
	p.Ammo[p.Weapon] -= cost
	return true
}

// Refill restores the given weapon's ammo to its maximum
func (p *Player) Refill(w WeaponType) {
	p.Ammo[w] = p.MaxAmmo[w]
}

// Equip switches weapon, refills it and drops any pending charge
func (p *Player) Equip(w WeaponType) {
	if !w.Valid() {
		return
	}
	p.Weapon = w
	p.Charge = 0
	p.Refill(w)
}
