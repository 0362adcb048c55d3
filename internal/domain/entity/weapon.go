package entity

// WeaponType represents the player's active weapon
type WeaponType int

const (
	WeaponNormal  WeaponType = iota // single forward shot
	WeaponShotgun                   // three-way fan
	WeaponCharge                    // hold to charge, release to fire

	WeaponCount = 3
)

// String returns the string representation of the weapon type
func (w WeaponType) String() string {
	switch w {
	case WeaponNormal:
		return "Normal"
	case WeaponShotgun:
		return "Shotgun"
	case WeaponCharge:
		return "Charge"
	default:
		return "Unknown"
	}
}

// Valid reports whether w is one of the known weapons
func (w WeaponType) Valid() bool {
	return w >= WeaponNormal && w < WeaponCount
}

// WeaponMenu is the choice offered while the game is paused for an upgrade
type WeaponMenu struct {
	Options []WeaponType
	Cursor  int
}

// NewWeaponMenu creates a menu with the cursor on the first option
func NewWeaponMenu(options ...WeaponType) *WeaponMenu {
	return &WeaponMenu{Options: options}
}

// Move shifts the cursor by delta, clamped to the option range
func (m *WeaponMenu) Move(delta int) {
	if len(m.Options) == 0 {
		return
	}
	m.Cursor = clamp(m.Cursor+delta, 0, len(m.Options)-1)
}

// Selected returns the option under the cursor.
// An empty menu selects the normal weapon.
func (m *WeaponMenu) Selected() WeaponType {
	if len(m.Options) == 0 {
		return WeaponNormal
	}
	return m.Options[m.Cursor]
}

func clamp(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
