package entity

// Size is the edge length of the player and enemy hit boxes (pixels)
const Size = 8

// Rect is an axis-aligned rectangle in world pixels
type Rect struct {
	X, Y float64
	W, H float64
}

// NewRect creates a rect from its top-left corner and size
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x coordinate of the right edge
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y coordinate of the bottom edge
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Overlaps reports whether two rects intersect. Touching edges do not count.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W && r.X+r.W > o.X && r.Y < o.Y+o.H && r.Y+r.H > o.Y
}

// Material tags a stage block for rendering and generation rules
type Material int

const (
	MaterialGround Material = iota
	MaterialPlatform
)

// String returns the string representation of the material
func (m Material) String() string {
	switch m {
	case MaterialGround:
		return "Ground"
	case MaterialPlatform:
		return "Platform"
	default:
		return "Unknown"
	}
}

// StageBlock is a solid rectangle the player can stand on
type StageBlock struct {
	Rect
	Material Material
}

// PickupKind identifies what a pickup does when collected
type PickupKind int

const (
	PickupCoin PickupKind = iota
	PickupHeart
	PickupUpgrade
)

// String returns the string representation of the pickup kind
func (k PickupKind) String() string {
	switch k {
	case PickupCoin:
		return "Coin"
	case PickupHeart:
		return "Heart"
	case PickupUpgrade:
		return "Upgrade"
	default:
		return "Unknown"
	}
}

// Pickup is a collectible consumed on contact
type Pickup struct {
	Rect
	Kind PickupKind
}

// NewPickup creates an 8x8 pickup at the given position
func NewPickup(kind PickupKind, x, y float64) Pickup {
	return Pickup{Rect: NewRect(x, y, Size, Size), Kind: kind}
}

// Level is the output of one level generation
type Level struct {
	Width   int
	Stage   []StageBlock
	Spikes  []Rect
	Coins   []Pickup
	Enemies []Enemy
	Goal    Rect
}

// Ground returns the ground segments in generation order
func (l *Level) Ground() []StageBlock {
	return l.blocks(MaterialGround)
}

// Platforms returns the floating platforms in generation order
func (l *Level) Platforms() []StageBlock {
	return l.blocks(MaterialPlatform)
}

func (l *Level) blocks(m Material) []StageBlock {
	var out []StageBlock
	for _, b := range l.Stage {
		if b.Material == m {
			out = append(out, b)
		}
	}
	return out
}
