package entity

// World holds the complete simulation state of one run
type World struct {
	Width        int
	ViewW, ViewH int

	// Level content, replaced on every generation
	Stage  []StageBlock
	Spikes []Rect
	Coins  []Pickup
	Goal   Rect

	Player   *Player
	Enemies  []Enemy
	Bullets  []Bullet
	Hearts   []Pickup
	Upgrades []Pickup

	CameraX float64

	Score      int
	Kills      int
	HeartMeter int

	// Timers in ticks
	TimeLeft        int
	SpawnTimer      int
	StartProtection int
}

// NewWorld creates an empty world with the given dimensions
func NewWorld(width, viewW, viewH int) *World {
	return &World{Width: width, ViewW: viewW, ViewH: viewH}
}

// LoadLevel replaces level content and clears every runtime collection.
// Enemies are cloned so the level can be loaded again unchanged.
func (w *World) LoadLevel(l Level) {
	if l.Width > 0 {
		w.Width = l.Width
	}
	w.Stage = append([]StageBlock(nil), l.Stage...)
	w.Spikes = append([]Rect(nil), l.Spikes...)
	w.Coins = append([]Pickup(nil), l.Coins...)
	w.Goal = l.Goal

	w.Enemies = w.Enemies[:0]
	for _, e := range l.Enemies {
		w.Enemies = append(w.Enemies, e.Clone())
	}
	w.Bullets = w.Bullets[:0]
	w.Hearts = w.Hearts[:0]
	w.Upgrades = w.Upgrades[:0]
}

// CountEnemies returns the number of live enemies of the given kind
func (w *World) CountEnemies(kind EnemyKind) int {
	n := 0
	for _, e := range w.Enemies {
		if e.Kind() == kind {
			n++
		}
	}
	return n
}

// MaxCameraX returns the right-most camera position
func (w *World) MaxCameraX() float64 {
	m := float64(w.Width - w.ViewW)
	if m < 0 {
		return 0
	}
	return m
}
