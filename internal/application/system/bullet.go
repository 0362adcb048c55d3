package system

import (
	"github.com/younwookim/cave/internal/domain/entity"
	"github.com/younwookim/cave/internal/infrastructure/config"
)

// BulletSystem moves bullets and culls the ones that left the view
type BulletSystem struct {
	config *config.GameConfig
}

// NewBulletSystem creates a new bullet system
func NewBulletSystem(cfg *config.GameConfig) *BulletSystem {
	return &BulletSystem{config: cfg}
}

// Update advances every bullet and drops it on the same pass once it is
// outside the camera bounds extended by the bullet margin.
func (s *BulletSystem) Update(w *entity.World) {
	kept := w.Bullets[:0]
	for _, b := range w.Bullets {
		b.Advance()
		if s.inBounds(w, b) {
			kept = append(kept, b)
		}
	}
	w.Bullets = kept
}

func (s *BulletSystem) inBounds(w *entity.World, b entity.Bullet) bool {
	m := s.config.Enemies.BulletMargin
	left := w.CameraX - m
	right := w.CameraX + float64(w.ViewW) + m
	return b.X >= left && b.X <= right && b.Y >= -m && b.Y <= float64(w.ViewH)+m
}
