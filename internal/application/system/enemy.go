package system

import (
	"math"

	"github.com/younwookim/cave/internal/domain/entity"
	"github.com/younwookim/cave/internal/infrastructure/config"
)

// EnemySystem spawns runtime enemies and runs enemy AI
type EnemySystem struct {
	config *config.GameConfig
	rng    Rand
}

// NewEnemySystem creates a new enemy system
func NewEnemySystem(cfg *config.GameConfig, rng Rand) *EnemySystem {
	return &EnemySystem{config: cfg, rng: rng}
}

// Update runs the spawner, then every enemy's behavior.
// Enemies whose behavior ends them are removed in the same pass.
func (s *EnemySystem) Update(w *entity.World) {
	s.updateSpawner(w)

	kept := w.Enemies[:0]
	for _, e := range w.Enemies {
		if s.updateEnemy(w, &e) {
			kept = append(kept, e)
		}
	}
	w.Enemies = kept
}

// updateSpawner counts down and adds a stream or chase enemy just off the right edge.
// Spawning is suspended while the start protection lasts.
func (s *EnemySystem) updateSpawner(w *entity.World) {
	if w.StartProtection > 0 {
		w.StartProtection--
	}
	w.SpawnTimer--

	cfg := s.config.Enemies.Spawn
	if w.SpawnTimer > 0 || len(w.Enemies) >= cfg.MaxCount || w.StartProtection > 0 {
		return
	}

	x := w.CameraX + float64(w.ViewW) + cfg.OffsetX
	y := choose(s.rng, cfg.Heights)
	if s.rng.Intn(2) == 0 {
		w.Enemies = append(w.Enemies, entity.NewStreamEnemy(x, y, -randUniform(s.rng, cfg.StreamSpeed)))
	} else {
		w.Enemies = append(w.Enemies, entity.NewChaseEnemy(x, y, randUniform(s.rng, cfg.ChaseSpeed)))
	}
	w.SpawnTimer = randRange(s.rng, cfg.Interval)
}

// updateEnemy advances one enemy. Returns false if it should be removed.
func (s *EnemySystem) updateEnemy(w *entity.World, e *entity.Enemy) bool {
	switch b := e.Behavior.(type) {
	case *entity.Patrol:
		e.X += b.Speed
		if e.X < b.MinX || e.X > b.MaxX {
			b.Speed = -b.Speed
		}
	case *entity.Shooter:
		s.updateShooter(w, e, b)
	case *entity.Stream:
		e.X += b.Speed
		return !s.offscreen(w, e)
	case *entity.Chase:
		if dx, dy, ok := aim(e, w.Player); ok {
			e.X += dx * b.Speed
			e.Y += dy * b.Speed
		}
		return !s.offscreen(w, e)
	}
	return true
}

func (s *EnemySystem) updateShooter(w *entity.World, e *entity.Enemy, b *entity.Shooter) {
	cfg := s.config.Enemies.Shooter
	b.ShootTimer--
	if b.ShootTimer > 0 || abs(w.Player.X-e.X) >= cfg.Range {
		return
	}

	if dx, dy, ok := aim(e, w.Player); ok {
		w.Bullets = append(w.Bullets, entity.NewBullet(
			e.X+entity.Size/2, e.Y+entity.Size/2,
			dx*cfg.BulletSpeed, dy*cfg.BulletSpeed,
			cfg.BulletSize, entity.OwnerEnemy,
		))
	}
	b.ShootTimer = randRange(s.rng, cfg.ReloadTime)
}

// offscreen reports whether a drifting enemy fell behind the camera
func (s *EnemySystem) offscreen(w *entity.World, e *entity.Enemy) bool {
	return e.X < w.CameraX-s.config.Enemies.DespawnMargin
}

// aim returns the unit vector from e to the player. ok is false at zero distance.
func aim(e *entity.Enemy, p *entity.Player) (dx, dy float64, ok bool) {
	dx = p.X - e.X
	dy = p.Y - e.Y
	dist := math.Hypot(dx, dy)
	if dist == 0 {
		return 0, 0, false
	}
	return dx / dist, dy / dist, true
}
