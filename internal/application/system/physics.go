package system

import (
	"github.com/younwookim/cave/internal/domain/entity"
	"github.com/younwookim/cave/internal/infrastructure/config"
)

// PhysicsSystem moves the player against input, gravity and the stage
type PhysicsSystem struct {
	config *config.GameConfig
}

// NewPhysicsSystem creates a new physics system
func NewPhysicsSystem(cfg *config.GameConfig) *PhysicsSystem {
	return &PhysicsSystem{config: cfg}
}

// Update advances the player by one tick
func (s *PhysicsSystem) Update(w *entity.World, input InputState) {
	p := w.Player

	s.applyMovement(w, p, input)
	s.applyGravity(p)
	s.resolveGround(w, p)
	s.handleJump(p, input)

	if p.Invincible > 0 {
		p.Invincible--
	}
}

// applyMovement moves horizontally. Both directions may apply in one tick;
// facing follows the last one applied.
func (s *PhysicsSystem) applyMovement(w *entity.World, p *entity.Player, input InputState) {
	speed := s.config.Player.MoveSpeed
	startX := p.X

	if input.IsHeld(ControlLeft) {
		p.X = clampFloat(p.X-speed, 0, float64(w.Width-entity.Size))
		p.Facing = -1
	}
	if input.IsHeld(ControlRight) {
		p.X = clampFloat(p.X+speed, 0, float64(w.Width-entity.Size))
		p.Facing = 1
	}

	p.Traveled += abs(p.X - startX)
}

// applyGravity moves by the current velocity, then accelerates
func (s *PhysicsSystem) applyGravity(p *entity.Player) {
	p.Y += p.VY
	p.VY += s.config.World.Gravity
	if p.VY > s.config.World.MaxFallSpeed {
		p.VY = s.config.World.MaxFallSpeed
	}
}

// resolveGround lands the player on the first overlapping block while falling
func (s *PhysicsSystem) resolveGround(w *entity.World, p *entity.Player) {
	if p.VY < 0 {
		return
	}
	box := p.Rect()
	for _, b := range w.Stage {
		if box.Overlaps(b.Rect) {
			p.Y = b.Y - entity.Size
			p.VY = 0
			p.JumpsLeft = p.MaxJumps
			return
		}
	}
}

func (s *PhysicsSystem) handleJump(p *entity.Player, input InputState) {
	if !input.IsPressed(ControlJump) || p.JumpsLeft <= 0 {
		return
	}
	p.VY = -s.jumpImpulse(p.MaxJumps - p.JumpsLeft)
	p.JumpsLeft--
}

// jumpImpulse returns the impulse of the n-th jump since landing (0-based).
// Jumps past the configured list reuse the last impulse.
func (s *PhysicsSystem) jumpImpulse(n int) float64 {
	impulses := s.config.Player.JumpImpulses
	if len(impulses) == 0 {
		return 0
	}
	if n < 0 {
		n = 0
	}
	if n >= len(impulses) {
		n = len(impulses) - 1
	}
	return impulses[n]
}
