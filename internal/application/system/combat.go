package system

import (
	"github.com/younwookim/cave/internal/domain/entity"
	"github.com/younwookim/cave/internal/infrastructure/config"
)

// CombatSystem resolves every contact between the player, enemies, bullets,
// hazards and pickups. It mutates the world and reports what happened.
type CombatSystem struct {
	config *config.GameConfig
}

// NewCombatSystem creates a new combat system
func NewCombatSystem(cfg *config.GameConfig) *CombatSystem {
	return &CombatSystem{config: cfg}
}

// Resolve runs all collision checks for one tick in a fixed order.
// Each damage check stops at its first hit. Hearts and upgrades spawned
// during this call are only collectable from the next tick.
func (s *CombatSystem) Resolve(w *entity.World) []Event {
	var events []Event
	heartCount := len(w.Hearts)
	upgradeCount := len(w.Upgrades)

	events = s.checkEnemyContact(w, events)
	events = s.checkEnemyBullets(w, events)
	events = s.checkPlayerBullets(w, events)
	events = s.checkSpikes(w, events)
	events = s.checkCoins(w, events)
	events = s.checkHearts(w, heartCount, events)
	events = s.checkUpgrades(w, upgradeCount, events)

	box := w.Player.Rect()
	if box.Overlaps(w.Goal) {
		events = append(events, GoalReached{})
	}
	if w.Player.Y > float64(w.ViewH) {
		events = append(events, PlayerDied{Cause: DeathFall})
	}

	return events
}

// damage applies one hit and the iframe window
func (s *CombatSystem) damage(w *entity.World, source DamageSource, events []Event) []Event {
	p := w.Player
	p.TakeHit(s.config.Rules.Iframes)
	events = append(events, PlayerDamaged{Source: source, Health: p.Health})
	if p.IsDead() {
		events = append(events, PlayerDied{Cause: DeathHealth})
	}
	return events
}

func (s *CombatSystem) checkEnemyContact(w *entity.World, events []Event) []Event {
	if w.Player.IsInvincible() {
		return events
	}
	box := w.Player.Rect()
	for _, e := range w.Enemies {
		if box.Overlaps(e.Rect()) {
			return s.damage(w, DamageEnemy, events)
		}
	}
	return events
}

func (s *CombatSystem) checkEnemyBullets(w *entity.World, events []Event) []Event {
	if w.Player.IsInvincible() {
		return events
	}
	box := w.Player.Rect()
	for i, b := range w.Bullets {
		if b.IsPlayer() || !box.Overlaps(b.Rect()) {
			continue
		}
		w.Bullets = append(w.Bullets[:i], w.Bullets[i+1:]...)
		return s.damage(w, DamageBullet, events)
	}
	return events
}

// checkPlayerBullets destroys enemies hit by player bullets. A bullet stops at
// its first enemy unless it pierces.
func (s *CombatSystem) checkPlayerBullets(w *entity.World, events []Event) []Event {
	kept := w.Bullets[:0]
	for _, b := range w.Bullets {
		if b.IsPlayer() {
			var hit bool
			if hit, events = s.hitEnemies(w, b, events); hit && !b.Piercing {
				continue
			}
		}
		kept = append(kept, b)
	}
	w.Bullets = kept
	return events
}

func (s *CombatSystem) hitEnemies(w *entity.World, b entity.Bullet, events []Event) (bool, []Event) {
	hit := false
	box := b.Rect()

	kept := w.Enemies[:0]
	for _, e := range w.Enemies {
		if (!hit || b.Piercing) && box.Overlaps(e.Rect()) {
			hit = true
			events = s.kill(w, e, events)
			continue
		}
		kept = append(kept, e)
	}
	w.Enemies = kept
	return hit, events
}

func (s *CombatSystem) kill(w *entity.World, e entity.Enemy, events []Event) []Event {
	rules := s.config.Rules
	w.Score += rules.KillScore
	w.Kills++
	events = append(events, EnemyKilled{Kind: e.Kind(), X: e.X, Y: e.Y, Kills: w.Kills})

	if s.config.Features.Upgrades && w.Kills%rules.UpgradeEvery == 0 {
		w.Upgrades = append(w.Upgrades, entity.NewPickup(entity.PickupUpgrade, e.X, e.Y))
		events = append(events, UpgradeDropped{X: e.X, Y: e.Y})
	}
	return events
}

func (s *CombatSystem) checkSpikes(w *entity.World, events []Event) []Event {
	if w.Player.IsInvincible() {
		return events
	}
	box := w.Player.Rect()
	for _, spike := range w.Spikes {
		if box.Overlaps(spike) {
			return s.damage(w, DamageSpike, events)
		}
	}
	return events
}

func (s *CombatSystem) checkCoins(w *entity.World, events []Event) []Event {
	rules := s.config.Rules
	p := w.Player
	box := p.Rect()

	kept := w.Coins[:0]
	for _, c := range w.Coins {
		if !box.Overlaps(c.Rect) {
			kept = append(kept, c)
			continue
		}
		w.Score += rules.CoinScore
		events = append(events, CoinCollected{Score: w.Score})

		if !s.config.Features.Hearts {
			continue
		}
		w.HeartMeter++
		if w.HeartMeter >= rules.HeartEvery {
			w.HeartMeter = 0
			w.Hearts = append(w.Hearts, entity.NewPickup(entity.PickupHeart, p.X, p.Y))
			events = append(events, HeartSpawned{X: p.X, Y: p.Y})
		}
	}
	w.Coins = kept
	return events
}

// checkHearts only looks at the first n hearts, the ones present before this tick
func (s *CombatSystem) checkHearts(w *entity.World, n int, events []Event) []Event {
	p := w.Player
	box := p.Rect()

	kept := w.Hearts[:0]
	for i, h := range w.Hearts {
		if i < n && box.Overlaps(h.Rect) {
			p.Heal(s.config.Rules.HealAmount)
			events = append(events, HeartCollected{Health: p.Health})
			continue
		}
		kept = append(kept, h)
	}
	w.Hearts = kept
	return events
}

// checkUpgrades only looks at the first n upgrades, the ones present before this tick
func (s *CombatSystem) checkUpgrades(w *entity.World, n int, events []Event) []Event {
	box := w.Player.Rect()

	kept := w.Upgrades[:0]
	for i, u := range w.Upgrades {
		if i < n && box.Overlaps(u.Rect) {
			events = append(events, UpgradeCollected{})
			continue
		}
		kept = append(kept, u)
	}
	w.Upgrades = kept
	return events
}
