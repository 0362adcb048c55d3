package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/cave/internal/domain/entity"
)

func hasEvent[T Event](events []Event) bool {
	for _, e := range events {
		if _, ok := e.(T); ok {
			return true
		}
	}
	return false
}

func countEvents[T Event](events []Event) int {
	n := 0
	for _, e := range events {
		if _, ok := e.(T); ok {
			n++
		}
	}
	return n
}

func TestCombatSystem_EnemyContact(t *testing.T) {
	cfg := createTestConfig()
	w := createTestWorld(cfg)
	p := w.Player
	w.Enemies = []entity.Enemy{
		entity.NewStreamEnemy(p.X+2, p.Y, -1),
		entity.NewChaseEnemy(p.X-2, p.Y, 0.5),
	}

	events := NewCombatSystem(cfg).Resolve(w)

	assert.Equal(t, 2, p.Health, "at most one hit per tick")
	assert.Equal(t, 120, p.Invincible)
	assert.Equal(t, 1, countEvents[PlayerDamaged](events))
	assert.Len(t, w.Enemies, 2, "contact does not destroy the enemy")
}

func TestCombatSystem_InvincibleIgnoresDamage(t *testing.T) {
	cfg := createTestConfig()
	w := createTestWorld(cfg)
	p := w.Player
	p.Invincible = 5
	w.Enemies = []entity.Enemy{entity.NewStreamEnemy(p.X, p.Y, -1)}
	w.Bullets = []entity.Bullet{entity.NewBullet(p.X+2, p.Y+2, 0, 0, 2, entity.OwnerEnemy)}
	w.Spikes = []entity.Rect{entity.NewRect(p.X, p.Y, 16, 8)}

	events := NewCombatSystem(cfg).Resolve(w)

	assert.Equal(t, 3, p.Health)
	assert.Empty(t, events)
	assert.Len(t, w.Bullets, 1, "enemy bullets pass through an invincible player")
}

func TestCombatSystem_EnemyBullet(t *testing.T) {
	cfg := createTestConfig()
	w := createTestWorld(cfg)
	p := w.Player
	w.Bullets = []entity.Bullet{
		entity.NewBullet(p.X+2, p.Y+2, 0, 0, 2, entity.OwnerEnemy),
		entity.NewBullet(p.X+3, p.Y+3, 0, 0, 2, entity.OwnerEnemy),
		entity.NewBullet(300, 50, 0, 0, 2, entity.OwnerEnemy),
	}

	events := NewCombatSystem(cfg).Resolve(w)

	assert.Equal(t, 2, p.Health)
	assert.Len(t, w.Bullets, 2, "only the hitting bullet is consumed")
	assert.Equal(t, PlayerDamaged{Source: DamageBullet, Health: 2}, events[0])
}

func TestCombatSystem_PlayerBulletKills(t *testing.T) {
	cfg := createTestConfig()
	w := createTestWorld(cfg)
	w.Enemies = []entity.Enemy{
		entity.NewStreamEnemy(300, 100, -1),
		entity.NewStreamEnemy(303, 100, -1),
		entity.NewStreamEnemy(500, 100, -1),
	}
	w.Bullets = []entity.Bullet{entity.NewBullet(304, 103, 4, 0, 2, entity.OwnerPlayer)}

	events := NewCombatSystem(cfg).Resolve(w)

	assert.Len(t, w.Enemies, 2, "a plain bullet stops at its first enemy")
	assert.Equal(t, 303.0, w.Enemies[0].X)
	assert.Empty(t, w.Bullets)
	assert.Equal(t, 50, w.Score)
	assert.Equal(t, 1, w.Kills)
	assert.Equal(t, EnemyKilled{Kind: entity.EnemyStream, X: 300, Y: 100, Kills: 1}, events[0])
}

func TestCombatSystem_PiercingBullet(t *testing.T) {
	cfg := createTestConfig()
	w := createTestWorld(cfg)
	w.Enemies = []entity.Enemy{
		entity.NewStreamEnemy(300, 100, -1),
		entity.NewStreamEnemy(303, 100, -1),
	}
	b := entity.NewBullet(298, 98, 4, 0, 13, entity.OwnerPlayer)
	b.Piercing = true
	w.Bullets = []entity.Bullet{b}

	NewCombatSystem(cfg).Resolve(w)

	assert.Empty(t, w.Enemies)
	assert.Len(t, w.Bullets, 1, "piercing bullets survive")
	assert.Equal(t, 100, w.Score)
}

func TestCombatSystem_UpgradeEveryTenthKill(t *testing.T) {
	cfg := createTestConfig()
	w := createTestWorld(cfg)
	w.Kills = 9
	w.Enemies = []entity.Enemy{entity.NewShooterEnemy(300, 84, 60)}
	w.Bullets = []entity.Bullet{entity.NewBullet(301, 85, 4, 0, 2, entity.OwnerPlayer)}

	events := NewCombatSystem(cfg).Resolve(w)

	require.Len(t, w.Upgrades, 1)
	assert.Equal(t, entity.NewPickup(entity.PickupUpgrade, 300, 84), w.Upgrades[0])
	assert.True(t, hasEvent[UpgradeDropped](events))
	assert.False(t, hasEvent[UpgradeCollected](events))
}

func TestCombatSystem_SpikeScenario(t *testing.T) {
	cfg := createTestConfig()
	w := createTestWorld(cfg)
	physics := NewPhysicsSystem(cfg)
	combat := NewCombatSystem(cfg)
	p := w.Player
	w.Spikes = []entity.Rect{entity.NewRect(p.X-4, 124, 16, 8)}

	combat.Resolve(w)
	assert.Equal(t, 2, p.Health)
	assert.Equal(t, 120, p.Invincible)

	physics.Update(w, InputState{})
	assert.Equal(t, 119, p.Invincible)

	events := combat.Resolve(w)
	assert.Equal(t, 2, p.Health, "no damage while invincible")
	assert.False(t, hasEvent[PlayerDamaged](events))
}

func TestCombatSystem_DeathAtZeroHealth(t *testing.T) {
	cfg := createTestConfig()
	w := createTestWorld(cfg)
	p := w.Player
	p.Health = 1
	w.Spikes = []entity.Rect{entity.NewRect(p.X, 124, 16, 8)}

	events := NewCombatSystem(cfg).Resolve(w)

	assert.Equal(t, 0, p.Health)
	assert.Contains(t, events, Event(PlayerDied{Cause: DeathHealth}))
}

func TestCombatSystem_HeartAfterTenCoins(t *testing.T) {
	cfg := createTestConfig()
	w := createTestWorld(cfg)
	p := w.Player
	w.HeartMeter = 9
	w.Coins = []entity.Pickup{
		entity.NewPickup(entity.PickupCoin, p.X, p.Y),
		entity.NewPickup(entity.PickupCoin, 600, 80),
	}

	events := NewCombatSystem(cfg).Resolve(w)

	assert.Equal(t, 10, w.Score)
	assert.Equal(t, 0, w.HeartMeter)
	require.Len(t, w.Hearts, 1, "exactly one heart")
	assert.Equal(t, entity.NewPickup(entity.PickupHeart, p.X, p.Y), w.Hearts[0])
	assert.Len(t, w.Coins, 1)
	assert.True(t, hasEvent[HeartSpawned](events))
	assert.False(t, hasEvent[HeartCollected](events), "new hearts are collectable from the next tick")

	NewCombatSystem(cfg).Resolve(w)
	assert.Empty(t, w.Hearts)
}

func TestCombatSystem_HeartHealCapped(t *testing.T) {
	cfg := createTestConfig()
	w := createTestWorld(cfg)
	p := w.Player
	w.Hearts = []entity.Pickup{
		entity.NewPickup(entity.PickupHeart, p.X, p.Y),
		entity.NewPickup(entity.PickupHeart, p.X+1, p.Y),
	}
	p.Health = 2

	events := NewCombatSystem(cfg).Resolve(w)

	assert.Equal(t, 3, p.Health)
	assert.Empty(t, w.Hearts, "pickups all resolve in the same tick")
	assert.Equal(t, 2, countEvents[HeartCollected](events))
}

func TestCombatSystem_SimpleVariantSkipsHearts(t *testing.T) {
	cfg := createTestConfig()
	cfg.Features.Hearts = false
	w := createTestWorld(cfg)
	w.HeartMeter = 9
	w.Coins = []entity.Pickup{entity.NewPickup(entity.PickupCoin, w.Player.X, w.Player.Y)}

	NewCombatSystem(cfg).Resolve(w)

	assert.Equal(t, 10, w.Score)
	assert.Empty(t, w.Hearts)
}

func TestCombatSystem_UpgradePickup(t *testing.T) {
	cfg := createTestConfig()
	w := createTestWorld(cfg)
	w.Upgrades = []entity.Pickup{entity.NewPickup(entity.PickupUpgrade, w.Player.X, w.Player.Y)}

	events := NewCombatSystem(cfg).Resolve(w)

	assert.Empty(t, w.Upgrades)
	assert.True(t, hasEvent[UpgradeCollected](events))
}

func TestCombatSystem_GoalAndFall(t *testing.T) {
	cfg := createTestConfig()

	w := createTestWorld(cfg)
	w.Player.X, w.Player.Y = 980, 120
	events := NewCombatSystem(cfg).Resolve(w)
	assert.True(t, hasEvent[GoalReached](events))

	w = createTestWorld(cfg)
	w.Player.Y = 160.5
	events = NewCombatSystem(cfg).Resolve(w)
	assert.Contains(t, events, Event(PlayerDied{Cause: DeathFall}))

	w = createTestWorld(cfg)
	w.Player.Y = 160
	events = NewCombatSystem(cfg).Resolve(w)
	assert.Empty(t, events)
}
