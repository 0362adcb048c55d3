package system

import (
	"github.com/younwookim/cave/internal/domain/entity"
	"github.com/younwookim/cave/internal/infrastructure/config"
)

// WeaponSystem handles ammo, charge, cooldown and player bullets
type WeaponSystem struct {
	config *config.GameConfig
}

// NewWeaponSystem creates a new weapon system
func NewWeaponSystem(cfg *config.GameConfig) *WeaponSystem {
	return &WeaponSystem{config: cfg}
}

// MaxAmmo returns the per-weapon ammo capacity
func (s *WeaponSystem) MaxAmmo() [entity.WeaponCount]int {
	var max [entity.WeaponCount]int
	max[entity.WeaponNormal] = s.config.Weapons.Normal.MaxAmmo
	max[entity.WeaponShotgun] = s.config.Weapons.Shotgun.MaxAmmo
	max[entity.WeaponCharge] = s.config.Weapons.Charge.MaxAmmo
	return max
}

// Update runs refill, cooldown and firing for one tick
func (s *WeaponSystem) Update(w *entity.World, input InputState) {
	if !s.config.Features.Weapons {
		return
	}
	p := w.Player

	if p.Cooldown > 0 {
		p.Cooldown--
	}
	if p.Traveled >= s.config.Weapons.RefillDistance {
		p.Refill(p.Weapon)
		p.Traveled = 0
	}

	switch p.Weapon {
	case entity.WeaponNormal:
		if input.IsPressed(ControlFire) {
			s.fireNormal(w)
		}
	case entity.WeaponShotgun:
		if input.IsPressed(ControlFire) {
			s.fireShotgun(w)
		}
	case entity.WeaponCharge:
		if input.IsHeld(ControlFire) && p.Charge < s.config.Weapons.Charge.MaxCharge {
			p.Charge++
		}
		if input.IsReleased(ControlFire) {
			s.fireCharge(w)
			p.Charge = 0
		}
	}
}

// Select equips the weapon picked in the weapon menu
func (s *WeaponSystem) Select(w *entity.World, weapon entity.WeaponType) {
	w.Player.Equip(weapon)
}

// ChargeCost returns the ammo cost of a charge shot
func (s *WeaponSystem) ChargeCost(charge int) int {
	return 1 + charge/s.config.Weapons.Charge.CostStep
}

// ChargeSize returns the bullet size of a charge shot
func (s *WeaponSystem) ChargeSize(charge int) float64 {
	cfg := s.config.Weapons.Charge
	growth := float64(charge) / float64(cfg.MaxCharge) * (cfg.MaxSize - cfg.MinSize)
	return cfg.MinSize + float64(int(growth))
}

// ChargeFraction returns the charge level in [0,1] for the HUD
func (s *WeaponSystem) ChargeFraction(p *entity.Player) float64 {
	return float64(p.Charge) / float64(s.config.Weapons.Charge.MaxCharge)
}

// trySpend checks the cooldown and pays cost. Nothing changes on failure.
func (s *WeaponSystem) trySpend(p *entity.Player, cost, cooldown int) bool {
	if p.Cooldown > 0 || !p.SpendAmmo(cost) {
		return false
	}
	p.Cooldown = cooldown
	return true
}

func (s *WeaponSystem) fireNormal(w *entity.World) {
	spec := s.config.Weapons.Normal
	if !s.trySpend(w.Player, spec.Cost, spec.Cooldown) {
		return
	}
	s.spawn(w, spec.Size, 0, false)
}

func (s *WeaponSystem) fireShotgun(w *entity.World) {
	spec := s.config.Weapons.Shotgun
	if !s.trySpend(w.Player, spec.Cost, spec.Cooldown) {
		return
	}
	speed := s.config.Weapons.BulletSpeed
	for _, k := range []float64{-1, 0, 1} {
		s.spawn(w, spec.Size, k*spec.Spread*speed, false)
	}
}

func (s *WeaponSystem) fireCharge(w *entity.World) {
	p := w.Player
	if !s.trySpend(p, s.ChargeCost(p.Charge), s.config.Weapons.Charge.Cooldown) {
		return
	}
	s.spawn(w, s.ChargeSize(p.Charge), 0, true)
}

// spawn adds a bullet centered on the player, flying the way it faces
func (s *WeaponSystem) spawn(w *entity.World, size, vy float64, piercing bool) {
	p := w.Player
	cx := p.X + entity.Size/2
	cy := p.Y + entity.Size/2

	b := entity.NewBullet(cx-size/2, cy-size/2, float64(p.Facing)*s.config.Weapons.BulletSpeed, vy, size, entity.OwnerPlayer)
	b.Piercing = piercing
	w.Bullets = append(w.Bullets, b)
}
