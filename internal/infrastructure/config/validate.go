package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("invalid config")

// Validate checks the bounds the simulation relies on.
// All violations are reported together.
func (c *GameConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
		}
	}
	checkRange := func(name string, r IntRange, min int) {
		check(r.Min >= min && r.Min <= r.Max, "%s range [%d,%d]", name, r.Min, r.Max)
	}

	check(c.Display.ScreenWidth > 0 && c.Display.ScreenHeight > 0, "display size %dx%d",
		c.Display.ScreenWidth, c.Display.ScreenHeight)
	check(c.Display.Framerate > 0, "framerate %d", c.Display.Framerate)
	check(c.World.Width >= c.Display.ScreenWidth, "world width %d narrower than screen %d",
		c.World.Width, c.Display.ScreenWidth)
	check(c.World.Gravity > 0, "gravity %v", c.World.Gravity)
	check(c.World.MaxFallSpeed > 0, "max fall speed %v", c.World.MaxFallSpeed)

	check(c.Player.MaxHealth > 0, "player max health %d", c.Player.MaxHealth)
	check(c.Player.MaxJumps > 0, "player max jumps %d", c.Player.MaxJumps)
	check(len(c.Player.JumpImpulses) > 0, "player needs at least one jump impulse")

	checkRange("ground segment", c.Level.Ground.Segment, 1)
	checkRange("ground gap", c.Level.Ground.Gap, 0)
	check(c.Level.Spikes.Stride > 0, "spike stride %d", c.Level.Spikes.Stride)
	check(c.Level.Spikes.Jitter >= 0, "spike jitter %d", c.Level.Spikes.Jitter)
	checkRange("platform width", c.Level.Platforms.Width, 1)
	check(len(c.Level.Platforms.Heights) > 0, "platform heights empty")
	check(c.Level.Platforms.MinGap >= 0, "platform gap %v", c.Level.Platforms.MinGap)
	check(c.Level.Coins.Stride > 0, "coin stride %d", c.Level.Coins.Stride)

	checkRange("shooter initial time", c.Enemies.Shooter.InitialTime, 0)
	checkRange("shooter reload time", c.Enemies.Shooter.ReloadTime, 0)
	checkRange("spawn interval", c.Enemies.Spawn.Interval, 0)
	check(len(c.Enemies.Spawn.Heights) > 0, "spawn heights empty")
	check(c.Enemies.Spawn.MaxCount >= 0, "spawn max count %d", c.Enemies.Spawn.MaxCount)
	check(c.Enemies.Spawn.StreamSpeed.Min <= c.Enemies.Spawn.StreamSpeed.Max, "stream speed range")
	check(c.Enemies.Spawn.ChaseSpeed.Min <= c.Enemies.Spawn.ChaseSpeed.Max, "chase speed range")

	check(c.Weapons.BulletSpeed > 0, "bullet speed %v", c.Weapons.BulletSpeed)
	check(c.Weapons.RefillDistance > 0, "refill distance %v", c.Weapons.RefillDistance)
	checkWeapon := func(name string, w WeaponSpec) {
		check(w.MaxAmmo >= 0 && w.Cost >= 0 && w.Cooldown >= 0, "%s weapon spec %+v", name, w)
	}
	checkWeapon("normal", c.Weapons.Normal)
	checkWeapon("shotgun", c.Weapons.Shotgun)
	ch := c.Weapons.Charge
	check(ch.MaxCharge > 0 && ch.CostStep > 0, "charge max %d step %d", ch.MaxCharge, ch.CostStep)
	check(ch.MinSize > 0 && ch.MinSize <= ch.MaxSize, "charge size [%v,%v]", ch.MinSize, ch.MaxSize)

	check(c.Rules.TimeLimit > 0, "time limit %d", c.Rules.TimeLimit)
	check(c.Rules.HeartEvery > 0, "heart every %d", c.Rules.HeartEvery)
	check(c.Rules.UpgradeEvery > 0, "upgrade every %d", c.Rules.UpgradeEvery)
	check(c.Rules.Iframes >= 0, "iframes %d", c.Rules.Iframes)
	check(c.Rules.StartProtection >= 0, "start protection %d", c.Rules.StartProtection)

	return errors.Join(errs...)
}
