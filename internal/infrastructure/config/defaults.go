package config

// Default returns the built-in configuration. Loaded files are decoded on top of it,
// so a file only needs the values it changes.
func Default() *GameConfig {
	return &GameConfig{
		Display: DisplayConfig{
			ScreenWidth:  256,
			ScreenHeight: 160,
			Scale:        4,
			Framerate:    60,
		},
		World: WorldConfig{
			Width:        1024,
			Gravity:      0.5,
			MaxFallSpeed: 3,
		},
		Player: PlayerConfig{
			SpawnX:       20,
			SpawnY:       120,
			MoveSpeed:    2,
			MaxHealth:    3,
			MaxJumps:     2,
			JumpImpulses: []float64{8, 6},
		},
		Level: LevelConfig{
			Ground: GroundConfig{
				Y:         132,
				Height:    28,
				Segment:   IntRange{Min: 80, Max: 200},
				Gap:       IntRange{Min: 32, Max: 56},
				EndMargin: 150,
			},
			Spikes: SpikeConfig{
				Stride:     64,
				Chance:     0.35,
				SafeZone:   80,
				Jitter:     48,
				Width:      16,
				Height:     8,
				EdgeMargin: 16,
			},
			Platforms: PlatformConfig{
				Attempts:   15,
				Tries:      100,
				Width:      IntRange{Min: 40, Max: 80},
				SideMargin: 100,
				Heights:    []float64{92, 108},
				Thickness:  8,
				MinGap:     24,
			},
			Coins: CoinConfig{
				Stride:  16,
				Chance:  0.2,
				OffsetX: 4,
				OffsetY: -12,
			},
			Goal: GoalConfig{
				OffsetFromEnd: 40,
				Y:             116,
				Width:         8,
				Height:        16,
			},
		},
		Enemies: EnemiesConfig{
			Patrol: PatrolConfig{
				MinSegment: 60,
				Chance:     0.5,
				Max:        4,
				OffsetX:    10,
				Speed:      0.8,
			},
			Shooter: ShooterConfig{
				MinPlatform: 40,
				Chance:      0.4,
				Max:         3,
				InitialTime: IntRange{Min: 60, Max: 120},
				ReloadTime:  IntRange{Min: 100, Max: 160},
				Range:       120,
				BulletSpeed: 2,
				BulletSize:  2,
			},
			Spawn: SpawnConfig{
				MaxCount:    20,
				Interval:    IntRange{Min: 90, Max: 150},
				OffsetX:     10,
				Heights:     []float64{124, 100, 84},
				StreamSpeed: FloatRange{Min: 1, Max: 2},
				ChaseSpeed:  FloatRange{Min: 0.4, Max: 0.8},
			},
			SafeZone:      120,
			DespawnMargin: 20,
			BulletMargin:  16,
		},
		Weapons: WeaponsConfig{
			BulletSpeed:    4,
			RefillDistance: 120,
			// plain shots are 2x2, the same as an uncharged charge shot
			Normal:         WeaponSpec{MaxAmmo: 20, Cost: 1, Cooldown: 20, Size: 2},
			Shotgun:        WeaponSpec{MaxAmmo: 12, Cost: 1, Cooldown: 60, Size: 2, Spread: 0.5},
			Charge: ChargeSpec{
				MaxAmmo:   30,
				MaxCharge: 90,
				CostStep:  10,
				Cooldown:  20,
				MinSize:   2,
				MaxSize:   24,
			},
		},
		Rules: RulesConfig{
			TimeLimit:       180 * 60,
			CoinScore:       10,
			KillScore:       50,
			HeartEvery:      10,
			UpgradeEvery:    10,
			HealAmount:      1,
			Iframes:         120,
			StartProtection: 180,
		},
		Features: FeaturesConfig{
			Weapons:  true,
			Hearts:   true,
			Upgrades: true,
		},
	}
}

// Simple returns the default configuration with the weapon, heart and upgrade
// features switched off.
func Simple() *GameConfig {
	cfg := Default()
	cfg.Features = FeaturesConfig{}
	return cfg
}
