package config

// GameConfig is the root config for game.yaml / game.json
type GameConfig struct {
	Display  DisplayConfig  `json:"display" yaml:"display"`
	World    WorldConfig    `json:"world" yaml:"world"`
	Player   PlayerConfig   `json:"player" yaml:"player"`
	Level    LevelConfig    `json:"level" yaml:"level"`
	Enemies  EnemiesConfig  `json:"enemies" yaml:"enemies"`
	Weapons  WeaponsConfig  `json:"weapons" yaml:"weapons"`
	Rules    RulesConfig    `json:"rules" yaml:"rules"`
	Features FeaturesConfig `json:"features" yaml:"features"`
}

// IntRange is an inclusive integer range
type IntRange struct {
	Min int `json:"min" yaml:"min"`
	Max int `json:"max" yaml:"max"`
}

// FloatRange is an inclusive float range
type FloatRange struct {
	Min float64 `json:"min" yaml:"min"`
	Max float64 `json:"max" yaml:"max"`
}

type DisplayConfig struct {
	ScreenWidth  int `json:"screenWidth" yaml:"screenWidth"`
	ScreenHeight int `json:"screenHeight" yaml:"screenHeight"`
	Scale        int `json:"scale" yaml:"scale"`
	Framerate    int `json:"framerate" yaml:"framerate"`
}

type WorldConfig struct {
	Width        int     `json:"width" yaml:"width"`
	Gravity      float64 `json:"gravity" yaml:"gravity"`
	MaxFallSpeed float64 `json:"maxFallSpeed" yaml:"maxFallSpeed"`
}

type PlayerConfig struct {
	SpawnX    float64 `json:"spawnX" yaml:"spawnX"`
	SpawnY    float64 `json:"spawnY" yaml:"spawnY"`
	MoveSpeed float64 `json:"moveSpeed" yaml:"moveSpeed"`
	MaxHealth int     `json:"maxHealth" yaml:"maxHealth"`
	MaxJumps  int     `json:"maxJumps" yaml:"maxJumps"`
	// JumpImpulses[i] is the upward speed of the (i+1)-th jump since landing
	JumpImpulses []float64 `json:"jumpImpulses" yaml:"jumpImpulses"`
}

type LevelConfig struct {
	Ground    GroundConfig   `json:"ground" yaml:"ground"`
	Spikes    SpikeConfig    `json:"spikes" yaml:"spikes"`
	Platforms PlatformConfig `json:"platforms" yaml:"platforms"`
	Coins     CoinConfig     `json:"coins" yaml:"coins"`
	Goal      GoalConfig     `json:"goal" yaml:"goal"`
}

type GroundConfig struct {
	Y         float64  `json:"y" yaml:"y"`
	Height    float64  `json:"height" yaml:"height"`
	Segment   IntRange `json:"segment" yaml:"segment"`
	Gap       IntRange `json:"gap" yaml:"gap"`
	EndMargin int      `json:"endMargin" yaml:"endMargin"` // no gap once x >= width - endMargin
}

type SpikeConfig struct {
	Stride     int     `json:"stride" yaml:"stride"`
	Chance     float64 `json:"chance" yaml:"chance"`
	SafeZone   int     `json:"safeZone" yaml:"safeZone"`
	Jitter     int     `json:"jitter" yaml:"jitter"`
	Width      float64 `json:"width" yaml:"width"`
	Height     float64 `json:"height" yaml:"height"`
	EdgeMargin float64 `json:"edgeMargin" yaml:"edgeMargin"`
}

type PlatformConfig struct {
	Attempts   int       `json:"attempts" yaml:"attempts"`
	Tries      int       `json:"tries" yaml:"tries"`
	Width      IntRange  `json:"width" yaml:"width"`
	SideMargin int       `json:"sideMargin" yaml:"sideMargin"`
	Heights    []float64 `json:"heights" yaml:"heights"`
	Thickness  float64   `json:"thickness" yaml:"thickness"`
	MinGap     float64   `json:"minGap" yaml:"minGap"`
}

type CoinConfig struct {
	Stride  int     `json:"stride" yaml:"stride"`
	Chance  float64 `json:"chance" yaml:"chance"`
	OffsetX float64 `json:"offsetX" yaml:"offsetX"`
	OffsetY float64 `json:"offsetY" yaml:"offsetY"`
}

type GoalConfig struct {
	OffsetFromEnd float64 `json:"offsetFromEnd" yaml:"offsetFromEnd"`
	Y             float64 `json:"y" yaml:"y"`
	Width         float64 `json:"width" yaml:"width"`
	Height        float64 `json:"height" yaml:"height"`
}

type EnemiesConfig struct {
	Patrol        PatrolConfig  `json:"patrol" yaml:"patrol"`
	Shooter       ShooterConfig `json:"shooter" yaml:"shooter"`
	Spawn         SpawnConfig   `json:"spawn" yaml:"spawn"`
	SafeZone      float64       `json:"safeZone" yaml:"safeZone"`
	DespawnMargin float64       `json:"despawnMargin" yaml:"despawnMargin"`
	BulletMargin  float64       `json:"bulletMargin" yaml:"bulletMargin"`
}

type PatrolConfig struct {
	MinSegment float64 `json:"minSegment" yaml:"minSegment"`
	Chance     float64 `json:"chance" yaml:"chance"`
	Max        int     `json:"max" yaml:"max"`
	OffsetX    float64 `json:"offsetX" yaml:"offsetX"`
	Speed      float64 `json:"speed" yaml:"speed"`
}

type ShooterConfig struct {
	MinPlatform float64  `json:"minPlatform" yaml:"minPlatform"`
	Chance      float64  `json:"chance" yaml:"chance"`
	Max         int      `json:"max" yaml:"max"`
	InitialTime IntRange `json:"initialTime" yaml:"initialTime"`
	ReloadTime  IntRange `json:"reloadTime" yaml:"reloadTime"`
	Range       float64  `json:"range" yaml:"range"`
	BulletSpeed float64  `json:"bulletSpeed" yaml:"bulletSpeed"`
	BulletSize  float64  `json:"bulletSize" yaml:"bulletSize"`
}

type SpawnConfig struct {
	MaxCount    int        `json:"maxCount" yaml:"maxCount"`
	Interval    IntRange   `json:"interval" yaml:"interval"`
	OffsetX     float64    `json:"offsetX" yaml:"offsetX"`
	Heights     []float64  `json:"heights" yaml:"heights"`
	StreamSpeed FloatRange `json:"streamSpeed" yaml:"streamSpeed"`
	ChaseSpeed  FloatRange `json:"chaseSpeed" yaml:"chaseSpeed"`
}

type WeaponsConfig struct {
	BulletSpeed    float64    `json:"bulletSpeed" yaml:"bulletSpeed"`
	RefillDistance float64    `json:"refillDistance" yaml:"refillDistance"`
	Normal         WeaponSpec `json:"normal" yaml:"normal"`
	Shotgun        WeaponSpec `json:"shotgun" yaml:"shotgun"`
	Charge         ChargeSpec `json:"charge" yaml:"charge"`
}

// WeaponSpec describes a press-to-fire weapon
type WeaponSpec struct {
	MaxAmmo  int     `json:"maxAmmo" yaml:"maxAmmo"`
	Cost     int     `json:"cost" yaml:"cost"`
	Cooldown int     `json:"cooldown" yaml:"cooldown"`
	Size     float64 `json:"size" yaml:"size"`
	Spread   float64 `json:"spread" yaml:"spread"` // vy offset of the outer pellets, as a fraction of bullet speed
}

// ChargeSpec describes the hold-and-release weapon
type ChargeSpec struct {
	MaxAmmo   int     `json:"maxAmmo" yaml:"maxAmmo"`
	MaxCharge int     `json:"maxCharge" yaml:"maxCharge"`
	CostStep  int     `json:"costStep" yaml:"costStep"` // one extra ammo per CostStep ticks of charge
	Cooldown  int     `json:"cooldown" yaml:"cooldown"`
	MinSize   float64 `json:"minSize" yaml:"minSize"`
	MaxSize   float64 `json:"maxSize" yaml:"maxSize"`
}

type RulesConfig struct {
	TimeLimit       int `json:"timeLimit" yaml:"timeLimit"`
	CoinScore       int `json:"coinScore" yaml:"coinScore"`
	KillScore       int `json:"killScore" yaml:"killScore"`
	HeartEvery      int `json:"heartEvery" yaml:"heartEvery"`
	UpgradeEvery    int `json:"upgradeEvery" yaml:"upgradeEvery"`
	HealAmount      int `json:"healAmount" yaml:"healAmount"`
	Iframes         int `json:"iframes" yaml:"iframes"`
	StartProtection int `json:"startProtection" yaml:"startProtection"`
}

// FeaturesConfig switches between the simple and the weapon variant
type FeaturesConfig struct {
	Weapons  bool `json:"weapons" yaml:"weapons"`
	Hearts   bool `json:"hearts" yaml:"hearts"`
	Upgrades bool `json:"upgrades" yaml:"upgrades"`
}
