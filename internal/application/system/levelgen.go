package system

import (
	"github.com/younwookim/cave/internal/domain/entity"
	"github.com/younwookim/cave/internal/infrastructure/config"
)

// LevelGenerator builds a random level from config
type LevelGenerator struct {
	config *config.GameConfig
}

// NewLevelGenerator creates a new level generator
func NewLevelGenerator(cfg *config.GameConfig) *LevelGenerator {
	return &LevelGenerator{config: cfg}
}

// Generate builds a level. The only side effect is drawing from rng,
// so the same seed always yields the same level.
func (g *LevelGenerator) Generate(rng Rand) entity.Level {
	width := g.config.World.Width
	level := entity.Level{Width: width}

	ground := g.ground(rng, width)
	level.Spikes = g.spikes(rng, ground)
	platforms := g.platforms(rng, width)

	level.Stage = append(ground, platforms...)
	level.Coins = g.coins(rng, level.Stage)
	level.Enemies = g.enemies(rng, level.Stage)

	goal := g.config.Level.Goal
	level.Goal = entity.NewRect(float64(width)-goal.OffsetFromEnd, goal.Y, goal.Width, goal.Height)

	return level
}

// ground lays segments left to right with jumpable gaps between them.
// No gap is opened near the end so the goal is always reachable.
func (g *LevelGenerator) ground(rng Rand, width int) []entity.StageBlock {
	cfg := g.config.Level.Ground
	var blocks []entity.StageBlock

	for x := 0; x < width; {
		length := randRange(rng, cfg.Segment)
		blocks = append(blocks, entity.StageBlock{
			Rect:     entity.NewRect(float64(x), cfg.Y, float64(length), cfg.Height),
			Material: entity.MaterialGround,
		})
		x += length

		if x < width-cfg.EndMargin {
			x += randRange(rng, cfg.Gap)
		}
	}
	return blocks
}

func (g *LevelGenerator) spikes(rng Rand, ground []entity.StageBlock) []entity.Rect {
	cfg := g.config.Level.Spikes
	var spikes []entity.Rect

	for _, seg := range ground {
		start, end := int(seg.X), int(seg.Right())
		for i := start; i < end; i += cfg.Stride {
			if !chance(rng, cfg.Chance) || i <= cfg.SafeZone {
				continue
			}
			sx := float64(i + rng.Intn(cfg.Jitter+1))
			if sx < seg.Right()-cfg.EdgeMargin {
				spikes = append(spikes, entity.NewRect(sx, seg.Y-cfg.Height, cfg.Width, cfg.Height))
			}
		}
	}
	return spikes
}

// platforms places floating platforms by rejection sampling.
// Attempts that run out of tries are dropped silently.
func (g *LevelGenerator) platforms(rng Rand, width int) []entity.StageBlock {
	cfg := g.config.Level.Platforms
	var placed []entity.StageBlock

	for a := 0; a < cfg.Attempts; a++ {
		for try := 0; try < cfg.Tries; try++ {
			w := randRange(rng, cfg.Width)
			x := randRange(rng, config.IntRange{Min: cfg.SideMargin, Max: width - cfg.SideMargin - w})
			y := choose(rng, cfg.Heights)

			candidate := entity.NewRect(float64(x), y, float64(w), cfg.Thickness)
			if g.tooClose(candidate, placed) {
				continue
			}
			placed = append(placed, entity.StageBlock{Rect: candidate, Material: entity.MaterialPlatform})
			break
		}
	}
	return placed
}

// tooClose reports whether r comes within MinGap of any placed platform horizontally
func (g *LevelGenerator) tooClose(r entity.Rect, placed []entity.StageBlock) bool {
	gap := g.config.Level.Platforms.MinGap
	for _, p := range placed {
		if r.X < p.Right()+gap && r.Right()+gap > p.X {
			return true
		}
	}
	return false
}

func (g *LevelGenerator) coins(rng Rand, stage []entity.StageBlock) []entity.Pickup {
	cfg := g.config.Level.Coins
	var coins []entity.Pickup

	for _, b := range stage {
		start, end := int(b.X), int(b.Right())
		for i := start; i < end; i += cfg.Stride {
			if chance(rng, cfg.Chance) {
				coins = append(coins, entity.NewPickup(entity.PickupCoin, float64(i)+cfg.OffsetX, b.Y+cfg.OffsetY))
			}
		}
	}
	return coins
}

// enemies puts patrols on wide ground segments and shooters on wide platforms
func (g *LevelGenerator) enemies(rng Rand, stage []entity.StageBlock) []entity.Enemy {
	cfg := g.config.Enemies
	var enemies []entity.Enemy
	patrols, shooters := 0, 0

	for _, b := range stage {
		switch b.Material {
		case entity.MaterialGround:
			x := b.X + cfg.Patrol.OffsetX
			if b.W <= cfg.Patrol.MinSegment || x < cfg.SafeZone || patrols >= cfg.Patrol.Max {
				continue
			}
			if !chance(rng, cfg.Patrol.Chance) {
				continue
			}
			speed := cfg.Patrol.Speed
			if rng.Intn(2) == 0 {
				speed = -speed
			}
			enemies = append(enemies, entity.NewPatrolEnemy(x, b.Y-entity.Size, b.X, b.Right()-entity.Size, speed))
			patrols++

		case entity.MaterialPlatform:
			if b.W <= cfg.Shooter.MinPlatform || shooters >= cfg.Shooter.Max {
				continue
			}
			if !chance(rng, cfg.Shooter.Chance) {
				continue
			}
			x := b.X + float64(int(b.W)/2) - entity.Size/2
			enemies = append(enemies, entity.NewShooterEnemy(x, b.Y-entity.Size, randRange(rng, cfg.Shooter.InitialTime)))
			shooters++
		}
	}
	return enemies
}
