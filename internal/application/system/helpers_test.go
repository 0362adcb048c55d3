package system

import (
	"math/rand"

	"github.com/younwookim/cave/internal/domain/entity"
	"github.com/younwookim/cave/internal/infrastructure/config"
)

// testRNG returns a seeded RNG for deterministic tests
func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(12345))
}

// scriptedRand replays fixed draws. Exhausted scripts return 0.
type scriptedRand struct {
	ints   []int
	floats []float64
}

func (r *scriptedRand) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	if v >= n {
		v = n - 1
	}
	return v
}

func (r *scriptedRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

func createTestConfig() *config.GameConfig {
	return config.Default()
}

// createTestWorld returns a world with one flat ground block and the player standing on it
func createTestWorld(cfg *config.GameConfig) *entity.World {
	w := entity.NewWorld(cfg.World.Width, cfg.Display.ScreenWidth, cfg.Display.ScreenHeight)
	w.Stage = []entity.StageBlock{
		{Rect: entity.NewRect(0, 132, float64(cfg.World.Width), 28), Material: entity.MaterialGround},
	}
	w.Goal = entity.NewRect(float64(cfg.World.Width)-40, 116, 8, 16)

	maxAmmo := NewWeaponSystem(cfg).MaxAmmo()
	w.Player = entity.NewPlayer(cfg.Player.SpawnX, 124, cfg.Player.MaxHealth, cfg.Player.MaxJumps, maxAmmo)
	w.TimeLeft = cfg.Rules.TimeLimit
	w.SpawnTimer = 1000
	return w
}

func held(controls ...Control) InputState {
	var in InputState
	for _, c := range controls {
		in.Held[c] = true
	}
	return in
}

func pressed(controls ...Control) InputState {
	var in InputState
	for _, c := range controls {
		in.Held[c] = true
		in.Pressed[c] = true
	}
	return in
}

func released(controls ...Control) InputState {
	var in InputState
	for _, c := range controls {
		in.Released[c] = true
	}
	return in
}
