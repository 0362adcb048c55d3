// Package session runs one game: the state machine around the simulation systems.
//
// A Session is advanced once per fixed tick with the input for that tick and is
// fully determined by its seed and the input sequence, which makes it usable
// both behind the ebiten scene and headless for replays and tests.
package session

import (
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/younwookim/cave/internal/application/state"
	"github.com/younwookim/cave/internal/application/system"
	"github.com/younwookim/cave/internal/domain/entity"
	"github.com/younwookim/cave/internal/infrastructure/config"
)

// Summary describes a finished (or running) run
type Summary struct {
	Seed    int64
	Outcome state.GameState
	Cause   system.DeathCause // only meaningful when Outcome is StateGameOver
	Score   int
	Kills   int
	Ticks   int
	Health  int
	Weapon  entity.WeaponType
}

// Option configures a Session
type Option func(*Session)

// WithLogger sets the logger used for state transitions
func WithLogger(logger *log.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// WithRunEnd registers a callback fired once when a run reaches GameOver or GameClear
func WithRunEnd(fn func(Summary)) Option {
	return func(s *Session) {
		s.onRunEnd = fn
	}
}

// Session owns the world and every system acting on it
type Session struct {
	config *config.GameConfig
	seed   int64
	rng    *rand.Rand
	logger *log.Logger

	state     state.GameState
	world     *entity.World
	menu      *entity.WeaponMenu
	generated bool
	ticks     int
	cause     system.DeathCause
	onRunEnd  func(Summary)

	generator *system.LevelGenerator
	physics   *system.PhysicsSystem
	weapons   *system.WeaponSystem
	enemies   *system.EnemySystem
	bullets   *system.BulletSystem
	combat    *system.CombatSystem
	camera    *system.CameraSystem
}

// New creates a session in the menu state. The level is generated on the first confirm.
func New(cfg *config.GameConfig, seed int64, opts ...Option) *Session {
	rng := rand.New(rand.NewSource(seed))
	s := &Session{
		config:    cfg,
		seed:      seed,
		rng:       rng,
		logger:    log.Default(),
		state:     state.StateMenu,
		world:     entity.NewWorld(cfg.World.Width, cfg.Display.ScreenWidth, cfg.Display.ScreenHeight),
		generator: system.NewLevelGenerator(cfg),
		physics:   system.NewPhysicsSystem(cfg),
		weapons:   system.NewWeaponSystem(cfg),
		enemies:   system.NewEnemySystem(cfg, rng),
		bullets:   system.NewBulletSystem(cfg),
		combat:    system.NewCombatSystem(cfg),
		camera:    system.NewCameraSystem(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.resetRun()
	return s
}

// State returns the current game state
func (s *Session) State() state.GameState {
	return s.state
}

// World returns the simulation state. Callers must treat it as read-only.
func (s *Session) World() *entity.World {
	return s.world
}

// Seed returns the seed the session was created with
func (s *Session) Seed() int64 {
	return s.seed
}

// Ticks returns the number of simulated ticks in the current run
func (s *Session) Ticks() int {
	return s.ticks
}

// Menu returns the weapon menu while in WeaponSelect, nil otherwise
func (s *Session) Menu() *entity.WeaponMenu {
	return s.menu
}

// Summary returns the current run's result
func (s *Session) Summary() Summary {
	return Summary{
		Seed:    s.seed,
		Outcome: s.state,
		Cause:   s.cause,
		Score:   s.world.Score,
		Kills:   s.world.Kills,
		Ticks:   s.ticks,
		Health:  s.world.Player.Health,
		Weapon:  s.world.Player.Weapon,
	}
}

// Update advances the session by one tick
func (s *Session) Update(input system.InputState) {
	switch s.state {
	case state.StateMenu:
		if input.IsPressed(system.ControlConfirm) {
			s.start()
		}
	case state.StatePlaying:
		s.tick(input)
	case state.StateWeaponSelect:
		s.updateWeaponSelect(input)
	case state.StateGameOver, state.StateGameClear:
		if input.IsPressed(system.ControlRestart) {
			s.Restart()
		}
	}
}

// Restart regenerates the level, resets every run-scoped value and returns to the menu
func (s *Session) Restart() {
	s.generate()
	s.resetRun()
	s.setState(state.StateMenu)
	s.logger.Debug("run restarted", "seed", s.seed)
}

func (s *Session) start() {
	if !s.generated {
		s.generate()
	}
	s.world.StartProtection = s.config.Rules.StartProtection
	s.setState(state.StatePlaying)
}

func (s *Session) generate() {
	level := s.generator.Generate(s.rng)
	s.world.LoadLevel(level)
	s.generated = true
	s.logger.Debug("level generated",
		"blocks", len(level.Stage), "spikes", len(level.Spikes),
		"coins", len(level.Coins), "enemies", len(level.Enemies))
}

// resetRun puts the player and every run counter back to the start values.
// Level content is left alone.
func (s *Session) resetRun() {
	cfg := s.config
	w := s.world

	w.Player = entity.NewPlayer(cfg.Player.SpawnX, cfg.Player.SpawnY,
		cfg.Player.MaxHealth, cfg.Player.MaxJumps, s.weapons.MaxAmmo())
	w.Bullets = w.Bullets[:0]
	w.Hearts = w.Hearts[:0]
	w.Upgrades = w.Upgrades[:0]
	w.CameraX = 0
	w.Score = 0
	w.Kills = 0
	w.HeartMeter = 0
	w.TimeLeft = cfg.Rules.TimeLimit
	w.SpawnTimer = 0
	w.StartProtection = 0

	s.menu = nil
	s.ticks = 0
	s.cause = system.DeathHealth
}

// tick runs one simulation step in fixed phase order
func (s *Session) tick(input system.InputState) {
	w := s.world
	s.ticks++

	w.TimeLeft--
	if w.TimeLeft <= 0 {
		w.TimeLeft = 0
		s.end(state.StateGameOver, system.DeathTimeout)
		return
	}

	s.physics.Update(w, input)
	s.weapons.Update(w, input)
	s.enemies.Update(w)
	s.bullets.Update(w)
	events := s.combat.Resolve(w)
	s.camera.Update(w)

	s.apply(events)
}

// apply turns collision events into transitions. Game over wins over clear,
// and both win over weapon selection.
func (s *Session) apply(events []system.Event) {
	var (
		died    bool
		cause   system.DeathCause
		cleared bool
		upgrade bool
	)

	for _, ev := range events {
		switch e := ev.(type) {
		case system.PlayerDamaged:
			s.logger.Debug("player damaged", "source", e.Source, "health", e.Health)
		case system.PlayerDied:
			if !died {
				died, cause = true, e.Cause
			}
		case system.GoalReached:
			cleared = true
		case system.UpgradeCollected:
			upgrade = true
		case system.EnemyKilled:
			s.logger.Debug("enemy killed", "kind", e.Kind, "kills", e.Kills)
		}
	}

	switch {
	case died:
		s.end(state.StateGameOver, cause)
	case cleared:
		s.end(state.StateGameClear, s.cause)
	case upgrade && s.config.Features.Upgrades:
		s.menu = entity.NewWeaponMenu(entity.WeaponShotgun, entity.WeaponCharge)
		s.setState(state.StateWeaponSelect)
	}
}

func (s *Session) updateWeaponSelect(input system.InputState) {
	if input.IsPressed(system.ControlLeft) {
		s.menu.Move(-1)
	}
	if input.IsPressed(system.ControlRight) {
		s.menu.Move(1)
	}
	if input.IsPressed(system.ControlConfirm) {
		weapon := s.menu.Selected()
		s.weapons.Select(s.world, weapon)
		s.menu = nil
		s.logger.Debug("weapon selected", "weapon", weapon)
		s.setState(state.StatePlaying)
	}
}

func (s *Session) end(outcome state.GameState, cause system.DeathCause) {
	s.cause = cause
	s.setState(outcome)
	if s.onRunEnd != nil {
		s.onRunEnd(s.Summary())
	}
}

func (s *Session) setState(next state.GameState) {
	if next == s.state {
		return
	}
	s.logger.Debug("state change", "from", s.state, "to", next)
	s.state = next
}
