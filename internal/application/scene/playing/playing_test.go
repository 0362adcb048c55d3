package playing

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/cave/internal/application/replay"
	"github.com/younwookim/cave/internal/application/scene"
	"github.com/younwookim/cave/internal/application/session"
	"github.com/younwookim/cave/internal/application/state"
	"github.com/younwookim/cave/internal/application/system"
	"github.com/younwookim/cave/internal/infrastructure/config"
)

// fakeKeys is a scripted keyboard. Keys in down are held; keys in tapped
// are reported as just pressed for the next poll only.
type fakeKeys struct {
	down   map[ebiten.Key]bool
	tapped map[ebiten.Key]bool
	lifted map[ebiten.Key]bool
}

func newFakeKeys() *fakeKeys {
	return &fakeKeys{
		down:   map[ebiten.Key]bool{},
		tapped: map[ebiten.Key]bool{},
		lifted: map[ebiten.Key]bool{},
	}
}

func (k *fakeKeys) IsPressed(key ebiten.Key) bool    { return k.down[key] || k.tapped[key] }
func (k *fakeKeys) JustPressed(key ebiten.Key) bool  { return k.tapped[key] }
func (k *fakeKeys) JustReleased(key ebiten.Key) bool { return k.lifted[key] }

func (k *fakeKeys) tap(keys ...ebiten.Key) {
	for _, key := range keys {
		k.tapped[key] = true
	}
}

func (k *fakeKeys) clear() {
	k.tapped = map[ebiten.Key]bool{}
	k.lifted = map[ebiten.Key]bool{}
}

func quiet() Option {
	return WithLogger(log.New(io.Discard))
}

func TestKeyMap_Poll(t *testing.T) {
	keys := newFakeKeys()
	keys.tap(ebiten.KeySpace)
	keys.down[ebiten.KeyArrowRight] = true
	keys.lifted[ebiten.KeyZ] = true

	in := DefaultKeyMap().Poll(keys)

	assert.True(t, in.IsPressed(system.ControlJump))
	assert.True(t, in.IsPressed(system.ControlConfirm), "space also confirms")
	assert.True(t, in.IsHeld(system.ControlRight))
	assert.False(t, in.IsPressed(system.ControlRight))
	assert.True(t, in.IsReleased(system.ControlFire))
	assert.False(t, in.IsHeld(system.ControlLeft))
}

func TestKeyMap_AlternateBindings(t *testing.T) {
	keys := newFakeKeys()
	keys.down[ebiten.KeyA] = true
	keys.tap(ebiten.KeyEnter)

	in := DefaultKeyMap().Poll(keys)

	assert.True(t, in.IsHeld(system.ControlLeft))
	assert.True(t, in.IsPressed(system.ControlConfirm))
	assert.False(t, in.IsPressed(system.ControlJump))
}

func TestPlaying_StartsOnConfirm(t *testing.T) {
	keys := newFakeKeys()
	p := New(config.Default(), 1, quiet(), withKeySource(keys))

	_, err := p.Update(0)
	require.NoError(t, err)
	assert.Equal(t, state.StateMenu, p.Session().State())

	keys.tap(ebiten.KeyEnter)
	next, err := p.Update(1)
	require.NoError(t, err)
	assert.Nil(t, next)
	assert.Equal(t, state.StatePlaying, p.Session().State())
}

func TestPlaying_EscapeQuits(t *testing.T) {
	keys := newFakeKeys()
	p := New(config.Default(), 1, quiet(), withKeySource(keys))

	keys.tap(ebiten.KeyEscape)
	_, err := p.Update(0)
	assert.ErrorIs(t, err, scene.ErrQuit)
}

func TestPlaying_RecordsAndReportsRun(t *testing.T) {
	cfg := config.Default()
	cfg.Rules.TimeLimit = 30
	path := filepath.Join(t.TempDir(), "run.json")

	var results []RunResult
	keys := newFakeKeys()
	p := New(cfg, 77, quiet(), withKeySource(keys),
		WithRecording(path, "game.yaml"),
		WithRunEnd(func(r RunResult) { results = append(results, r) }))

	keys.tap(ebiten.KeySpace)
	for frame := 0; frame < 40; frame++ {
		_, err := p.Update(frame)
		require.NoError(t, err)
		keys.clear()
	}

	require.Len(t, results, 1)
	assert.Equal(t, state.StateGameOver, results[0].Outcome)
	assert.Equal(t, system.DeathTimeout, results[0].Cause)

	data, err := replay.LoadReplay(path)
	require.NoError(t, err)
	assert.Equal(t, results[0].RunID, data.RunID)
	assert.Equal(t, int64(77), data.Seed)
	assert.Equal(t, "game.yaml", data.Config)
	require.NotNil(t, data.Outcome)
	assert.Equal(t, 30, data.Outcome.Ticks)
	assert.Len(t, data.Frames, 31, "menu frame plus every simulated tick")

	_, err = replay.Verify(cfg, *data, session.WithLogger(log.New(io.Discard)))
	assert.NoError(t, err)
}

func TestPlaying_NewRunIDAfterRestart(t *testing.T) {
	cfg := config.Default()
	cfg.Rules.TimeLimit = 2

	var results []RunResult
	keys := newFakeKeys()
	p := New(cfg, 3, quiet(), withKeySource(keys),
		WithRunEnd(func(r RunResult) { results = append(results, r) }))

	play := func(frame int) int {
		keys.tap(ebiten.KeySpace)
		for i := 0; i < 3; i++ {
			_, err := p.Update(frame)
			require.NoError(t, err)
			keys.clear()
			frame++
		}
		return frame
	}

	frame := play(0)
	keys.tap(ebiten.KeyR)
	_, err := p.Update(frame)
	require.NoError(t, err)
	keys.clear()
	require.Equal(t, state.StateMenu, p.Session().State())
	play(frame + 1)

	require.Len(t, results, 2)
	assert.NotEqual(t, results[0].RunID, results[1].RunID)
}

func TestPlaying_OnExitSavesUnfinishedRecording(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.json")
	keys := newFakeKeys()
	p := New(config.Default(), 5, quiet(), withKeySource(keys), WithRecording(path, ""))

	for frame := 0; frame < 5; frame++ {
		_, err := p.Update(frame)
		require.NoError(t, err)
	}
	p.OnExit()

	_, err := os.Stat(path)
	require.NoError(t, err)

	data, err := replay.LoadReplay(path)
	require.NoError(t, err)
	assert.Nil(t, data.Outcome)
	assert.Len(t, data.Frames, 5)
}
