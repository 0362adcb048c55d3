package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/cave/internal/application/replay"
	"github.com/younwookim/cave/internal/application/scene/playing"
	"github.com/younwookim/cave/internal/application/session"
	"github.com/younwookim/cave/internal/application/state"
	"github.com/younwookim/cave/internal/application/system"
	"github.com/younwookim/cave/internal/infrastructure/config"
	"github.com/younwookim/cave/internal/infrastructure/storage"
)

// execute runs the root command with args and returns its stdout
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

// writeRecording records one short run and returns the replay and config paths
func writeRecording(t *testing.T, dir string) (string, string) {
	t.Helper()

	cfgPath := filepath.Join(dir, "short.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("rules:\n  timeLimit: 45\n"), 0o644))
	cfg, err := config.LoadFile(cfgPath)
	require.NoError(t, err)

	rec := replay.NewRecorder(11, cfgPath)
	s := session.New(cfg, 11,
		session.WithLogger(log.New(io.Discard)),
		session.WithRunEnd(rec.Finish))

	for i := 0; rec.IsRecording(); i++ {
		require.Less(t, i, 1000)
		var in system.InputState
		if i == 0 {
			in.Pressed[system.ControlConfirm] = true
		}
		rec.RecordFrame(in)
		s.Update(in)
	}

	path := filepath.Join(dir, "run.json")
	require.NoError(t, rec.Save(path))
	return path, cfgPath
}

func TestLoadConfig(t *testing.T) {
	cfg, name, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, config.DefaultFile, name)
	assert.Equal(t, config.Default(), cfg)

	cfg, name, err = loadConfig("simple.json")
	require.NoError(t, err)
	assert.Equal(t, "simple.json", name)
	assert.Equal(t, config.Simple(), cfg)

	_, _, err = loadConfig("missing.yaml")
	assert.Error(t, err)
}

func TestLoadConfig_FromDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("world:\n  width: 2048\n"), 0o644))

	cfg, name, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, path, name)
	assert.Equal(t, 2048, cfg.World.Width)
	assert.Equal(t, config.Default().Rules, cfg.Rules, "unset sections keep defaults")
}

func TestResolveSeed(t *testing.T) {
	assert.Equal(t, int64(42), resolveSeed(42))
	assert.NotZero(t, resolveSeed(0))
}

func TestReplayCommand_Verify(t *testing.T) {
	dir := t.TempDir()
	path, cfgPath := writeRecording(t, dir)

	out, err := execute(t, "replay", path, "--verify",
		"--config", cfgPath, "--db", filepath.Join(dir, "scores.db"))
	require.NoError(t, err)

	assert.Contains(t, out, "outcome: GameOver (timeout)")
	assert.Contains(t, out, "ticks:   45")
	assert.Contains(t, out, "verified")
}

func TestReplayCommand_UsesRecordedConfig(t *testing.T) {
	dir := t.TempDir()
	path, _ := writeRecording(t, dir)

	out, err := execute(t, "replay", path, "--verify=false",
		"--config", "", "--db", filepath.Join(dir, "scores.db"))
	require.NoError(t, err)
	assert.Contains(t, out, "ticks:   45")
}

func TestReplayCommand_MissingFile(t *testing.T) {
	dir := t.TempDir()
	_, err := execute(t, "replay", filepath.Join(dir, "nope.json"),
		"--verify=false", "--config", "", "--db", filepath.Join(dir, "scores.db"))
	assert.Error(t, err)
}

func TestScoresCommand(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "scores.db")

	out, err := execute(t, "scores", "--db", dbPath, "--limit", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "No runs recorded yet.")
	assert.NotContains(t, out, "Best:")

	store, err := storage.Open(dbPath)
	require.NoError(t, err)
	_, err = store.SaveRun(storage.Run{RunID: "x", Seed: 9, Score: 430, Outcome: "GameClear", Ticks: 3725})
	require.NoError(t, err)
	_, err = store.SaveRun(storage.Run{RunID: "y", Seed: 4, Score: 120, Outcome: "GameOver", Cause: "fall", Ticks: 900})
	require.NoError(t, err)
	require.NoError(t, store.Close())

	out, err = execute(t, "scores", "--db", dbPath, "--limit", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "430")
	assert.Contains(t, out, "GameClear")
	assert.Contains(t, out, "1:02")
	assert.Contains(t, out, "Best: 430")
}

func TestNewRunRecord(t *testing.T) {
	over := newRunRecord(playing.RunResult{
		Summary: session.Summary{Seed: 3, Outcome: state.StateGameOver, Cause: system.DeathFall, Score: 20, Ticks: 100},
		RunID:   "id-1",
	})
	assert.Equal(t, storage.Run{RunID: "id-1", Seed: 3, Score: 20, Outcome: "GameOver", Cause: "fall", Ticks: 100}, over)

	cleared := newRunRecord(playing.RunResult{
		Summary: session.Summary{Outcome: state.StateGameClear, Score: 500},
		RunID:   "id-2",
	})
	assert.Empty(t, cleared.Cause)
	assert.Equal(t, "GameClear", cleared.Outcome)
}

func TestFormatTicks(t *testing.T) {
	assert.Equal(t, "0:00", formatTicks(59))
	assert.Equal(t, "1:02", formatTicks(3725))
	assert.Equal(t, "3:00", formatTicks(10800))
}
