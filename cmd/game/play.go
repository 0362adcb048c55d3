package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/younwookim/cave/internal/application/game"
	"github.com/younwookim/cave/internal/application/scene/playing"
	"github.com/younwookim/cave/internal/application/state"
	"github.com/younwookim/cave/internal/infrastructure/storage"
)

var flagRecord string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Open the game window and play.

Controls:
  Left/Right, A/D  - Move
  Space, Up        - Jump (double jump in the air)
  Z, X             - Fire (hold and release with the charge weapon)
  Space, Enter     - Start / confirm weapon choice
  R                - Restart after game over or clear
  Esc              - Quit

Examples:
  cave play
  cave play --seed 42
  cave play --record run.json`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagRecord, "record", "", "Record input of the first run to file (e.g. --record run.json)")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	logger := newLogger(os.Stderr, flagVerbose)

	cfg, cfgName, err := loadConfig(flagConfig)
	if err != nil {
		return err
	}
	seed := resolveSeed(flagSeed)

	// Scores are optional; the game runs without a database
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("scores disabled", "err", err)
	} else {
		defer func() { _ = store.Close() }()
	}

	opts := []playing.Option{
		playing.WithLogger(logger),
		playing.WithRunEnd(saveRunFunc(store, logger)),
	}
	if flagRecord != "" {
		opts = append(opts, playing.WithRecording(flagRecord, cfgName))
	}

	logger.Info("starting", "seed", seed, "config", cfgName)
	g := game.New(playing.New(cfg, seed, opts...), cfg.Display.ScreenWidth, cfg.Display.ScreenHeight)

	ebiten.SetWindowSize(cfg.Display.ScreenWidth*cfg.Display.Scale, cfg.Display.ScreenHeight*cfg.Display.Scale)
	ebiten.SetWindowTitle("Cave Explorer")
	ebiten.SetTPS(cfg.Display.Framerate)

	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("game loop: %w", err)
	}
	return nil
}

// saveRunFunc returns the run-end hook that persists finished runs
func saveRunFunc(store *storage.Store, logger *log.Logger) func(playing.RunResult) {
	return func(r playing.RunResult) {
		if store == nil {
			return
		}
		id, err := store.SaveRun(newRunRecord(r))
		if err != nil {
			logger.Error("failed to save score", "err", err)
			return
		}
		logger.Info("score saved", "id", id, "score", r.Score)
	}
}

func newRunRecord(r playing.RunResult) storage.Run {
	run := storage.Run{
		RunID:   r.RunID,
		Seed:    r.Seed,
		Score:   r.Score,
		Kills:   r.Kills,
		Outcome: r.Outcome.String(),
		Ticks:   r.Ticks,
	}
	if r.Outcome == state.StateGameOver {
		run.Cause = r.Cause.String()
	}
	return run
}
