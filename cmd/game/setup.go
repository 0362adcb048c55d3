package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/younwookim/cave/internal/infrastructure/config"
)

// loadConfig resolves --config. Paths on disk win over bundled names;
// an empty value loads the bundled default.
func loadConfig(name string) (*config.GameConfig, string, error) {
	if name != "" {
		if _, err := os.Stat(name); err == nil {
			cfg, err := config.LoadFile(name)
			return cfg, name, err
		} else if !errors.Is(err, fs.ErrNotExist) {
			return nil, "", fmt.Errorf("failed to stat config %s: %w", name, err)
		}
	}

	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, "", fmt.Errorf("failed to get config subfs: %w", err)
	}
	loader := config.NewFSLoader(fsys, "configs")

	if name == "" {
		cfg, err := loader.LoadDefault()
		return cfg, config.DefaultFile, err
	}
	cfg, err := loader.Load(name)
	return cfg, name, err
}

// resolveSeed returns seed, or a time-based one when seed is 0
func resolveSeed(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	return time.Now().UnixNano()
}

func newLogger(w io.Writer, verbose bool) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Prefix:          "cave",
	})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}
