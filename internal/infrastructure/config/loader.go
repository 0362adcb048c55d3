package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultFile is the config file name looked up when none is given
const DefaultFile = "game.yaml"

// Loader loads game configuration from YAML or JSON files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// Load reads name, decodes it over Default() and validates the result.
// The decoder is picked by extension: .yaml/.yml or .json.
func (l *Loader) Load(name string) (*GameConfig, error) {
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", name, err)
	}

	cfg, err := Parse(name, data)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadDefault loads DefaultFile
func (l *Loader) LoadDefault() (*GameConfig, error) {
	return l.Load(DefaultFile)
}

// LoadFile loads a config file from an arbitrary path on disk
func LoadFile(filename string) (*GameConfig, error) {
	return NewLoader(filepath.Dir(filename)).Load(filepath.Base(filename))
}

// Parse decodes data over Default() and validates the result.
// name is only used to select the decoder and for error messages.
func Parse(name string, data []byte) (*GameConfig, error) {
	cfg := Default()

	switch ext := path.Ext(name); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", name, err)
		}
	case ".json":
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", name, err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format %q for %s", ext, name)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", name, err)
	}
	return cfg, nil
}
