package config

import (
	"github.com/kelseyhightower/envconfig"
)

// Config holds editor settings read from STAGECRAFT_* environment
// variables. Command line flags in cmd/editor override the paths.
type Config struct {
	WindowWidth      int    `envconfig:"WINDOW_WIDTH" default:"1280"`
	WindowHeight     int    `envconfig:"WINDOW_HEIGHT" default:"800"`
	MaxUndo          int    `envconfig:"MAX_UNDO" default:"100"`
	AssetsDir        string `envconfig:"ASSETS_DIR" default:"assets"`
	PrefabsDir       string `envconfig:"PREFABS_DIR" default:"prefabs"`
	LevelsDir        string `envconfig:"LEVELS_DIR" default:"levels"`
	AutosaveSeconds  int    `envconfig:"AUTOSAVE_SECONDS" default:"0"`
	WatchPrefabs     bool   `envconfig:"WATCH_PREFABS" default:"true"`
	ShowDebugOverlay bool   `envconfig:"DEBUG_OVERLAY" default:"false"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("stagecraft", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
