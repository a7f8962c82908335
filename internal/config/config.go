// Package config loads client settings from the environment.
package config

import (
	"github.com/kelseyhightower/envconfig"
)

// Config holds the client settings. Every field can be overridden with an
// RTS_ prefixed environment variable, e.g. RTS_SCREEN_WIDTH.
type Config struct {
	ScreenWidth  int    `envconfig:"SCREEN_WIDTH" default:"1280"`
	ScreenHeight int    `envconfig:"SCREEN_HEIGHT" default:"800"`
	PanStep      int    `envconfig:"PAN_STEP" default:"16"`
	Player       int    `envconfig:"PLAYER" default:"1"`
	SightRadius  int    `envconfig:"SIGHT_RADIUS" default:"4"`
	DataDir      string `envconfig:"DATA_DIR" default:"data"`
	MapPath      string `envconfig:"MAP_PATH"` // empty: first map found in DataDir/maps
	DebugLog     string `envconfig:"DEBUG_LOG"`
	DebugLevel   int    `envconfig:"DEBUG_LEVEL" default:"1"`
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("rts", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
