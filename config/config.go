package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/milk9111/shapeshift/common"
)

// Game is the environment configuration. Command-line flags override it.
type Game struct {
	TPS         int    `env:"SHAPESHIFT_TPS"          envDefault:"60"`
	Width       int    `env:"SHAPESHIFT_WIDTH"        envDefault:"1280"`
	Height      int    `env:"SHAPESHIFT_HEIGHT"       envDefault:"720"`
	PrefabDir   string `env:"SHAPESHIFT_PREFAB_DIR"   envDefault:"prefabs"`
	Level       string `env:"SHAPESHIFT_LEVEL"`
	Save        bool   `env:"SHAPESHIFT_SAVE"         envDefault:"true"`
	RestoreForm bool   `env:"SHAPESHIFT_RESTORE_FORM"`
	Debug       bool   `env:"SHAPESHIFT_DEBUG"`
	Watch       bool   `env:"SHAPESHIFT_WATCH"`
}

// Load parses the environment and fills in anything left unusable.
func Load() (Game, error) {
	var cfg Game
	if err := env.Parse(&cfg); err != nil {
		return Game{}, fmt.Errorf("config: parse env: %w", err)
	}
	cfg.normalize()
	return cfg, nil
}

func (c *Game) normalize() {
	if c.TPS <= 0 {
		c.TPS = common.TPS
	}
	if c.Width <= 0 {
		c.Width = common.BaseWidth
	}
	if c.Height <= 0 {
		c.Height = common.BaseHeight
	}
}
