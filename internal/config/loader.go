package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the runner configuration.
// Search order: customPath -> ~/.dinorun/config.yaml -> ./configs/dinorun.yaml
// -> embedded default. The result is always validated; invalid values are
// clamped back to the defaults.
func Load(customPath string) (Config, error) {
	var cfg Config

	// Try custom path first; an explicit path that fails is an error.
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return validate(cfg), nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return validate(cfg), nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/dinorun.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return validate(cfg), nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return validate(cfg), nil
}

// userConfigPath returns the path to the user config file, or empty if the
// home directory is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".dinorun", "config.yaml")
}

// validate clamps nonsensical values back to their defaults so a partial or
// broken config file never produces an unplayable session.
func validate(cfg Config) Config {
	def := Default()

	if cfg.Field.Width < 20 {
		cfg.Field.Width = def.Field.Width
	}
	if cfg.Field.Height < 10 {
		cfg.Field.Height = def.Field.Height
	}
	if cfg.Player.Width <= 0 {
		cfg.Player.Width = def.Player.Width
	}
	if cfg.Player.Height <= 0 {
		cfg.Player.Height = def.Player.Height
	}
	if cfg.Player.X <= 0 || cfg.Player.X+cfg.Player.Width >= float64(cfg.Field.Width) {
		cfg.Player.X = def.Player.X
	}
	if cfg.Obstacles.Width <= 0 {
		cfg.Obstacles.Width = def.Obstacles.Width
	}
	if cfg.Obstacles.MinHeight <= 0 {
		cfg.Obstacles.MinHeight = def.Obstacles.MinHeight
	}
	if cfg.Obstacles.MaxHeight < cfg.Obstacles.MinHeight {
		cfg.Obstacles.MaxHeight = cfg.Obstacles.MinHeight
	}
	if cfg.Spawn.MinDelayMs <= 0 {
		cfg.Spawn.MinDelayMs = def.Spawn.MinDelayMs
	}
	if cfg.Spawn.MaxDelayMs < cfg.Spawn.MinDelayMs {
		cfg.Spawn.MaxDelayMs = cfg.Spawn.MinDelayMs
	}
	if cfg.Sim.TickMs <= 0 {
		cfg.Sim.TickMs = def.Sim.TickMs
	}
	if cfg.Sim.BaseSpeed <= 0 {
		cfg.Sim.BaseSpeed = def.Sim.BaseSpeed
	}
	if cfg.Sim.ScaleFactor < 0 {
		cfg.Sim.ScaleFactor = def.Sim.ScaleFactor
	}

	if len(cfg.Planets) == 0 {
		cfg.Planets = def.Planets
	} else {
		// A planet entry with non-physical constants falls back to the default
		// table entry if one exists, otherwise it is dropped.
		for name, p := range cfg.Planets {
			if p.Gravity > 0 && p.JumpImpulse > 0 {
				continue
			}
			if dp, ok := def.Planets[name]; ok {
				cfg.Planets[name] = dp
			} else {
				delete(cfg.Planets, name)
			}
		}
		if len(cfg.Planets) == 0 {
			cfg.Planets = def.Planets
		}
	}

	return cfg
}
