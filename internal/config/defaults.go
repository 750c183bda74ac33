package config

import (
	_ "embed"
)

//go:embed defaults/dinorun.yaml
var defaultYAML []byte

// Default returns the built-in configuration, mirroring defaults/dinorun.yaml.
func Default() Config {
	return Config{
		Field: FieldConfig{
			Width:  80,
			Height: 20,
		},
		Player: PlayerConfig{
			X:      8,
			Width:  3,
			Height: 3,
		},
		Obstacles: ObstacleConfig{
			Width:     2,
			MinHeight: 2,
			MaxHeight: 4,
		},
		Spawn: SpawnConfig{
			MinDelayMs: 900,
			MaxDelayMs: 2200,
		},
		Sim: SimConfig{
			TickMs:      50,
			BaseSpeed:   1.0,
			ScaleFactor: 0.35,
		},
		Planets: map[string]PlanetConfig{
			"earth":   {Gravity: 0.18, JumpImpulse: 1.4},
			"moon":    {Gravity: 0.055, JumpImpulse: 0.85},
			"mars":    {Gravity: 0.12, JumpImpulse: 1.15},
			"jupiter": {Gravity: 0.42, JumpImpulse: 2.1},
		},
	}
}

// DefaultYAML returns the embedded default YAML document.
func DefaultYAML() []byte {
	return defaultYAML
}
