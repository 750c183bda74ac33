// Package config provides YAML-based configuration loading for the runner:
// field geometry, simulation timing, spawn delays, and the per-planet
// physics table.
package config

// Config contains all tunable constants for a game session.
type Config struct {
	Field     FieldConfig             `yaml:"field"`
	Player    PlayerConfig            `yaml:"player"`
	Obstacles ObstacleConfig          `yaml:"obstacles"`
	Spawn     SpawnConfig             `yaml:"spawn"`
	Sim       SimConfig               `yaml:"sim"`
	Planets   map[string]PlanetConfig `yaml:"planets"`
}

// FieldConfig defines the playfield dimensions in cells.
type FieldConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PlayerConfig defines the player box and its fixed horizontal offset.
type PlayerConfig struct {
	X      float64 `yaml:"x"`
	Width  float64 `yaml:"width"`
	Height int     `yaml:"height"`
}

// ObstacleConfig defines the obstacle box ranges.
type ObstacleConfig struct {
	Width     float64 `yaml:"width"`
	MinHeight int     `yaml:"min_height"`
	MaxHeight int     `yaml:"max_height"`
}

// SpawnConfig defines the randomized spawn delay interval in milliseconds.
// A delay is re-sampled uniformly from [MinDelayMs, MaxDelayMs] before every
// spawn.
type SpawnConfig struct {
	MinDelayMs int `yaml:"min_delay_ms"`
	MaxDelayMs int `yaml:"max_delay_ms"`
}

// SimConfig defines simulation timing and difficulty scaling.
// Speed follows base_speed + scale_factor * ln(score+1) while a game is
// running.
type SimConfig struct {
	TickMs      int     `yaml:"tick_ms"`
	BaseSpeed   float64 `yaml:"base_speed"`
	ScaleFactor float64 `yaml:"scale_factor"`
}

// PlanetConfig defines the physics constants for one planet.
type PlanetConfig struct {
	Gravity     float64 `yaml:"gravity"`
	JumpImpulse float64 `yaml:"jump_impulse"`
}
