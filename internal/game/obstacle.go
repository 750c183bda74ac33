package game

import (
	"math/rand"
	"time"

	"github.com/kanadn/dino-run-game/internal/config"
	"github.com/kanadn/dino-run-game/internal/core"
)

// Obstacle is a single cactus the player must jump over.
// X decreases every simulation tick; Scored flips exactly once when the
// obstacle has fully passed the player.
type Obstacle struct {
	ID     uint64  // Unique within a session, monotonically increasing
	X      float64 // Left edge in field units
	Width  float64
	Height int
	Scored bool
}

// Span returns the horizontal interval the obstacle occupies.
func (o Obstacle) Span() core.Span {
	return core.NewSpan(o.X, o.Width)
}

// Spawner produces new obstacles at randomized intervals.
// It only samples delays and builds obstacles; the session decides when a
// spawn actually happens, so a deactivated spawner can never append.
type Spawner struct {
	rng      *rand.Rand
	nextID   uint64
	fieldW   float64
	width    float64
	minH     int
	maxH     int
	minDelay time.Duration
	maxDelay time.Duration
}

// NewSpawner creates a spawner for the given configuration and RNG seed.
func NewSpawner(seed int64, cfg *config.Config) *Spawner {
	s := &Spawner{
		fieldW:   float64(cfg.Field.Width),
		width:    cfg.Obstacles.Width,
		minH:     cfg.Obstacles.MinHeight,
		maxH:     cfg.Obstacles.MaxHeight,
		minDelay: time.Duration(cfg.Spawn.MinDelayMs) * time.Millisecond,
		maxDelay: time.Duration(cfg.Spawn.MaxDelayMs) * time.Millisecond,
	}
	s.Reset(seed)
	return s
}

// Reset reseeds the RNG and restarts obstacle identity numbering.
func (s *Spawner) Reset(seed int64) {
	s.rng = rand.New(rand.NewSource(seed))
	s.nextID = 0
}

// NextDelay samples a wait uniformly from the closed interval
// [minDelay, maxDelay]. Each call samples independently.
func (s *Spawner) NextDelay() time.Duration {
	span := int64(s.maxDelay - s.minDelay)
	if span <= 0 {
		return s.minDelay
	}
	return s.minDelay + time.Duration(s.rng.Int63n(span+1))
}

// Spawn builds one new obstacle at the field's right boundary.
func (s *Spawner) Spawn() Obstacle {
	height := s.minH
	if s.maxH > s.minH {
		height = s.minH + s.rng.Intn(s.maxH-s.minH+1)
	}

	s.nextID++
	return Obstacle{
		ID:     s.nextID,
		X:      s.fieldW,
		Width:  s.width,
		Height: height,
	}
}
