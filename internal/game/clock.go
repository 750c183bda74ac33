package game

import (
	"math"

	"github.com/kanadn/dino-run-game/internal/core"
)

// AdvanceSim handles one fixed-period simulation tick armed with gen.
// Per tick: move every obstacle left by the current speed, flip Scored for
// obstacles whose trailing edge crossed the player, drop obstacles fully off
// the left boundary, rescale speed if the score changed, then collision-test.
// Returns true while the clock should keep ticking; a collision transitions
// to GameOver and stops further ticking this frame.
func (s *Session) AdvanceSim(gen uint64) bool {
	if gen != s.generation || s.status != StatusPlaying {
		return false
	}

	passed := 0
	for i := range s.obstacles {
		o := &s.obstacles[i]
		o.X -= s.speed
		if !o.Scored && o.X+o.Width < s.cfg.Player.X {
			o.Scored = true
			passed++
		}
	}

	// Remove obstacles that left the field, preserving spawn order.
	kept := s.obstacles[:0]
	for _, o := range s.obstacles {
		if o.X+o.Width > 0 {
			kept = append(kept, o)
		}
	}
	s.obstacles = kept

	// A single tick may pass several obstacles at once; the score grows by
	// the full count.
	if passed > 0 {
		s.score += passed
		s.speed = s.speedForScore(s.score)
	}

	// First detected collision ends the game; later obstacles this tick are
	// not examined.
	playerSpan := core.NewSpan(s.cfg.Player.X, s.cfg.Player.Width)
	height := s.jump.Height()
	for _, o := range s.obstacles {
		if playerSpan.Overlaps(o.Span()) && height < float64(o.Height) {
			s.gameOver()
			return false
		}
	}

	return true
}

// speedForScore is the difficulty curve: sub-linear and monotonically
// increasing, so early obstacles are the most forgiving and increases taper
// off over time.
func (s *Session) speedForScore(score int) float64 {
	return s.cfg.Sim.BaseSpeed + s.cfg.Sim.ScaleFactor*math.Log(float64(score)+1)
}
