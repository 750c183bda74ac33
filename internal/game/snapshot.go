package game

// ObstacleView is the read-only obstacle projection handed to the
// presentation layer.
type ObstacleView struct {
	ID     uint64
	X      float64
	Width  float64
	Height int
}

// Snapshot captures the session state for one render frame.
// The presentation layer consumes it read-only; mutating a snapshot has no
// effect on the session.
type Snapshot struct {
	Status       Status
	Score        int
	Speed        float64
	PlayerHeight float64
	Airborne     bool
	Planet       Planet
	Obstacles    []ObstacleView
}

// Snapshot returns the current session snapshot.
func (s *Session) Snapshot() Snapshot {
	obstacles := make([]ObstacleView, len(s.obstacles))
	for i, o := range s.obstacles {
		obstacles[i] = ObstacleView{
			ID:     o.ID,
			X:      o.X,
			Width:  o.Width,
			Height: o.Height,
		}
	}

	return Snapshot{
		Status:       s.status,
		Score:        s.score,
		Speed:        s.speed,
		PlayerHeight: s.jump.Height(),
		Airborne:     s.jump.Airborne(),
		Planet:       s.planet,
		Obstacles:    obstacles,
	}
}
