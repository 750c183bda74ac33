package game

import (
	"time"

	"github.com/kanadn/dino-run-game/internal/config"
)

// Status is the session lifecycle state. Exactly one holds at any time.
type Status int

const (
	StatusReady Status = iota
	StatusPlaying
	StatusGameOver
)

// String returns a display name for the status.
func (s Status) String() string {
	switch s {
	case StatusReady:
		return "ready"
	case StatusPlaying:
		return "playing"
	case StatusGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// ActionResult tells the caller what the unified action trigger did, so the
// platform layer knows which timers to arm.
type ActionResult int

const (
	ActionIgnored ActionResult = iota // Mid-air trigger while playing
	ActionStarted                     // Ready -> Playing: arm sim tick + spawn timer
	ActionJumped                      // Jump began: arm jump tick
	ActionReset                       // GameOver -> Ready
)

// Session owns all mutable state of one play session and enforces its
// invariants on every mutation. All methods must be called from a single
// goroutine; the Bubble Tea event loop provides that naturally.
//
// Scheduled callbacks (sim tick, jump tick, spawn timer) carry the generation
// they were armed with. Any transition that invalidates outstanding timers
// (game over, reset, planet change) bumps the generation, so a stale callback
// that already sits in the queue becomes a silent no-op regardless of whether
// its timer was cancelled.
type Session struct {
	cfg      config.Config
	profiles ProfileTable
	planet   Planet

	status     Status
	score      int
	speed      float64
	obstacles  []Obstacle
	spawner    *Spawner
	jump       *JumpController
	generation uint64
	seed       int64
}

// NewSession creates a session in the Ready state.
func NewSession(cfg config.Config, seed int64) *Session {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	s := &Session{
		cfg:      cfg,
		profiles: ProfilesFromConfig(cfg.Planets),
		planet:   DefaultPlanet,
		seed:     seed,
		spawner:  NewSpawner(seed, &cfg),
		jump:     NewJumpController(time.Duration(cfg.Sim.TickMs) * time.Millisecond),
	}
	s.Reset()
	return s
}

// Generation returns the current activation token. Timer commands must be
// armed with this value and hand it back on firing.
func (s *Session) Generation() uint64 {
	return s.generation
}

// TickPeriod returns the fixed simulation and jump tick period.
func (s *Session) TickPeriod() time.Duration {
	return time.Duration(s.cfg.Sim.TickMs) * time.Millisecond
}

// Status returns the current lifecycle state.
func (s *Session) Status() Status {
	return s.status
}

// Planet returns the selected planet.
func (s *Session) Planet() Planet {
	return s.planet
}

// Profile returns the physics profile of the selected planet.
func (s *Session) Profile() PhysicsProfile {
	return s.profiles[s.planet]
}

// HandleAction dispatches the unified action trigger by current state:
// Ready starts the game, Playing jumps unless already airborne, GameOver
// resets back to Ready.
func (s *Session) HandleAction(now time.Time) ActionResult {
	switch s.status {
	case StatusReady:
		s.start()
		return ActionStarted
	case StatusPlaying:
		if !s.jump.Start(s.profiles[s.planet], now) {
			return ActionIgnored
		}
		return ActionJumped
	case StatusGameOver:
		s.Reset()
		return ActionReset
	default:
		return ActionIgnored
	}
}

// start begins the simulation. The caller (via ActionStarted) arms the sim
// tick and the first spawn timer; no obstacle exists until the first sampled
// delay elapses.
func (s *Session) start() {
	s.status = StatusPlaying
	s.speed = s.cfg.Sim.BaseSpeed
}

// Reset returns the session to a clean Ready state: no obstacles, zero score,
// player on the ground, base speed. Safe to call from any state, including
// mid-jump, and idempotent. Outstanding timers go stale.
func (s *Session) Reset() {
	s.generation++
	s.status = StatusReady
	s.score = 0
	s.speed = s.cfg.Sim.BaseSpeed
	s.obstacles = s.obstacles[:0]
	s.spawner.Reset(s.seed)
	s.jump.Reset()
}

// Reseed sets the RNG seed applied by the next Reset, so each run gets a
// fresh obstacle pattern while tests keep full determinism.
func (s *Session) Reseed(seed int64) {
	s.seed = seed
}

// ChangePlanet selects a planet by name and performs a full reset; changing
// physics mid-flight is disallowed, so the session always lands in Ready.
// Unknown names fall back to the default planet.
func (s *Session) ChangePlanet(name string) {
	p, _ := ParsePlanet(name)
	s.planet = p
	s.Reset()
}

// CyclePlanet moves the selection forward or backward through the planet
// enumeration, with a full reset.
func (s *Session) CyclePlanet(offset int) {
	s.planet = s.planet.Next(offset)
	s.Reset()
}

// SpawnDelay samples the wait before the next obstacle.
// Used to arm the first spawn timer on start; subsequent delays come from
// SpawnTimerFired.
func (s *Session) SpawnDelay() time.Duration {
	return s.spawner.NextDelay()
}

// SpawnTimerFired handles a spawn timer callback armed with gen.
// If the generation is current and the game is still running, it appends one
// obstacle at the right field boundary and returns the next sampled delay
// with rearm=true. A stale or inactive callback appends nothing.
func (s *Session) SpawnTimerFired(gen uint64) (next time.Duration, rearm bool) {
	if gen != s.generation || s.status != StatusPlaying {
		return 0, false
	}
	s.obstacles = append(s.obstacles, s.spawner.Spawn())
	return s.spawner.NextDelay(), true
}

// AdvanceJump handles a jump tick callback armed with gen.
// Returns true while the jump loop should keep ticking.
func (s *Session) AdvanceJump(gen uint64, now time.Time) bool {
	if gen != s.generation || s.status != StatusPlaying {
		return false
	}
	return s.jump.Advance(now)
}

// gameOver halts the session. The generation bump deterministically
// invalidates the spawner, clock, and jump timers without relying on timer
// cancellation.
func (s *Session) gameOver() {
	s.generation++
	s.status = StatusGameOver
	s.speed = s.cfg.Sim.BaseSpeed
}
