package game

import (
	"reflect"
	"testing"
	"time"

	"github.com/kanadn/dino-run-game/internal/config"
)

func newTestSession(t *testing.T, seed int64) *Session {
	t.Helper()
	return NewSession(config.Default(), seed)
}

// startPlaying drives a Ready session into Playing.
func startPlaying(t *testing.T, s *Session, now time.Time) {
	t.Helper()
	if got := s.HandleAction(now); got != ActionStarted {
		t.Fatalf("HandleAction() from Ready = %v, expected ActionStarted", got)
	}
}

func TestActionDispatchByState(t *testing.T) {
	s := newTestSession(t, 1)
	now := time.Unix(0, 0)

	if s.Status() != StatusReady {
		t.Fatalf("new session status = %v, expected Ready", s.Status())
	}

	// Ready -> start
	if got := s.HandleAction(now); got != ActionStarted {
		t.Errorf("action in Ready = %v, expected ActionStarted", got)
	}
	if s.Status() != StatusPlaying {
		t.Errorf("status after start = %v, expected Playing", s.Status())
	}

	// Playing, grounded -> jump
	if got := s.HandleAction(now); got != ActionJumped {
		t.Errorf("action while grounded = %v, expected ActionJumped", got)
	}

	// Playing, airborne -> no-op
	if got := s.HandleAction(now); got != ActionIgnored {
		t.Errorf("action while airborne = %v, expected ActionIgnored", got)
	}

	// GameOver -> reset
	s.gameOver()
	if got := s.HandleAction(now); got != ActionReset {
		t.Errorf("action in GameOver = %v, expected ActionReset", got)
	}
	if s.Status() != StatusReady {
		t.Errorf("status after reset action = %v, expected Ready", s.Status())
	}
}

func TestPlayerHeightNeverNegative(t *testing.T) {
	s := newTestSession(t, 7)
	now := time.Unix(0, 0)
	tick := s.TickPeriod()

	s.ChangePlanet("jupiter") // Heaviest gravity, fastest landing
	startPlaying(t, s, now)
	s.HandleAction(now) // jump

	gen := s.Generation()
	for i := 0; i < 200; i++ {
		if h := s.Snapshot().PlayerHeight; h < 0 {
			t.Fatalf("tick %d: player height %f below ground before tick", i, h)
		}
		now = now.Add(tick)
		s.AdvanceJump(gen, now)
		s.AdvanceSim(gen)
		if h := s.Snapshot().PlayerHeight; h < 0 {
			t.Fatalf("tick %d: player height %f below ground after tick", i, h)
		}
	}

	if s.Snapshot().Airborne {
		t.Error("player should have landed after 200 ticks on jupiter")
	}
}

func TestScoreDeltaCountsSimultaneousPasses(t *testing.T) {
	s := newTestSession(t, 3)
	now := time.Unix(0, 0)
	startPlaying(t, s, now)

	// Two obstacles whose trailing edges both cross the player position on
	// the same tick (speed 1.0, player at x=8).
	s.obstacles = []Obstacle{
		{ID: 1, X: 5.9, Width: 2, Height: 2},
		{ID: 2, X: 5.5, Width: 2, Height: 2},
	}

	gen := s.Generation()
	if !s.AdvanceSim(gen) {
		t.Fatal("AdvanceSim() reported stop on a clean tick")
	}

	if got := s.Snapshot().Score; got != 2 {
		t.Errorf("score = %d, expected 2 after two simultaneous passes", got)
	}

	// An already-scored obstacle must not count again.
	s.AdvanceSim(gen)
	if got := s.Snapshot().Score; got != 2 {
		t.Errorf("score = %d, expected to stay at 2", got)
	}
}

func TestScoreMonotonic(t *testing.T) {
	s := newTestSession(t, 99)
	now := time.Unix(0, 0)
	tick := s.TickPeriod()
	startPlaying(t, s, now)

	gen := s.Generation()
	delay := s.SpawnDelay()
	elapsed := time.Duration(0)

	prev := 0
	for i := 0; i < 2000 && s.Status() == StatusPlaying; i++ {
		now = now.Add(tick)
		elapsed += tick
		if elapsed >= delay {
			if next, rearm := s.SpawnTimerFired(gen); rearm {
				delay, elapsed = next, 0
			}
		}
		// Jump whenever grounded so the run survives a while
		s.HandleAction(now)
		s.AdvanceJump(gen, now)
		s.AdvanceSim(gen)

		score := s.Snapshot().Score
		if score < prev {
			t.Fatalf("tick %d: score decreased from %d to %d", i, prev, score)
		}
		prev = score
	}
}

func TestResetIdempotent(t *testing.T) {
	s := newTestSession(t, 5)
	now := time.Unix(0, 0)

	// Dirty the state: play, jump, inject obstacles and score
	startPlaying(t, s, now)
	s.HandleAction(now)
	s.obstacles = append(s.obstacles, Obstacle{ID: 9, X: 40, Width: 2, Height: 3})
	s.score = 12
	s.speed = s.speedForScore(12)

	s.Reset()
	once := s.Snapshot()

	s.Reset()
	twice := s.Snapshot()

	if !reflect.DeepEqual(once, twice) {
		t.Errorf("double reset snapshot differs:\nonce:  %+v\ntwice: %+v", once, twice)
	}
	if once.Status != StatusReady || once.Score != 0 || len(once.Obstacles) != 0 {
		t.Errorf("reset snapshot not clean: %+v", once)
	}
	if once.PlayerHeight != 0 || once.Airborne {
		t.Errorf("reset should ground the player: %+v", once)
	}
}

func TestNoRejumpMidAir(t *testing.T) {
	s := newTestSession(t, 2)
	now := time.Unix(0, 0)
	tick := s.TickPeriod()
	startPlaying(t, s, now)

	s.HandleAction(now) // jump
	gen := s.Generation()

	now = now.Add(tick)
	s.AdvanceJump(gen, now)

	heightBefore := s.jump.Height()
	velBefore := s.jump.Velocity()

	// Trigger again mid-air: must not restart the arc
	if got := s.HandleAction(now); got != ActionIgnored {
		t.Fatalf("mid-air action = %v, expected ActionIgnored", got)
	}
	if s.jump.Velocity() != velBefore {
		t.Errorf("mid-air trigger altered velocity: %f -> %f", velBefore, s.jump.Velocity())
	}
	if s.jump.Height() != heightBefore {
		t.Errorf("mid-air trigger altered height: %f -> %f", heightBefore, s.jump.Height())
	}
}

func TestCollisionEndsGameWithinOneTick(t *testing.T) {
	s := newTestSession(t, 11)
	now := time.Unix(0, 0)
	startPlaying(t, s, now)

	// Grounded player at x=8 (width 3); obstacle lands inside the player
	// span after one tick at speed 1.0, taller than the grounded player.
	s.obstacles = []Obstacle{{ID: 1, X: 11.5, Width: 2, Height: 3}}

	gen := s.Generation()
	if s.AdvanceSim(gen) {
		t.Error("AdvanceSim() should stop ticking on collision")
	}

	if s.Status() != StatusGameOver {
		t.Fatalf("status = %v, expected GameOver within one tick", s.Status())
	}

	// Game over invalidates the armed generation
	if gen == s.Generation() {
		t.Error("game over should bump the generation token")
	}
}

func TestAirborneClearsObstacle(t *testing.T) {
	s := newTestSession(t, 11)
	now := time.Unix(0, 0)
	startPlaying(t, s, now)

	// Same geometry as the collision test, but the player hangs above the
	// obstacle height.
	s.obstacles = []Obstacle{{ID: 1, X: 11.5, Width: 2, Height: 3}}
	s.jump.airborne = true
	s.jump.height = 4.5

	gen := s.Generation()
	if !s.AdvanceSim(gen) {
		t.Error("high player should clear the obstacle")
	}
	if s.Status() != StatusPlaying {
		t.Errorf("status = %v, expected still Playing", s.Status())
	}
}

func TestSpeedScalesSubLinearAndMonotonic(t *testing.T) {
	s := newTestSession(t, 1)
	base := s.cfg.Sim.BaseSpeed

	if got := s.speedForScore(0); got != base {
		t.Errorf("speed at score 0 = %f, expected base %f", got, base)
	}

	prev := s.speedForScore(0)
	prevDelta := 0.0
	for score := 1; score <= 200; score++ {
		cur := s.speedForScore(score)
		if cur <= prev {
			t.Fatalf("speed not monotonic: speed(%d)=%f <= speed(%d)=%f", score, cur, score-1, prev)
		}
		delta := cur - prev
		if prevDelta > 0 && delta >= prevDelta {
			t.Fatalf("speed increases should taper: delta at %d (%f) >= previous (%f)", score, delta, prevDelta)
		}
		prev, prevDelta = cur, delta
	}
}

func TestEndToEndFirstObstacleScoresOne(t *testing.T) {
	s := newTestSession(t, 42)
	now := time.Unix(0, 0)
	tick := s.TickPeriod()

	startPlaying(t, s, now)
	if n := len(s.Snapshot().Obstacles); n != 0 {
		t.Fatalf("obstacles exist immediately after start: %d", n)
	}

	// First sampled delay must come from the configured closed interval.
	delay := s.SpawnDelay()
	minD := time.Duration(s.cfg.Spawn.MinDelayMs) * time.Millisecond
	maxD := time.Duration(s.cfg.Spawn.MaxDelayMs) * time.Millisecond
	if delay < minD || delay > maxD {
		t.Fatalf("spawn delay %v outside [%v, %v]", delay, minD, maxD)
	}

	gen := s.Generation()
	if _, rearm := s.SpawnTimerFired(gen); !rearm {
		t.Fatal("spawn timer with current generation should fire and rearm")
	}

	snap := s.Snapshot()
	if len(snap.Obstacles) != 1 {
		t.Fatalf("expected exactly one obstacle, got %d", len(snap.Obstacles))
	}
	if snap.Obstacles[0].X != float64(s.cfg.Field.Width) {
		t.Errorf("obstacle spawned at %f, expected right boundary %d", snap.Obstacles[0].X, s.cfg.Field.Width)
	}

	// Keep the player hanging high above every obstacle while the field
	// scrolls past, so the pass is collision-free.
	s.jump.Start(PhysicsProfile{Gravity: 0.0001, JumpImpulse: 1.0}, now)

	for i := 0; i < 500 && len(s.Snapshot().Obstacles) > 0; i++ {
		now = now.Add(tick)
		s.AdvanceJump(gen, now)
		if !s.AdvanceSim(gen) {
			t.Fatalf("unexpected game over at tick %d", i)
		}
	}

	snap = s.Snapshot()
	if len(snap.Obstacles) != 0 {
		t.Fatal("obstacle never left the field")
	}
	if snap.Score != 1 {
		t.Errorf("score = %d, expected exactly 1", snap.Score)
	}
}

func TestPlanetChangeFromGameOverResets(t *testing.T) {
	s := newTestSession(t, 13)
	now := time.Unix(0, 0)
	startPlaying(t, s, now)

	s.score = 7
	s.gameOver()

	s.ChangePlanet("moon")

	snap := s.Snapshot()
	if snap.Status != StatusReady {
		t.Errorf("status = %v, expected Ready", snap.Status)
	}
	if snap.Score != 0 {
		t.Errorf("score = %d, expected 0 after planet change", snap.Score)
	}
	if snap.Planet != PlanetMoon {
		t.Errorf("planet = %v, expected moon", snap.Planet)
	}

	moon := s.cfg.Planets["moon"]
	if got := s.Profile(); got.Gravity != moon.Gravity || got.JumpImpulse != moon.JumpImpulse {
		t.Errorf("profile = %+v, expected moon constants %+v", got, moon)
	}
}

func TestUnknownPlanetFallsBackToDefault(t *testing.T) {
	s := newTestSession(t, 1)

	s.ChangePlanet("krypton")

	if s.Planet() != DefaultPlanet {
		t.Errorf("planet = %v, expected default %v", s.Planet(), DefaultPlanet)
	}
}

func TestStaleGenerationCallbacksAreNoOps(t *testing.T) {
	s := newTestSession(t, 21)
	now := time.Unix(0, 0)
	startPlaying(t, s, now)
	s.HandleAction(now) // airborne

	stale := s.Generation()
	s.Reset() // bumps generation; the armed timers are now logically dead
	startPlaying(t, s, now)

	before := s.Snapshot()

	if _, rearm := s.SpawnTimerFired(stale); rearm {
		t.Error("stale spawn timer should not rearm")
	}
	if s.AdvanceSim(stale) {
		t.Error("stale sim tick should not keep ticking")
	}
	if s.AdvanceJump(stale, now.Add(s.TickPeriod())) {
		t.Error("stale jump tick should not keep ticking")
	}

	if after := s.Snapshot(); !reflect.DeepEqual(before, after) {
		t.Errorf("stale callbacks mutated state:\nbefore: %+v\nafter:  %+v", before, after)
	}
}

func TestDeterminismUnderFixedSeed(t *testing.T) {
	run := func() Snapshot {
		s := newTestSession(t, 12345)
		now := time.Unix(0, 0)
		tick := s.TickPeriod()
		startPlaying(t, s, now)

		gen := s.Generation()
		delay := s.SpawnDelay()
		elapsed := time.Duration(0)

		for i := 0; i < 600 && s.Status() == StatusPlaying; i++ {
			now = now.Add(tick)
			elapsed += tick
			if elapsed >= delay {
				if next, rearm := s.SpawnTimerFired(gen); rearm {
					delay, elapsed = next, 0
				}
			}
			if i%25 == 0 {
				s.HandleAction(now)
			}
			s.AdvanceJump(gen, now)
			s.AdvanceSim(gen)
		}
		return s.Snapshot()
	}

	snap1 := run()
	snap2 := run()

	if !reflect.DeepEqual(snap1, snap2) {
		t.Errorf("same seed and inputs produced different states:\nrun1: %+v\nrun2: %+v", snap1, snap2)
	}
}
