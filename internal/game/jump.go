package game

import "time"

// JumpController evolves the player's vertical position while airborne.
// Integration is normalized against the nominal tick period so the arc stays
// consistent under timer jitter: a late tick integrates a proportionally
// larger step.
type JumpController struct {
	height      float64
	velocity    float64
	airborne    bool
	gravity     float64
	nominalTick time.Duration
	lastTick    time.Time
}

// NewJumpController creates a controller for the given nominal tick period.
func NewJumpController(nominalTick time.Duration) *JumpController {
	return &JumpController{nominalTick: nominalTick}
}

// Start begins a jump with the profile's impulse and gravity.
// It is a no-op returning false while already airborne, so a mid-air trigger
// cannot alter the arc.
func (j *JumpController) Start(profile PhysicsProfile, now time.Time) bool {
	if j.airborne {
		return false
	}
	j.airborne = true
	j.velocity = profile.JumpImpulse
	j.gravity = profile.Gravity
	j.lastTick = now
	return true
}

// Advance integrates one jump tick at the given wall time.
// Returns true while the player remains airborne; when the height would go
// negative it clamps to 0, lands, and returns false.
func (j *JumpController) Advance(now time.Time) bool {
	if !j.airborne {
		return false
	}

	ndt := float64(now.Sub(j.lastTick)) / float64(j.nominalTick)
	if ndt <= 0 {
		ndt = 1
	}
	j.lastTick = now

	j.height += j.velocity * ndt
	j.velocity -= j.gravity * ndt

	if j.height <= 0 {
		j.land()
		return false
	}
	return true
}

// land clamps the player back onto the ground.
func (j *JumpController) land() {
	j.height = 0
	j.velocity = 0
	j.airborne = false
}

// Reset clears any jump in flight.
func (j *JumpController) Reset() {
	j.land()
}

// Height returns the player's height above the ground. Never negative.
func (j *JumpController) Height() float64 {
	return j.height
}

// Velocity returns the current vertical velocity.
func (j *JumpController) Velocity() float64 {
	return j.velocity
}

// Airborne reports whether a jump is in flight.
func (j *JumpController) Airborne() bool {
	return j.airborne
}
