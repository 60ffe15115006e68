package entity

// DamageResult reports what TakeDamage did.
type DamageResult int

const (
	DamageApplied  DamageResult = iota // health was reduced
	DamageAbsorbed                     // shield was active, health unchanged
)

// Ship is the player-controlled entity. Horizontal movement only; vertical
// velocity stays 0 (no jump or lane mechanic).
type Ship struct {
	Object

	speed        float64 // horizontal speed applied by MoveLeft/MoveRight
	health       int
	maxHealth    int
	shieldActive bool
	shieldTimer  float64 // seconds remaining
}

// NewShip creates a ship at (x, y) with the given size, movement speed and
// starting (= maximum) health.
func NewShip(x, y, w, h, speed float64, health int) *Ship {
	return &Ship{
		Object:    Object{X: x, Y: y, W: w, H: h},
		speed:     speed,
		health:    health,
		maxHealth: health,
	}
}

// Update advances position and counts the shield down, deactivating it when
// the timer reaches zero.
func (s *Ship) Update(dt float64) {
	s.Object.Update(dt)

	if s.shieldActive {
		s.shieldTimer -= dt
		if s.shieldTimer <= 0 {
			s.shieldActive = false
			s.shieldTimer = 0
		}
	}
}

// MoveLeft starts moving left at full speed.
func (s *Ship) MoveLeft() {
	s.VX = -s.speed
}

// MoveRight starts moving right at full speed.
func (s *Ship) MoveRight() {
	s.VX = s.speed
}

// Stop halts horizontal movement.
func (s *Ship) Stop() {
	s.VX = 0
}

// ClampX keeps the ship inside the horizontal range [0, worldW].
func (s *Ship) ClampX(worldW float64) {
	if s.X < 0 {
		s.X = 0
	}
	if s.Right() > worldW {
		s.X = worldW - s.W
	}
}

// ActivateShield arms the shield for the given duration in seconds.
// Re-activating restarts the timer.
func (s *Ship) ActivateShield(duration float64) {
	s.shieldActive = true
	s.shieldTimer = duration
}

// TakeDamage reduces health by amount, floored at 0. While the shield is
// active the hit is absorbed and health is unchanged.
func (s *Ship) TakeDamage(amount int) DamageResult {
	if s.shieldActive {
		return DamageAbsorbed
	}
	s.health -= amount
	if s.health < 0 {
		s.health = 0
	}
	return DamageApplied
}

// Health returns the current health (0..max).
func (s *Ship) Health() int {
	return s.health
}

// MaxHealth returns the starting health.
func (s *Ship) MaxHealth() int {
	return s.maxHealth
}

// Alive returns true while health is above zero.
func (s *Ship) Alive() bool {
	return s.health > 0
}

// ShieldActive reports whether the shield is currently up.
func (s *Ship) ShieldActive() bool {
	return s.shieldActive
}

// ShieldRemaining returns the seconds left on the shield timer.
func (s *Ship) ShieldRemaining() float64 {
	return s.shieldTimer
}
