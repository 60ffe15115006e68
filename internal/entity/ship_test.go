package entity

import (
	"math"
	"testing"
)

func newTestShip() *Ship {
	return NewShip(492, 628, 40, 40, 300, 100)
}

func TestShipDamageClampedAtZero(t *testing.T) {
	s := newTestShip()

	if s.Health() != 100 {
		t.Fatalf("starting health = %d, expected 100", s.Health())
	}

	// Three hits of 30: 70, 40, 10
	expected := []int{70, 40, 10}
	for i, want := range expected {
		if got := s.TakeDamage(30); got != DamageApplied {
			t.Errorf("hit %d: result = %v, expected DamageApplied", i+1, got)
		}
		if s.Health() != want {
			t.Errorf("hit %d: health = %d, expected %d", i+1, s.Health(), want)
		}
	}

	// Fourth hit clamps at 0, never negative
	s.TakeDamage(30)
	if s.Health() != 0 {
		t.Errorf("health after fourth hit = %d, expected 0", s.Health())
	}
	if s.Alive() {
		t.Error("ship with 0 health should not be alive")
	}
}

func TestShipShieldAbsorbsDamage(t *testing.T) {
	s := newTestShip()
	s.ActivateShield(6.0)

	if !s.ShieldActive() {
		t.Fatal("shield should be active after ActivateShield")
	}

	if got := s.TakeDamage(30); got != DamageAbsorbed {
		t.Errorf("result = %v, expected DamageAbsorbed", got)
	}
	if s.Health() != 100 {
		t.Errorf("health = %d, expected 100 (absorbed)", s.Health())
	}

	// Run the timer down: 6 seconds of 0.5s steps
	for i := 0; i < 12; i++ {
		s.Update(0.5)
	}
	if s.ShieldActive() {
		t.Error("shield should expire once the summed dt reaches the duration")
	}

	// Shield down: damage applies again
	if got := s.TakeDamage(30); got != DamageApplied {
		t.Errorf("result = %v, expected DamageApplied after expiry", got)
	}
	if s.Health() != 70 {
		t.Errorf("health = %d, expected 70", s.Health())
	}
}

func TestShipMovement(t *testing.T) {
	s := newTestShip()

	s.MoveLeft()
	if s.VX != -300 {
		t.Errorf("VX after MoveLeft = %v, expected -300", s.VX)
	}

	s.MoveRight()
	if s.VX != 300 {
		t.Errorf("VX after MoveRight = %v, expected 300", s.VX)
	}

	s.Stop()
	if s.VX != 0 {
		t.Errorf("VX after Stop = %v, expected 0", s.VX)
	}

	// Vertical velocity never changes
	if s.VY != 0 {
		t.Errorf("VY = %v, expected 0", s.VY)
	}
}

func TestShipPositionIntegration(t *testing.T) {
	s := newTestShip()
	startX := s.X

	s.MoveRight()
	for i := 0; i < 60; i++ {
		s.Update(1.0 / 60.0)
	}

	// One second at 300 px/s
	if math.Abs((s.X-startX)-300) > 1e-6 {
		t.Errorf("moved %v px in 1s, expected 300", s.X-startX)
	}
}

func TestShipClampX(t *testing.T) {
	s := newTestShip()

	s.X = -25
	s.ClampX(1024)
	if s.X != 0 {
		t.Errorf("X = %v, expected 0 after clamping left edge", s.X)
	}

	s.X = 1100
	s.ClampX(1024)
	if s.Right() != 1024 {
		t.Errorf("Right() = %v, expected 1024 after clamping right edge", s.Right())
	}
}
