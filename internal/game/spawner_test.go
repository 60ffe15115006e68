package game

import (
	"testing"

	"github.com/vovakirdan/galaxy-runner/internal/config"
	"github.com/vovakirdan/galaxy-runner/internal/entity"
)

func testSpawnerConfig() config.SpawnerConfig {
	return config.SpawnerConfig{
		FallSpeed:      220,
		StarInterval:   1.0,
		DebrisInterval: 1.5,
		ShieldInterval: 10.0,
		DebrisDamage:   10,
	}
}

func TestSpawnerDeterminism(t *testing.T) {
	// Two spawners with the same seed produce identical drop sequences
	s1 := NewSpawner(12345, 1024, 768, testSpawnerConfig())
	s2 := NewSpawner(12345, 1024, 768, testSpawnerConfig())

	dt := 1.0 / 60.0
	for i := 0; i < 600; i++ {
		s1.Update(dt)
		s2.Update(dt)
	}

	d1, d2 := s1.Drops(), s2.Drops()
	if len(d1) != len(d2) {
		t.Fatalf("drop count mismatch: %d vs %d", len(d1), len(d2))
	}
	for i := range d1 {
		if d1[i].Kind != d2[i].Kind || d1[i].X != d2[i].X || d1[i].Y != d2[i].Y {
			t.Errorf("drop %d mismatch: %+v vs %+v", i, d1[i], d2[i])
		}
	}
}

func TestSpawnerIntervals(t *testing.T) {
	sp := NewSpawner(42, 1024, 768, testSpawnerConfig())

	// After 3.1 seconds: 3 stars, 2 debris, 0 shields
	dt := 1.0 / 60.0
	for i := 0; i < 186; i++ {
		sp.Update(dt)
	}

	counts := map[DropKind]int{}
	for _, d := range sp.Drops() {
		counts[d.Kind]++
	}

	if counts[DropStar] != 3 {
		t.Errorf("stars = %d, expected 3", counts[DropStar])
	}
	if counts[DropDebris] != 2 {
		t.Errorf("debris = %d, expected 2", counts[DropDebris])
	}
	if counts[DropShield] != 0 {
		t.Errorf("shields = %d, expected 0", counts[DropShield])
	}
}

func TestSpawnerRemovesFallenDrops(t *testing.T) {
	sp := NewSpawner(7, 1024, 768, testSpawnerConfig())

	// Run long enough for the first drops to cross the whole world
	// (768 px at 220 px/s is ~3.5s)
	dt := 1.0 / 60.0
	for i := 0; i < 60; i++ {
		sp.Update(dt)
	}
	before := len(sp.Drops())
	if before == 0 {
		t.Fatal("expected some drops after 1s")
	}

	for _, d := range sp.Drops() {
		if d.Y >= 768 {
			t.Errorf("drop below the world should have been removed: %+v", d)
		}
	}
}

func TestSpawnerCollect(t *testing.T) {
	sp := NewSpawner(99, 1024, 768, testSpawnerConfig())

	dt := 1.0 / 60.0
	for i := 0; i < 120; i++ {
		sp.Update(dt)
	}
	if len(sp.Drops()) == 0 {
		t.Fatal("expected drops after 2s")
	}

	// Place a target directly over the first drop
	first := sp.Drops()[0]
	target := entity.Object{X: first.X, Y: first.Y, W: first.W, H: first.H}

	before := len(sp.Drops())
	hit := sp.Collect(&target)
	if len(hit) == 0 {
		t.Fatal("expected at least one collected drop")
	}
	if len(sp.Drops()) != before-len(hit) {
		t.Errorf("collected drops should be removed: %d left, expected %d",
			len(sp.Drops()), before-len(hit))
	}

	// A target far away collects nothing
	far := entity.Object{X: -500, Y: -500, W: 10, H: 10}
	if got := sp.Collect(&far); len(got) != 0 {
		t.Errorf("far target collected %d drops, expected 0", len(got))
	}
}
