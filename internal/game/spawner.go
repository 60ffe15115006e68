// Package game contains the gameplay-internal world simulation: falling
// objects, the combo counter and score accrual. It is pure logic with no
// rendering or storage dependencies.
package game

import (
	"math/rand"

	"github.com/vovakirdan/galaxy-runner/internal/config"
	"github.com/vovakirdan/galaxy-runner/internal/entity"
)

// DropKind represents what a falling object does on contact.
type DropKind int

const (
	DropStar   DropKind = iota // collectible, scores and extends the combo
	DropDebris                 // hazard, damages the ship and breaks the combo
	DropShield                 // pickup, arms the shield
)

// Glyph returns the display character for a drop kind.
func (k DropKind) Glyph() rune {
	switch k {
	case DropStar:
		return '*'
	case DropDebris:
		return '▓'
	case DropShield:
		return '◈'
	default:
		return '?'
	}
}

// Drop is a single falling object in world coordinates.
type Drop struct {
	entity.Object
	Kind DropKind
}

// Spawner spawns and moves falling objects on fixed, seeded intervals so a
// given seed always produces the same run.
type Spawner struct {
	drops []Drop
	rng   *rand.Rand
	cfg   config.SpawnerConfig

	worldW, worldH float64
	dropSize       float64

	starClock   float64
	debrisClock float64
	shieldClock float64
}

// NewSpawner creates a spawner over the given world dimensions.
func NewSpawner(seed int64, worldW, worldH float64, cfg config.SpawnerConfig) *Spawner {
	return &Spawner{
		drops:    make([]Drop, 0, 16),
		rng:      rand.New(rand.NewSource(seed)),
		cfg:      cfg,
		worldW:   worldW,
		worldH:   worldH,
		dropSize: 24, // world px, slightly smaller than the ship
	}
}

// Update moves drops, removes those past the bottom edge and spawns new
// ones as their interval clocks elapse.
func (sp *Spawner) Update(dt float64) {
	for i := range sp.drops {
		sp.drops[i].Object.Update(dt)
	}

	// Drop everything that has fallen off the world
	alive := sp.drops[:0]
	for _, d := range sp.drops {
		if d.Y < sp.worldH {
			alive = append(alive, d)
		}
	}
	sp.drops = alive

	sp.starClock += dt
	if sp.cfg.StarInterval > 0 && sp.starClock >= sp.cfg.StarInterval {
		sp.starClock -= sp.cfg.StarInterval
		sp.spawn(DropStar)
	}

	sp.debrisClock += dt
	if sp.cfg.DebrisInterval > 0 && sp.debrisClock >= sp.cfg.DebrisInterval {
		sp.debrisClock -= sp.cfg.DebrisInterval
		sp.spawn(DropDebris)
	}

	sp.shieldClock += dt
	if sp.cfg.ShieldInterval > 0 && sp.shieldClock >= sp.cfg.ShieldInterval {
		sp.shieldClock -= sp.cfg.ShieldInterval
		sp.spawn(DropShield)
	}
}

// spawn places a new drop just above the top edge at a random column.
func (sp *Spawner) spawn(kind DropKind) {
	x := sp.rng.Float64() * (sp.worldW - sp.dropSize)
	sp.drops = append(sp.drops, Drop{
		Object: entity.Object{
			X:  x,
			Y:  -sp.dropSize,
			W:  sp.dropSize,
			H:  sp.dropSize,
			VY: sp.cfg.FallSpeed,
		},
		Kind: kind,
	})
}

// Drops returns the live falling objects.
func (sp *Spawner) Drops() []Drop {
	return sp.drops
}

// Collect removes and returns every drop overlapping the given object.
func (sp *Spawner) Collect(target *entity.Object) []Drop {
	var hit []Drop
	remaining := sp.drops[:0]
	for _, d := range sp.drops {
		if d.Object.Overlaps(target) {
			hit = append(hit, d)
			continue
		}
		remaining = append(remaining, d)
	}
	sp.drops = remaining
	return hit
}
