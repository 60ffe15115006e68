package scene

import (
	"math/rand"

	"github.com/vovakirdan/galaxy-runner/internal/core"
)

// Starfield layout parameters. The seed is fixed so the backdrop is a
// deterministic arrangement rather than true randomness.
const (
	starfieldSeed  = 42
	starfieldCount = 120
)

type star struct {
	x, y  float64 // world coordinates
	speed float64 // px/s downward drift
}

// starfield is the drifting backdrop shared by the start menu.
type starfield struct {
	stars          []star
	worldW, worldH float64
}

func newStarfield(worldW, worldH float64) *starfield {
	rng := rand.New(rand.NewSource(starfieldSeed))
	stars := make([]star, starfieldCount)
	for i := range stars {
		stars[i] = star{
			x:     rng.Float64() * worldW,
			y:     rng.Float64() * worldH,
			speed: 20 + rng.Float64()*60,
		}
	}
	return &starfield{stars: stars, worldW: worldW, worldH: worldH}
}

func (f *starfield) Update(dt float64) {
	for i := range f.stars {
		f.stars[i].y += f.stars[i].speed * dt
		if f.stars[i].y > f.worldH {
			f.stars[i].y -= f.worldH
		}
	}
}

func (f *starfield) Render(dst *core.Screen) {
	for _, s := range f.stars {
		cx := core.WorldToCell(s.x, f.worldW, dst.Width())
		cy := core.WorldToCell(s.y, f.worldH, dst.Height())
		dst.Set(cx, cy, '·')
	}
}

// Start menu item order matches the transition table.
const (
	menuPlay = iota
	menuLeaderboard
	menuOptions
	menuExit
)

// StartMenu is the entry scene: title, starfield backdrop and the main menu.
type StartMenu struct {
	deps  Deps
	menu  *Menu
	stars *starfield
}

// NewStartMenu builds a fresh start menu. The starfield is regenerated at
// construction, so re-entering the menu always shows the same layout.
func NewStartMenu(deps Deps) *StartMenu {
	m := NewMenu([]string{"Play", "Leaderboard", "Options", "Exit"})
	return &StartMenu{
		deps:  deps,
		menu:  m,
		stars: newStarfield(deps.Game.World.Width, deps.Game.World.Height),
	}
}

// HandleEvent navigates the menu; Escape quits like selecting Exit.
func (s *StartMenu) HandleEvent(ev core.Event) Transition {
	if ev.Kind == core.EventKey && ev.Key == core.KeyEscape {
		return TransQuit
	}
	switch s.menu.HandleEvent(ev) {
	case menuPlay:
		return TransGameplay
	case menuLeaderboard:
		return TransLeaderboard
	case menuOptions:
		return TransOptions
	case menuExit:
		return TransQuit
	}
	return TransNone
}

// Update drifts the starfield.
func (s *StartMenu) Update(dt float64) Transition {
	s.stars.Update(dt)
	return TransNone
}

// Render draws the backdrop, title and menu.
func (s *StartMenu) Render(dst *core.Screen) {
	dst.Clear()
	s.stars.Render(dst)

	title := "G A L A X Y   R U N N E R"
	dst.DrawTextCentered(dst.Height()/4, title)
	dst.DrawTextCentered(dst.Height()/4+1, "an endless flight through the debris field")

	menuX := (dst.Width() - 16) / 2
	menuY := dst.Height()/2 - 2
	s.menu.SetOrigin(menuX, menuY)
	s.menu.Render(dst)

	dst.DrawTextCentered(dst.Height()-2, "arrows: move  enter: select  esc: quit")
}
