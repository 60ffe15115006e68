package scene

import (
	"fmt"

	"github.com/vovakirdan/galaxy-runner/internal/config"
	"github.com/vovakirdan/galaxy-runner/internal/core"
)

const (
	optVolume = iota
	optDifficulty
	optBack
)

var difficulties = []string{
	config.DifficultyEasy,
	config.DifficultyNormal,
	config.DifficultyHard,
}

// Options edits the active player's settings. Every change is written
// through immediately; storage failures are logged and the in-memory value
// stands for the rest of the session.
type Options struct {
	deps       Deps
	menu       *Menu
	volume     int
	difficulty string
}

// NewOptions loads the stored settings, falling back to defaults when the
// row is missing or the read fails.
func NewOptions(deps Deps) *Options {
	o := &Options{
		deps:       deps,
		menu:       NewMenu([]string{"Volume", "Difficulty", "Back"}),
		volume:     50,
		difficulty: config.DifficultyNormal,
	}
	if settings, err := deps.Store.GetSettings(deps.PlayerID); err != nil {
		deps.Logger.Warn("cannot load settings, using defaults", "err", err)
	} else if settings != nil {
		o.volume = settings.Volume
		o.difficulty = settings.Difficulty
	}
	return o
}

// HandleEvent: Enter or click on an item cycles its value (Back leaves),
// Escape leaves directly.
func (o *Options) HandleEvent(ev core.Event) Transition {
	if ev.Kind == core.EventKey && ev.Key == core.KeyEscape {
		return TransStartMenu
	}
	switch o.menu.HandleEvent(ev) {
	case optVolume:
		o.volume += 10
		if o.volume > 100 {
			o.volume = 0
		}
		o.persist(&o.volume, nil)
	case optDifficulty:
		o.difficulty = nextDifficulty(o.difficulty)
		o.persist(nil, &o.difficulty)
	case optBack:
		return TransStartMenu
	}
	return TransNone
}

func nextDifficulty(current string) string {
	for i, d := range difficulties {
		if d == current {
			return difficulties[(i+1)%len(difficulties)]
		}
	}
	return config.DifficultyNormal
}

func (o *Options) persist(volume *int, difficulty *string) {
	if err := o.deps.Store.UpdateSettings(o.deps.PlayerID, volume, difficulty); err != nil {
		o.deps.Logger.Warn("settings save failed", "err", err)
	}
}

// Update is a no-op.
func (o *Options) Update(dt float64) Transition {
	return TransNone
}

// Render draws the menu with the current values appended.
func (o *Options) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawTextCentered(dst.Height()/4, "OPTIONS")

	menuX := (dst.Width() - 24) / 2
	menuY := dst.Height()/2 - 2
	o.menu.SetOrigin(menuX, menuY)
	o.menu.Render(dst)

	dst.DrawText(menuX+14, o.menu.ItemRect(optVolume).Y, fmt.Sprintf("%3d", o.volume))
	dst.DrawText(menuX+14, o.menu.ItemRect(optDifficulty).Y, o.difficulty)

	dst.DrawTextCentered(dst.Height()-2, "enter: change  esc: back")
}

// Volume returns the in-memory volume value.
func (o *Options) Volume() int { return o.volume }

// Difficulty returns the in-memory difficulty name.
func (o *Options) Difficulty() string { return o.difficulty }
