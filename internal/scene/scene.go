// Package scene implements the game's state machine: start menu, gameplay,
// leaderboard and options. Exactly one scene is active at a time; the
// Director swaps the current scene wholesale on transition and discards the
// old one.
package scene

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/galaxy-runner/internal/config"
	"github.com/vovakirdan/galaxy-runner/internal/core"
	"github.com/vovakirdan/galaxy-runner/internal/storage"
)

// Transition is a scene's request to the Director.
type Transition int

const (
	// TransNone keeps the current scene.
	TransNone Transition = iota
	// TransStartMenu switches to a fresh start menu.
	TransStartMenu
	// TransGameplay starts a new run.
	TransGameplay
	// TransLeaderboard opens the score tables.
	TransLeaderboard
	// TransOptions opens the settings editor.
	TransOptions
	// TransQuit terminates the program.
	TransQuit
)

// Scene is one state of the game. HandleEvent records input intents,
// Update advances simulation by dt seconds, Render draws into the screen
// buffer. Only HandleEvent and Update may request a transition; Render is
// side-effect free.
type Scene interface {
	HandleEvent(ev core.Event) Transition
	Update(dt float64) Transition
	Render(dst *core.Screen)
}

// Store is the slice of the persistence layer the scenes use.
type Store interface {
	GetPlayer(name string) (*storage.Player, error)
	CreatePlayer(name string) (int64, error)
	SaveScore(playerID int64, score, level, elapsedTime, stars, maxCombo int) error
	UpdateStatistics(playerID int64, games, stars, bestCombo, bestTime int) error
	ActiveMissions() ([]storage.Mission, error)
	UpdateMissionProgress(missionID int64, delta int) error
	Leaderboard(level, limit int) ([]storage.LeaderboardRow, error)
	GetSettings(playerID int64) (*storage.Settings, error)
	UpdateSettings(playerID int64, volume *int, difficulty *string) error
}

// Deps carries everything scenes need; the Director injects it into each
// scene it constructs.
type Deps struct {
	Store    Store
	Logger   *log.Logger
	Runtime  core.RuntimeConfig
	Game     config.GameConfig
	PlayerID int64 // settings owner, defaults to the first player
}

// Director owns the active scene and applies transitions synchronously
// within the call that produced them.
type Director struct {
	deps    Deps
	current Scene
	done    bool
}

// NewDirector creates a Director positioned at the start menu.
func NewDirector(deps Deps) *Director {
	if deps.PlayerID == 0 {
		deps.PlayerID = 1
	}
	return &Director{
		deps:    deps,
		current: NewStartMenu(deps),
	}
}

// HandleEvent forwards an event to the active scene. Returns true once the
// machine has terminated.
func (d *Director) HandleEvent(ev core.Event) bool {
	if d.done {
		return true
	}
	d.apply(d.current.HandleEvent(ev))
	return d.done
}

// Update advances the active scene by dt seconds. Returns true once the
// machine has terminated.
func (d *Director) Update(dt float64) bool {
	if d.done {
		return true
	}
	d.apply(d.current.Update(dt))
	return d.done
}

// Render draws the active scene.
func (d *Director) Render(dst *core.Screen) {
	d.current.Render(dst)
}

// Done reports whether a quit transition has been applied.
func (d *Director) Done() bool {
	return d.done
}

// Current exposes the active scene for inspection.
func (d *Director) Current() Scene {
	return d.current
}

func (d *Director) apply(t Transition) {
	switch t {
	case TransNone:
	case TransStartMenu:
		d.current = NewStartMenu(d.deps)
	case TransGameplay:
		d.current = NewGameplay(d.deps)
	case TransLeaderboard:
		d.current = NewLeaderboard(d.deps)
	case TransOptions:
		d.current = NewOptions(d.deps)
	case TransQuit:
		d.done = true
	}
}
