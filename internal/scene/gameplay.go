package scene

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/galaxy-runner/internal/config"
	"github.com/vovakirdan/galaxy-runner/internal/core"
	"github.com/vovakirdan/galaxy-runner/internal/entity"
	"github.com/vovakirdan/galaxy-runner/internal/game"
)

// maxNameLen caps the game-over name buffer.
const maxNameLen = 16

// Gameplay runs a single game: the ship, the falling drops, scoring, and
// the game-over score submission sub-state.
type Gameplay struct {
	deps Deps
	cfg  config.GameConfig

	ship  *entity.Ship
	drops *game.Spawner

	paused   bool
	over     bool
	playTime float64

	scoreClock float64 // fractional second toward the next survival tick
	score      int
	stars      int
	combo      int
	maxCombo   int
	level      int

	// game-over name entry
	name      []rune
	nameFocus bool
	clicks    core.ClickTracker

	// last known screen size, for hit-testing the game-over box
	screenW, screenH int
}

// NewGameplay starts a fresh run. The player's stored difficulty shapes the
// spawner; a storage miss falls back to Normal.
func NewGameplay(deps Deps) *Gameplay {
	cfg := deps.Game

	difficulty := config.DifficultyNormal
	if settings, err := deps.Store.GetSettings(deps.PlayerID); err != nil {
		deps.Logger.Warn("cannot load settings, using defaults", "err", err)
	} else if settings != nil {
		difficulty = settings.Difficulty
	}
	config.ApplyDifficulty(&cfg, difficulty)

	shipW := cfg.Ship.Width
	shipH := cfg.Ship.Height
	ship := entity.NewShip(
		(cfg.World.Width-shipW)/2,
		cfg.World.Height-cfg.Ship.BottomOffset-shipH,
		shipW, shipH,
		cfg.Ship.Speed,
		cfg.Ship.Health,
	)

	return &Gameplay{
		deps:    deps,
		cfg:     cfg,
		ship:    ship,
		drops:   game.NewSpawner(deps.Runtime.Seed, cfg.World.Width, cfg.World.Height, cfg.Spawner),
		level:   1,
		screenW: deps.Runtime.ScreenW,
		screenH: deps.Runtime.ScreenH,
	}
}

// HandleEvent dispatches to the run or the game-over sub-state.
func (g *Gameplay) HandleEvent(ev core.Event) Transition {
	if g.over {
		return g.handleGameOver(ev)
	}

	if ev.Kind != core.EventKey {
		return TransNone
	}
	switch ev.Key {
	case core.KeyLeft:
		g.ship.MoveLeft()
	case core.KeyRight:
		g.ship.MoveRight()
	case core.KeyDown:
		g.ship.Stop()
	case core.KeyPause:
		g.paused = !g.paused
	case core.KeyEscape:
		// Abandon the run, nothing is persisted.
		return TransStartMenu
	}
	return TransNone
}

// Update advances the simulation by dt seconds. Nothing moves while paused
// or in game over.
func (g *Gameplay) Update(dt float64) Transition {
	if g.over || g.paused {
		return TransNone
	}

	g.playTime += dt
	g.scoreClock += dt
	for g.scoreClock >= 1 {
		g.scoreClock--
		g.score += g.cfg.Scoring.SurvivalPerSecond
	}

	g.ship.Update(dt)
	g.ship.ClampX(g.cfg.World.Width)
	g.drops.Update(dt)

	for _, d := range g.drops.Collect(&g.ship.Object) {
		switch d.Kind {
		case game.DropStar:
			g.stars++
			g.combo++
			if g.combo > g.maxCombo {
				g.maxCombo = g.combo
			}
			g.score += g.cfg.Scoring.StarPoints * g.combo
		case game.DropShield:
			g.ship.ActivateShield(g.cfg.Shield.Duration)
		case game.DropDebris:
			if g.ship.TakeDamage(g.cfg.Spawner.DebrisDamage) == entity.DamageApplied {
				g.combo = 0
			}
		}
	}

	// A sparse custom config may leave the scoring section zeroed.
	if step := g.cfg.Scoring.LevelStep; step > 0 {
		g.level = 1 + g.score/step
	}

	if !g.ship.Alive() {
		g.enterGameOver()
	}
	return TransNone
}

// enterGameOver freezes the simulation and arms the name entry.
func (g *Gameplay) enterGameOver() {
	g.over = true
	g.paused = true
	g.name = g.name[:0]
	g.nameFocus = true
	g.clicks.Reset()
}

func (g *Gameplay) handleGameOver(ev core.Event) Transition {
	switch ev.Kind {
	case core.EventText:
		if g.nameFocus {
			for _, r := range ev.Text {
				if len(g.name) < maxNameLen {
					g.name = append(g.name, r)
				}
			}
		}
	case core.EventKey:
		switch ev.Key {
		case core.KeyBackspace:
			if g.nameFocus && len(g.name) > 0 {
				g.name = g.name[:len(g.name)-1]
			}
		case core.KeyEnter:
			// Enter confirms only while the name input is active; the save
			// button works either way.
			if g.nameFocus {
				return g.confirm()
			}
		case core.KeyEscape:
			if !g.nameFocus {
				// Leave without saving.
				return TransStartMenu
			}
			g.nameFocus = false
		}
	case core.EventMousePress:
		g.clicks.Press(ev.X, ev.Y)
	case core.EventMouseRelease:
		if g.clicks.Release(ev.X, ev.Y, g.saveRect()) {
			return g.confirm()
		}
		// Clicking the input box focuses it, clicking elsewhere blurs it.
		// The buffer is kept either way.
		g.nameFocus = g.inputRect().Contains(ev.X, ev.Y)
		g.clicks.Reset()
	}
	return TransNone
}

// confirm resolves the name, persists the run best-effort and always leaves
// for the start menu. A storage failure must never trap the player here.
func (g *Gameplay) confirm() Transition {
	name := strings.TrimSpace(string(g.name))
	if name == "" {
		name = "Player"
	}
	g.submit(name)
	return TransStartMenu
}

func (g *Gameplay) submit(name string) {
	st := g.deps.Store
	lg := g.deps.Logger

	player, err := st.GetPlayer(name)
	if err != nil {
		lg.Error("score submission failed", "player", name, "err", err)
		return
	}
	var playerID int64
	if player == nil {
		playerID, err = st.CreatePlayer(name)
		if err != nil {
			lg.Error("score submission failed", "player", name, "err", err)
			return
		}
	} else {
		playerID = player.ID
	}

	elapsed := int(g.playTime)
	if err := st.SaveScore(playerID, g.score, g.level, elapsed, g.stars, g.maxCombo); err != nil {
		lg.Error("score submission failed", "player", name, "err", err)
		return
	}
	lg.Info("score saved", "player", name, "score", g.score, "level", g.level)

	if err := st.UpdateStatistics(playerID, 1, g.stars, g.maxCombo, elapsed); err != nil {
		lg.Warn("statistics update failed", "player", name, "err", err)
	}

	if g.stars > 0 {
		missions, err := st.ActiveMissions()
		if err != nil {
			lg.Warn("mission lookup failed", "err", err)
			return
		}
		for _, m := range missions {
			if err := st.UpdateMissionProgress(m.ID, g.stars); err != nil {
				lg.Warn("mission update failed", "mission", m.ID, "err", err)
			}
		}
	}
}

// Render draws the field, the HUD and, when active, the game-over box.
func (g *Gameplay) Render(dst *core.Screen) {
	g.screenW = dst.Width()
	g.screenH = dst.Height()

	dst.Clear()
	g.renderDrops(dst)
	g.renderShip(dst)
	g.renderHUD(dst)

	if g.over {
		g.renderGameOver(dst)
	} else if g.paused {
		dst.DrawTextCentered(dst.Height()/2, "PAUSED  (p to resume)")
	}
}

func (g *Gameplay) renderDrops(dst *core.Screen) {
	for _, d := range g.drops.Drops() {
		cx := core.WorldToCell(d.X+d.W/2, g.cfg.World.Width, dst.Width())
		cy := core.WorldToCell(d.Y+d.H/2, g.cfg.World.Height, dst.Height())
		dst.Set(cx, cy, d.Kind.Glyph())
	}
}

func (g *Gameplay) renderShip(dst *core.Screen) {
	cx := core.WorldToCell(g.ship.X+g.ship.W/2, g.cfg.World.Width, dst.Width())
	cy := core.WorldToCell(g.ship.Y+g.ship.H/2, g.cfg.World.Height, dst.Height())
	dst.Set(cx-1, cy, '◢')
	dst.Set(cx, cy, '▲')
	dst.Set(cx+1, cy, '◣')
	if g.ship.ShieldActive() {
		dst.Set(cx-2, cy, '(')
		dst.Set(cx+2, cy, ')')
	}
}

func (g *Gameplay) renderHUD(dst *core.Screen) {
	dst.DrawHLine(0, 1, dst.Width(), '─')

	left := fmt.Sprintf(" Score: %d  Level: %d  Stars: %d", g.score, g.level, g.stars)
	if g.combo > 1 {
		left += fmt.Sprintf("  Combo: x%d", g.combo)
	}
	dst.DrawText(1, 0, left)

	// 10-segment health bar.
	filled := g.ship.Health() * 10 / g.ship.MaxHealth()
	bar := strings.Repeat("█", filled) + strings.Repeat("░", 10-filled)
	right := "HP " + bar
	if g.ship.ShieldActive() {
		right = fmt.Sprintf("◈ %.1fs  %s", g.ship.ShieldRemaining(), right)
	}
	dst.DrawText(dst.Width()-len([]rune(right))-1, 0, right)
}

// Game-over box layout. Rects live in screen cells and are derived from the
// last rendered size so clicks can be hit-tested between frames.
func (g *Gameplay) boxRect() core.Rect {
	w, h := 40, 9
	return core.NewRect((g.screenW-w)/2, (g.screenH-h)/2, w, h)
}

func (g *Gameplay) inputRect() core.Rect {
	box := g.boxRect()
	return core.NewRect(box.X+9, box.Y+4, maxNameLen+2, 1)
}

func (g *Gameplay) saveRect() core.Rect {
	box := g.boxRect()
	label := "[ Save & Menu ]"
	return core.NewRect(box.X+(box.W-len(label))/2, box.Y+6, len(label), 1)
}

func (g *Gameplay) renderGameOver(dst *core.Screen) {
	box := g.boxRect()
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	dst.DrawText(box.X+(box.W-9)/2, box.Y+1, "GAME OVER")
	final := fmt.Sprintf("Score: %d   Time: %ds", g.score, int(g.playTime))
	dst.DrawText(box.X+(box.W-len(final))/2, box.Y+2, final)

	input := g.inputRect()
	dst.DrawText(box.X+2, input.Y, "Name:")
	buf := string(g.name)
	cursor := ""
	if g.nameFocus {
		cursor = "_"
	}
	dst.DrawText(input.X, input.Y, buf+cursor)

	save := g.saveRect()
	dst.DrawText(save.X, save.Y, "[ Save & Menu ]")
}

// Over reports whether the run has ended.
func (g *Gameplay) Over() bool { return g.over }

// Score returns the current score.
func (g *Gameplay) Score() int { return g.score }
