package scene

import (
	"fmt"

	"github.com/vovakirdan/galaxy-runner/internal/core"
	"github.com/vovakirdan/galaxy-runner/internal/storage"
)

// leaderboardLimit is how many rows each tab shows.
const leaderboardLimit = 10

// Leaderboard shows the top scores, one tab per level plus a global tab.
type Leaderboard struct {
	deps Deps
	tabs []string
	tab  int // 0 = global, n = level n
	rows []storage.LeaderboardRow
	err  error
}

// NewLeaderboard opens the score tables on the global tab.
func NewLeaderboard(deps Deps) *Leaderboard {
	l := &Leaderboard{
		deps: deps,
		tabs: []string{"Global", "Level 1", "Level 2", "Level 3"},
	}
	l.reload()
	return l
}

// reload fetches the active tab's rows. A read failure empties the table
// and is shown in place of rows.
func (l *Leaderboard) reload() {
	l.rows, l.err = l.deps.Store.Leaderboard(l.tab, leaderboardLimit)
	if l.err != nil {
		l.deps.Logger.Warn("leaderboard load failed", "tab", l.tabs[l.tab], "err", l.err)
		l.rows = nil
	}
}

// HandleEvent switches tabs with left/right and leaves with Escape or b.
func (l *Leaderboard) HandleEvent(ev core.Event) Transition {
	if ev.Kind != core.EventKey {
		return TransNone
	}
	switch ev.Key {
	case core.KeyLeft:
		l.tab = (l.tab - 1 + len(l.tabs)) % len(l.tabs)
		l.reload()
	case core.KeyRight:
		l.tab = (l.tab + 1) % len(l.tabs)
		l.reload()
	case core.KeyEscape, core.KeyBack:
		return TransStartMenu
	}
	return TransNone
}

// Update is a no-op; the table only changes on input.
func (l *Leaderboard) Update(dt float64) Transition {
	return TransNone
}

// Render draws the tab strip and the ranked rows.
func (l *Leaderboard) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawTextCentered(1, "LEADERBOARD")

	strip := ""
	for i, name := range l.tabs {
		if i == l.tab {
			strip += "[" + name + "] "
		} else {
			strip += " " + name + "  "
		}
	}
	dst.DrawTextCentered(3, strip)

	startY := 5
	if l.err != nil {
		dst.DrawTextCentered(startY, "scores unavailable")
	} else if len(l.rows) == 0 {
		dst.DrawTextCentered(startY, "no scores yet")
	}
	for i, row := range l.rows {
		line := fmt.Sprintf("%2d. %-16s %6d  lvl %d  %3ds",
			i+1, row.PlayerName, row.Score, row.Level, row.ElapsedTime)
		dst.DrawText((dst.Width()-len(line))/2, startY+i, line)
	}

	dst.DrawTextCentered(dst.Height()-2, "left/right: tab  esc: back")
}

// Tab returns the active tab index, 0 meaning global.
func (l *Leaderboard) Tab() int { return l.tab }

// Rows returns the loaded rows of the active tab.
func (l *Leaderboard) Rows() []storage.LeaderboardRow { return l.rows }
