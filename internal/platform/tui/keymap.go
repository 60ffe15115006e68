package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/galaxy-runner/internal/core"
)

// TranslateKey converts a terminal key press into scene events. Printable
// runes produce both a key intent (wasd navigation, p pause, b back) and a
// text event; the active scene consumes whichever applies and ignores the
// other, so typing "p" into the name box works while "p" in a run pauses.
func TranslateKey(msg tea.KeyMsg) []core.Event {
	switch msg.Type {
	case tea.KeyUp:
		return []core.Event{core.KeyEvent(core.KeyUp)}
	case tea.KeyDown:
		return []core.Event{core.KeyEvent(core.KeyDown)}
	case tea.KeyLeft:
		return []core.Event{core.KeyEvent(core.KeyLeft)}
	case tea.KeyRight:
		return []core.Event{core.KeyEvent(core.KeyRight)}
	case tea.KeyEnter:
		return []core.Event{core.KeyEvent(core.KeyEnter)}
	case tea.KeyEscape:
		return []core.Event{core.KeyEvent(core.KeyEscape)}
	case tea.KeyBackspace:
		return []core.Event{core.KeyEvent(core.KeyBackspace)}
	case tea.KeySpace:
		return []core.Event{core.KeyEvent(core.KeySpace), core.TextEvent(" ")}
	case tea.KeyRunes:
		var events []core.Event
		for _, r := range msg.Runes {
			switch r {
			case 'w':
				events = append(events, core.KeyEvent(core.KeyUp))
			case 's':
				events = append(events, core.KeyEvent(core.KeyDown))
			case 'a':
				events = append(events, core.KeyEvent(core.KeyLeft))
			case 'd':
				events = append(events, core.KeyEvent(core.KeyRight))
			case 'p':
				events = append(events, core.KeyEvent(core.KeyPause))
			case 'b':
				events = append(events, core.KeyEvent(core.KeyBack))
			}
			events = append(events, core.TextEvent(string(r)))
		}
		return events
	}
	return nil
}

// TranslateMouse converts a left-button press or release into a scene event.
// Some terminals report releases without a button, so releases are accepted
// regardless of button.
func TranslateMouse(msg tea.MouseMsg) (core.Event, bool) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			return core.Event{Kind: core.EventMousePress, X: msg.X, Y: msg.Y}, true
		}
	case tea.MouseActionRelease:
		return core.Event{Kind: core.EventMouseRelease, X: msg.X, Y: msg.Y}, true
	}
	return core.Event{}, false
}
