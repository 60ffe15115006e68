package core

// Key is a semantic key, abstracted from physical key codes so scenes never
// depend on the terminal layer.
type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyEscape
	KeyBackspace
	KeySpace
	KeyBack  // B - back to menu, alternative to Escape
	KeyPause // P - pause toggle during gameplay
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyEnter:
		return "Enter"
	case KeyEscape:
		return "Escape"
	case KeyBackspace:
		return "Backspace"
	case KeySpace:
		return "Space"
	case KeyBack:
		return "Back"
	case KeyPause:
		return "Pause"
	default:
		return "None"
	}
}

// EventKind discriminates input events delivered to scenes.
type EventKind int

const (
	EventKey          EventKind = iota // semantic key press
	EventText                          // printable text input (name entry)
	EventMousePress                    // left button pressed at a cell
	EventMouseRelease                  // left button released at a cell
)

// Event is a single input event. The platform layer produces events once
// per frame in the input phase; scenes consume them in HandleEvent and must
// not sample input anywhere else (in particular not during Render).
type Event struct {
	Kind EventKind
	Key  Key    // valid for EventKey
	Text string // valid for EventText
	X, Y int    // valid for mouse events, in screen cells
}

// KeyEvent builds a semantic key event.
func KeyEvent(k Key) Event {
	return Event{Kind: EventKey, Key: k}
}

// TextEvent builds a text input event.
func TextEvent(s string) Event {
	return Event{Kind: EventText, Text: s}
}

// ClickTracker implements edge-triggered click detection: a click fires only
// when the press and the release both land inside the same rectangle. This
// avoids the repeat-fire a held button would cause with time-based
// debouncing.
type ClickTracker struct {
	pressed bool
	x, y    int
}

// Press records the position of a button press.
func (c *ClickTracker) Press(x, y int) {
	c.pressed = true
	c.x = x
	c.y = y
}

// Release consumes the pending press. It returns true if a press was
// pending and both the press and the release at (x, y) fall inside area.
func (c *ClickTracker) Release(x, y int, area Rect) bool {
	if !c.pressed {
		return false
	}
	c.pressed = false
	return area.Contains(c.x, c.y) && area.Contains(x, y)
}

// PressedIn reports whether a press is pending inside area without
// consuming it.
func (c *ClickTracker) PressedIn(area Rect) bool {
	return c.pressed && area.Contains(c.x, c.y)
}

// Reset drops any pending press.
func (c *ClickTracker) Reset() {
	c.pressed = false
}
