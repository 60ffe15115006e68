package scene

import (
	"github.com/vovakirdan/galaxy-runner/internal/core"
)

// Menu is the shared widget behind the menu-style scenes: an ordered list
// of labels with modulo-wrapping vertical navigation. Enter activates the
// selected item; a pointer click activates the item it lands on regardless
// of the current selection.
type Menu struct {
	items    []string
	selected int
	x, y     int // top-left cell of the first item
	itemW    int
	clicks   core.ClickTracker
}

// NewMenu creates a menu over the given labels. Item boxes are sized to the
// longest label plus padding.
func NewMenu(items []string) *Menu {
	w := 0
	for _, it := range items {
		if len(it) > w {
			w = len(it)
		}
	}
	return &Menu{items: items, itemW: w + 4}
}

// SetOrigin places the first item's top-left cell. Items stack vertically
// with one blank row between them.
func (m *Menu) SetOrigin(x, y int) {
	m.x = x
	m.y = y
}

// Selected returns the index of the highlighted item.
func (m *Menu) Selected() int {
	return m.selected
}

// Next moves the highlight down, wrapping to the top.
func (m *Menu) Next() {
	m.selected = (m.selected + 1) % len(m.items)
}

// Prev moves the highlight up, wrapping to the bottom.
func (m *Menu) Prev() {
	m.selected = (m.selected - 1 + len(m.items)) % len(m.items)
}

// ItemRect returns the bounding box of item i.
func (m *Menu) ItemRect(i int) core.Rect {
	return core.NewRect(m.x, m.y+i*2, m.itemW, 1)
}

// HitTest returns the index of the item containing the cell, or -1.
func (m *Menu) HitTest(x, y int) int {
	for i := range m.items {
		if m.ItemRect(i).Contains(x, y) {
			return i
		}
	}
	return -1
}

// HandleEvent processes navigation and activation. It returns the index of
// the activated item, or -1 when nothing was activated. Clicks are edge
// triggered: press and release must land inside the same item's box.
func (m *Menu) HandleEvent(ev core.Event) int {
	switch ev.Kind {
	case core.EventKey:
		switch ev.Key {
		case core.KeyUp:
			m.Prev()
		case core.KeyDown:
			m.Next()
		case core.KeyEnter:
			return m.selected
		}
	case core.EventMousePress:
		m.clicks.Press(ev.X, ev.Y)
		if i := m.HitTest(ev.X, ev.Y); i >= 0 {
			m.selected = i
		}
	case core.EventMouseRelease:
		for i := range m.items {
			if m.clicks.PressedIn(m.ItemRect(i)) && m.ItemRect(i).Contains(ev.X, ev.Y) {
				m.clicks.Reset()
				m.selected = i
				return i
			}
		}
		m.clicks.Reset()
	}
	return -1
}

// Render draws the items, marking the selection with a pointer.
func (m *Menu) Render(dst *core.Screen) {
	for i, label := range m.items {
		r := m.ItemRect(i)
		prefix := "  "
		if i == m.selected {
			prefix = "> "
		}
		dst.DrawText(r.X, r.Y, prefix+label)
	}
}
