package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Errorf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X')
	if s.Get(5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", s.Get(5, 5))
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')

	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if s.Get(100, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "hello")

	if got := strings.TrimRight(s.Row(1), " "); got != "  hello" {
		t.Errorf("Row(1) = %q, expected %q", got, "  hello")
	}

	// Clipping at the right edge must not panic
	s.DrawText(18, 2, "overflow")
	if s.Get(19, 2) != 'v' {
		t.Errorf("Get(19, 2) = %q, expected 'v'", s.Get(19, 2))
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(11, 3)
	s.DrawTextCentered(1, "abc")

	if s.Get(4, 1) != 'a' || s.Get(5, 1) != 'b' || s.Get(6, 1) != 'c' {
		t.Errorf("centered text misplaced, row = %q", s.Row(1))
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 5)
	s.DrawBox(NewRect(0, 0, 10, 5))

	if s.Get(0, 0) != '┌' || s.Get(9, 0) != '┐' || s.Get(0, 4) != '└' || s.Get(9, 4) != '┘' {
		t.Error("box corners not drawn")
	}
	if s.Get(5, 0) != '─' || s.Get(0, 2) != '│' {
		t.Error("box edges not drawn")
	}
}

func TestScreenDrawLines(t *testing.T) {
	s := NewScreen(10, 5)

	s.DrawHLine(2, 1, 5, '─')
	for x := 2; x < 7; x++ {
		if got := s.Get(x, 1); got != '─' {
			t.Errorf("Get(%d, 1) = %q, want line rune", x, got)
		}
	}
	if s.Get(1, 1) != ' ' || s.Get(7, 1) != ' ' {
		t.Error("horizontal line leaked past its length")
	}

	s.DrawVLine(8, 0, 4, '│')
	for y := 0; y < 4; y++ {
		if got := s.Get(8, y); got != '│' {
			t.Errorf("Get(8, %d) = %q, want line rune", y, got)
		}
	}
	if s.Get(8, 4) != ' ' {
		t.Error("vertical line leaked past its length")
	}

	// Off-screen segments are clipped silently.
	s.DrawHLine(7, 0, 10, '=')
	if s.Get(9, 0) != '=' {
		t.Error("clipped horizontal line missing on-screen cells")
	}
	s.DrawVLine(0, 3, 10, '|')
	if s.Get(0, 4) != '|' {
		t.Error("clipped vertical line missing on-screen cells")
	}
}

func TestScreenResizePreservesContent(t *testing.T) {
	s := NewScreen(10, 10)
	s.Set(2, 3, 'X')

	s.Resize(20, 20)
	if s.Get(2, 3) != 'X' {
		t.Error("Resize should preserve content in the overlapping region")
	}

	s.Resize(3, 3)
	if s.Width() != 3 || s.Height() != 3 {
		t.Errorf("after shrink, size = %dx%d, expected 3x3", s.Width(), s.Height())
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	expected := "a  \n  b"
	if got := s.String(); got != expected {
		t.Errorf("String() = %q, expected %q", got, expected)
	}
}
