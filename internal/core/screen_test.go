package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 || s.Height() != 24 {
		t.Fatalf("size = %dx%d, expected 80x24", s.Width(), s.Height())
	}
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Fatalf("new screen should be blank, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGetClipping(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColor(5, 5, 'X', ColorRed)
	cell := s.GetCell(5, 5)
	if cell.Rune != 'X' || cell.Color != ColorRed {
		t.Errorf("GetCell(5, 5) = %+v, expected X/red", cell)
	}

	// Out of bounds writes are silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.Get(-1, 0) != ' ' || s.Get(100, 0) != ' ' {
		t.Error("out of bounds Get should return space")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello")

	if !strings.HasPrefix(s.Row(1)[2:], "Hello") {
		t.Errorf("row 1 = %q, expected Hello at x=2", s.Row(1))
	}

	s.DrawText(18, 0, "Hello")
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("text should be clipped at right boundary")
	}
}

func TestScreenDrawTextAligned(t *testing.T) {
	s := NewScreen(20, 3)
	s.DrawTextCentered(0, "Hi", ColorDefault)
	if s.Get(9, 0) != 'H' || s.Get(10, 0) != 'i' {
		t.Errorf("centered text misplaced: %q", s.Row(0))
	}

	s.DrawTextRight(1, "42", ColorYellow)
	if s.Get(17, 1) != '4' || s.Get(18, 1) != '2' {
		t.Errorf("right-aligned text misplaced: %q", s.Row(1))
	}
	if s.GetCell(17, 1).Color != ColorYellow {
		t.Error("right-aligned text lost its colour")
	}
}

func TestScreenDrawSprite(t *testing.T) {
	s := NewScreen(10, 4)
	s.DrawSprite(NewRect(1, 1, 5, 2), []string{"<o>", "/\\"}, ColorGreen)

	if got := s.Row(1)[1:6]; got != "<o><o" {
		t.Errorf("sprite row 0 = %q, expected %q", got, "<o><o")
	}
	if got := s.Row(2)[1:6]; got != "/\\/\\/" {
		t.Errorf("sprite row 1 = %q, expected %q", got, "/\\/\\/")
	}
	if s.Get(0, 1) != ' ' || s.Get(6, 1) != ' ' {
		t.Error("sprite should not draw outside its rect")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(NewRect(1, 1, 5, 4), ColorDefault)

	corners := map[[2]int]rune{
		{1, 1}: '┌',
		{5, 1}: '┐',
		{1, 4}: '└',
		{5, 4}: '┘',
	}
	for pos, want := range corners {
		if got := s.Get(pos[0], pos[1]); got != want {
			t.Errorf("corner at %v = %q, expected %q", pos, got, want)
		}
	}
	for x := 2; x < 5; x++ {
		if s.Get(x, 1) != '─' || s.Get(x, 4) != '─' {
			t.Errorf("horizontal edge missing at x=%d", x)
		}
	}
}

func TestScreenStringAndResize(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA")
	s.DrawText(0, 1, "BBBBB")
	s.DrawText(0, 2, "CCCCC")

	if got := s.String(); got != "AAAAA\nBBBBB\nCCCCC" {
		t.Errorf("String() = %q", got)
	}

	s.Resize(8, 2)
	if s.Width() != 8 || s.Height() != 2 {
		t.Fatalf("after resize %dx%d, expected 8x2", s.Width(), s.Height())
	}
	if s.Row(0) != "        " {
		t.Errorf("resize should clear the buffer, row 0 = %q", s.Row(0))
	}
	if s.Row(-1) != "        " {
		t.Errorf("out of bounds row should be blank, got %q", s.Row(-1))
	}
}
