package backend

import (
	"testing"

	"github.com/dshills/xlsheet/internal/renderer/core"
)

func TestNullBackendInit(t *testing.T) {
	b := NewNullBackend(80, 24)
	if err := b.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	w, h := b.Size()
	if w != 80 || h != 24 {
		t.Errorf("expected size (80, 24), got (%d, %d)", w, h)
	}
}

func TestNullBackendSetGetCell(t *testing.T) {
	b := NewNullBackend(80, 24)
	b.Init()

	cell := core.NewStyledCell('X', core.DefaultStyle().WithForeground(core.ColorRed))
	b.SetCell(10, 5, cell)

	got := b.GetCell(10, 5)
	if !got.Equals(cell) {
		t.Errorf("cell mismatch: expected %+v, got %+v", cell, got)
	}

	// Out of bounds should be ignored/return empty
	b.SetCell(-1, 0, cell)
	b.SetCell(100, 0, cell)

	empty := b.GetCell(-1, 0)
	if !empty.Equals(core.EmptyCell()) {
		t.Error("out of bounds should return empty cell")
	}
}

func TestNullBackendFill(t *testing.T) {
	b := NewNullBackend(80, 24)
	b.Init()

	cell := core.NewStyledCell('.', core.DefaultStyle())
	rect := core.ScreenRect{Top: 5, Left: 10, Bottom: 10, Right: 20}
	b.Fill(rect, cell)

	if got := b.GetCell(15, 7); !got.Equals(cell) {
		t.Error("cell inside rect should be filled")
	}
	if got := b.GetCell(0, 0); got.Equals(cell) {
		t.Error("cell outside rect should not be filled")
	}

	// Negative origins are clipped
	b.Fill(core.ScreenRect{Top: -2, Left: -2, Bottom: 1, Right: 1}, core.NewStyledCell('#', core.DefaultStyle()))
	if got := b.GetCell(0, 0); got.Rune != '#' {
		t.Errorf("expected clipped fill at origin, got %q", got.Rune)
	}
}

func TestNullBackendClear(t *testing.T) {
	b := NewNullBackend(80, 24)
	b.Init()

	b.SetCell(10, 10, core.NewStyledCell('X', core.DefaultStyle()))
	b.SetCell(20, 20, core.NewStyledCell('Y', core.DefaultStyle()))

	b.Clear()

	if got := b.GetCell(10, 10); !got.Equals(core.EmptyCell()) {
		t.Error("clear should reset all cells")
	}
}

func TestNullBackendLineAndText(t *testing.T) {
	b := NewNullBackend(20, 3)
	b.Init()

	for i, r := range "hello" {
		b.SetCell(2+i, 1, core.NewStyledCell(r, core.DefaultStyle()))
	}

	if got := b.Line(1); got != "  hello" {
		t.Errorf("Line(1) = %q", got)
	}
	if got := b.Text(2, 1, 3); got != "hel" {
		t.Errorf("Text = %q", got)
	}
	if got := b.Text(18, 1, 10); got != "  " {
		t.Errorf("Text at edge = %q", got)
	}
	if got := b.Line(5); got != "" {
		t.Errorf("out of range line = %q", got)
	}
}

func TestNullBackendCursor(t *testing.T) {
	b := NewNullBackend(80, 24)
	b.Init()

	b.ShowCursor(15, 10)
	x, y, visible := b.CursorPosition()
	if x != 15 || y != 10 || !visible {
		t.Errorf("cursor position: expected (15, 10, true), got (%d, %d, %v)", x, y, visible)
	}

	b.HideCursor()
	_, _, visible = b.CursorPosition()
	if visible {
		t.Error("cursor should be hidden")
	}
}

func TestNullBackendResize(t *testing.T) {
	b := NewNullBackend(80, 24)
	b.Init()

	b.Resize(100, 40)

	w, h := b.Size()
	if w != 100 || h != 40 {
		t.Errorf("expected size (100, 40), got (%d, %d)", w, h)
	}

	ev := b.PollEvent()
	if ev.Type != EventResize || ev.Width != 100 || ev.Height != 40 {
		t.Errorf("expected resize event, got %+v", ev)
	}
}

func TestNullBackendPostEvent(t *testing.T) {
	b := NewNullBackend(80, 24)
	b.Init()

	b.PostEvent(KeyEvent(KeyEnter))

	got := b.PollEvent()
	if got.Type != EventKey || got.Key != KeyEnter {
		t.Errorf("expected enter key event, got %+v", got)
	}
}

func TestNullBackendShowCount(t *testing.T) {
	b := NewNullBackend(10, 10)
	b.Init()
	b.Show()
	b.Show()
	if b.ShowCount() != 2 {
		t.Errorf("expected 2 shows, got %d", b.ShowCount())
	}
}

func TestModMaskHas(t *testing.T) {
	mod := ModShift | ModCtrl

	if !mod.Has(ModShift) {
		t.Error("should have shift")
	}
	if !mod.Has(ModCtrl) {
		t.Error("should have ctrl")
	}
	if mod.Has(ModAlt) {
		t.Error("should not have alt")
	}
}

func TestEventConstructors(t *testing.T) {
	if ev := RuneEvent('a'); ev.Type != EventKey || ev.Key != KeyRune || ev.Rune != 'a' {
		t.Errorf("unexpected rune event %+v", ev)
	}
	if ev := MouseEvent(3, 4, MouseRight); ev.Type != EventMouse || ev.MouseX != 3 || ev.MouseY != 4 || ev.MouseButton != MouseRight {
		t.Errorf("unexpected mouse event %+v", ev)
	}
}
