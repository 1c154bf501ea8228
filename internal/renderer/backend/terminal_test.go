package backend

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/xlsheet/internal/renderer/core"
)

func TestConvertMouseButton(t *testing.T) {
	tests := []struct {
		in   tcell.ButtonMask
		want MouseButton
	}{
		{tcell.ButtonNone, MouseNone},
		{tcell.Button1, MouseLeft},
		{tcell.Button2, MouseRight},
		{tcell.Button3, MouseMiddle},
		{tcell.WheelUp, MouseWheelUp},
	}

	for _, tt := range tests {
		if got := convertMouseButton(tt.in); got != tt.want {
			t.Errorf("convertMouseButton(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestConvertKeyRoundTrip(t *testing.T) {
	keys := []Key{KeyEscape, KeyEnter, KeyTab, KeyBackspace, KeyDelete, KeyLeft, KeyRight, KeyCtrlC, KeyCtrlQ}
	for _, k := range keys {
		if got := convertKey(convertToTcellKey(k)); got != k {
			t.Errorf("round trip of %v gave %v", k, got)
		}
	}
}

func TestConvertStyleRoundTrip(t *testing.T) {
	s := core.DefaultStyle().
		WithForeground(core.ColorFromRGB(10, 20, 30)).
		WithBackground(core.ColorFromRGB(200, 100, 50)).
		Bold().
		Reverse()

	got := convertTcellStyle(convertStyle(s))
	if !got.Equals(s) {
		t.Errorf("style round trip mismatch: %+v vs %+v", got, s)
	}

	def := convertTcellStyle(convertStyle(core.DefaultStyle()))
	if !def.Equals(core.DefaultStyle()) {
		t.Errorf("default style round trip mismatch: %+v", def)
	}
}

func TestConvertEventMouse(t *testing.T) {
	ev := convertEvent(tcell.NewEventMouse(4, 7, tcell.Button2, tcell.ModCtrl))
	if ev.Type != EventMouse || ev.MouseX != 4 || ev.MouseY != 7 {
		t.Fatalf("unexpected event %+v", ev)
	}
	if ev.MouseButton != MouseRight || !ev.Mod.Has(ModCtrl) {
		t.Errorf("unexpected button/mod %+v", ev)
	}
}
