package ui

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Graphemes splits s into user-perceived characters.
func Graphemes(s string) []string {
	var out []string
	state := -1
	for s != "" {
		var cluster string
		cluster, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		out = append(out, cluster)
	}
	return out
}

// InsertText inserts s at the caret of an input element. The caret ends up
// after the inserted text, even when s joins the character before it.
func (e *Element) InsertText(s string) {
	clusters := Graphemes(e.Value)
	caret := e.clampCaret(len(clusters))

	head := strings.Join(clusters[:caret], "") + s
	e.Value = head + strings.Join(clusters[caret:], "")
	e.Caret = uniseg.GraphemeClusterCount(head)
}

// DeleteBackward removes the character before the caret.
func (e *Element) DeleteBackward() {
	clusters := Graphemes(e.Value)
	caret := e.clampCaret(len(clusters))
	if caret == 0 {
		return
	}
	e.Value = strings.Join(clusters[:caret-1], "") + strings.Join(clusters[caret:], "")
	e.Caret = caret - 1
}

// DeleteForward removes the character after the caret.
func (e *Element) DeleteForward() {
	clusters := Graphemes(e.Value)
	caret := e.clampCaret(len(clusters))
	if caret >= len(clusters) {
		return
	}
	e.Value = strings.Join(clusters[:caret], "") + strings.Join(clusters[caret+1:], "")
	e.Caret = caret
}

// MoveCaret moves the caret by delta characters, clamped to the value.
func (e *Element) MoveCaret(delta int) {
	n := uniseg.GraphemeClusterCount(e.Value)
	e.Caret = e.clampCaret(n) + delta
	e.Caret = e.clampCaret(n)
}

// CaretHome moves the caret to the start of the value.
func (e *Element) CaretHome() {
	e.Caret = 0
}

// CaretEnd moves the caret past the end of the value.
func (e *Element) CaretEnd() {
	e.Caret = uniseg.GraphemeClusterCount(e.Value)
}

func (e *Element) clampCaret(n int) int {
	return min(max(e.Caret, 0), n)
}
