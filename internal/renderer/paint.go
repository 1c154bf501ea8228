package renderer

import (
	"strings"

	"github.com/dshills/xlsheet/internal/renderer/backend"
	"github.com/dshills/xlsheet/internal/renderer/core"
	"github.com/dshills/xlsheet/internal/ui"
)

// Painter draws a document onto a backend.
type Painter struct {
	theme Theme
}

// NewPainter creates a painter using theme.
func NewPainter(theme Theme) *Painter {
	return &Painter{theme: theme}
}

// Theme returns the painter's theme.
func (p *Painter) Theme() Theme {
	return p.theme
}

// Paint redraws the whole screen from doc. Hidden elements and their
// subtrees are skipped. The cursor is shown at the caret of the focused
// input, if any.
func (p *Painter) Paint(b backend.Backend, doc *ui.Document) {
	width, height := b.Size()
	screen := core.RectFromSize(0, 0, height, width)
	b.Fill(screen, core.NewStyledCell(' ', p.theme.Base))

	cursorX, cursorY, cursor := 0, 0, false
	focused := doc.Focused()

	doc.Body().Walk(func(el *ui.Element) bool {
		if el.Hidden {
			return false
		}
		rect := el.AbsRect()
		if rect.Intersection(screen).IsEmpty() {
			return true
		}

		switch el.Tag {
		case ui.TagRow:
			if el.HasClass(ClassHeader) {
				b.Fill(rect, core.NewStyledCell(' ', p.theme.Header))
			}
		case ui.TagButton:
			p.fill(b, rect, p.theme.Button)
			text := core.Truncate(el.Text, rect.Width())
			pad := (rect.Width() - core.StringWidth(text)) / 2
			p.drawText(b, rect.Left+pad, rect.Top, rect.Width()-pad, text, p.theme.Button)
		case ui.TagInput:
			style := p.theme.Locked
			if !el.Disabled {
				style = p.theme.Editing
			}
			p.fill(b, rect, style)
			offset := p.drawInput(b, el, rect, style, el == focused)
			if el == focused {
				cursorX, cursorY, cursor = rect.Left+offset, rect.Top, true
			}
		case ui.TagLabel:
			p.drawText(b, rect.Left, rect.Top, rect.Width(), el.Text, p.theme.Label)
		case ui.TagMenu:
			p.fill(b, rect, p.theme.Menu)
		case ui.TagItem:
			style := p.theme.Menu
			if doc.Hovered(el) {
				style = p.theme.MenuHover
			}
			p.fill(b, rect, style)
			p.drawText(b, rect.Left+1, rect.Top, rect.Width()-1, el.Text, style)
		default:
			if el.Text != "" {
				style := p.theme.Base
				if el.HasClass(ClassStatus) {
					style = p.theme.Status
				}
				p.drawText(b, rect.Left, rect.Top, rect.Width(), el.Text, style)
			}
		}
		return true
	})

	if cursor {
		b.ShowCursor(cursorX, cursorY)
	} else {
		b.HideCursor()
	}
	b.Show()
}

// drawInput draws the input's value and returns the caret's offset from the
// field's left edge. A focused field scrolls so the caret stays inside it.
func (p *Painter) drawInput(b backend.Backend, el *ui.Element, rect core.ScreenRect, style core.Style, focused bool) int {
	clusters := ui.Graphemes(el.Value)
	caret := min(max(el.Caret, 0), len(clusters))
	width := rect.Width()

	start := 0
	for focused && start < caret && core.StringWidth(strings.Join(clusters[start:caret], "")) >= width {
		start++
	}
	p.drawText(b, rect.Left, rect.Top, width, strings.Join(clusters[start:], ""), style)
	return core.StringWidth(strings.Join(clusters[start:caret], ""))
}

func (p *Painter) fill(b backend.Backend, rect core.ScreenRect, style core.Style) {
	b.Fill(rect, core.NewStyledCell(' ', style))
}

// drawText writes s at (x, y), cut to width display columns.
func (p *Painter) drawText(b backend.Backend, x, y, width int, s string, style core.Style) {
	if width <= 0 {
		return
	}
	for _, cell := range core.CellsFromString(core.Truncate(s, width), style) {
		b.SetCell(x, y, cell)
		x++
	}
}
