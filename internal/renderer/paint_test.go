package renderer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/xlsheet/internal/renderer/backend"
	"github.com/dshills/xlsheet/internal/sheet"
	"github.com/dshills/xlsheet/internal/ui"
)

func newScreen(t *testing.T, w, h int) (*backend.NullBackend, *ui.Document) {
	t.Helper()
	b := backend.NewNullBackend(w, h)
	require.NoError(t, b.Init())
	return b, ui.NewDocument(w, h)
}

func TestPaintGrid(t *testing.T) {
	b, doc := newScreen(t, 40, 6)
	store := sheet.NewStore(2, 2)
	store.Set(sheet.NewPosition(0, 0), "3")
	store.Set(sheet.NewPosition(1, 1), "hello world")

	g := &Grid{ColumnWidth: 6}
	g.Render(doc.Body(), store)

	p := NewPainter(DefaultTheme())
	p.Paint(b, doc)

	assert.Equal(t, " Sort   Sort", b.Line(0))
	assert.Equal(t, "3", b.Line(1))
	assert.Equal(t, "hello", b.Text(7, 2, 5))
	assert.Equal(t, "hello ", b.Text(7, 2, 6))
	assert.Equal(t, 1, b.ShowCount())

	_, _, visible := b.CursorPosition()
	assert.False(t, visible)

	theme := p.Theme()
	assert.True(t, b.GetCell(0, 1).Style.Equals(theme.Locked))
	assert.True(t, b.GetCell(1, 0).Style.Equals(theme.Button))
}

func TestPaintFocusedInput(t *testing.T) {
	b, doc := newScreen(t, 40, 4)
	store := sheet.NewStore(1, 1)
	store.Set(sheet.NewPosition(0, 0), "abc")

	table := (&Grid{ColumnWidth: 6}).Render(doc.Body(), store)
	in := inputs(table)[0]
	in.Disabled = false
	require.True(t, doc.Focus(in))

	p := NewPainter(DefaultTheme())
	p.Paint(b, doc)

	x, y, visible := b.CursorPosition()
	assert.True(t, visible)
	assert.Equal(t, 3, x)
	assert.Equal(t, 1, y)
	assert.True(t, b.GetCell(0, 1).Style.Equals(p.Theme().Editing))
}

func TestPaintInputScrollsToCaret(t *testing.T) {
	b, doc := newScreen(t, 20, 2)
	in := doc.Body().Append(ui.Build(ui.Spec{
		Tag:   ui.TagInput,
		Attrs: &ui.Attrs{Value: ui.String("abcdefgh")},
		Style: &ui.Style{Left: ui.Int(0), Top: ui.Int(0), Width: ui.Int(4), Height: ui.Int(1)},
	}))
	require.True(t, doc.Focus(in))

	NewPainter(DefaultTheme()).Paint(b, doc)

	assert.Equal(t, "fgh ", b.Text(0, 0, 4))
	x, _, _ := b.CursorPosition()
	assert.Equal(t, 3, x)

	in.CaretHome()
	NewPainter(DefaultTheme()).Paint(b, doc)
	assert.Equal(t, "abcd", b.Text(0, 0, 4))
	x, _, _ = b.CursorPosition()
	assert.Equal(t, 0, x)
}

func TestPaintCaretStepsOverClusters(t *testing.T) {
	b, doc := newScreen(t, 20, 2)
	in := doc.Body().Append(ui.Build(ui.Spec{
		Tag:   ui.TagInput,
		Attrs: &ui.Attrs{Value: ui.String("🇯🇵e\u0301")},
		Style: &ui.Style{Left: ui.Int(0), Top: ui.Int(0), Width: ui.Int(8), Height: ui.Int(1)},
	}))
	require.True(t, doc.Focus(in))
	p := NewPainter(DefaultTheme())

	p.Paint(b, doc)
	x, _, _ := b.CursorPosition()
	assert.Equal(t, 3, x)

	in.MoveCaret(-1)
	p.Paint(b, doc)
	x, _, _ = b.CursorPosition()
	assert.Equal(t, 2, x)

	in.MoveCaret(-1)
	p.Paint(b, doc)
	x, _, _ = b.CursorPosition()
	assert.Equal(t, 0, x)
}

func TestPaintSkipsHidden(t *testing.T) {
	b, doc := newScreen(t, 20, 4)
	menu := doc.Body().Append(ui.Build(ui.Spec{
		Tag:   ui.TagMenu,
		Style: &ui.Style{Left: ui.Int(2), Top: ui.Int(1), Width: ui.Int(10), Height: ui.Int(2)},
	}))
	menu.Append(ui.Build(ui.Spec{
		Tag:   ui.TagItem,
		Attrs: &ui.Attrs{Text: ui.String("Insert row")},
		Style: &ui.Style{Left: ui.Int(0), Top: ui.Int(0), Width: ui.Int(10), Height: ui.Int(1)},
	}))

	p := NewPainter(DefaultTheme())
	p.Paint(b, doc)
	assert.Equal(t, "   Insert ro", b.Line(1))

	doc.PointerMove(4, 1)
	p.Paint(b, doc)
	assert.True(t, b.GetCell(4, 1).Style.Equals(p.Theme().MenuHover))
	assert.True(t, b.GetCell(4, 2).Style.Equals(p.Theme().Menu))

	ui.Build(ui.Spec{From: menu, Style: &ui.Style{Display: ui.DisplayNone}})
	p.Paint(b, doc)
	assert.Empty(t, b.Line(1))
}

func TestPaintStatusAndLabels(t *testing.T) {
	b, doc := newScreen(t, 30, 3)
	doc.Body().Append(ui.Build(ui.Spec{
		Tag:   ui.TagLabel,
		Attrs: &ui.Attrs{Text: ui.String("Rows")},
		Style: &ui.Style{Left: ui.Int(0), Top: ui.Int(0), Width: ui.Int(5), Height: ui.Int(1)},
	}))
	doc.Body().Append(ui.Build(ui.Spec{
		Tag:   ui.TagDiv,
		Attrs: &ui.Attrs{Text: ui.String("2 x 2 sheet")},
		Class: ClassStatus,
		Style: &ui.Style{Left: ui.Int(0), Top: ui.Int(2), Width: ui.Int(30), Height: ui.Int(1)},
	}))

	p := NewPainter(DefaultTheme())
	p.Paint(b, doc)

	assert.Equal(t, "Rows", b.Line(0))
	assert.Equal(t, "2 x 2 sheet", b.Line(2))
	assert.True(t, b.GetCell(0, 2).Style.Equals(p.Theme().Status))
	assert.True(t, b.GetCell(0, 0).Style.Equals(p.Theme().Label))
}

func TestPaintClipsToScreen(t *testing.T) {
	b, doc := newScreen(t, 10, 3)
	(&Grid{ColumnWidth: 6}).Render(doc.Body(), sheet.NewStore(5, 5))

	assert.NotPanics(t, func() {
		NewPainter(DefaultTheme()).Paint(b, doc)
	})
	assert.Equal(t, " Sort   So", b.Line(0))
}
