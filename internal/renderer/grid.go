package renderer

import (
	"github.com/dshills/xlsheet/internal/renderer/core"
	"github.com/dshills/xlsheet/internal/sheet"
	"github.com/dshills/xlsheet/internal/ui"
)

// Class names set on grid elements.
const (
	ClassTable  = "xl-table"
	ClassHeader = "xl-header"
	ClassSort   = "xl-sort"
	ClassCell   = "xl-cell"
	ClassInput  = "xl-input"
	ClassStatus = "xl-status"
)

// SortLabel is the text of each column's sort button.
const SortLabel = "Sort"

// DefaultColumnWidth is used when Grid.ColumnWidth is not positive.
const DefaultColumnWidth = 10

// Grid builds the table element for a store.
// It holds no sheet data; every Render derives the table from the store.
type Grid struct {
	// ColumnWidth is the width of each cell. Cells are separated by one
	// blank column.
	ColumnWidth int

	// OnCellClick and OnCellContextMenu are bound to every data cell
	// container. The event target is the cell's input.
	OnCellClick       ui.Handler
	OnCellContextMenu ui.Handler

	// OnSort is called with the column index of a clicked sort button.
	OnSort func(col int)
}

// Render discards the container's children and builds a fresh table: a
// header row with one sort button per column, then one row of inputs per
// store row. Inputs start disabled and carry their sheet position.
func (g *Grid) Render(container *ui.Element, store *sheet.Store) *ui.Element {
	container.Clear()

	dims := store.Dimensions()
	width := g.columnWidth()
	stride := width + 1

	table := ui.Build(ui.Spec{
		Tag:   ui.TagTable,
		Class: ClassTable,
		Style: &ui.Style{
			Left:   ui.Int(0),
			Top:    ui.Int(0),
			Width:  ui.Int(max(dims.Cols*stride-1, 0)),
			Height: ui.Int(dims.Rows + 1),
		},
	})
	container.Append(table)

	header := table.Append(g.row(0, dims.Cols*stride))
	header.AddClass(ClassHeader)
	for c := range dims.Cols {
		td := header.Append(g.cell(c, stride, width))
		td.Append(ui.Build(ui.Spec{
			Tag:   ui.TagButton,
			Attrs: &ui.Attrs{
				Type: ui.String("button"),
				Text: ui.String(SortLabel),
			},
			Class:    ClassSort,
			Handlers: ui.Handlers{
				ui.EventClick: func(*ui.Event) {
					if g.OnSort != nil {
						g.OnSort(c)
					}
				},
			},
			Style: &ui.Style{Width: ui.Int(width), Height: ui.Int(1)},
		}))
	}

	for r := range dims.Rows {
		tr := table.Append(g.row(r+1, dims.Cols*stride))
		for c := range dims.Cols {
			pos := sheet.NewPosition(r, c)
			td := tr.Append(g.cell(c, stride, width))
			ui.Build(ui.Spec{
				From:     td,
				Class:    ClassCell,
				Handlers: g.cellHandlers(),
			})
			input := td.Append(ui.Build(ui.Spec{
				Tag:   ui.TagInput,
				Attrs: &ui.Attrs{
					Type:     ui.String("text"),
					Value:    ui.String(store.Get(pos)),
					Disabled: ui.Bool(true),
				},
				Class: ClassInput,
				Style: &ui.Style{Width: ui.Int(width), Height: ui.Int(1)},
			}))
			input.Pos = &pos
		}
	}
	return table
}

// CellOrigin returns the screen point of the first character of the cell at
// pos, for a table whose top-left corner is origin.
func (g *Grid) CellOrigin(origin core.ScreenPos, pos sheet.Position) (x, y int) {
	return origin.Col + pos.Col*(g.columnWidth()+1), origin.Row + pos.Row + 1
}

func (g *Grid) columnWidth() int {
	if g.ColumnWidth <= 0 {
		return DefaultColumnWidth
	}
	return g.ColumnWidth
}

func (g *Grid) row(top, width int) *ui.Element {
	return ui.Build(ui.Spec{
		Tag:   ui.TagRow,
		Style: &ui.Style{
			Left:   ui.Int(0),
			Top:    ui.Int(top),
			Width:  ui.Int(width),
			Height: ui.Int(1),
		},
	})
}

func (g *Grid) cell(c, stride, width int) *ui.Element {
	return ui.Build(ui.Spec{
		Tag:   ui.TagCell,
		Style: &ui.Style{
			Left:   ui.Int(c * stride),
			Top:    ui.Int(0),
			Width:  ui.Int(width),
			Height: ui.Int(1),
		},
	})
}

func (g *Grid) cellHandlers() ui.Handlers {
	h := ui.Handlers{}
	if g.OnCellClick != nil {
		h[ui.EventClick] = g.OnCellClick
	}
	if g.OnCellContextMenu != nil {
		h[ui.EventContextMenu] = g.OnCellContextMenu
	}
	return h
}

// CellInput returns the input of a cell container, or el itself when it is a
// positioned input. It returns nil for any other element.
func CellInput(el *ui.Element) *ui.Element {
	if el == nil {
		return nil
	}
	if el.Tag == ui.TagInput && el.Pos != nil {
		return el
	}
	if el.Tag != ui.TagCell {
		return nil
	}
	for _, child := range el.Children() {
		if child.Tag == ui.TagInput && child.Pos != nil {
			return child
		}
	}
	return nil
}
