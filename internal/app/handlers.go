package app

import (
	"strconv"
	"strings"

	"github.com/dshills/xlsheet/internal/renderer"
	"github.com/dshills/xlsheet/internal/renderer/backend"
	"github.com/dshills/xlsheet/internal/sheet"
	"github.com/dshills/xlsheet/internal/ui"
)

// menuAction is one entry of the context menu.
type menuAction struct {
	id    string
	label string
	apply func(s *sheet.Store, at sheet.Position)
	done  string

	// drops returns the values a delete is about to discard.
	drops func(s *sheet.Store, at sheet.Position) []string
}

var menuActions = []menuAction{
	{
		id:    "xl-insert-row",
		label: "Insert row",
		apply: func(s *sheet.Store, at sheet.Position) { s.InsertRow(at.Row) },
		done:  "inserted row",
	},
	{
		id:    "xl-insert-column",
		label: "Insert column",
		apply: func(s *sheet.Store, at sheet.Position) { s.InsertColumn(at.Col) },
		done:  "inserted column",
	},
	{
		id:    "xl-delete-row",
		label: "Delete row",
		apply: func(s *sheet.Store, at sheet.Position) { s.DeleteRow(at.Row) },
		done:  "deleted row",
		drops: func(s *sheet.Store, at sheet.Position) []string { return s.Row(at.Row) },
	},
	{
		id:    "xl-delete-column",
		label: "Delete column",
		apply: func(s *sheet.Store, at sheet.Position) { s.DeleteColumn(at.Col) },
		done:  "deleted column",
		drops: func(s *sheet.Store, at sheet.Position) []string { return s.Column(at.Col) },
	},
}

// onCellClick moves a locked cell into editing.
func (c *Controller) onCellClick(ev *ui.Event) {
	if input := renderer.CellInput(ev.CurrentTarget); input != nil {
		c.enableField(input)
	}
}

// enableField unlocks an input, binds its keyup and blur handlers and
// focuses it. Binding replaces any handlers from an earlier edit.
func (c *Controller) enableField(input *ui.Element) {
	ui.Build(ui.Spec{
		From:  input,
		Attrs: &ui.Attrs{Disabled: ui.Bool(false)},
		Handlers: ui.Handlers{
			ui.EventKeyUp: c.populateData,
			ui.EventBlur:  c.disableField,
		},
	})
	input.CaretEnd()
	if c.doc.Focus(input) {
		c.log.Debug("editing %s", input.Pos)
	}
}

// populateData writes the input's value through to the store.
func (c *Controller) populateData(ev *ui.Event) {
	input := ev.Target
	if input == nil || input.Pos == nil {
		return
	}
	c.store.Set(*input.Pos, input.Value)
}

// disableField locks an input again.
func (c *Controller) disableField(ev *ui.Event) {
	ui.Build(ui.Spec{
		From:  ev.Target,
		Attrs: &ui.Attrs{Disabled: ui.Bool(true)},
	})
}

// renderMenu shows the context menu at the pointer and records the cell it
// was opened on.
func (c *Controller) renderMenu(ev *ui.Event) {
	ev.PreventDefault()

	input := renderer.CellInput(ev.Target)
	if input == nil {
		input = renderer.CellInput(ev.CurrentTarget)
	}
	if input == nil {
		return
	}
	target := *input.Pos

	body := c.doc.Body().Rect
	left := min(max(ev.X-menuOffset, 0), max(body.Width()-menuWidth, 0))
	top := min(max(ev.Y-menuOffset, 0), max(body.Height()-len(menuActions), 0))

	ui.Build(ui.Spec{
		From:     c.menu,
		Handlers: ui.Handlers{ui.EventMouseLeave: c.hideMenu},
		Style: &ui.Style{
			Display: ui.DisplayBlock,
			Left:    ui.Int(left),
			Top:     ui.Int(top),
		},
	})
	c.menu.Pos = &target
	c.log.Debug("menu for %s", target)
}

func (c *Controller) hideMenu(*ui.Event) {
	ui.Build(ui.Spec{
		From:  c.menu,
		Style: &ui.Style{Display: ui.DisplayNone},
	})
}

// runMenuAction applies a structural change at the menu's target cell and
// re-renders. A missing or stale target is logged and ignored.
func (c *Controller) runMenuAction(a menuAction) {
	c.hideMenu(nil)

	target := c.menu.Pos
	if target == nil {
		c.log.Warn("%s: no target cell", a.label)
		return
	}
	if !c.store.Dimensions().Contains(*target) {
		c.log.Warn("%s: target %s is outside the sheet", a.label, target)
		return
	}

	if a.drops != nil {
		c.log.Debug("%s at %s drops %q", a.label, target, a.drops(c.store, *target))
	}
	a.apply(c.store, *target)
	c.log.Info("%s at %s", a.done, target)
	c.render(a.done)
}

// sortColumn sorts one column and re-renders.
func (c *Controller) sortColumn(col int) {
	c.store.SortColumn(col)
	c.log.Info("sorted column %d", col)
	c.render("sorted column " + strconv.Itoa(col+1))
}

// submitSize creates a sheet from the size form.
func (c *Controller) submitSize() {
	rows := c.parseSize(IDRows, c.rowsField.Value)
	cols := c.parseSize(IDCols, c.colsField.Value)
	c.CreateSheet(rows, cols)
}

// parseSize reads a size field. Malformed or negative input is zero.
func (c *Controller) parseSize(field, value string) int {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		c.log.Warn("%s: invalid size %q, using 0", field, value)
		return 0
	}
	if n < 0 {
		c.log.Warn("%s: negative size %d, using 0", field, n)
		return 0
	}
	return n
}

func (c *Controller) handleKey(ev backend.Event) error {
	if ev.Key == backend.KeyCtrlC || ev.Key == backend.KeyCtrlQ {
		return ErrQuit
	}

	focused := c.doc.Focused()
	switch ev.Key {
	case backend.KeyEscape:
		if !c.menu.Hidden {
			c.hideMenu(nil)
			return nil
		}
		c.doc.Blur()
		return nil
	case backend.KeyEnter:
		c.doc.Blur()
		if focused == c.rowsField || focused == c.colsField {
			c.submitSize()
		}
		return nil
	case backend.KeyTab:
		if focused == c.rowsField {
			c.doc.Focus(c.colsField)
			return nil
		}
		c.doc.Blur()
		return nil
	}

	if focused == nil || focused.Tag != ui.TagInput {
		return nil
	}

	switch ev.Key {
	case backend.KeyRune:
		focused.InsertText(string(ev.Rune))
	case backend.KeyBackspace:
		focused.DeleteBackward()
	case backend.KeyDelete:
		focused.DeleteForward()
	case backend.KeyLeft:
		focused.MoveCaret(-1)
	case backend.KeyRight:
		focused.MoveCaret(1)
	case backend.KeyHome:
		focused.CaretHome()
	case backend.KeyEnd:
		focused.CaretEnd()
	default:
		return nil
	}
	c.doc.KeyUp(ev.Rune)
	return nil
}

// handleMouse turns pointer reports into presses and motion. A press is a
// report whose button differs from the previous report's.
func (c *Controller) handleMouse(ev backend.Event) {
	x, y := ev.MouseX, ev.MouseY
	prev := c.buttons
	c.buttons = ev.MouseButton

	c.doc.PointerMove(x, y)
	if ev.MouseButton == prev {
		return
	}

	switch ev.MouseButton {
	case backend.MouseLeft:
		c.doc.PointerDown(x, y, ui.ButtonPrimary)
	case backend.MouseRight:
		c.doc.PointerDown(x, y, ui.ButtonSecondary)
	default:
		return
	}
	// The press may have shown or moved elements under the pointer.
	c.doc.PointerMove(x, y)
}
