// Package app runs the sheet: it owns the store and the element tree, wires
// the event handlers and drives the terminal event loop.
package app

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/google/uuid"

	"github.com/dshills/xlsheet/internal/config"
	"github.com/dshills/xlsheet/internal/renderer"
	"github.com/dshills/xlsheet/internal/renderer/backend"
	"github.com/dshills/xlsheet/internal/renderer/core"
	"github.com/dshills/xlsheet/internal/sheet"
	"github.com/dshills/xlsheet/internal/ui"
)

// Element ids.
const (
	IDRows      = "xl-rows"
	IDCols      = "xl-cols"
	IDCreate    = "xl-create"
	IDWorkspace = "xl-workspace"
	IDMenu      = "xl-menu"
	IDStatus    = "xl-status"
)

// Layout constants.
const (
	workspaceTop = 2
	menuWidth    = 16
	menuOffset   = 2
	fieldWidth   = 6
)

// Options configures the controller.
type Options struct {
	// Backend is the display. Required.
	Backend backend.Backend

	// Config supplies the initial size, column width and theme.
	// Defaults to config.Default().
	Config *config.Config

	// Logger receives diagnostics. Defaults to NullLogger.
	Logger *Logger
}

// Controller owns a sheet and its on-screen representation.
type Controller struct {
	backend backend.Backend
	cfg     *config.Config
	baseLog *Logger
	log     *Logger

	store   *sheet.Store
	sheetID uuid.UUID

	doc       *ui.Document
	grid      *renderer.Grid
	painter   *renderer.Painter
	workspace *ui.Element
	menu      *ui.Element
	rowsField *ui.Element
	colsField *ui.Element
	create    *ui.Element
	status    *ui.Element

	// buttons is the mouse button state of the last mouse event.
	buttons     backend.MouseButton
	initialized bool
}

// New creates a controller. The backend is not touched until Init.
func New(opts Options) (*Controller, error) {
	if opts.Backend == nil {
		return nil, ErrNoBackend
	}
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	logger := opts.Logger
	if logger == nil {
		logger = NullLogger
	}

	theme, err := renderer.NewTheme(cfg.Theme)
	if err != nil {
		return nil, fmt.Errorf("controller: %w", err)
	}

	c := &Controller{
		backend: opts.Backend,
		cfg:     cfg,
		baseLog: logger.WithComponent("sheet"),
		store:   sheet.NewStore(0, 0),
		painter: renderer.NewPainter(theme),
	}
	c.log = c.baseLog
	c.grid = &renderer.Grid{
		ColumnWidth:       cfg.Sheet.ColumnWidth,
		OnCellClick:       c.onCellClick,
		OnCellContextMenu: c.renderMenu,
		OnSort:            c.sortColumn,
	}
	return c, nil
}

// Init starts the backend, builds the page and creates the initial sheet.
func (c *Controller) Init() error {
	if c.initialized {
		return nil
	}
	if err := c.backend.Init(); err != nil {
		return &InitError{Component: "backend", Err: err}
	}
	c.initialized = true

	width, height := c.backend.Size()
	c.doc = ui.NewDocument(width, height)
	c.buildPage()
	c.layout(width, height)

	c.CreateSheet(c.cfg.Sheet.Rows, c.cfg.Sheet.Cols)
	c.paint()
	return nil
}

// Run initializes the controller and processes events until the user quits.
func (c *Controller) Run() error {
	if err := c.Init(); err != nil {
		return err
	}
	defer c.backend.Shutdown()

	for {
		ev := c.backend.PollEvent()
		if err := c.HandleEvent(ev); err != nil {
			if errors.Is(err, ErrQuit) {
				c.log.Info("quit")
				return nil
			}
			return err
		}
	}
}

// Quit asks a running event loop to stop.
func (c *Controller) Quit() {
	c.backend.PostEvent(backend.Event{Type: backend.EventKey, Key: backend.KeyCtrlQ, Mod: backend.ModCtrl})
}

// Store returns the sheet's table store.
func (c *Controller) Store() *sheet.Store {
	return c.store
}

// Document returns the element tree. It is nil before Init.
func (c *Controller) Document() *ui.Document {
	return c.doc
}

// SheetID identifies the current sheet in logs.
func (c *Controller) SheetID() uuid.UUID {
	return c.sheetID
}

// CreateSheet replaces the sheet with an empty rows x cols one and renders it.
func (c *Controller) CreateSheet(rows, cols int) {
	c.store.Initialize(rows, cols)
	c.sheetID = uuid.New()
	c.log = c.baseLog.WithField("sheet", c.sheetID)

	dims := c.store.Dimensions()
	c.log.Info("created %d x %d sheet", dims.Rows, dims.Cols)
	c.render("")
}

// HandleEvent processes one backend event and repaints.
// It returns ErrQuit when the user asks to exit.
func (c *Controller) HandleEvent(ev backend.Event) error {
	if c.doc == nil {
		return &InitError{Component: "controller", Err: errors.New("not initialized")}
	}

	switch ev.Type {
	case backend.EventKey:
		if err := c.handleKey(ev); err != nil {
			return err
		}
	case backend.EventMouse:
		c.handleMouse(ev)
	case backend.EventResize:
		c.doc.Resize(ev.Width, ev.Height)
		c.layout(ev.Width, ev.Height)
	default:
		return nil
	}

	c.paint()
	return nil
}

// buildPage creates the size form, the workspace, the status line and the
// hidden context menu.
func (c *Controller) buildPage() {
	body := c.doc.Body()

	body.Append(label("Rows", 0))
	c.rowsField = body.Append(c.sizeField(IDRows, c.cfg.Sheet.Rows, 5))
	body.Append(label("Cols", 12))
	c.colsField = body.Append(c.sizeField(IDCols, c.cfg.Sheet.Cols, 17))
	c.create = body.Append(ui.Build(ui.Spec{
		Tag:   ui.TagButton,
		Attrs: &ui.Attrs{
			ID:   ui.String(IDCreate),
			Type: ui.String("button"),
			Text: ui.String("Create"),
		},
		Handlers: ui.Handlers{ui.EventClick: func(*ui.Event) { c.submitSize() }},
		Style:    &ui.Style{Left: ui.Int(24), Top: ui.Int(0), Width: ui.Int(8), Height: ui.Int(1)},
	}))

	c.workspace = body.Append(ui.Build(ui.Spec{
		Tag:   ui.TagDiv,
		Attrs: &ui.Attrs{ID: ui.String(IDWorkspace)},
	}))

	c.status = body.Append(ui.Build(ui.Spec{
		Tag:   ui.TagDiv,
		Attrs: &ui.Attrs{ID: ui.String(IDStatus)},
		Class: renderer.ClassStatus,
	}))

	c.menu = body.Append(c.buildMenu())
}

func label(text string, left int) *ui.Element {
	return ui.Build(ui.Spec{
		Tag:   ui.TagLabel,
		Attrs: &ui.Attrs{Text: ui.String(text)},
		Style: &ui.Style{Left: ui.Int(left), Top: ui.Int(0), Width: ui.Int(5), Height: ui.Int(1)},
	})
}

func (c *Controller) sizeField(id string, value, left int) *ui.Element {
	return ui.Build(ui.Spec{
		Tag:   ui.TagInput,
		Attrs: &ui.Attrs{
			ID:    ui.String(id),
			Type:  ui.String("number"),
			Value: ui.String(strconv.Itoa(value)),
		},
		Handlers: ui.Handlers{
			ui.EventClick: func(ev *ui.Event) { c.doc.Focus(ev.CurrentTarget) },
		},
		Style: &ui.Style{Left: ui.Int(left), Top: ui.Int(0), Width: ui.Int(fieldWidth), Height: ui.Int(1)},
	})
}

func (c *Controller) buildMenu() *ui.Element {
	menu := ui.Build(ui.Spec{
		Tag:   ui.TagMenu,
		Attrs: &ui.Attrs{ID: ui.String(IDMenu)},
		Style: &ui.Style{
			Display: ui.DisplayNone,
			Width:   ui.Int(menuWidth),
			Height:  ui.Int(len(menuActions)),
		},
	})
	for i, a := range menuActions {
		menu.Append(ui.Build(ui.Spec{
			Tag:      ui.TagItem,
			Attrs:    &ui.Attrs{ID: ui.String(a.id), Text: ui.String(a.label)},
			Handlers: ui.Handlers{ui.EventClick: func(*ui.Event) { c.runMenuAction(a) }},
			Style:    &ui.Style{Left: ui.Int(0), Top: ui.Int(i), Width: ui.Int(menuWidth), Height: ui.Int(1)},
		}))
	}
	return menu
}

// layout sizes the workspace and status line to the screen.
func (c *Controller) layout(width, height int) {
	ui.Build(ui.Spec{
		From:  c.workspace,
		Style: &ui.Style{
			Left:   ui.Int(0),
			Top:    ui.Int(workspaceTop),
			Width:  ui.Int(width),
			Height: ui.Int(max(height-workspaceTop-1, 0)),
		},
	})
	ui.Build(ui.Spec{
		From:  c.status,
		Style: &ui.Style{
			Left:   ui.Int(0),
			Top:    ui.Int(max(height-1, 0)),
			Width:  ui.Int(width),
			Height: ui.Int(1),
		},
	})
}

// render rebuilds the grid from the store and refreshes the status line.
func (c *Controller) render(msg string) {
	if c.workspace == nil {
		return
	}
	c.grid.Render(c.workspace, c.store)

	dims := c.store.Dimensions()
	text := fmt.Sprintf("%d rows x %d cols", dims.Rows, dims.Cols)
	if msg != "" {
		text += "  " + msg
	}
	c.status.Text = text
}

func (c *Controller) paint() {
	c.painter.Paint(c.backend, c.doc)
}

// cellOrigin returns the screen point of the cell at pos.
func (c *Controller) cellOrigin(pos sheet.Position) (x, y int) {
	r := c.workspace.AbsRect()
	return c.grid.CellOrigin(core.NewScreenPos(r.Top, r.Left), pos)
}
