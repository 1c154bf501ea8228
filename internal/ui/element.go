package ui

import (
	"slices"

	"github.com/dshills/xlsheet/internal/renderer/core"
	"github.com/dshills/xlsheet/internal/sheet"
)

// Tag names used by the grid.
const (
	TagBody   = "body"
	TagDiv    = "div"
	TagTable  = "table"
	TagRow    = "tr"
	TagCell   = "td"
	TagInput  = "input"
	TagButton = "button"
	TagLabel  = "label"
	TagMenu   = "menu"
	TagItem   = "li"
)

// Element is a node in the element tree.
type Element struct {
	Tag   string
	ID    string
	Type  string
	Text  string
	Value string

	// Disabled elements are drawn locked and cannot take focus.
	Disabled bool

	// Hidden elements and their subtrees are neither drawn nor hit.
	Hidden bool

	// Rect is relative to the parent's rectangle.
	Rect core.ScreenRect

	// Pos is the sheet cell this element stands for, if any.
	Pos *sheet.Position

	// Caret is the insertion point within Value, counted in grapheme clusters.
	Caret int

	classes  []string
	handlers Handlers
	parent   *Element
	children []*Element
}

// NewElement creates a detached element with the given tag.
func NewElement(tag string) *Element {
	return &Element{Tag: tag}
}

// Parent returns the parent element, or nil if detached.
func (e *Element) Parent() *Element {
	return e.parent
}

// Children returns the element's children in order.
func (e *Element) Children() []*Element {
	return e.children
}

// Append adds child as the last child, detaching it from any prior parent.
func (e *Element) Append(child *Element) *Element {
	if child.parent != nil {
		child.parent.removeChild(child)
	}
	child.parent = e
	e.children = append(e.children, child)
	return child
}

// Clear removes all children.
func (e *Element) Clear() {
	for _, c := range e.children {
		c.parent = nil
	}
	e.children = nil
}

func (e *Element) removeChild(child *Element) {
	if i := slices.Index(e.children, child); i >= 0 {
		e.children = slices.Delete(e.children, i, i+1)
	}
	child.parent = nil
}

// AddClass adds a class name if not already present.
func (e *Element) AddClass(name string) {
	if name == "" || e.HasClass(name) {
		return
	}
	e.classes = append(e.classes, name)
}

// HasClass reports whether the element carries the class.
func (e *Element) HasClass(name string) bool {
	return slices.Contains(e.classes, name)
}

// On binds handler to the event type, replacing any previous binding.
// A nil handler removes the binding.
func (e *Element) On(t EventType, handler Handler) {
	if handler == nil {
		delete(e.handlers, t)
		return
	}
	if e.handlers == nil {
		e.handlers = make(Handlers)
	}
	e.handlers[t] = handler
}

// AbsRect returns the element's rectangle in screen coordinates.
func (e *Element) AbsRect() core.ScreenRect {
	r := e.Rect
	for p := e.parent; p != nil; p = p.parent {
		r = r.Translate(p.Rect.Top, p.Rect.Left)
	}
	return r
}

// Visible reports whether the element and all its ancestors are shown.
func (e *Element) Visible() bool {
	for el := e; el != nil; el = el.parent {
		if el.Hidden {
			return false
		}
	}
	return true
}

// Walk visits the element and its descendants depth-first in document order.
// Returning false from fn skips the element's children.
func (e *Element) Walk(fn func(*Element) bool) {
	if !fn(e) {
		return
	}
	for _, c := range e.children {
		c.Walk(fn)
	}
}

// Find returns the first element in the subtree matching pred.
func (e *Element) Find(pred func(*Element) bool) *Element {
	var found *Element
	e.Walk(func(el *Element) bool {
		if found != nil {
			return false
		}
		if pred(el) {
			found = el
			return false
		}
		return true
	})
	return found
}

// root returns the topmost ancestor.
func (e *Element) root() *Element {
	el := e
	for el.parent != nil {
		el = el.parent
	}
	return el
}

func (e *Element) fire(ev *Event) {
	if h, ok := e.handlers[ev.Type]; ok {
		ev.CurrentTarget = e
		h(ev)
	}
}
