package ui

import (
	"slices"

	"github.com/dshills/xlsheet/internal/renderer/core"
)

// Button identifies the pointer button of a press.
type Button int

const (
	ButtonPrimary Button = iota
	ButtonSecondary
)

// Document owns an element tree and routes input to it.
type Document struct {
	root    *Element
	focused *Element
	hovered []*Element
}

// NewDocument creates a document whose body covers width x height cells.
func NewDocument(width, height int) *Document {
	body := NewElement(TagBody)
	body.Rect = core.RectFromSize(0, 0, height, width)
	return &Document{root: body}
}

// Body returns the root element.
func (d *Document) Body() *Element {
	return d.root
}

// Resize changes the body's size.
func (d *Document) Resize(width, height int) {
	d.root.Rect = core.RectFromSize(0, 0, height, width)
}

// ElementByID returns the first attached element with the given id.
func (d *Document) ElementByID(id string) *Element {
	return d.root.Find(func(el *Element) bool { return el.ID == id })
}

// Attached reports whether el is part of this document's tree.
func (d *Document) Attached(el *Element) bool {
	return el != nil && el.root() == d.root
}

// Focused returns the focused element, or nil. An element removed from the
// tree loses focus without a blur event.
func (d *Document) Focused() *Element {
	if d.focused != nil && !d.Attached(d.focused) {
		d.focused = nil
	}
	return d.focused
}

// Focus moves focus to el. Disabled, hidden or detached elements cannot be
// focused; Focus reports whether el holds focus afterwards.
func (d *Document) Focus(el *Element) bool {
	if el == nil || el.Disabled || !el.Visible() || !d.Attached(el) {
		return false
	}
	if d.Focused() == el {
		return true
	}
	d.Blur()
	d.focused = el
	el.fire(&Event{Type: EventFocus, Target: el})
	return true
}

// Blur removes focus from the focused element, if any.
func (d *Document) Blur() {
	el := d.Focused()
	if el == nil {
		return
	}
	d.focused = nil
	el.fire(&Event{Type: EventBlur, Target: el})
}

// HitTest returns the deepest visible element containing the screen point.
// Later siblings are above earlier ones.
func (d *Document) HitTest(x, y int) *Element {
	return hitTest(d.root, core.NewScreenPos(y, x), 0, 0)
}

func hitTest(el *Element, pos core.ScreenPos, top, left int) *Element {
	if el.Hidden {
		return nil
	}
	abs := el.Rect.Translate(top, left)
	for i := len(el.children) - 1; i >= 0; i-- {
		if hit := hitTest(el.children[i], pos, abs.Top, abs.Left); hit != nil {
			return hit
		}
	}
	if abs.Contains(pos) {
		return el
	}
	return nil
}

// Dispatch delivers ev to target and, for bubbling events, its ancestors.
// It returns false if a handler called PreventDefault.
func (d *Document) Dispatch(target *Element, ev *Event) bool {
	ev.Target = target
	for el := target; el != nil; el = el.parent {
		el.fire(ev)
		if !ev.Type.bubbles() {
			break
		}
	}
	ev.CurrentTarget = nil
	return !ev.defaultPrevented
}

// PointerDown handles a button press at the screen point. A press outside
// the focused element blurs it before the click or contextmenu event fires.
// It returns the element that was hit, or nil.
func (d *Document) PointerDown(x, y int, button Button) *Element {
	target := d.HitTest(x, y)
	if f := d.Focused(); f != nil && f != target {
		d.Blur()
	}
	if target == nil {
		return nil
	}

	t := EventClick
	if button == ButtonSecondary {
		t = EventContextMenu
	}
	d.Dispatch(target, &Event{Type: t, X: x, Y: y})
	return target
}

// PointerMove updates hover state and fires mouseleave on every element the
// pointer has left.
func (d *Document) PointerMove(x, y int) {
	var chain []*Element
	for el := d.HitTest(x, y); el != nil; el = el.parent {
		chain = append(chain, el)
	}

	prev := d.hovered
	d.hovered = chain
	for _, el := range prev {
		if slices.Contains(chain, el) {
			continue
		}
		el.fire(&Event{Type: EventMouseLeave, Target: el, X: x, Y: y})
	}
}

// Hovered reports whether the pointer is over el or one of its descendants.
func (d *Document) Hovered(el *Element) bool {
	return slices.Contains(d.hovered, el)
}

// KeyUp fires keyup on the focused element. It returns false if nothing is
// focused.
func (d *Document) KeyUp(r rune) bool {
	el := d.Focused()
	if el == nil {
		return false
	}
	d.Dispatch(el, &Event{Type: EventKeyUp, Rune: r})
	return true
}
