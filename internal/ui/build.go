package ui

import "github.com/rivo/uniseg"

// Spec describes an element to create or an existing element to update.
// Fields left nil or empty are not applied.
type Spec struct {
	// Tag creates a new element when From is nil.
	Tag string

	// From is an existing element to configure instead of creating one.
	From *Element

	Attrs    *Attrs
	Class    string
	Handlers Handlers
	Style    *Style
}

// Attrs are element attributes. Nil fields are left unchanged.
type Attrs struct {
	ID       *string
	Type     *string
	Text     *string
	Value    *string
	Disabled *bool
}

// Display controls element visibility.
type Display int

const (
	// DisplayUnset leaves visibility unchanged.
	DisplayUnset Display = iota
	DisplayBlock
	DisplayNone
)

// Style positions and shows elements. Nil fields are left unchanged.
// Left and Top move the element while keeping its size.
type Style struct {
	Display Display
	Left    *int
	Top     *int
	Width   *int
	Height  *int
}

// Build creates or updates an element from spec and returns it.
// Attributes, class, handlers and style are applied in that order.
func Build(spec Spec) *Element {
	el := spec.From
	if el == nil {
		el = NewElement(spec.Tag)
	}

	if a := spec.Attrs; a != nil {
		applyAttrs(el, a)
	}

	el.AddClass(spec.Class)

	for t, h := range spec.Handlers {
		el.On(t, h)
	}

	if s := spec.Style; s != nil {
		applyStyle(el, s)
	}

	return el
}

func applyAttrs(el *Element, a *Attrs) {
	if a.ID != nil {
		el.ID = *a.ID
	}
	if a.Type != nil {
		el.Type = *a.Type
	}
	if a.Text != nil {
		el.Text = *a.Text
	}
	if a.Value != nil {
		el.Value = *a.Value
		el.Caret = uniseg.GraphemeClusterCount(el.Value)
	}
	if a.Disabled != nil {
		el.Disabled = *a.Disabled
	}
}

func applyStyle(el *Element, s *Style) {
	switch s.Display {
	case DisplayBlock:
		el.Hidden = false
	case DisplayNone:
		el.Hidden = true
	}

	r := el.Rect
	width, height := r.Width(), r.Height()
	if s.Width != nil {
		width = max(*s.Width, 0)
	}
	if s.Height != nil {
		height = max(*s.Height, 0)
	}
	if s.Left != nil {
		r.Left = *s.Left
	}
	if s.Top != nil {
		r.Top = *s.Top
	}
	r.Right = r.Left + width
	r.Bottom = r.Top + height
	el.Rect = r
}

// String returns a pointer to s for use in Attrs.
func String(s string) *string { return &s }

// Bool returns a pointer to b for use in Attrs.
func Bool(b bool) *bool { return &b }

// Int returns a pointer to i for use in Style.
func Int(i int) *int { return &i }
