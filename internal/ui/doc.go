// Package ui provides a small retained element tree for terminal widgets.
//
// Elements form a tree rooted at a Document. Each element has a rectangle
// relative to its parent, a handful of typed attributes, and at most one
// handler per event type. Build configures new or existing elements from a
// Spec, so construction code for tables, buttons, inputs and menus shares a
// single path.
//
// Pointer and keyboard input is routed through the Document. Click, keyup and
// contextmenu events bubble from the target to the root. Focus, blur and
// mouseleave are delivered to the element itself only.
package ui
