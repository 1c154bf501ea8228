package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/xlsheet/internal/renderer/core"
)

// box builds an element at (top, left) with the given size.
func box(tag string, top, left, height, width int) *Element {
	el := NewElement(tag)
	el.Rect = core.RectFromSize(top, left, height, width)
	return el
}

func TestHitTestDeepestAndTopmost(t *testing.T) {
	doc := NewDocument(40, 10)
	table := doc.Body().Append(box(TagTable, 2, 0, 4, 20))
	cell := table.Append(box(TagCell, 1, 5, 1, 5))
	input := cell.Append(box(TagInput, 0, 0, 1, 5))

	assert.Same(t, input, doc.HitTest(6, 3))
	assert.Same(t, table, doc.HitTest(0, 2))
	assert.Same(t, doc.Body(), doc.HitTest(30, 0))
	assert.Nil(t, doc.HitTest(50, 0))

	overlay := doc.Body().Append(box(TagMenu, 3, 5, 2, 10))
	assert.Same(t, overlay, doc.HitTest(6, 3), "later siblings are on top")

	overlay.Hidden = true
	assert.Same(t, input, doc.HitTest(6, 3), "hidden elements are not hit")
}

func TestAbsRect(t *testing.T) {
	parent := box(TagDiv, 2, 3, 10, 10)
	child := parent.Append(box(TagDiv, 1, 1, 2, 2))
	assert.Equal(t, core.ScreenRect{Top: 3, Left: 4, Bottom: 5, Right: 6}, child.AbsRect())
}

func TestDispatchBubbles(t *testing.T) {
	doc := NewDocument(10, 10)
	cell := doc.Body().Append(box(TagCell, 0, 0, 1, 5))
	input := cell.Append(box(TagInput, 0, 0, 1, 5))

	var order []string
	var target, current *Element
	cell.On(EventClick, func(ev *Event) {
		order = append(order, "cell")
		target, current = ev.Target, ev.CurrentTarget
	})
	doc.Body().On(EventClick, func(*Event) { order = append(order, "body") })

	doc.PointerDown(1, 0, ButtonPrimary)

	assert.Equal(t, []string{"cell", "body"}, order)
	assert.Same(t, input, target)
	assert.Same(t, cell, current)
}

func TestPointerDownSecondaryFiresContextMenu(t *testing.T) {
	doc := NewDocument(10, 10)
	cell := doc.Body().Append(box(TagCell, 0, 0, 1, 5))

	var got *Event
	cell.On(EventContextMenu, func(ev *Event) {
		ev.PreventDefault()
		got = ev
	})
	cell.On(EventClick, func(*Event) { t.Fatal("click should not fire") })

	doc.PointerDown(2, 0, ButtonSecondary)

	require.NotNil(t, got)
	assert.Equal(t, 2, got.X)
	assert.Equal(t, 0, got.Y)
	assert.True(t, got.DefaultPrevented())
}

func TestFocusAndBlur(t *testing.T) {
	doc := NewDocument(10, 10)
	a := doc.Body().Append(box(TagInput, 0, 0, 1, 5))
	b := doc.Body().Append(box(TagInput, 1, 0, 1, 5))

	blurred := 0
	a.On(EventBlur, func(*Event) { blurred++ })

	require.True(t, doc.Focus(a))
	assert.Same(t, a, doc.Focused())

	require.True(t, doc.Focus(b))
	assert.Equal(t, 1, blurred)
	assert.Same(t, b, doc.Focused())

	b.Disabled = true
	doc.Blur()
	assert.False(t, doc.Focus(b), "disabled elements cannot take focus")
	assert.Nil(t, doc.Focused())
}

func TestPointerDownElsewhereBlurs(t *testing.T) {
	doc := NewDocument(10, 10)
	a := doc.Body().Append(box(TagInput, 0, 0, 1, 5))
	blurred := false
	a.On(EventBlur, func(*Event) { blurred = true })
	require.True(t, doc.Focus(a))

	doc.PointerDown(2, 0, ButtonPrimary)
	assert.False(t, blurred, "press on the focused element keeps focus")

	doc.PointerDown(8, 8, ButtonPrimary)
	assert.True(t, blurred)
	assert.Nil(t, doc.Focused())
}

func TestFocusDroppedWhenDetached(t *testing.T) {
	doc := NewDocument(10, 10)
	container := doc.Body().Append(box(TagDiv, 0, 0, 5, 5))
	a := container.Append(box(TagInput, 0, 0, 1, 5))

	blurred := false
	a.On(EventBlur, func(*Event) { blurred = true })
	require.True(t, doc.Focus(a))

	container.Clear()

	assert.Nil(t, doc.Focused())
	assert.False(t, blurred)
	assert.False(t, doc.KeyUp('x'))
}

func TestPointerMoveMouseLeave(t *testing.T) {
	doc := NewDocument(20, 20)
	menu := doc.Body().Append(box(TagMenu, 5, 5, 3, 6))
	item := menu.Append(box(TagItem, 0, 0, 1, 6))

	left := 0
	menu.On(EventMouseLeave, func(ev *Event) {
		left++
		assert.Same(t, menu, ev.Target)
	})

	doc.PointerMove(6, 5)
	assert.True(t, doc.Hovered(item))
	assert.True(t, doc.Hovered(menu))

	doc.PointerMove(7, 6)
	assert.Equal(t, 0, left, "moving within the menu does not leave it")

	doc.PointerMove(0, 0)
	assert.Equal(t, 1, left)
	assert.False(t, doc.Hovered(menu))

	doc.PointerMove(1, 1)
	assert.Equal(t, 1, left, "leave fires once")
}

func TestKeyUpBubblesFromFocused(t *testing.T) {
	doc := NewDocument(10, 10)
	input := doc.Body().Append(box(TagInput, 0, 0, 1, 5))

	var got rune
	input.On(EventKeyUp, func(ev *Event) { got = ev.Rune })

	assert.False(t, doc.KeyUp('a'))
	require.True(t, doc.Focus(input))
	assert.True(t, doc.KeyUp('a'))
	assert.Equal(t, 'a', got)
}

func TestElementByID(t *testing.T) {
	doc := NewDocument(10, 10)
	doc.Body().Append(Build(Spec{Tag: TagDiv, Attrs: &Attrs{ID: String("xl-workspace")}}))

	require.NotNil(t, doc.ElementByID("xl-workspace"))
	assert.Nil(t, doc.ElementByID("missing"))
}

func TestAppendMovesChild(t *testing.T) {
	a := NewElement(TagDiv)
	b := NewElement(TagDiv)
	c := NewElement(TagInput)

	a.Append(c)
	b.Append(c)

	assert.Empty(t, a.Children())
	assert.Equal(t, []*Element{c}, b.Children())
	assert.Same(t, b, c.Parent())
}
