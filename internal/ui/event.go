package ui

// EventType names an element event.
type EventType string

// Event types.
const (
	EventClick       EventType = "click"
	EventContextMenu EventType = "contextmenu"
	EventKeyUp       EventType = "keyup"
	EventFocus       EventType = "focus"
	EventBlur        EventType = "blur"
	EventMouseLeave  EventType = "mouseleave"
)

// bubbles reports whether events of this type propagate to ancestors.
func (t EventType) bubbles() bool {
	switch t {
	case EventFocus, EventBlur, EventMouseLeave:
		return false
	default:
		return true
	}
}

// Event is delivered to element handlers.
type Event struct {
	Type EventType

	// Target is the element the event originated on.
	Target *Element

	// CurrentTarget is the element whose handler is running.
	CurrentTarget *Element

	// X and Y are the pointer's screen coordinates for pointer events.
	X, Y int

	// Rune is the typed character for keyup events, or 0.
	Rune rune

	defaultPrevented bool
}

// PreventDefault marks the event's default action as cancelled.
func (e *Event) PreventDefault() {
	e.defaultPrevented = true
}

// DefaultPrevented reports whether PreventDefault was called.
func (e *Event) DefaultPrevented() bool {
	return e.defaultPrevented
}

// Handler reacts to an event.
type Handler func(ev *Event)

// Handlers binds handlers by event type.
type Handlers map[EventType]Handler
