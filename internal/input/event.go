package input

import "GraffitiPad/internal/state"

// EventType names a device event the way the host dispatches it.
type EventType string

const (
	MouseDown   EventType = "mousedown"
	MouseUp     EventType = "mouseup"
	MouseMove   EventType = "mousemove"
	TouchStart  EventType = "touchstart"
	TouchMove   EventType = "touchmove"
	TouchEnd    EventType = "touchend"
	TouchCancel EventType = "touchcancel"
)

// Class tells pointer-class input apart from touch-class input.
type Class int

const (
	Pointer Class = iota
	Touch
)

func (t EventType) Class() Class {
	switch t {
	case TouchStart, TouchMove, TouchEnd, TouchCancel:
		return Touch
	}
	return Pointer
}

// Event is raw device input. Client and Touches are viewport coordinates,
// that is relative to the window canvas rather than to any element.
type Event struct {
	Type    EventType
	Client  state.Point
	Touches []state.Point

	prevented bool
}

// PreventDefault stops the host from applying its own handling of the event.
func (e *Event) PreventDefault() { e.prevented = true }

func (e *Event) DefaultPrevented() bool { return e.prevented }

// Handler receives events for an element.
type Handler func(*Event)
