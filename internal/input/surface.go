// Package input turns pointer and touch events into strokes on a surface.
package input

import (
	"GraffitiPad/internal/render"
	"GraffitiPad/internal/state"
)

// Surface is a bound element together with its gesture state.
type Surface struct {
	ID string

	// OnSegment, when set, is called after each rendered segment.
	OnSegment func(seg state.Segment)

	elem        Element
	ctx         render.Context
	gesture     state.GestureState
	strokeColor string
	clock       state.Clock
}

func newSurface(elem Element, strokeColor string) *Surface {
	return &Surface{
		ID:          state.NewSurfaceID(),
		elem:        elem,
		ctx:         elem.Context(),
		strokeColor: strokeColor,
	}
}

// SetStrokeColor replaces the stroke color. An empty color restores the
// default.
func (s *Surface) SetStrokeColor(c string) { s.strokeColor = c }

func (s *Surface) StrokeColor() string { return s.strokeColor }

// Gesture exposes the current gesture state for inspection.
func (s *Surface) Gesture() state.GestureState { return s.gesture }

// Normalize converts an event position to surface coordinates. Touch input
// reads the client point when it has one and otherwise the first contact;
// both classes end up relative to the surface origin.
func (s *Surface) Normalize(ev *Event) state.Point {
	origin := s.elem.Origin()
	if ev.Type.Class() == Pointer {
		return ev.Client.Sub(origin)
	}
	p, _ := touchPoint(ev)
	return p.Sub(origin)
}

// touchPoint picks the raw position of a touch event. contacts reports
// whether it came from the touch list.
func touchPoint(ev *Event) (p state.Point, contacts bool) {
	if ev.Client.X != 0 && ev.Client.Y != 0 {
		return ev.Client, false
	}
	if len(ev.Touches) > 0 {
		return ev.Touches[0], true
	}
	return state.Point{}, false
}

// suppress prevents default handling: always for pointer input, and for touch
// input only when the position comes from contact data.
func suppress(ev *Event) {
	if ev.Type.Class() == Pointer {
		ev.PreventDefault()
		return
	}
	if _, contacts := touchPoint(ev); contacts {
		ev.PreventDefault()
	}
}

func (s *Surface) OnGestureStart(ev *Event) {
	suppress(ev)
	s.gesture.Begin(s.Normalize(ev))
}

func (s *Surface) OnGestureMove(ev *Event) {
	suppress(ev)
	p := s.Normalize(ev)
	from, ok := s.gesture.Update(p)
	if !ok {
		return
	}
	c := s.strokeColor
	if c == "" {
		c = render.DefaultColor
	}
	s.render(from, p, c)
}

func (s *Surface) OnGestureEnd(ev *Event) {
	ev.PreventDefault()
	s.gesture.End()
}

func (s *Surface) render(from, to state.Point, color string) {
	seg := state.Segment{
		Surface: s.ID,
		Seq:     s.clock.Tick(),
		From:    from,
		To:      to,
		Color:   color,
	}
	s.ctx.Line(seg)
	if s.OnSegment != nil {
		s.OnSegment(seg)
	}
}
