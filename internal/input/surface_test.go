package input

import (
	"testing"

	"GraffitiPad/internal/render"
	"GraffitiPad/internal/state"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeElement struct {
	tag, id   string
	classes   []string
	origin    state.Point
	rec       render.Recorder
	listeners map[EventType][]Handler
}

func newFakeElement(id string, origin state.Point) *fakeElement {
	return &fakeElement{
		tag:       "canvas",
		id:        id,
		origin:    origin,
		listeners: make(map[EventType][]Handler),
	}
}

func (f *fakeElement) Matches(sel string) bool {
	return MatchSelector(sel, f.tag, f.id, f.classes)
}

func (f *fakeElement) Origin() state.Point { return f.origin }

func (f *fakeElement) Context() render.Context { return &f.rec }

func (f *fakeElement) AddEventListener(t EventType, h Handler) {
	f.listeners[t] = append(f.listeners[t], h)
}

func (f *fakeElement) listenerCount() int {
	n := 0
	for _, hs := range f.listeners {
		n += len(hs)
	}
	return n
}

func (f *fakeElement) dispatch(ev *Event) *Event {
	for _, h := range f.listeners[ev.Type] {
		h(ev)
	}
	return ev
}

func (f *fakeElement) mouse(t EventType, x, y float32) *Event {
	return f.dispatch(&Event{Type: t, Client: state.Point{X: x, Y: y}})
}

func (f *fakeElement) touch(t EventType, x, y float32) *Event {
	return f.dispatch(&Event{Type: t, Touches: []state.Point{{X: x, Y: y}}})
}

func bindPad(t *testing.T, origin state.Point, color string) (*fakeElement, *Surface) {
	t.Helper()
	el := newFakeElement("pad", origin)
	s := InitSurface(NewDocument(el), "#pad", color)
	require.NotNil(t, s)
	return el, s
}

func TestInitSurfaceWithoutMatch(t *testing.T) {
	el := newFakeElement("other", state.Point{})
	s := InitSurface(NewDocument(el), "#pad", "")
	assert.Nil(t, s)
	assert.Zero(t, el.listenerCount())
}

func TestInitSurfaceRegistersFiveListeners(t *testing.T) {
	el, s := bindPad(t, state.Point{}, "")
	assert.Equal(t, 5, el.listenerCount())
	for _, typ := range []EventType{MouseDown, MouseUp, MouseMove, TouchStart, TouchMove} {
		assert.Len(t, el.listeners[typ], 1, typ)
	}
	assert.Empty(t, el.listeners[TouchEnd])
	assert.False(t, s.Gesture().Active())
}

func TestInitSurfaceBindsFirstMatchOnly(t *testing.T) {
	first := newFakeElement("a", state.Point{})
	first.classes = []string{"graffiti"}
	second := newFakeElement("b", state.Point{})
	second.classes = []string{"graffiti"}

	s := InitSurface(NewDocument(first, second), ".graffiti", "")
	require.NotNil(t, s)
	assert.Equal(t, 5, first.listenerCount())
	assert.Zero(t, second.listenerCount())
}

func TestPointerDownNormalizesToSurface(t *testing.T) {
	el, s := bindPad(t, state.Point{X: 20, Y: 30}, "")

	ev := el.mouse(MouseDown, 120, 80)

	g := s.Gesture()
	assert.True(t, g.Active())
	last, ok := g.Last()
	assert.True(t, ok)
	assert.Equal(t, state.Point{X: 100, Y: 50}, last)
	assert.True(t, ev.DefaultPrevented())
}

func TestSegmentsChainInOrder(t *testing.T) {
	el, _ := bindPad(t, state.Point{}, "")

	el.mouse(MouseDown, 0, 0)
	el.mouse(MouseMove, 10, 0)
	el.mouse(MouseMove, 10, 10)

	segs := el.rec.Segments()
	require.Len(t, segs, 2)
	assert.Equal(t, state.Point{X: 0, Y: 0}, segs[0].From)
	assert.Equal(t, state.Point{X: 10, Y: 0}, segs[0].To)
	assert.Equal(t, state.Point{X: 10, Y: 0}, segs[1].From)
	assert.Equal(t, state.Point{X: 10, Y: 10}, segs[1].To)
	assert.Less(t, segs[0].Seq, segs[1].Seq)
}

func TestMoveBeforeStartIsIgnored(t *testing.T) {
	el, s := bindPad(t, state.Point{}, "")

	ev := el.mouse(MouseMove, 5, 5)

	assert.Empty(t, el.rec.Segments())
	assert.False(t, s.Gesture().Active())
	assert.True(t, ev.DefaultPrevented())
}

func TestMoveAfterEndIsIgnored(t *testing.T) {
	el, s := bindPad(t, state.Point{}, "")

	el.mouse(MouseDown, 1, 1)
	el.mouse(MouseMove, 2, 2)
	el.mouse(MouseUp, 2, 2)
	el.mouse(MouseMove, 3, 3)

	assert.Len(t, el.rec.Segments(), 1)
	assert.False(t, s.Gesture().Active())
	_, ok := s.Gesture().Last()
	assert.False(t, ok)
}

func TestStrokeColorFallsBackToDefault(t *testing.T) {
	el, _ := bindPad(t, state.Point{}, "")
	el.mouse(MouseDown, 0, 0)
	el.mouse(MouseMove, 1, 1)

	segs := el.rec.Segments()
	require.Len(t, segs, 1)
	assert.Equal(t, render.DefaultColor, segs[0].Color)
}

func TestStrokeColorIsUsed(t *testing.T) {
	el, _ := bindPad(t, state.Point{}, "red")
	el.mouse(MouseDown, 0, 0)
	el.mouse(MouseMove, 1, 1)

	segs := el.rec.Segments()
	require.Len(t, segs, 1)
	assert.Equal(t, "red", segs[0].Color)
}

func TestSetStrokeColor(t *testing.T) {
	el, s := bindPad(t, state.Point{}, "red")
	s.SetStrokeColor("blue")
	el.mouse(MouseDown, 0, 0)
	el.mouse(MouseMove, 1, 1)
	s.SetStrokeColor("")
	el.mouse(MouseMove, 2, 2)

	segs := el.rec.Segments()
	require.Len(t, segs, 2)
	assert.Equal(t, "blue", segs[0].Color)
	assert.Equal(t, render.DefaultColor, segs[1].Color)
}

func TestOnSegmentObservesRenders(t *testing.T) {
	el, s := bindPad(t, state.Point{}, "")
	var seen []state.Segment
	s.OnSegment = func(seg state.Segment) { seen = append(seen, seg) }

	el.mouse(MouseDown, 0, 0)
	el.mouse(MouseMove, 4, 4)

	require.Len(t, seen, 1)
	assert.Equal(t, s.ID, seen[0].Surface)
	assert.Equal(t, el.rec.Segments(), seen)
}

// Touch positions are made relative to the surface just like pointer
// positions, rather than left in viewport coordinates.
func TestTouchPositionsAreSurfaceRelative(t *testing.T) {
	el, s := bindPad(t, state.Point{X: 20, Y: 30}, "")

	start := el.touch(TouchStart, 120, 80)
	last, _ := s.Gesture().Last()
	assert.Equal(t, state.Point{X: 100, Y: 50}, last)
	assert.True(t, start.DefaultPrevented())

	move := el.touch(TouchMove, 130, 90)
	assert.True(t, move.DefaultPrevented())

	segs := el.rec.Segments()
	require.Len(t, segs, 1)
	assert.Equal(t, state.Point{X: 100, Y: 50}, segs[0].From)
	assert.Equal(t, state.Point{X: 110, Y: 60}, segs[0].To)
}

func TestTouchWithClientPointKeepsDefault(t *testing.T) {
	el, s := bindPad(t, state.Point{X: 5, Y: 5}, "")

	ev := el.dispatch(&Event{
		Type:    TouchStart,
		Client:  state.Point{X: 15, Y: 25},
		Touches: []state.Point{{X: 99, Y: 99}},
	})

	assert.False(t, ev.DefaultPrevented())
	last, _ := s.Gesture().Last()
	assert.Equal(t, state.Point{X: 10, Y: 20}, last)
}

func TestTouchGestureEndsOnMouseUp(t *testing.T) {
	el, s := bindPad(t, state.Point{}, "")

	el.touch(TouchStart, 1, 1)
	el.touch(TouchEnd, 1, 1)
	assert.True(t, s.Gesture().Active(), "touchend is not bound")

	el.mouse(MouseUp, 1, 1)
	assert.False(t, s.Gesture().Active())
}

func TestSurfacesAreIndependent(t *testing.T) {
	a := newFakeElement("a", state.Point{})
	b := newFakeElement("b", state.Point{})
	doc := NewDocument(a, b)
	sa := InitSurface(doc, "#a", "")
	sb := InitSurface(doc, "#b", "")
	require.NotNil(t, sa)
	require.NotNil(t, sb)
	assert.NotEqual(t, sa.ID, sb.ID)

	a.mouse(MouseDown, 0, 0)
	b.mouse(MouseMove, 3, 3)

	assert.True(t, sa.Gesture().Active())
	assert.False(t, sb.Gesture().Active())
	assert.Empty(t, b.rec.Segments())
}
