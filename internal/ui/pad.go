package ui

import (
	"image/color"

	"GraffitiPad/internal/input"
	"GraffitiPad/internal/render"
	"GraffitiPad/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"
)

// Pad is a drawable element. It turns Fyne input callbacks into input
// events for whatever listeners are bound to it.
type Pad struct {
	widget.BaseWidget
	id      string
	classes []string

	background *canvas.Rectangle
	content    *fyne.Container
	lines      *render.Lines
	listeners  map[input.EventType][]input.Handler

	touching bool
	lastMove fyne.Position
	moved    bool
}

var _ fyne.Widget = (*Pad)(nil)
var _ fyne.Draggable = (*Pad)(nil)
var _ desktop.Mouseable = (*Pad)(nil)
var _ desktop.Hoverable = (*Pad)(nil)
var _ mobile.Touchable = (*Pad)(nil)
var _ input.Element = (*Pad)(nil)

const padTag = "canvas"

func NewPad(id string, strokeWidth float32, classes ...string) *Pad {
	p := &Pad{
		id:         id,
		classes:    classes,
		background: canvas.NewRectangle(color.White),
		content:    container.NewWithoutLayout(),
		listeners:  make(map[input.EventType][]input.Handler),
	}
	p.background.SetMinSize(fyne.NewSize(300, 300))
	p.lines = render.NewLines(p.content, strokeWidth)
	p.ExtendBaseWidget(p)
	return p
}

func (p *Pad) SetBackground(c color.Color) {
	p.background.FillColor = c
	p.background.Refresh()
}

func (p *Pad) Matches(selector string) bool {
	return input.MatchSelector(selector, padTag, p.id, p.classes)
}

func (p *Pad) Origin() state.Point {
	a := fyne.CurrentApp()
	if a == nil {
		return state.Point{}
	}
	pos := a.Driver().AbsolutePositionForObject(p)
	return state.Point{X: pos.X, Y: pos.Y}
}

func (p *Pad) Context() render.Context { return p.lines }

func (p *Pad) AddEventListener(t input.EventType, h input.Handler) {
	p.listeners[t] = append(p.listeners[t], h)
}

// Lines returns the segments drawn so far.
func (p *Pad) Lines() []*canvas.Line { return p.lines.Objects() }

func (p *Pad) Clear() {
	p.lines.Clear()
}

func (p *Pad) dispatch(ev *input.Event) {
	for _, h := range p.listeners[ev.Type] {
		h(ev)
	}
}

func toPoint(pos fyne.Position) state.Point {
	return state.Point{X: pos.X, Y: pos.Y}
}

func (p *Pad) pointer(t input.EventType, abs fyne.Position) {
	p.dispatch(&input.Event{Type: t, Client: toPoint(abs)})
}

func (p *Pad) touch(t input.EventType, abs fyne.Position) {
	p.dispatch(&input.Event{Type: t, Touches: []state.Point{toPoint(abs)}})
}

// pointerMove skips a move to the position already reported, since a desktop
// drag can arrive both as MouseMoved and Dragged.
func (p *Pad) pointerMove(abs fyne.Position) {
	if p.moved && abs == p.lastMove {
		return
	}
	p.lastMove, p.moved = abs, true
	p.pointer(input.MouseMove, abs)
}

func (p *Pad) MouseDown(e *desktop.MouseEvent) {
	p.pointer(input.MouseDown, e.AbsolutePosition)
}

func (p *Pad) MouseUp(e *desktop.MouseEvent) {
	p.pointer(input.MouseUp, e.AbsolutePosition)
}

func (p *Pad) MouseMoved(e *desktop.MouseEvent) {
	p.pointerMove(e.AbsolutePosition)
}

func (p *Pad) Dragged(e *fyne.DragEvent) {
	if p.touching {
		p.touch(input.TouchMove, e.AbsolutePosition)
		return
	}
	p.pointerMove(e.AbsolutePosition)
}

func (p *Pad) TouchDown(e *mobile.TouchEvent) {
	p.touching = true
	p.touch(input.TouchStart, e.AbsolutePosition)
}

func (p *Pad) TouchUp(e *mobile.TouchEvent) {
	p.touching = false
	p.touch(input.TouchEnd, e.AbsolutePosition)
}

func (p *Pad) TouchCancel(e *mobile.TouchEvent) {
	p.touching = false
	p.touch(input.TouchCancel, e.AbsolutePosition)
}

func (p *Pad) MouseIn(*desktop.MouseEvent) {}
func (p *Pad) MouseOut()                   {}
func (p *Pad) DragEnd()                    {}

func (p *Pad) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewStack(p.background, p.content))
}
