package render

import (
	"image/color"
	"log"

	"GraffitiPad/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
)

// Lines draws segments as canvas.Line objects inside a layout-less container,
// so segment coordinates are relative to the container's top-left corner.
type Lines struct {
	content *fyne.Container
	width   float32
	colors  map[string]color.Color
}

func NewLines(content *fyne.Container, width float32) *Lines {
	if width <= 0 {
		width = 1
	}
	return &Lines{
		content: content,
		width:   width,
		colors:  make(map[string]color.Color),
	}
}

func (l *Lines) Line(seg state.Segment) {
	line := canvas.NewLine(l.resolve(seg.Color))
	line.StrokeWidth = l.width
	line.Position1 = fyne.NewPos(seg.From.X, seg.From.Y)
	line.Position2 = fyne.NewPos(seg.To.X, seg.To.Y)
	l.content.Add(line)
	canvas.Refresh(l.content)
}

// resolve caches parsed colors. Bad values are logged once and drawn in the
// default color.
func (l *Lines) resolve(name string) color.Color {
	if c, ok := l.colors[name]; ok {
		return c
	}
	c, err := ParseColor(name)
	if err != nil {
		log.Printf("Falling back to %s: %v", DefaultColor, err)
		c = color.Black
	}
	l.colors[name] = c
	return c
}

// Clear removes every drawn line.
func (l *Lines) Clear() {
	l.content.RemoveAll()
	canvas.Refresh(l.content)
}

// Len reports how many lines are on the container.
func (l *Lines) Len() int {
	return len(l.content.Objects)
}

// Objects returns the drawn lines.
func (l *Lines) Objects() []*canvas.Line {
	out := make([]*canvas.Line, 0, len(l.content.Objects))
	for _, o := range l.content.Objects {
		if line, ok := o.(*canvas.Line); ok {
			out = append(out, line)
		}
	}
	return out
}
