package ui

import (
	"fmt"
	"log"

	"GraffitiPad/internal/config"
	"GraffitiPad/internal/input"
	"GraffitiPad/internal/render"
	"GraffitiPad/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// Board is the window content: one pad, its document and the bound surface.
type Board struct {
	Pad      *Pad
	Doc      *input.Document
	Surface  *input.Surface
	Status   *widget.Label
	segments int
}

// NewBoard builds the pad and binds the configured selector. Surface is nil
// when the selector matches nothing; the pad is then shown but inert.
func NewBoard(cfg config.Config) *Board {
	pad := NewPad("pad", cfg.StrokeWidth, "graffiti")
	if bg, err := render.ParseColor(cfg.Background); err == nil {
		pad.SetBackground(bg)
	} else {
		log.Printf("Ignoring background: %v", err)
	}

	b := &Board{
		Pad:    pad,
		Doc:    input.NewDocument(pad),
		Status: widget.NewLabel("Ready"),
	}
	b.Surface = input.InitSurface(b.Doc, cfg.Selector, cfg.StrokeColor)
	if b.Surface == nil {
		log.Printf("Nothing matches %q, drawing is disabled", cfg.Selector)
		b.Status.SetText("Nothing to draw on")
		return b
	}
	log.Printf("Bound surface %s to %q", b.Surface.ID, cfg.Selector)
	b.Surface.OnSegment = func(state.Segment) {
		b.segments++
		b.Status.SetText(fmt.Sprintf("%d segments", b.segments))
	}
	return b
}

// Clear wipes the pad and resets the segment count.
func (b *Board) Clear() {
	b.Pad.Clear()
	b.segments = 0
	b.Status.SetText("Cleared")
}

// Content lays the board out with its toolbar and status bar.
func (b *Board) Content() fyne.CanvasObject {
	return container.NewBorder(NewToolbar(b), b.Status, nil, nil, b.Pad)
}

func RunApp(cfg config.Config) {
	myApp := app.New()
	myWindow := myApp.NewWindow(cfg.Title)
	myWindow.Resize(fyne.NewSize(cfg.Width, cfg.Height))

	board := NewBoard(cfg)
	myWindow.SetContent(board.Content())
	myWindow.ShowAndRun()
}
