// Package render holds the drawing contexts a surface strokes onto.
package render

import "GraffitiPad/internal/state"

// DefaultColor is used for segments of surfaces without a stroke color.
const DefaultColor = "black"

// Context draws straight line segments.
type Context interface {
	Line(seg state.Segment)
}

// Recorder is a Context that keeps every segment in memory.
type Recorder struct {
	segments []state.Segment
}

func (r *Recorder) Line(seg state.Segment) {
	r.segments = append(r.segments, seg)
}

// Segments returns the recorded segments in draw order.
func (r *Recorder) Segments() []state.Segment {
	out := make([]state.Segment, len(r.segments))
	copy(out, r.segments)
	return out
}

func (r *Recorder) Reset() { r.segments = nil }
