// Package renderer draws the neuron web onto a backend surface.
package renderer

import (
	"image/color"

	"gonum.org/v1/gonum/spatial/r2"
)

// Canvas is the drawing surface the render step needs.
// Fill applies to circles, stroke to lines.
type Canvas interface {
	Clear(c color.RGBA)
	SetFill(c color.RGBA)
	SetStroke(c color.RGBA)
	Circle(center r2.Vec, diameter float64)
	Line(a, b r2.Vec)
}

// Recorder is a Canvas that records draw calls instead of drawing.
// Headless runs use it as a sink and tests inspect it.
type Recorder struct {
	Background color.RGBA
	Circles    []RecordedCircle
	Lines      []RecordedLine

	fill, stroke color.RGBA
}

// RecordedCircle is a circle draw call.
type RecordedCircle struct {
	Center   r2.Vec
	Diameter float64
	Fill     color.RGBA
}

// RecordedLine is a line draw call.
type RecordedLine struct {
	A, B   r2.Vec
	Stroke color.RGBA
}

// Clear implements Canvas and forgets earlier draw calls.
func (r *Recorder) Clear(c color.RGBA) {
	r.Background = c
	r.Circles = r.Circles[:0]
	r.Lines = r.Lines[:0]
}

// SetFill implements Canvas.
func (r *Recorder) SetFill(c color.RGBA) { r.fill = c }

// SetStroke implements Canvas.
func (r *Recorder) SetStroke(c color.RGBA) { r.stroke = c }

// Circle implements Canvas.
func (r *Recorder) Circle(center r2.Vec, diameter float64) {
	r.Circles = append(r.Circles, RecordedCircle{Center: center, Diameter: diameter, Fill: r.fill})
}

// Line implements Canvas.
func (r *Recorder) Line(a, b r2.Vec) {
	r.Lines = append(r.Lines, RecordedLine{A: a, B: b, Stroke: r.stroke})
}
