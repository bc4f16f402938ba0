//go:build ebiten

package renderer

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"gonum.org/v1/gonum/spatial/r2"
)

// Ebiten draws onto an ebiten image. Target must be set each frame
// from the Draw callback before any other call.
type Ebiten struct {
	Target       *ebiten.Image
	fill, stroke color.RGBA
}

// NewEbiten creates an ebiten canvas.
func NewEbiten() *Ebiten {
	white := color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	return &Ebiten{fill: white, stroke: white}
}

// Clear implements Canvas.
func (e *Ebiten) Clear(c color.RGBA) {
	e.Target.Fill(c)
}

// SetFill implements Canvas.
func (e *Ebiten) SetFill(c color.RGBA) { e.fill = c }

// SetStroke implements Canvas.
func (e *Ebiten) SetStroke(c color.RGBA) { e.stroke = c }

// Circle implements Canvas.
func (e *Ebiten) Circle(center r2.Vec, diameter float64) {
	vector.DrawFilledCircle(e.Target, float32(center.X), float32(center.Y), float32(diameter/2), e.fill, true)
}

// Line implements Canvas.
func (e *Ebiten) Line(a, b r2.Vec) {
	vector.StrokeLine(e.Target, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 1, e.stroke, true)
}
