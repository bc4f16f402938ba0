//go:build !ebiten

package renderer

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
	"gonum.org/v1/gonum/spatial/r2"
)

// Raylib draws to the current raylib render target. Calls must happen
// between rl.BeginDrawing and rl.EndDrawing.
type Raylib struct {
	fill, stroke rl.Color
}

// NewRaylib creates a raylib canvas.
func NewRaylib() *Raylib {
	return &Raylib{fill: rl.White, stroke: rl.White}
}

// Clear implements Canvas.
func (r *Raylib) Clear(c color.RGBA) {
	rl.ClearBackground(rl.Color(c))
}

// SetFill implements Canvas.
func (r *Raylib) SetFill(c color.RGBA) { r.fill = rl.Color(c) }

// SetStroke implements Canvas.
func (r *Raylib) SetStroke(c color.RGBA) { r.stroke = rl.Color(c) }

// Circle implements Canvas.
func (r *Raylib) Circle(center r2.Vec, diameter float64) {
	rl.DrawCircleV(toRL(center), float32(diameter/2), r.fill)
}

// Line implements Canvas.
func (r *Raylib) Line(a, b r2.Vec) {
	rl.DrawLineV(toRL(a), toRL(b), r.stroke)
}

func toRL(v r2.Vec) rl.Vector2 {
	return rl.NewVector2(float32(v.X), float32(v.Y))
}
