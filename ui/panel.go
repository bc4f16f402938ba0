//go:build !ebiten

package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	gui "github.com/gen2brain/raylib-go/raygui"
)

// Panel layout
const (
	PanelWidth   = 260
	panelPadding = 10
	rowHeight    = 30
	panelRows    = 3
)

// Controls is the part of the simulation the panel can change.
type Controls interface {
	Paused() bool
	TogglePaused()
	Reset()
	DragEnabled() bool
	SetDragEnabled(on bool)
	Force() float64
	SetForce(f float64)
}

// ControlPanel renders raygui buttons and a force slider.
type ControlPanel struct {
	bounds   rl.Rectangle
	maxForce float32
}

// NewControlPanel creates a panel at (x, y). The force slider spans
// zero to four times the configured force.
func NewControlPanel(x, y float32, force float64) *ControlPanel {
	maxForce := float32(force) * 4
	if maxForce <= 0 {
		maxForce = 0.2
	}
	return &ControlPanel{
		bounds: rl.Rectangle{
			X:      x,
			Y:      y,
			Width:  PanelWidth,
			Height: panelRows*rowHeight + (panelRows+1)*panelPadding,
		},
		maxForce: maxForce,
	}
}

// Contains reports whether p is over the panel.
func (p *ControlPanel) Contains(pt rl.Vector2) bool {
	return rl.CheckCollisionPointRec(pt, p.bounds)
}

// Draw renders the panel and applies any changes to c.
func (p *ControlPanel) Draw(c Controls) {
	rl.DrawRectangleRec(p.bounds, rl.Fade(rl.DarkGray, 0.8))

	x := p.bounds.X + panelPadding
	y := p.bounds.Y + panelPadding
	half := (p.bounds.Width - 3*panelPadding) / 2

	if gui.Button(rl.Rectangle{X: x, Y: y, Width: half, Height: rowHeight}, toggleText(c.Paused(), "Resume", "Pause")) {
		c.TogglePaused()
	}
	if gui.Button(rl.Rectangle{X: x + half + panelPadding, Y: y, Width: half, Height: rowHeight}, "Reset") {
		c.Reset()
	}

	y += rowHeight + panelPadding
	if gui.Button(rl.Rectangle{X: x, Y: y, Width: p.bounds.Width - 2*panelPadding, Height: rowHeight}, toggleText(c.DragEnabled(), "Drag: on", "Drag: off")) {
		c.SetDragEnabled(!c.DragEnabled())
	}

	y += rowHeight + panelPadding
	force := gui.SliderBar(
		rl.Rectangle{X: x + 50, Y: y, Width: p.bounds.Width - 2*panelPadding - 100, Height: rowHeight},
		"Force",
		fmt.Sprintf("%.3f", c.Force()),
		float32(c.Force()),
		0,
		p.maxForce,
	)
	if force != float32(c.Force()) {
		c.SetForce(float64(force))
	}
}

func toggleText(on bool, onText, offText string) string {
	if on {
		return onText
	}
	return offText
}
