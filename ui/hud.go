//go:build !ebiten

package ui

import rl "github.com/gen2brain/raylib-go/raylib"

// HUD renders the status text.
type HUD struct {
	x, y       int32
	fontSize   int32
	lineHeight int32
}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{x: 10, y: 10, fontSize: 16, lineHeight: 20}
}

// Draw renders the status lines, the first brighter than the rest.
func (h *HUD) Draw(lines []string) {
	for i, line := range lines {
		c := rl.LightGray
		if i == 0 {
			c = rl.White
		}
		rl.DrawText(line, h.x, h.y+int32(i)*h.lineHeight, h.fontSize, c)
	}
}

// DrawControls renders the control legend at the bottom of the screen.
func (h *HUD) DrawControls(screenHeight int32, controls string) {
	rl.DrawText(controls, h.x, screenHeight-25, 14, rl.Gray)
}
