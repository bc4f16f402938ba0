//go:build !ebiten

package host

import (
	"context"

	rl "github.com/gen2brain/raylib-go/raylib"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/synapse/config"
	"github.com/pthm-cable/synapse/game"
	"github.com/pthm-cable/synapse/renderer"
	"github.com/pthm-cable/synapse/ui"
)

// Backend names the window library compiled into this binary.
const Backend = "raylib"

// RunWindow opens a raylib window and runs the simulation until the window
// closes, ctx is done or maxTicks frames have run (0 = unlimited).
func RunWindow(ctx context.Context, sim *game.Simulation, cfg *config.Config, maxTicks int) error {
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), "synapse")
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	clock := NewWallClock()
	tracker := NewPointerTracker(cfg.Input.ClickSlop)
	var guard OverlayGuard
	canvas := renderer.NewRaylib()
	hud := ui.NewHUD()
	panel := ui.NewControlPanel(float32(cfg.Screen.Width)-ui.PanelWidth-10, 10, cfg.Attraction.Force)
	inspector := ui.NewInspector(int32(cfg.Screen.Width), int32(cfg.Screen.Height), cfg.Neuron.Radius)

	for !rl.WindowShouldClose() {
		if ctx.Err() != nil {
			return nil
		}

		if rl.IsKeyPressed(rl.KeySpace) {
			sim.TogglePaused()
		}
		if rl.IsKeyPressed(rl.KeyR) {
			sim.Reset()
		}

		mouse := rl.GetMousePosition()
		inspector.HandleInput(mouse, sim)
		// Presses that start on the panel belong to raygui
		down := rl.IsMouseButtonDown(rl.MouseButtonLeft)
		if guard.Allow(panel.Contains(mouse), down, tracker.Down()) {
			pos := r2.Vec{X: float64(mouse.X), Y: float64(mouse.Y)}
			for _, ev := range tracker.Sample(pos, down) {
				sim.HandlePointer(ev)
			}
		}

		sim.Update(clock.Millis())

		rl.BeginDrawing()
		sim.Draw(canvas)
		inspector.Draw(sim)
		hud.Draw(ui.StatusLines(sim.Snapshot(), float64(rl.GetFPS())))
		hud.DrawControls(int32(cfg.Screen.Height), "[Space] pause  [R] reset  click: toggle  drag: move  right click: inspect")
		panel.Draw(sim)
		rl.EndDrawing()
		sim.RecordFrame()

		if maxTicks > 0 && int(sim.Frame()) >= maxTicks {
			break
		}
	}
	return nil
}
