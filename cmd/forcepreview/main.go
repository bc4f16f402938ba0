//go:build !ebiten

// Force curve preview tool - plots how far a neuron moves toward a
// neighbour per frame as a function of distance, with sliders for the
// attraction parameters.
//
// Usage: go run ./cmd/forcepreview
package main

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	gui "github.com/gen2brain/raylib-go/raygui"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/synapse/config"
	"github.com/pthm-cable/synapse/systems"
)

const (
	windowWidth  = 1000
	windowHeight = 620
	plotSize     = 560
	plotX        = 40
	plotY        = 20
	panelX       = plotX + plotSize + 30
	panelWidth   = windowWidth - panelX - 20
	maxDistance  = 250
	samples      = 250
)

// previewParams holds the slider values.
type previewParams struct {
	Threshold        float32
	Force            float32
	MinDistanceRadii float32
}

func defaultParams(cfg *config.Config) previewParams {
	return previewParams{
		Threshold:        float32(cfg.Attraction.Threshold),
		Force:            float32(cfg.Attraction.Force),
		MinDistanceRadii: float32(cfg.Attraction.MinDistanceRadii),
	}
}

func (p previewParams) attraction(radius float64) systems.AttractionParams {
	return systems.AttractionParams{
		Threshold:   float64(p.Threshold),
		Force:       float64(p.Force),
		MinDistance: float64(p.MinDistanceRadii) * radius,
	}
}

// stepCurve samples the per-frame displacement toward a neighbour at
// each distance in [0, maxDistance].
func stepCurve(ap systems.AttractionParams) (steps []float64, peak float64) {
	steps = make([]float64, samples+1)
	for i := range steps {
		d := float64(i) * maxDistance / samples
		next, _, ok := ap.Nudge(r2.Vec{}, r2.Vec{X: d})
		if ok {
			steps[i] = next.X
		}
		peak = max(peak, steps[i])
	}
	return steps, peak
}

func main() {
	cfg := config.Default()
	radius := cfg.Neuron.Radius
	params := defaultParams(cfg)

	rl.InitWindow(windowWidth, windowHeight, "Attraction Preview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(30)

	for !rl.WindowShouldClose() {
		ap := params.attraction(radius)
		steps, peak := stepCurve(ap)

		rl.BeginDrawing()
		rl.ClearBackground(rl.RayWhite)

		// Plot
		rl.DrawRectangleLines(plotX, plotY, plotSize, plotSize, rl.DarkGray)
		scaleY := float32(1)
		if peak > 0 {
			scaleY = float32(plotSize-20) / float32(peak)
		}
		toScreen := func(i int, v float64) rl.Vector2 {
			return rl.Vector2{
				X: plotX + float32(i)*plotSize/samples,
				Y: plotY + plotSize - float32(v)*scaleY,
			}
		}
		// Gate band
		if ap.MinDistance > 0 && ap.MinDistance < ap.Threshold {
			x0 := plotX + float32(ap.MinDistance)*plotSize/maxDistance
			rl.DrawRectangle(plotX, plotY, int32(x0-plotX), plotSize, rl.Fade(rl.Red, 0.1))
		}
		for i := 1; i < len(steps); i++ {
			rl.DrawLineV(toScreen(i-1, steps[i-1]), toScreen(i, steps[i]), rl.Magenta)
		}
		thresholdX := int32(plotX + float32(ap.Threshold)*plotSize/maxDistance)
		rl.DrawLine(thresholdX, plotY, thresholdX, plotY+plotSize, rl.SkyBlue)

		rl.DrawText(fmt.Sprintf("distance 0..%d", maxDistance), plotX, plotY+plotSize+8, 14, rl.Gray)
		rl.DrawText(fmt.Sprintf("peak step %.3f px/frame", peak), plotX+220, plotY+plotSize+8, 14, rl.Gray)

		// Control panel
		y := float32(plotY)
		rl.DrawText("Attraction Parameters", panelX, int32(y), 20, rl.DarkGray)
		y += 35

		params.Threshold = slider(&y, "Threshold (connection distance)", "10", "250", params.Threshold, 10, maxDistance, "%.0f")
		params.Force = slider(&y, "Force (fraction of gap at zero distance)", "0", "0.3", params.Force, 0, 0.3, "%.3f")
		params.MinDistanceRadii = slider(&y, "Min distance (radii, 0 = none)", "0", "60", params.MinDistanceRadii, 0, 60, "%.1f")
		y += 10

		if gui.Button(rl.Rectangle{X: panelX, Y: y, Width: 120, Height: 30}, "Variant A") {
			params.MinDistanceRadii = 20
		}
		if gui.Button(rl.Rectangle{X: panelX + 130, Y: y, Width: 120, Height: 30}, "Variant B") {
			params.MinDistanceRadii = 0
		}
		y += 45
		if gui.Button(rl.Rectangle{X: panelX, Y: y, Width: 120, Height: 30}, "Reset All") {
			params = defaultParams(cfg)
		}
		y += 55

		// Output YAML
		rl.DrawText("YAML Config:", panelX, int32(y), 16, rl.DarkGray)
		y += 25
		for _, line := range []string{
			"variant: custom",
			"attraction:",
			fmt.Sprintf("  threshold: %.0f", params.Threshold),
			fmt.Sprintf("  force: %.3f", params.Force),
			fmt.Sprintf("  min_distance_radii: %.1f", params.MinDistanceRadii),
		} {
			rl.DrawText(line, panelX, int32(y), 14, rl.Gray)
			y += 16
		}

		rl.EndDrawing()
	}
}

// slider draws a labelled slider at *y and advances it.
func slider(y *float32, label, left, right string, value, minValue, maxValue float32, format string) float32 {
	rl.DrawText(label, panelX, int32(*y), 14, rl.Gray)
	*y += 18
	v := gui.SliderBar(
		rl.Rectangle{X: panelX + 20, Y: *y, Width: float32(panelWidth - 100), Height: 20},
		left, right,
		value, minValue, maxValue,
	)
	rl.DrawText(fmt.Sprintf(format, v), int32(panelX+panelWidth-70), int32(*y+2), 16, rl.DarkGray)
	*y += 35
	return v
}
