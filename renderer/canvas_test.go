package renderer

import (
	"image/color"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
)

func TestRecorderKeepsColorsPerCall(t *testing.T) {
	red := color.RGBA{R: 0xff, A: 0xff}
	blue := color.RGBA{B: 0xff, A: 0xff}

	var r Recorder
	r.Clear(color.RGBA{A: 0xff})
	r.SetFill(red)
	r.Circle(r2.Vec{X: 1, Y: 2}, 8)
	r.SetFill(blue)
	r.Circle(r2.Vec{X: 3, Y: 4}, 8)
	r.SetStroke(blue)
	r.Line(r2.Vec{}, r2.Vec{X: 1})

	if len(r.Circles) != 2 || len(r.Lines) != 1 {
		t.Fatalf("got %d circles %d lines, want 2 and 1", len(r.Circles), len(r.Lines))
	}
	if r.Circles[0].Fill != red || r.Circles[1].Fill != blue {
		t.Errorf("circle fills = %v %v", r.Circles[0].Fill, r.Circles[1].Fill)
	}
	if r.Lines[0].Stroke != blue {
		t.Errorf("line stroke = %v, want blue", r.Lines[0].Stroke)
	}

	r.Clear(red)
	if len(r.Circles) != 0 || len(r.Lines) != 0 || r.Background != red {
		t.Errorf("Clear should reset the frame, got %+v", r)
	}
}
