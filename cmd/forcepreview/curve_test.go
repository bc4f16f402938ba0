//go:build !ebiten

package main

import (
	"math"
	"testing"

	"github.com/pthm-cable/synapse/config"
)

func TestStepCurve(t *testing.T) {
	cfg := config.Default()
	ap := defaultParams(cfg).attraction(cfg.Neuron.Radius)
	steps, peak := stepCurve(ap)

	if len(steps) != samples+1 {
		t.Fatalf("len = %d, want %d", len(steps), samples+1)
	}
	at := func(d int) float64 { return steps[d*samples/maxDistance] }

	if at(50) != 0 {
		t.Errorf("step in dead zone = %g, want 0", at(50))
	}
	if at(150) != 0 {
		t.Errorf("step past threshold = %g, want 0", at(150))
	}
	if got, want := at(90), 0.05*(1-0.9)*90; math.Abs(got-want) > 1e-9 {
		t.Errorf("step at 90 = %g, want %g", got, want)
	}
	if peak < at(90) {
		t.Errorf("peak %g below a sampled step", peak)
	}
}
