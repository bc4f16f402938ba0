package host

import (
	"context"
	"log/slog"

	"github.com/pthm-cable/synapse/game"
	"github.com/pthm-cable/synapse/renderer"
)

// RunHeadless runs the simulation on a FrameClock without a window,
// drawing into a Recorder so the render step is still exercised.
// It stops after maxTicks frames (0 = unlimited) or when ctx is done.
func RunHeadless(ctx context.Context, sim *game.Simulation, frameMS float64, maxTicks int) error {
	clock := NewFrameClock(frameMS)
	var sink renderer.Recorder

	slog.Info("starting headless simulation", "frame_ms", frameMS, "max_ticks", maxTicks)

	for {
		select {
		case <-ctx.Done():
			slog.Info("headless run interrupted", "frame", sim.Frame())
			return nil
		default:
		}

		clock.Advance()
		sim.Update(clock.Millis())
		sim.Draw(&sink)

		if maxTicks > 0 && int(sim.Frame()) >= maxTicks {
			slog.Info("max ticks reached", "frame", sim.Frame(), "neurons", sim.Len())
			return nil
		}
	}
}
