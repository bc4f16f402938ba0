package game

import (
	"log/slog"

	"github.com/pthm-cable/synapse/telemetry"
)

// flushTelemetry checks if the stats window should be flushed and handles milestones.
func (s *Simulation) flushTelemetry() {
	if !s.collector.ShouldFlush(s.frame) {
		return
	}

	stats := s.collector.Flush(s.frame, s.simTimeSec(), s.samplePopulation())
	perfStats := s.perfCollector.Stats()
	s.lastStats = stats

	if s.statsCallback != nil {
		s.statsCallback(stats)
	}

	if s.logStats {
		stats.LogStats()
		perfStats.LogStats()
	}

	if err := s.outputManager.WriteTelemetry(stats); err != nil {
		slog.Error("failed to write telemetry", "error", err)
	}
	if err := s.outputManager.WritePerf(perfStats, stats.WindowEndFrame); err != nil {
		slog.Error("failed to write perf", "error", err)
	}

	for _, m := range s.milestones.Check(stats) {
		if s.logStats {
			m.LogMilestone()
		}
		if err := s.outputManager.WriteMilestone(m); err != nil {
			slog.Error("failed to write milestone", "error", err)
		}
	}
}

// samplePopulation collects counts and out-degrees for a stats window.
func (s *Simulation) samplePopulation() telemetry.PopulationSample {
	sample := telemetry.PopulationSample{
		Neurons: len(s.order),
		Degrees: make([]float64, 0, len(s.order)),
	}
	for _, e := range s.order {
		if s.actMap.Get(e).On {
			sample.Active++
		}
		sample.Degrees = append(sample.Degrees, float64(s.connMap.Get(e).Len()))
	}
	return sample
}

// simTimeSec converts the frame count to nominal seconds.
func (s *Simulation) simTimeSec() float64 {
	return float64(s.frame) * s.cfg.Derived.FrameMS / 1000
}
