package telemetry

import (
	"math"
	"testing"
)

func TestCollectorWindowFrames(t *testing.T) {
	c := NewCollector(5, 1.0/60)
	if got := c.WindowDurationFrames(); got != 300 {
		t.Errorf("WindowDurationFrames = %d, want 300", got)
	}
	if c.ShouldFlush(299) {
		t.Error("should not flush before window end")
	}
	if !c.ShouldFlush(300) {
		t.Error("should flush at window end")
	}

	tiny := NewCollector(0.001, 1.0/60)
	if got := tiny.WindowDurationFrames(); got != 1 {
		t.Errorf("tiny window = %d frames, want 1", got)
	}
}

func TestCollectorFlush(t *testing.T) {
	c := NewCollector(1, 0.1)
	c.RecordAdmission(1)
	c.RecordAdmission(3)
	c.RecordPlacementFailure(8)
	c.RecordConnections(4)
	c.RecordConnections(2)
	c.RecordToggles(2)
	c.RecordDrag()

	sample := PopulationSample{Neurons: 3, Active: 1, Degrees: []float64{0, 2, 4}}
	s := c.Flush(10, 1.0, sample)

	if s.WindowStartFrame != 0 || s.WindowEndFrame != 10 {
		t.Errorf("window = [%d,%d], want [0,10]", s.WindowStartFrame, s.WindowEndFrame)
	}
	if s.Admissions != 2 || s.PlacementFailures != 1 {
		t.Errorf("admissions=%d failures=%d, want 2 and 1", s.Admissions, s.PlacementFailures)
	}
	if s.PlacementAttemptsMean != 4 || s.PlacementAttemptsMax != 8 {
		t.Errorf("attempts mean=%g max=%d, want 4 and 8", s.PlacementAttemptsMean, s.PlacementAttemptsMax)
	}
	if s.NewConnections != 6 || s.TotalConnections != 6 {
		t.Errorf("new=%d total=%d, want 6 and 6", s.NewConnections, s.TotalConnections)
	}
	if s.DegreeMean != 2 || s.DegreeMax != 4 {
		t.Errorf("degree mean=%g max=%g, want 2 and 4", s.DegreeMean, s.DegreeMax)
	}
	if s.Toggles != 2 || s.Drags != 1 {
		t.Errorf("toggles=%d drags=%d, want 2 and 1", s.Toggles, s.Drags)
	}

	// Counters reset, window advances
	next := c.Flush(20, 2.0, PopulationSample{})
	if next.WindowStartFrame != 10 {
		t.Errorf("next window start = %d, want 10", next.WindowStartFrame)
	}
	if next.Admissions != 0 || next.NewConnections != 0 || next.PlacementAttemptsMean != 0 {
		t.Errorf("counters not reset: %+v", next)
	}
}

func TestComputeDegreeStats(t *testing.T) {
	got := ComputeDegreeStats([]float64{4, 1, 3, 2})
	if got.Mean != 2.5 {
		t.Errorf("Mean = %g, want 2.5", got.Mean)
	}
	wantStd := math.Sqrt(1.25)
	if math.Abs(got.Std-wantStd) > 1e-12 {
		t.Errorf("Std = %g, want %g", got.Std, wantStd)
	}
	if got.P50 != 2 {
		t.Errorf("P50 = %g, want 2", got.P50)
	}
	if got.P90 != 4 {
		t.Errorf("P90 = %g, want 4", got.P90)
	}
	if got.Max != 4 {
		t.Errorf("Max = %g, want 4", got.Max)
	}

	if empty := ComputeDegreeStats(nil); empty != (DegreeStats{}) {
		t.Errorf("empty stats = %+v, want zero", empty)
	}
}
