package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for a window of frames.
type WindowStats struct {
	WindowStartFrame int32   `csv:"-"`
	WindowEndFrame   int32   `csv:"window_end"`
	SimTimeSec       float64 `csv:"sim_time"`

	// Population at window end
	Neurons int `csv:"neurons"`
	Active  int `csv:"active"`

	// Admission during window
	Admissions            int     `csv:"admissions"`
	PlacementFailures     int     `csv:"placement_failures"`
	PlacementAttemptsMean float64 `csv:"placement_attempts_mean"`
	PlacementAttemptsMax  int     `csv:"placement_attempts_max"`

	// Connections
	NewConnections   int `csv:"new_connections"`
	TotalConnections int `csv:"connections"`

	// Out-degree distribution (sampled at window end)
	DegreeMean float64 `csv:"degree_mean"`
	DegreeStd  float64 `csv:"degree_std"`
	DegreeP50  float64 `csv:"degree_p50"`
	DegreeP90  float64 `csv:"degree_p90"`
	DegreeMax  float64 `csv:"degree_max"`

	// Interaction
	Toggles int `csv:"toggles"`
	Drags   int `csv:"drags"`
}

// DegreeStats summarizes an out-degree sample.
type DegreeStats struct {
	Mean, Std, P50, P90, Max float64
}

// ComputeDegreeStats calculates mean, population std and percentiles.
func ComputeDegreeStats(values []float64) DegreeStats {
	n := len(values)
	if n == 0 {
		return DegreeStats{}
	}

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	return DegreeStats{
		Mean: stat.Mean(sorted, nil),
		Std:  stat.PopStdDev(sorted, nil),
		P50:  stat.Quantile(0.5, stat.Empirical, sorted, nil),
		P90:  stat.Quantile(0.9, stat.Empirical, sorted, nil),
		Max:  sorted[n-1],
	}
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("window_start", int(s.WindowStartFrame)),
		slog.Int("window_end", int(s.WindowEndFrame)),
		slog.Float64("sim_time", s.SimTimeSec),
		slog.Int("neurons", s.Neurons),
		slog.Int("active", s.Active),
		slog.Int("admissions", s.Admissions),
		slog.Int("placement_failures", s.PlacementFailures),
		slog.Float64("placement_attempts_mean", s.PlacementAttemptsMean),
		slog.Int("placement_attempts_max", s.PlacementAttemptsMax),
		slog.Int("new_connections", s.NewConnections),
		slog.Int("connections", s.TotalConnections),
		slog.Float64("degree_mean", s.DegreeMean),
		slog.Float64("degree_std", s.DegreeStd),
		slog.Float64("degree_p50", s.DegreeP50),
		slog.Float64("degree_p90", s.DegreeP90),
		slog.Float64("degree_max", s.DegreeMax),
		slog.Int("toggles", s.Toggles),
		slog.Int("drags", s.Drags),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats", "window", s)
}
