package telemetry

// PopulationSample is the neuron state sampled when a window is flushed.
type PopulationSample struct {
	Neurons int
	Active  int
	Degrees []float64 // out-degree per neuron
}

// Collector accumulates events within frame windows and produces WindowStats.
type Collector struct {
	windowDurationSec    float64
	windowDurationFrames int32

	// Current window tracking
	windowStartFrame int32

	// Event counters for current window
	admissions        int
	placementFailures int
	attemptsSum       int
	attemptsMax       int
	newConnections    int
	toggles           int
	drags             int
}

// NewCollector creates a new stats collector.
// windowDurationSec: how long each stats window lasts
// frameSec: nominal seconds per frame (used for time-to-frame conversion)
func NewCollector(windowDurationSec float64, frameSec float64) *Collector {
	framesPerWindow := int32(windowDurationSec / frameSec)
	if framesPerWindow < 1 {
		framesPerWindow = 1
	}

	return &Collector{
		windowDurationSec:    windowDurationSec,
		windowDurationFrames: framesPerWindow,
	}
}

// RecordAdmission records a successful admission and the draws it took.
func (c *Collector) RecordAdmission(attempts int) {
	c.admissions++
	c.recordAttempts(attempts)
}

// RecordPlacementFailure records an admission skipped for lack of room.
func (c *Collector) RecordPlacementFailure(attempts int) {
	c.placementFailures++
	c.recordAttempts(attempts)
}

func (c *Collector) recordAttempts(attempts int) {
	c.attemptsSum += attempts
	if attempts > c.attemptsMax {
		c.attemptsMax = attempts
	}
}

// RecordConnections records newly formed connections.
func (c *Collector) RecordConnections(n int) {
	c.newConnections += n
}

// RecordToggles records activation toggles from one click.
func (c *Collector) RecordToggles(n int) {
	c.toggles += n
}

// RecordDrag records the start of a drag.
func (c *Collector) RecordDrag() {
	c.drags++
}

// ShouldFlush returns true if enough frames have passed to flush the window.
func (c *Collector) ShouldFlush(currentFrame int32) bool {
	return currentFrame-c.windowStartFrame >= c.windowDurationFrames
}

// Flush produces a WindowStats and resets counters for the next window.
func (c *Collector) Flush(currentFrame int32, simTimeSec float64, sample PopulationSample) WindowStats {
	var attemptsMean float64
	if placements := c.admissions + c.placementFailures; placements > 0 {
		attemptsMean = float64(c.attemptsSum) / float64(placements)
	}

	degrees := ComputeDegreeStats(sample.Degrees)
	var total float64
	for _, d := range sample.Degrees {
		total += d
	}

	stats := WindowStats{
		WindowStartFrame: c.windowStartFrame,
		WindowEndFrame:   currentFrame,
		SimTimeSec:       simTimeSec,

		Neurons: sample.Neurons,
		Active:  sample.Active,

		Admissions:            c.admissions,
		PlacementFailures:     c.placementFailures,
		PlacementAttemptsMean: attemptsMean,
		PlacementAttemptsMax:  c.attemptsMax,

		NewConnections:   c.newConnections,
		TotalConnections: int(total),

		DegreeMean: degrees.Mean,
		DegreeStd:  degrees.Std,
		DegreeP50:  degrees.P50,
		DegreeP90:  degrees.P90,
		DegreeMax:  degrees.Max,

		Toggles: c.toggles,
		Drags:   c.drags,
	}

	// Reset for next window
	c.windowStartFrame = currentFrame
	c.admissions = 0
	c.placementFailures = 0
	c.attemptsSum = 0
	c.attemptsMax = 0
	c.newConnections = 0
	c.toggles = 0
	c.drags = 0

	return stats
}

// WindowDurationFrames returns the number of frames per window.
func (c *Collector) WindowDurationFrames() int32 {
	return c.windowDurationFrames
}
