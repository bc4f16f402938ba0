package telemetry

import (
	"fmt"
	"log/slog"
)

// MilestoneType identifies the type of milestone.
type MilestoneType string

const (
	MilestonePopulationFull  MilestoneType = "population_full"
	MilestonePlacementStall  MilestoneType = "placement_stall"
	MilestoneConnectionSurge MilestoneType = "connection_surge"
	MilestoneSettled         MilestoneType = "settled"
)

// Thresholds for milestone detection.
const (
	surgeMultiplier = 2.0
	surgeMinimum    = 10
	settledWindows  = 3
)

// Milestone is a notable moment detected from window stats.
type Milestone struct {
	Type        MilestoneType `csv:"type"`
	Frame       int32         `csv:"frame"`
	Description string        `csv:"description"`
}

// LogMilestone logs the milestone using slog.
func (m Milestone) LogMilestone() {
	slog.Info("milestone",
		"type", string(m.Type),
		"frame", m.Frame,
		"description", m.Description,
	)
}

// MilestoneDetector watches window stats for notable changes.
type MilestoneDetector struct {
	capacity int

	// Rolling history of new-connection counts (circular buffer)
	history     []int
	historyIdx  int
	historyFull bool

	// State tracking
	fullReported    bool
	settledReported bool
	quietWindows    int
	prevFailures    int
}

// NewMilestoneDetector creates a detector for a population cap, keeping
// historySize windows for surge detection.
func NewMilestoneDetector(capacity, historySize int) *MilestoneDetector {
	if historySize < 2 {
		historySize = 2
	}
	return &MilestoneDetector{
		capacity: capacity,
		history:  make([]int, historySize),
	}
}

// Check analyzes the latest stats and returns any triggered milestones.
func (md *MilestoneDetector) Check(stats WindowStats) []Milestone {
	var out []Milestone

	if !md.fullReported && stats.Neurons >= md.capacity {
		md.fullReported = true
		out = append(out, Milestone{
			Type:        MilestonePopulationFull,
			Frame:       stats.WindowEndFrame,
			Description: fmt.Sprintf("population reached cap of %d at %.1fs", md.capacity, stats.SimTimeSec),
		})
	}

	if stats.PlacementFailures > 0 && md.prevFailures == 0 {
		out = append(out, Milestone{
			Type:  MilestonePlacementStall,
			Frame: stats.WindowEndFrame,
			Description: fmt.Sprintf("%d admissions found no room (max %d draws) with %d neurons",
				stats.PlacementFailures, stats.PlacementAttemptsMax, stats.Neurons),
		})
	}
	md.prevFailures = stats.PlacementFailures

	if avg, ok := md.averageConnections(); ok {
		if stats.NewConnections >= surgeMinimum && float64(stats.NewConnections) > avg*surgeMultiplier {
			out = append(out, Milestone{
				Type:        MilestoneConnectionSurge,
				Frame:       stats.WindowEndFrame,
				Description: fmt.Sprintf("%d new connections vs %.1f average", stats.NewConnections, avg),
			})
		}
	}
	md.addToHistory(stats.NewConnections)

	if stats.NewConnections == 0 && stats.Neurons >= md.capacity {
		md.quietWindows++
	} else {
		md.quietWindows = 0
	}
	if !md.settledReported && md.quietWindows >= settledWindows {
		md.settledReported = true
		out = append(out, Milestone{
			Type:        MilestoneSettled,
			Frame:       stats.WindowEndFrame,
			Description: fmt.Sprintf("no new connections for %d windows, %d total", md.quietWindows, stats.TotalConnections),
		})
	}

	return out
}

// Reset forgets all history, for a restarted population.
func (md *MilestoneDetector) Reset() {
	*md = *NewMilestoneDetector(md.capacity, len(md.history))
}

func (md *MilestoneDetector) addToHistory(n int) {
	md.history[md.historyIdx] = n
	md.historyIdx = (md.historyIdx + 1) % len(md.history)
	if md.historyIdx == 0 {
		md.historyFull = true
	}
}

func (md *MilestoneDetector) averageConnections() (float64, bool) {
	h := md.history[:md.historyIdx]
	if md.historyFull {
		h = md.history
	}
	if len(h) == 0 {
		return 0, false
	}
	sum := 0
	for _, n := range h {
		sum += n
	}
	return float64(sum) / float64(len(h)), true
}
