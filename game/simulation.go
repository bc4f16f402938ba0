// Package game owns the neuron population and runs the per-frame update.
package game

import (
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/synapse/components"
	"github.com/pthm-cable/synapse/config"
	"github.com/pthm-cable/synapse/systems"
	"github.com/pthm-cable/synapse/telemetry"
)

// Options configures a Simulation beyond the loaded config.
type Options struct {
	Seed           int64
	Rand           systems.Sampler // overrides Seed when set
	LogStats       bool            // log window stats to slog
	StatsWindowSec float64         // 0 uses telemetry.stats_window
	OutputDir      string          // CSV/YAML output, empty disables
	StatsCallback  func(telemetry.WindowStats)
}

// Simulation holds the complete animation state.
type Simulation struct {
	cfg *config.Config
	rng systems.Sampler

	world *ecs.World

	// Entity mapper for spawning with all components
	neuronMapper *ecs.Map4[
		components.Position,
		components.Activation,
		components.Connections,
		components.Neuron,
	]

	// Individual component mappers for lookups
	posMap  *ecs.Map[components.Position]
	actMap  *ecs.Map[components.Activation]
	connMap *ecs.Map[components.Connections]
	idMap   *ecs.Map[components.Neuron]

	// Population in creation order
	order  []ecs.Entity
	nextID uint32
	epoch  int // bumped by Reset; entity handles from older epochs are stale

	attraction systems.AttractionParams

	// Timing
	now           float64 // ms, last Update time
	lastAdmission float64 // ms
	frame         int32
	paused        bool

	// Pointer state
	pointer    r2.Vec
	dragging   bool
	dragTarget ecs.Entity
	dragOn     bool

	// Telemetry
	collector     *telemetry.Collector
	perfCollector *telemetry.PerfCollector
	milestones    *telemetry.MilestoneDetector
	outputManager *telemetry.OutputManager
	logStats      bool
	statsCallback func(telemetry.WindowStats)
	lastStats     telemetry.WindowStats
}

// NewSimulation creates a simulation seeded with one neuron at the canvas centre.
func NewSimulation(cfg *config.Config, opts Options) (*Simulation, error) {
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(opts.Seed))
	}

	windowSec := opts.StatsWindowSec
	if windowSec <= 0 {
		windowSec = cfg.Telemetry.StatsWindow
	}

	outputManager, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("creating output manager: %w", err)
	}
	if err := outputManager.WriteConfig(cfg); err != nil {
		outputManager.Close()
		return nil, fmt.Errorf("writing config: %w", err)
	}

	s := &Simulation{
		cfg: cfg,
		rng: rng,
		attraction: systems.AttractionParams{
			Threshold:   cfg.Attraction.Threshold,
			MinDistance: cfg.Derived.MinDistance,
			Force:       cfg.Attraction.Force,
		},
		dragOn:        cfg.Input.EnableDrag,
		collector:     telemetry.NewCollector(windowSec, cfg.Derived.FrameMS/1000),
		perfCollector: telemetry.NewPerfCollector(cfg.Telemetry.PerfCollectorWindow),
		milestones:    telemetry.NewMilestoneDetector(cfg.Population.Max, cfg.Telemetry.MilestoneHistorySize),
		outputManager: outputManager,
		logStats:      opts.LogStats,
		statsCallback: opts.StatsCallback,
	}
	s.initWorld()

	slog.Info("simulation created",
		"variant", cfg.Variant,
		"width", cfg.Screen.Width,
		"height", cfg.Screen.Height,
		"max", cfg.Population.Max,
		"drag", s.dragOn,
		"min_distance", s.attraction.MinDistance,
		"output_dir", outputManager.Dir(),
	)
	return s, nil
}

// initWorld builds a fresh ECS world holding the centre neuron.
func (s *Simulation) initWorld() {
	world := ecs.NewWorld()
	s.world = world
	s.neuronMapper = ecs.NewMap4[
		components.Position,
		components.Activation,
		components.Connections,
		components.Neuron,
	](world)
	s.posMap = ecs.NewMap[components.Position](world)
	s.actMap = ecs.NewMap[components.Activation](world)
	s.connMap = ecs.NewMap[components.Connections](world)
	s.idMap = ecs.NewMap[components.Neuron](world)

	s.order = s.order[:0]
	s.nextID = 0
	s.dragging = false
	s.spawnNeuron(r2.Vec{X: s.cfg.Derived.Width / 2, Y: s.cfg.Derived.Height / 2})
}

// Update advances the animation by one frame. nowMS is the host clock in
// milliseconds and must not decrease between calls.
func (s *Simulation) Update(nowMS float64) {
	s.now = nowMS
	s.perfCollector.StartTick()

	if !s.paused {
		s.perfCollector.StartPhase(telemetry.PhaseAdmission)
		s.admit(nowMS)

		s.perfCollector.StartPhase(telemetry.PhaseAttraction)
		s.attract()
	}

	s.perfCollector.StartPhase(telemetry.PhaseDrag)
	s.followPointer()

	s.perfCollector.StartPhase(telemetry.PhaseTelemetry)
	s.frame++
	s.flushTelemetry()

	s.perfCollector.EndTick()
}

// attract runs the force and connection step for every neuron in order.
func (s *Simulation) attract() {
	added := 0
	for _, e := range s.order {
		added += s.attraction.ApplyAttraction(e, s.order, s.posMap, s.connMap)
	}
	if added > 0 {
		s.collector.RecordConnections(added)
	}
}

// Reset discards the population and starts again from the centre neuron.
func (s *Simulation) Reset() {
	s.epoch++
	s.initWorld()
	s.lastAdmission = s.now
	s.milestones.Reset()
	slog.Info("simulation reset", "frame", s.frame)
}

// Close flushes and closes telemetry output.
func (s *Simulation) Close() error {
	return s.outputManager.Close()
}

// TogglePaused pauses or resumes admission and attraction.
func (s *Simulation) TogglePaused() {
	s.paused = !s.paused
}

// Paused reports whether the simulation is paused.
func (s *Simulation) Paused() bool { return s.paused }

// SetDragEnabled switches pointer dragging on or off. Turning it off ends
// any drag in progress.
func (s *Simulation) SetDragEnabled(on bool) {
	s.dragOn = on
	if !on {
		s.dragging = false
	}
}

// DragEnabled reports whether presses can start a drag.
func (s *Simulation) DragEnabled() bool { return s.dragOn }

// SetForce changes the attraction force factor. Negative values are
// clamped to zero.
func (s *Simulation) SetForce(f float64) {
	s.attraction.Force = max(f, 0)
}

// Force returns the attraction force factor.
func (s *Simulation) Force() float64 { return s.attraction.Force }

// Frame returns the number of updates run so far.
func (s *Simulation) Frame() int32 { return s.frame }

// Len returns the population size.
func (s *Simulation) Len() int { return len(s.order) }

// Neurons returns the population in creation order. The slice must not be modified.
func (s *Simulation) Neurons() []ecs.Entity { return s.order }

// PositionOf returns a neuron's current position.
func (s *Simulation) PositionOf(e ecs.Entity) r2.Vec {
	return s.posMap.Get(e).Vec()
}

// IsActive reports a neuron's activation state.
func (s *Simulation) IsActive(e ecs.Entity) bool {
	return s.actMap.Get(e).On
}

// ConnectionsOf returns a neuron's outgoing links in insertion order.
func (s *Simulation) ConnectionsOf(e ecs.Entity) []ecs.Entity {
	return s.connMap.Get(e).Targets
}

// Snapshot is a summary of the population for display.
type Snapshot struct {
	Neurons     int
	Max         int
	Active      int
	Connections int
	Frame       int32
	Paused      bool
	Dragging    bool
	Variant     string
}

// Snapshot summarizes the current state.
func (s *Simulation) Snapshot() Snapshot {
	snap := Snapshot{
		Neurons:  len(s.order),
		Max:      s.cfg.Population.Max,
		Frame:    s.frame,
		Paused:   s.paused,
		Dragging: s.dragging,
		Variant:  s.cfg.Variant,
	}
	for _, e := range s.order {
		if s.actMap.Get(e).On {
			snap.Active++
		}
		snap.Connections += s.connMap.Get(e).Len()
	}
	return snap
}

// LastStats returns the most recently flushed telemetry window.
func (s *Simulation) LastStats() telemetry.WindowStats { return s.lastStats }

// PerfStats returns the rolling update timings.
func (s *Simulation) PerfStats() telemetry.PerfStats { return s.perfCollector.Stats() }

// RecordFrame marks a rendered frame for FPS tracking.
func (s *Simulation) RecordFrame() { s.perfCollector.RecordFrame() }
