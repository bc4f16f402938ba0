package game

import (
	"log/slog"

	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/synapse/components"
	"github.com/pthm-cable/synapse/systems"
)

// AdmitResult describes what an admission check did.
type AdmitResult int

const (
	AdmitNotDue AdmitResult = iota // interval has not elapsed
	AdmitFull                      // population at cap
	AdmitPlaced                    // a neuron was added
	AdmitNoRoom                    // placement attempts exhausted
)

func (r AdmitResult) String() string {
	switch r {
	case AdmitNotDue:
		return "not_due"
	case AdmitFull:
		return "full"
	case AdmitPlaced:
		return "placed"
	case AdmitNoRoom:
		return "no_room"
	}
	return "unknown"
}

// spawnNeuron creates a deactivated, unconnected neuron at pos and appends
// it to the population order.
func (s *Simulation) spawnNeuron(pos r2.Vec) ecs.Entity {
	id := s.nextID
	s.nextID++

	e := s.neuronMapper.NewEntity(
		&components.Position{X: pos.X, Y: pos.Y},
		&components.Activation{},
		&components.Connections{},
		&components.Neuron{ID: id},
	)
	s.order = append(s.order, e)
	return e
}

// admit adds at most one neuron when the admission interval has elapsed
// and the population is below cap. It returns the outcome and the number
// of placement draws.
func (s *Simulation) admit(now float64) (AdmitResult, int) {
	cfg := s.cfg
	if now-s.lastAdmission < cfg.Population.AdmitIntervalMS {
		return AdmitNotDue, 0
	}
	if len(s.order) >= cfg.Population.Max {
		return AdmitFull, 0
	}

	existing := make([]r2.Vec, len(s.order))
	for i, e := range s.order {
		existing[i] = s.posMap.Get(e).Vec()
	}

	pos, attempts, ok := systems.SamplePlacement(
		s.rng,
		cfg.Derived.Width, cfg.Derived.Height,
		existing,
		cfg.Derived.MinSpacing,
		cfg.Population.MaxPlacementAttempts,
	)
	if !ok {
		// Timer stays put so the next frame retries
		s.collector.RecordPlacementFailure(attempts)
		slog.Debug("no room for neuron", "neurons", len(s.order), "attempts", attempts)
		return AdmitNoRoom, attempts
	}

	s.spawnNeuron(pos)
	s.lastAdmission = now
	s.collector.RecordAdmission(attempts)
	return AdmitPlaced, attempts
}
