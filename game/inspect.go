package game

import (
	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/synapse/systems"
)

// NeuronInfo describes one neuron for display.
type NeuronInfo struct {
	ID        uint32
	Pos       r2.Vec
	Active    bool
	OutDegree int // links this neuron recorded
	InDegree  int // links other neurons recorded to it
}

// NeuronAt returns the first neuron in order under p.
func (s *Simulation) NeuronAt(p r2.Vec) (ecs.Entity, bool) {
	radius := s.cfg.Neuron.Radius
	for _, e := range s.order {
		if systems.IsUnderPointer(s.posMap.Get(e).Vec(), p, radius) {
			return e, true
		}
	}
	return ecs.Entity{}, false
}

// Inspect gathers display data for e. It returns false when e is not a
// live neuron.
func (s *Simulation) Inspect(e ecs.Entity) (NeuronInfo, bool) {
	if !s.world.Alive(e) || !s.idMap.Has(e) {
		return NeuronInfo{}, false
	}
	info := NeuronInfo{
		ID:        s.idMap.Get(e).ID,
		Pos:       s.posMap.Get(e).Vec(),
		Active:    s.actMap.Get(e).On,
		OutDegree: s.connMap.Get(e).Len(),
	}
	for _, other := range s.order {
		if s.connMap.Get(other).Has(e) {
			info.InDegree++
		}
	}
	return info, true
}

// Epoch counts resets. Entity handles taken in an earlier epoch must not
// be used.
func (s *Simulation) Epoch() int { return s.epoch }
