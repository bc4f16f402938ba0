// Package systems provides the per-frame neuron update logic.
package systems

import (
	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/synapse/components"
)

// AttractionParams configures the pairwise attraction pass.
type AttractionParams struct {
	Threshold   float64 // neurons closer than this attract and connect
	MinDistance float64 // dead zone; <= 0 disables it
	Force       float64 // force factor at zero distance
}

// Gate reports whether a pair at distance d attracts and connects.
// With a dead zone the band is open on both ends: MinDistance < d < Threshold.
func (p AttractionParams) Gate(d float64) bool {
	if d >= p.Threshold {
		return false
	}
	if p.MinDistance > 0 && d <= p.MinDistance {
		return false
	}
	return true
}

// Nudge moves self toward other by Force*(1-d/Threshold) of the
// displacement. When the gate rejects the pair, self is returned unchanged
// and ok is false.
func (p AttractionParams) Nudge(self, other r2.Vec) (next r2.Vec, d float64, ok bool) {
	delta := r2.Sub(other, self)
	d = r2.Norm(delta)
	if !p.Gate(d) {
		return self, d, false
	}
	f := p.Force * (1 - d/p.Threshold)
	return r2.Add(self, r2.Scale(f, delta)), d, true
}

// ApplyAttraction runs one neuron's attraction pass against the population
// in order. Only self moves and only self's connection set grows; each
// comparison uses self's already-nudged position. Returns the number of
// new connections.
func (p AttractionParams) ApplyAttraction(
	self ecs.Entity,
	order []ecs.Entity,
	posMap *ecs.Map[components.Position],
	connMap *ecs.Map[components.Connections],
) int {
	pos := posMap.Get(self)
	conn := connMap.Get(self)

	cur := pos.Vec()
	added := 0
	for _, other := range order {
		if other == self {
			continue
		}
		next, _, ok := p.Nudge(cur, posMap.Get(other).Vec())
		if !ok {
			continue
		}
		cur = next
		if conn.Add(self, other) {
			added++
		}
	}
	pos.Set(cur)
	return added
}
