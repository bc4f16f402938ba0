package components

import "github.com/mlange-42/ark/ecs"

// Connections is a directed, grow-only set of neurons this neuron has
// linked to. Targets keeps insertion order for drawing.
type Connections struct {
	Targets []ecs.Entity
	index   map[ecs.Entity]struct{}
}

// Add records a link to target. It returns false when the link already
// exists or target is the owner.
func (c *Connections) Add(owner, target ecs.Entity) bool {
	if owner == target {
		return false
	}
	if c.index == nil {
		c.index = make(map[ecs.Entity]struct{}, 8)
	}
	if _, ok := c.index[target]; ok {
		return false
	}
	c.index[target] = struct{}{}
	c.Targets = append(c.Targets, target)
	return true
}

// Has reports whether a link to target exists.
func (c *Connections) Has(target ecs.Entity) bool {
	_, ok := c.index[target]
	return ok
}

// Len returns the number of links.
func (c *Connections) Len() int {
	return len(c.Targets)
}
