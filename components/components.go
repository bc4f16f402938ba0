// Package components defines ECS components for neurons.
package components

import "gonum.org/v1/gonum/spatial/r2"

// Position represents a neuron's canvas position.
type Position struct {
	X, Y float64
}

// Vec returns the position as a vector.
func (p Position) Vec() r2.Vec {
	return r2.Vec{X: p.X, Y: p.Y}
}

// Set moves the position to v.
func (p *Position) Set(v r2.Vec) {
	p.X = v.X
	p.Y = v.Y
}

// Activation is the user-toggled visual state.
type Activation struct {
	On bool
}

// Toggle flips the activation state.
func (a *Activation) Toggle() {
	a.On = !a.On
}

// Neuron holds identity data.
type Neuron struct {
	ID uint32 // creation sequence number, 0 for the seed neuron
}
