package game

import (
	"github.com/pthm-cable/synapse/renderer"
)

// Draw renders the population: each neuron as a filled circle followed by
// a line to every neuron in its own connection set. It only reads state.
func (s *Simulation) Draw(c renderer.Canvas) {
	colors := s.cfg.Colors
	activated := colors.Activated.ToRGBA()
	deactivated := colors.Deactivated.ToRGBA()
	diameter := 2 * s.cfg.Neuron.Radius

	c.Clear(colors.Background.ToRGBA())
	c.SetStroke(colors.Connection.ToRGBA())

	for _, e := range s.order {
		pos := s.posMap.Get(e).Vec()
		if s.actMap.Get(e).On {
			c.SetFill(activated)
		} else {
			c.SetFill(deactivated)
		}
		c.Circle(pos, diameter)

		for _, target := range s.connMap.Get(e).Targets {
			c.Line(pos, s.posMap.Get(target).Vec())
		}
	}
}
