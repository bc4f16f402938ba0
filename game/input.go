package game

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/synapse/systems"
)

// PointerKind identifies a pointer event.
type PointerKind int

const (
	PointerPress PointerKind = iota
	PointerMove
	PointerRelease
	PointerClick
)

// PointerEvent is a pointer event in canvas coordinates.
type PointerEvent struct {
	Kind PointerKind
	Pos  r2.Vec
}

// HandlePointer dispatches an event to the matching handler.
func (s *Simulation) HandlePointer(ev PointerEvent) {
	switch ev.Kind {
	case PointerPress:
		s.PointerPressed(ev.Pos)
	case PointerMove:
		s.PointerMoved(ev.Pos)
	case PointerRelease:
		s.PointerReleased(ev.Pos)
	case PointerClick:
		s.PointerClicked(ev.Pos)
	}
}

// PointerPressed starts dragging the first neuron in order under p.
func (s *Simulation) PointerPressed(p r2.Vec) {
	s.pointer = p
	if !s.dragOn {
		return
	}
	radius := s.cfg.Neuron.Radius
	for _, e := range s.order {
		if systems.IsUnderPointer(s.posMap.Get(e).Vec(), p, radius) {
			s.dragTarget = e
			s.dragging = true
			s.collector.RecordDrag()
			return
		}
	}
}

// PointerMoved records the pointer position.
func (s *Simulation) PointerMoved(p r2.Vec) {
	s.pointer = p
}

// PointerReleased ends any drag.
func (s *Simulation) PointerReleased(p r2.Vec) {
	s.pointer = p
	s.dragging = false
}

// PointerClicked toggles every neuron under p.
func (s *Simulation) PointerClicked(p r2.Vec) {
	radius := s.cfg.Neuron.Radius
	toggled := 0
	for _, e := range s.order {
		if systems.IsUnderPointer(s.posMap.Get(e).Vec(), p, radius) {
			s.actMap.Get(e).Toggle()
			toggled++
		}
	}
	if toggled > 0 {
		s.collector.RecordToggles(toggled)
	}
}

// Dragging reports whether a neuron is being dragged.
func (s *Simulation) Dragging() bool { return s.dragging }

// followPointer pins the drag target to the pointer, overriding the
// force step's result for this frame.
func (s *Simulation) followPointer() {
	if !s.dragging || !s.world.Alive(s.dragTarget) {
		return
	}
	s.posMap.Get(s.dragTarget).Set(s.pointer)
}
