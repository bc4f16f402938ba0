package host

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/synapse/game"
)

// PointerTracker turns sampled mouse state into pointer events.
// A release counts as a click when the pointer stayed within Slop of
// where it was pressed.
type PointerTracker struct {
	Slop float64

	started  bool
	down     bool
	last     r2.Vec
	pressAt  r2.Vec
	wandered bool
}

// NewPointerTracker creates a tracker with the given click slop.
func NewPointerTracker(slop float64) *PointerTracker {
	return &PointerTracker{Slop: slop}
}

// Sample takes the pointer position and button state for one frame and
// returns the events it implies, in delivery order.
func (t *PointerTracker) Sample(pos r2.Vec, down bool) []game.PointerEvent {
	var events []game.PointerEvent

	if !t.started || pos != t.last {
		t.started = true
		t.last = pos
		events = append(events, game.PointerEvent{Kind: game.PointerMove, Pos: pos})
	}
	if t.down && !t.wandered && r2.Norm(r2.Sub(pos, t.pressAt)) > t.Slop {
		t.wandered = true
	}

	switch {
	case down && !t.down:
		t.down = true
		t.pressAt = pos
		t.wandered = false
		events = append(events, game.PointerEvent{Kind: game.PointerPress, Pos: pos})
	case !down && t.down:
		t.down = false
		events = append(events, game.PointerEvent{Kind: game.PointerRelease, Pos: pos})
		if !t.wandered {
			events = append(events, game.PointerEvent{Kind: game.PointerClick, Pos: pos})
		}
	}
	return events
}

// Down reports whether the button is held.
func (t *PointerTracker) Down() bool { return t.down }

// OverlayGuard keeps gestures that begin on a UI overlay away from the
// tracker until the button is released, even if the pointer leaves the
// overlay while held.
type OverlayGuard struct {
	held bool
}

// Allow reports whether this frame's pointer state should reach the
// tracker. tracking is the tracker's own Down state.
func (g *OverlayGuard) Allow(onOverlay, down, tracking bool) bool {
	if g.held {
		if !down {
			g.held = false
		}
		return false
	}
	if down && !tracking && onOverlay {
		g.held = true
		return false
	}
	// Hovering the overlay with the button up is harmless
	return !onOverlay || tracking
}
