// Package ui provides the on-screen HUD and control panel.
package ui

import (
	"fmt"

	"github.com/pthm-cable/synapse/game"
)

// StatusLines formats the HUD text for a snapshot.
func StatusLines(snap game.Snapshot, fps float64) []string {
	status := "Running"
	if snap.Paused {
		status = "PAUSED"
	}
	if snap.Dragging {
		status += " | dragging"
	}
	return []string{
		fmt.Sprintf("Neurons: %d/%d | Connections: %d | Active: %d", snap.Neurons, snap.Max, snap.Connections, snap.Active),
		fmt.Sprintf("Frame: %d | FPS: %.0f | Variant: %s", snap.Frame, fps, snap.Variant),
		status,
	}
}
