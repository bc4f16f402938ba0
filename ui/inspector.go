//go:build !ebiten

package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/synapse/game"
)

// Inspector panel dimensions
const (
	inspectorWidth   = 200
	inspectorPadding = 10
	inspectorLines   = 5
	inspectorLineH   = 18
)

// Inspector panel colors
var (
	colorPanelBg     = rl.Color{R: 30, G: 30, B: 35, A: 240}
	colorPanelBorder = rl.Color{R: 70, G: 70, B: 80, A: 255}
	colorSelection   = rl.Color{R: 255, G: 220, B: 0, A: 255}
)

// Inspectable is the part of the simulation the inspector reads.
type Inspectable interface {
	NeuronAt(p r2.Vec) (ecs.Entity, bool)
	Inspect(e ecs.Entity) (game.NeuronInfo, bool)
	Epoch() int
}

// Inspector manages neuron selection and the detail panel.
type Inspector struct {
	selected    ecs.Entity
	hasSelected bool
	epoch       int
	radius      float32
	panelX      int32
	panelY      int32
}

// NewInspector creates an inspector whose panel sits in the bottom-right
// corner of the screen.
func NewInspector(screenWidth, screenHeight int32, radius float64) *Inspector {
	height := int32(inspectorLines*inspectorLineH + 2*inspectorPadding)
	return &Inspector{
		radius: float32(radius),
		panelX: screenWidth - inspectorWidth - 10,
		panelY: screenHeight - height - 40,
	}
}

// HandleInput selects the neuron under a right click, or clears the
// selection when the click hits empty space.
func (ins *Inspector) HandleInput(mouse rl.Vector2, sim Inspectable) {
	if !rl.IsMouseButtonPressed(rl.MouseButtonRight) {
		return
	}
	e, ok := sim.NeuronAt(r2.Vec{X: float64(mouse.X), Y: float64(mouse.Y)})
	if !ok {
		ins.Deselect()
		return
	}
	ins.selected = e
	ins.hasSelected = true
	ins.epoch = sim.Epoch()
}

// Deselect clears the current selection.
func (ins *Inspector) Deselect() {
	ins.hasSelected = false
}

// Draw renders the selection ring and the detail panel.
func (ins *Inspector) Draw(sim Inspectable) {
	if !ins.hasSelected {
		return
	}
	// Selection does not survive a reset
	if sim.Epoch() != ins.epoch {
		ins.Deselect()
		return
	}
	info, ok := sim.Inspect(ins.selected)
	if !ok {
		ins.Deselect()
		return
	}

	center := rl.Vector2{X: float32(info.Pos.X), Y: float32(info.Pos.Y)}
	rl.DrawCircleLinesV(center, ins.radius+4, colorSelection)

	height := int32(inspectorLines*inspectorLineH + 2*inspectorPadding)
	rl.DrawRectangle(ins.panelX, ins.panelY, inspectorWidth, height, colorPanelBg)
	rl.DrawRectangleLines(ins.panelX, ins.panelY, inspectorWidth, height, colorPanelBorder)

	state := "deactivated"
	if info.Active {
		state = "activated"
	}
	lines := []string{
		fmt.Sprintf("Neuron #%d", info.ID),
		fmt.Sprintf("Pos: %.1f, %.1f", info.Pos.X, info.Pos.Y),
		"State: " + state,
		fmt.Sprintf("Out links: %d", info.OutDegree),
		fmt.Sprintf("In links: %d", info.InDegree),
	}
	x := ins.panelX + inspectorPadding
	y := ins.panelY + inspectorPadding
	for i, line := range lines {
		c := rl.LightGray
		if i == 0 {
			c = rl.White
		}
		rl.DrawText(line, x, y+int32(i)*inspectorLineH, 14, c)
	}
}
