//go:build ebiten

package host

import (
	"context"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/synapse/config"
	"github.com/pthm-cable/synapse/game"
	"github.com/pthm-cable/synapse/renderer"
	"github.com/pthm-cable/synapse/ui"
)

// Backend names the window library compiled into this binary.
const Backend = "ebiten"

// window adapts a Simulation to the ebiten.Game interface.
type window struct {
	ctx      context.Context
	sim      *game.Simulation
	cfg      *config.Config
	clock    Clock
	tracker  *PointerTracker
	canvas   *renderer.Ebiten
	maxTicks int
}

// Update handles input and advances the simulation by one frame.
func (w *window) Update() error {
	if w.ctx.Err() != nil || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		w.sim.TogglePaused()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		w.sim.Reset()
	}

	x, y := ebiten.CursorPosition()
	pos := r2.Vec{X: float64(x), Y: float64(y)}
	for _, ev := range w.tracker.Sample(pos, ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)) {
		w.sim.HandlePointer(ev)
	}

	w.sim.Update(w.clock.Millis())

	if w.maxTicks > 0 && int(w.sim.Frame()) >= w.maxTicks {
		return ebiten.Termination
	}
	return nil
}

// Draw renders the current simulation state.
func (w *window) Draw(screen *ebiten.Image) {
	w.canvas.Target = screen
	w.sim.Draw(w.canvas)
	lines := ui.StatusLines(w.sim.Snapshot(), ebiten.ActualFPS())
	ebitenutil.DebugPrint(screen, strings.Join(lines, "\n"))
	w.sim.RecordFrame()
}

// Layout returns the logical canvas size.
func (w *window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return w.cfg.Screen.Width, w.cfg.Screen.Height
}

// RunWindow opens an ebiten window and runs the simulation until the window
// closes, ctx is done or maxTicks frames have run (0 = unlimited).
func RunWindow(ctx context.Context, sim *game.Simulation, cfg *config.Config, maxTicks int) error {
	ebiten.SetWindowSize(cfg.Screen.Width, cfg.Screen.Height)
	ebiten.SetWindowTitle("synapse")
	ebiten.SetTPS(cfg.Screen.TargetFPS)

	w := &window{
		ctx:      ctx,
		sim:      sim,
		cfg:      cfg,
		clock:    NewWallClock(),
		tracker:  NewPointerTracker(cfg.Input.ClickSlop),
		canvas:   renderer.NewEbiten(),
		maxTicks: maxTicks,
	}
	return ebiten.RunGame(w)
}
