package host

import (
	"reflect"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/synapse/game"
)

type frame struct {
	pos  r2.Vec
	down bool
}

func kinds(events []game.PointerEvent) []game.PointerKind {
	out := make([]game.PointerKind, 0, len(events))
	for _, ev := range events {
		out = append(out, ev.Kind)
	}
	return out
}

func TestPointerTrackerSequences(t *testing.T) {
	p := r2.Vec{X: 100, Y: 100}

	tests := []struct {
		name   string
		frames []frame
		want   [][]game.PointerKind
	}{
		{
			name: "click in place",
			frames: []frame{
				{p, false},
				{p, true},
				{p, false},
			},
			want: [][]game.PointerKind{
				{game.PointerMove},
				{game.PointerPress},
				{game.PointerRelease, game.PointerClick},
			},
		},
		{
			name: "jitter within slop still clicks",
			frames: []frame{
				{p, true},
				{r2.Add(p, r2.Vec{X: 2, Y: 2}), true},
				{r2.Add(p, r2.Vec{X: 3}), false},
			},
			want: [][]game.PointerKind{
				{game.PointerMove, game.PointerPress},
				{game.PointerMove},
				{game.PointerMove, game.PointerRelease, game.PointerClick},
			},
		},
		{
			name: "drag is not a click",
			frames: []frame{
				{p, true},
				{r2.Add(p, r2.Vec{X: 50}), true},
				{p, false},
			},
			want: [][]game.PointerKind{
				{game.PointerMove, game.PointerPress},
				{game.PointerMove},
				{game.PointerMove, game.PointerRelease},
			},
		},
		{
			name: "hover only moves",
			frames: []frame{
				{p, false},
				{p, false},
				{r2.Add(p, r2.Vec{Y: 1}), false},
			},
			want: [][]game.PointerKind{
				{game.PointerMove},
				nil,
				{game.PointerMove},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := NewPointerTracker(3)
			for i, f := range tt.frames {
				got := kinds(tr.Sample(f.pos, f.down))
				want := tt.want[i]
				if len(got) == 0 && len(want) == 0 {
					continue
				}
				if !reflect.DeepEqual(got, want) {
					t.Errorf("frame %d: events = %v, want %v", i, got, want)
				}
			}
		})
	}
}

func TestPointerTrackerClickPosition(t *testing.T) {
	tr := NewPointerTracker(3)
	tr.Sample(r2.Vec{X: 10, Y: 10}, true)
	events := tr.Sample(r2.Vec{X: 11, Y: 10}, false)
	last := events[len(events)-1]
	if last.Kind != game.PointerClick || last.Pos != (r2.Vec{X: 11, Y: 10}) {
		t.Errorf("last event = %+v, want click at release position", last)
	}
	if tr.Down() {
		t.Error("tracker should be up after release")
	}
}

func TestOverlayGuard(t *testing.T) {
	onPanel := func(p r2.Vec) bool { return p.X >= 500 }
	slider := r2.Vec{X: 600, Y: 50}
	canvas := r2.Vec{X: 300, Y: 300}

	tests := []struct {
		name   string
		frames []frame
		want   []game.PointerKind
	}{
		{
			name: "slider grab dragged off the panel",
			frames: []frame{
				{slider, false},
				{slider, true},
				{canvas, true},
				{canvas, false},
				{r2.Add(canvas, r2.Vec{Y: 1}), false},
			},
			want: []game.PointerKind{game.PointerMove},
		},
		{
			name: "neuron drag across the panel",
			frames: []frame{
				{canvas, true},
				{slider, true},
				{slider, false},
			},
			want: []game.PointerKind{
				game.PointerMove, game.PointerPress,
				game.PointerMove,
				game.PointerRelease,
			},
		},
		{
			name: "hover over the panel",
			frames: []frame{
				{slider, false},
				{r2.Add(slider, r2.Vec{X: 5}), false},
			},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var guard OverlayGuard
			tr := NewPointerTracker(3)
			var got []game.PointerKind
			for _, f := range tt.frames {
				if guard.Allow(onPanel(f.pos), f.down, tr.Down()) {
					got = append(got, kinds(tr.Sample(f.pos, f.down))...)
				}
			}
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("events = %v, want %v", got, tt.want)
			}
		})
	}
}
