package action

import (
	"errors"
	"math"
	"testing"

	"github.com/fogleman/ease"

	"github.com/willbeason/zoom-fractal/pkg/plane"
	"github.com/willbeason/zoom-fractal/pkg/view"
)

func start() view.State {
	return view.State{ImageSize: 64, Center: plane.Zero, Iterations: 100, Depth: 4}
}

// run steps a until it is exhausted and returns every produced state.
func run(a Action, s view.State) []view.State {
	var states []view.State
	for {
		next, ok := a.Next(s)
		if !ok {
			return states
		}
		s = next
		states = append(states, s)
	}
}

// TestExhaustion verifies every variant stops after its budget and stays stopped.
func TestExhaustion(t *testing.T) {
	for _, steps := range []int{-3, 0, 1, 2, 7} {
		actions := map[string]Action{
			"zoom factor": NewZoomFactor(0.5, steps),
			"zoom target": NewZoomTarget(0.01, steps),
			"pan":         NewPan(plane.New(-0.75, 0.1), steps),
			"pan eased":   NewPanEased(plane.New(-0.75, 0.1), steps, ease.InOutCubic),
			"iterate":     NewIterate(500, steps),
			"resize":      NewResize(16, steps),
		}

		want := max(steps, 0)
		for name, a := range actions {
			if got := Remaining(a); got != want {
				t.Errorf("%s steps=%d: Expected %d remaining, got %d", name, steps, want, got)
			}

			states := run(a, start())
			if len(states) != want {
				t.Errorf("%s steps=%d: Expected %d states, got %d", name, steps, want, len(states))
			}

			for i := 0; i < 3; i++ {
				if _, ok := a.Next(start()); ok {
					t.Errorf("%s steps=%d: Expected exhausted action to stay exhausted", name, steps)
				}
			}
		}
	}
}

func TestZoomTargetLandsOnTarget(t *testing.T) {
	for _, steps := range []int{1, 3, 30, 300} {
		target := 0.0001
		states := run(NewZoomTarget(target, steps), start())

		last := states[len(states)-1].Depth
		if math.Abs(last-target)/target > 1e-9 {
			t.Errorf("steps=%d: Expected final depth %g, got %g", steps, target, last)
		}

		prev := start().Depth
		for i, s := range states {
			if s.Depth >= prev {
				t.Errorf("steps=%d: Expected depth to shrink at step %d, got %g after %g", steps, i, s.Depth, prev)
			}
			prev = s.Depth
		}
	}
}

// TestZoomTargetIsLogarithmic verifies every step zooms by the same ratio.
func TestZoomTargetIsLogarithmic(t *testing.T) {
	states := run(NewZoomTarget(4e-6, 6), start())

	want := math.Pow(1e-6, 1.0/6)
	prev := start().Depth
	for i, s := range states {
		if got := s.Depth / prev; math.Abs(got-want) > 1e-9 {
			t.Errorf("Expected ratio %f at step %d, got %f", want, i, got)
		}
		prev = s.Depth
	}
}

func TestZoomFactor(t *testing.T) {
	states := run(NewZoomFactor(0.5, 3), start())
	want := []float64{2, 1, 0.5}
	for i, s := range states {
		if s.Depth != want[i] {
			t.Errorf("Expected depth %f at step %d, got %f", want[i], i, s.Depth)
		}
	}
}

// TestPanLinear verifies the center arrives at the target along a straight line.
func TestPanLinear(t *testing.T) {
	origin := plane.New(0.5, -0.25)
	target := plane.New(-0.745078913977592, 0.11846019897722749)
	s := start()
	s.Center = origin

	states := run(NewPan(target, 10), s)
	if len(states) != 10 {
		t.Fatalf("Expected 10 states, got %d", len(states))
	}

	last := states[len(states)-1].Center
	if last.Sub(target).Abs() > 1e-12 {
		t.Errorf("Expected final center %v, got %v", target, last)
	}

	dir := target.Sub(origin)
	for i, st := range states {
		d := st.Center.Sub(origin)
		cross := d.Real*dir.Imaginary - d.Imaginary*dir.Real
		if math.Abs(cross) > 1e-12 {
			t.Errorf("Expected center on the segment at step %d, got %v", i, st.Center)
		}

		progress := (d.Real*dir.Real + d.Imaginary*dir.Imaginary) / dir.Norm()
		if want := float64(i+1) / 10; math.Abs(progress-want) > 1e-9 {
			t.Errorf("Expected progress %f at step %d, got %f", want, i, progress)
		}
	}
}

func TestPanEased(t *testing.T) {
	target := plane.New(1, 1)
	states := run(NewPanEased(target, 4, ease.InOutQuad), start())

	if states[3].Center != target {
		t.Errorf("Expected final center %v, got %v", target, states[3].Center)
	}

	// InOutQuad is symmetric: halfway in time is halfway in distance.
	if mid := states[1].Center; math.Abs(mid.Real-0.5) > 1e-12 || math.Abs(mid.Imaginary-0.5) > 1e-12 {
		t.Errorf("Expected (0.5,0.5) halfway, got %v", mid)
	}
}

func TestPanLogarithmicUnsupported(t *testing.T) {
	_, err := NewPanMethod(plane.New(1, 0), 5, PanLogarithmic)
	if !errors.Is(err, ErrUnsupportedMethod) {
		t.Errorf("Expected ErrUnsupportedMethod, got %v", err)
	}

	p, err := NewPanMethod(plane.New(1, 0), 5, PanEased)
	if err != nil || p == nil {
		t.Fatalf("Expected eased pan, got %v", err)
	}
}

func TestIterateTruncates(t *testing.T) {
	s := start()
	s.Iterations = 10

	states := run(NewIterate(20, 3), s)
	// 10 + 10/3 = 13, 13 + 7/2 = 16, 16 + 4/1 = 20
	want := []int{13, 16, 20}
	for i, st := range states {
		if st.Iterations != want[i] {
			t.Errorf("Expected %d iterations at step %d, got %d", want[i], i, st.Iterations)
		}
	}

	// Decreasing truncates toward zero as well.
	states = run(NewIterate(0, 3), s)
	want = []int{7, 4, 0}
	for i, st := range states {
		if st.Iterations != want[i] {
			t.Errorf("Expected %d iterations at step %d, got %d", want[i], i, st.Iterations)
		}
	}
}

func TestResize(t *testing.T) {
	s := start()
	s.ImageSize = 4

	states := run(NewResize(8, 1), s)
	if len(states) != 1 || states[0].ImageSize != 8 {
		t.Fatalf("Expected one state of size 8, got %+v", states)
	}
	if states[0].Depth != s.Depth || states[0].Center != s.Center || states[0].Iterations != s.Iterations {
		t.Errorf("Expected only the size to change, got %+v", states[0])
	}
}

// TestSimultaneous verifies children compose and the longest child sets the length.
func TestSimultaneous(t *testing.T) {
	sim := NewSimultaneous(
		NewResize(128, 2),
		NewZoomFactor(0.5, 5),
		NewIterate(400, 3),
	)

	if got := sim.Remaining(); got != 5 {
		t.Errorf("Expected 5 remaining, got %d", got)
	}

	states := run(sim, start())
	if len(states) != 5 {
		t.Fatalf("Expected 5 states, got %d", len(states))
	}

	last := states[4]
	if last.ImageSize != 128 || last.Iterations != 400 || last.Depth != 4.0/32 {
		t.Errorf("Expected every child applied, got %+v", last)
	}

	if states[2].ImageSize != 128 || states[2].Depth != 0.5 {
		t.Errorf("Expected size done and depth halved thrice at step 2, got %+v", states[2])
	}

	if _, ok := sim.Next(last); ok {
		t.Error("Expected exhausted Simultaneous to report no step")
	}
}

// TestSimultaneousThreadsState verifies each child sees the previous child's output.
func TestSimultaneousThreadsState(t *testing.T) {
	sim := NewSimultaneous(NewZoomFactor(0.5, 1), NewZoomTarget(1, 1))
	states := run(sim, start())

	if len(states) != 1 || states[0].Depth != 1 {
		t.Errorf("Expected depth 1 after composing, got %+v", states)
	}
}

func TestSimultaneousEmpty(t *testing.T) {
	if _, ok := NewSimultaneous().Next(start()); ok {
		t.Error("Expected empty Simultaneous to report no step")
	}
}
