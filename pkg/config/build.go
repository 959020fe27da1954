package config

import (
	"fmt"

	"github.com/fogleman/ease"

	"github.com/willbeason/zoom-fractal/pkg/action"
	"github.com/willbeason/zoom-fractal/pkg/controller"
	"github.com/willbeason/zoom-fractal/pkg/function"
	"github.com/willbeason/zoom-fractal/pkg/pixel"
)

var easings = map[string]action.Easing{
	"linear":       ease.Linear,
	"in-quad":      ease.InQuad,
	"out-quad":     ease.OutQuad,
	"in-out-quad":  ease.InOutQuad,
	"in-cubic":     ease.InCubic,
	"out-cubic":    ease.OutCubic,
	"in-out-cubic": ease.InOutCubic,
	"in-sine":      ease.InSine,
	"out-sine":     ease.OutSine,
	"in-out-sine":  ease.InOutSine,
}

func (f Function) Build() (function.Function, error) {
	switch f.Type {
	case "mandelbrot", "":
		return function.Mandelbrot{}, nil
	case "inverse-mandelbrot":
		return function.InverseMandelbrot{}, nil
	case "julia":
		return function.NewJulia(f.C.Complex()), nil
	case "gradient":
		return function.Gradient{}, nil
	case "quadratic":
		return function.Quadratic{}, nil
	}

	return nil, fmt.Errorf("%w %q", ErrUnknownFunction, f.Type)
}

func (p Palette) Build() (pixel.Palette, error) {
	switch p.Type {
	case "wheel", "":
		return pixel.Wheel{}, nil
	case "gradient":
		if len(p.Stops) == 0 {
			return pixel.NewGradient(pixel.Rainbow.Stops, p.Chroma, p.Luminance), nil
		}
		return pixel.NewGradient(p.Stops, p.Chroma, p.Luminance), nil
	}

	return nil, fmt.Errorf("%w %q", ErrUnknownPalette, p.Type)
}

func (a Action) Build() (action.Action, error) {
	switch a.Type {
	case "zoom":
		return a.zoom()
	case "pan":
		return a.pan()
	case "iterate":
		if a.Iterations == nil {
			return nil, fmt.Errorf("iterate: %w iterations", ErrMissingTarget)
		}
		return action.NewIterate(*a.Iterations, a.Steps), nil
	case "resize":
		if a.Size == nil {
			return nil, fmt.Errorf("resize: %w size", ErrMissingTarget)
		}
		return action.NewResize(*a.Size, a.Steps), nil
	case "simultaneous":
		children, err := buildActions(a.Actions)
		if err != nil {
			return nil, fmt.Errorf("simultaneous: %w", err)
		}
		return action.NewSimultaneous(children...), nil
	}

	return nil, fmt.Errorf("%w %q", ErrUnknownAction, a.Type)
}

func (a Action) zoom() (action.Action, error) {
	method := a.Method
	if method == "" {
		method = "target"
		if a.Depth == nil {
			method = "factor"
		}
	}

	switch method {
	case "factor":
		return action.NewZoomFactor(a.Factor, a.Steps), nil
	case "target":
		if a.Depth == nil {
			return nil, fmt.Errorf("zoom: %w depth", ErrMissingTarget)
		}
		return action.NewZoomTarget(*a.Depth, a.Steps), nil
	}

	return nil, fmt.Errorf("zoom %q: %w", method, action.ErrUnsupportedMethod)
}

func (a Action) pan() (action.Action, error) {
	if a.Center == nil {
		return nil, fmt.Errorf("pan: %w center", ErrMissingTarget)
	}
	target := a.Center.Complex()

	switch a.Method {
	case "linear", "":
		return action.NewPan(target, a.Steps), nil
	case "logarithmic":
		// Declared but unsupported: fails here so a run never starts.
		_, err := action.NewPanMethod(target, a.Steps, action.PanLogarithmic)
		return nil, err
	case "eased":
		if a.Easing == "" {
			a.Easing = "in-out-quad"
		}
		easing, ok := easings[a.Easing]
		if !ok {
			return nil, fmt.Errorf("%w %q", ErrUnknownEasing, a.Easing)
		}
		return action.NewPanEased(target, a.Steps, easing), nil
	}

	return nil, fmt.Errorf("pan %q: %w", a.Method, action.ErrUnsupportedMethod)
}

func buildActions(configs []Action) ([]action.Action, error) {
	actions := make([]action.Action, 0, len(configs))
	for i, c := range configs {
		a, err := c.Build()
		if err != nil {
			return nil, fmt.Errorf("action %d: %w", i+1, err)
		}
		actions = append(actions, a)
	}
	return actions, nil
}

// Controller builds a controller for the run. opts are applied after the
// options derived from the config.
func (c Config) Controller(opts ...controller.Option) (*controller.Controller, error) {
	f, err := c.Function.Build()
	if err != nil {
		return nil, fmt.Errorf("function: %w", err)
	}

	palette, err := c.Palette.Build()
	if err != nil {
		return nil, fmt.Errorf("palette: %w", err)
	}

	setup, err := buildActions(c.Setup)
	if err != nil {
		return nil, fmt.Errorf("setup: %w", err)
	}

	sequence, err := buildActions(c.Sequence)
	if err != nil {
		return nil, fmt.Errorf("sequence: %w", err)
	}

	options := []controller.Option{
		controller.WithState(c.View.State()),
		controller.WithPalette(palette),
	}
	if c.Output.Workers > 0 {
		options = append(options, controller.WithWorkers(c.Output.Workers))
	}

	return controller.New(f, setup, sequence, append(options, opts...)...), nil
}
