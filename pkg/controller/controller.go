package controller

import (
	"fmt"
	"log"
	"runtime"
	"sync"

	"github.com/willbeason/zoom-fractal/pkg/action"
	"github.com/willbeason/zoom-fractal/pkg/function"
	"github.com/willbeason/zoom-fractal/pkg/pixel"
	"github.com/willbeason/zoom-fractal/pkg/plane"
	"github.com/willbeason/zoom-fractal/pkg/view"
)

// ID tags an emitted frame. Action counts the actions started so far and
// Image the states produced so far, both from 1 and across all phases.
type ID struct {
	Action int
	Image  int
}

// A Sink receives finished frames. The buffer is reused for the next frame,
// so a Sink must be done with it when Emit returns.
type Sink interface {
	Emit(id ID, state view.State, buf *pixel.Buffer) error
}

// SinkFunc adapts a function to a Sink.
type SinkFunc func(id ID, state view.State, buf *pixel.Buffer) error

func (f SinkFunc) Emit(id ID, state view.State, buf *pixel.Buffer) error {
	return f(id, state, buf)
}

// Phase is an ordered list of actions. Only phases with Render set emit frames.
type Phase struct {
	Name    string
	Actions []action.Action
	Render  bool
}

// Controller owns the view state and drives actions over it, rendering a frame
// for every state produced by a rendering phase.
type Controller struct {
	function function.Function
	palette  pixel.Palette
	phases   []Phase
	sink     Sink
	workers  int
	logger   *log.Logger

	state view.State

	// pixels holds 0..ImageSize-1 as floats, the pixel side of the mapping.
	pixels []float64
	buffer *pixel.Buffer
	values []function.Value

	// last holds the carried value of every coordinate left unresolved by the
	// previous frame.
	last map[plane.Complex]function.Carried
}

type Option func(*Controller)

// WithState sets the state before the first action.
func WithState(s view.State) Option {
	return func(c *Controller) { c.state = s }
}

func WithPalette(p pixel.Palette) Option {
	return func(c *Controller) { c.palette = p }
}

func WithSink(s Sink) Option {
	return func(c *Controller) { c.sink = s }
}

// WithWorkers sets how many goroutines render rows. Values below 1 use one.
func WithWorkers(n int) Option {
	return func(c *Controller) { c.workers = max(n, 1) }
}

func WithLogger(l *log.Logger) Option {
	return func(c *Controller) { c.logger = l }
}

// New creates a Controller that runs setup without rendering and then renders
// every state produced by sequence.
func New(f function.Function, setup, sequence []action.Action, opts ...Option) *Controller {
	c := &Controller{
		function: f,
		palette:  pixel.Wheel{},
		phases: []Phase{
			{Name: "setup", Actions: setup, Render: false},
			{Name: "sequence", Actions: sequence, Render: true},
		},
		sink:    SinkFunc(func(ID, view.State, *pixel.Buffer) error { return nil }),
		workers: runtime.NumCPU(),
		logger:  log.Default(),
		state:   view.Default(),
		last:    make(map[plane.Complex]function.Carried),
	}

	for _, opt := range opts {
		opt(c)
	}

	c.resize(c.state.ImageSize)

	return c
}

func (c *Controller) State() view.State {
	return c.state
}

// Buffer is the most recently rendered frame.
func (c *Controller) Buffer() *pixel.Buffer {
	return c.buffer
}

// Run steps every action of every phase to exhaustion. It stops at the first
// error returned by the sink.
func (c *Controller) Run() error {
	var id ID

	for _, phase := range c.phases {
		c.logger.Printf("%s: %d actions", phase.Name, len(phase.Actions))

		for _, a := range phase.Actions {
			id.Action++

			for {
				next, ok := a.Next(c.state)
				if !ok {
					break
				}
				id.Image++
				c.setState(next)

				if !phase.Render {
					continue
				}

				c.render()
				if err := c.sink.Emit(id, c.state, c.buffer); err != nil {
					return fmt.Errorf("emitting image %d of action %d: %w", id.Image, id.Action, err)
				}
				c.logger.Printf("image %d action %d: size=%d iterations=%d depth=%g center=%v",
					id.Image, id.Action, c.state.ImageSize, c.state.Iterations, c.state.Depth, c.state.Center)
			}
		}
	}

	return nil
}

// RenderState renders s into the buffer without running any action or
// calling the sink.
func (c *Controller) RenderState(s view.State) *pixel.Buffer {
	c.setState(s)
	c.render()
	return c.buffer
}

func (c *Controller) setState(s view.State) {
	if s.ImageSize != c.state.ImageSize {
		c.resize(s.ImageSize)
	}
	c.state = s
}

// resize reallocates everything sized by the image.
func (c *Controller) resize(size int) {
	size = max(size, 0)

	c.pixels = make([]float64, size)
	for i := range c.pixels {
		c.pixels[i] = float64(i)
	}

	if c.buffer == nil {
		c.buffer = pixel.NewBuffer(size)
	} else {
		c.buffer.Resize(size)
	}
	c.values = make([]function.Value, size*size)
}

func (c *Controller) render() {
	s := c.state
	size := c.buffer.Size()
	frame := s.Frame()
	reals, imaginaries := s.Axes(c.pixels)

	rows := make(chan int)
	go func() {
		for y := 0; y < size; y++ {
			rows <- y
		}
		close(rows)
	}()

	// Workers only read c.last; it is replaced once every row is done.
	wg := sync.WaitGroup{}
	wg.Add(c.workers)
	for i := 0; i < c.workers; i++ {
		go func() {
			defer wg.Done()

			for y := range rows {
				for x := 0; x < size; x++ {
					coordinate := plane.New(reals[x], imaginaries[y])

					var last *function.Carried
					if carried, ok := c.last[coordinate]; ok {
						last = &carried
					}

					v := c.function.Value(coordinate, s.Iterations, frame, last)
					c.values[x+y*size] = v
					if v.Resolved {
						c.buffer.Set(x, y, c.palette.Pixel(v.Hue))
					} else {
						c.buffer.Set(x, y, pixel.Black)
					}
				}
			}
		}()
	}
	wg.Wait()

	last := make(map[plane.Complex]function.Carried, len(c.last))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			v := c.values[x+y*size]
			if !v.Resolved {
				last[plane.New(reals[x], imaginaries[y])] = v.Carried
			}
		}
	}
	c.last = last
}
