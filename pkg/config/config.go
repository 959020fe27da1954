package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/willbeason/zoom-fractal/pkg/pixel"
	"github.com/willbeason/zoom-fractal/pkg/plane"
	"github.com/willbeason/zoom-fractal/pkg/view"
)

var (
	ErrUnknownFunction = errors.New("unknown function")
	ErrUnknownPalette  = errors.New("unknown palette")
	ErrUnknownAction   = errors.New("unknown action")
	ErrUnknownEasing   = errors.New("unknown easing")
	ErrMissingTarget   = errors.New("missing target")
)

// Point is a plane coordinate as written in a config file.
type Point struct {
	Real      float64 `yaml:"real"`
	Imaginary float64 `yaml:"imaginary"`
}

func (p Point) Complex() plane.Complex {
	return plane.New(p.Real, p.Imaginary)
}

// Config describes a whole run: what to evaluate, where to start, which
// actions to take and where frames go.
type Config struct {
	Function Function `yaml:"function"`
	Palette  Palette  `yaml:"palette"`
	View     View     `yaml:"view"`
	Setup    []Action `yaml:"setup"`
	Sequence []Action `yaml:"sequence"`
	Output   Output   `yaml:"output"`
}

type Function struct {
	// Type is one of mandelbrot, inverse-mandelbrot, julia, gradient or quadratic.
	Type string `yaml:"type"`
	// C is the Julia constant.
	C Point `yaml:"c"`
}

type Palette struct {
	// Type is wheel or gradient.
	Type      string       `yaml:"type"`
	Chroma    float64      `yaml:"chroma"`
	Luminance float64      `yaml:"luminance"`
	Stops     []pixel.Stop `yaml:"stops"`
}

type View struct {
	ImageSize  int     `yaml:"imageSize"`
	Center     Point   `yaml:"center"`
	Iterations int     `yaml:"iterations"`
	Depth      float64 `yaml:"depth"`
}

func (v View) State() view.State {
	return view.State{
		ImageSize:  v.ImageSize,
		Center:     v.Center.Complex(),
		Iterations: v.Iterations,
		Depth:      v.Depth,
	}
}

// Action is one entry of the setup or sequence lists. Which fields apply
// depends on Type:
//
//	zoom:         steps, factor or depth (method factor or target)
//	pan:          steps, center, method (linear, logarithmic, eased), easing
//	iterate:      steps, iterations
//	resize:       steps, size
//	simultaneous: actions
type Action struct {
	Type       string   `yaml:"type"`
	Steps      int      `yaml:"steps"`
	Method     string   `yaml:"method"`
	Factor     float64  `yaml:"factor"`
	Depth      *float64 `yaml:"depth"`
	Center     *Point   `yaml:"center"`
	Easing     string   `yaml:"easing"`
	Iterations *int     `yaml:"iterations"`
	Size       *int     `yaml:"size"`
	Actions    []Action `yaml:"actions"`
}

type Output struct {
	Dir     string `yaml:"dir"`
	Workers int    `yaml:"workers"`
	Mqtt    Mqtt   `yaml:"mqtt"`
}

// Mqtt configures publishing frames to a broker. It is off while URL is empty.
type Mqtt struct {
	URL      string `yaml:"url"`
	ClientID string `yaml:"clientID"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Topic    string `yaml:"topic"`
	QoS      byte   `yaml:"qos"`
}

// Default is the configuration used for anything a file leaves out.
func Default() Config {
	d := view.Default()
	return Config{
		Function: Function{Type: "mandelbrot"},
		Palette:  Palette{Type: "wheel", Chroma: 1.0, Luminance: 0.6},
		View: View{
			ImageSize:  d.ImageSize,
			Center:     Point{Real: d.Center.Real, Imaginary: d.Center.Imaginary},
			Iterations: d.Iterations,
			Depth:      d.Depth,
		},
		Output: Output{
			Dir: "out",
			Mqtt: Mqtt{
				ClientID: "zoom-fractal",
				Topic:    "fractal/frames",
			},
		},
	}
}

// Decode reads a YAML config over the defaults.
func Decode(r io.Reader) (Config, error) {
	c := Default()

	decoder := yaml.NewDecoder(r)
	err := decoder.Decode(&c)
	if err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}

	return c, nil
}

func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer f.Close()

	c, err := Decode(f)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return c, nil
}
