package sink

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"

	"github.com/willbeason/zoom-fractal/pkg/controller"
	"github.com/willbeason/zoom-fractal/pkg/pixel"
	"github.com/willbeason/zoom-fractal/pkg/view"
)

// PNG writes every frame to Dir as <image>-action-<action>.png.
type PNG struct {
	Dir string
}

func NewPNG(dir string) (*PNG, error) {
	err := os.MkdirAll(dir, os.ModePerm)
	if err != nil {
		return nil, err
	}

	return &PNG{Dir: dir}, nil
}

func (p *PNG) Path(id controller.ID) string {
	return filepath.Join(p.Dir, fmt.Sprintf("%d-action-%d.png", id.Image, id.Action))
}

func (p *PNG) Emit(id controller.ID, _ view.State, buf *pixel.Buffer) error {
	f, err := os.Create(p.Path(id))
	if err != nil {
		return err
	}

	err = png.Encode(f, buf.Image())
	if err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

var _ controller.Sink = &PNG{}
