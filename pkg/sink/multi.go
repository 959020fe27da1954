package sink

import (
	"github.com/willbeason/zoom-fractal/pkg/controller"
	"github.com/willbeason/zoom-fractal/pkg/pixel"
	"github.com/willbeason/zoom-fractal/pkg/view"
)

// Multi hands every frame to each sink in order, stopping at the first error.
type Multi []controller.Sink

func (m Multi) Emit(id controller.ID, state view.State, buf *pixel.Buffer) error {
	for _, s := range m {
		if err := s.Emit(id, state, buf); err != nil {
			return err
		}
	}
	return nil
}
