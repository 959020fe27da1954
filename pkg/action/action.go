package action

import (
	"errors"

	"github.com/willbeason/zoom-fractal/pkg/view"
)

// ErrUnsupportedMethod is returned when an action is configured with a method
// that is declared but has no implementation.
var ErrUnsupportedMethod = errors.New("unsupported action method")

// An Action advances a view.State one step at a time.
//
// Each call to Next consumes one step of the action's budget and returns the
// new state. Once the budget is spent Next returns false, on that call and on
// every call after it. Actions are not safe for concurrent use.
//
// The set of actions is closed: Zoom, Pan, Iterate, Resize and Simultaneous.
type Action interface {
	Next(view.State) (view.State, bool)

	action()
}

// budget is the remaining step count shared by every stepping action.
type budget struct {
	steps int
}

// take reports how many steps remained before this call and consumes one.
// It returns 0 when nothing is left.
func (b *budget) take() int {
	if b.steps <= 0 {
		return 0
	}

	remaining := b.steps
	b.steps--
	return remaining
}

// Remaining is the number of calls to Next that will still produce a state.
func (b *budget) Remaining() int {
	return max(b.steps, 0)
}

// towards moves an integer value towards target by the remaining distance
// divided by the remaining steps, truncating the delta toward zero.
func towards(value, target, remaining int) int {
	return value + int(float64(target-value)/float64(remaining))
}
