package action

import "github.com/willbeason/zoom-fractal/pkg/view"

// Simultaneous runs several actions as one. Every call steps each child in
// order, feeding the state produced by one child into the next. It lasts as
// long as its longest child.
type Simultaneous struct {
	actions []Action
}

func NewSimultaneous(actions ...Action) *Simultaneous {
	return &Simultaneous{actions: actions}
}

func (sim *Simultaneous) Next(s view.State) (view.State, bool) {
	advanced := false

	for _, a := range sim.actions {
		if next, ok := a.Next(s); ok {
			s = next
			advanced = true
		}
	}

	return s, advanced
}

// Remaining is the number of calls that will still produce a state.
func (sim *Simultaneous) Remaining() int {
	longest := 0
	for _, a := range sim.actions {
		longest = max(longest, Remaining(a))
	}
	return longest
}

func (*Simultaneous) action() {}

// Remaining reports how many more states a will produce.
func Remaining(a Action) int {
	switch a := a.(type) {
	case *Zoom:
		return a.Remaining()
	case *Pan:
		return a.Remaining()
	case *Iterate:
		return a.Remaining()
	case *Resize:
		return a.Remaining()
	case *Simultaneous:
		return a.Remaining()
	}
	return 0
}
