package board

import (
	"errors"
	"fmt"
)

// View names one of the mutually exclusive panels.
type View int

const (
	ViewList View = iota
	ViewCreate
)

// Views lists every panel in navigation order.
var Views = []View{ViewList, ViewCreate}

var ErrUnknownView = errors.New("unknown view")

func (v View) String() string {
	switch v {
	case ViewList:
		return "list"
	case ViewCreate:
		return "create"
	default:
		return fmt.Sprintf("View(%d)", int(v))
	}
}

// Title is the label shown on the view's navigation control.
func (v View) Title() string {
	switch v {
	case ViewList:
		return "All Quizzes"
	case ViewCreate:
		return "Create Quiz"
	default:
		return v.String()
	}
}

func (v View) valid() bool {
	return v == ViewList || v == ViewCreate
}

// ParseView maps a panel name to its View.
func ParseView(name string) (View, error) {
	switch name {
	case "list":
		return ViewList, nil
	case "create":
		return ViewCreate, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownView, name)
}

// Nav holds the single active panel. Its zero value has the list active.
type Nav struct {
	active View
}

// Activate makes v the only active panel and reports whether the list must
// be refetched, which is every time the list is activated. Passing a view
// that does not exist is a programming error and panics.
func (n *Nav) Activate(v View) (refresh bool) {
	if !v.valid() {
		panic(fmt.Sprintf("activate: %v", v))
	}
	n.active = v
	return v == ViewList
}

func (n Nav) Active() View { return n.active }

func (n Nav) IsActive(v View) bool { return n.active == v }

// Next returns the panel after the active one, wrapping around.
func (n Nav) Next() View {
	for i, v := range Views {
		if v == n.active {
			return Views[(i+1)%len(Views)]
		}
	}
	return ViewList
}
