package config

import "fmt"

// ActionKind identifies the calling convention of a command's action
type ActionKind int

const (
	// Standard actions receive the parsed argument values
	Standard ActionKind = iota
	// UI actions take no arguments and return nothing
	UI
	// UIWithReturn actions take no arguments and may return a value
	UIWithReturn
)

// String returns the display name of the kind
func (k ActionKind) String() string {
	switch k {
	case Standard:
		return "standard"
	case UI:
		return "ui"
	case UIWithReturn:
		return "ui-with-return"
	default:
		return fmt.Sprintf("ActionKind(%d)", int(k))
	}
}

// StandardFunc is the action of an argument-parsed command
type StandardFunc func(args []string)

// UIFunc runs a full-screen widget and returns once the user leaves it
type UIFunc func() error

// UIWithReturnFunc runs a widget and reports the value it captured.
// ok is false when the user left without providing a value.
type UIWithReturnFunc func() (value string, ok bool, err error)

// NoValue is printed in place of a result when a widget returned nothing
const NoValue = "<none>"

// Result is the outcome of invoking an Action
type Result struct {
	Returned bool   // the action has a return value at all (UIWithReturn)
	Present  bool   // a value was produced
	Value    string // the value, when Present
}

// String renders the result for printing. Absent values render as NoValue.
func (r Result) String() string {
	if !r.Present {
		return NoValue
	}
	return r.Value
}

// Action holds exactly one of the three action shapes
type Action struct {
	kind         ActionKind
	standard     StandardFunc
	ui           UIFunc
	uiWithReturn UIWithReturnFunc
}

// NewStandardAction wraps fn as a Standard action
func NewStandardAction(fn StandardFunc) Action {
	return Action{kind: Standard, standard: fn}
}

// NewUIAction wraps fn as a UI action
func NewUIAction(fn UIFunc) Action {
	return Action{kind: UI, ui: fn}
}

// NewUIWithReturnAction wraps fn as a UIWithReturn action
func NewUIWithReturnAction(fn UIWithReturnFunc) Action {
	return Action{kind: UIWithReturn, uiWithReturn: fn}
}

// Kind reports the action's calling convention
func (a Action) Kind() ActionKind {
	return a.kind
}

// Invoke calls the action according to its kind.
//
// A Standard action with nil args is not called at all; pass an empty,
// non-nil slice to run it without arguments. UI actions ignore args.
func (a Action) Invoke(args []string) (Result, error) {
	switch a.kind {
	case Standard:
		if args == nil || a.standard == nil {
			return Result{}, nil
		}
		a.standard(args)
		return Result{}, nil

	case UI:
		if a.ui == nil {
			return Result{}, nil
		}
		return Result{}, a.ui()

	case UIWithReturn:
		if a.uiWithReturn == nil {
			return Result{Returned: true}, nil
		}
		value, ok, err := a.uiWithReturn()
		if err != nil {
			return Result{}, err
		}
		return Result{Returned: true, Present: ok, Value: value}, nil

	default:
		return Result{}, fmt.Errorf("unknown action kind %s", a.kind)
	}
}
