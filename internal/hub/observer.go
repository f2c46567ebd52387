package hub

import "time"

// Op identifies the kind of dispatch.
type Op string

const (
	OpActivate   Op = "activate"
	OpDeactivate Op = "deactivate"
	OpUndo       Op = "undo"
)

// UndoSlot is the Slot value carried by undo dispatches.
const UndoSlot = -1

// Dispatch describes one action the hub has just run.
type Dispatch struct {
	Op     Op
	Slot   int    // UndoSlot for OpUndo
	Action string // variant name of the executed or undone action
	At     time.Time
}

// Observer is told about every dispatch after the action has run.
//
// Observers are called with the hub locked, in dispatch order, and must
// return promptly; sinks that do I/O queue the work instead.
// Out-of-range triggers produce no dispatch.
type Observer interface {
	ObserveDispatch(d Dispatch)
}

// ObserverFunc adapts a plain function to the Observer interface.
type ObserverFunc func(d Dispatch)

// ObserveDispatch calls f(d).
func (f ObserverFunc) ObserveDispatch(d Dispatch) {
	f(d)
}

// Observers fans a dispatch out to several observers in order.
type Observers []Observer

// ObserveDispatch forwards d to every non-nil observer.
func (os Observers) ObserveDispatch(d Dispatch) {
	for _, o := range os {
		if o != nil {
			o.ObserveDispatch(d)
		}
	}
}

type noopObserver struct{}

func (noopObserver) ObserveDispatch(Dispatch) {}
