// Package hub implements the slot-based action dispatcher with single-level undo.
//
// A Hub holds a fixed number of slots. Each slot carries an activate and a
// deactivate action, both NoOp until something is registered. Triggering a
// slot executes the bound action and remembers it as the last action;
// UndoLast reverses that action without forgetting it, so repeated undos
// replay the same reversal.
//
// Out-of-range slot indexes are ignored rather than rejected. Nothing on the
// dispatch path returns an error.
//
// # Collaborators
//
//   - Notifier: receives the status report lines from PublishStatus
//   - Observer: told about every dispatch (activate, deactivate, undo)
//   - Logger: debug output for ignored calls
//
// The hub never refers to concrete device types; new device models plug in
// by providing new command.Action implementations.
//
// # Thread Safety
//
// All methods are safe for concurrent use. Actions, notifiers and observers
// run while the hub lock is held and must not call back into the hub.
//
// # Usage
//
//	h := hub.New(hub.DefaultSlotCount, hub.WithObserver(auditRecorder))
//	h.Register(0, command.NewLightOn(kitchen), command.NewLightOff(kitchen))
//	h.TriggerActivate(0)
//	h.UndoLast()
package hub
