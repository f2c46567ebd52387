// Package command provides the reversible actions dispatched by the hub.
//
// Every action knows how to execute itself against one device and how to
// undo that execution. Undo is structural: it calls the opposite device
// operation rather than restoring a saved state, so undoing a thermostat
// increase that was clamped at the upper bound still lowers the set point.
//
// Action variants:
//   - LightOn / LightOff
//   - MusicOn / MusicOff
//   - ThermostatUp / ThermostatDown
//   - NoOp: the identity action, used to fill empty hub slots
//
// Actions hold no mutable state of their own and are safe to register in
// several slots. ForDevice returns the canonical pair for a device model
// and is the only place in the package that can fail.
package command
