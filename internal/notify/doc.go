// Package notify provides destinations for device and hub notification lines.
//
// Every type here implements device.Notifier:
//
//   - Console: writes lines to a terminal, coloured by the state they report
//   - Log: forwards lines to a structured logger
//   - Fanout: sends each line to several notifiers in order
package notify
