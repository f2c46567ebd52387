// Package device provides the device models driven by the Gray Logic Hub.
//
// Each model is a small two-state machine (OFF, ON) with activate and
// deactivate transitions. The thermostat adds temperature adjustments that
// are only available while ON and saturate at the 15..30 °C bounds instead
// of failing.
//
// # Key Types
//
//   - Device: capability set shared by all models (activate, deactivate, describe)
//   - Light: fixed 75% brightness when on, 0 when off
//   - MusicPlayer: plays the default playlist at a fixed volume
//   - Thermostat: on/off plus clamped one-degree adjustments
//   - Notifier: receives one human-readable line per state change
//   - Registry: thread-safe catalogue of devices by ID
//
// No operation in this package returns an error. Conditions such as
// adjusting an OFF thermostat are silent no-ops.
//
// # Usage
//
//	kitchen := device.NewLight("Kitchen", device.WithNotifier(sink))
//	kitchen.Activate()             // "Kitchen light is ON (Brightness: 75%)"
//	fmt.Println(kitchen.Describe()) // "Kitchen Light: ON (Brightness: 75%)"
package device
