package device

import "fmt"

// Temperature bounds (°C) enforced by thermostat adjustments.
const (
	MinTemperature = 15
	MaxTemperature = 30
)

// Thermostat is an on/off heating controller with a set point.
//
// The set point only moves while the thermostat is ON, one degree at a
// time, and saturates at MinTemperature/MaxTemperature. The initial set
// point is taken as given and is not clamped.
type Thermostat struct {
	base
	on          bool
	temperature int
}

// NewThermostat creates a thermostat that starts OFF at the given set point.
func NewThermostat(location string, temperature int, opts ...Option) *Thermostat {
	t := &Thermostat{temperature: temperature}
	t.init(KindThermostat, location, opts)
	return t
}

// Activate turns the thermostat on. The set point is unchanged.
func (t *Thermostat) Activate() {
	t.mu.Lock()
	t.on = true
	msg := fmt.Sprintf("%s thermostat is ON - Set to %d°C", t.location, t.temperature)
	t.mu.Unlock()

	t.notify(msg)
}

// Deactivate turns the thermostat off. The set point is unchanged.
func (t *Thermostat) Deactivate() {
	t.mu.Lock()
	t.on = false
	t.mu.Unlock()

	t.notify(t.location + " thermostat is OFF")
}

// IncreaseTemperature raises the set point by one degree.
// It is a silent no-op while OFF or at MaxTemperature.
func (t *Thermostat) IncreaseTemperature() {
	t.mu.Lock()
	if !t.on || t.temperature >= MaxTemperature {
		t.mu.Unlock()
		return
	}
	t.temperature++
	msg := fmt.Sprintf("%s temperature increased to %d°C", t.location, t.temperature)
	t.mu.Unlock()

	t.notify(msg)
}

// DecreaseTemperature lowers the set point by one degree.
// It is a silent no-op while OFF or at MinTemperature.
func (t *Thermostat) DecreaseTemperature() {
	t.mu.Lock()
	if !t.on || t.temperature <= MinTemperature {
		t.mu.Unlock()
		return
	}
	t.temperature--
	msg := fmt.Sprintf("%s temperature decreased to %d°C", t.location, t.temperature)
	t.mu.Unlock()

	t.notify(msg)
}

// Describe returns the on/off state and set point.
func (t *Thermostat) Describe() string {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.on {
		return t.location + " Thermostat: OFF"
	}
	return fmt.Sprintf("%s Thermostat: ON - %d°C", t.location, t.temperature)
}

// IsOn reports whether the thermostat is on.
func (t *Thermostat) IsOn() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.on
}

// Temperature returns the current set point.
func (t *Thermostat) Temperature() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.temperature
}

// State returns {"on": bool, "temperature": int}.
func (t *Thermostat) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return State{"on": t.on, "temperature": t.temperature}
}
