package device

import "fmt"

// LightOnBrightness is the brightness (percent) a light takes when switched on.
const LightOnBrightness = 75

// Light is a switchable light with a fixed on-brightness.
//
// Invariant: off implies brightness 0, on implies brightness 75.
type Light struct {
	base
	on         bool
	brightness int
}

// NewLight creates a light that starts OFF.
func NewLight(location string, opts ...Option) *Light {
	l := &Light{}
	l.init(KindLight, location, opts)
	return l
}

// Activate switches the light on at LightOnBrightness.
func (l *Light) Activate() {
	l.mu.Lock()
	l.on = true
	l.brightness = LightOnBrightness
	msg := fmt.Sprintf("%s light is ON (Brightness: %d%%)", l.location, l.brightness)
	l.mu.Unlock()

	l.notify(msg)
}

// Deactivate switches the light off.
func (l *Light) Deactivate() {
	l.mu.Lock()
	l.on = false
	l.brightness = 0
	l.mu.Unlock()

	l.notify(l.location + " light is OFF")
}

// Describe returns the on/off state and brightness.
func (l *Light) Describe() string {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.on {
		return l.location + " Light: OFF"
	}
	return fmt.Sprintf("%s Light: ON (Brightness: %d%%)", l.location, l.brightness)
}

// IsOn reports whether the light is on.
func (l *Light) IsOn() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.on
}

// Brightness returns the current brightness in percent.
func (l *Light) Brightness() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.brightness
}

// State returns {"on": bool, "brightness": int}.
func (l *Light) State() State {
	l.mu.Lock()
	defer l.mu.Unlock()
	return State{"on": l.on, "brightness": l.brightness}
}
