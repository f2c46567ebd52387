package command

import "github.com/nerrad567/gray-logic-hub/internal/device"

// Variant names reported by Action.Name.
const (
	NameLightOn        = "LightOn"
	NameLightOff       = "LightOff"
	NameMusicOn        = "MusicOn"
	NameMusicOff       = "MusicOff"
	NameThermostatUp   = "ThermostatUp"
	NameThermostatDown = "ThermostatDown"
	NameNoOp           = "NoOp"
)

// Action is a reversible operation on a single device.
type Action interface {
	// Execute performs the action.
	Execute()

	// Undo performs the exact opposite device operation of Execute.
	Undo()

	// Name returns the variant name, e.g. "LightOn".
	Name() string
}

// NoOp does nothing on execute or undo and emits no notifications.
type NoOp struct{}

func (NoOp) Execute()     {}
func (NoOp) Undo()        {}
func (NoOp) Name() string { return NameNoOp }

// LightOn switches a light on; undo switches it off.
type LightOn struct{ light *device.Light }

// NewLightOn creates a LightOn action for l.
func NewLightOn(l *device.Light) LightOn { return LightOn{light: l} }

func (a LightOn) Execute() {
	if a.light != nil {
		a.light.Activate()
	}
}

func (a LightOn) Undo() {
	if a.light != nil {
		a.light.Deactivate()
	}
}

func (LightOn) Name() string { return NameLightOn }

// LightOff switches a light off; undo switches it on.
type LightOff struct{ light *device.Light }

// NewLightOff creates a LightOff action for l.
func NewLightOff(l *device.Light) LightOff { return LightOff{light: l} }

func (a LightOff) Execute() {
	if a.light != nil {
		a.light.Deactivate()
	}
}

func (a LightOff) Undo() {
	if a.light != nil {
		a.light.Activate()
	}
}

func (LightOff) Name() string { return NameLightOff }

// MusicOn starts playback; undo stops it.
type MusicOn struct{ player *device.MusicPlayer }

// NewMusicOn creates a MusicOn action for p.
func NewMusicOn(p *device.MusicPlayer) MusicOn { return MusicOn{player: p} }

func (a MusicOn) Execute() {
	if a.player != nil {
		a.player.Activate()
	}
}

func (a MusicOn) Undo() {
	if a.player != nil {
		a.player.Deactivate()
	}
}

func (MusicOn) Name() string { return NameMusicOn }

// MusicOff stops playback; undo starts it.
type MusicOff struct{ player *device.MusicPlayer }

// NewMusicOff creates a MusicOff action for p.
func NewMusicOff(p *device.MusicPlayer) MusicOff { return MusicOff{player: p} }

func (a MusicOff) Execute() {
	if a.player != nil {
		a.player.Deactivate()
	}
}

func (a MusicOff) Undo() {
	if a.player != nil {
		a.player.Activate()
	}
}

func (MusicOff) Name() string { return NameMusicOff }

// ThermostatUp raises the set point by one degree; undo lowers it by one.
//
// Both directions are no-ops while the thermostat is OFF or at the
// relevant bound.
type ThermostatUp struct{ thermostat *device.Thermostat }

// NewThermostatUp creates a ThermostatUp action for t.
func NewThermostatUp(t *device.Thermostat) ThermostatUp { return ThermostatUp{thermostat: t} }

func (a ThermostatUp) Execute() {
	if a.thermostat != nil {
		a.thermostat.IncreaseTemperature()
	}
}

func (a ThermostatUp) Undo() {
	if a.thermostat != nil {
		a.thermostat.DecreaseTemperature()
	}
}

func (ThermostatUp) Name() string { return NameThermostatUp }

// ThermostatDown lowers the set point by one degree; undo raises it by one.
type ThermostatDown struct{ thermostat *device.Thermostat }

// NewThermostatDown creates a ThermostatDown action for t.
func NewThermostatDown(t *device.Thermostat) ThermostatDown {
	return ThermostatDown{thermostat: t}
}

func (a ThermostatDown) Execute() {
	if a.thermostat != nil {
		a.thermostat.DecreaseTemperature()
	}
}

func (a ThermostatDown) Undo() {
	if a.thermostat != nil {
		a.thermostat.IncreaseTemperature()
	}
}

func (ThermostatDown) Name() string { return NameThermostatDown }

// OrNoOp returns a, or NoOp when a is nil.
func OrNoOp(a Action) Action {
	if a == nil {
		return NoOp{}
	}
	return a
}
