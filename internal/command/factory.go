package command

import (
	"fmt"

	"github.com/nerrad567/gray-logic-hub/internal/device"
)

// ForDevice returns the canonical activate/deactivate action pair for d.
//
//   - *device.Light       -> LightOn, LightOff
//   - *device.MusicPlayer -> MusicOn, MusicOff
//   - *device.Thermostat  -> ThermostatUp, ThermostatDown
//
// Returns ErrUnsupportedDevice for any other device implementation.
func ForDevice(d device.Device) (activate, deactivate Action, err error) {
	switch dev := d.(type) {
	case *device.Light:
		return NewLightOn(dev), NewLightOff(dev), nil
	case *device.MusicPlayer:
		return NewMusicOn(dev), NewMusicOff(dev), nil
	case *device.Thermostat:
		return NewThermostatUp(dev), NewThermostatDown(dev), nil
	default:
		return nil, nil, fmt.Errorf("%w: %T", ErrUnsupportedDevice, d)
	}
}
