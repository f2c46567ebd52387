package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nerrad567/gray-logic-hub/internal/device"
)

type recorder struct{ messages []string }

func (r *recorder) Notify(message string) { r.messages = append(r.messages, message) }

func TestNoOp(t *testing.T) {
	var a Action = NoOp{}

	assert.NotPanics(t, a.Execute)
	assert.NotPanics(t, a.Undo)
	assert.Equal(t, "NoOp", a.Name())
}

func TestLightActions(t *testing.T) {
	rec := &recorder{}
	l := device.NewLight("Kitchen", device.WithNotifier(rec))
	on, off := NewLightOn(l), NewLightOff(l)

	on.Execute()
	assert.True(t, l.IsOn())
	on.Undo()
	assert.False(t, l.IsOn())

	off.Undo()
	assert.True(t, l.IsOn())
	off.Execute()
	assert.False(t, l.IsOn())

	assert.Equal(t, []string{
		"Kitchen light is ON (Brightness: 75%)",
		"Kitchen light is OFF",
		"Kitchen light is ON (Brightness: 75%)",
		"Kitchen light is OFF",
	}, rec.messages)
}

func TestMusicActions(t *testing.T) {
	p := device.NewMusicPlayer("Den")
	on, off := NewMusicOn(p), NewMusicOff(p)

	on.Execute()
	assert.True(t, p.IsPlaying())
	off.Execute()
	assert.False(t, p.IsPlaying())
	off.Undo()
	assert.True(t, p.IsPlaying())
	on.Undo()
	assert.False(t, p.IsPlaying())
}

func TestThermostatActions(t *testing.T) {
	th := device.NewThermostat("Main Floor", 22)
	th.Activate()
	up, down := NewThermostatUp(th), NewThermostatDown(th)

	up.Execute()
	assert.Equal(t, 23, th.Temperature())
	up.Undo()
	assert.Equal(t, 22, th.Temperature())
	down.Execute()
	assert.Equal(t, 21, th.Temperature())
	down.Undo()
	assert.Equal(t, 22, th.Temperature())
}

func TestThermostatUp_UndoAfterClampStillDecreases(t *testing.T) {
	th := device.NewThermostat("Main Floor", device.MaxTemperature)
	th.Activate()
	up := NewThermostatUp(th)

	up.Execute()
	require.Equal(t, 30, th.Temperature())

	up.Undo()
	assert.Equal(t, 29, th.Temperature())
}

func TestThermostatActions_OffAreSilent(t *testing.T) {
	rec := &recorder{}
	th := device.NewThermostat("Main Floor", 22, device.WithNotifier(rec))
	up, down := NewThermostatUp(th), NewThermostatDown(th)

	up.Execute()
	down.Execute()
	up.Undo()
	down.Undo()

	assert.Equal(t, 22, th.Temperature())
	assert.Empty(t, rec.messages)
}

func TestActionNames(t *testing.T) {
	l := device.NewLight("A")
	p := device.NewMusicPlayer("B")
	th := device.NewThermostat("C", 20)

	tests := []struct {
		action Action
		want   string
	}{
		{NewLightOn(l), "LightOn"},
		{NewLightOff(l), "LightOff"},
		{NewMusicOn(p), "MusicOn"},
		{NewMusicOff(p), "MusicOff"},
		{NewThermostatUp(th), "ThermostatUp"},
		{NewThermostatDown(th), "ThermostatDown"},
		{NoOp{}, "NoOp"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.action.Name())
	}
}

func TestActions_NilDeviceIsHarmless(t *testing.T) {
	actions := []Action{
		NewLightOn(nil), NewLightOff(nil),
		NewMusicOn(nil), NewMusicOff(nil),
		NewThermostatUp(nil), NewThermostatDown(nil),
	}

	for _, a := range actions {
		assert.NotPanics(t, a.Execute, a.Name())
		assert.NotPanics(t, a.Undo, a.Name())
	}
}

func TestOrNoOp(t *testing.T) {
	assert.Equal(t, NoOp{}, OrNoOp(nil))

	on := NewLightOn(device.NewLight("Hall"))
	assert.Equal(t, Action(on), OrNoOp(on))
}
