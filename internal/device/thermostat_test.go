package device

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestThermostat_StartsOffAtInitialTemperature(t *testing.T) {
	th := NewThermostat("Main Floor", 22)

	assert.False(t, th.IsOn())
	assert.Equal(t, 22, th.Temperature())
	assert.Equal(t, "Main Floor Thermostat: OFF", th.Describe())
}

func TestThermostat_InitialTemperatureNotClamped(t *testing.T) {
	th := NewThermostat("Garage", 5)

	assert.Equal(t, 5, th.Temperature())
}

func TestThermostat_ActivateKeepsTemperature(t *testing.T) {
	rec := &recorder{}
	th := NewThermostat("Main Floor", 22, WithNotifier(rec))

	th.Activate()
	assert.True(t, th.IsOn())
	assert.Equal(t, 22, th.Temperature())
	assert.Equal(t, "Main Floor Thermostat: ON - 22°C", th.Describe())

	th.Deactivate()
	assert.False(t, th.IsOn())
	assert.Equal(t, 22, th.Temperature())

	assert.Equal(t, []string{
		"Main Floor thermostat is ON - Set to 22°C",
		"Main Floor thermostat is OFF",
	}, rec.all())
}

func TestThermostat_Adjustments(t *testing.T) {
	tests := []struct {
		name     string
		initial  int
		on       bool
		increase bool
		want     int
		wantMsg  string
	}{
		{"increase when on", 22, true, true, 23, "Main Floor temperature increased to 23°C"},
		{"decrease when on", 22, true, false, 21, "Main Floor temperature decreased to 21°C"},
		{"increase when off", 22, false, true, 22, ""},
		{"decrease when off", 22, false, false, 22, ""},
		{"increase at max", MaxTemperature, true, true, MaxTemperature, ""},
		{"decrease at min", MinTemperature, true, false, MinTemperature, ""},
		{"increase from below min", 10, true, true, 11, "Main Floor temperature increased to 11°C"},
		{"decrease from above max", 35, true, false, 34, "Main Floor temperature decreased to 34°C"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			th := NewThermostat("Main Floor", tt.initial)
			if tt.on {
				th.Activate()
			}

			rec := &recorder{}
			th.notifier = rec

			if tt.increase {
				th.IncreaseTemperature()
			} else {
				th.DecreaseTemperature()
			}

			assert.Equal(t, tt.want, th.Temperature())
			if tt.wantMsg == "" {
				assert.Empty(t, rec.all())
			} else {
				assert.Equal(t, []string{tt.wantMsg}, rec.all())
			}
		})
	}
}

func TestThermostat_ClampsAcrossManyAdjustments(t *testing.T) {
	th := NewThermostat("Loft", 28)
	th.Activate()

	for i := 0; i < 10; i++ {
		th.IncreaseTemperature()
	}
	assert.Equal(t, MaxTemperature, th.Temperature())

	for i := 0; i < 30; i++ {
		th.DecreaseTemperature()
	}
	assert.Equal(t, MinTemperature, th.Temperature())
}
