package device

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLight_StartsOff(t *testing.T) {
	l := NewLight("Kitchen")

	assert.False(t, l.IsOn())
	assert.Equal(t, 0, l.Brightness())
	assert.Equal(t, "Kitchen Light: OFF", l.Describe())
	assert.Equal(t, KindLight, l.Kind())
	assert.Equal(t, "kitchen-light", l.ID())
}

func TestLight_ActivateDeactivate(t *testing.T) {
	rec := &recorder{}
	l := NewLight("Kitchen", WithNotifier(rec))

	l.Activate()
	assert.True(t, l.IsOn())
	assert.Equal(t, LightOnBrightness, l.Brightness())
	assert.Equal(t, "Kitchen Light: ON (Brightness: 75%)", l.Describe())

	l.Deactivate()
	assert.False(t, l.IsOn())
	assert.Equal(t, 0, l.Brightness())
	assert.Equal(t, "Kitchen Light: OFF", l.Describe())

	assert.Equal(t, []string{
		"Kitchen light is ON (Brightness: 75%)",
		"Kitchen light is OFF",
	}, rec.all())
}

func TestLight_ActivateIsIdempotentButNotifiesEachTime(t *testing.T) {
	rec := &recorder{}
	l := NewLight("Hall", WithNotifier(rec))

	l.Activate()
	l.Activate()

	assert.True(t, l.IsOn())
	assert.Equal(t, LightOnBrightness, l.Brightness())
	assert.Len(t, rec.all(), 2)
}

func TestLight_State(t *testing.T) {
	l := NewLight("Study", WithID("lamp"))
	l.Activate()

	assert.Equal(t, "lamp", l.ID())
	assert.Equal(t, State{"on": true, "brightness": 75}, l.State())
}

func TestLight_NilNotifierKeepsDefault(t *testing.T) {
	l := NewLight("Porch", WithNotifier(nil))

	assert.NotPanics(t, l.Activate)
}
