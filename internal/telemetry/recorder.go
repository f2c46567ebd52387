package telemetry

import (
	"time"

	"github.com/nerrad567/gray-logic-hub/internal/device"
	"github.com/nerrad567/gray-logic-hub/internal/hub"
)

// Writer is the subset of the InfluxDB client used by the Recorder.
// *influxdb.Client satisfies it.
type Writer interface {
	WriteDispatch(siteID, op string, slot int, action string, at time.Time)
	WriteDeviceState(siteID, deviceID, kind string, state map[string]any, at time.Time)
}

// DeviceSource lists the devices whose state is written after a dispatch.
// *device.Registry satisfies it.
type DeviceSource interface {
	List() []device.Device
}

// Recorder writes dispatch and device state points.
type Recorder struct {
	writer  Writer
	siteID  string
	devices DeviceSource
}

// NewRecorder creates a telemetry recorder.
//
// Parameters:
//   - writer: InfluxDB writer (non-blocking, batched)
//   - siteID: Site tag for every point
//   - devices: Optional device source; nil disables state points
func NewRecorder(writer Writer, siteID string, devices DeviceSource) *Recorder {
	return &Recorder{writer: writer, siteID: siteID, devices: devices}
}

// ObserveDispatch implements hub.Observer.
func (r *Recorder) ObserveDispatch(d hub.Dispatch) {
	r.writer.WriteDispatch(r.siteID, string(d.Op), d.Slot, d.Action, d.At)

	if r.devices == nil {
		return
	}
	for _, dev := range r.devices.List() {
		r.writer.WriteDeviceState(r.siteID, dev.ID(), string(dev.Kind()), dev.State(), d.At)
	}
}
