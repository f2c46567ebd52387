package influxdb

import (
	"time"

	"github.com/influxdata/influxdb-client-go/v2/api/write"
)

// Measurement names written by the hub.
const (
	MeasurementDispatch    = "hub_dispatch"
	MeasurementDeviceState = "device_state"
)

// DispatchPoint builds the point for one hub dispatch.
//
// Tags: site_id, op, action. Fields: slot (int), count (always 1, for sums).
func DispatchPoint(siteID, op string, slot int, action string, at time.Time) *write.Point {
	return write.NewPoint(
		MeasurementDispatch,
		map[string]string{
			"site_id": siteID,
			"op":      op,
			"action":  action,
		},
		map[string]interface{}{
			"slot":  slot,
			"count": 1,
		},
		at,
	)
}

// DeviceStatePoint builds a state snapshot point for one device.
//
// Boolean state values are also written as 0/1 integer fields with an
// "_int" suffix so they can be graphed.
func DeviceStatePoint(siteID, deviceID, kind string, state map[string]any, at time.Time) *write.Point {
	fields := make(map[string]interface{}, len(state)*2)
	for k, v := range state {
		fields[k] = v
		if b, ok := v.(bool); ok {
			fields[k+"_int"] = boolToInt(b)
		}
	}

	return write.NewPoint(
		MeasurementDeviceState,
		map[string]string{
			"site_id":   siteID,
			"device_id": deviceID,
			"kind":      kind,
		},
		fields,
		at,
	)
}

// WriteDispatch records a hub dispatch.
// The write is non-blocking; data is batched and sent asynchronously.
//
// Example:
//
//	client.WriteDispatch("site-001", "activate", 3, "ThermostatUp", time.Now())
func (c *Client) WriteDispatch(siteID, op string, slot int, action string, at time.Time) {
	if !c.IsConnected() {
		return
	}
	c.writeAPI.WritePoint(DispatchPoint(siteID, op, slot, action, at))
}

// WriteDeviceState records a device state snapshot.
//
// Parameters:
//   - siteID: Site the device belongs to
//   - deviceID: Device identifier (e.g., "kitchen-light")
//   - kind: Device kind (light, music_player, thermostat)
//   - state: Attribute snapshot; keys become field names
//   - at: Snapshot time
func (c *Client) WriteDeviceState(siteID, deviceID, kind string, state map[string]any, at time.Time) {
	if !c.IsConnected() || len(state) == 0 {
		return
	}
	c.writeAPI.WritePoint(DeviceStatePoint(siteID, deviceID, kind, state, at))
}

// WritePoint writes a custom point with full control over tags and fields.
//
// Parameters:
//   - measurement: The measurement name (table)
//   - tags: Key-value pairs for indexing (low cardinality)
//   - fields: Key-value pairs for the actual data
func (c *Client) WritePoint(measurement string, tags map[string]string, fields map[string]interface{}) {
	c.WritePointWithTime(measurement, tags, fields, time.Now())
}

// WritePointWithTime writes a custom point with a specific timestamp.
func (c *Client) WritePointWithTime(measurement string, tags map[string]string, fields map[string]interface{}, timestamp time.Time) {
	if !c.IsConnected() {
		return
	}

	point := write.NewPoint(measurement, tags, fields, timestamp)
	c.writeAPI.WritePoint(point)
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
