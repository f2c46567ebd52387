// Package telemetry records hub dispatches and device state in InfluxDB.
//
// Recorder is a hub.Observer. For every dispatch it writes one
// hub_dispatch point and, when a snapshot source is configured, one
// device_state point per device so dashboards can plot state over time.
package telemetry
