package influxdb

import "errors"

// Sentinel errors; check with errors.Is.
var (
	ErrDisabled         = errors.New("influxdb: telemetry disabled")
	ErrConnectionFailed = errors.New("influxdb: server unreachable")
	ErrNotConnected     = errors.New("influxdb: client closed")

	// ErrWriteFailed wraps batch errors handed to the SetOnError callback.
	ErrWriteFailed = errors.New("influxdb: telemetry write failed")
)
