// Package influxdb provides InfluxDB connectivity for Gray Logic Hub.
//
// It wraps the official influxdb-client-go v2 library with Gray Logic-specific
// patterns for connection management, point writing, and health monitoring.
//
// # Purpose
//
// This package handles time-series data storage for:
//   - Hub dispatches (one point per activate, deactivate or undo)
//   - Device state snapshots taken after each dispatch
//
// # Usage
//
//	cfg := config.InfluxDBConfig{
//	    Enabled: true,
//	    URL:     "http://localhost:8086",
//	    Token:   "your-token",
//	    Org:     "graylogic",
//	    Bucket:  "hub",
//	}
//
//	client, err := influxdb.Connect(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	client.WriteDispatch("site-001", "activate", 0, "LightOn", time.Now())
//
// # Thread Safety
//
// All methods are safe for concurrent use from multiple goroutines.
// The underlying write API uses non-blocking batched writes.
//
// # Error Handling
//
// Write operations are non-blocking and batch errors are reported via a callback.
// Connection and health check errors are returned directly.
package influxdb
