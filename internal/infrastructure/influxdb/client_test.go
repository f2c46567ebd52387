package influxdb_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/influxdata/influxdb-client-go/v2/api/write"

	"github.com/nerrad567/gray-logic-hub/internal/infrastructure/config"
	"github.com/nerrad567/gray-logic-hub/internal/infrastructure/influxdb"
)

// testConfig returns a configuration for a local dev InfluxDB.
func testConfig() config.InfluxDBConfig {
	return config.InfluxDBConfig{
		Enabled:       true,
		URL:           "http://127.0.0.1:8086",
		Token:         "graylogic-dev-token",
		Org:           "graylogic",
		Bucket:        "hub",
		BatchSize:     100,
		FlushInterval: 1, // 1 second for faster test feedback
	}
}

// connectOrSkip connects to the local InfluxDB, skipping when it is not running.
func connectOrSkip(t *testing.T, cfg config.InfluxDBConfig) *influxdb.Client {
	t.Helper()
	client, err := influxdb.Connect(cfg)
	if err != nil {
		t.Skipf("InfluxDB not available, skipping integration test: %v", err)
	}
	return client
}

// captureErrors records async write errors.
func captureErrors(client *influxdb.Client) func() error {
	var mu sync.Mutex
	var writeErr error
	client.SetOnError(func(err error) {
		mu.Lock()
		writeErr = err
		mu.Unlock()
	})
	return func() error {
		mu.Lock()
		defer mu.Unlock()
		return writeErr
	}
}

// =============================================================================
// Connection Tests
// =============================================================================

func TestConnect(t *testing.T) {
	client := connectOrSkip(t, testConfig())
	defer client.Close()

	if !client.IsConnected() {
		t.Error("IsConnected() = false after Connect()")
	}
}

func TestConnect_Disabled(t *testing.T) {
	cfg := testConfig()
	cfg.Enabled = false

	_, err := influxdb.Connect(cfg)
	if !errors.Is(err, influxdb.ErrDisabled) {
		t.Errorf("Connect() error = %v, want ErrDisabled", err)
	}
}

func TestConnect_InvalidURL(t *testing.T) {
	cfg := testConfig()
	cfg.URL = "http://127.0.0.1:59999" // Non-existent port

	_, err := influxdb.Connect(cfg)
	if !errors.Is(err, influxdb.ErrConnectionFailed) {
		t.Errorf("Connect() error = %v, want ErrConnectionFailed", err)
	}
}

func TestConnect_DefaultBatchSettings(t *testing.T) {
	cfg := testConfig()
	cfg.BatchSize = -5    // Should use default
	cfg.FlushInterval = 0 // Should use default

	client := connectOrSkip(t, cfg)
	defer client.Close()

	if !client.IsConnected() {
		t.Error("IsConnected() = false after Connect() with default batch settings")
	}
}

// =============================================================================
// Health Check Tests
// =============================================================================

func TestHealthCheck(t *testing.T) {
	client := connectOrSkip(t, testConfig())
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.HealthCheck(ctx); err != nil {
		t.Errorf("HealthCheck() error = %v", err)
	}
}

func TestHealthCheck_Cancelled(t *testing.T) {
	client := connectOrSkip(t, testConfig())
	defer client.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := client.HealthCheck(ctx); err == nil {
		t.Error("HealthCheck() should return error for cancelled context")
	}
}

func TestHealthCheck_NotConnected(t *testing.T) {
	client := &influxdb.Client{}

	if err := client.HealthCheck(context.Background()); !errors.Is(err, influxdb.ErrNotConnected) {
		t.Errorf("HealthCheck() error = %v, want ErrNotConnected", err)
	}
}

// =============================================================================
// Point Builder Tests
// =============================================================================

func TestDispatchPoint(t *testing.T) {
	at := time.Unix(1700000000, 0)
	line := write.PointToLineProtocol(influxdb.DispatchPoint("site-001", "activate", 3, "ThermostatUp", at), time.Second)

	for _, want := range []string{
		"hub_dispatch,",
		"action=ThermostatUp",
		"op=activate",
		"site_id=site-001",
		"count=1i",
		"slot=3i",
		" 1700000000",
	} {
		if !strings.Contains(line, want) {
			t.Errorf("line protocol %q missing %q", line, want)
		}
	}
}

func TestDeviceStatePoint(t *testing.T) {
	at := time.Unix(1700000000, 0)
	state := map[string]any{"on": true, "brightness": 75}
	line := write.PointToLineProtocol(influxdb.DeviceStatePoint("site-001", "kitchen-light", "light", state, at), time.Second)

	for _, want := range []string{
		"device_state,",
		"device_id=kitchen-light",
		"kind=light",
		"brightness=75i",
		"on=true",
		"on_int=1i",
	} {
		if !strings.Contains(line, want) {
			t.Errorf("line protocol %q missing %q", line, want)
		}
	}
}

// =============================================================================
// Write Tests
// =============================================================================

func TestWriteDispatch(t *testing.T) {
	client := connectOrSkip(t, testConfig())
	defer client.Close()
	lastErr := captureErrors(client)

	client.WriteDispatch("test-site", "undo", -1, "LightOn", time.Now())
	client.Flush()
	time.Sleep(100 * time.Millisecond)

	if err := lastErr(); err != nil {
		t.Errorf("Write error = %v", err)
	}
}

func TestWriteDeviceState(t *testing.T) {
	client := connectOrSkip(t, testConfig())
	defer client.Close()
	lastErr := captureErrors(client)

	client.WriteDeviceState("test-site", "hall-thermostat", "thermostat",
		map[string]any{"on": true, "temperature": 22}, time.Now())
	client.Flush()
	time.Sleep(100 * time.Millisecond)

	if err := lastErr(); err != nil {
		t.Errorf("Write error = %v", err)
	}
}

func TestWritePoint(t *testing.T) {
	client := connectOrSkip(t, testConfig())
	defer client.Close()
	lastErr := captureErrors(client)

	client.WritePoint(
		"custom_measurement",
		map[string]string{"source": "test"},
		map[string]interface{}{"value": 99.9, "count": 5},
	)
	client.Flush()
	time.Sleep(100 * time.Millisecond)

	if err := lastErr(); err != nil {
		t.Errorf("Write error = %v", err)
	}
}

func TestWrite_NotConnectedIsNoOp(t *testing.T) {
	client := &influxdb.Client{}

	// Must not panic without a write API.
	client.WriteDispatch("s", "activate", 0, "NoOp", time.Now())
	client.WriteDeviceState("s", "d", "light", map[string]any{"on": false}, time.Now())
	client.WritePoint("m", nil, map[string]interface{}{"v": 1})
	client.Flush()
}

// =============================================================================
// Close Tests
// =============================================================================

func TestClose(t *testing.T) {
	client := connectOrSkip(t, testConfig())

	client.WriteDispatch("close-test", "activate", 0, "LightOn", time.Now())

	if err := client.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
	if client.IsConnected() {
		t.Error("IsConnected() = true after Close()")
	}
}

func TestClose_Zero(t *testing.T) {
	client := &influxdb.Client{}
	if err := client.Close(); err != nil {
		t.Errorf("Close() on zero Client error = %v", err)
	}
}
