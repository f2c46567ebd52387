package device

import (
	"fmt"
	"sort"
	"sync"
)

// Logger defines the logging interface used by the Registry.
// This allows different logging implementations to be used.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// noopLogger is a logger that does nothing.
type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}

// Registry is the in-memory catalogue of devices known to the hub.
//
// Devices are kept in registration order so listings and status output
// are stable. All public methods are thread-safe.
type Registry struct {
	devices map[string]Device
	order   []string
	mu      sync.RWMutex
	logger  Logger
}

// NewRegistry creates an empty device registry.
func NewRegistry() *Registry {
	return &Registry{
		devices: make(map[string]Device),
		logger:  noopLogger{},
	}
}

// SetLogger sets the logger for the registry.
func (r *Registry) SetLogger(logger Logger) {
	r.logger = logger
}

// Add registers a device under its ID.
//
// Returns:
//   - ErrInvalidDevice if d is nil or has an empty ID
//   - ErrDeviceExists if another device already uses the ID
func (r *Registry) Add(d Device) error {
	if d == nil || d.ID() == "" {
		return ErrInvalidDevice
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.devices[d.ID()]; exists {
		return fmt.Errorf("%w: %s", ErrDeviceExists, d.ID())
	}

	r.devices[d.ID()] = d
	r.order = append(r.order, d.ID())

	r.logger.Debug("device registered", "device_id", d.ID(), "kind", d.Kind(), "location", d.Location())
	return nil
}

// Get retrieves a device by ID.
// Returns ErrDeviceNotFound if the device does not exist.
func (r *Registry) Get(id string) (Device, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.devices[id]
	if !ok {
		return nil, ErrDeviceNotFound
	}
	return d, nil
}

// List returns all devices in registration order.
func (r *Registry) List() []Device {
	r.mu.RLock()
	defer r.mu.RUnlock()

	devices := make([]Device, 0, len(r.order))
	for _, id := range r.order {
		devices = append(devices, r.devices[id])
	}
	return devices
}

// ListByKind returns the devices of one kind in registration order.
func (r *Registry) ListByKind(kind Kind) []Device {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var devices []Device
	for _, id := range r.order {
		if d := r.devices[id]; d.Kind() == kind {
			devices = append(devices, d)
		}
	}
	return devices
}

// IDs returns the registered device IDs sorted alphabetically.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	ids := make([]string, len(r.order))
	copy(ids, r.order)
	r.mu.RUnlock()

	sort.Strings(ids)
	return ids
}

// Count returns the number of registered devices.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.devices)
}

// Snapshot returns the state of every device keyed by ID.
func (r *Registry) Snapshot() map[string]State {
	devices := r.List()

	states := make(map[string]State, len(devices))
	for _, d := range devices {
		states[d.ID()] = d.State()
	}
	return states
}
