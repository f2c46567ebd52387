package home

import (
	"fmt"

	"github.com/nerrad567/gray-logic-hub/internal/command"
	"github.com/nerrad567/gray-logic-hub/internal/device"
	"github.com/nerrad567/gray-logic-hub/internal/hub"
	"github.com/nerrad567/gray-logic-hub/internal/infrastructure/config"
)

// Logger defines the logging interface shared by the registry and hub.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// Options carries the collaborators injected into the built home.
type Options struct {
	// Notifier receives device notifications and hub status lines.
	Notifier device.Notifier

	// Observers are informed of every dispatch, in order.
	Observers []hub.Observer

	// Logger is used by the registry, the hub and the builder itself.
	Logger Logger

	// Devices is an optional empty registry to populate. Observers that
	// need device state can be given it before Build runs.
	Devices *device.Registry
}

// Home is an assembled set of devices and the hub that controls them.
type Home struct {
	Devices *device.Registry
	Hub     *hub.Hub

	notifier device.Notifier
	logger   Logger
}

// Build creates devices, the hub and slot bindings from cfg.
//
// cfg is expected to have passed config.Validate; Build still rejects
// unknown device kinds and bindings that do not resolve.
//
// Returns:
//   - *Home: The assembled home
//   - error: ErrBuildFailed wrapping the first failure
func Build(cfg *config.Config, opts Options) (*Home, error) {
	h := &Home{
		Devices:  opts.Devices,
		notifier: opts.Notifier,
		logger:   opts.Logger,
	}
	if h.Devices == nil {
		h.Devices = device.NewRegistry()
	}
	if h.notifier == nil {
		h.notifier = device.NoopNotifier{}
	}

	hubOpts := []hub.Option{hub.WithNotifier(h.notifier)}
	if h.logger != nil {
		h.Devices.SetLogger(h.logger)
		hubOpts = append(hubOpts, hub.WithLogger(h.logger))
	}
	switch len(opts.Observers) {
	case 0:
	case 1:
		hubOpts = append(hubOpts, hub.WithObserver(opts.Observers[0]))
	default:
		hubOpts = append(hubOpts, hub.WithObserver(hub.Observers(opts.Observers)))
	}
	h.Hub = hub.New(cfg.Hub.Slots, hubOpts...)

	for _, dc := range cfg.Devices {
		if _, err := h.AddDevice(dc); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrBuildFailed, err)
		}
	}

	for _, b := range cfg.Hub.Bindings {
		if err := h.Bind(b.Slot, b.Device); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrBuildFailed, err)
		}
	}

	if h.logger != nil {
		h.logger.Info("home assembled",
			"devices", h.Devices.Count(),
			"slots", h.Hub.SlotCount(),
			"bindings", len(cfg.Hub.Bindings),
		)
	}

	return h, nil
}

// AddDevice creates one device from its configuration and registers it.
// The device shares the home's notifier.
func (h *Home) AddDevice(dc config.DeviceConfig) (device.Device, error) {
	kind, err := device.ParseKind(dc.Kind)
	if err != nil {
		return nil, fmt.Errorf("device %q: %w", dc.ID, err)
	}

	opts := []device.Option{device.WithNotifier(h.notifier), device.WithID(dc.ID)}

	var d device.Device
	switch kind {
	case device.KindLight:
		d = device.NewLight(dc.Location, opts...)
	case device.KindMusicPlayer:
		d = device.NewMusicPlayer(dc.Location, opts...)
	case device.KindThermostat:
		d = device.NewThermostat(dc.Location, dc.Temperature, opts...)
	}

	if err := h.Devices.Add(d); err != nil {
		return nil, err
	}
	return d, nil
}

// Bind registers the canonical action pair of deviceID in slot.
//
// Unlike hub.Register, which ignores out-of-range slots, Bind reports
// them as ErrInvalidSlot so configuration mistakes surface at startup.
func (h *Home) Bind(slot int, deviceID string) error {
	if slot < 0 || slot >= h.Hub.SlotCount() {
		return fmt.Errorf("%w: %d (hub has %d slots)", ErrInvalidSlot, slot, h.Hub.SlotCount())
	}

	d, err := h.Devices.Get(deviceID)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrUnknownDevice, deviceID)
	}

	activate, deactivate, err := command.ForDevice(d)
	if err != nil {
		return err
	}

	h.Hub.Register(slot, activate, deactivate)
	if h.logger != nil {
		h.logger.Debug("slot bound", "slot", slot, "device", deviceID,
			"activate", activate.Name(), "deactivate", deactivate.Name())
	}
	return nil
}

// Thermostats returns every registered thermostat.
func (h *Home) Thermostats() []*device.Thermostat {
	var out []*device.Thermostat
	for _, d := range h.Devices.ListByKind(device.KindThermostat) {
		if th, ok := d.(*device.Thermostat); ok {
			out = append(out, th)
		}
	}
	return out
}
