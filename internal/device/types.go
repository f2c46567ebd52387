package device

import (
	"fmt"
	"strings"
	"sync"
)

// Kind identifies a device model.
type Kind string

const (
	KindLight       Kind = "light"
	KindMusicPlayer Kind = "music_player"
	KindThermostat  Kind = "thermostat"
)

// AllKinds returns all supported device kinds.
func AllKinds() []Kind {
	return []Kind{KindLight, KindMusicPlayer, KindThermostat}
}

// ParseKind converts a configuration string into a Kind.
// Matching is case-insensitive and accepts "music" as a short form.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(KindLight):
		return KindLight, nil
	case string(KindMusicPlayer), "music":
		return KindMusicPlayer, nil
	case string(KindThermostat):
		return KindThermostat, nil
	default:
		return "", fmt.Errorf("%w: %q (want one of %v)", ErrInvalidKind, s, AllKinds())
	}
}

// State is a point-in-time snapshot of a device's attributes.
// Keys are stable and used as telemetry field names.
type State map[string]any

// Device is the capability set every device model exposes.
type Device interface {
	// ID returns the unique identifier of the device.
	ID() string

	// Kind returns the device model.
	Kind() Kind

	// Location returns the human-readable placement, e.g. "Kitchen".
	Location() string

	// Activate moves the device to its ON state.
	Activate()

	// Deactivate moves the device to its OFF state.
	Deactivate()

	// Describe returns a one-line status, e.g. "Kitchen Light: OFF".
	Describe() string

	// State returns a snapshot of the current attributes.
	State() State
}

// Notifier receives one human-readable line for every device state change.
//
// Implementations must not block for long and must not call back into
// the device that is notifying.
type Notifier interface {
	Notify(message string)
}

// NotifierFunc adapts a plain function to the Notifier interface.
type NotifierFunc func(message string)

// Notify calls f(message).
func (f NotifierFunc) Notify(message string) {
	f(message)
}

// NoopNotifier discards every notification.
type NoopNotifier struct{}

// Notify does nothing.
func (NoopNotifier) Notify(string) {}

// Option configures a device at construction.
type Option func(*base)

// WithNotifier sets the sink for state-change notifications.
// A nil notifier leaves the default NoopNotifier in place.
func WithNotifier(n Notifier) Option {
	return func(b *base) {
		if n != nil {
			b.notifier = n
		}
	}
}

// WithID overrides the generated device ID.
func WithID(id string) Option {
	return func(b *base) {
		if id != "" {
			b.id = id
		}
	}
}

// base holds the attributes shared by every model.
type base struct {
	id       string
	kind     Kind
	location string
	notifier Notifier

	mu sync.Mutex
}

// init fills b in place; base holds a mutex and must not be copied.
func (b *base) init(kind Kind, location string, opts []Option) {
	b.id = GenerateID(location, kind)
	b.kind = kind
	b.location = location
	b.notifier = NoopNotifier{}
	for _, opt := range opts {
		opt(b)
	}
}

// ID returns the unique identifier of the device.
func (b *base) ID() string { return b.id }

// Kind returns the device model.
func (b *base) Kind() Kind { return b.kind }

// Location returns the device placement.
func (b *base) Location() string { return b.location }

// notify is always called without b.mu held.
func (b *base) notify(message string) {
	b.notifier.Notify(message)
}

// GenerateID builds a default device ID from a location and kind,
// e.g. ("Living Room", KindLight) -> "living-room-light".
func GenerateID(location string, kind Kind) string {
	slug := strings.ToLower(location + " " + string(kind))
	slug = strings.ReplaceAll(slug, " ", "-")
	slug = strings.ReplaceAll(slug, "_", "-")

	var result strings.Builder
	for _, r := range slug {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
			result.WriteRune(r)
		}
	}
	slug = strings.Trim(result.String(), "-")
	for strings.Contains(slug, "--") {
		slug = strings.ReplaceAll(slug, "--", "-")
	}
	return slug
}
