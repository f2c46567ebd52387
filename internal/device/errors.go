package device

import "errors"

// Domain errors for the device package.
//
// Device operations themselves never fail; these errors come from the
// registry and from parsing configuration values.
var (
	// ErrDeviceNotFound is returned when a device ID does not exist.
	ErrDeviceNotFound = errors.New("device: not found")

	// ErrDeviceExists is returned when registering a device with an ID that already exists.
	ErrDeviceExists = errors.New("device: already exists")

	// ErrInvalidDevice is returned when a nil device or one without an ID is registered.
	ErrInvalidDevice = errors.New("device: invalid")

	// ErrInvalidKind is returned when a kind value is not recognised.
	ErrInvalidKind = errors.New("device: invalid kind")
)
