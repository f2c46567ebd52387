package command

import "errors"

// Domain errors for the command package.
var (
	// ErrUnsupportedDevice is returned when no action pair exists for a device model.
	ErrUnsupportedDevice = errors.New("command: unsupported device")
)
