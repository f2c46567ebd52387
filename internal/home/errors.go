package home

import "errors"

// Domain errors for home assembly.
var (
	// ErrUnknownDevice is returned when a binding names a device that does not exist.
	ErrUnknownDevice = errors.New("home: unknown device")

	// ErrInvalidSlot is returned when a binding targets a slot outside the hub.
	ErrInvalidSlot = errors.New("home: slot out of range")

	// ErrBuildFailed wraps any failure while creating devices from configuration.
	ErrBuildFailed = errors.New("home: build failed")
)
