// Package device: sentinel errors for preset lookup and definition
// loading.
package device

import "errors"

// Sentinel errors for device construction.
var (
	// ErrDefinition is returned when a device definition cannot be
	// decoded or describes inconsistent parameters.
	ErrDefinition = errors.New("device: invalid device definition")

	// ErrUnknownDevice is returned by Builtin for names that match no
	// built-in preset.
	ErrUnknownDevice = errors.New("device: unknown built-in device")
)
