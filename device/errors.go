package device

import "errors"

var (
	// ErrNoBackend is returned when no accelerator backend is registered.
	ErrNoBackend = errors.New("algolsq/device: no backend registered")

	// ErrBackendUnavailable is returned when the backend is registered
	// but not usable on the current system (no device, driver missing).
	ErrBackendUnavailable = errors.New("algolsq/device: backend unavailable")

	// ErrDeviceMismatch is returned when buffers from different device
	// contexts are combined in one operation. Operations fail fast
	// instead of copying between memory spaces.
	ErrDeviceMismatch = errors.New("algolsq/device: buffers belong to different device contexts")

	// ErrInvalidLength is returned for non-positive buffer dimensions.
	ErrInvalidLength = errors.New("algolsq/device: invalid length")

	// ErrLengthMismatch is returned when host slice lengths do not match
	// the buffer dimensions.
	ErrLengthMismatch = errors.New("algolsq/device: length mismatch")

	// ErrNotImplemented is returned by stubbed backends.
	ErrNotImplemented = errors.New("algolsq/device: not implemented")
)
