package device

import "sync"

// Backend is implemented by accelerator backends (CUDA, OpenCL, Metal,
// Vulkan, etc.). It is responsible for device discovery, buffer
// allocation, and execution.
type Backend interface {
	Info() BackendInfo
	Available() bool
	Devices() ([]DeviceInfo, error)
	NewContext(deviceIndex int) (Context, error)
}

// Context represents a backend-specific execution context tied to a
// device. Every buffer taking part in one operation must come from the
// same Context; implementations must reject foreign buffers with
// ErrDeviceMismatch rather than copying between memory spaces.
type Context interface {
	Device() DeviceInfo

	// NewMatrix allocates a rows×cols device matrix. Uploads are
	// row-major.
	NewMatrix(rows, cols int) (Matrix, error)

	// NewVector allocates a device vector of n elements.
	NewVector(n int) (Vector, error)

	// MatVec computes dst = A·x on the device.
	MatVec(dst Vector, a Matrix, x Vector) error

	// MatTransVec computes dst = Aᵗ·x on the device.
	MatTransVec(dst Vector, a Matrix, x Vector) error

	Close() error
}

// Matrix is a dense device matrix buffer of float64 values.
type Matrix interface {
	Dims() (rows, cols int)
	// Upload copies row-major host data to the device.
	Upload(src []float64) error
	Close() error
}

// Vector is a device vector buffer of float64 values.
type Vector interface {
	Len() int
	// Upload copies from host to device.
	Upload(src []float64) error
	// Download copies from device to host.
	Download(dst []float64) error
	Close() error
}

var (
	backendMu sync.RWMutex
	backend   Backend
)

// RegisterBackend registers an accelerator backend. Passing nil clears
// the backend.
func RegisterBackend(b Backend) {
	backendMu.Lock()
	backend = b
	backendMu.Unlock()
}

// CurrentBackendInfo reports the currently registered backend, if any.
func CurrentBackendInfo() (BackendInfo, bool) {
	backendMu.RLock()
	b := backend
	backendMu.RUnlock()
	if b == nil {
		return BackendInfo{}, false
	}
	return b.Info(), true
}

func getBackend() Backend {
	backendMu.RLock()
	b := backend
	backendMu.RUnlock()
	return b
}
