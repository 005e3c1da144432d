package device

import (
	"fmt"

	"github.com/cwbudde/algo-lsq/internal/vec"
)

// MockBackend is a CPU-backed accelerator backend for development and
// tests. It satisfies the backend interfaces but executes on the host
// kernels, including the context-ownership checks a real backend must
// perform.
type MockBackend struct {
	device DeviceInfo
}

// NewMockBackend returns a mock backend with a single fake device.
func NewMockBackend() *MockBackend {
	return &MockBackend{
		device: DeviceInfo{
			Name:     "MockAccelerator",
			Vendor:   "algolsq",
			Driver:   "mock",
			MemoryMB: 0,
		},
	}
}

func (b *MockBackend) Info() BackendInfo {
	return BackendInfo{
		Name:        "mock",
		Version:     "0.1",
		Description: "CPU-backed mock accelerator backend",
	}
}

func (b *MockBackend) Available() bool {
	return true
}

func (b *MockBackend) Devices() ([]DeviceInfo, error) {
	return []DeviceInfo{b.device}, nil
}

func (b *MockBackend) NewContext(deviceIndex int) (Context, error) {
	if deviceIndex != 0 {
		return nil, fmt.Errorf("mock backend: device index %d out of range", deviceIndex)
	}
	return &mockContext{device: b.device}, nil
}

// RegisterMockBackend registers the mock backend as the active backend.
func RegisterMockBackend() {
	RegisterBackend(NewMockBackend())
}

type mockContext struct {
	device DeviceInfo
}

func (c *mockContext) Device() DeviceInfo {
	return c.device
}

func (c *mockContext) NewMatrix(rows, cols int) (Matrix, error) {
	if rows < 1 || cols < 1 {
		return nil, ErrInvalidLength
	}
	return &mockMatrix{
		ctx:  c,
		rows: rows,
		cols: cols,
		data: make([]float64, rows*cols),
	}, nil
}

func (c *mockContext) NewVector(n int) (Vector, error) {
	if n < 1 {
		return nil, ErrInvalidLength
	}
	return &mockVector{ctx: c, data: make([]float64, n)}, nil
}

// own unwraps a buffer allocated by this context, enforcing the
// same-context discipline real device memory requires.
func (c *mockContext) own(a Matrix, dst, x Vector) (*mockMatrix, *mockVector, *mockVector, error) {
	ma, ok := a.(*mockMatrix)
	if !ok || ma.ctx != c {
		return nil, nil, nil, ErrDeviceMismatch
	}
	md, ok := dst.(*mockVector)
	if !ok || md.ctx != c {
		return nil, nil, nil, ErrDeviceMismatch
	}
	mx, ok := x.(*mockVector)
	if !ok || mx.ctx != c {
		return nil, nil, nil, ErrDeviceMismatch
	}
	return ma, md, mx, nil
}

func (c *mockContext) MatVec(dst Vector, a Matrix, x Vector) error {
	ma, md, mx, err := c.own(a, dst, x)
	if err != nil {
		return err
	}
	if len(mx.data) != ma.cols || len(md.data) != ma.rows {
		return ErrLengthMismatch
	}
	vec.MatVec(md.data, ma.data, ma.rows, ma.cols, mx.data)
	return nil
}

func (c *mockContext) MatTransVec(dst Vector, a Matrix, x Vector) error {
	ma, md, mx, err := c.own(a, dst, x)
	if err != nil {
		return err
	}
	if len(mx.data) != ma.rows || len(md.data) != ma.cols {
		return ErrLengthMismatch
	}
	vec.MatTransVec(md.data, ma.data, ma.rows, ma.cols, mx.data)
	return nil
}

func (c *mockContext) Close() error {
	return nil
}

type mockMatrix struct {
	ctx        *mockContext
	rows, cols int
	data       []float64
}

func (m *mockMatrix) Dims() (rows, cols int) {
	return m.rows, m.cols
}

func (m *mockMatrix) Upload(src []float64) error {
	if len(src) != len(m.data) {
		return ErrLengthMismatch
	}
	copy(m.data, src)
	return nil
}

func (m *mockMatrix) Close() error {
	m.data = nil
	return nil
}

type mockVector struct {
	ctx  *mockContext
	data []float64
}

func (v *mockVector) Len() int {
	return len(v.data)
}

func (v *mockVector) Upload(src []float64) error {
	if len(src) != len(v.data) {
		return ErrLengthMismatch
	}
	copy(v.data, src)
	return nil
}

func (v *mockVector) Download(dst []float64) error {
	if len(dst) != len(v.data) {
		return ErrLengthMismatch
	}
	copy(dst, v.data)
	return nil
}

func (v *mockVector) Close() error {
	v.data = nil
	return nil
}
