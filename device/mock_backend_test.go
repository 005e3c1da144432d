package device

import (
	"context"
	"errors"
	"math"
	"testing"

	algolsq "github.com/cwbudde/algo-lsq"
)

func TestNoBackendRegistered(t *testing.T) {
	RegisterBackend(nil)
	a, err := algolsq.NewDense(2, 2, []float64{1, 0, 0, 1})
	if err != nil {
		t.Fatalf("NewDense: %v", err)
	}
	if _, err := NewOperator(a, Options{}); !errors.Is(err, ErrNoBackend) {
		t.Fatalf("NewOperator without backend: got %v want ErrNoBackend", err)
	}
}

func TestMockBackendOperatorMatchesHost(t *testing.T) {
	RegisterMockBackend()

	a, err := algolsq.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})
	if err != nil {
		t.Fatalf("NewDense: %v", err)
	}
	op, err := NewOperator(a, Options{})
	if err != nil {
		t.Fatalf("NewOperator: %v", err)
	}
	defer func() { _ = op.Close() }()

	x := []float64{1, 0, 1}
	hostDst := make([]float64, 2)
	devDst := make([]float64, 2)
	a.MatVec(hostDst, x)
	op.MatVec(devDst, x)
	for i := range hostDst {
		if hostDst[i] != devDst[i] {
			t.Fatalf("MatVec: device %v host %v", devDst, hostDst)
		}
	}

	y := []float64{1, 1}
	hostT := make([]float64, 3)
	devT := make([]float64, 3)
	a.MatTransVec(hostT, y)
	op.MatTransVec(devT, y)
	for j := range hostT {
		if hostT[j] != devT[j] {
			t.Fatalf("MatTransVec: device %v host %v", devT, hostT)
		}
	}
}

func TestMockBackendSolveMatchesHost(t *testing.T) {
	RegisterMockBackend()

	// Overdetermined full-column-rank system with b in the range of A.
	a, err := algolsq.NewDense(4, 2, []float64{
		2, 0,
		0, 3,
		1, 1,
		0, 1,
	})
	if err != nil {
		t.Fatalf("NewDense: %v", err)
	}
	b := []float64{4, 9, 5, 3} // A·[2 3]
	want := []float64{2, 3}

	hostRes, err := algolsq.Solve(context.Background(), a, b, algolsq.Settings{})
	if err != nil {
		t.Fatalf("host Solve: %v", err)
	}
	devRes, err := Solve(context.Background(), a, b, algolsq.Settings{}, Options{})
	if err != nil {
		t.Fatalf("device Solve: %v", err)
	}

	if !devRes.Converged || devRes.Status != algolsq.StatusConverged {
		t.Fatalf("device Solve did not converge: %+v", devRes)
	}
	for i := range want {
		if math.Abs(devRes.X[i]-want[i]) > 1e-8 {
			t.Errorf("x[%d] = %v, want %v", i, devRes.X[i], want[i])
		}
		if math.Abs(devRes.X[i]-hostRes.X[i]) > 1e-12 {
			t.Errorf("device/host mismatch at %d: %v vs %v", i, devRes.X[i], hostRes.X[i])
		}
	}
	if devRes.Iterations != hostRes.Iterations {
		t.Errorf("iteration count: device %d host %d", devRes.Iterations, hostRes.Iterations)
	}
}

func TestMockContextRejectsForeignBuffers(t *testing.T) {
	b := NewMockBackend()
	ctx1, err := b.NewContext(0)
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}
	ctx2, err := b.NewContext(0)
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}

	m, err := ctx1.NewMatrix(2, 2)
	if err != nil {
		t.Fatalf("NewMatrix: %v", err)
	}
	x1, err := ctx1.NewVector(2)
	if err != nil {
		t.Fatalf("NewVector: %v", err)
	}
	dst1, err := ctx1.NewVector(2)
	if err != nil {
		t.Fatalf("NewVector: %v", err)
	}
	x2, err := ctx2.NewVector(2)
	if err != nil {
		t.Fatalf("NewVector: %v", err)
	}

	if err := ctx1.MatVec(dst1, m, x2); !errors.Is(err, ErrDeviceMismatch) {
		t.Fatalf("foreign x: got %v want ErrDeviceMismatch", err)
	}
	if err := ctx2.MatVec(dst1, m, x1); !errors.Is(err, ErrDeviceMismatch) {
		t.Fatalf("foreign everything: got %v want ErrDeviceMismatch", err)
	}
	if err := ctx1.MatVec(dst1, m, x1); err != nil {
		t.Fatalf("same-context MatVec: %v", err)
	}
}

func TestMockContextLengthChecks(t *testing.T) {
	b := NewMockBackend()
	ctx, err := b.NewContext(0)
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}
	m, _ := ctx.NewMatrix(2, 3)
	short, _ := ctx.NewVector(2)
	dst, _ := ctx.NewVector(2)
	if err := ctx.MatVec(dst, m, short); !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("MatVec with short x: got %v want ErrLengthMismatch", err)
	}
	if _, err := ctx.NewVector(0); !errors.Is(err, ErrInvalidLength) {
		t.Fatalf("NewVector(0): got %v want ErrInvalidLength", err)
	}
	if err := m.Upload([]float64{1, 2}); !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("short Upload: got %v want ErrLengthMismatch", err)
	}
}

func TestMockBackendDevices(t *testing.T) {
	b := NewMockBackend()
	if !b.Available() {
		t.Fatal("mock backend must be available")
	}
	devs, err := b.Devices()
	if err != nil || len(devs) != 1 {
		t.Fatalf("Devices: %v %v", devs, err)
	}
	if _, err := b.NewContext(1); err == nil {
		t.Fatal("NewContext(1) must fail for the single-device mock")
	}

	RegisterMockBackend()
	info, ok := CurrentBackendInfo()
	if !ok || info.Name != "mock" {
		t.Fatalf("CurrentBackendInfo: %+v %v", info, ok)
	}
}
