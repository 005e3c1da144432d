package device

import (
	"context"
	"fmt"

	algolsq "github.com/cwbudde/algo-lsq"
)

// Operator is a device-resident dense operator. It implements
// algolsq.Operator by staging host vectors through two persistent device
// buffers, one per dimension, so a whole solve reuses the same
// allocations.
//
// All buffers are created from a single context at construction time, so
// per-call device mismatches cannot occur. Transfer or kernel failures
// surface as panics carrying the backend error; the interfaces of the
// host solver have no error channel for them and a failed transfer
// leaves no usable state to continue with.
type Operator struct {
	ctx        Context
	mat        Matrix
	rows, cols int
	rowBuf     Vector // length rows
	colBuf     Vector // length cols
}

// NewOperator uploads a to the registered backend and returns a
// device-resident operator. The caller owns the returned operator and
// must Close it to release the device buffers.
func NewOperator(a *algolsq.Dense, opts Options) (*Operator, error) {
	b := getBackend()
	if b == nil {
		return nil, ErrNoBackend
	}
	if !b.Available() {
		return nil, ErrBackendUnavailable
	}

	ctx, err := b.NewContext(opts.DeviceIndex)
	if err != nil {
		return nil, err
	}

	rows, cols := a.Dims()
	op := &Operator{ctx: ctx, rows: rows, cols: cols}

	op.mat, err = ctx.NewMatrix(rows, cols)
	if err == nil {
		err = op.mat.Upload(a.RawData())
	}
	if err == nil {
		op.rowBuf, err = ctx.NewVector(rows)
	}
	if err == nil {
		op.colBuf, err = ctx.NewVector(cols)
	}
	if err != nil {
		_ = op.Close()
		return nil, err
	}
	return op, nil
}

// Dims returns the operator shape.
func (op *Operator) Dims() (rows, cols int) {
	return op.rows, op.cols
}

// MatVec implements algolsq.Operator on the device.
func (op *Operator) MatVec(dst, x []float64) {
	if err := op.colBuf.Upload(x); err != nil {
		panic(fmt.Sprintf("algolsq/device: MatVec upload: %v", err))
	}
	if err := op.ctx.MatVec(op.rowBuf, op.mat, op.colBuf); err != nil {
		panic(fmt.Sprintf("algolsq/device: MatVec: %v", err))
	}
	if err := op.rowBuf.Download(dst); err != nil {
		panic(fmt.Sprintf("algolsq/device: MatVec download: %v", err))
	}
}

// MatTransVec implements algolsq.Operator on the device.
func (op *Operator) MatTransVec(dst, x []float64) {
	if err := op.rowBuf.Upload(x); err != nil {
		panic(fmt.Sprintf("algolsq/device: MatTransVec upload: %v", err))
	}
	if err := op.ctx.MatTransVec(op.colBuf, op.mat, op.rowBuf); err != nil {
		panic(fmt.Sprintf("algolsq/device: MatTransVec: %v", err))
	}
	if err := op.colBuf.Download(dst); err != nil {
		panic(fmt.Sprintf("algolsq/device: MatTransVec download: %v", err))
	}
}

// Close releases the device buffers and context.
func (op *Operator) Close() error {
	var first error
	for _, c := range []interface{ Close() error }{op.colBuf, op.rowBuf, op.mat, op.ctx} {
		if c == nil {
			continue
		}
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	op.colBuf, op.rowBuf, op.mat, op.ctx = nil, nil, nil, nil
	return first
}

// Solve uploads a to the registered backend and runs algolsq.Solve with
// the device-resident operator. It is a convenience wrapper for callers
// that do not need to reuse the uploaded matrix across solves.
func Solve(ctx context.Context, a *algolsq.Dense, b []float64, s algolsq.Settings, opts Options) (algolsq.Result, error) {
	op, err := NewOperator(a, opts)
	if err != nil {
		return algolsq.Result{}, err
	}
	defer func() { _ = op.Close() }()
	return algolsq.Solve(ctx, op, b, s)
}
