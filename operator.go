package algolsq

import "github.com/cwbudde/algo-lsq/internal/vec"

// Operator is a dense linear operator A of shape rows×cols. The solver
// only needs the two products A·x and Aᵗ·x, so any backend that can
// provide them deterministically in double precision can stand in for an
// in-memory matrix.
//
// Implementations must not retain or mutate the argument slices beyond
// the call.
type Operator interface {
	// Dims returns the number of rows and columns of A.
	Dims() (rows, cols int)

	// MatVec stores A·x into dst. len(x) must equal the column count and
	// len(dst) the row count.
	MatVec(dst, x []float64)

	// MatTransVec stores Aᵗ·x into dst. len(x) must equal the row count
	// and len(dst) the column count.
	MatTransVec(dst, x []float64)
}

// Dense is a row-major matrix of float64 values implementing Operator.
type Dense struct {
	rows, cols int
	data       []float64 // flat backing storage, length rows*cols
}

// NewDense creates a rows×cols matrix. A nil data slice allocates zeroed
// storage; otherwise data is used directly as row-major backing storage
// and must have exactly rows*cols elements.
func NewDense(rows, cols int, data []float64) (*Dense, error) {
	if rows < 1 || cols < 1 {
		return nil, ErrInvalidDimensions
	}
	if data == nil {
		data = make([]float64, rows*cols)
	} else if len(data) != rows*cols {
		return nil, ErrInvalidDimensions
	}
	return &Dense{rows: rows, cols: cols, data: data}, nil
}

// Identity returns the n×n identity matrix.
func Identity(n int) (*Dense, error) {
	m, err := NewDense(n, n, nil)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}
	return m, nil
}

// Dims returns the matrix shape.
func (d *Dense) Dims() (rows, cols int) {
	return d.rows, d.cols
}

// At returns the element at (i, j). It panics when the index is out of
// range.
func (d *Dense) At(i, j int) float64 {
	if i < 0 || i >= d.rows || j < 0 || j >= d.cols {
		panic("algolsq: index out of range")
	}
	return d.data[i*d.cols+j]
}

// Set stores v at (i, j). It panics when the index is out of range.
func (d *Dense) Set(i, j int, v float64) {
	if i < 0 || i >= d.rows || j < 0 || j >= d.cols {
		panic("algolsq: index out of range")
	}
	d.data[i*d.cols+j] = v
}

// RawData returns the row-major backing slice. Mutating it mutates the
// matrix; callers that need a snapshot should copy.
func (d *Dense) RawData() []float64 {
	return d.data
}

// Transpose returns a newly allocated cols×rows transpose of d.
func (d *Dense) Transpose() *Dense {
	t := &Dense{rows: d.cols, cols: d.rows, data: make([]float64, len(d.data))}
	for i := 0; i < d.rows; i++ {
		for j := 0; j < d.cols; j++ {
			t.data[j*t.cols+i] = d.data[i*d.cols+j]
		}
	}
	return t
}

// MatVec stores A·x into dst. It panics on mismatched slice lengths;
// shape validation against the right-hand side happens once in Solve.
func (d *Dense) MatVec(dst, x []float64) {
	if len(x) != d.cols || len(dst) != d.rows {
		panic("algolsq: MatVec dimension mismatch")
	}
	vec.MatVec(dst, d.data, d.rows, d.cols, x)
}

// MatTransVec stores Aᵗ·x into dst. It panics on mismatched slice
// lengths.
func (d *Dense) MatTransVec(dst, x []float64) {
	if len(x) != d.rows || len(dst) != d.cols {
		panic("algolsq: MatTransVec dimension mismatch")
	}
	vec.MatTransVec(dst, d.data, d.rows, d.cols, x)
}
