package algolsq

import (
	"context"
	"math"
	"time"

	"github.com/cwbudde/algo-lsq/internal/vec"
)

// Default solver settings, applied when the corresponding Settings field
// is zero.
const (
	DefaultAbsTolerance  = 1e-14
	DefaultRelTolerance  = 1e-14
	DefaultMaxIterations = 1000
)

// stallEpsilon bounds the step-size denominator q·q from below. A value
// at or under it means the search direction is (numerically) in the null
// space of A and the step size would blow up to ±Inf.
const stallEpsilon = 1e-300

// Status describes how a solve terminated.
type Status uint8

const (
	// StatusConverged means the residual norm met the tolerance.
	StatusConverged Status = iota

	// StatusStalled means the step-size denominator q·q underflowed to
	// (near) zero before convergence; the solve stopped instead of
	// propagating NaN into the solution.
	StatusStalled

	// StatusIterationLimit means the iteration budget ran out. The
	// returned x is the best estimate found; the caller decides whether
	// to retry with a larger budget.
	StatusIterationLimit

	// StatusCanceled means the context was canceled between iterations.
	StatusCanceled
)

// String returns a short lower-case name for the status.
func (s Status) String() string {
	switch s {
	case StatusConverged:
		return "converged"
	case StatusStalled:
		return "stalled"
	case StatusIterationLimit:
		return "iteration-limit"
	case StatusCanceled:
		return "canceled"
	default:
		return "unknown"
	}
}

// Settings configures a single Solve call. The zero value selects the
// documented defaults.
type Settings struct {
	// AbsTolerance is the absolute stopping tolerance eps_a. Zero selects
	// DefaultAbsTolerance; negative values are rejected.
	AbsTolerance float64

	// RelTolerance is the stopping tolerance eps_r relative to the norm
	// of the initial residual Aᵗb. Zero selects DefaultRelTolerance;
	// negative values are rejected.
	RelTolerance float64

	// MaxIterations caps the number of CG iterations. Zero selects
	// DefaultMaxIterations; negative values are rejected.
	MaxIterations int
}

func (s *Settings) applyDefaults() {
	if s.AbsTolerance == 0 {
		s.AbsTolerance = DefaultAbsTolerance
	}
	if s.RelTolerance == 0 {
		s.RelTolerance = DefaultRelTolerance
	}
	if s.MaxIterations == 0 {
		s.MaxIterations = DefaultMaxIterations
	}
}

// Stats holds counters about one solve.
type Stats struct {
	// MatVecs counts the A·v and Aᵗ·v products performed.
	MatVecs int

	// Runtime is the approximate wall-clock duration of the solve.
	Runtime time.Duration
}

// Result is the outcome of a Solve call.
type Result struct {
	// X is the solution estimate, length cols.
	X []float64

	// Iterations is the number of CG update steps actually performed.
	Iterations int

	// Converged reports whether the residual met the tolerance.
	Converged bool

	// Status distinguishes convergence, stall, budget exhaustion and
	// cancellation.
	Status Status

	// ResidualNorm is ‖Aᵗ(A·x−b)‖₂ at the last stopping test.
	ResidualNorm float64

	// Stats holds operation counters for this solve.
	Stats Stats
}

// Solve minimizes ‖A·x−b‖₂² by running conjugate gradients on the normal
// equations AᵗA·x = Aᵗb, starting from x = 0.
//
// The stopping test compares ‖r‖₂ against eps_a + eps_r·‖r₀‖₂ where
// r = Aᵗ(A·x−b). The test runs at the top of each iteration, on the
// residual left by the previous iteration, so a solve that converges on
// the k-th test reports k−1 update iterations. The square root is taken
// once per iteration rather than squaring the threshold; the reported
// ResidualNorm is therefore exactly the tested quantity.
//
// Exhausting MaxIterations is not an error: the result carries the best
// x with Converged == false and StatusIterationLimit. A stalled
// iteration (q·q ≈ 0) returns ErrStalledIteration together with the
// partial result. ctx is polled once per iteration; cancellation returns
// the context error with StatusCanceled.
func Solve(ctx context.Context, a Operator, b []float64, s Settings) (Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if a == nil {
		return Result{}, ErrNilOperator
	}
	if b == nil {
		return Result{}, ErrNilVector
	}
	rows, cols := a.Dims()
	if rows < 1 || cols < 1 || len(b) != rows {
		return Result{}, ErrInvalidDimensions
	}
	if s.AbsTolerance < 0 || s.RelTolerance < 0 || s.MaxIterations < 0 {
		return Result{}, ErrInvalidSettings
	}
	s.applyDefaults()

	start := time.Now()

	x := make([]float64, cols)
	r := make([]float64, cols) // residual of the normal equations, Aᵗ(A·x−b)
	p := make([]float64, cols) // search direction
	q := make([]float64, rows) // cached product A·p, reused for alpha and the residual update
	t := make([]float64, cols) // scratch for Aᵗ·q

	res := Result{X: x}

	// x = 0 makes A·x−b = −b, so r = −Aᵗb and the first direction is
	// p = −r = Aᵗb.
	a.MatTransVec(p, b)
	res.Stats.MatVecs++
	copy(r, p)
	vec.Scale(-1, r)

	r0Norm := vec.Norm2(r)
	threshold := s.AbsTolerance + s.RelTolerance*r0Norm

	for res.Iterations < s.MaxIterations {
		if err := ctx.Err(); err != nil {
			res.Status = StatusCanceled
			res.Stats.Runtime = time.Since(start)
			return res, err
		}

		rSqNorm := vec.Dot(r, r)
		res.ResidualNorm = math.Sqrt(rSqNorm)
		if res.ResidualNorm <= threshold {
			res.Converged = true
			res.Status = StatusConverged
			res.Stats.Runtime = time.Since(start)
			return res, nil
		}

		a.MatVec(q, p)
		res.Stats.MatVecs++
		qq := vec.Dot(q, q)
		if qq <= stallEpsilon {
			res.Status = StatusStalled
			res.Stats.Runtime = time.Since(start)
			return res, ErrStalledIteration
		}

		alpha := rSqNorm / qq
		vec.AddScaled(x, alpha, p)

		// r ← r + alpha·AᵗA·p, derived algebraically instead of
		// recomputing Aᵗ(A·x−b) from scratch.
		a.MatTransVec(t, q)
		res.Stats.MatVecs++
		vec.AddScaled(r, alpha, t)

		// Fletcher-Reeves ratio with the just-updated residual.
		beta := vec.Dot(r, r) / rSqNorm
		vec.Scale(beta, p)
		vec.AddScaled(p, -1, r)

		res.Iterations++
	}

	// Budget exhausted. The residual left by the final update was never
	// tested; report its norm so callers can judge how close it got.
	res.ResidualNorm = vec.Norm2(r)
	res.Status = StatusIterationLimit
	res.Stats.Runtime = time.Since(start)
	return res, nil
}
