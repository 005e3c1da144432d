package algolsq

import "errors"

// Sentinel errors returned by solver operations.
var (
	// ErrInvalidDimensions is returned when operator and vector shapes are
	// incompatible: for an m×n operator the right-hand side must have
	// length m, and both dimensions must be at least one.
	ErrInvalidDimensions = errors.New("algolsq: invalid dimensions")

	// ErrNilOperator is returned when Solve is called without an operator.
	ErrNilOperator = errors.New("algolsq: nil operator")

	// ErrNilVector is returned when the right-hand side is nil.
	ErrNilVector = errors.New("algolsq: nil right-hand side")

	// ErrInvalidSettings is returned when a tolerance is negative or the
	// iteration limit is negative.
	ErrInvalidSettings = errors.New("algolsq: invalid solver settings")

	// ErrStalledIteration is returned when the step-size denominator q·q
	// underflows to (near) zero before the residual meets the tolerance.
	// The result still carries the best solution estimate found so far.
	ErrStalledIteration = errors.New("algolsq: stalled iteration")
)
