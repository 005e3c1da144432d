// Package vec provides the float64 vector and dense matrix-vector
// kernels used by the solver. Kernel variants are selected once at
// startup based on the detected CPU features.
package vec

import "math"

// Dot returns the dot product a·b. Both slices must have the same
// length.
func Dot(a, b []float64) float64 {
	return kernels.dot(a, b)
}

// Norm2 returns the Euclidean norm ‖a‖₂, computed as sqrt(a·a).
func Norm2(a []float64) float64 {
	return math.Sqrt(kernels.dot(a, a))
}

// Scale multiplies every element of dst by alpha in place.
func Scale(alpha float64, dst []float64) {
	if alpha == 1 {
		return
	}
	kernels.scale(alpha, dst)
}

// AddScaled computes dst += alpha·x element-wise. Both slices must have
// the same length.
func AddScaled(dst []float64, alpha float64, x []float64) {
	kernels.addScaled(dst, alpha, x)
}

// MatVec stores A·x into dst for the row-major rows×cols matrix a.
func MatVec(dst, a []float64, rows, cols int, x []float64) {
	kernels.matVec(dst, a, rows, cols, x)
}

// MatTransVec stores Aᵗ·x into dst for the row-major rows×cols matrix a.
func MatTransVec(dst, a []float64, rows, cols int, x []float64) {
	kernels.matTransVec(dst, a, rows, cols, x)
}
