// Package algolsq solves dense linear least-squares problems
//
//	min ‖A·x − b‖₂²
//
// using the conjugate gradient method applied to the normal equations
// (CGNR). The matrix A is supplied as an Operator, so the dense
// matrix-vector products can run on the host kernels or on an
// accelerator backend (see the device subpackage) without changing the
// solver itself.
package algolsq
