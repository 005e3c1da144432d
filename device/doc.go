// Package device provides an accelerator backend boundary for algolsq.
//
// This package defines matrix and vector buffer interfaces that mirror
// the host Operator surface while allowing persistent device buffers and
// backend-specific execution contexts. The implementation is
// intentionally minimal and requires a backend to be registered at
// runtime; a CPU-backed mock backend is included for development and
// tests.
package device
