// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for private kernels and constants.
//
// Purpose:
//   - Expose UNEXPORTED kernels and panic messages to matrix_test ONLY.
//   - The _test.go suffix keeps this surface out of production builds.

// Panic message exports to avoid "magic strings" in tests.
const (
	PanicEpsilonInvalid_TestOnly   = panicEpsilonInvalid
	PanicThresholdInvalid_TestOnly = panicThresholdInvalid
)

// DeterminantKernel_TestOnly forwards to the recursive determinant over a raw
// row-major n×n buffer.
func DeterminantKernel_TestOnly(data []float64, n int) float64 {
	return determinant(data, n)
}

// FillMinor_TestOnly forwards to fillMinor.
func FillMinor_TestOnly(dst, src []float64, n, skipRow, skipCol int) {
	fillMinor(dst, src, n, skipRow, skipCol)
}
