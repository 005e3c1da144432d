package vec

func dotGeneric(a, b []float64) float64 {
	var sum float64
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

func scaleGeneric(alpha float64, dst []float64) {
	for i := range dst {
		dst[i] *= alpha
	}
}

func addScaledGeneric(dst []float64, alpha float64, x []float64) {
	for i := range dst {
		dst[i] += alpha * x[i]
	}
}

func matVecGeneric(dst, a []float64, rows, cols int, x []float64) {
	for i := 0; i < rows; i++ {
		dst[i] = dotGeneric(a[i*cols:(i+1)*cols], x)
	}
}

// matTransVecGeneric accumulates row i of A scaled by x[i] into dst,
// which walks the row-major storage sequentially instead of striding
// down columns.
func matTransVecGeneric(dst, a []float64, rows, cols int, x []float64) {
	for j := range dst {
		dst[j] = 0
	}
	for i := 0; i < rows; i++ {
		addScaledGeneric(dst, x[i], a[i*cols:(i+1)*cols])
	}
}
