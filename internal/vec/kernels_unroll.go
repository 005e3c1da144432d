package vec

// dotUnroll4 computes a·b with four independent accumulators so the
// multiply-adds do not form a single serial dependency chain.
func dotUnroll4(a, b []float64) float64 {
	var s0, s1, s2, s3 float64
	n := len(a) &^ 3
	for i := 0; i < n; i += 4 {
		s0 += a[i] * b[i]
		s1 += a[i+1] * b[i+1]
		s2 += a[i+2] * b[i+2]
		s3 += a[i+3] * b[i+3]
	}
	sum := (s0 + s1) + (s2 + s3)
	for i := n; i < len(a); i++ {
		sum += a[i] * b[i]
	}
	return sum
}

func addScaledUnroll4(dst []float64, alpha float64, x []float64) {
	n := len(dst) &^ 3
	for i := 0; i < n; i += 4 {
		dst[i] += alpha * x[i]
		dst[i+1] += alpha * x[i+1]
		dst[i+2] += alpha * x[i+2]
		dst[i+3] += alpha * x[i+3]
	}
	for i := n; i < len(dst); i++ {
		dst[i] += alpha * x[i]
	}
}

func matVecUnroll4(dst, a []float64, rows, cols int, x []float64) {
	for i := 0; i < rows; i++ {
		dst[i] = dotUnroll4(a[i*cols:(i+1)*cols], x)
	}
}

func matTransVecUnroll4(dst, a []float64, rows, cols int, x []float64) {
	for j := range dst {
		dst[j] = 0
	}
	for i := 0; i < rows; i++ {
		addScaledUnroll4(dst, x[i], a[i*cols:(i+1)*cols])
	}
}
