package vec

// kernelSet groups the primitive kernels for one implementation tier.
type kernelSet struct {
	dot         func(a, b []float64) float64
	scale       func(alpha float64, dst []float64)
	addScaled   func(dst []float64, alpha float64, x []float64)
	matVec      func(dst, a []float64, rows, cols int, x []float64)
	matTransVec func(dst, a []float64, rows, cols int, x []float64)
}

var kernels = selectKernels(DetectFeatures())

// selectKernels returns the best available kernels for the detected
// features. The unrolled variants keep four independent accumulator
// chains, which the compiler turns into packed registers on SSE2/AVX2
// and NEON targets.
func selectKernels(f Features) kernelSet {
	if !f.ForceGeneric && (f.HasAVX2 || f.HasSSE2 || f.HasNEON) {
		return kernelSet{
			dot:         dotUnroll4,
			scale:       scaleGeneric,
			addScaled:   addScaledUnroll4,
			matVec:      matVecUnroll4,
			matTransVec: matTransVecUnroll4,
		}
	}
	return kernelSet{
		dot:         dotGeneric,
		scale:       scaleGeneric,
		addScaled:   addScaledGeneric,
		matVec:      matVecGeneric,
		matTransVec: matTransVecGeneric,
	}
}
