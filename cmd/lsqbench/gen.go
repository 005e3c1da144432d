package main

import (
	"math"
	"math/rand"

	algolsq "github.com/cwbudde/algo-lsq"
)

// randomMatrix returns a rows×cols test matrix with an approximately
// controlled condition number: Gaussian entries with the columns scaled
// geometrically from 1 down to 1/cond. The Gaussian factor itself is
// well conditioned with high probability, so the scaling dominates.
func randomMatrix(rnd *rand.Rand, rows, cols int, cond float64) *algolsq.Dense {
	if cond < 1 {
		cond = 1
	}
	m, err := algolsq.NewDense(rows, cols, nil)
	if err != nil {
		panic(err)
	}
	for j := 0; j < cols; j++ {
		scale := 1.0
		if cols > 1 {
			scale = math.Pow(cond, -float64(j)/float64(cols-1))
		}
		for i := 0; i < rows; i++ {
			m.Set(i, j, scale*rnd.NormFloat64())
		}
	}
	return m
}

func randomVector(rnd *rand.Rand, n int) []float64 {
	v := make([]float64, n)
	for i := range v {
		v[i] = rnd.NormFloat64()
	}
	return v
}
