package vec

import (
	"math"
	"math/rand"
	"testing"
)

func randSlice(rnd *rand.Rand, n int) []float64 {
	s := make([]float64, n)
	for i := range s {
		s[i] = rnd.NormFloat64()
	}
	return s
}

// Unrolled kernels must agree with the generic ones for every tail
// length, not just multiples of four.
func TestUnrolledMatchesGeneric(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	for _, n := range []int{0, 1, 2, 3, 4, 5, 7, 8, 13, 64, 129} {
		a := randSlice(rnd, n)
		b := randSlice(rnd, n)

		want := dotGeneric(a, b)
		got := dotUnroll4(a, b)
		if math.Abs(got-want) > 1e-12*(1+math.Abs(want)) {
			t.Errorf("dotUnroll4 n=%d: got %v want %v", n, got, want)
		}

		d1 := append([]float64(nil), a...)
		d2 := append([]float64(nil), a...)
		addScaledGeneric(d1, 0.37, b)
		addScaledUnroll4(d2, 0.37, b)
		for i := range d1 {
			if math.Abs(d1[i]-d2[i]) > 1e-12 {
				t.Errorf("addScaledUnroll4 n=%d i=%d: got %v want %v", n, i, d2[i], d1[i])
				break
			}
		}
	}
}

func TestMatVecKnownValues(t *testing.T) {
	// 2×3 matrix [[1 2 3] [4 5 6]], x = [1 0 1].
	a := []float64{1, 2, 3, 4, 5, 6}
	x := []float64{1, 0, 1}
	dst := make([]float64, 2)
	MatVec(dst, a, 2, 3, x)
	if dst[0] != 4 || dst[1] != 10 {
		t.Fatalf("MatVec: got %v want [4 10]", dst)
	}

	// Aᵗ·y with y = [1 1] is the column sums [5 7 9].
	y := []float64{1, 1}
	dstT := make([]float64, 3)
	MatTransVec(dstT, a, 2, 3, y)
	if dstT[0] != 5 || dstT[1] != 7 || dstT[2] != 9 {
		t.Fatalf("MatTransVec: got %v want [5 7 9]", dstT)
	}
}

func TestMatVecTiersAgree(t *testing.T) {
	rnd := rand.New(rand.NewSource(2))
	for _, dims := range [][2]int{{1, 1}, {3, 5}, {5, 3}, {17, 9}, {32, 32}} {
		rows, cols := dims[0], dims[1]
		a := randSlice(rnd, rows*cols)
		x := randSlice(rnd, cols)
		y := randSlice(rnd, rows)

		want := make([]float64, rows)
		got := make([]float64, rows)
		matVecGeneric(want, a, rows, cols, x)
		matVecUnroll4(got, a, rows, cols, x)
		for i := range want {
			if math.Abs(got[i]-want[i]) > 1e-10 {
				t.Errorf("matVec %dx%d row %d: got %v want %v", rows, cols, i, got[i], want[i])
			}
		}

		wantT := make([]float64, cols)
		gotT := make([]float64, cols)
		matTransVecGeneric(wantT, a, rows, cols, y)
		matTransVecUnroll4(gotT, a, rows, cols, y)
		for j := range wantT {
			if math.Abs(gotT[j]-wantT[j]) > 1e-10 {
				t.Errorf("matTransVec %dx%d col %d: got %v want %v", rows, cols, j, gotT[j], wantT[j])
			}
		}
	}
}

func TestNorm2(t *testing.T) {
	if got := Norm2([]float64{3, 4}); math.Abs(got-5) > 1e-15 {
		t.Fatalf("Norm2: got %v want 5", got)
	}
	if got := Norm2(nil); got != 0 {
		t.Fatalf("Norm2(nil): got %v want 0", got)
	}
}

func TestScale(t *testing.T) {
	dst := []float64{1, -2, 3}
	Scale(-2, dst)
	want := []float64{-2, 4, -6}
	for i := range dst {
		if dst[i] != want[i] {
			t.Fatalf("Scale: got %v want %v", dst, want)
		}
	}
}

func TestSelectKernelsForceGeneric(t *testing.T) {
	k := selectKernels(Features{ForceGeneric: true, HasAVX2: true})
	if k.dot == nil || k.matVec == nil {
		t.Fatal("selectKernels returned nil kernels")
	}
	a := []float64{1, 2}
	if got := k.dot(a, a); got != 5 {
		t.Fatalf("generic dot: got %v want 5", got)
	}
}
