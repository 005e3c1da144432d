package main

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"
)

func newTestRand() *rand.Rand {
	return rand.New(rand.NewSource(1))
}

func TestLoadScenarios(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scenarios.yaml")
	content := `scenarios:
  - name: tall
    rows: 64
    cols: 16
    cond: 100
  - rows: 8
    cols: 8
    max_iterations: 50
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	scs, err := loadScenarios(path)
	if err != nil {
		t.Fatalf("loadScenarios: %v", err)
	}
	if len(scs) != 2 {
		t.Fatalf("got %d scenarios, want 2", len(scs))
	}
	if scs[0].Name != "tall" || scs[0].Rows != 64 || scs[0].Cond != 100 {
		t.Fatalf("scenario 0 = %+v", scs[0])
	}
	if scs[1].Name != "8x8" {
		t.Fatalf("default name = %q, want 8x8", scs[1].Name)
	}
	if scs[1].MaxIterations != 50 {
		t.Fatalf("max iterations = %d, want 50", scs[1].MaxIterations)
	}
}

func TestLoadScenariosRejectsBadDims(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	content := "scenarios:\n  - rows: 0\n    cols: 4\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := loadScenarios(path); err == nil {
		t.Fatal("expected error for zero rows")
	}
}

func TestParseSize(t *testing.T) {
	rows, cols, err := parseSize("128x32")
	if err != nil || rows != 128 || cols != 32 {
		t.Fatalf("parseSize: %d %d %v", rows, cols, err)
	}
	for _, bad := range []string{"", "128", "0x4", "axb", "4x-1"} {
		if _, _, err := parseSize(bad); err == nil {
			t.Errorf("parseSize(%q): expected error", bad)
		}
	}
}

func TestRandomMatrixShape(t *testing.T) {
	m := randomMatrix(newTestRand(), 6, 3, 10)
	rows, cols := m.Dims()
	if rows != 6 || cols != 3 {
		t.Fatalf("shape %dx%d, want 6x3", rows, cols)
	}
	// First column carries scale 1, last carries 1/cond; a zero column
	// would mean the scaling loop is broken.
	for j := 0; j < cols; j++ {
		var nonzero bool
		for i := 0; i < rows; i++ {
			if m.At(i, j) != 0 {
				nonzero = true
				break
			}
		}
		if !nonzero {
			t.Fatalf("column %d is all zeros", j)
		}
	}
}
