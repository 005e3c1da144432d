package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	algolsq "github.com/cwbudde/algo-lsq"
	"github.com/cwbudde/algo-lsq/device"
	"github.com/spf13/cobra"
)

var solveFlags struct {
	matrixPath string
	rhsPath    string
	absTol     float64
	relTol     float64
	maxIter    int
	backend    string
}

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve one least-squares system from plain-text files",
	Long: `Solve one least-squares system from plain-text files.

The matrix file holds one row per line, whitespace-separated values; the
right-hand side file holds one value per line (or any whitespace
separation). With --backend mock the solve runs through the device
package's CPU-backed mock accelerator.`,
	RunE: runSolve,
}

func init() {
	f := solveCmd.Flags()
	f.StringVar(&solveFlags.matrixPath, "matrix", "", "path to the matrix file (required)")
	f.StringVar(&solveFlags.rhsPath, "rhs", "", "path to the right-hand side file (required)")
	f.Float64Var(&solveFlags.absTol, "abs-tol", 0, "absolute tolerance (0 = solver default)")
	f.Float64Var(&solveFlags.relTol, "rel-tol", 0, "relative tolerance (0 = solver default)")
	f.IntVar(&solveFlags.maxIter, "max-iter", 0, "iteration budget (0 = solver default)")
	f.StringVar(&solveFlags.backend, "backend", "host", "execution backend: host or mock")
	_ = solveCmd.MarkFlagRequired("matrix")
	_ = solveCmd.MarkFlagRequired("rhs")
}

func runSolve(cmd *cobra.Command, args []string) error {
	a, err := readMatrix(solveFlags.matrixPath)
	if err != nil {
		return err
	}
	b, err := readVector(solveFlags.rhsPath)
	if err != nil {
		return err
	}

	settings := algolsq.Settings{
		AbsTolerance:  solveFlags.absTol,
		RelTolerance:  solveFlags.relTol,
		MaxIterations: solveFlags.maxIter,
	}

	var res algolsq.Result
	switch solveFlags.backend {
	case "host":
		res, err = algolsq.Solve(context.Background(), a, b, settings)
	case "mock":
		device.RegisterMockBackend()
		res, err = device.Solve(context.Background(), a, b, settings, device.Options{})
	default:
		return fmt.Errorf("unknown backend %q", solveFlags.backend)
	}
	if err != nil {
		return err
	}

	fmt.Printf("status=%s iterations=%d matvecs=%d residual=%.6e runtime=%s\n",
		res.Status, res.Iterations, res.Stats.MatVecs, res.ResidualNorm, res.Stats.Runtime)
	for _, v := range res.X {
		fmt.Printf("%.12g\n", v)
	}
	return nil
}

func readMatrix(path string) (*algolsq.Dense, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = file.Close() }()

	var (
		data []float64
		cols int
		rows int
	)
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 1<<20), 1<<24)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if cols == 0 {
			cols = len(fields)
		} else if len(fields) != cols {
			return nil, fmt.Errorf("%s: row %d has %d values, want %d", path, rows+1, len(fields), cols)
		}
		for _, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("%s: row %d: %w", path, rows+1, err)
			}
			data = append(data, v)
		}
		rows++
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, fmt.Errorf("%s: empty matrix", path)
	}
	return algolsq.NewDense(rows, cols, data)
}

func readVector(path string) ([]float64, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	fields := strings.Fields(string(raw))
	if len(fields) == 0 {
		return nil, fmt.Errorf("%s: empty vector", path)
	}
	v := make([]float64, len(fields))
	for i, f := range fields {
		v[i], err = strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("%s: value %d: %w", path, i+1, err)
		}
	}
	return v, nil
}
