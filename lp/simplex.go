package lp

import (
	"errors"

	"gonum.org/v1/gonum/mat"
	gonumlp "gonum.org/v1/gonum/optimize/convex/lp"
)

// defaultSimplexTol is the pivot tolerance handed to gonum when the
// caller does not set one.
const defaultSimplexTol = 1e-10

// SimplexSolver is the default backend, built on gonum's dense simplex.
// It is pure Go and deterministic: solving the same inputs twice yields
// identical results.
type SimplexSolver struct {
	// Tol is the simplex pivot tolerance. Zero selects a default.
	Tol float64
}

// Solve converts the general-form problem to gonum's standard form
// (minimize c'x subject to Ax = b, x >= 0) by appending one slack or
// surplus column per inequality row, then runs the simplex.
func (s SimplexSolver) Solve(dir Direction, objective []float64, matrix [][]float64, ops []Op, rhs []float64) (Status, []float64, float64, error) {
	n := len(objective)
	rows := len(matrix)
	if len(ops) != rows || len(rhs) != rows {
		return StatusSolverError, nil, 0, modelErrorf("Simplex", "rows, operators and rhs lengths differ")
	}
	for _, row := range matrix {
		if len(row) != n {
			return StatusSolverError, nil, 0, modelErrorf("Simplex", "row width %d does not match %d objective coefficients", len(row), n)
		}
	}
	if rows == 0 {
		// With x >= 0 and no rows the optimum sits at the origin unless
		// some coefficient rewards growth.
		for _, c := range objective {
			if (dir == Minimize && c < 0) || (dir == Maximize && c > 0) {
				return StatusUnbounded, nil, 0, nil
			}
		}
		return StatusOptimal, make([]float64, n), 0, nil
	}

	slacks := 0
	for _, op := range ops {
		if op != Equal {
			slacks++
		}
	}
	cols := n + slacks

	c := make([]float64, cols)
	copy(c, objective)
	if dir == Maximize {
		for i := range c {
			c[i] = -c[i]
		}
	}

	data := make([]float64, rows*cols)
	slack := 0
	for i, row := range matrix {
		copy(data[i*cols:i*cols+n], row)
		switch ops[i] {
		case LessEq:
			data[i*cols+n+slack] = 1
			slack++
		case GreaterEq:
			data[i*cols+n+slack] = -1
			slack++
		}
	}
	a := mat.NewDense(rows, cols, data)
	b := append([]float64(nil), rhs...)

	tol := s.Tol
	if tol == 0 {
		tol = defaultSimplexTol
	}

	optF, optX, err := gonumlp.Simplex(c, a, b, tol, nil)
	switch {
	case err == nil:
		objective := optF
		if dir == Maximize {
			objective = -objective
		}
		return StatusOptimal, append([]float64(nil), optX[:n]...), objective, nil
	case errors.Is(err, gonumlp.ErrInfeasible):
		return StatusInfeasible, nil, 0, nil
	case errors.Is(err, gonumlp.ErrUnbounded):
		return StatusUnbounded, nil, 0, nil
	default:
		return StatusSolverError, nil, 0, err
	}
}
