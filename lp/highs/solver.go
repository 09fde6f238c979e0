//go:build (linux || darwin) && (amd64 || arm64)

// Package highs provides an lp.Solver backend built on the HiGHS solver
// through the gohighs bindings. It is an alternative to lp.SimplexSolver
// for callers who want the HiGHS simplex; the bindings embed prebuilt
// static libraries and are limited to linux/darwin on amd64/arm64, so
// the package carries the same build constraints.
package highs

import (
	"math"

	gohighs "github.com/bartolsthoorn/gohighs/highs"

	"github.com/optikit/lpplan/lp"
)

// Solver satisfies lp.Solver using HiGHS.
type Solver struct{}

// Solve maps the canonical form onto a gohighs model, runs it silently,
// and folds the HiGHS status taxonomy into the four core statuses.
func (Solver) Solve(dir lp.Direction, objective []float64, matrix [][]float64, ops []lp.Op, rhs []float64) (lp.Status, []float64, float64, error) {
	n := len(objective)
	model := gohighs.Model{
		Maximize: dir == lp.Maximize,
		ColCosts: append([]float64(nil), objective...),
		ColLower: make([]float64, n),
		ColUpper: make([]float64, n),
	}
	for i := range model.ColUpper {
		model.ColUpper[i] = math.Inf(1)
	}
	for i, row := range matrix {
		switch ops[i] {
		case lp.LessEq:
			model.AddLeRow(row, rhs[i])
		case lp.GreaterEq:
			model.AddGeRow(row, rhs[i])
		case lp.Equal:
			model.AddEqRow(row, rhs[i])
		}
	}

	sol, err := model.Solve(gohighs.WithOutput(false))
	if err != nil {
		return lp.StatusSolverError, nil, 0, err
	}
	switch {
	case sol.IsOptimal():
		values := make([]float64, n)
		for i := range values {
			values[i] = sol.Value(i)
		}
		return lp.StatusOptimal, values, sol.Objective, nil
	case sol.Status == gohighs.ModelStatusUnbounded:
		return lp.StatusUnbounded, nil, 0, nil
	case sol.IsInfeasible():
		return lp.StatusInfeasible, nil, 0, nil
	default:
		return lp.StatusSolverError, nil, 0, nil
	}
}
