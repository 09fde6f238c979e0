package lp

import "math"

// ValidationEpsilon is the relative feasibility tolerance. Each row's
// absolute tolerance is this epsilon scaled by the largest magnitude in
// the row (coefficients and right-hand side), so a funds cap in the
// millions and an octane row in the tens are held to the same relative
// standard.
const ValidationEpsilon = 1e-6

// RowCheck is the validator's verdict on a single row. Slack is signed
// so that a value <= 0 means satisfied regardless of the operator:
// lhs-rhs for <=, rhs-lhs for >=, |lhs-rhs| for =.
type RowCheck struct {
	Index     int // constraint position in the model; -1 for bound rows
	Name      string
	Op        Op
	Slack     float64
	Tolerance float64
	Satisfied bool
}

// Report is the outcome of re-checking a solution against its model.
type Report struct {
	Feasible bool
	Rows     []RowCheck
}

// Violations returns the rows the solution does not satisfy.
func (r Report) Violations() []RowCheck {
	var out []RowCheck
	for _, row := range r.Rows {
		if !row.Satisfied {
			out = append(out, row)
		}
	}
	return out
}

// Check independently re-evaluates every constraint of m at sol and
// reports per-row slack. Solver-reported optimality is not trusted: a
// sign error in a hand-derived linearization produces a model the solver
// happily "solves", and this is where it gets caught. Variable bounds
// are verified as well; a violated bound appends a synthetic row with
// Index -1. Non-optimal solutions carry no values and report infeasible.
func Check(m *Model, sol RawSolution) Report {
	if m == nil || !sol.IsOptimal() || len(sol.Values) != m.NumVars() {
		return Report{Feasible: false}
	}

	report := Report{Feasible: true}
	for i, c := range m.cons {
		lhs := 0.0
		scale := math.Abs(c.RHS)
		for _, t := range c.Terms {
			lhs += t.Coeff * sol.Values[t.Var]
			if a := math.Abs(t.Coeff); a > scale {
				scale = a
			}
		}
		if scale < 1 {
			scale = 1
		}
		tol := ValidationEpsilon * scale

		var slack float64
		switch c.Op {
		case LessEq:
			slack = lhs - c.RHS
		case GreaterEq:
			slack = c.RHS - lhs
		case Equal:
			slack = math.Abs(lhs - c.RHS)
		}

		row := RowCheck{
			Index:     i,
			Name:      c.Name,
			Op:        c.Op,
			Slack:     slack,
			Tolerance: tol,
			Satisfied: slack <= tol,
		}
		if !row.Satisfied {
			report.Feasible = false
		}
		report.Rows = append(report.Rows, row)
	}

	for i, v := range m.vars {
		value := sol.Values[i]
		if tol := ValidationEpsilon * math.Max(1, math.Abs(v.lower)); value < v.lower-tol {
			report.Feasible = false
			report.Rows = append(report.Rows, RowCheck{
				Index: -1, Name: v.name + " lower bound", Op: GreaterEq,
				Slack: v.lower - value, Tolerance: tol,
			})
		}
		if tol := ValidationEpsilon * math.Max(1, math.Abs(v.upper)); !math.IsInf(v.upper, 1) && value > v.upper+tol {
			report.Feasible = false
			report.Rows = append(report.Rows, RowCheck{
				Index: -1, Name: v.name + " upper bound", Op: LessEq,
				Slack: value - v.upper, Tolerance: tol,
			})
		}
	}
	return report
}
