package lp

import "math"

// Solver is the single integration point with an external LP solver.
// The matrix is dense with one column per structural variable; operators
// and rhs have one entry per row. Variables are implicitly nonnegative;
// tighter bounds arrive as ordinary rows. Implementations return the
// outcome status together with, for optimal outcomes, one value per
// objective coefficient and the objective value. A non-nil error means
// the backend itself failed and is mapped to StatusSolverError by the
// Adapter. Any simplex-capable backend satisfying this shape is
// interchangeable.
type Solver interface {
	Solve(dir Direction, objective []float64, matrix [][]float64, ops []Op, rhs []float64) (Status, []float64, float64, error)
}

// Adapter normalizes a closed Model into the canonical form expected by
// a Solver, invokes it exactly once per call, and checks every optimal
// outcome against the model before handing it back. LP outcomes are
// deterministic, so failed or non-optimal solves are reported, never
// retried. The input model is not mutated.
type Adapter struct {
	solver Solver
}

// NewAdapter returns an Adapter delegating to the given backend. Passing
// the backend explicitly (rather than using process-wide solver state)
// lets tests substitute a deterministic fake.
func NewAdapter(s Solver) *Adapter {
	return &Adapter{solver: s}
}

// Solve runs the backend on m. Solver outcomes, including infeasibility,
// unboundedness, and backend failures, are reported as the status of the
// returned RawSolution. The error return is reserved for misuse (nil or
// open model, nil backend) and for a *MismatchError when an "optimal"
// solution violates the model within validation tolerance.
func (a *Adapter) Solve(m *Model) (RawSolution, error) {
	if a.solver == nil {
		return RawSolution{}, modelErrorf("Solve", "adapter has no solver backend")
	}
	if m == nil || !m.Closed() {
		return RawSolution{}, modelErrorf("Solve", "model must be closed before solving")
	}

	matrix, ops, rhs := canonicalForm(m)
	obj := m.Objective()

	status, values, objective, err := a.solver.Solve(obj.Direction, obj.Coeffs, matrix, ops, rhs)
	if err != nil {
		return RawSolution{Status: StatusSolverError}, nil
	}
	if status != StatusOptimal {
		return RawSolution{Status: status}, nil
	}
	if len(values) != m.NumVars() {
		return RawSolution{}, modelErrorf("Solve", "backend returned %d values for %d columns", len(values), m.NumVars())
	}

	sol := RawSolution{
		Status:    StatusOptimal,
		Values:    append([]float64(nil), values...),
		Objective: objective,
	}
	if report := Check(m, sol); !report.Feasible {
		return RawSolution{}, &MismatchError{Violations: report.Violations()}
	}
	return sol, nil
}

// canonicalForm flattens a closed model into dense rows following the
// Solver contract: the model's constraints in insertion order, then one
// row per non-default variable bound.
func canonicalForm(m *Model) (matrix [][]float64, ops []Op, rhs []float64) {
	n := m.NumVars()
	for _, c := range m.cons {
		row := make([]float64, n)
		for _, t := range c.Terms {
			row[t.Var] = t.Coeff
		}
		matrix = append(matrix, row)
		ops = append(ops, c.Op)
		rhs = append(rhs, c.RHS)
	}
	for i := 0; i < n; i++ {
		lower, upper := m.vars[i].lower, m.vars[i].upper
		if lower > 0 {
			row := make([]float64, n)
			row[i] = 1
			matrix = append(matrix, row)
			ops = append(ops, GreaterEq)
			rhs = append(rhs, lower)
		}
		if !math.IsInf(upper, 1) {
			row := make([]float64, n)
			row[i] = 1
			matrix = append(matrix, row)
			ops = append(ops, LessEq)
			rhs = append(rhs, upper)
		}
	}
	return matrix, ops, rhs
}
