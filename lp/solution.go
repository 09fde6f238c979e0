package lp

// Status classifies the outcome of a solve.
type Status int

const (
	// StatusOptimal indicates a feasible solution achieving the best
	// possible objective value was found.
	StatusOptimal Status = iota
	// StatusInfeasible indicates no feasible point exists.
	StatusInfeasible
	// StatusUnbounded indicates the objective can be improved without
	// limit, typically a modeling bug (missing capacity or bound).
	StatusUnbounded
	// StatusSolverError indicates the backend failed for reasons other
	// than infeasibility or unboundedness.
	StatusSolverError
)

// String returns a human-readable representation of the status.
func (s Status) String() string {
	switch s {
	case StatusOptimal:
		return "Optimal"
	case StatusInfeasible:
		return "Infeasible"
	case StatusUnbounded:
		return "Unbounded"
	case StatusSolverError:
		return "SolverError"
	}
	return "Unknown"
}

// RawSolution is the untyped outcome of one solve. Values and Objective
// are populated only when Status is StatusOptimal; Values holds one
// entry per model variable in column order, unrounded.
type RawSolution struct {
	Status    Status
	Values    []float64
	Objective float64
}

// IsOptimal reports whether the solution is optimal.
func (s RawSolution) IsOptimal() bool {
	return s.Status == StatusOptimal
}

// Value returns the solution value for v, or 0 if v is out of range.
func (s RawSolution) Value(v Var) float64 {
	if v < 0 || int(v) >= len(s.Values) {
		return 0
	}
	return s.Values[v]
}
