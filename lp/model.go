// Package lp provides a solver-agnostic linear programming model,
// a canonical-form adapter around pluggable solver backends, and an
// independent feasibility validator.
//
// A Model is built once, closed, and then handed to an Adapter:
//
//	m := lp.NewModel()
//	x, _ := m.AddVar("x")
//	y, _ := m.AddVar("y")
//	m.SetObjective(lp.Minimize, []lp.Term{{x, 1}, {y, 1}})
//	m.AddConstraint("floor", []lp.Term{{x, 1}, {y, 2}}, lp.GreaterEq, 5)
//	m.Close()
//
//	sol, err := lp.NewAdapter(lp.SimplexSolver{}).Solve(m)
package lp

import (
	"math"
)

// Direction selects whether the objective is minimized or maximized.
type Direction int

const (
	Minimize Direction = iota
	Maximize
)

// String returns a human-readable representation of the direction.
func (d Direction) String() string {
	if d == Maximize {
		return "maximize"
	}
	return "minimize"
}

// Op is a constraint comparison operator.
type Op int

const (
	LessEq Op = iota
	GreaterEq
	Equal
)

// String returns the operator in conventional infix notation.
func (o Op) String() string {
	switch o {
	case LessEq:
		return "<="
	case GreaterEq:
		return ">="
	case Equal:
		return "="
	}
	return "?"
}

// Var identifies a variable by its column index. Insertion order is
// column order, which is significant for solution-vector decoding.
type Var int

// Term is a single (variable, coefficient) entry of a linear expression.
type Term struct {
	Var   Var
	Coeff float64
}

type variable struct {
	name  string
	lower float64
	upper float64
}

// Constraint is a linear row: sum(Terms) Op RHS. Terms are merged by
// variable and hold no zero coefficients. Name is used for diagnostics
// only and has no effect on solving.
type Constraint struct {
	Name  string
	Terms []Term
	Op    Op
	RHS   float64
}

// Objective holds the optimization direction and a dense coefficient
// vector in column order. Variables absent from the terms passed to
// SetObjective have coefficient 0.
type Objective struct {
	Direction Direction
	Coeffs    []float64
}

// Model is an ordered set of variables, an objective, and constraints.
// It carries no solving logic. Once Close is called the model is frozen
// and any further mutation fails.
type Model struct {
	vars   []variable
	cons   []Constraint
	obj    Objective
	hasObj bool
	closed bool
}

// NewModel returns an empty, open model.
func NewModel() *Model {
	return &Model{}
}

// AddVar adds a continuous variable with default bounds [0, +inf).
func (m *Model) AddVar(name string) (Var, error) {
	return m.AddVarBounded(name, 0, math.Inf(1))
}

// AddVarBounded adds a continuous variable with the given bounds.
// Lower bounds must be nonnegative: the canonical form handed to solver
// backends assumes x >= 0 and emits tighter bounds as extra rows.
func (m *Model) AddVarBounded(name string, lower, upper float64) (Var, error) {
	if m.closed {
		return 0, modelErrorf("AddVar", "model is closed")
	}
	if name == "" {
		return 0, modelErrorf("AddVar", "variable name must not be empty")
	}
	if math.IsNaN(lower) || math.IsNaN(upper) {
		return 0, modelErrorf("AddVar", "bounds for %q must not be NaN", name)
	}
	if lower < 0 {
		return 0, modelErrorf("AddVar", "lower bound for %q is negative; variables are nonnegative", name)
	}
	if upper < lower {
		return 0, modelErrorf("AddVar", "upper bound for %q is below its lower bound", name)
	}
	m.vars = append(m.vars, variable{name: name, lower: lower, upper: upper})
	return Var(len(m.vars) - 1), nil
}

// SetObjective sets the objective once. Terms are sparse; variables not
// mentioned get coefficient 0.
func (m *Model) SetObjective(dir Direction, terms []Term) error {
	if m.closed {
		return modelErrorf("SetObjective", "model is closed")
	}
	if m.hasObj {
		return modelErrorf("SetObjective", "objective already set")
	}
	coeffs := make([]float64, len(m.vars))
	for _, t := range terms {
		if err := m.checkTerm("SetObjective", t); err != nil {
			return err
		}
		coeffs[t.Var] += t.Coeff
	}
	m.obj = Objective{Direction: dir, Coeffs: coeffs}
	m.hasObj = true
	return nil
}

// AddConstraint appends a row sum(terms) op rhs. Duplicate variables are
// merged; a row whose coefficients all cancel to zero is rejected as
// ill-formed.
func (m *Model) AddConstraint(name string, terms []Term, op Op, rhs float64) error {
	if m.closed {
		return modelErrorf("AddConstraint", "model is closed")
	}
	if math.IsNaN(rhs) || math.IsInf(rhs, 0) {
		return modelErrorf("AddConstraint", "%q: right-hand side must be finite", name)
	}
	merged, err := m.mergeTerms(name, terms)
	if err != nil {
		return err
	}
	m.cons = append(m.cons, Constraint{Name: name, Terms: merged, Op: op, RHS: rhs})
	return nil
}

func (m *Model) checkTerm(op string, t Term) error {
	if t.Var < 0 || int(t.Var) >= len(m.vars) {
		return modelErrorf(op, "unknown variable id %d", t.Var)
	}
	if math.IsNaN(t.Coeff) || math.IsInf(t.Coeff, 0) {
		return modelErrorf(op, "coefficient for %q must be finite", m.vars[t.Var].name)
	}
	return nil
}

func (m *Model) mergeTerms(name string, terms []Term) ([]Term, error) {
	dense := make([]float64, len(m.vars))
	for _, t := range terms {
		if err := m.checkTerm("AddConstraint", t); err != nil {
			return nil, err
		}
		dense[t.Var] += t.Coeff
	}
	merged := make([]Term, 0, len(terms))
	for v, c := range dense {
		if c != 0 {
			merged = append(merged, Term{Var: Var(v), Coeff: c})
		}
	}
	if len(merged) == 0 {
		return nil, modelErrorf("AddConstraint", "%q: all coefficients are zero", name)
	}
	return merged, nil
}

// Close freezes the model. A model must hold at least one variable and
// an objective before it can be solved. Closing an already closed model
// is a no-op.
func (m *Model) Close() error {
	if m.closed {
		return nil
	}
	if len(m.vars) == 0 {
		return modelErrorf("Close", "model has no variables")
	}
	if !m.hasObj {
		return modelErrorf("Close", "model has no objective")
	}
	m.closed = true
	return nil
}

// Closed reports whether the model has been frozen.
func (m *Model) Closed() bool { return m.closed }

// NumVars returns the number of variables (columns).
func (m *Model) NumVars() int { return len(m.vars) }

// NumConstraints returns the number of constraint rows.
func (m *Model) NumConstraints() int { return len(m.cons) }

// VarName returns the name of v, or "" if v is out of range.
func (m *Model) VarName(v Var) string {
	if v < 0 || int(v) >= len(m.vars) {
		return ""
	}
	return m.vars[v].name
}

// Bounds returns the lower and upper bound of v.
func (m *Model) Bounds(v Var) (lower, upper float64) {
	if v < 0 || int(v) >= len(m.vars) {
		return 0, 0
	}
	return m.vars[v].lower, m.vars[v].upper
}

// Objective returns a copy of the objective. Coeffs always holds one
// entry per column: variables added after SetObjective get coefficient 0.
func (m *Model) Objective() Objective {
	coeffs := make([]float64, len(m.vars))
	copy(coeffs, m.obj.Coeffs)
	return Objective{Direction: m.obj.Direction, Coeffs: coeffs}
}

// Constraints returns a copy of the constraint rows in insertion order.
func (m *Model) Constraints() []Constraint {
	out := make([]Constraint, len(m.cons))
	for i, c := range m.cons {
		terms := make([]Term, len(c.Terms))
		copy(terms, c.Terms)
		out[i] = Constraint{Name: c.Name, Terms: terms, Op: c.Op, RHS: c.RHS}
	}
	return out
}
