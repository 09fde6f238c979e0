package lp

import (
	"fmt"
	"strings"
)

// ModelError reports misuse of the modeling API: dangling variable
// references, mutation of a closed model, ill-formed rows.
type ModelError struct {
	Op  string // operation that failed (e.g. "AddConstraint", "Solve")
	Msg string
}

func (e *ModelError) Error() string {
	return fmt.Sprintf("lp: %s: %s", e.Op, e.Msg)
}

func modelErrorf(op, format string, args ...any) error {
	return &ModelError{Op: op, Msg: fmt.Sprintf(format, args...)}
}

// MismatchError is returned when a solver reports an optimal solution
// that violates a constraint of the model it was given. It signals a bug
// in the model construction (typically the sign of a rearranged ratio
// constraint) and must be treated as fatal.
type MismatchError struct {
	Violations []RowCheck
}

func (e *MismatchError) Error() string {
	names := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		names[i] = fmt.Sprintf("%s (slack %g, tolerance %g)", v.Name, v.Slack, v.Tolerance)
	}
	return fmt.Sprintf("lp: solver reported optimal but %d constraint(s) violated: %s",
		len(e.Violations), strings.Join(names, ", "))
}
