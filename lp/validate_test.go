package lp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checkModel(t *testing.T) *Model {
	t.Helper()
	m := NewModel()
	x, err := m.AddVar("x")
	require.NoError(t, err)
	y, err := m.AddVar("y")
	require.NoError(t, err)
	require.NoError(t, m.SetObjective(Minimize, []Term{{x, 1}, {y, 1}}))
	require.NoError(t, m.AddConstraint("cap", []Term{{x, 1}, {y, 1}}, LessEq, 10))
	require.NoError(t, m.AddConstraint("floor", []Term{{x, 2}}, GreaterEq, 4))
	require.NoError(t, m.AddConstraint("balance", []Term{{x, 1}, {y, -1}}, Equal, 0))
	require.NoError(t, m.Close())
	return m
}

func optimal(values []float64, objective float64) RawSolution {
	return RawSolution{Status: StatusOptimal, Values: values, Objective: objective}
}

func TestCheckReportsOrientedSlack(t *testing.T) {
	m := checkModel(t)
	report := Check(m, optimal([]float64{3, 3}, 6))

	require.True(t, report.Feasible)
	require.Len(t, report.Rows, 3)

	// cap: lhs-rhs = 6-10 = -4
	assert.InDelta(t, -4.0, report.Rows[0].Slack, 1e-12)
	assert.True(t, report.Rows[0].Satisfied)
	// floor: rhs-lhs = 4-6 = -2
	assert.InDelta(t, -2.0, report.Rows[1].Slack, 1e-12)
	assert.True(t, report.Rows[1].Satisfied)
	// balance: |lhs-rhs| = 0
	assert.InDelta(t, 0.0, report.Rows[2].Slack, 1e-12)
	assert.True(t, report.Rows[2].Satisfied)
	assert.Empty(t, report.Violations())
}

func TestCheckFlagsViolatedRows(t *testing.T) {
	m := checkModel(t)
	// x=1 breaks the floor (needs 2x >= 4); x != y breaks the balance.
	report := Check(m, optimal([]float64{1, 5}, 6))

	assert.False(t, report.Feasible)
	violations := report.Violations()
	require.Len(t, violations, 2)
	assert.Equal(t, "floor", violations[0].Name)
	assert.Equal(t, "balance", violations[1].Name)
}

func TestCheckToleranceScalesWithRowMagnitude(t *testing.T) {
	m := NewModel()
	x, _ := m.AddVar("x")
	require.NoError(t, m.SetObjective(Maximize, []Term{{x, 1}}))
	require.NoError(t, m.AddConstraint("funds", []Term{{x, 1}}, LessEq, 12_000_000))
	require.NoError(t, m.Close())

	// One unit over a 12-million cap is rounding noise at this scale.
	report := Check(m, optimal([]float64{12_000_001}, 12_000_001))
	assert.True(t, report.Feasible)

	// A hundred units over is a real violation.
	report = Check(m, optimal([]float64{12_000_100}, 12_000_100))
	assert.False(t, report.Feasible)
}

func TestCheckSmallScaleRowsStayTight(t *testing.T) {
	m := NewModel()
	x, _ := m.AddVar("x")
	y, _ := m.AddVar("y")
	require.NoError(t, m.SetObjective(Maximize, []Term{{x, 1}}))
	require.NoError(t, m.AddConstraint("ratio", []Term{{x, 0.4}, {y, -0.6}}, LessEq, 0))
	require.NoError(t, m.Close())

	report := Check(m, optimal([]float64{1, 0}, 1))
	assert.False(t, report.Feasible, "0.4 over a zero bound on a unit-scale row is a violation")
}

func TestCheckVariableBounds(t *testing.T) {
	m := NewModel()
	x, _ := m.AddVarBounded("x", 1, 5)
	require.NoError(t, m.SetObjective(Minimize, []Term{{x, 1}}))
	require.NoError(t, m.AddConstraint("cap", []Term{{x, 1}}, LessEq, 10))
	require.NoError(t, m.Close())

	report := Check(m, optimal([]float64{7}, 7))
	assert.False(t, report.Feasible)
	violations := report.Violations()
	require.Len(t, violations, 1)
	assert.Equal(t, "x upper bound", violations[0].Name)
	assert.Equal(t, -1, violations[0].Index)
}

func TestCheckNonOptimalSolutionIsNotFeasible(t *testing.T) {
	m := checkModel(t)
	report := Check(m, RawSolution{Status: StatusInfeasible})
	assert.False(t, report.Feasible)
	assert.Empty(t, report.Rows)

	// A value vector of the wrong width cannot be trusted either.
	report = Check(m, optimal([]float64{1}, 1))
	assert.False(t, report.Feasible)
}
