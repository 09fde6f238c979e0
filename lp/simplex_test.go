package lp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Min x0 + x1 subject to x0 + 2*x1 >= 5, x >= 0.
// The floor binds: x0 = 0, x1 = 2.5, objective 2.5.
func TestSimplexMinimize(t *testing.T) {
	status, values, objective, err := SimplexSolver{}.Solve(
		Minimize,
		[]float64{1, 1},
		[][]float64{{1, 2}},
		[]Op{GreaterEq},
		[]float64{5},
	)
	require.NoError(t, err)
	require.Equal(t, StatusOptimal, status)
	assert.InDelta(t, 0.0, values[0], 1e-9)
	assert.InDelta(t, 2.5, values[1], 1e-9)
	assert.InDelta(t, 2.5, objective, 1e-9)
}

// Max 3*x0 + 2*x1 subject to x0 + x1 <= 4, x0 + 3*x1 <= 6.
// Optimum at the vertex (4, 0) with objective 12.
func TestSimplexMaximize(t *testing.T) {
	status, values, objective, err := SimplexSolver{}.Solve(
		Maximize,
		[]float64{3, 2},
		[][]float64{{1, 1}, {1, 3}},
		[]Op{LessEq, LessEq},
		[]float64{4, 6},
	)
	require.NoError(t, err)
	require.Equal(t, StatusOptimal, status)
	assert.InDelta(t, 4.0, values[0], 1e-9)
	assert.InDelta(t, 0.0, values[1], 1e-9)
	assert.InDelta(t, 12.0, objective, 1e-9)
}

// Min x0 subject to x0 + x1 = 4: push everything into x1.
func TestSimplexEquality(t *testing.T) {
	status, values, objective, err := SimplexSolver{}.Solve(
		Minimize,
		[]float64{1, 0},
		[][]float64{{1, 1}},
		[]Op{Equal},
		[]float64{4},
	)
	require.NoError(t, err)
	require.Equal(t, StatusOptimal, status)
	assert.InDelta(t, 0.0, values[0], 1e-9)
	assert.InDelta(t, 4.0, values[1], 1e-9)
	assert.InDelta(t, 0.0, objective, 1e-9)
}

func TestSimplexInfeasible(t *testing.T) {
	status, values, _, err := SimplexSolver{}.Solve(
		Minimize,
		[]float64{1},
		[][]float64{{1}, {1}},
		[]Op{LessEq, GreaterEq},
		[]float64{1, 3},
	)
	require.NoError(t, err)
	assert.Equal(t, StatusInfeasible, status)
	assert.Nil(t, values)
}

func TestSimplexUnbounded(t *testing.T) {
	status, _, _, err := SimplexSolver{}.Solve(
		Maximize,
		[]float64{1},
		[][]float64{{-1}},
		[]Op{LessEq},
		[]float64{1},
	)
	require.NoError(t, err)
	assert.Equal(t, StatusUnbounded, status)
}

func TestSimplexNoRows(t *testing.T) {
	// Nonnegative costs: the origin is optimal.
	status, values, objective, err := SimplexSolver{}.Solve(
		Minimize, []float64{1, 2}, nil, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, StatusOptimal, status)
	assert.Equal(t, []float64{0, 0}, values)
	assert.Equal(t, 0.0, objective)

	// A rewarding coefficient with nothing to stop it.
	status, _, _, err = SimplexSolver{}.Solve(
		Maximize, []float64{1}, nil, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, StatusUnbounded, status)
}

func TestSimplexRejectsMismatchedShapes(t *testing.T) {
	status, _, _, err := SimplexSolver{}.Solve(
		Minimize, []float64{1}, [][]float64{{1}}, []Op{LessEq}, nil)
	assert.Error(t, err)
	assert.Equal(t, StatusSolverError, status)

	status, _, _, err = SimplexSolver{}.Solve(
		Minimize, []float64{1}, [][]float64{{1, 2}}, []Op{LessEq}, []float64{1})
	assert.Error(t, err)
	assert.Equal(t, StatusSolverError, status)
}

func TestSimplexDeterministic(t *testing.T) {
	solve := func() ([]float64, float64) {
		status, values, objective, err := SimplexSolver{}.Solve(
			Maximize,
			[]float64{3, 2},
			[][]float64{{1, 1}, {1, 3}},
			[]Op{LessEq, LessEq},
			[]float64{4, 6},
		)
		require.NoError(t, err)
		require.Equal(t, StatusOptimal, status)
		return values, objective
	}
	v1, o1 := solve()
	v2, o2 := solve()
	assert.Equal(t, v1, v2)
	assert.Equal(t, o1, o2)
}
