package scenario

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optikit/lpplan/lp"
)

func solveRefinery(t *testing.T, cfg Refinery) (*lp.Model, RefineryResult) {
	t.Helper()
	m, err := cfg.Build()
	require.NoError(t, err)
	sol, err := lp.NewAdapter(lp.SimplexSolver{}).Solve(m)
	require.NoError(t, err)
	require.True(t, sol.IsOptimal())
	return m, cfg.Interpret(m, sol)
}

func TestRefineryClassicOptimum(t *testing.T) {
	cfg := DefaultRefinery()
	_, res := solveRefinery(t, cfg)

	assert.InDelta(t, 875_000, res.TotalProfit, 1.0)

	// Capacity is ample, so every grade sells out its demand cap. The
	// split between feedstock and cracker barrels is not unique (both
	// earn the same margin), so only the totals are pinned.
	wantTotals := map[string]float64{"regular": 50_000, "premium": 30_000, "super": 40_000}
	require.Len(t, res.Grades, 3)
	for _, g := range res.Grades {
		assert.InDelta(t, wantTotals[g.Name], g.Total, 1.0, g.Name)
		assert.InDelta(t, g.Total, g.Feedstock+g.Cracker, 1e-6, g.Name)
	}

	assert.LessOrEqual(t, res.CrudeUsed, cfg.CrudeCapacity+1e-6)
	assert.LessOrEqual(t, res.CrackerUsed, cfg.CrackerCapacity+1e-6)
	assert.InDelta(t, res.CrudeUsed/cfg.CrudeCapacity, res.CrudeUtilization, 1e-12)
}

func TestRefineryOctaneFloorsHold(t *testing.T) {
	cfg := DefaultRefinery()
	_, res := solveRefinery(t, cfg)

	for i, g := range res.Grades {
		if g.Total <= 0 {
			continue
		}
		blended := (cfg.FeedstockOctane*g.Feedstock + cfg.CrackerOctane*g.Cracker) / g.Total
		assert.GreaterOrEqual(t, blended, cfg.Grades[i].MinOctane-1e-6, g.Name)
	}
}

func TestRefinerySolutionValidates(t *testing.T) {
	cfg := DefaultRefinery()
	m, err := cfg.Build()
	require.NoError(t, err)
	sol, err := lp.NewAdapter(lp.SimplexSolver{}).Solve(m)
	require.NoError(t, err)

	report := lp.Check(m, sol)
	assert.True(t, report.Feasible)
	assert.Empty(t, report.Violations())
}

func TestRefineryUnreachableOctaneShutsGradeOut(t *testing.T) {
	cfg := DefaultRefinery()
	// No blend of 82 and 98 octane streams reaches 99; the grade can
	// only be produced at volume zero, while the others still sell out.
	cfg.Grades[2].MinOctane = 99
	_, res := solveRefinery(t, cfg)

	assert.InDelta(t, 0, res.Grades[2].Total, 1e-6)
	assert.InDelta(t, 50_000, res.Grades[0].Total, 1.0)
	assert.InDelta(t, 30_000, res.Grades[1].Total, 1.0)
}

func TestRefineryDegenerateResultOnNonOptimal(t *testing.T) {
	cfg := DefaultRefinery()
	m, err := cfg.Build()
	require.NoError(t, err)

	res := cfg.Interpret(m, lp.RawSolution{Status: lp.StatusUnbounded})
	assert.Equal(t, lp.StatusUnbounded, res.Status)
	assert.Nil(t, res.Grades)
	assert.Zero(t, res.TotalProfit)
}

func TestRefineryConfigErrors(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Refinery)
	}{
		{"negative crude capacity", func(c *Refinery) { c.CrudeCapacity = -1 }},
		{"zero cracker capacity", func(c *Refinery) { c.CrackerCapacity = 0 }},
		{"no grades", func(c *Refinery) { c.Grades = nil }},
		{"duplicate grade", func(c *Refinery) { c.Grades[1].Name = c.Grades[0].Name }},
		{"negative demand limit", func(c *Refinery) { c.Grades[0].DemandLimit = -5 }},
		{"negative margin", func(c *Refinery) { c.Grades[1].Margin = -1 }},
		{"zero consumption rate", func(c *Refinery) { c.CrudePerCracker = 0 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultRefinery()
			tc.mutate(&cfg)
			_, err := cfg.Build()
			var confErr *ConfigError
			require.ErrorAs(t, err, &confErr)
		})
	}
}
