package scenario

import (
	"github.com/optikit/lpplan/lp"
)

// GasolineGrade is one sellable gasoline product.
type GasolineGrade struct {
	Name        string  `mapstructure:"name"`
	MinOctane   float64 `mapstructure:"min_octane"`
	DemandLimit float64 `mapstructure:"demand_limit"` // barrels/day
	Margin      float64 `mapstructure:"margin"`       // profit $/barrel
}

// Refinery blends two streams, straight-run feedstock and cracker
// output, into gasoline grades to maximize daily profit. Feedstock and
// cracker barrels consume crude at different rates, the cracker unit has
// its own throughput limit, and each grade's volume-weighted octane must
// reach the grade's minimum.
type Refinery struct {
	CrudeCapacity   float64 `mapstructure:"crude_capacity"`   // barrels/day of crude
	CrackerCapacity float64 `mapstructure:"cracker_capacity"` // barrels/day of cracker throughput

	FeedstockOctane float64 `mapstructure:"feedstock_octane"`
	CrackerOctane   float64 `mapstructure:"cracker_octane"`

	// Resource consumption per blended barrel.
	CrudePerFeedstock float64 `mapstructure:"crude_per_feedstock"`
	CrudePerCracker   float64 `mapstructure:"crude_per_cracker"`
	CrackerPerBarrel  float64 `mapstructure:"cracker_per_barrel"`

	Grades []GasolineGrade `mapstructure:"grades"`
}

// DefaultRefinery returns the classic instance: 1.5M bbl/day of crude,
// a 200k bbl/day cracker, and three grades capped by demand.
func DefaultRefinery() Refinery {
	return Refinery{
		CrudeCapacity:     1_500_000,
		CrackerCapacity:   200_000,
		FeedstockOctane:   82,
		CrackerOctane:     98,
		CrudePerFeedstock: 5,
		CrudePerCracker:   10,
		CrackerPerBarrel:  2,
		Grades: []GasolineGrade{
			{Name: "regular", MinOctane: 87, DemandLimit: 50_000, Margin: 6.70},
			{Name: "premium", MinOctane: 89, DemandLimit: 30_000, Margin: 7.20},
			{Name: "super", MinOctane: 92, DemandLimit: 40_000, Margin: 8.10},
		},
	}
}

// Validate fails fast on malformed parameters.
func (c Refinery) Validate() error {
	const name = "refinery"
	if c.CrudeCapacity <= 0 {
		return configErrorf(name, "crude_capacity", "must be positive, got %g", c.CrudeCapacity)
	}
	if c.CrackerCapacity <= 0 {
		return configErrorf(name, "cracker_capacity", "must be positive, got %g", c.CrackerCapacity)
	}
	if c.FeedstockOctane <= 0 || c.CrackerOctane <= 0 {
		return configErrorf(name, "octane", "stream octane numbers must be positive")
	}
	if c.CrudePerFeedstock <= 0 || c.CrudePerCracker <= 0 || c.CrackerPerBarrel <= 0 {
		return configErrorf(name, "consumption", "per-barrel consumption rates must be positive")
	}
	if len(c.Grades) == 0 {
		return configErrorf(name, "grades", "at least one grade is required")
	}
	seen := make(map[string]bool, len(c.Grades))
	for i, g := range c.Grades {
		if g.Name == "" {
			return configErrorf(name, "grades", "grade %d has no name", i)
		}
		if seen[g.Name] {
			return configErrorf(name, "grades", "duplicate grade %q", g.Name)
		}
		seen[g.Name] = true
		if g.MinOctane <= 0 {
			return configErrorf(name, "grades", "%s: octane floor must be positive", g.Name)
		}
		if g.DemandLimit < 0 {
			return configErrorf(name, "grades", "%s: negative demand limit %g", g.Name, g.DemandLimit)
		}
		if g.Margin < 0 {
			return configErrorf(name, "grades", "%s: negative margin %g", g.Name, g.Margin)
		}
	}
	return nil
}

// Build constructs the LP. Columns come in per-grade pairs, feedstock
// then cracker barrels, in grade order. The octane requirement is the
// usual weighted-average ratio constraint:
//
//	feedOct*feed + crackOct*crack >= minOct * (feed + crack)
//
// rewritten into a plain "<= 0" row.
func (c Refinery) Build() (*lp.Model, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	m := lp.NewModel()
	type gradeVars struct{ feed, crack lp.Var }
	vars := make([]gradeVars, len(c.Grades))
	objective := make([]lp.Term, 0, 2*len(c.Grades))
	crudeTerms := make([]lp.Term, 0, 2*len(c.Grades))
	crackerTerms := make([]lp.Term, 0, len(c.Grades))

	for i, g := range c.Grades {
		feed, err := m.AddVar(g.Name + "_feedstock")
		if err != nil {
			return nil, err
		}
		crack, err := m.AddVar(g.Name + "_cracker")
		if err != nil {
			return nil, err
		}
		vars[i] = gradeVars{feed: feed, crack: crack}

		objective = append(objective,
			lp.Term{Var: feed, Coeff: g.Margin},
			lp.Term{Var: crack, Coeff: g.Margin})
		crudeTerms = append(crudeTerms,
			lp.Term{Var: feed, Coeff: c.CrudePerFeedstock},
			lp.Term{Var: crack, Coeff: c.CrudePerCracker})
		crackerTerms = append(crackerTerms, lp.Term{Var: crack, Coeff: c.CrackerPerBarrel})
	}
	if err := m.SetObjective(lp.Maximize, objective); err != nil {
		return nil, err
	}

	if err := m.AddConstraint("crude_capacity", crudeTerms, lp.LessEq, c.CrudeCapacity); err != nil {
		return nil, err
	}
	if err := m.AddConstraint("cracker_capacity", crackerTerms, lp.LessEq, c.CrackerCapacity); err != nil {
		return nil, err
	}

	for i, g := range c.Grades {
		blend := []lp.Term{{Var: vars[i].feed, Coeff: 1}, {Var: vars[i].crack, Coeff: 1}}
		if err := m.AddConstraint("demand_"+g.Name, blend, lp.LessEq, g.DemandLimit); err != nil {
			return nil, err
		}

		weighted := []lp.Term{
			{Var: vars[i].feed, Coeff: c.FeedstockOctane},
			{Var: vars[i].crack, Coeff: c.CrackerOctane},
		}
		// Both streams at exactly the floor octane leaves nothing to
		// constrain; the rewritten row vanishes.
		if terms := lp.RatioAtLeast(weighted, blend, g.MinOctane); len(terms) > 0 {
			if err := m.AddConstraint("octane_"+g.Name, terms, lp.LessEq, 0); err != nil {
				return nil, err
			}
		}
	}

	if err := m.Close(); err != nil {
		return nil, err
	}
	return m, nil
}

// GradeProduction is the solved per-source breakdown for one grade.
type GradeProduction struct {
	Name      string
	Feedstock float64
	Cracker   float64
	Total     float64
}

// RefineryResult is the domain projection of a solved blending plan,
// including resource utilization derived from the same solution vector.
type RefineryResult struct {
	Status      lp.Status
	Grades      []GradeProduction
	TotalProfit float64

	CrudeUsed          float64
	CrackerUsed        float64
	CrudeUtilization   float64
	CrackerUtilization float64
}

// Interpret decodes per-grade stream amounts from the solution vector
// using the same per-grade column pairs Build emitted.
func (c Refinery) Interpret(m *lp.Model, sol lp.RawSolution) RefineryResult {
	if !sol.IsOptimal() {
		return RefineryResult{Status: sol.Status}
	}
	result := RefineryResult{
		Status:      sol.Status,
		Grades:      make([]GradeProduction, len(c.Grades)),
		TotalProfit: sol.Objective,
	}
	for i, g := range c.Grades {
		feed := sol.Value(lp.Var(2 * i))
		crack := sol.Value(lp.Var(2*i + 1))
		result.Grades[i] = GradeProduction{
			Name:      g.Name,
			Feedstock: feed,
			Cracker:   crack,
			Total:     feed + crack,
		}
		result.CrudeUsed += c.CrudePerFeedstock*feed + c.CrudePerCracker*crack
		result.CrackerUsed += c.CrackerPerBarrel * crack
	}
	result.CrudeUtilization = result.CrudeUsed / c.CrudeCapacity
	result.CrackerUtilization = result.CrackerUsed / c.CrackerCapacity
	return result
}
