package scenario

import (
	"strconv"

	"github.com/optikit/lpplan/lp"
)

// ProductionPlan schedules production across periods to meet per-period
// demand at minimum combined production and storage cost. Units built
// ahead of demand are carried as ending inventory and billed the storage
// cost once per period held.
type ProductionPlan struct {
	ProductionCosts []float64 `mapstructure:"production_costs"`
	StorageCost     float64   `mapstructure:"storage_cost"`
	Demands         []float64 `mapstructure:"demands"`
}

// DefaultProductionPlan returns the classic six-period instance.
func DefaultProductionPlan() ProductionPlan {
	return ProductionPlan{
		ProductionCosts: []float64{50, 45, 55, 48, 52, 50},
		StorageCost:     8,
		Demands:         []float64{100, 250, 190, 140, 220, 110},
	}
}

// Validate fails fast on malformed parameters.
func (c ProductionPlan) Validate() error {
	const name = "production"
	if len(c.Demands) == 0 {
		return configErrorf(name, "demands", "at least one period is required")
	}
	if len(c.ProductionCosts) != len(c.Demands) {
		return configErrorf(name, "production_costs", "%d costs for %d demand periods", len(c.ProductionCosts), len(c.Demands))
	}
	for i, cost := range c.ProductionCosts {
		if cost < 0 {
			return configErrorf(name, "production_costs", "period %d: negative cost %g", i+1, cost)
		}
	}
	for i, d := range c.Demands {
		if d < 0 {
			return configErrorf(name, "demands", "period %d: negative demand %g", i+1, d)
		}
	}
	if c.StorageCost < 0 {
		return configErrorf(name, "storage_cost", "must be nonnegative, got %g", c.StorageCost)
	}
	return nil
}

// Build constructs the LP. Columns are the production quantities
// make_1..make_T followed by ending inventories stock_1..stock_{T-1};
// the terminal inventory is pinned to zero by omitting its variable.
// Each period contributes one balance equality:
//
//	stock_{t-1} + make_t - stock_t = demand_t
//
// with no incoming stock in period 1 and no outgoing stock in period T.
func (c ProductionPlan) Build() (*lp.Model, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	periods := len(c.Demands)
	m := lp.NewModel()

	makeVars := make([]lp.Var, periods)
	for t := 0; t < periods; t++ {
		v, err := m.AddVar(varName("make", t+1))
		if err != nil {
			return nil, err
		}
		makeVars[t] = v
	}
	stockVars := make([]lp.Var, periods-1)
	for t := 0; t < periods-1; t++ {
		v, err := m.AddVar(varName("stock", t+1))
		if err != nil {
			return nil, err
		}
		stockVars[t] = v
	}

	objective := make([]lp.Term, 0, 2*periods-1)
	for t, v := range makeVars {
		objective = append(objective, lp.Term{Var: v, Coeff: c.ProductionCosts[t]})
	}
	for _, v := range stockVars {
		objective = append(objective, lp.Term{Var: v, Coeff: c.StorageCost})
	}
	if err := m.SetObjective(lp.Minimize, objective); err != nil {
		return nil, err
	}

	for t := 0; t < periods; t++ {
		terms := []lp.Term{{Var: makeVars[t], Coeff: 1}}
		if t > 0 {
			terms = append(terms, lp.Term{Var: stockVars[t-1], Coeff: 1})
		}
		if t < periods-1 {
			terms = append(terms, lp.Term{Var: stockVars[t], Coeff: -1})
		}
		if err := m.AddConstraint(varName("balance_period", t+1), terms, lp.Equal, c.Demands[t]); err != nil {
			return nil, err
		}
	}

	if err := m.Close(); err != nil {
		return nil, err
	}
	return m, nil
}

// PeriodPlan is one period of a solved schedule.
type PeriodPlan struct {
	Demand    float64
	Produced  float64
	Inventory float64 // ending inventory carried into the next period
}

// ProductionResult is the domain projection of a solved schedule.
// Production and storage cost are reported separately even though only
// their sum was optimized; both are linear in the same solution vector.
type ProductionResult struct {
	Status         lp.Status
	Periods        []PeriodPlan
	ProductionCost float64
	StorageCost    float64
	TotalCost      float64
}

// Interpret decodes the schedule from the solution vector.
func (c ProductionPlan) Interpret(m *lp.Model, sol lp.RawSolution) ProductionResult {
	if !sol.IsOptimal() {
		return ProductionResult{Status: sol.Status}
	}
	periods := len(c.Demands)
	result := ProductionResult{
		Status:    sol.Status,
		Periods:   make([]PeriodPlan, periods),
		TotalCost: sol.Objective,
	}
	for t := 0; t < periods; t++ {
		produced := sol.Value(lp.Var(t))
		inventory := 0.0
		if t < periods-1 {
			inventory = sol.Value(lp.Var(periods + t))
		}
		result.Periods[t] = PeriodPlan{Demand: c.Demands[t], Produced: produced, Inventory: inventory}
		result.ProductionCost += c.ProductionCosts[t] * produced
		result.StorageCost += c.StorageCost * inventory
	}
	return result
}

// varName builds 1-based period names to match the business framing.
func varName(prefix string, n int) string {
	return prefix + "_" + strconv.Itoa(n)
}
