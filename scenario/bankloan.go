// Package scenario translates planning problems into lp models and
// decodes raw solutions back into domain results. Each scenario is a
// plain config struct with Validate, Build and Interpret methods; there
// is no shared hierarchy, only the common shape.
package scenario

import (
	"github.com/optikit/lpplan/lp"
)

// LoanClass is one lending category of a loan portfolio.
type LoanClass struct {
	Name         string  `mapstructure:"name"`
	InterestRate float64 `mapstructure:"interest_rate"`
	BadDebtRatio float64 `mapstructure:"bad_debt_ratio"`
}

// ShareFloor requires the Members classes to jointly receive at least
// MinShare of the combined allocation to the Of classes (all classes
// when Of is empty). Example: farm and commercial loans must be at least
// 40% of the whole portfolio.
type ShareFloor struct {
	Name     string   `mapstructure:"name"`
	Members  []string `mapstructure:"members"`
	Of       []string `mapstructure:"of"`
	MinShare float64  `mapstructure:"min_share"`
}

// BankLoan allocates a fixed pool of funds across loan classes to
// maximize net return (interest earned on good loans minus bad-debt
// losses) under share floors and an aggregate bad-debt ceiling.
//
// A BadDebtCeiling of 0 is a hard ceiling: classes with any bad debt
// get nothing. A ceiling of 1 can never bind and disables the row.
type BankLoan struct {
	TotalFunds        float64      `mapstructure:"total_funds"`
	Loans             []LoanClass  `mapstructure:"loans"`
	Floors            []ShareFloor `mapstructure:"floors"`
	BadDebtCeiling    float64      `mapstructure:"bad_debt_ceiling"`
	MinTotalAllocated float64      `mapstructure:"min_total_allocated"`
}

// DefaultBankLoan returns the classic five-class instance: $12M of
// funds, farm+commercial >= 40% of all loans, home >= 50% of the
// personal/car/home group, aggregate bad debt at most 4%.
func DefaultBankLoan() BankLoan {
	return BankLoan{
		TotalFunds: 12_000_000,
		Loans: []LoanClass{
			{Name: "Personal", InterestRate: 0.140, BadDebtRatio: 0.10},
			{Name: "Car", InterestRate: 0.130, BadDebtRatio: 0.07},
			{Name: "Home", InterestRate: 0.120, BadDebtRatio: 0.03},
			{Name: "Farm", InterestRate: 0.125, BadDebtRatio: 0.05},
			{Name: "Commercial", InterestRate: 0.100, BadDebtRatio: 0.02},
		},
		Floors: []ShareFloor{
			{Name: "farm_commercial_floor", Members: []string{"Farm", "Commercial"}, MinShare: 0.4},
			{Name: "home_floor", Members: []string{"Home"}, Of: []string{"Personal", "Car", "Home"}, MinShare: 0.5},
		},
		BadDebtCeiling: 0.04,
	}
}

// NetReturns returns the objective coefficient per loan class: interest
// is earned only on the good fraction of a loan, and the bad fraction is
// lost outright, so one allocated dollar nets rate*(1-debt) - debt.
func (c BankLoan) NetReturns() []float64 {
	out := make([]float64, len(c.Loans))
	for i, l := range c.Loans {
		out[i] = l.InterestRate*(1-l.BadDebtRatio) - l.BadDebtRatio
	}
	return out
}

// Validate fails fast on malformed parameters.
func (c BankLoan) Validate() error {
	const name = "bank_loan"
	if c.TotalFunds <= 0 {
		return configErrorf(name, "total_funds", "must be positive, got %g", c.TotalFunds)
	}
	if len(c.Loans) == 0 {
		return configErrorf(name, "loans", "at least one loan class is required")
	}
	seen := make(map[string]bool, len(c.Loans))
	for i, l := range c.Loans {
		if l.Name == "" {
			return configErrorf(name, "loans", "class %d has no name", i)
		}
		if seen[l.Name] {
			return configErrorf(name, "loans", "duplicate class %q", l.Name)
		}
		seen[l.Name] = true
		if l.InterestRate < 0 || l.InterestRate > 1 {
			return configErrorf(name, "loans", "%s: interest rate %g outside [0,1]", l.Name, l.InterestRate)
		}
		if l.BadDebtRatio < 0 || l.BadDebtRatio > 1 {
			return configErrorf(name, "loans", "%s: bad-debt ratio %g outside [0,1]", l.Name, l.BadDebtRatio)
		}
	}
	for _, f := range c.Floors {
		if len(f.Members) == 0 {
			return configErrorf(name, "floors", "%s: no member classes", f.Name)
		}
		if f.MinShare < 0 || f.MinShare > 1 {
			return configErrorf(name, "floors", "%s: share %g outside [0,1]", f.Name, f.MinShare)
		}
		for _, member := range f.Members {
			if !seen[member] {
				return configErrorf(name, "floors", "%s: unknown class %q", f.Name, member)
			}
		}
		for _, of := range f.Of {
			if !seen[of] {
				return configErrorf(name, "floors", "%s: unknown class %q", f.Name, of)
			}
		}
	}
	if c.BadDebtCeiling < 0 || c.BadDebtCeiling > 1 {
		return configErrorf(name, "bad_debt_ceiling", "%g outside [0,1]", c.BadDebtCeiling)
	}
	if c.MinTotalAllocated < 0 || c.MinTotalAllocated > c.TotalFunds {
		return configErrorf(name, "min_total_allocated", "%g outside [0, total_funds]", c.MinTotalAllocated)
	}
	return nil
}

// Build constructs the LP: one variable per loan class (column order =
// class order), net-return objective, funds cap, allocation floor, and
// the ratio rows rewritten into plain inequalities.
func (c BankLoan) Build() (*lp.Model, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	m := lp.NewModel()
	returns := c.NetReturns()
	vars := make(map[string]lp.Var, len(c.Loans))
	all := make([]lp.Term, len(c.Loans))
	objective := make([]lp.Term, len(c.Loans))
	debtTerms := make([]lp.Term, 0, len(c.Loans))
	for i, l := range c.Loans {
		v, err := m.AddVar(l.Name)
		if err != nil {
			return nil, err
		}
		vars[l.Name] = v
		all[i] = lp.Term{Var: v, Coeff: 1}
		objective[i] = lp.Term{Var: v, Coeff: returns[i]}
		if l.BadDebtRatio > 0 {
			debtTerms = append(debtTerms, lp.Term{Var: v, Coeff: l.BadDebtRatio})
		}
	}
	if err := m.SetObjective(lp.Maximize, objective); err != nil {
		return nil, err
	}

	if err := m.AddConstraint("total_funds", all, lp.LessEq, c.TotalFunds); err != nil {
		return nil, err
	}
	if err := m.AddConstraint("min_allocation", all, lp.GreaterEq, c.MinTotalAllocated); err != nil {
		return nil, err
	}

	for _, f := range c.Floors {
		members := make([]lp.Term, len(f.Members))
		for i, name := range f.Members {
			members[i] = lp.Term{Var: vars[name], Coeff: 1}
		}
		of := all
		if len(f.Of) > 0 {
			of = make([]lp.Term, len(f.Of))
			for i, name := range f.Of {
				of[i] = lp.Term{Var: vars[name], Coeff: 1}
			}
		}
		// A floor over its own full base cancels to nothing; skip the
		// vacuous row rather than reject it.
		if terms := lp.RatioAtLeast(members, of, f.MinShare); len(terms) > 0 {
			if err := m.AddConstraint(f.Name, terms, lp.LessEq, 0); err != nil {
				return nil, err
			}
		}
	}

	if len(debtTerms) > 0 {
		if terms := lp.RatioAtMost(debtTerms, all, c.BadDebtCeiling); len(terms) > 0 {
			if err := m.AddConstraint("bad_debt_ceiling", terms, lp.LessEq, 0); err != nil {
				return nil, err
			}
		}
	}

	if err := m.Close(); err != nil {
		return nil, err
	}
	return m, nil
}

// BankLoanResult is the domain projection of a solved portfolio.
// Derived metrics come from the same solution vector, never from a
// re-solve; ROI divides the net return by the configured total funds.
type BankLoanResult struct {
	Status         lp.Status
	Allocations    map[string]float64
	TotalAllocated float64
	NetReturn      float64
	ROI            float64
}

// Interpret decodes the flat solution vector back into per-class
// allocations using the model's column order. Non-optimal solutions
// yield a degenerate result carrying only the status.
func (c BankLoan) Interpret(m *lp.Model, sol lp.RawSolution) BankLoanResult {
	if !sol.IsOptimal() {
		return BankLoanResult{Status: sol.Status}
	}
	allocations := make(map[string]float64, len(c.Loans))
	total := 0.0
	for i := range c.Loans {
		v := lp.Var(i)
		allocations[m.VarName(v)] = sol.Value(v)
		total += sol.Value(v)
	}
	return BankLoanResult{
		Status:         sol.Status,
		Allocations:    allocations,
		TotalAllocated: total,
		NetReturn:      sol.Objective,
		ROI:            sol.Objective / c.TotalFunds,
	}
}
