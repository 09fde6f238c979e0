package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/optikit/lpplan/lp"
	"github.com/optikit/lpplan/scenario"
)

const rule = "------------------------------------------------------------"

// WriteBankLoan renders a solved loan portfolio: per-class allocations
// with portfolio percentages, total, net return and ROI.
func WriteBankLoan(w io.Writer, cfg scenario.BankLoan, res scenario.BankLoanResult) error {
	if _, err := fmt.Fprintf(w, "Bank loan portfolio\nStatus: %s\n", res.Status); err != nil {
		return err
	}
	if res.Status != lp.StatusOptimal {
		return nil
	}
	fmt.Fprintf(w, "Total funds available: %s\n", Currency(cfg.TotalFunds))
	fmt.Fprintf(w, "Total allocated:       %s\n", Currency(res.TotalAllocated))
	fmt.Fprintf(w, "Net return:            %s\n", Currency(res.NetReturn))
	fmt.Fprintf(w, "ROI:                   %s\n", Percent(res.ROI, 2))
	fmt.Fprintln(w, rule)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Loan type\tAmount\tShare\t")
	for _, l := range cfg.Loans {
		amount := res.Allocations[l.Name]
		share := 0.0
		if res.TotalAllocated > 0 {
			share = amount / res.TotalAllocated
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t\n", l.Name, Currency(amount), Percent(share, 2))
	}
	return tw.Flush()
}

// WriteProduction renders a solved schedule: the per-period plan and the
// cost split.
func WriteProduction(w io.Writer, cfg scenario.ProductionPlan, res scenario.ProductionResult) error {
	if _, err := fmt.Fprintf(w, "Production-inventory schedule\nStatus: %s\n", res.Status); err != nil {
		return err
	}
	if res.Status != lp.StatusOptimal {
		return nil
	}
	fmt.Fprintf(w, "Total cost:      %s\n", Currency(res.TotalCost))
	fmt.Fprintf(w, "  Production:    %s\n", Currency(res.ProductionCost))
	fmt.Fprintf(w, "  Storage:       %s\n", Currency(res.StorageCost))
	fmt.Fprintln(w, rule)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Period\tDemand\tProduce\tInventory\tUnit cost\tNote\t")
	for i, p := range res.Periods {
		note := ""
		switch {
		case p.Produced > p.Demand:
			note = fmt.Sprintf("build %s ahead", Quantity(p.Produced-p.Demand))
		case p.Produced < p.Demand:
			note = fmt.Sprintf("draw %s from stock", Quantity(p.Demand-p.Produced))
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t\n",
			i+1, Quantity(p.Demand), Quantity(p.Produced), Quantity(p.Inventory),
			Currency(cfg.ProductionCosts[i]), note)
	}
	return tw.Flush()
}

// WriteRefinery renders a solved blending plan: per-grade breakdown,
// demand utilization, resource usage and annualized profit.
func WriteRefinery(w io.Writer, cfg scenario.Refinery, res scenario.RefineryResult) error {
	if _, err := fmt.Fprintf(w, "Refinery blending plan\nStatus: %s\n", res.Status); err != nil {
		return err
	}
	if res.Status != lp.StatusOptimal {
		return nil
	}
	fmt.Fprintf(w, "Daily profit:  %s\n", Currency(res.TotalProfit))
	fmt.Fprintf(w, "Annual profit: %s (365 days)\n", Currency(res.TotalProfit*365))
	fmt.Fprintln(w, rule)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Grade\tFeedstock\tCracker\tTotal\tDemand cap\tUtilization\t")
	for i, g := range res.Grades {
		limit := cfg.Grades[i].DemandLimit
		utilization := 0.0
		if limit > 0 {
			utilization = g.Total / limit
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t\n",
			g.Name, Quantity(g.Feedstock), Quantity(g.Cracker), Quantity(g.Total),
			Quantity(limit), Percent(utilization, 1))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "Crude oil:    %s / %s bbl/day (%s)\n",
		Quantity(res.CrudeUsed), Quantity(cfg.CrudeCapacity), Percent(res.CrudeUtilization, 1))
	_, err := fmt.Fprintf(w, "Cracker unit: %s / %s bbl/day (%s)\n",
		Quantity(res.CrackerUsed), Quantity(cfg.CrackerCapacity), Percent(res.CrackerUtilization, 1))
	return err
}
