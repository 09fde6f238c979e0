// Command lpplan builds one of the planning scenarios, solves it, and
// prints a summary table. Scenario parameters come from an optional
// config file; sections left out fall back to the classic instances.
package main

import (
	"errors"
	"flag"
	"log/slog"
	"os"

	"github.com/optikit/lpplan/lp"
	"github.com/optikit/lpplan/report"
)

func main() {
	var (
		scenarioName = flag.String("scenario", "bankloan", "scenario to solve: bankloan, production, refinery")
		configPath   = flag.String("config", "", "scenario parameter file (YAML, TOML or JSON)")
		verbose      = flag.Bool("verbose", false, "enable debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	cfg, err := loadConfig(*configPath)
	if err != nil {
		slog.Error("loading config", "path", *configPath, "err", err)
		os.Exit(1)
	}

	adapter := lp.NewAdapter(lp.SimplexSolver{})
	if err := run(adapter, *scenarioName, cfg); err != nil {
		var mismatch *lp.MismatchError
		if errors.As(err, &mismatch) {
			// An "optimal" solution that fails validation means the model
			// handed to the solver did not encode the business rules.
			slog.Error("solution failed validation, model construction is broken", "err", mismatch)
		} else {
			slog.Error("scenario failed", "scenario", *scenarioName, "err", err)
		}
		os.Exit(1)
	}
}

func run(adapter *lp.Adapter, name string, cfg fileConfig) error {
	switch name {
	case "bankloan":
		return runBankLoan(adapter, cfg)
	case "production":
		return runProduction(adapter, cfg)
	case "refinery":
		return runRefinery(adapter, cfg)
	default:
		return errors.New("unknown scenario " + name + " (want bankloan, production or refinery)")
	}
}

func runBankLoan(adapter *lp.Adapter, cfg fileConfig) error {
	m, err := cfg.BankLoan.Build()
	if err != nil {
		return err
	}
	sol, err := solve(adapter, m)
	if err != nil {
		return err
	}
	return report.WriteBankLoan(os.Stdout, cfg.BankLoan, cfg.BankLoan.Interpret(m, sol))
}

func runProduction(adapter *lp.Adapter, cfg fileConfig) error {
	m, err := cfg.Production.Build()
	if err != nil {
		return err
	}
	sol, err := solve(adapter, m)
	if err != nil {
		return err
	}
	return report.WriteProduction(os.Stdout, cfg.Production, cfg.Production.Interpret(m, sol))
}

func runRefinery(adapter *lp.Adapter, cfg fileConfig) error {
	m, err := cfg.Refinery.Build()
	if err != nil {
		return err
	}
	sol, err := solve(adapter, m)
	if err != nil {
		return err
	}
	return report.WriteRefinery(os.Stdout, cfg.Refinery, cfg.Refinery.Interpret(m, sol))
}

func solve(adapter *lp.Adapter, m *lp.Model) (lp.RawSolution, error) {
	slog.Debug("solving", "variables", m.NumVars(), "constraints", m.NumConstraints())
	sol, err := adapter.Solve(m)
	if err != nil {
		return lp.RawSolution{}, err
	}
	if !sol.IsOptimal() {
		slog.Warn("no optimal solution", "status", sol.Status.String())
	}
	return sol, nil
}
