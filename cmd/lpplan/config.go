package main

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/optikit/lpplan/scenario"
)

// fileConfig is the on-disk parameter file. Every section is optional;
// missing sections keep their default scenario.
type fileConfig struct {
	BankLoan   scenario.BankLoan       `mapstructure:"bank_loan"`
	Production scenario.ProductionPlan `mapstructure:"production"`
	Refinery   scenario.Refinery       `mapstructure:"refinery"`
}

func defaultConfig() fileConfig {
	return fileConfig{
		BankLoan:   scenario.DefaultBankLoan(),
		Production: scenario.DefaultProductionPlan(),
		Refinery:   scenario.DefaultRefinery(),
	}
}

// loadConfig reads path into the defaults. An empty path returns the
// defaults unchanged. Format is inferred from the file extension.
func loadConfig(path string) (fileConfig, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fileConfig{}, fmt.Errorf("reading %s: %w", path, err)
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return fileConfig{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	return cfg, nil
}
