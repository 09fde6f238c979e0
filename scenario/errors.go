package scenario

import "fmt"

// ConfigError reports malformed scenario parameters: empty sequences,
// mismatched lengths, negative capacities or rates. It is raised before
// any model is built and is never recovered silently; solver outcomes
// (infeasible, unbounded) are statuses, not errors.
type ConfigError struct {
	Scenario string
	Field    string
	Reason   string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("scenario %s: %s: %s", e.Scenario, e.Field, e.Reason)
}

func configErrorf(scenario, field, format string, args ...any) error {
	return &ConfigError{Scenario: scenario, Field: field, Reason: fmt.Sprintf(format, args...)}
}
