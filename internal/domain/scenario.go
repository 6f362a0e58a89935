package domain

import (
	"github.com/shopspring/decimal"
)

// ScenarioScope selects which cash flows a scenario's spend adjustment
// applies to.
type ScenarioScope string

const (
	// ScopeAll adjusts every non-income cash flow.
	ScopeAll ScenarioScope = "all"
	// ScopeDiscretionary adjusts only flows whose description matches the
	// discretionary keyword list.
	ScopeDiscretionary ScenarioScope = "discretionary"
)

// Scenario is a named set of deterministic adjustments applied once before
// simulation. InflationPct and SalaryGrowthPct are carried through for
// display but do not alter the simulation.
type Scenario struct {
	Name               string          `yaml:"name" json:"name"`
	SpendAdjustmentPct decimal.Decimal `yaml:"spend_adjustment_pct" json:"spend_adjustment_pct"`
	Scope              ScenarioScope   `yaml:"scope" json:"scope"`
	InflationPct       decimal.Decimal `yaml:"inflation_pct" json:"inflation_pct"`
	SalaryGrowthPct    decimal.Decimal `yaml:"salary_growth_pct" json:"salary_growth_pct"`
}
