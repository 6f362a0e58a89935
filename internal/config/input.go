package config

import (
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/finplan/finproject/internal/domain"
)

// Plan is a complete projection input: the accounts and cash flows to
// simulate, an optional scenario, and the horizon in months.
type Plan struct {
	Accounts        []domain.Account  `yaml:"accounts" json:"accounts"`
	Cashflows       []domain.Cashflow `yaml:"cashflows" json:"cashflows"`
	Scenario        *domain.Scenario  `yaml:"scenario,omitempty" json:"scenario,omitempty"`
	MonthsToProject int               `yaml:"months_to_project" json:"months_to_project"`
}

// InputParser handles parsing of plan files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a plan from a YAML file.
func (ip *InputParser) LoadFromFile(filename string) (*Plan, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var plan Plan
	if err := yaml.Unmarshal(data, &plan); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidatePlan(&plan); err != nil {
		return nil, fmt.Errorf("plan validation failed: %w", err)
	}

	return &plan, nil
}

// ValidatePlan enforces the guarantees the engine assumes from its input
// provider: non-negative base amounts, known kinds and frequencies, valid
// dates, and unique account ids. The engine itself does not validate.
func (ip *InputParser) ValidatePlan(plan *Plan) error {
	if len(plan.Accounts) == 0 {
		return fmt.Errorf("no accounts provided")
	}
	if plan.MonthsToProject < 0 {
		return fmt.Errorf("months to project cannot be negative")
	}

	seen := make(map[string]bool, len(plan.Accounts))
	for i := range plan.Accounts {
		account := &plan.Accounts[i]
		if err := ip.validateAccount(account); err != nil {
			return fmt.Errorf("account %q validation failed: %w", account.ID, err)
		}
		if seen[account.ID] {
			return fmt.Errorf("duplicate account id %q", account.ID)
		}
		seen[account.ID] = true
	}

	for i := range plan.Cashflows {
		cf := &plan.Cashflows[i]
		if err := ip.validateCashflow(cf); err != nil {
			return fmt.Errorf("cashflow %q validation failed: %w", cf.ID, err)
		}
	}

	if plan.Scenario != nil {
		if err := ip.validateScenario(plan.Scenario); err != nil {
			return fmt.Errorf("scenario validation failed: %w", err)
		}
	}

	return nil
}

func (ip *InputParser) validateAccount(account *domain.Account) error {
	if account.ID == "" {
		return fmt.Errorf("account id is required")
	}
	switch account.Kind {
	case domain.AccountIncome, domain.AccountExpense, domain.AccountInvestment,
		domain.AccountLiability, domain.AccountReserve, domain.AccountTransfer:
	default:
		return fmt.Errorf("unknown account kind %q", account.Kind)
	}
	if account.CompoundsPerYear < 0 {
		return fmt.Errorf("compounds per year cannot be negative")
	}
	return nil
}

func (ip *InputParser) validateCashflow(cf *domain.Cashflow) error {
	if cf.ID == "" {
		return fmt.Errorf("cashflow id is required")
	}
	if cf.AccountID == "" {
		return fmt.Errorf("owning account id is required")
	}
	if cf.AmountCents < 0 {
		return fmt.Errorf("amount cents cannot be negative")
	}
	switch cf.Recurrence.Frequency {
	case domain.FrequencyOnce, domain.FrequencyWeekly, domain.FrequencyFortnightly,
		domain.FrequencyMonthly, domain.FrequencyQuarterly, domain.FrequencyAnnually:
	default:
		return fmt.Errorf("unknown frequency %q", cf.Recurrence.Frequency)
	}
	if cf.Recurrence.StartDate.IsZero() {
		return fmt.Errorf("recurrence start date is required")
	}
	if end := cf.Recurrence.EndDate; end != nil && end.Before(cf.Recurrence.StartDate) {
		return fmt.Errorf("recurrence end date cannot be before start date")
	}
	if dep := cf.PercentageOf; dep != nil {
		if dep.SourceType != domain.PercentageSourceCashflow && dep.SourceType != domain.PercentageSourceAccount {
			return fmt.Errorf("unknown percentage source type %q", dep.SourceType)
		}
		if dep.SourceID == "" {
			return fmt.Errorf("percentage source id is required")
		}
	}
	return nil
}

func (ip *InputParser) validateScenario(scenario *domain.Scenario) error {
	if scenario.Scope != domain.ScopeAll && scenario.Scope != domain.ScopeDiscretionary {
		return fmt.Errorf("scenario scope must be %q or %q", domain.ScopeAll, domain.ScopeDiscretionary)
	}
	if scenario.SpendAdjustmentPct.LessThanOrEqual(decimal.NewFromInt(-1)) {
		return fmt.Errorf("spend adjustment cannot be -100%% or lower")
	}
	return nil
}

// CreateExamplePlan creates a small runnable plan: salary and rent on a
// savings account, a superannuation flow at a percentage of salary, an
// appreciating property, and a mortgage being paid down by transfer.
func (ip *InputParser) CreateExamplePlan() *Plan {
	start := time.Date(time.Now().UTC().Year(), 1, 1, 0, 0, 0, 0, time.UTC)
	interestRate := decimal.NewFromFloat(0.045)
	superRate := decimal.NewFromFloat(0.065)
	mortgageRate := decimal.NewFromFloat(0.059)
	appreciation := decimal.NewFromFloat(0.03)
	indexation := decimal.NewFromFloat(0.03)

	return &Plan{
		MonthsToProject: 120,
		Accounts: []domain.Account{
			{ID: "salary", Name: "Salary", Kind: domain.AccountIncome},
			{ID: "living", Name: "Living Expenses", Kind: domain.AccountExpense},
			{ID: "savings", Name: "Savings", Kind: domain.AccountInvestment, OpeningBalanceCents: 2_500_000, AnnualInterestRate: &interestRate},
			{ID: "super", Name: "Superannuation", Kind: domain.AccountInvestment, OpeningBalanceCents: 12_000_000, AnnualInterestRate: &superRate},
			{ID: "home", Name: "Home", Kind: domain.AccountInvestment, OpeningBalanceCents: 85_000_000, IsProperty: true, PropertyAppreciationRate: &appreciation},
			{ID: "mortgage", Name: "Mortgage", Kind: domain.AccountLiability, OpeningBalanceCents: -52_000_000, AnnualInterestRate: &mortgageRate},
		},
		Cashflows: []domain.Cashflow{
			{
				ID: "pay", Description: "Monthly salary", AccountID: "salary", AmountCents: 650_000,
				Recurrence: domain.Recurrence{Frequency: domain.FrequencyMonthly, StartDate: start, AnnualIndexationPct: &indexation},
			},
			{
				ID: "rent", Description: "Groceries and bills", AccountID: "living", AmountCents: 280_000,
				Recurrence: domain.Recurrence{Frequency: domain.FrequencyMonthly, StartDate: start},
			},
			{
				ID: "fun", Description: "Entertainment and dining", AccountID: "living", AmountCents: 60_000,
				Recurrence: domain.Recurrence{Frequency: domain.FrequencyMonthly, StartDate: start},
			},
			{
				ID: "super-contrib", Description: "Employer super contribution", AccountID: "super", AmountCents: 0,
				Recurrence:   domain.Recurrence{Frequency: domain.FrequencyMonthly, StartDate: start},
				PercentageOf: &domain.PercentageOf{SourceType: domain.PercentageSourceCashflow, SourceID: "pay", Percentage: decimal.NewFromFloat(0.115)},
			},
			{
				ID: "mortgage-payment", Description: "Mortgage repayment", AccountID: "savings", TargetAccountID: "mortgage", AmountCents: 320_000,
				Recurrence: domain.Recurrence{Frequency: domain.FrequencyMonthly, StartDate: start},
			},
		},
		Scenario: &domain.Scenario{
			Name:               "Trim discretionary spending",
			SpendAdjustmentPct: decimal.NewFromFloat(-0.10),
			Scope:              domain.ScopeDiscretionary,
			InflationPct:       decimal.NewFromFloat(0.025),
			SalaryGrowthPct:    decimal.NewFromFloat(0.03),
		},
	}
}
