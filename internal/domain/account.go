package domain

import (
	"github.com/shopspring/decimal"

	"github.com/finplan/finproject/pkg/money"
)

// AccountKind classifies a financial holding. An account's kind never changes
// during a projection run.
type AccountKind string

const (
	AccountIncome     AccountKind = "income"
	AccountExpense    AccountKind = "expense"
	AccountInvestment AccountKind = "investment"
	AccountLiability  AccountKind = "liability"
	AccountReserve    AccountKind = "reserve"
	AccountTransfer   AccountKind = "transfer"
)

// Account is a named financial holding. Balances are signed integer cents;
// liabilities are stored negative by convention, but net-worth calculation
// treats a liability's magnitude as negative exposure regardless of the
// stored sign.
type Account struct {
	ID                  string      `yaml:"id" json:"id"`
	Name                string      `yaml:"name" json:"name"`
	Kind                AccountKind `yaml:"kind" json:"kind"`
	OpeningBalanceCents money.Cents `yaml:"opening_balance_cents" json:"opening_balance_cents"`

	// AnnualInterestRate is a yearly fraction (0.08 = 8%); nil means no
	// interest accrues. CompoundsPerYear defaults to 12 when zero.
	AnnualInterestRate *decimal.Decimal `yaml:"annual_interest_rate,omitempty" json:"annual_interest_rate,omitempty"`
	CompoundsPerYear   int              `yaml:"compounds_per_year,omitempty" json:"compounds_per_year,omitempty"`

	// Property accounts additionally appreciate at a monthly-compounded
	// yearly fraction. Interest and appreciation are cumulative when both
	// are configured.
	IsProperty               bool             `yaml:"is_property,omitempty" json:"is_property,omitempty"`
	PropertyAppreciationRate *decimal.Decimal `yaml:"property_appreciation_rate,omitempty" json:"property_appreciation_rate,omitempty"`
}

// IsLiability reports whether the account represents negative exposure.
func (a *Account) IsLiability() bool {
	return a.Kind == AccountLiability
}

// NetWorthContribution returns the account's contribution to total net worth
// for a given balance: liabilities always subtract their magnitude.
func (a *Account) NetWorthContribution(balance money.Cents) money.Cents {
	if a.IsLiability() {
		return -balance.Abs()
	}
	return balance
}

// InterestCompoundsPerYear returns the configured compounding frequency,
// defaulting to monthly.
func (a *Account) InterestCompoundsPerYear() int {
	if a.CompoundsPerYear <= 0 {
		return 12
	}
	return a.CompoundsPerYear
}
