package domain

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finplan/finproject/pkg/money"
)

// TraceKind tags the computation a CalculationTrace describes.
type TraceKind string

const (
	TraceInterest          TraceKind = "interest"
	TraceAppreciation      TraceKind = "appreciation"
	TraceIndexation        TraceKind = "indexation"
	TracePercentOfCashflow TraceKind = "percentage_of_cashflow"
	TracePercentOfAccount  TraceKind = "percentage_of_account"
)

// TraceInput is one labeled input value of a traced computation. Inputs are
// an ordered list so serialized provenance is byte-stable.
type TraceInput struct {
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value" yaml:"value"`
}

// CalculationTrace records a formula, its inputs and its result for a single
// computation. Calculation transparency is a product goal: traces are emitted
// at every interest, appreciation, indexation and percentage-of site and
// carried as first-class output.
type CalculationTrace struct {
	Kind        TraceKind    `json:"kind" yaml:"kind"`
	Formula     string       `json:"formula" yaml:"formula"`
	Inputs      []TraceInput `json:"inputs,omitempty" yaml:"inputs,omitempty"`
	ResultCents money.Cents  `json:"result_cents" yaml:"result_cents"`
}

// AccountMonth is one account's simulated month. IncomeCents holds credits
// (income flows, plus transfers received); ExpensesCents holds debits.
// InterestEarnedCents sums interest and property appreciation, which share
// one output slot.
type AccountMonth struct {
	OpeningBalanceCents money.Cents        `json:"opening_balance_cents"`
	IncomeCents         money.Cents        `json:"income_cents"`
	ExpensesCents       money.Cents        `json:"expenses_cents"`
	NetCashflowCents    money.Cents        `json:"net_cashflow_cents"`
	InterestEarnedCents money.Cents        `json:"interest_earned_cents"`
	ClosingBalanceCents money.Cents        `json:"closing_balance_cents"`
	Traces              []CalculationTrace `json:"traces,omitempty"`
}

// PayoffEvent marks the month a liability account's balance first crossed
// from negative to approximately zero.
type PayoffEvent struct {
	AccountID           string      `json:"account_id"`
	AccountName         string      `json:"account_name"`
	ClosingBalanceCents money.Cents `json:"closing_balance_cents"`
}

// MonthlyProjection is one simulated month. Month-level income and expense
// totals aggregate only each account's own flows; transfer credits never
// enter them.
type MonthlyProjection struct {
	MonthIndex int       `json:"month_index"`
	Date       time.Time `json:"date"`

	Accounts map[string]AccountMonth `json:"accounts"`

	TotalNetWorthCents money.Cents     `json:"total_net_worth_cents"`
	TotalIncomeCents   money.Cents     `json:"total_income_cents"`
	TotalExpensesCents money.Cents     `json:"total_expenses_cents"`
	SavingsRate        decimal.Decimal `json:"savings_rate"`

	PayoffEvents []PayoffEvent `json:"payoff_events,omitempty"`
}

// NetSavingsCents returns the month's income minus expenses.
func (mp *MonthlyProjection) NetSavingsCents() money.Cents {
	return mp.TotalIncomeCents - mp.TotalExpensesCents
}

// PayoffProjection summarizes when a liability that started negative reaches
// payoff within the horizon, and what it cost to get there. Interest and
// payment totals accumulate up to and including the payoff month.
type PayoffProjection struct {
	AccountID               string      `json:"account_id"`
	AccountName             string      `json:"account_name"`
	MonthsToPayoff          int         `json:"months_to_payoff"`
	ProjectedPayoffMonth    time.Time   `json:"projected_payoff_month"`
	TotalInterestToPayCents money.Cents `json:"total_interest_to_pay_cents"`
	TotalPaymentsCents      money.Cents `json:"total_payments_cents"`
}

// ProjectionSummary is derived from the full per-month series. The average
// savings rate is an arithmetic mean across months; a month with zero income
// contributes a zero rate, pulling the average down.
type ProjectionSummary struct {
	StartNetWorthCents money.Cents     `json:"start_net_worth_cents"`
	EndNetWorthCents   money.Cents     `json:"end_net_worth_cents"`
	TotalReturnCents   money.Cents     `json:"total_return_cents"`
	AverageSavingsRate decimal.Decimal `json:"average_savings_rate"`
	GeneratedAt        time.Time       `json:"generated_at"`
}

// ProjectionResult is the full output of one engine run: one entry per
// requested month (index 0 = first simulated month), a summary, and one
// payoff projection per liability that reaches payoff within the horizon.
type ProjectionResult struct {
	Months            []MonthlyProjection `json:"months"`
	Summary           ProjectionSummary   `json:"summary"`
	PayoffProjections []PayoffProjection  `json:"payoff_projections,omitempty"`
}
