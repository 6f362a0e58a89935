package domain

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finplan/finproject/pkg/money"
)

// Frequency describes how often a cash flow occurs. Weekly and fortnightly
// flows are evaluated once per simulated month, the resolution of the
// simulator; they are not expanded to multiple occurrences.
type Frequency string

const (
	FrequencyOnce        Frequency = "once"
	FrequencyWeekly      Frequency = "weekly"
	FrequencyFortnightly Frequency = "fortnightly"
	FrequencyMonthly     Frequency = "monthly"
	FrequencyQuarterly   Frequency = "quarterly"
	FrequencyAnnually    Frequency = "annually"
)

// Anchor disambiguates sub-month timing for monthly flows. The simulator
// evaluates once per month, so the day of month is carried but has no
// observable effect at that resolution.
type Anchor struct {
	DayOfMonth int `yaml:"day_of_month" json:"day_of_month"`
}

// Recurrence is the schedule rule for a cash flow. Start and end bounds are
// inclusive at month granularity.
type Recurrence struct {
	Frequency           Frequency        `yaml:"frequency" json:"frequency"`
	Anchor              *Anchor          `yaml:"anchor,omitempty" json:"anchor,omitempty"`
	StartDate           time.Time        `yaml:"start_date" json:"start_date"`
	EndDate             *time.Time       `yaml:"end_date,omitempty" json:"end_date,omitempty"`
	AnnualIndexationPct *decimal.Decimal `yaml:"annual_indexation_pct,omitempty" json:"annual_indexation_pct,omitempty"`
}

// PercentageSourceType selects what a percentage-of dependency references.
type PercentageSourceType string

const (
	PercentageSourceCashflow PercentageSourceType = "cashflow"
	PercentageSourceAccount  PercentageSourceType = "account"
)

// PercentageOf makes a cash flow's effective amount a fraction of another
// cash flow's indexed amount or an account's balance at the start of the
// month, instead of its own base amount. A source id that does not resolve
// makes the flow inert (zero contribution), never an error.
type PercentageOf struct {
	SourceType PercentageSourceType `yaml:"source_type" json:"source_type"`
	SourceID   string               `yaml:"source_id" json:"source_id"`
	Percentage decimal.Decimal      `yaml:"percentage" json:"percentage"`
}

// Cashflow is a recurring or one-off movement of money tied to exactly one
// owning account, optionally crediting a second account as a transfer.
// AmountCents is the base magnitude and is always non-negative; direction is
// inferred from the owning account's kind.
type Cashflow struct {
	ID              string      `yaml:"id" json:"id"`
	Description     string      `yaml:"description" json:"description"`
	AccountID       string      `yaml:"account_id" json:"account_id"`
	TargetAccountID string      `yaml:"target_account_id,omitempty" json:"target_account_id,omitempty"`
	AmountCents     money.Cents `yaml:"amount_cents" json:"amount_cents"`

	Recurrence   Recurrence    `yaml:"recurrence" json:"recurrence"`
	PercentageOf *PercentageOf `yaml:"percentage_of,omitempty" json:"percentage_of,omitempty"`
}

// IsTransfer reports whether the flow credits a destination account.
func (cf *Cashflow) IsTransfer() bool {
	return cf.TargetAccountID != ""
}
