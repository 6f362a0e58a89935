package calculation

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finplan/finproject/internal/domain"
	"github.com/finplan/finproject/pkg/money"
)

func adjustFixture() ([]domain.Account, []domain.Cashflow) {
	start := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	accounts := []domain.Account{
		{ID: "income", Kind: domain.AccountIncome},
		{ID: "living", Kind: domain.AccountExpense},
	}
	flows := []domain.Cashflow{
		{ID: "salary", Description: "Salary", AccountID: "income", AmountCents: 500_000, Recurrence: domain.Recurrence{Frequency: domain.FrequencyMonthly, StartDate: start}},
		{ID: "rent", Description: "Rent", AccountID: "living", AmountCents: 200_000, Recurrence: domain.Recurrence{Frequency: domain.FrequencyMonthly, StartDate: start}},
		{ID: "fun", Description: "Entertainment", AccountID: "living", AmountCents: 100_000, Recurrence: domain.Recurrence{Frequency: domain.FrequencyMonthly, StartDate: start}},
	}
	return accounts, flows
}

func TestApplyScenarioNilIsIdentity(t *testing.T) {
	accounts, flows := adjustFixture()
	adjAccounts, adjFlows := ApplyScenario(accounts, flows, nil)
	assert.Equal(t, accounts, adjAccounts)
	assert.Equal(t, flows, adjFlows)
}

func TestApplyScenarioDiscretionaryScope(t *testing.T) {
	accounts, flows := adjustFixture()
	scenario := &domain.Scenario{
		SpendAdjustmentPct: decimal.NewFromFloat(-0.20),
		Scope:              domain.ScopeDiscretionary,
	}

	_, adjFlows := ApplyScenario(accounts, flows, scenario)
	require.Len(t, adjFlows, 3)
	assert.Equal(t, money.Cents(500_000), adjFlows[0].AmountCents, "income flow untouched")
	assert.Equal(t, money.Cents(200_000), adjFlows[1].AmountCents, "rent is not discretionary")
	assert.Equal(t, money.Cents(80_000), adjFlows[2].AmountCents, "entertainment scaled by 1 + adjustment")

	// Caller's flows are never mutated.
	assert.Equal(t, money.Cents(100_000), flows[2].AmountCents)
}

func TestApplyScenarioAllScope(t *testing.T) {
	accounts, flows := adjustFixture()
	scenario := &domain.Scenario{
		SpendAdjustmentPct: decimal.NewFromFloat(0.10),
		Scope:              domain.ScopeAll,
	}

	_, adjFlows := ApplyScenario(accounts, flows, scenario)
	assert.Equal(t, money.Cents(500_000), adjFlows[0].AmountCents, "income flow untouched")
	assert.Equal(t, money.Cents(220_000), adjFlows[1].AmountCents)
	assert.Equal(t, money.Cents(110_000), adjFlows[2].AmountCents)
}

func TestApplyScenarioUnknownOwnerLeftUntouched(t *testing.T) {
	accounts, flows := adjustFixture()
	flows = append(flows, domain.Cashflow{ID: "orphan", Description: "Shopping", AccountID: "missing", AmountCents: 50_000})
	scenario := &domain.Scenario{SpendAdjustmentPct: decimal.NewFromFloat(0.50), Scope: domain.ScopeAll}

	_, adjFlows := ApplyScenario(accounts, flows, scenario)
	assert.Equal(t, money.Cents(50_000), adjFlows[3].AmountCents)
}

func TestIsDiscretionary(t *testing.T) {
	tests := []struct {
		description string
		expected    bool
	}{
		{description: "Entertainment", expected: true},
		{description: "Dining out", expected: true},
		{description: "VACATION fund", expected: true},
		{description: "Rent", expected: false},
		{description: "Utilities", expected: false},
		{description: "personal training", expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			assert.Equal(t, tt.expected, isDiscretionary(tt.description))
		})
	}
}
