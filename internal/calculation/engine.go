package calculation

import (
	"time"

	"github.com/finplan/finproject/internal/domain"
	"github.com/finplan/finproject/pkg/dateutil"
	"github.com/finplan/finproject/pkg/money"
)

// payoffToleranceCents is the band around zero within which a liability
// balance counts as paid off, absorbing rounding noise from compounding.
const payoffToleranceCents money.Cents = -1000

// ProjectionEngine simulates month-by-month evolution of account balances.
// It holds no state between runs; Project is a pure function of its inputs
// and the single "now" anchor taken from Clock at the start of each run.
type ProjectionEngine struct {
	Logger Logger
	// Clock supplies the anchor for month 0. Overridable for reproducible
	// runs; defaults to time.Now.
	Clock func() time.Time
}

// NewProjectionEngine creates a projection engine with a no-op logger and the
// wall clock.
func NewProjectionEngine() *ProjectionEngine {
	return &ProjectionEngine{
		Logger: NopLogger{},
		Clock:  time.Now,
	}
}

// SetLogger sets the logger for the engine. If nil is provided, a no-op
// logger is used.
func (pe *ProjectionEngine) SetLogger(l Logger) {
	if l == nil {
		pe.Logger = NopLogger{}
		return
	}
	pe.Logger = l
}

// Project simulates monthsToProject months starting from the current month.
// The caller's accounts, cashflows and scenario are never mutated; all
// working state is cloned. A zero horizon yields an empty month series and a
// summary equal to the starting snapshot.
func (pe *ProjectionEngine) Project(accounts []domain.Account, cashflows []domain.Cashflow, scenario *domain.Scenario, monthsToProject int) *domain.ProjectionResult {
	now := pe.Clock().UTC()
	anchor := dateutil.StartOfMonth(now)

	adjustedAccounts, adjustedFlows := ApplyScenario(accounts, cashflows, scenario)

	balances := make(map[string]money.Cents, len(adjustedAccounts))
	startBalances := make(map[string]money.Cents, len(adjustedAccounts))
	for _, a := range adjustedAccounts {
		balances[a.ID] = a.OpeningBalanceCents
		startBalances[a.ID] = a.OpeningBalanceCents
	}
	startNetWorth := totalNetWorth(adjustedAccounts, balances)

	months := pe.simulateMonths(adjustedAccounts, adjustedFlows, anchor, monthsToProject, balances)

	return &domain.ProjectionResult{
		Months:            months,
		Summary:           buildSummary(startNetWorth, months, now),
		PayoffProjections: buildPayoffProjections(adjustedAccounts, startBalances, months),
	}
}

// totalNetWorth recomputes net worth from the full balance map: assets add
// their balance, liabilities subtract their magnitude. Always recomputed
// fresh, never adjusted incrementally.
func totalNetWorth(accounts []domain.Account, balances map[string]money.Cents) money.Cents {
	var total money.Cents
	for i := range accounts {
		total += accounts[i].NetWorthContribution(balances[accounts[i].ID])
	}
	return total
}
