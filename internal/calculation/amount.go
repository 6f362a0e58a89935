package calculation

import (
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finplan/finproject/internal/domain"
	"github.com/finplan/finproject/pkg/dateutil"
	"github.com/finplan/finproject/pkg/money"
)

// resolveAmount computes a cash flow's effective amount for a month.
//
// Percentage-of dependencies reference a previous logical layer: another
// flow's independently-computed indexed amount, or an account balance as of
// the start of the month. They are resolved fresh each month from known
// values, never through the current flow's own output, so no cycle handling
// is needed. A source id that resolves to nothing yields zero with no trace.
func resolveAmount(cf *domain.Cashflow, flowsByID map[string]*domain.Cashflow, accountsByID map[string]*domain.Account, monthStartBalances map[string]money.Cents, month time.Time) (money.Cents, []domain.CalculationTrace) {
	if dep := cf.PercentageOf; dep != nil {
		switch dep.SourceType {
		case domain.PercentageSourceCashflow:
			source, ok := flowsByID[dep.SourceID]
			if !ok {
				return 0, nil
			}
			sourceMonths := dateutil.MonthsBetween(dateutil.StartOfMonth(source.Recurrence.StartDate), dateutil.StartOfMonth(month))
			if sourceMonths < 0 {
				sourceMonths = 0
			}
			sourceAmount, _ := indexedAmount(source, sourceMonths)
			amount := sourceAmount.Mul(dep.Percentage)
			trace := domain.CalculationTrace{
				Kind:    domain.TracePercentOfCashflow,
				Formula: "amount = source_amount × percentage",
				Inputs: []domain.TraceInput{
					{Name: "source_cashflow", Value: source.ID},
					{Name: "source_amount_cents", Value: fmt.Sprintf("%d", sourceAmount)},
					{Name: "percentage", Value: dep.Percentage.String()},
				},
				ResultCents: amount,
			}
			return amount, []domain.CalculationTrace{trace}

		case domain.PercentageSourceAccount:
			source, ok := accountsByID[dep.SourceID]
			if !ok {
				return 0, nil
			}
			balance := monthStartBalances[source.ID]
			if source.IsLiability() {
				balance = balance.Abs()
			}
			amount := balance.Mul(dep.Percentage)
			trace := domain.CalculationTrace{
				Kind:    domain.TracePercentOfAccount,
				Formula: "amount = balance × percentage",
				Inputs: []domain.TraceInput{
					{Name: "source_account", Value: source.ID},
					{Name: "account_kind", Value: string(source.Kind)},
					{Name: "balance_cents", Value: fmt.Sprintf("%d", balance)},
					{Name: "percentage", Value: dep.Percentage.String()},
				},
				ResultCents: amount,
			}
			return amount, []domain.CalculationTrace{trace}

		default:
			return 0, nil
		}
	}

	elapsed := dateutil.MonthsBetween(dateutil.StartOfMonth(cf.Recurrence.StartDate), dateutil.StartOfMonth(month))
	amount, trace := indexedAmount(cf, elapsed)
	if trace != nil {
		return amount, []domain.CalculationTrace{*trace}
	}
	return amount, nil
}

// indexedAmount applies annual indexation to a flow's base amount for the
// given number of elapsed months since the flow's start. A trace is emitted
// only when indexation actually changes the amount, i.e. a rate is set and
// at least one month has elapsed.
func indexedAmount(cf *domain.Cashflow, monthsFromStart int) (money.Cents, *domain.CalculationTrace) {
	pct := cf.Recurrence.AnnualIndexationPct
	if pct == nil || pct.IsZero() || monthsFromStart <= 0 {
		return cf.AmountCents, nil
	}

	factor := math.Pow(decimal.NewFromInt(1).Add(*pct).InexactFloat64(), float64(monthsFromStart)/12)
	amount := money.FromFloat(float64(cf.AmountCents) * factor)
	trace := &domain.CalculationTrace{
		Kind:    domain.TraceIndexation,
		Formula: "indexed = base × (1 + annual_indexation_pct)^(months/12)",
		Inputs: []domain.TraceInput{
			{Name: "base_cents", Value: fmt.Sprintf("%d", cf.AmountCents)},
			{Name: "annual_indexation_pct", Value: pct.String()},
			{Name: "months", Value: fmt.Sprintf("%d", monthsFromStart)},
		},
		ResultCents: amount,
	}
	return amount, trace
}
