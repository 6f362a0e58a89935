package calculation

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finplan/finproject/internal/domain"
	"github.com/finplan/finproject/pkg/money"
)

// buildSummary derives run-level statistics from the per-month series. The
// average savings rate is an arithmetic mean: a month with zero income
// contributes a zero rate rather than being skipped.
func buildSummary(startNetWorth money.Cents, months []domain.MonthlyProjection, generatedAt time.Time) domain.ProjectionSummary {
	summary := domain.ProjectionSummary{
		StartNetWorthCents: startNetWorth,
		EndNetWorthCents:   startNetWorth,
		AverageSavingsRate: decimal.Zero,
		GeneratedAt:        generatedAt,
	}
	if len(months) > 0 {
		summary.EndNetWorthCents = months[len(months)-1].TotalNetWorthCents

		sum := decimal.Zero
		for i := range months {
			sum = sum.Add(months[i].SavingsRate)
		}
		summary.AverageSavingsRate = sum.Div(decimal.NewFromInt(int64(len(months))))
	}
	summary.TotalReturnCents = summary.EndNetWorthCents - summary.StartNetWorthCents
	return summary
}
