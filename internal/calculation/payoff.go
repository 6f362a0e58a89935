package calculation

import (
	"github.com/finplan/finproject/internal/domain"
	"github.com/finplan/finproject/pkg/money"
)

// detectPayoffs records a payoff event for every liability account whose
// balance crossed from negative to within the tolerance band this month.
func detectPayoffs(accounts []domain.Account, accountMonths map[string]domain.AccountMonth) []domain.PayoffEvent {
	var events []domain.PayoffEvent
	for i := range accounts {
		account := &accounts[i]
		if !account.IsLiability() {
			continue
		}
		am, ok := accountMonths[account.ID]
		if !ok {
			continue
		}
		if am.OpeningBalanceCents < 0 && am.ClosingBalanceCents >= payoffToleranceCents {
			events = append(events, domain.PayoffEvent{
				AccountID:           account.ID,
				AccountName:         account.Name,
				ClosingBalanceCents: am.ClosingBalanceCents,
			})
		}
	}
	return events
}

// buildPayoffProjections produces one entry per liability account that
// started negative and reaches the tolerance band within the horizon.
// Interest and payment totals accumulate up to and including the payoff
// month; interest on a liability is a charge and is accumulated by
// magnitude. Accounts that never reach payoff are simply absent.
func buildPayoffProjections(accounts []domain.Account, startBalances map[string]money.Cents, months []domain.MonthlyProjection) []domain.PayoffProjection {
	var projections []domain.PayoffProjection
	for i := range accounts {
		account := &accounts[i]
		if !account.IsLiability() || startBalances[account.ID] >= 0 {
			continue
		}

		var totalInterest, totalPayments money.Cents
		for mi := range months {
			am, ok := months[mi].Accounts[account.ID]
			if !ok {
				break
			}
			totalInterest += am.InterestEarnedCents.Abs()
			totalPayments += am.NetCashflowCents
			if am.ClosingBalanceCents >= payoffToleranceCents {
				projections = append(projections, domain.PayoffProjection{
					AccountID:               account.ID,
					AccountName:             account.Name,
					MonthsToPayoff:          mi + 1,
					ProjectedPayoffMonth:    months[mi].Date,
					TotalInterestToPayCents: totalInterest,
					TotalPaymentsCents:      totalPayments,
				})
				break
			}
		}
	}
	return projections
}
