package calculation

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finplan/finproject/internal/domain"
	"github.com/finplan/finproject/pkg/dateutil"
	"github.com/finplan/finproject/pkg/money"
)

// simulateMonths runs the month loop. balances is mutated in place and holds
// each account's closing balance as the loop advances; a snapshot taken at
// the top of every month serves percentage-of-account resolution so results
// do not depend on account input order.
func (pe *ProjectionEngine) simulateMonths(accounts []domain.Account, cashflows []domain.Cashflow, anchor time.Time, monthsToProject int, balances map[string]money.Cents) []domain.MonthlyProjection {
	flowsByID := make(map[string]*domain.Cashflow, len(cashflows))
	for i := range cashflows {
		flowsByID[cashflows[i].ID] = &cashflows[i]
	}
	accountsByID := make(map[string]*domain.Account, len(accounts))
	for i := range accounts {
		accountsByID[accounts[i].ID] = &accounts[i]
	}

	months := make([]domain.MonthlyProjection, 0, monthsToProject)
	for monthIndex := 0; monthIndex < monthsToProject; monthIndex++ {
		date := dateutil.AddMonths(anchor, monthIndex)

		monthStart := make(map[string]money.Cents, len(balances))
		for id, b := range balances {
			monthStart[id] = b
		}

		mp := domain.MonthlyProjection{
			MonthIndex: monthIndex,
			Date:       date,
			Accounts:   make(map[string]domain.AccountMonth, len(accounts)),
		}

		var totalIncome, totalExpenses money.Cents
		for ai := range accounts {
			account := &accounts[ai]
			opening := balances[account.ID]
			am := domain.AccountMonth{OpeningBalanceCents: opening}

			// Own flows: direction follows the owning account's kind.
			for fi := range cashflows {
				cf := &cashflows[fi]
				if cf.AccountID != account.ID || !IsActive(cf, date) {
					continue
				}
				amount, traces := resolveAmount(cf, flowsByID, accountsByID, monthStart, date)
				if account.Kind == domain.AccountIncome {
					am.IncomeCents += amount
					totalIncome += amount
				} else {
					am.ExpensesCents += amount
					totalExpenses += amount
				}
				am.Traces = append(am.Traces, traces...)
			}

			// Transfers in: credits regardless of the owning account's
			// kind, excluded from the month-level totals. Provenance for
			// the transfer stays with the owning account.
			for fi := range cashflows {
				cf := &cashflows[fi]
				if cf.TargetAccountID != account.ID || !IsActive(cf, date) {
					continue
				}
				amount, _ := resolveAmount(cf, flowsByID, accountsByID, monthStart, date)
				am.IncomeCents += amount
			}

			am.NetCashflowCents = am.IncomeCents - am.ExpensesCents

			if account.AnnualInterestRate != nil {
				principal := opening + money.FromFloat(float64(am.NetCashflowCents)/2)
				interest, trace := CompoundInterest(principal, *account.AnnualInterestRate, account.InterestCompoundsPerYear(), 1)
				am.InterestEarnedCents += interest
				am.Traces = append(am.Traces, trace)
			}
			if account.IsProperty && account.PropertyAppreciationRate != nil {
				gain, trace := PropertyAppreciation(opening, *account.PropertyAppreciationRate, 1)
				am.InterestEarnedCents += gain
				am.Traces = append(am.Traces, trace)
			}

			am.ClosingBalanceCents = opening + am.NetCashflowCents + am.InterestEarnedCents
			balances[account.ID] = am.ClosingBalanceCents
			mp.Accounts[account.ID] = am
		}

		mp.TotalIncomeCents = totalIncome
		mp.TotalExpensesCents = totalExpenses
		mp.TotalNetWorthCents = totalNetWorth(accounts, balances)
		if totalIncome > 0 {
			mp.SavingsRate = (totalIncome - totalExpenses).Decimal().Div(totalIncome.Decimal())
		} else {
			mp.SavingsRate = decimal.Zero
		}

		mp.PayoffEvents = detectPayoffs(accounts, mp.Accounts)
		for _, ev := range mp.PayoffEvents {
			pe.Logger.Debugf("payoff detected: account=%s month=%s closing=%s", ev.AccountID, date.Format("2006-01"), ev.ClosingBalanceCents)
		}

		months = append(months, mp)
	}
	return months
}
