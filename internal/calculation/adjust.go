package calculation

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/finplan/finproject/internal/domain"
)

// discretionaryKeywords is the fixed list used by discretionary-scoped
// scenarios; matching is case-insensitive substring against the flow's
// description.
var discretionaryKeywords = []string{
	"entertainment", "dining", "clothing", "shopping", "hobby",
	"vacation", "leisure", "personal", "discretionary",
}

// ApplyScenario applies a scenario's spend adjustment to the qualifying cash
// flows and returns fresh copies of both inputs; the caller's slices are
// never mutated. With no scenario the copies are returned unchanged. The
// adjustment is a one-time transform performed before simulation starts and
// is never re-evaluated per month.
func ApplyScenario(accounts []domain.Account, cashflows []domain.Cashflow, scenario *domain.Scenario) ([]domain.Account, []domain.Cashflow) {
	adjustedAccounts := append([]domain.Account(nil), accounts...)
	adjustedFlows := append([]domain.Cashflow(nil), cashflows...)
	if scenario == nil {
		return adjustedAccounts, adjustedFlows
	}

	kindByID := make(map[string]domain.AccountKind, len(accounts))
	for _, a := range accounts {
		kindByID[a.ID] = a.Kind
	}

	factor := decimal.NewFromInt(1).Add(scenario.SpendAdjustmentPct)
	for i := range adjustedFlows {
		cf := &adjustedFlows[i]
		kind, ok := kindByID[cf.AccountID]
		if !ok || kind == domain.AccountIncome {
			continue
		}
		switch scenario.Scope {
		case domain.ScopeAll:
		case domain.ScopeDiscretionary:
			if !isDiscretionary(cf.Description) {
				continue
			}
		default:
			continue
		}
		cf.AmountCents = cf.AmountCents.Mul(factor)
	}
	return adjustedAccounts, adjustedFlows
}

func isDiscretionary(description string) bool {
	desc := strings.ToLower(description)
	for _, kw := range discretionaryKeywords {
		if strings.Contains(desc, kw) {
			return true
		}
	}
	return false
}
