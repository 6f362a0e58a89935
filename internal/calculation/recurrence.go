package calculation

import (
	"time"

	"github.com/finplan/finproject/internal/domain"
	"github.com/finplan/finproject/pkg/dateutil"
)

// IsActive decides whether a cash flow occurs in the given calendar month.
// A flow is never active before its start month or after its end month,
// inclusive bounds at month granularity.
//
// Weekly and fortnightly flows are evaluated as one occurrence per month,
// matching the simulator's monthly resolution. Monthly day-of-month anchors
// are carried in the data model but cannot influence a once-per-month
// evaluation, so monthly flows are active every month within bounds.
func IsActive(cf *domain.Cashflow, month time.Time) bool {
	target := dateutil.StartOfMonth(month)
	elapsed := dateutil.MonthsBetween(dateutil.StartOfMonth(cf.Recurrence.StartDate), target)
	if elapsed < 0 {
		return false
	}
	if end := cf.Recurrence.EndDate; end != nil {
		if dateutil.MonthsBetween(dateutil.StartOfMonth(*end), target) > 0 {
			return false
		}
	}

	switch cf.Recurrence.Frequency {
	case domain.FrequencyOnce:
		return elapsed == 0
	case domain.FrequencyWeekly, domain.FrequencyFortnightly, domain.FrequencyMonthly:
		return true
	case domain.FrequencyQuarterly:
		return elapsed%3 == 0
	case domain.FrequencyAnnually:
		return elapsed%12 == 0
	default:
		return false
	}
}
