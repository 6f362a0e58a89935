package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/finplan/finproject/internal/domain"
)

// ConsoleFormatter renders a human-readable report: the run summary, payoff
// projections, and a per-month net worth table.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(result *domain.ProjectionResult) ([]byte, error) {
	buf := &bytes.Buffer{}

	fmt.Fprintln(buf, "PROJECTION SUMMARY")
	fmt.Fprintln(buf, strings.Repeat("=", 60))
	fmt.Fprintf(buf, "Months simulated:     %d\n", len(result.Months))
	fmt.Fprintf(buf, "Starting net worth:   %s\n", result.Summary.StartNetWorthCents.Format())
	fmt.Fprintf(buf, "Ending net worth:     %s\n", result.Summary.EndNetWorthCents.Format())
	fmt.Fprintf(buf, "Total return:         %s\n", result.Summary.TotalReturnCents.Format())
	fmt.Fprintf(buf, "Average savings rate: %s%%\n", result.Summary.AverageSavingsRate.Mul(hundred).StringFixed(1))

	if len(result.PayoffProjections) > 0 {
		fmt.Fprintln(buf)
		fmt.Fprintln(buf, "LIABILITY PAYOFFS")
		fmt.Fprintln(buf, strings.Repeat("-", 60))
		for _, pp := range result.PayoffProjections {
			fmt.Fprintf(buf, "%-24s paid off %s (%d months, interest %s, payments %s)\n",
				pp.AccountName,
				pp.ProjectedPayoffMonth.Format("2006-01"),
				pp.MonthsToPayoff,
				pp.TotalInterestToPayCents.Format(),
				pp.TotalPaymentsCents.Format(),
			)
		}
	}

	if len(result.Months) > 0 {
		fmt.Fprintln(buf)
		fmt.Fprintln(buf, "MONTHLY NET WORTH")
		fmt.Fprintln(buf, strings.Repeat("-", 60))
		fmt.Fprintf(buf, "%-8s %16s %14s %14s\n", "Month", "Net Worth", "Income", "Expenses")
		for i := range result.Months {
			mp := &result.Months[i]
			fmt.Fprintf(buf, "%-8s %16s %14s %14s\n",
				mp.Date.Format("2006-01"),
				mp.TotalNetWorthCents.Format(),
				mp.TotalIncomeCents.Format(),
				mp.TotalExpensesCents.Format(),
			)
		}
	}

	return buf.Bytes(), nil
}
