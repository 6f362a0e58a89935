package output

import (
	"bytes"
	"encoding/csv"
	"sort"
	"strconv"

	"github.com/finplan/finproject/internal/domain"
)

// CSVExporter writes one row per simulated month with the month-level
// aggregates followed by each account's closing balance. Account columns are
// sorted by id so the header is stable across runs.
type CSVExporter struct{}

func (c CSVExporter) Name() string { return "csv" }

func (c CSVExporter) Format(result *domain.ProjectionResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	var accountIDs []string
	if len(result.Months) > 0 {
		for id := range result.Months[0].Accounts {
			accountIDs = append(accountIDs, id)
		}
		sort.Strings(accountIDs)
	}

	header := []string{"Month", "Date", "TotalNetWorth", "TotalIncome", "TotalExpenses", "SavingsRate"}
	for _, id := range accountIDs {
		header = append(header, id)
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for i := range result.Months {
		mp := &result.Months[i]
		row := []string{
			strconv.Itoa(mp.MonthIndex),
			mp.Date.Format("2006-01"),
			mp.TotalNetWorthCents.String(),
			mp.TotalIncomeCents.String(),
			mp.TotalExpensesCents.String(),
			mp.SavingsRate.StringFixed(4),
		}
		for _, id := range accountIDs {
			row = append(row, mp.Accounts[id].ClosingBalanceCents.String())
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), nil
}
