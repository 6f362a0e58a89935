package output

import (
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finplan/finproject/internal/domain"
	"github.com/finplan/finproject/pkg/money"
)

func fixtureResult() *domain.ProjectionResult {
	march := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	april := time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC)
	return &domain.ProjectionResult{
		Months: []domain.MonthlyProjection{
			{
				MonthIndex: 0,
				Date:       march,
				Accounts: map[string]domain.AccountMonth{
					"savings": {OpeningBalanceCents: 100_000, ClosingBalanceCents: 150_000},
					"loan":    {OpeningBalanceCents: -50_000, ClosingBalanceCents: -25_000},
				},
				TotalNetWorthCents: 125_000,
				TotalIncomeCents:   400_000,
				TotalExpensesCents: 300_000,
				SavingsRate:        decimal.NewFromFloat(0.25),
			},
			{
				MonthIndex: 1,
				Date:       april,
				Accounts: map[string]domain.AccountMonth{
					"savings": {OpeningBalanceCents: 150_000, ClosingBalanceCents: 200_000},
					"loan":    {OpeningBalanceCents: -25_000, ClosingBalanceCents: 0},
				},
				TotalNetWorthCents: 200_000,
				TotalIncomeCents:   400_000,
				TotalExpensesCents: 300_000,
				SavingsRate:        decimal.NewFromFloat(0.25),
			},
		},
		Summary: domain.ProjectionSummary{
			StartNetWorthCents: 50_000,
			EndNetWorthCents:   200_000,
			TotalReturnCents:   150_000,
			AverageSavingsRate: decimal.NewFromFloat(0.25),
			GeneratedAt:        march,
		},
		PayoffProjections: []domain.PayoffProjection{
			{
				AccountID:               "loan",
				AccountName:             "Car Loan",
				MonthsToPayoff:          2,
				ProjectedPayoffMonth:    april,
				TotalInterestToPayCents: 1_200,
				TotalPaymentsCents:      76_200,
			},
		},
	}
}

func TestJSONFormatter(t *testing.T) {
	f := JSONFormatter{}
	assert.Equal(t, "json", f.Name())

	data, err := f.Format(fixtureResult())
	require.NoError(t, err)

	var decoded domain.ProjectionResult
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Len(t, decoded.Months, 2)
	assert.Equal(t, money.Cents(200_000), decoded.Summary.EndNetWorthCents)

	// Formatting the same result twice is byte-identical.
	again, err := f.Format(fixtureResult())
	require.NoError(t, err)
	assert.Equal(t, data, again)
}

func TestCSVExporter(t *testing.T) {
	f := CSVExporter{}
	assert.Equal(t, "csv", f.Name())

	data, err := f.Format(fixtureResult())
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, []string{"Month", "Date", "TotalNetWorth", "TotalIncome", "TotalExpenses", "SavingsRate", "loan", "savings"}, records[0])
	assert.Equal(t, []string{"0", "2026-03", "1250.00", "4000.00", "3000.00", "0.2500", "-250.00", "1500.00"}, records[1])
	assert.Equal(t, []string{"1", "2026-04", "2000.00", "4000.00", "3000.00", "0.2500", "0.00", "2000.00"}, records[2])
}

func TestCSVExporterEmptyResult(t *testing.T) {
	data, err := CSVExporter{}.Format(&domain.ProjectionResult{})
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Month", records[0][0])
}

func TestConsoleFormatter(t *testing.T) {
	f := ConsoleFormatter{}
	assert.Equal(t, "console", f.Name())

	data, err := f.Format(fixtureResult())
	require.NoError(t, err)
	out := string(data)

	assert.Contains(t, out, "PROJECTION SUMMARY")
	assert.Contains(t, out, "Months simulated:     2")
	assert.Contains(t, out, "Average savings rate: 25.0%")
	assert.Contains(t, out, "LIABILITY PAYOFFS")
	assert.Contains(t, out, "Car Loan")
	assert.Contains(t, out, "2 months")
	assert.Contains(t, out, "MONTHLY NET WORTH")
	assert.Contains(t, out, "2026-03")
	assert.Contains(t, out, "2026-04")
}

func TestGetFormatterByName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "console", want: "console"},
		{input: "Console", want: "console"},
		{input: "table", want: "console"},
		{input: "text", want: "console"},
		{input: "csv", want: "csv"},
		{input: "csv-monthly", want: "csv"},
		{input: "json", want: "json"},
		{input: "JSON-Pretty", want: "json"},
		{input: "  json  ", want: "json"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			f := GetFormatterByName(tt.input)
			require.NotNil(t, f)
			assert.Equal(t, tt.want, f.Name())
		})
	}

	assert.Nil(t, GetFormatterByName("xml"))
}

func TestAvailableFormatterNames(t *testing.T) {
	assert.Equal(t, []string{"console", "csv", "json"}, AvailableFormatterNames())
}
