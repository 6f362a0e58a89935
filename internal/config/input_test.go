package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/finplan/finproject/internal/domain"
	"github.com/finplan/finproject/pkg/money"
)

func TestCreateExamplePlanIsValid(t *testing.T) {
	parser := NewInputParser()
	plan := parser.CreateExamplePlan()
	require.NoError(t, parser.ValidatePlan(plan))
	assert.NotEmpty(t, plan.Accounts)
	assert.NotEmpty(t, plan.Cashflows)
	assert.NotNil(t, plan.Scenario)
	assert.Positive(t, plan.MonthsToProject)
}

func TestLoadFromFileRoundTrip(t *testing.T) {
	parser := NewInputParser()
	plan := parser.CreateExamplePlan()

	data, err := yaml.Marshal(plan)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "plan.yaml")
	require.NoError(t, os.WriteFile(path, data, 0644))

	loaded, err := parser.LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, plan.MonthsToProject, loaded.MonthsToProject)
	assert.Len(t, loaded.Accounts, len(plan.Accounts))
	assert.Len(t, loaded.Cashflows, len(plan.Cashflows))
	require.NotNil(t, loaded.Scenario)
	assert.Equal(t, plan.Scenario.Scope, loaded.Scenario.Scope)
	assert.True(t, loaded.Scenario.SpendAdjustmentPct.Equal(plan.Scenario.SpendAdjustmentPct))

	// Rates survive the trip with full precision.
	require.NotNil(t, loaded.Accounts[2].AnnualInterestRate)
	assert.True(t, loaded.Accounts[2].AnnualInterestRate.Equal(decimal.NewFromFloat(0.045)))
}

func TestLoadFromFileMissing(t *testing.T) {
	_, err := NewInputParser().LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadFromFileMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("accounts: [\n"), 0644))
	_, err := NewInputParser().LoadFromFile(path)
	assert.Error(t, err)
}

func TestValidatePlan(t *testing.T) {
	start := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	validFlow := domain.Cashflow{
		ID: "cf", AccountID: "a", AmountCents: 100,
		Recurrence: domain.Recurrence{Frequency: domain.FrequencyMonthly, StartDate: start},
	}

	base := func() *Plan {
		return &Plan{
			MonthsToProject: 12,
			Accounts:        []domain.Account{{ID: "a", Kind: domain.AccountIncome}},
			Cashflows:       []domain.Cashflow{validFlow},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Plan)
		wantErr string
	}{
		{name: "valid plan", mutate: func(*Plan) {}, wantErr: ""},
		{name: "no accounts", mutate: func(p *Plan) { p.Accounts = nil }, wantErr: "no accounts"},
		{name: "negative horizon", mutate: func(p *Plan) { p.MonthsToProject = -1 }, wantErr: "months to project"},
		{name: "missing account id", mutate: func(p *Plan) { p.Accounts[0].ID = "" }, wantErr: "account id is required"},
		{name: "unknown account kind", mutate: func(p *Plan) { p.Accounts[0].Kind = "stocks" }, wantErr: "unknown account kind"},
		{name: "duplicate account id", mutate: func(p *Plan) { p.Accounts = append(p.Accounts, p.Accounts[0]) }, wantErr: "duplicate account id"},
		{name: "negative amount", mutate: func(p *Plan) { p.Cashflows[0].AmountCents = money.Cents(-1) }, wantErr: "amount cents cannot be negative"},
		{name: "unknown frequency", mutate: func(p *Plan) { p.Cashflows[0].Recurrence.Frequency = "daily" }, wantErr: "unknown frequency"},
		{name: "missing start date", mutate: func(p *Plan) { p.Cashflows[0].Recurrence.StartDate = time.Time{} }, wantErr: "start date is required"},
		{
			name: "end before start",
			mutate: func(p *Plan) {
				end := start.AddDate(0, -2, 0)
				p.Cashflows[0].Recurrence.EndDate = &end
			},
			wantErr: "end date cannot be before start date",
		},
		{
			name: "bad percentage source type",
			mutate: func(p *Plan) {
				p.Cashflows[0].PercentageOf = &domain.PercentageOf{SourceType: "wallet", SourceID: "x", Percentage: decimal.NewFromFloat(0.1)}
			},
			wantErr: "unknown percentage source type",
		},
		{
			name: "bad scenario scope",
			mutate: func(p *Plan) {
				p.Scenario = &domain.Scenario{Scope: "some", SpendAdjustmentPct: decimal.Zero}
			},
			wantErr: "scenario scope",
		},
		{
			name: "spend adjustment below -100%",
			mutate: func(p *Plan) {
				p.Scenario = &domain.Scenario{Scope: domain.ScopeAll, SpendAdjustmentPct: decimal.NewFromFloat(-1.5)}
			},
			wantErr: "spend adjustment",
		},
	}

	parser := NewInputParser()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := base()
			tt.mutate(plan)
			err := parser.ValidatePlan(plan)
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}
