package calculation

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/finplan/finproject/internal/domain"
	"github.com/finplan/finproject/pkg/money"
)

// CompoundInterest computes interest earned on a principal over a number of
// months using A = P × (1 + r/n)^(n×t) with t in years. The returned cents
// value is rounded half away from zero; the float intermediate never leaves
// this function. A zero rate yields exactly zero with a trace stating so —
// callers rely on a trace being present whenever a rate is configured.
func CompoundInterest(principalCents money.Cents, annualRate decimal.Decimal, compoundsPerYear int, months int) (money.Cents, domain.CalculationTrace) {
	if annualRate.IsZero() {
		return 0, domain.CalculationTrace{
			Kind:        domain.TraceInterest,
			Formula:     "no rate set",
			ResultCents: 0,
		}
	}
	if compoundsPerYear <= 0 {
		compoundsPerYear = 12
	}

	r := annualRate.InexactFloat64()
	n := float64(compoundsPerYear)
	t := float64(months) / 12
	final := float64(principalCents) * math.Pow(1+r/n, n*t)
	interest := money.FromFloat(final - float64(principalCents))

	trace := domain.CalculationTrace{
		Kind:    domain.TraceInterest,
		Formula: "interest = P × (1 + r/n)^(n×t) − P",
		Inputs: []domain.TraceInput{
			{Name: "principal_cents", Value: fmt.Sprintf("%d", principalCents)},
			{Name: "annual_rate", Value: annualRate.String()},
			{Name: "compounds_per_year", Value: fmt.Sprintf("%d", compoundsPerYear)},
			{Name: "months", Value: fmt.Sprintf("%d", months)},
		},
		ResultCents: interest,
	}
	return interest, trace
}

// PropertyAppreciation computes appreciation on a property value over a
// number of months. Appreciation always compounds monthly at rate/12,
// independent of the account's interest compounding frequency.
func PropertyAppreciation(currentValueCents money.Cents, annualRate decimal.Decimal, months int) (money.Cents, domain.CalculationTrace) {
	if annualRate.IsZero() {
		return 0, domain.CalculationTrace{
			Kind:        domain.TraceAppreciation,
			Formula:     "no rate set",
			ResultCents: 0,
		}
	}

	r := annualRate.InexactFloat64()
	final := float64(currentValueCents) * math.Pow(1+r/12, float64(months))
	gain := money.FromFloat(final - float64(currentValueCents))

	trace := domain.CalculationTrace{
		Kind:    domain.TraceAppreciation,
		Formula: "appreciation = V × (1 + r/12)^months − V",
		Inputs: []domain.TraceInput{
			{Name: "value_cents", Value: fmt.Sprintf("%d", currentValueCents)},
			{Name: "annual_rate", Value: annualRate.String()},
			{Name: "months", Value: fmt.Sprintf("%d", months)},
		},
		ResultCents: gain,
	}
	return gain, trace
}
