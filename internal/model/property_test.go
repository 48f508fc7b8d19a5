package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoanSchedule_KnownValues(t *testing.T) {
	// Reference values from a standard repayment mortgage calculator.
	tests := []struct {
		name            string
		amount          float64
		years           int
		rate            float64
		expectedMonthly float64
	}{
		{"200k @ 4% over 25 years", 200000, 25, 0.04, 1055.67},
		{"300k @ 5% over 30 years", 300000, 30, 0.05, 1610.46},
		{"150k @ 3.5% over 20 years", 150000, 20, 0.035, 869.94},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewProperty("Home", tt.amount, 0, tt.amount, 0, 0, Loan{
				Amount:        tt.amount,
				DurationYears: tt.years,
				AnnualRate:    tt.rate,
			})
			// 50 cent tolerance absorbs calculator rounding differences.
			assert.InDelta(t, tt.expectedMonthly, p.MonthlyPayment, 0.5)
			assert.InDelta(t, tt.amount/float64(tt.years), p.YearlyAmortization, 1e-9)
		})
	}
}

func TestLoanSchedule_AnnuityIdentity(t *testing.T) {
	// The monthly payment must fully amortize the principal over
	// duration*12 months at the monthly rate.
	loans := []Loan{
		{Amount: 200000, DurationYears: 25, AnnualRate: 0.04},
		{Amount: 120000, DurationYears: 15, AnnualRate: 0.02},
		{Amount: 50000, DurationYears: 7, AnnualRate: 0.065},
	}

	for _, loan := range loans {
		payment, _ := loan.schedule()
		require.Greater(t, payment, 0.0)

		r := loan.AnnualRate / 12
		balance := loan.Amount
		for m := 0; m < loan.DurationYears*12; m++ {
			balance = balance*(1+r) - payment
		}
		// The payment is rounded to cents, so the terminal balance drifts by
		// at most a few euros over long terms.
		assert.InDelta(t, 0, balance, 2.0, "loan %+v not fully amortized, residual %.4f", loan, balance)
	}
}

func TestLoanSchedule_NoLoan(t *testing.T) {
	cases := []Loan{
		{},
		{Amount: 100000, DurationYears: 0, AnnualRate: 0.03},
		{Amount: 100000, DurationYears: 10, AnnualRate: 0},
	}
	for _, loan := range cases {
		p := NewProperty("Home", 250000, 0, 0, 0, 0, loan)
		assert.Zero(t, p.MonthlyPayment)
		assert.Zero(t, p.YearlyAmortization)
	}
}

func TestProperty_CarryingCost(t *testing.T) {
	p := NewProperty("Home", 250000, 0, 150000, 1200, 1800, Loan{
		Amount:        150000,
		DurationYears: 15,
		AnnualRate:    0.02,
	})
	assert.InDelta(t, 1200+1800+p.MonthlyPayment*12, p.CarryingCost(), 1e-9)

	unfinanced := NewProperty("Studio", 120000, 0, 0, 600, 900, Loan{})
	assert.InDelta(t, 1500, unfinanced.CarryingCost(), 1e-9)
}

func TestProperty_Equity(t *testing.T) {
	p := NewProperty("Home", 250000, 0, 150000, 0, 0, Loan{})
	assert.InDelta(t, 100000, p.Equity(), 1e-9)
}

func TestProperty_Validate(t *testing.T) {
	valid := NewProperty("Home", 250000, 10000, 150000, 1200, 1800, Loan{
		Amount:        150000,
		DurationYears: 15,
		AnnualRate:    0.02,
	})
	require.NoError(t, valid.Validate())

	noName := valid
	noName.Name = ""
	assert.Error(t, noName.Validate())

	badRate := valid
	badRate.Loan.AnnualRate = 1.5
	assert.Error(t, badRate.Validate())

	negDuration := valid
	negDuration.Loan.DurationYears = -1
	assert.Error(t, negDuration.Validate())

	negValue := valid
	negValue.GrossValue = -1
	assert.Error(t, negValue.Validate())
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 12360.00, Round2(12360.000001))
	assert.Equal(t, 1055.67, Round2(1055.6653))
	assert.Equal(t, -55000.00, Round2(-55000))
}
