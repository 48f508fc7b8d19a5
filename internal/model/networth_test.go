package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetWorth_Total(t *testing.T) {
	n := &NetWorth{
		Cash:        10000,
		Investments: 50000,
		Properties: []Property{
			NewProperty("Home", 250000, 0, 150000, 0, 0, Loan{}),
			NewProperty("Studio", 120000, 0, 0, 0, 0, Loan{}),
		},
	}
	// cash + investments + sum of (gross - debt)
	assert.InDelta(t, 10000+50000+100000+120000, n.Total(), 1e-9)
}

func TestNetWorth_TotalEmpty(t *testing.T) {
	n := &NetWorth{}
	assert.Zero(t, n.Total())
}

func TestNetWorth_PropertyLookup(t *testing.T) {
	n := &NetWorth{Properties: []Property{NewProperty("Home", 250000, 0, 0, 0, 0, Loan{})}}

	require.NotNil(t, n.Property("Home"))
	assert.Nil(t, n.Property("Castle"))
}

func TestNetWorth_RemoveProperty(t *testing.T) {
	n := &NetWorth{Properties: []Property{
		NewProperty("Home", 250000, 0, 0, 0, 0, Loan{}),
		NewProperty("Studio", 120000, 0, 0, 0, 0, Loan{}),
	}}

	n.RemoveProperty("Home")
	require.Len(t, n.Properties, 1)
	assert.Equal(t, "Studio", n.Properties[0].Name)

	// Removing a name that is not owned is a no-op.
	n.RemoveProperty("Castle")
	assert.Len(t, n.Properties, 1)
}

func TestNetWorth_CloneIsDeep(t *testing.T) {
	n := &NetWorth{
		Cash:        100,
		Investments: 200,
		Properties:  []Property{NewProperty("Home", 250000, 0, 150000, 0, 0, Loan{})},
	}

	clone := n.Clone()
	clone.Cash = 999
	clone.Properties[0].Debt = 0

	assert.InDelta(t, 100, n.Cash, 1e-9)
	assert.InDelta(t, 150000, n.Properties[0].Debt, 1e-9)
}
