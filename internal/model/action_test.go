package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAction(t *testing.T) {
	for _, a := range Actions() {
		parsed, err := ParseAction(string(a))
		require.NoError(t, err)
		assert.Equal(t, a, parsed)
	}

	_, err := ParseAction("EAT_SANDWICH")
	assert.Error(t, err)

	// Wire values are case sensitive.
	_, err = ParseAction("add_income")
	assert.Error(t, err)
}

func TestActions_CatalogIsComplete(t *testing.T) {
	assert.Len(t, Actions(), 6)
}
