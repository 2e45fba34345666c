package probtable_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/hmmeval/probtable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func splitLines(s string) [][]string {
	var out [][]string
	for _, l := range strings.Split(s, "\n") {
		out = append(out, strings.Fields(l))
	}

	return out
}

// TestParseDistribution_Lookup checks values, order and case folding.
func TestParseDistribution_Lookup(t *testing.T) {
	d, err := probtable.ParseDistribution(splitLines("Rain 0.5\n\nCloudy 0.25\n"))
	require.NoError(t, err)

	assert.Equal(t, 2, d.Len())
	assert.Equal(t, []string{"rain", "cloudy"}, d.Labels())

	p, ok := d.Lookup("RAIN")
	require.True(t, ok)
	assert.Equal(t, 0.5, p)

	// no renormalization: 0.5 + 0.25 is kept as supplied
	p, ok = d.Lookup("cloudy")
	require.True(t, ok)
	assert.Equal(t, 0.25, p)

	_, ok = d.Lookup("sunny")
	assert.False(t, ok)
}

// TestParseDistribution_Errors covers malformed initial files.
func TestParseDistribution_Errors(t *testing.T) {
	_, err := probtable.ParseDistribution(splitLines("rain"))
	assert.ErrorIs(t, err, probtable.ErrColumnCount)

	_, err = probtable.ParseDistribution(splitLines("rain 0.5 0.5"))
	assert.ErrorIs(t, err, probtable.ErrColumnCount)

	_, err = probtable.ParseDistribution(splitLines("rain abc"))
	assert.ErrorIs(t, err, probtable.ErrBadValue)

	_, err = probtable.ParseDistribution(splitLines("rain 0.5\nRain 0.5"))
	assert.ErrorIs(t, err, probtable.ErrDuplicateLabel)

	_, err = probtable.ParseDistribution(nil)
	assert.ErrorIs(t, err, probtable.ErrNoRows)
}
