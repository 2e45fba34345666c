package hmm_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/hmmeval/hmm"
	"github.com/katalvlaran/hmmeval/probtable"
	"github.com/stretchr/testify/require"
)

// weatherHand is the hand-computed P(happy, grumpy) of the weather model:
//
//	rain→rain     0.5·0.6·0.7·0.4 = 0.084
//	rain→cloudy   0.5·0.6·0.3·0.1 = 0.009
//	cloudy→rain   0.5·0.9·0.4·0.4 = 0.072
//	cloudy→cloudy 0.5·0.9·0.6·0.1 = 0.027
const weatherHand = 0.192

// weatherTables returns the rain/cloudy emission, transition and initial inputs.
func weatherTables(t *testing.T) (*probtable.Table, *probtable.Table, *probtable.Distribution) {
	t.Helper()
	emission, err := probtable.Parse([][]string{
		{"happy", "grumpy"},
		{"rain", "0.6", "0.4"},
		{"cloudy", "0.9", "0.1"},
	})
	require.NoError(t, err)

	transition, err := probtable.Parse([][]string{
		{"rain", "cloudy"},
		{"rain", "0.7", "0.3"},
		{"cloudy", "0.4", "0.6"},
	})
	require.NoError(t, err)

	initial, err := probtable.ParseDistribution([][]string{
		{"rain", "0.5"},
		{"cloudy", "0.5"},
	})
	require.NoError(t, err)

	return emission, transition, initial
}

// mustWeather builds the weather model or fails the test.
func mustWeather(t *testing.T, opts ...hmm.Option) *hmm.Model {
	t.Helper()
	e, tr, in := weatherTables(t)
	m, err := hmm.New(e, tr, in, opts...)
	require.NoError(t, err)

	return m
}

// randomModel builds a fully specified model with nStates states and
// nSymbols symbols; all values are in (0.05, 1].
func randomModel(tb testing.TB, r *rand.Rand, nStates, nSymbols int) (*hmm.Model, []string) {
	tb.Helper()
	states := make([]string, nStates)
	for i := range states {
		states[i] = fmt.Sprintf("s%d", i)
	}
	symbols := make([]string, nSymbols)
	for i := range symbols {
		symbols[i] = fmt.Sprintf("o%d", i)
	}
	prob := func() float64 { return 0.05 + 0.95*r.Float64() }

	emitRows := make([]probtable.Row, nStates)
	transRows := make([]probtable.Row, nStates)
	initial := make([]probtable.Entry, nStates)
	for i, s := range states {
		emitRows[i] = probtable.Row{Label: s, Values: make([]float64, nSymbols)}
		for j := range symbols {
			emitRows[i].Values[j] = prob()
		}
		transRows[i] = probtable.Row{Label: s, Values: make([]float64, nStates)}
		for j := range states {
			transRows[i].Values[j] = prob()
		}
		initial[i] = probtable.Entry{Label: s, Value: prob()}
	}

	emission, err := probtable.New(symbols, emitRows)
	require.NoError(tb, err)
	transition, err := probtable.New(states, transRows)
	require.NoError(tb, err)
	dist, err := probtable.NewDistribution(initial)
	require.NoError(tb, err)

	m, err := hmm.New(emission, transition, dist)
	require.NoError(tb, err)

	return m, symbols
}

// randomSequence draws L symbols uniformly.
func randomSequence(r *rand.Rand, symbols []string, L int) []string {
	out := make([]string, L)
	for i := range out {
		out[i] = symbols[r.Intn(len(symbols))]
	}

	return out
}
