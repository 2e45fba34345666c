package hmm_test

import (
	"bytes"
	"log"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/katalvlaran/hmmeval/hmm"
	"github.com/katalvlaran/hmmeval/probtable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_States verifies the state set comes from the emission rows, in order.
func TestNew_States(t *testing.T) {
	m := mustWeather(t)
	assert.Equal(t, []string{"rain", "cloudy"}, m.States())

	states := m.States()
	states[0] = "mutated"
	assert.Equal(t, "rain", m.States()[0], "States must return a copy")

	assert.NotNil(t, m.Emission())
	assert.NotNil(t, m.Transition())
	assert.NotNil(t, m.Initial())
}

// TestNew_NilInputs checks ErrNilTable for each nil argument.
func TestNew_NilInputs(t *testing.T) {
	e, tr, in := weatherTables(t)

	_, err := hmm.New(nil, tr, in)
	assert.ErrorIs(t, err, hmm.ErrNilTable)
	_, err = hmm.New(e, nil, in)
	assert.ErrorIs(t, err, hmm.ErrNilTable)
	_, err = hmm.New(e, tr, nil)
	assert.ErrorIs(t, err, hmm.ErrNilTable)
	assert.ErrorIs(t, err, hmm.ErrConfig)
}

// TestNew_MissingEntriesAggregated ensures every gap is reported in one error.
func TestNew_MissingEntriesAggregated(t *testing.T) {
	e, _, _ := weatherTables(t)

	// no "cloudy" destination column
	transition, err := probtable.Parse([][]string{
		{"rain"},
		{"rain", "1"},
		{"cloudy", "1"},
	})
	require.NoError(t, err)
	// no "cloudy" initial entry
	initial, err := probtable.ParseDistribution([][]string{{"rain", "1"}})
	require.NoError(t, err)

	m, err := hmm.New(e, transition, initial)
	require.Nil(t, m)
	require.Error(t, err)

	assert.ErrorIs(t, err, hmm.ErrMissingTransition)
	assert.ErrorIs(t, err, hmm.ErrMissingInitial)
	assert.ErrorIs(t, err, hmm.ErrConfig)

	var merr *multierror.Error
	require.ErrorAs(t, err, &merr)
	assert.Len(t, merr.Errors, 3, "cloudy|rain, cloudy|cloudy, initial cloudy")
	assert.Contains(t, err.Error(), "3 configuration errors")
	assert.Contains(t, err.Error(), `no initial probability for "cloudy"`)
}

// TestNew_ExtraEntriesIgnored checks that surplus states in the transition
// table or the initial distribution do not matter.
func TestNew_ExtraEntriesIgnored(t *testing.T) {
	e, _, _ := weatherTables(t)
	transition, err := probtable.Parse([][]string{
		{"rain", "cloudy", "sunny"},
		{"rain", "0.7", "0.3", "0"},
		{"cloudy", "0.4", "0.6", "0"},
		{"sunny", "0", "0", "1"},
	})
	require.NoError(t, err)
	initial, err := probtable.ParseDistribution([][]string{
		{"rain", "0.5"}, {"cloudy", "0.5"}, {"sunny", "0.5"},
	})
	require.NoError(t, err)

	m, err := hmm.New(e, transition, initial)
	require.NoError(t, err)
	assert.Equal(t, []string{"rain", "cloudy"}, m.States())

	p, err := m.Forward([]string{"happy", "grumpy"})
	require.NoError(t, err)
	assert.InDelta(t, weatherHand, p, 1e-12)
}

// TestNew_RejectionIsTraced verifies the rejection reaches the trace logger.
func TestNew_RejectionIsTraced(t *testing.T) {
	e, tr, _ := weatherTables(t)
	initial, err := probtable.ParseDistribution([][]string{{"rain", "1"}})
	require.NoError(t, err)

	var buf bytes.Buffer
	_, err = hmm.New(e, tr, initial, hmm.WithTrace(true), hmm.WithLogger(log.New(&buf, "", 0)))
	require.ErrorIs(t, err, hmm.ErrMissingInitial)
	assert.Contains(t, buf.String(), "model rejected")
}

// TestWithLogger_NilPanics guards the programmer-error contract.
func TestWithLogger_NilPanics(t *testing.T) {
	assert.Panics(t, func() { hmm.WithLogger(nil) })
}
