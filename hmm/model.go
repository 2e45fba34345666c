// SPDX-License-Identifier: MIT

package hmm

import (
	"fmt"
	"log"
	"math"

	"github.com/hashicorp/go-multierror"

	"github.com/katalvlaran/hmmeval/probtable"
)

// Model is a validated, immutable HMM.
//
// States are the emission table's row labels in input order. Initial and
// transition probabilities are resolved into index-addressed slices at
// construction, so the algorithms never see a missing entry.
type Model struct {
	states []string

	emission   *probtable.Table
	transition *probtable.Table
	initial    *probtable.Distribution

	init  []float64   // init[s]      = initial(s)
	trans [][]float64 // trans[to][from] = transition(to | from)

	logInit  []float64
	logTrans [][]float64

	trace  bool
	logger *log.Logger
}

// New validates the three inputs and returns a Model.
//
// Stage 1 (Validate): non-nil inputs.
// Stage 2 (Prepare): states := emission.Rows().
// Stage 3 (Execute): check every (to, from) transition and every initial
// entry; all gaps are collected and reported in one error.
// Stage 4 (Finalize): resolve dense slices (linear and log).
//
// Errors: ErrNilTable, ErrMissingTransition, ErrMissingInitial (all wrap ErrConfig).
// Complexity: O(|S|²).
func New(emission, transition *probtable.Table, initial *probtable.Distribution, opts ...Option) (*Model, error) {
	if emission == nil || transition == nil || initial == nil {
		return nil, ErrNilTable
	}
	o := gatherOptions(opts...)

	states := emission.Rows()
	n := len(states)

	var (
		errs     *multierror.Error
		to, from int
		p        float64
		ok       bool
	)
	trans := make([][]float64, n)
	for to = range states {
		trans[to] = make([]float64, n)
		for from = range states {
			if p, ok = transition.Lookup(states[to], states[from]); !ok {
				errs = multierror.Append(errs, fmt.Errorf("no transition probability for %q given %q: %w",
					states[to], states[from], ErrMissingTransition))
				continue
			}
			trans[to][from] = p
		}
	}

	init := make([]float64, n)
	for s, state := range states {
		if p, ok = initial.Lookup(state); !ok {
			errs = multierror.Append(errs, fmt.Errorf("no initial probability for %q: %w",
				state, ErrMissingInitial))
			continue
		}
		init[s] = p
	}

	if errs != nil {
		errs.ErrorFormat = ListFormat
		err := errs.ErrorOrNil()
		o.logger.Printf("model rejected: %v", err)

		return nil, err
	}

	m := &Model{
		states:     states,
		emission:   emission,
		transition: transition,
		initial:    initial,
		init:       init,
		trans:      trans,
		logInit:    logSlice(init),
		logTrans:   make([][]float64, n),
		trace:      o.trace,
		logger:     o.logger,
	}
	for to = range trans {
		m.logTrans[to] = logSlice(trans[to])
	}
	m.tracef("model: %d states %v", n, states)

	return m, nil
}

// States returns a copy of the state labels in emission-table order.
func (m *Model) States() []string {
	out := make([]string, len(m.states))
	copy(out, m.states)

	return out
}

// Emission returns the emission table (columns: symbols, rows: states).
func (m *Model) Emission() *probtable.Table { return m.emission }

// Transition returns the transition table (columns: to, rows: from).
func (m *Model) Transition() *probtable.Table { return m.transition }

// Initial returns the initial distribution.
func (m *Model) Initial() *probtable.Distribution { return m.initial }

// emissionRows maps each observation, as the caller spelled it, to
// emission(o, s) for every state s. Spellings with the same canonical form
// share one row, so the map holds |alphabet|·|S| values whatever the
// sequence length.
type emissionRows map[string][]float64

// prepare resolves one emission row per distinct observation. Every distinct
// unknown (symbol, state) pair is reported, once, before any algorithm starts.
func (m *Model) prepare(observations []string) (emissionRows, error) {
	if len(observations) == 0 {
		return nil, ErrEmptySequence
	}

	var (
		errs    *multierror.Error
		rows    = make(emissionRows)
		byLabel = make(map[string][]float64)
		p       float64
		ok      bool
	)
	for _, o := range observations {
		if _, ok = rows[o]; ok {
			continue
		}
		label := probtable.Canonical(o)
		row, seen := byLabel[label]
		if !seen {
			row = make([]float64, len(m.states))
			for s, state := range m.states {
				if p, ok = m.emission.Lookup(label, state); !ok {
					errs = multierror.Append(errs, fmt.Errorf("no emission probability for %q given %q: %w",
						label, state, ErrMissingEmission))
				}
				row[s] = p
			}
			byLabel[label] = row
		}
		rows[o] = row
	}
	if errs != nil {
		errs.ErrorFormat = ListFormat

		return nil, errs.ErrorOrNil()
	}

	return rows, nil
}

// tracef writes one diagnostic line when tracing is on.
func (m *Model) tracef(format string, args ...interface{}) {
	if m.trace {
		m.logger.Printf(format, args...)
	}
}

// traceAlpha logs one forward row when tracing is on.
func (m *Model) traceAlpha(t int, observation string, alpha []float64) {
	if m.trace {
		m.logger.Printf("alpha t=%d obs=%q %v", t, probtable.Canonical(observation), alpha)
	}
}

// canonical returns the canonical form of every observation.
func canonical(observations []string) []string {
	out := make([]string, len(observations))
	for t, o := range observations {
		out[t] = probtable.Canonical(o)
	}

	return out
}

// logSlice returns the element-wise natural log; log(0) = -Inf.
func logSlice(x []float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = math.Log(v)
	}

	return out
}
