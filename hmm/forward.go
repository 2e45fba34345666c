// SPDX-License-Identifier: MIT

package hmm

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Forward computes P(observations) with the forward algorithm.
//
// Recurrence:
//
//	α₁(s) = initial(s) · emission(o₁, s)
//	αₜ(s) = emission(oₜ, s) · Σ_p αₜ₋₁(p) · transition(s, p)
//	P     = Σ_s α_L(s)
//
// Only two α rows are kept. Plain float64 arithmetic: long sequences
// underflow toward 0 exactly as the exhaustive sum does; see LogForward.
//
// Errors: ErrEmptySequence, ErrMissingEmission.
// Complexity: O(|S|²·L) time, O(|S|) memory plus one emission row per
// distinct symbol.
func (m *Model) Forward(observations []string) (float64, error) {
	rows, err := m.forward(observations, false)
	if err != nil {
		return 0, err
	}
	p := floats.Sum(rows[len(rows)-1])
	if m.trace {
		m.tracef("forward: total %g", p)
	}

	return p, nil
}

// Trellis returns every α row: Trellis(obs)[t][s] is αₜ₊₁ for States()[s].
// The sum of the last row equals Forward(obs).
//
// Complexity: O(|S|²·L) time, O(|S|·L) memory.
func (m *Model) Trellis(observations []string) ([][]float64, error) {
	return m.forward(observations, true)
}

// forward fills α rows. With keepAll every row is returned; otherwise two
// rows alternate (t%2) and only the last one is returned.
func (m *Model) forward(observations []string, keepAll bool) ([][]float64, error) {
	emit, err := m.prepare(observations)
	if err != nil {
		return nil, err
	}
	n, L := len(m.states), len(observations)

	var rows [][]float64
	if keepAll {
		rows = make([][]float64, L)
	} else {
		rows = make([][]float64, 2)
	}
	for i := range rows {
		rows[i] = make([]float64, n)
	}
	row := func(t int) []float64 {
		if keepAll {
			return rows[t]
		}
		return rows[t%2]
	}

	var (
		s, p, t      int
		sum          float64
		prev, cur, e []float64
	)

	// Base case
	cur, e = row(0), emit[observations[0]]
	for s = 0; s < n; s++ {
		cur[s] = m.init[s] * e[s]
	}
	m.traceAlpha(1, observations[0], cur)

	// Recurrence
	for t = 1; t < L; t++ {
		prev, cur, e = row(t-1), row(t), emit[observations[t]]
		for s = 0; s < n; s++ {
			sum = 0
			for p = 0; p < n; p++ {
				sum += prev[p] * m.trans[s][p]
			}
			cur[s] = e[s] * sum
		}
		m.traceAlpha(t+1, observations[t], cur)
	}

	if keepAll {
		return rows, nil
	}

	return [][]float64{row(L - 1)}, nil
}

// LogForward computes log P(observations) with the forward recurrence in log
// space:
//
//	log α₁(s) = log initial(s) + log emission(o₁, s)
//	log αₜ(s) = log emission(oₜ, s) + LogSumExp_p(log αₜ₋₁(p) + log transition(s, p))
//
// Zero probabilities map to -Inf; an impossible sequence returns -Inf.
// This entry point is separate on purpose: Forward and Exhaustive keep
// linear semantics.
//
// Errors: ErrEmptySequence, ErrMissingEmission.
// Complexity: O(|S|²·L) time, O(|S|) memory plus one emission row per
// distinct symbol.
func (m *Model) LogForward(observations []string) (float64, error) {
	emit, err := m.prepare(observations)
	if err != nil {
		return 0, err
	}
	n := len(m.states)

	var (
		prev  = make([]float64, n)
		cur   = make([]float64, n)
		terms = make([]float64, n)
		e     = emit[observations[0]]
		s, p  int
	)
	for s = 0; s < n; s++ {
		cur[s] = m.logInit[s] + math.Log(e[s])
	}
	for t := 1; t < len(observations); t++ {
		prev, cur, e = cur, prev, emit[observations[t]]
		for s = 0; s < n; s++ {
			for p = 0; p < n; p++ {
				terms[p] = prev[p] + m.logTrans[s][p]
			}
			cur[s] = math.Log(e[s]) + floats.LogSumExp(terms)
		}
	}
	lp := floats.LogSumExp(cur)
	if m.trace {
		m.tracef("log-forward: %d observations log total %g", len(observations), lp)
	}

	return lp, nil
}
