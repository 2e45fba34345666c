// SPDX-License-Identifier: MIT

package hmm

import (
	"math"
	"strings"
)

// Exhaustive computes P(observations) by brute force.
//
// Algorithm:
//  1. Resolve emission(o, s) for every distinct o and every s; fail on any gap.
//  2. Walk every path in States^L in lexicographic product order (first
//     position most significant) with an index odometer.
//  3. joint = initial(s₁)·emission(o₁,s₁)·transition(s₂,s₁)·emission(o₂,s₂)·…
//     multiplied left to right.
//  4. Sum the joints in enumeration order.
//
// No partial products are shared between paths: this is the reference the
// forward algorithm is checked against, not a fast path.
//
// Errors: ErrEmptySequence, ErrMissingEmission, ErrTooManyPaths.
// Complexity: O(|S|^L · L) time, O(L) extra memory.
func (m *Model) Exhaustive(observations []string) (float64, error) {
	rows, err := m.prepare(observations)
	if err != nil {
		return 0, err
	}
	n, L := len(m.states), len(observations)

	// emit[t] is the shared row of observation t.
	emit := make([][]float64, L)
	for t, o := range observations {
		emit[t] = rows[o]
	}

	paths, err := pathCount(n, L)
	if err != nil {
		return 0, err
	}

	var (
		path    = make([]int, L) // current path as state indices; all zeros is the first
		factors []float64        // only filled while tracing
		total   float64
		joint   float64
		k, t    int
	)
	if m.trace {
		factors = make([]float64, 0, 2*L)
	}

	for k = 0; k < paths; k++ {
		joint = m.init[path[0]] * emit[0][path[0]]
		for t = 1; t < L; t++ {
			joint *= m.trans[path[t]][path[t-1]]
			joint *= emit[t][path[t]]
		}

		if m.trace {
			factors = factors[:0]
			factors = append(factors, m.init[path[0]], emit[0][path[0]])
			for t = 1; t < L; t++ {
				factors = append(factors, m.trans[path[t]][path[t-1]], emit[t][path[t]])
			}
			m.tracef("path %s factors %v joint %g", m.pathString(path), factors, joint)
		}

		total += joint
		advance(path, n)
	}
	if m.trace {
		m.tracef("exhaustive: %d paths over %v total %g", paths, canonical(observations), total)
	}

	return total, nil
}

// pathCount returns n^L or ErrTooManyPaths if it overflows int.
func pathCount(n, L int) (int, error) {
	c := 1
	for i := 0; i < L; i++ {
		if c > math.MaxInt/n {
			return 0, ErrTooManyPaths
		}
		c *= n
	}

	return c, nil
}

// advance steps the odometer to the next path in lexicographic order.
// The last position turns fastest. Wraps to all zeros after the last path.
func advance(path []int, n int) {
	for t := len(path) - 1; t >= 0; t-- {
		path[t]++
		if path[t] < n {
			return
		}
		path[t] = 0
	}
}

// pathString renders a path by state labels, e.g. "(rain, cloudy)".
func (m *Model) pathString(path []int) string {
	names := make([]string, len(path))
	for t, s := range path {
		names[t] = m.states[s]
	}

	return "(" + strings.Join(names, ", ") + ")"
}
