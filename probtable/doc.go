// SPDX-License-Identifier: MIT

// Package probtable stores labelled probability tables for discrete models.
//
// 🚀 What is a probability table?
//
//	A two-key lookup (column label, row label) → float64, built from a
//	header of column labels followed by one row per row label:
//
//	        happy  grumpy
//	rain     0.6    0.4
//	cloudy   0.9    0.1
//
//	Lookup("happy", "rain") == 0.6.
//
// ✨ Key features:
//   - comma-ok lookups: an unknown label is reported as ok=false, never as 0.0
//   - labels are case-normalized once (Canonical) on the way in and on lookup
//   - flat row-major storage, O(1) amortized lookups through two index maps
//   - immutable after construction; label accessors return copies
//
// A Distribution is the one-key sibling used for initial state probabilities.
//
// Values must be finite and non-negative. Rows and distributions are NOT
// renormalized; whatever was supplied is what Lookup returns.
//
//	t, err := probtable.Parse([][]string{
//	    {"Happy", "Grumpy"},
//	    {"Rain", "0.6", "0.4"},
//	    {"Cloudy", "0.9", "0.1"},
//	})
//	p, ok := t.Lookup("happy", "rain") // 0.6, true
package probtable
