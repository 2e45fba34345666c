// SPDX-License-Identifier: MIT

// Package hmm computes the probability that a discrete Hidden Markov Model
// produces an observation sequence.
//
// 🚀 Two independent answers to the same question
//
//	P(o₁…o_L) = Σ over every hidden path s₁…s_L of
//	            initial(s₁)·emission(o₁,s₁)·Π_{t>1} transition(sₜ,sₜ₋₁)·emission(oₜ,sₜ)
//
//	  • Exhaustive : enumerates all |S|^L paths. Exponential; it is
//	    the ground truth the forward algorithm is checked against.
//	  • Forward    : dynamic programming over α values, O(|S|²·L) time and
//	    O(|S|) memory (two rolling rows).
//
// ✨ Extras:
//   - Trellis returns every α row for inspection.
//   - LogForward runs the same recurrence in log space with
//     gonum's floats.LogSumExp, for sequences where the linear algorithms
//     underflow to 0. Exhaustive and Forward keep plain float64 arithmetic.
//
// ⚙️ Usage:
//
//	m, err := hmm.New(emission, transition, initial, hmm.WithTrace(true))
//	if err != nil {
//	    // errors.Is(err, hmm.ErrConfig); every missing entry is listed once
//	}
//	p, err := m.Forward([]string{"happy", "grumpy"})
//
// Tables come from package probtable; labels are matched case-insensitively.
// A Model is immutable after New and safe for concurrent use.
package hmm
