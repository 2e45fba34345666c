// SPDX-License-Identifier: MIT

// Package hmmeval computes the probability of an observation sequence under a
// discrete Hidden Markov Model, twice: once by exhaustive search over every
// hidden state path and once with the forward algorithm.
//
// Everything is organized under three subpackages and one command:
//
//	probtable/    labelled probability tables and distributions, comma-ok lookups
//	hmm/          Model construction & validation, Exhaustive, Forward, Trellis, LogForward
//	hmmio/        whitespace text loaders, YAML model bundle reader/writer
//	cmd/hmmprob/  CLI: eval, model, convert
//
// Quick example (the weather model):
//
//	states:       rain, cloudy
//	observations: happy, grumpy
//
//	emission, _ := probtable.New([]string{"happy", "grumpy"}, []probtable.Row{
//		{Label: "rain", Values: []float64{0.6, 0.4}},
//		{Label: "cloudy", Values: []float64{0.9, 0.1}},
//	})
//	transition, _ := probtable.New([]string{"rain", "cloudy"}, []probtable.Row{
//		{Label: "rain", Values: []float64{0.7, 0.3}},
//		{Label: "cloudy", Values: []float64{0.4, 0.6}},
//	})
//	initial, _ := probtable.NewDistribution([]probtable.Entry{
//		{Label: "rain", Value: 0.5}, {Label: "cloudy", Value: 0.5},
//	})
//	m, _ := hmm.New(emission, transition, initial)
//	p, _ := m.Forward([]string{"happy", "grumpy"}) // 0.192
//
// Labels are matched case-insensitively everywhere: "Rain", " RAIN" and
// "rain" name the same state.
//
// A constructed *hmm.Model is immutable and safe for concurrent use.
package hmmeval
