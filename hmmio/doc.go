// SPDX-License-Identifier: MIT

// Package hmmio loads model inputs for package hmm.
//
// Two formats are supported:
//
//   - Whitespace text files, one per input. Tokens are split on any
//     whitespace, blank lines are ignored and labels are case-insensitive.
//
//     emission      happy grumpy          transition   rain cloudy
//     rain   0.6   0.4                    rain    0.7  0.3
//     cloudy 0.9   0.1                    cloudy  0.4  0.6
//
//     initial       rain 0.5              observations happy grumpy grumpy
//     cloudy 0.5
//
//   - A single YAML bundle holding all three tables plus an optional
//     observation sequence (see ReadModel). Key order is preserved.
//
// Every error returned here satisfies errors.Is(err, hmm.ErrConfig).
package hmmio
