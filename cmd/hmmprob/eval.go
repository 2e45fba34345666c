// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"log"

	"github.com/gonuts/commander"

	"github.com/katalvlaran/hmmeval/hmm"
	"github.com/katalvlaran/hmmeval/hmmio"
)

// Output lines, one per algorithm.
const (
	fmtExhaustive = "Probability of observation calculated using exhaustive search algorithm: %v\n"
	fmtForward    = "Probability of observation calculated using forward algorithm: %v\n"
	fmtLogForward = "Log probability of observation calculated using log-space forward algorithm: %v\n"
)

func evalCmd(stdout, stderr io.Writer) *commander.Command {
	var (
		in  inputFlags
		opt evalFlags
	)
	cmd := &commander.Command{
		UsageLine: "eval -e <file> -t <file> -i <file> -o <file> [options]",
		Short:     "evaluate an observation sequence from whitespace text files",
		Long: `
Calculates the probability of an observation using exhaustive search and the
forward algorithm. All input files are split on white space and matched
case-insensitively.

Emission matrix (header = observation symbols, one row per state):
	       Happy  Grumpy
	Rain    0.6    0.4
	Cloudy  0.9    0.1

Transition matrix (header = destination states, one row per source state):
	Rain Cloudy
	Rain 0.7 0.3
	Cloudy 0.4 0.6

Initial probabilities:
	Rain 0.5
	Cloudy 0.5

Observations (first line only):
	Happy Grumpy Grumpy

	$ hmmprob eval -e emission.txt -t transition.txt -i initial.txt -o observations.txt [-d]
`,
		Flag: *newFlagSet("eval"),
	}
	in.register(&cmd.Flag, true)
	opt.register(&cmd.Flag)

	cmd.Run = func(cmd *commander.Command, args []string) error {
		if err := verifyFlags(cmd, "e", "t", "i", "o"); err != nil {
			return err
		}
		doc, err := hmmio.LoadFiles(hmmio.Paths{
			Emission:     in.emission,
			Transition:   in.transition,
			Initial:      in.initial,
			Observations: in.observations,
		})
		if err != nil {
			return err
		}

		return evaluate(stdout, stderr, doc, doc.Observations, opt)
	}

	return cmd
}

// evaluate builds the model and prints one line per algorithm.
func evaluate(stdout, stderr io.Writer, doc *hmmio.Document, obs []string, opt evalFlags) error {
	var opts []hmm.Option
	if opt.debug {
		opts = append(opts, hmm.WithTrace(true), hmm.WithLogger(log.New(stderr, debugPrefix, 0)))
	}
	m, err := doc.Model(opts...)
	if err != nil {
		return err
	}

	if opt.maxLen > 0 && len(obs) > opt.maxLen {
		log.New(stderr, warningPrefix, 0).Printf("%d observations exceed -max-len %d, skipping exhaustive search",
			len(obs), opt.maxLen)
	} else {
		p, err := m.Exhaustive(obs)
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, fmtExhaustive, p)
	}

	p, err := m.Forward(obs)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, fmtForward, p)

	if opt.logspace {
		lp, err := m.LogForward(obs)
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, fmtLogForward, lp)
	}

	return nil
}
