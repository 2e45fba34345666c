// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"

	"github.com/gonuts/commander"

	"github.com/katalvlaran/hmmeval/hmm"
	"github.com/katalvlaran/hmmeval/hmmio"
)

func modelCmd(stdout, stderr io.Writer) *commander.Command {
	var (
		file, observations string
		opt                evalFlags
	)
	cmd := &commander.Command{
		UsageLine: "model -f <model.yaml> [-o <file>] [options]",
		Short:     "evaluate an observation sequence from a YAML model bundle",
		Long: `
Evaluates the observation sequence stored in a YAML model bundle, or the one
read from -o, which takes precedence.

	$ hmmprob model -f model.yaml [-o observations.txt] [-d] [-logspace]
`,
		Flag: *newFlagSet("model"),
	}
	stringFlag(&cmd.Flag, &file, "f", "file", "YAML model bundle")
	stringFlag(&cmd.Flag, &observations, "o", "observations", "File with observation sequence")
	opt.register(&cmd.Flag)

	cmd.Run = func(cmd *commander.Command, args []string) error {
		if err := verifyFlags(cmd, "f"); err != nil {
			return err
		}
		doc, err := hmmio.ReadModelFile(file)
		if err != nil {
			return err
		}
		obs := doc.Observations
		if observations != "" {
			if obs, err = hmmio.ReadObservationsFile(observations); err != nil {
				return err
			}
		}
		if len(obs) == 0 {
			return fmt.Errorf("%s: no observations in bundle and no -o given: %w", file, hmm.ErrEmptySequence)
		}

		return evaluate(stdout, stderr, doc, obs, opt)
	}

	return cmd
}
