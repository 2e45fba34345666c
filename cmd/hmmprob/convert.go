// SPDX-License-Identifier: MIT

package main

import (
	"io"
	"log"
	"os"

	"github.com/gonuts/commander"
	"github.com/hashicorp/go-multierror"

	"github.com/katalvlaran/hmmeval/hmm"
	"github.com/katalvlaran/hmmeval/hmmio"
)

func convertCmd(stdout, stderr io.Writer) *commander.Command {
	var (
		in  inputFlags
		out string
	)
	cmd := &commander.Command{
		UsageLine: "convert -e <file> -t <file> -i <file> [-o <file>] [-out <model.yaml>]",
		Short:     "convert whitespace text inputs into one YAML model bundle",
		Long: `
Reads the text inputs accepted by eval, validates them as a model and writes a
YAML bundle to -out (stdout when empty).

	$ hmmprob convert -e emission.txt -t transition.txt -i initial.txt -o observations.txt -out model.yaml
`,
		Flag: *newFlagSet("convert"),
	}
	in.register(&cmd.Flag, true)
	cmd.Flag.StringVar(&out, "out", "", "Output YAML file; stdout when empty")

	cmd.Run = func(cmd *commander.Command, args []string) error {
		if err := verifyFlags(cmd, "e", "t", "i"); err != nil {
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
		// refuse to write a bundle that would not load as a model
		if _, err = doc.Model(); err != nil {
			return err
		}

		if out == "" {
			return hmmio.WriteModel(stdout, doc)
		}
		if err = writeModelFile(out, doc); err != nil {
			return err
		}
		log.New(stderr, "", 0).Printf("wrote %s", out)

		return nil
	}

	return cmd
}

// writeModelFile writes doc to path, folding the Close error into the result.
func writeModelFile(path string, doc *hmmio.Document) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			merr := multierror.Append(err, cerr)
			merr.ErrorFormat = hmm.ListFormat
			err = merr
		}
	}()

	return hmmio.WriteModel(f, doc)
}
