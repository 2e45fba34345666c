// SPDX-License-Identifier: MIT

// Command hmmprob computes the probability of an observation sequence under
// a discrete HMM, once by exhaustive search and once with the forward
// algorithm.
//
//	$ hmmprob eval -e emission.txt -t transition.txt -i initial.txt -o observations.txt
//	$ hmmprob model -f model.yaml
//	$ hmmprob convert -e emission.txt -t transition.txt -i initial.txt -out model.yaml
package main

import (
	"io"
	"log"
	"os"

	"github.com/gonuts/commander"
)

const (
	debugPrefix   = "[DEBUG]: "
	errorPrefix   = "[ERROR]: "
	warningPrefix = "[WARNING]: "
)

// newApp wires every subcommand to the given output streams.
func newApp(stdout, stderr io.Writer) *commander.Command {
	return &commander.Command{
		UsageLine: "hmmprob <command> [options]",
		Short:     "probability of an observation sequence under a discrete HMM",
		Subcommands: []*commander.Command{
			evalCmd(stdout, stderr),
			modelCmd(stdout, stderr),
			convertCmd(stdout, stderr),
		},
	}
}

func main() {
	if err := newApp(os.Stdout, os.Stderr).Dispatch(os.Args[1:]); err != nil {
		log.New(os.Stderr, errorPrefix, 0).Println(err)
		os.Exit(1)
	}
}
