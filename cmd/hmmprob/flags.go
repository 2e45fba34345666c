// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
)

// errMissingFlags is returned when required flags are left empty.
var errMissingFlags = errors.New("hmmprob: missing required flags")

// inputFlags are the text-file inputs shared by eval and convert.
type inputFlags struct {
	emission     string
	transition   string
	initial      string
	observations string
}

// evalFlags control how a loaded model is evaluated.
type evalFlags struct {
	debug    bool
	logspace bool
	maxLen   int
}

// newFlagSet returns a FlagSet that reports errors instead of exiting.
func newFlagSet(name string) *flag.FlagSet {
	return flag.NewFlagSet(name, flag.ContinueOnError)
}

// stringFlag registers a short and a long name for the same value.
func stringFlag(fs *flag.FlagSet, p *string, short, long, usage string) {
	fs.StringVar(p, short, "", usage)
	fs.StringVar(p, long, "", usage+" (same as -"+short+")")
}

func (f *inputFlags) register(fs *flag.FlagSet, withObservations bool) {
	stringFlag(fs, &f.emission, "e", "emission", "File containing the emission matrix")
	stringFlag(fs, &f.transition, "t", "transition", "File containing the transition matrix")
	stringFlag(fs, &f.initial, "i", "initial", "File containing the initial probabilities")
	if withObservations {
		stringFlag(fs, &f.observations, "o", "observations", "File with observation sequence")
	}
}

func (f *evalFlags) register(fs *flag.FlagSet) {
	fs.BoolVar(&f.debug, "d", false, "Debug: trace every path and forward value to stderr")
	fs.BoolVar(&f.logspace, "logspace", false, "Also print the log-space forward result")
	fs.IntVar(&f.maxLen, "max-len", 0, "Skip exhaustive search above this many observations; 0 = no limit")
}

// verifyFlags fails with every required flag whose value is still empty.
func verifyFlags(cmd *commander.Command, required ...string) error {
	var missing []string
	for _, name := range required {
		f := cmd.Flag.Lookup(name)
		if f == nil || f.Value.String() == "" {
			missing = append(missing, "-"+name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%s: %w: %s", cmd.Name(), errMissingFlags, strings.Join(missing, ", "))
	}

	return nil
}
