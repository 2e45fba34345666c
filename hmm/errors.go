// SPDX-License-Identifier: MIT

// Package hmm: sentinel errors.
// Every configuration failure satisfies errors.Is(err, ErrConfig); the
// specific sentinels below narrow it down. Context (labels, positions) is
// attached with fmt.Errorf("...: %w", ErrX) at the detection site.

package hmm

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrConfig is the umbrella for every model or input configuration error.
	ErrConfig = errors.New("hmm: configuration error")

	// ErrNilTable is returned when New receives a nil table or distribution.
	ErrNilTable = fmt.Errorf("%w: nil table", ErrConfig)

	// ErrMissingInitial indicates a state without an initial probability.
	ErrMissingInitial = fmt.Errorf("%w: missing initial probability", ErrConfig)

	// ErrMissingTransition indicates a (to, from) state pair absent from the transition table.
	ErrMissingTransition = fmt.Errorf("%w: missing transition probability", ErrConfig)

	// ErrMissingEmission indicates an observed symbol without an emission probability for some state.
	ErrMissingEmission = fmt.Errorf("%w: missing emission probability", ErrConfig)

	// ErrEmptySequence is returned for an observation sequence of length 0.
	ErrEmptySequence = fmt.Errorf("%w: empty observation sequence", ErrConfig)

	// ErrTooManyPaths is returned when |S|^L does not fit in an int.
	ErrTooManyPaths = fmt.Errorf("%w: too many state paths to enumerate", ErrConfig)
)

// ListFormat is a multierror.ErrorFormatFunc that renders aggregated
// configuration errors on a single line, prefixed by a count:
// "2 configuration errors: a; b".
func ListFormat(errs []error) string {
	if len(errs) == 1 {
		return errs[0].Error()
	}
	msgs := make([]string, len(errs))
	for i, err := range errs {
		msgs[i] = err.Error()
	}

	return fmt.Sprintf("%d configuration errors: %s", len(errs), strings.Join(msgs, "; "))
}
