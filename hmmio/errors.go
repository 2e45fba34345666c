// SPDX-License-Identifier: MIT

package hmmio

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/katalvlaran/hmmeval/hmm"
)

var (
	// ErrNoObservations is returned when an observation input has no tokens.
	ErrNoObservations = errors.New("hmmio: no observations")

	// ErrMissingSection indicates a YAML bundle without a required top-level key.
	ErrMissingSection = errors.New("hmmio: missing section")

	// ErrMalformed indicates a YAML node of the wrong shape or an undecodable value.
	ErrMalformed = errors.New("hmmio: malformed model document")

	// ErrRaggedRow indicates YAML rows whose key sets differ from the first row.
	ErrRaggedRow = errors.New("hmmio: row keys differ from first row")
)

// configError marks err as a configuration error for source. Errors that
// already are configuration errors only gain the source prefix.
func configError(source string, err error) error {
	if errors.Is(err, hmm.ErrConfig) {
		return fmt.Errorf("%s: %w", source, err)
	}

	return fmt.Errorf("%w: %s: %w", hmm.ErrConfig, source, err)
}

// combineErrors folds non-nil errors into one; a single error is returned as
// is. Several are listed on one line in hmm.ListFormat.
func combineErrors(errs ...error) error {
	var merr *multierror.Error
	for _, e := range errs {
		if e != nil {
			merr = multierror.Append(merr, e)
		}
	}
	switch {
	case merr == nil:
		return nil
	case len(merr.Errors) == 1:
		return merr.Errors[0]
	}
	merr.ErrorFormat = hmm.ListFormat

	return merr
}
