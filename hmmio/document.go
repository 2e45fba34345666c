// SPDX-License-Identifier: MIT

package hmmio

import (
	"github.com/katalvlaran/hmmeval/hmm"
	"github.com/katalvlaran/hmmeval/probtable"
)

// Document is everything needed to evaluate one observation sequence.
// Observations may be empty when the sequence comes from elsewhere.
type Document struct {
	Emission     *probtable.Table
	Transition   *probtable.Table
	Initial      *probtable.Distribution
	Observations []string
}

// Paths names the text files of a Document. Observations is optional.
type Paths struct {
	Emission     string
	Transition   string
	Initial      string
	Observations string
}

// LoadFiles reads every file in p. All failing files are reported together.
func LoadFiles(p Paths) (*Document, error) {
	var (
		doc  Document
		errs = make([]error, 4)
	)
	doc.Emission, errs[0] = ReadTableFile(p.Emission)
	doc.Transition, errs[1] = ReadTableFile(p.Transition)
	doc.Initial, errs[2] = ReadDistributionFile(p.Initial)
	if p.Observations != "" {
		doc.Observations, errs[3] = ReadObservationsFile(p.Observations)
	}
	if err := combineErrors(errs...); err != nil {
		return nil, err
	}

	return &doc, nil
}

// Model validates the document's tables into an hmm.Model.
func (d *Document) Model(opts ...hmm.Option) (*hmm.Model, error) {
	return hmm.New(d.Emission, d.Transition, d.Initial, opts...)
}
