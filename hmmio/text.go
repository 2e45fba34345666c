// SPDX-License-Identifier: MIT

package hmmio

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/katalvlaran/hmmeval/probtable"
)

// maxLineBytes bounds a single input line (observation files can be one long line).
const maxLineBytes = 16 << 20

// Tokenize splits r into lines of whitespace-separated tokens, dropping blank lines.
func Tokenize(r io.Reader) ([][]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var lines [][]string
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		lines = append(lines, fields)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}

// ReadTable reads a header line and labelled rows into a Table.
func ReadTable(r io.Reader) (*probtable.Table, error) {
	lines, err := Tokenize(r)
	if err != nil {
		return nil, err
	}

	return probtable.Parse(lines)
}

// ReadDistribution reads "label value" lines into a Distribution.
func ReadDistribution(r io.Reader) (*probtable.Distribution, error) {
	lines, err := Tokenize(r)
	if err != nil {
		return nil, err
	}

	return probtable.ParseDistribution(lines)
}

// ReadObservations returns the tokens of the first non-blank line,
// case-normalized. Later lines are ignored.
func ReadObservations(r io.Reader) ([]string, error) {
	lines, err := Tokenize(r)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, ErrNoObservations
	}
	obs := make([]string, len(lines[0]))
	for i, tok := range lines[0] {
		obs[i] = probtable.Canonical(tok)
	}

	return obs, nil
}

// ReadTableFile is ReadTable on a file; errors wrap hmm.ErrConfig.
func ReadTableFile(path string) (t *probtable.Table, err error) {
	err = withFile(path, func(r io.Reader) (rerr error) {
		t, rerr = ReadTable(r)
		return rerr
	})
	if err != nil {
		return nil, configError(path, err)
	}

	return t, nil
}

// ReadDistributionFile is ReadDistribution on a file; errors wrap hmm.ErrConfig.
func ReadDistributionFile(path string) (d *probtable.Distribution, err error) {
	err = withFile(path, func(r io.Reader) (rerr error) {
		d, rerr = ReadDistribution(r)
		return rerr
	})
	if err != nil {
		return nil, configError(path, err)
	}

	return d, nil
}

// ReadObservationsFile is ReadObservations on a file; errors wrap hmm.ErrConfig.
func ReadObservationsFile(path string) (obs []string, err error) {
	err = withFile(path, func(r io.Reader) (rerr error) {
		obs, rerr = ReadObservations(r)
		return rerr
	})
	if err != nil {
		return nil, configError(path, err)
	}

	return obs, nil
}

// withFile opens path, hands it to fn and folds the Close error into the result.
func withFile(path string, fn func(io.Reader) error) (err error) {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer func() {
		err = combineErrors(err, f.Close())
	}()

	return fn(f)
}
