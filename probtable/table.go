// SPDX-License-Identifier: MIT

// Package probtable - Table storage (row-major) & comma-ok accessors.
//
// Purpose:
//   - Keep a labelled matrix in one flat buffer with the index formula i*cols + j.
//   - Resolve labels through two maps so Lookup stays O(1) amortized.
//   - Report unknown labels as ok=false instead of a zero probability.
//
// Complexity quicksheet:
//   - New/Parse: O(r*c); Lookup: O(1) amortized; Columns/Rows: O(c)/O(r) copy.

package probtable

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtSep     = " "
	_fmtRowEnd  = "\n"
	_fmtValue   = "%g"
	_fmtPadding = "\t"
)

// Table is an immutable labelled probability matrix.
//   - cols are the header labels, rows the row labels, both canonical and in input order.
//   - data holds len(rows)*len(cols) values in row-major order.
type Table struct {
	cols     []string       // column labels, header order
	rows     []string       // row labels, input order
	colIndex map[string]int // column label → j
	rowIndex map[string]int // row label → i
	data     []float64      // row-major, offset = i*len(cols) + j
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Table)(nil)

// New builds a Table from a header and its rows.
// Stage 1 (Validate): header non-empty, labels non-empty and unique.
// Stage 2 (Prepare): allocate the flat buffer.
// Stage 3 (Execute): copy every row after checking width and values.
//
// Errors: ErrEmptyHeader, ErrNoRows, ErrEmptyLabel, ErrDuplicateLabel,
// ErrColumnCount, ErrBadValue.
// Complexity: O(r*c).
func New(header []string, rows []Row) (*Table, error) {
	if len(header) == 0 {
		return nil, ErrEmptyHeader
	}
	if len(rows) == 0 {
		return nil, ErrNoRows
	}

	cols, colIndex, err := indexLabels(header)
	if err != nil {
		return nil, fmt.Errorf("header: %w", err)
	}

	t := &Table{
		cols:     cols,
		rows:     make([]string, 0, len(rows)),
		colIndex: colIndex,
		rowIndex: make(map[string]int, len(rows)),
		data:     make([]float64, len(rows)*len(cols)),
	}

	var (
		i, j  int
		label string
		v     float64
	)
	for i = range rows {
		label = Canonical(rows[i].Label)
		if label == "" {
			return nil, fmt.Errorf("row %d: %w", i+1, ErrEmptyLabel)
		}
		if _, dup := t.rowIndex[label]; dup {
			return nil, fmt.Errorf("row %q: %w", label, ErrDuplicateLabel)
		}
		if len(rows[i].Values) != len(cols) {
			return nil, fmt.Errorf("row %q: got %d values for %d columns: %w",
				label, len(rows[i].Values), len(cols), ErrColumnCount)
		}
		for j, v = range rows[i].Values {
			if err = checkValue(v); err != nil {
				return nil, fmt.Errorf("row %q, column %q: %w", label, cols[j], err)
			}
			t.data[i*len(cols)+j] = v
		}
		t.rowIndex[label] = i
		t.rows = append(t.rows, label)
	}

	return t, nil
}

// Parse builds a Table from tokenized lines: lines[0] is the header and
// every following line is a row label followed by one number per column.
func Parse(lines [][]string) (*Table, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyHeader
	}
	rows := make([]Row, 0, len(lines)-1)
	for n, line := range lines[1:] {
		if len(line) == 0 {
			continue
		}
		values, err := parseValues(line[1:])
		if err != nil {
			return nil, fmt.Errorf("line %d (%s): %w", n+2, line[0], err)
		}
		rows = append(rows, Row{Label: line[0], Values: values})
	}

	return New(lines[0], rows)
}

// Lookup returns the value stored at (column, row). ok is false when either
// label is unknown; a stored 0 is returned as (0, true).
func (t *Table) Lookup(column, row string) (float64, bool) {
	j, ok := t.colIndex[Canonical(column)]
	if !ok {
		return 0, false
	}
	i, ok := t.rowIndex[Canonical(row)]
	if !ok {
		return 0, false
	}

	return t.data[i*len(t.cols)+j], true
}

// Columns returns a copy of the header labels in input order.
func (t *Table) Columns() []string {
	out := make([]string, len(t.cols))
	copy(out, t.cols)

	return out
}

// Rows returns a copy of the row labels in input order.
func (t *Table) Rows() []string {
	out := make([]string, len(t.rows))
	copy(out, t.rows)

	return out
}

// Dims returns (rows, columns).
func (t *Table) Dims() (int, int) {
	return len(t.rows), len(t.cols)
}

// String renders the table in the same layout Parse accepts.
// Complexity: O(r*c).
func (t *Table) String() string {
	var sb strings.Builder
	sb.WriteString(strings.Join(t.cols, _fmtSep))
	sb.WriteString(_fmtRowEnd)
	for i, label := range t.rows {
		sb.WriteString(label)
		for j := range t.cols {
			sb.WriteString(_fmtPadding)
			fmt.Fprintf(&sb, _fmtValue, t.data[i*len(t.cols)+j])
		}
		sb.WriteString(_fmtRowEnd)
	}

	return sb.String()
}

// indexLabels canonicalizes labels and maps each to its position.
func indexLabels(labels []string) ([]string, map[string]int, error) {
	out := make([]string, len(labels))
	idx := make(map[string]int, len(labels))
	for i, l := range labels {
		c := Canonical(l)
		if c == "" {
			return nil, nil, fmt.Errorf("label %d: %w", i+1, ErrEmptyLabel)
		}
		if _, dup := idx[c]; dup {
			return nil, nil, fmt.Errorf("label %q: %w", c, ErrDuplicateLabel)
		}
		idx[c] = i
		out[i] = c
	}

	return out, idx, nil
}

// parseValues converts numeric tokens, rejecting anything checkValue refuses.
func parseValues(tokens []string) ([]float64, error) {
	out := make([]float64, len(tokens))
	for i, tok := range tokens {
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, fmt.Errorf("token %q: %w", tok, ErrBadValue)
		}
		if err = checkValue(v); err != nil {
			return nil, fmt.Errorf("token %q: %w", tok, err)
		}
		out[i] = v
	}

	return out, nil
}

// checkValue enforces the numeric policy: finite and non-negative.
func checkValue(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return ErrBadValue
	}

	return nil
}
