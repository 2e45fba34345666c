// SPDX-License-Identifier: MIT

package probtable

import "fmt"

// Distribution is an immutable label → probability mapping.
// It is not renormalized: values need not sum to 1.
type Distribution struct {
	labels []string
	values map[string]float64
}

// NewDistribution builds a Distribution from entries in input order.
//
// Errors: ErrNoRows, ErrEmptyLabel, ErrDuplicateLabel, ErrBadValue.
func NewDistribution(entries []Entry) (*Distribution, error) {
	if len(entries) == 0 {
		return nil, ErrNoRows
	}
	d := &Distribution{
		labels: make([]string, 0, len(entries)),
		values: make(map[string]float64, len(entries)),
	}
	for i, e := range entries {
		label := Canonical(e.Label)
		if label == "" {
			return nil, fmt.Errorf("entry %d: %w", i+1, ErrEmptyLabel)
		}
		if _, dup := d.values[label]; dup {
			return nil, fmt.Errorf("entry %q: %w", label, ErrDuplicateLabel)
		}
		if err := checkValue(e.Value); err != nil {
			return nil, fmt.Errorf("entry %q: %w", label, err)
		}
		d.values[label] = e.Value
		d.labels = append(d.labels, label)
	}

	return d, nil
}

// ParseDistribution builds a Distribution from tokenized "label value" lines.
// Blank lines are skipped; any other width is ErrColumnCount.
func ParseDistribution(lines [][]string) (*Distribution, error) {
	entries := make([]Entry, 0, len(lines))
	for n, line := range lines {
		if len(line) == 0 {
			continue
		}
		if len(line) != 2 {
			return nil, fmt.Errorf("line %d: got %d tokens, want label and value: %w",
				n+1, len(line), ErrColumnCount)
		}
		values, err := parseValues(line[1:])
		if err != nil {
			return nil, fmt.Errorf("line %d (%s): %w", n+1, line[0], err)
		}
		entries = append(entries, Entry{Label: line[0], Value: values[0]})
	}

	return NewDistribution(entries)
}

// Lookup returns the value for label; ok is false if the label is unknown.
func (d *Distribution) Lookup(label string) (float64, bool) {
	v, ok := d.values[Canonical(label)]

	return v, ok
}

// Labels returns a copy of the labels in input order.
func (d *Distribution) Labels() []string {
	out := make([]string, len(d.labels))
	copy(out, d.labels)

	return out
}

// Len returns the number of entries.
func (d *Distribution) Len() int {
	return len(d.labels)
}
